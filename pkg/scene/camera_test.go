package scene

import (
	"testing"

	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCameraProjectCenter(t *testing.T) {
	cam := NewCamera(geometry.NewBoundingBox())

	x, y, depth := cam.Project(geometry.Vector3{}, 800, 600)
	assert.InDelta(t, 400, x, 1e-9)
	assert.InDelta(t, 300, y, 1e-9)
	assert.InDelta(t, 10, depth, 1e-9)

	right, _, _ := cam.Project(geometry.NewVector3(1, 0, 0), 800, 600)
	assert.Greater(t, right, 400.0)
}

func TestCameraPickPlane(t *testing.T) {
	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-1, -1, 0))
	bbox.Extend(geometry.NewVector3(1, 1, 0))
	cam := NewCamera(bbox)

	hit, ok := cam.PickPlane(400, 300, 800, 600, 0)
	require.True(t, ok)
	assert.True(t, hit.ApproxEqual(geometry.Vector3{}, 1e-9), "hit %v", hit)

	// a point projected to screen picks back to itself
	target := geometry.NewVector3(0.5, -0.25, 0)
	sx, sy, _ := cam.Project(target, 800, 600)
	back, ok := cam.PickPlane(sx, sy, 800, 600, 0)
	require.True(t, ok)
	assert.True(t, back.ApproxEqual(target, 1e-9), "picked %v", back)
}
