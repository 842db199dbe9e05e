package scene

import (
	"testing"

	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraphAddRemove(t *testing.T) {
	g := NewGraph()
	mat := &Material{Name: "line"}
	a := NewLine(mat, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	b := NewLine(mat, geometry.NewVector3(0, 0, 0), geometry.NewVector3(0, 1, 0))

	g.Add(a, b)
	g.Add(a) // duplicate
	require.Equal(t, 2, g.Len())
	assert.True(t, g.Contains(a))

	g.Remove(a)
	assert.False(t, g.Contains(a))
	assert.Equal(t, []Drawable{b}, g.Objects())

	// removing something the scene no longer holds is fine
	g.Remove(a, nil)
	assert.Equal(t, 1, g.Len())
}

func TestGraphWalkDescendsIntoGroups(t *testing.T) {
	g := NewGraph()
	mat := &Material{Name: "line", Shared: true}
	line := NewLine(mat, geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 0, 0))
	label := NewLabel("2.00 m", nil)
	label.Position = geometry.NewVector3(1, 1, 0)

	g.Add(NewGroup("measurement", line, label))

	var kinds []Kind
	g.Walk(func(d Drawable) { kinds = append(kinds, d.Kind()) })
	assert.Equal(t, []Kind{KindLine, KindLabel}, kinds)

	bounds := g.Bounds()
	assert.Equal(t, geometry.NewVector3(0, 0, 0), bounds.Min)
	assert.Equal(t, geometry.NewVector3(2, 1, 0), bounds.Max)
}

func TestDisposeKeepsSharedMaterials(t *testing.T) {
	shared := &Material{Name: "shared", Shared: true}
	owned := &Material{Name: "owned"}
	a := NewLine(shared, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	b := NewLine(owned, geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0))
	label := NewLabel("x", &Texture{Width: 1, Height: 1})

	group := NewGroup("g", a, b, label)
	group.Dispose()
	group.Dispose()

	assert.True(t, a.Disposed())
	assert.True(t, a.Geometry.Disposed())
	assert.False(t, shared.Disposed())
	assert.True(t, owned.Disposed())
	assert.True(t, label.Texture.Disposed())
	assert.True(t, group.Disposed())
}

func TestLineDistances(t *testing.T) {
	line := NewLine(&Material{},
		geometry.NewVector3(0, 0, 0),
		geometry.NewVector3(3, 4, 0),
		geometry.NewVector3(3, 4, 2),
	)

	assert.InDeltaSlice(t, []float64{0, 5, 7}, line.LineDistances(), 1e-10)

	line.Geometry.SetFromPoints(geometry.NewVector3(1, 1, 1))
	assert.Equal(t, []geometry.Vector3{geometry.NewVector3(1, 1, 1)}, line.Points())
}

func TestMeshLookAt(t *testing.T) {
	tip := geometry.NewTriangle(
		geometry.NewVector3(-0.5, 0, 0),
		geometry.NewVector3(0.5, 0, 0),
		geometry.NewVector3(0, 0, 1),
	)
	mesh := NewMesh(&Material{}, tip)
	mesh.Position = geometry.NewVector3(10, 0, 0)
	mesh.LookAt(geometry.UnitX, geometry.UnitZ)

	tris := mesh.Triangles()
	require.Len(t, tris, 1)
	assert.True(t, tris[0].V3.ApproxEqual(geometry.NewVector3(11, 0, 0), 1e-10), "tip %v", tris[0].V3)
	assert.True(t, tris[0].V1.ApproxEqual(geometry.NewVector3(10, -0.5, 0), 1e-10), "base %v", tris[0].V1)
	assert.InDelta(t, 0, tris[0].CalculateNormal().X, 1e-10)
}

func TestLookRotationParallelUp(t *testing.T) {
	rot := LookRotation(geometry.UnitZ, geometry.UnitZ)
	forward := geometry.FromVec3(rot.Mul3x1(geometry.UnitZ.Vec3()))
	assert.True(t, forward.ApproxEqual(geometry.UnitZ, 1e-10))

	identity := LookRotation(geometry.Vector3{}, geometry.UnitZ)
	assert.Equal(t, geometry.UnitX, geometry.FromVec3(identity.Mul3x1(geometry.UnitX.Vec3())))
}
