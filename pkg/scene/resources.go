package scene

import (
	"image"
	"image/color"

	"github.com/philipparndt/godim/pkg/geometry"
)

// Geometry is a vertex buffer owned by a single drawable
type Geometry struct {
	vertices []geometry.Vector3
	disposed bool
}

// NewGeometry creates a buffer holding a copy of points
func NewGeometry(points ...geometry.Vector3) *Geometry {
	g := &Geometry{}
	g.SetFromPoints(points...)
	return g
}

// SetFromPoints replaces the buffer contents
func (g *Geometry) SetFromPoints(points ...geometry.Vector3) {
	g.vertices = append(g.vertices[:0], points...)
}

// Vertices returns a copy of the vertex positions
func (g *Geometry) Vertices() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Len returns the vertex count
func (g *Geometry) Len() int {
	return len(g.vertices)
}

// Dispose drops the vertex data
func (g *Geometry) Dispose() {
	g.vertices = nil
	g.disposed = true
}

// Disposed reports whether the buffer was released
func (g *Geometry) Disposed() bool {
	return g.disposed
}

// Material describes how a drawable is shaded
type Material struct {
	Name     string
	Color    color.RGBA
	Dashed   bool
	DashSize float64
	GapSize  float64
	// Shared materials are reused across drawables and released by their
	// owner, never by an individual drawable.
	Shared   bool
	disposed bool
}

// Dispose releases the material. Calling it again is a no-op.
func (m *Material) Dispose() {
	m.disposed = true
}

// Disposed reports whether the material was released
func (m *Material) Disposed() bool {
	return m.disposed
}

func releaseMaterial(m *Material) {
	if m != nil && !m.Shared {
		m.Dispose()
	}
}

// Texture is a rasterized image placed in the world with a fixed size
type Texture struct {
	Image *image.RGBA
	// World-space extent of the image
	Width, Height float64
	disposed      bool
}

// Dispose drops the pixel data
func (t *Texture) Dispose() {
	t.Image = nil
	t.disposed = true
}

// Disposed reports whether the texture was released
func (t *Texture) Disposed() bool {
	return t.disposed
}
