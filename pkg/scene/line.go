package scene

import "github.com/philipparndt/godim/pkg/geometry"

// Line is a polyline drawn with a line material
type Line struct {
	object
	Geometry *Geometry
	Material *Material
}

// NewLine creates a line through points
func NewLine(material *Material, points ...geometry.Vector3) *Line {
	return &Line{
		object:   newObject(),
		Geometry: NewGeometry(points...),
		Material: material,
	}
}

// Kind returns KindLine
func (l *Line) Kind() Kind {
	return KindLine
}

// Points returns the current vertices
func (l *Line) Points() []geometry.Vector3 {
	if l.Geometry == nil {
		return nil
	}
	return l.Geometry.Vertices()
}

// LineDistances returns the cumulative distance along the line at each
// vertex, used to lay out dashes.
func (l *Line) LineDistances() []float64 {
	points := l.Points()
	distances := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		distances[i] = distances[i-1] + points[i-1].Distance(points[i])
	}
	return distances
}

// Dispose releases the geometry and an unshared material
func (l *Line) Dispose() {
	if l.disposed {
		return
	}
	if l.Geometry != nil {
		l.Geometry.Dispose()
	}
	releaseMaterial(l.Material)
	l.disposed = true
}
