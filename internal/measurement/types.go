// Package measurement implements the two-point distance tool: the click,
// preview, commit state machine and the dimension annotation it leaves in
// the scene.
package measurement

import (
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// State of the interaction state machine
type State int

const (
	Idle State = iota
	Measuring
)

func (s State) String() string {
	if s == Measuring {
		return "measuring"
	}
	return "idle"
}

// Session exists between the first and the second click
type Session struct {
	StartPoint geometry.Vector3
}

// Segment is a straight line between two points
type Segment struct {
	Start geometry.Vector3
	End   geometry.Vector3
}

// Length returns the segment length
func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

// Direction returns the unit vector from Start to End (zero if degenerate)
func (s Segment) Direction() geometry.Vector3 {
	return s.End.Sub(s.Start).Normalize()
}

// Midpoint returns the point halfway along the segment
func (s Segment) Midpoint() geometry.Vector3 {
	return s.Start.Midpoint(s.End)
}

// Measurement is a committed dimension annotation and the drawables that
// show it. It is never modified after creation.
type Measurement struct {
	Annotation Annotation

	Group      *scene.Group
	Extensions [2]*scene.Line
	Dimension  *scene.Line
	Arrows     [2]*scene.Mesh
	Label      *scene.Label
}

// Drawables returns the six drawables in a fixed order: extension lines,
// dimension line, arrowheads, label.
func (m *Measurement) Drawables() []scene.Drawable {
	return []scene.Drawable{
		m.Extensions[0], m.Extensions[1],
		m.Dimension,
		m.Arrows[0], m.Arrows[1],
		m.Label,
	}
}

// Distance returns the snapped distance shown on the label
func (m *Measurement) Distance() float64 {
	return m.Annotation.Snapped
}
