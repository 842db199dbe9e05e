package measurement

import (
	"math"

	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/pkg/geometry"
)

// PlaneNormal is the normal of the plane annotations are drawn in. The
// offset direction of a dimension is perpendicular to both the segment and
// this axis.
var PlaneNormal = geometry.UnitZ

// degenerateLength is the distance below which two points are treated as
// the same point
const degenerateLength = 1e-12

// Arrowhead marks one end of the dimension line
type Arrowhead struct {
	Position  geometry.Vector3 // base of the arrow on the dimension line
	Direction geometry.Vector3 // unit vector the tip points along
}

// Annotation is the pure geometry of a dimension between two points
type Annotation struct {
	Start, End  geometry.Vector3
	RawDistance float64
	Snapped     float64

	Direction geometry.Vector3
	Normal    geometry.Vector3

	Extensions [2]Segment
	Dimension  Segment
	Arrows     [2]Arrowhead

	Text  string
	Label LabelPlacement
}

// Annotate builds the dimension annotation for start and end. Coincident
// points are allowed and produce a zero distance with a +X direction.
func Annotate(start, end geometry.Vector3, style config.Style) Annotation {
	raw := start.Distance(end)
	snapped := Snap(raw, style.SnapIncrement)
	dir, normal := Frame(start, end)

	a := Annotation{
		Start:       start,
		End:         end,
		RawDistance: raw,
		Snapped:     snapped,
		Direction:   dir,
		Normal:      normal,
		Text:        FormatDistance(snapped, style.Unit, style.Precision),
	}

	reach := normal.Mul(style.Gap + style.Overshoot)
	a.Extensions = [2]Segment{
		{Start: start, End: start.Add(reach)},
		{Start: end, End: end.Add(reach)},
	}

	offset := normal.Mul(style.Gap)
	from := start.Add(offset)
	to := end.Add(offset)

	if raw < 2*style.Margin {
		mid := from.Midpoint(to)
		a.Dimension = Segment{Start: mid, End: mid}
	} else {
		inset := dir.Mul(style.Margin)
		a.Dimension = Segment{Start: from.Add(inset), End: to.Sub(inset)}
	}

	a.Arrows = [2]Arrowhead{
		{Position: from, Direction: dir},
		{Position: to, Direction: dir.Negate()},
	}

	a.Label = PlaceLabel(from.Midpoint(to), dir, normal, style.LabelOffset)
	return a
}

// Frame returns the unit direction from start to end and the unit normal
// perpendicular to it in the measurement plane. Coincident points fall back
// to +X. A segment along the plane normal falls back to a +Y normal.
func Frame(start, end geometry.Vector3) (dir, normal geometry.Vector3) {
	delta := end.Sub(start)
	if delta.Length() < degenerateLength {
		dir = geometry.UnitX
	} else {
		dir = delta.Normalize()
	}

	normal = PlaneNormal.Cross(dir)
	if normal.Length() < 1e-9 {
		return dir, geometry.UnitY
	}
	return dir, normal.Normalize()
}

// ArrowTriangle returns the local-space arrowhead: base centred on the
// origin along X, tip on +Z.
func ArrowTriangle(length, width float64) geometry.Triangle {
	half := width / 2
	return geometry.NewTriangle(
		geometry.NewVector3(-half, 0, 0),
		geometry.NewVector3(half, 0, 0),
		geometry.NewVector3(0, 0, length),
	)
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
