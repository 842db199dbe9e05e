package measurement

import (
	"math"

	"github.com/philipparndt/godim/pkg/geometry"
)

// LabelTier selects how a label is oriented relative to its segment
type LabelTier int

const (
	// TierShallow: horizontal text offset along the segment normal
	TierShallow LabelTier = iota
	// TierDiagonal: text rotated to follow the segment
	TierDiagonal
	// TierSteep: horizontal text offset sideways along X, on the side the
	// dimension line is offset to
	TierSteep
)

func (t LabelTier) String() string {
	switch t {
	case TierShallow:
		return "shallow"
	case TierDiagonal:
		return "diagonal"
	case TierSteep:
		return "steep"
	default:
		return "unknown"
	}
}

// Tier boundaries in degrees
const (
	ShallowLimit = 30.0
	SteepLimit   = 60.0

	tierEpsilon = 1e-9
)

// LabelPlacement is where and how a label is drawn
type LabelPlacement struct {
	Position geometry.Vector3
	Rotation float64 // radians, 0 = horizontal
	Angle    float64 // degrees between the segment and the horizontal axis
	Tier     LabelTier
}

// SegmentAngle returns the absolute angle in degrees between dir and the
// horizontal axis, in [0, 90].
func SegmentAngle(dir geometry.Vector3) float64 {
	return degrees(math.Atan2(math.Abs(dir.Y), math.Abs(dir.X)))
}

// TierFor classifies an angle in degrees. Boundaries belong to the upper
// tier; computed angles within tierEpsilon below a boundary count as on it.
func TierFor(angle float64) LabelTier {
	switch {
	case angle < ShallowLimit-tierEpsilon:
		return TierShallow
	case angle < SteepLimit-tierEpsilon:
		return TierDiagonal
	default:
		return TierSteep
	}
}

// PlaceLabel positions a label around the dimension line midpoint
func PlaceLabel(mid, dir, normal geometry.Vector3, offset float64) LabelPlacement {
	angle := SegmentAngle(dir)
	p := LabelPlacement{Angle: angle, Tier: TierFor(angle)}

	switch p.Tier {
	case TierShallow:
		p.Position = mid.Add(normal.Mul(offset))
	case TierDiagonal:
		p.Position = mid.Add(normal.Mul(offset))
		p.Rotation = readableRotation(dir)
	case TierSteep:
		side := 1.0
		if normal.X < 0 {
			side = -1
		}
		p.Position = mid.Add(geometry.UnitX.Mul(side * offset))
	}
	return p
}

// readableRotation returns the in-plane angle of dir folded into
// (-pi/2, pi/2] so text never reads upside down
func readableRotation(dir geometry.Vector3) float64 {
	r := math.Atan2(dir.Y, dir.X)
	if r > math.Pi/2 {
		r -= math.Pi
	} else if r <= -math.Pi/2 {
		r += math.Pi
	}
	return r
}
