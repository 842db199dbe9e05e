package measurement

import (
	"math"
	"testing"

	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func assertVec(t *testing.T, expected, actual geometry.Vector3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual, 1e-9),
		append([]interface{}{"expected %v, got %v", expected, actual}, msgAndArgs...)...)
}

func TestSnap(t *testing.T) {
	assert.InDelta(t, 2.0, Snap(2.24, 0.5), eps)
	assert.InDelta(t, 2.5, Snap(2.25, 0.5), eps, "exact half rounds away from zero")
	assert.InDelta(t, 2.5, Snap(2.6, 0.5), eps)
	assert.InDelta(t, 3.0, Snap(2.75, 0.5), eps)
	assert.InDelta(t, 0.0, Snap(0.2, 0.5), eps)
	assert.InDelta(t, 0.5, Snap(0.25, 0.5), eps)
	assert.InDelta(t, 1.3, Snap(1.3, 0), eps, "no increment, no snapping")
}

func TestFormatDistance(t *testing.T) {
	assert.Equal(t, "2.00 m", FormatDistance(Snap(2.24, 0.5), "m", 2))
	assert.Equal(t, "2.50 m", FormatDistance(Snap(2.25, 0.5), "m", 2))
	assert.Equal(t, "0.00 m", FormatDistance(0, "m", 2))
	assert.Equal(t, "12 mm", FormatDistance(12, "mm", 0))
	assert.Equal(t, "1.5", FormatDistance(1.5, "", 1))
}

func TestAnnotateAlongX(t *testing.T) {
	style := config.Default()
	a := Annotate(geometry.NewVector3(0, 0, 0), geometry.NewVector3(1, 0, 0), style)

	assert.InDelta(t, 1.0, a.RawDistance, eps)
	assert.InDelta(t, 1.0, a.Snapped, eps)
	assert.Equal(t, "1.00 m", a.Text)
	assertVec(t, geometry.UnitX, a.Direction)
	assertVec(t, geometry.UnitY, a.Normal)

	reach := style.Gap + style.Overshoot
	assertVec(t, geometry.NewVector3(0, 0, 0), a.Extensions[0].Start)
	assertVec(t, geometry.NewVector3(0, reach, 0), a.Extensions[0].End)
	assertVec(t, geometry.NewVector3(1, 0, 0), a.Extensions[1].Start)
	assertVec(t, geometry.NewVector3(1, reach, 0), a.Extensions[1].End)
	for i, ext := range a.Extensions {
		assert.InDelta(t, 0, ext.Direction().Dot(geometry.UnitX), eps, "extension %d perpendicular to X", i)
	}

	assertVec(t, geometry.NewVector3(style.Margin, style.Gap, 0), a.Dimension.Start)
	assertVec(t, geometry.NewVector3(1-style.Margin, style.Gap, 0), a.Dimension.End)

	assertVec(t, geometry.NewVector3(0, style.Gap, 0), a.Arrows[0].Position)
	assertVec(t, geometry.UnitX, a.Arrows[0].Direction)
	assertVec(t, geometry.NewVector3(1, style.Gap, 0), a.Arrows[1].Position)
	assertVec(t, geometry.UnitX.Negate(), a.Arrows[1].Direction)

	assert.Equal(t, TierShallow, a.Label.Tier)
	assert.Equal(t, 0.0, a.Label.Rotation)
	assertVec(t, geometry.NewVector3(0.5, style.Gap+style.LabelOffset, 0), a.Label.Position)
}

func TestAnnotateDimensionCollapsesWhenShorterThanMargins(t *testing.T) {
	style := config.Default()
	a := Annotate(geometry.NewVector3(0, 0, 0), geometry.NewVector3(0.2, 0, 0), style)

	mid := geometry.NewVector3(0.1, style.Gap, 0)
	assertVec(t, mid, a.Dimension.Start)
	assertVec(t, mid, a.Dimension.End)
}

func TestAnnotateCoincidentPoints(t *testing.T) {
	p := geometry.NewVector3(3, -2, 1)
	a := Annotate(p, p, config.Default())

	assert.Equal(t, 0.0, a.RawDistance)
	assert.Equal(t, 0.0, a.Snapped)
	assert.Equal(t, "0.00 m", a.Text)
	assertVec(t, geometry.UnitX, a.Direction)
	assertVec(t, geometry.UnitY, a.Normal)

	for _, v := range []geometry.Vector3{
		a.Dimension.Start, a.Dimension.End,
		a.Extensions[0].End, a.Extensions[1].End,
		a.Label.Position,
	} {
		assert.False(t, math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z), "NaN in %v", v)
	}
	assert.False(t, math.IsNaN(a.Label.Rotation))
}

func TestFrameAlongPlaneNormal(t *testing.T) {
	dir, normal := Frame(geometry.NewVector3(1, 1, 0), geometry.NewVector3(1, 1, 4))
	assertVec(t, geometry.UnitZ, dir)
	assertVec(t, geometry.UnitY, normal)
}

func TestFrameNormalIsPerpendicular(t *testing.T) {
	dir, normal := Frame(geometry.NewVector3(0, 0, 0), geometry.NewVector3(3, 4, 2))
	assert.InDelta(t, 1.0, dir.Length(), eps)
	assert.InDelta(t, 1.0, normal.Length(), eps)
	assert.InDelta(t, 0.0, dir.Dot(normal), eps)
	assert.InDelta(t, 0.0, normal.Dot(PlaneNormal), eps)
}

func TestLabelTiers(t *testing.T) {
	style := config.Default()

	tests := []struct {
		degrees  float64
		tier     LabelTier
		rotation float64 // degrees
	}{
		{0, TierShallow, 0},
		{29.9, TierShallow, 0},
		{30, TierDiagonal, 30},
		{45, TierDiagonal, 45},
		{59.9, TierDiagonal, 59.9},
		{60, TierSteep, 0},
		{90, TierSteep, 0},
	}

	for _, tt := range tests {
		rad := tt.degrees * math.Pi / 180
		end := geometry.NewVector3(2*math.Cos(rad), 2*math.Sin(rad), 0)
		a := Annotate(geometry.Vector3{}, end, style)

		require.Equal(t, tt.tier, a.Label.Tier, "angle %v", tt.degrees)
		assert.InDelta(t, tt.rotation*math.Pi/180, a.Label.Rotation, 1e-9, "angle %v", tt.degrees)

		mid := a.Arrows[0].Position.Midpoint(a.Arrows[1].Position)
		offset := a.Label.Position.Sub(mid)
		switch tt.tier {
		case TierShallow, TierDiagonal:
			assertVec(t, a.Normal.Mul(style.LabelOffset), offset, "angle %v", tt.degrees)
		case TierSteep:
			assert.InDelta(t, style.LabelOffset, math.Abs(offset.X), eps, "angle %v", tt.degrees)
			assert.InDelta(t, 0, offset.Y, eps, "angle %v", tt.degrees)
		}
	}
}

func TestLabelRotationStaysReadable(t *testing.T) {
	a := Annotate(geometry.Vector3{}, geometry.NewVector3(-1, 1, 0), config.Default())
	require.Equal(t, TierDiagonal, a.Label.Tier)
	assert.InDelta(t, -math.Pi/4, a.Label.Rotation, eps)

	a = Annotate(geometry.Vector3{}, geometry.NewVector3(-1, -1, 0), config.Default())
	require.Equal(t, TierDiagonal, a.Label.Tier)
	assert.InDelta(t, math.Pi/4, a.Label.Rotation, eps)
}

func TestSteepLabelSitsOnDimensionSide(t *testing.T) {
	style := config.Default()
	a := Annotate(geometry.Vector3{}, geometry.NewVector3(0, 2, 0), style)

	// normal of an upward segment points to -X
	assertVec(t, geometry.UnitX.Negate(), a.Normal)
	assertVec(t, geometry.NewVector3(-style.Gap-style.LabelOffset, 1, 0), a.Label.Position)
}

func TestTierFor(t *testing.T) {
	assert.Equal(t, TierShallow, TierFor(0))
	assert.Equal(t, TierDiagonal, TierFor(30))
	assert.Equal(t, TierDiagonal, TierFor(30-1e-12))
	assert.Equal(t, TierSteep, TierFor(60))
	assert.Equal(t, TierSteep, TierFor(90))
	assert.Equal(t, "diagonal", TierDiagonal.String())
}
