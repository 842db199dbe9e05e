package text

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/godim/internal/measurement"
)

var _ measurement.LabelFactory = (*Rasterizer)(nil)

func TestNewLabelRendersText(t *testing.T) {
	r, err := NewRasterizer(DefaultOptions())
	require.NoError(t, err)

	label := r.NewLabel("2.50 m")
	require.NotNil(t, label.Texture)
	require.NotNil(t, label.Texture.Image)

	size := label.Texture.Image.Bounds().Size()
	assert.Greater(t, size.X, size.Y, "text is wider than tall")
	assert.InDelta(t, 0.18, label.Texture.Height, 1e-9)
	assert.InDelta(t, 0.18*float64(size.X)/float64(size.Y), label.Texture.Width, 1e-9)

	// background plate in the corner, ink somewhere inside
	assert.Equal(t, DefaultOptions().Background, label.Texture.Image.RGBAAt(0, 0))
	inked := false
	for y := 0; y < size.Y && !inked; y++ {
		for x := 0; x < size.X; x++ {
			if c := label.Texture.Image.RGBAAt(x, y); c.R < 0x80 && c.A == 0xff {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "no dark pixels drawn")
}

func TestCacheByText(t *testing.T) {
	r, err := NewRasterizer(DefaultOptions())
	require.NoError(t, err)

	a := r.NewLabel("1.00 m")
	b := r.NewLabel("1.00 m")
	r.NewLabel("2.00 m")

	assert.Same(t, a.Texture.Image, b.Texture.Image)
	assert.NotSame(t, a.Texture, b.Texture)
	assert.Equal(t, 2, r.Len())

	a.Dispose()
	assert.NotNil(t, b.Texture.Image, "disposing one label keeps the others")

	r.Cleanup()
	assert.Equal(t, 0, r.Len())
}

func TestEmptyTextHasNoTexture(t *testing.T) {
	r, err := NewRasterizer(Options{})
	require.NoError(t, err)

	label := r.NewLabel("")
	assert.Nil(t, label.Texture)
	assert.Equal(t, 0, r.Len())
}

func TestTransparentBackground(t *testing.T) {
	opts := DefaultOptions()
	opts.Background = color.RGBA{}
	r, err := NewRasterizer(opts)
	require.NoError(t, err)

	img := r.Image("5 m")
	require.NotNil(t, img)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
}
