// Package text renders label strings into textures that can be placed in
// the scene.
package text

import (
	"fmt"
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/philipparndt/godim/pkg/scene"
)

// Options configures a Rasterizer
type Options struct {
	Size       float64 // font size in points
	DPI        float64
	Padding    int // pixels around the text
	Foreground color.RGBA
	Background color.RGBA // plate behind the text, transparent to disable
	// WorldHeight is the height of the label quad in world units. The width
	// follows from the image aspect ratio.
	WorldHeight float64
}

// DefaultOptions returns dark text on a light translucent plate
func DefaultOptions() Options {
	return Options{
		Size:        32,
		DPI:         72,
		Padding:     4,
		Foreground:  color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
		Background:  color.RGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xd0},
		WorldHeight: 0.18,
	}
}

// Rasterizer draws label text with the embedded Go Regular font and caches
// the rendered images by text
type Rasterizer struct {
	face  font.Face
	opts  Options
	cache map[string]*image.RGBA
}

// NewRasterizer parses the embedded font and builds a face for opts
func NewRasterizer(opts Options) (*Rasterizer, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if opts.Size <= 0 {
		opts.Size = DefaultOptions().Size
	}
	if opts.DPI <= 0 {
		opts.DPI = DefaultOptions().DPI
	}
	if opts.WorldHeight <= 0 {
		opts.WorldHeight = DefaultOptions().WorldHeight
	}

	face := truetype.NewFace(f, &truetype.Options{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})

	return &Rasterizer{
		face:  face,
		opts:  opts,
		cache: make(map[string]*image.RGBA),
	}, nil
}

// NewLabel creates a label with a texture showing text. Every label gets
// its own texture so disposing one label leaves the others intact.
func (r *Rasterizer) NewLabel(text string) *scene.Label {
	return scene.NewLabel(text, r.Texture(text))
}

// Texture returns a texture for text, or nil if text renders to nothing
func (r *Rasterizer) Texture(text string) *scene.Texture {
	img := r.Image(text)
	if img == nil {
		return nil
	}
	size := img.Bounds().Size()
	height := r.opts.WorldHeight
	return &scene.Texture{
		Image:  img,
		Width:  height * float64(size.X) / float64(size.Y),
		Height: height,
	}
}

// Image returns the rendered image for text, drawing it on first use
func (r *Rasterizer) Image(text string) *image.RGBA {
	if img, exists := r.cache[text]; exists {
		return img
	}

	// Measure text
	_, advance := font.BoundString(r.face, text)
	width := advance.Ceil()

	metrics := r.face.Metrics()
	height := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	if width <= 0 || height <= 0 {
		return nil
	}

	padding := r.opts.Padding
	img := image.NewRGBA(image.Rect(0, 0, width+padding*2, height+padding*2))
	if r.opts.Background.A > 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(r.opts.Background), image.Point{}, draw.Src)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(r.opts.Foreground),
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(padding), Y: fixed.I(padding + ascent)},
	}
	d.DrawString(text)

	r.cache[text] = img
	return img
}

// Len returns the number of cached images
func (r *Rasterizer) Len() int {
	return len(r.cache)
}

// Cleanup drops every cached image
func (r *Rasterizer) Cleanup() {
	r.cache = make(map[string]*image.RGBA)
}
