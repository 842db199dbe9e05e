// Package snapshot renders scene drawables into an image without a GPU and
// writes the result as PNG, WebP or TGA.
package snapshot

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/vector"

	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// Options controls the output image
type Options struct {
	Width, Height int
	// Supersample renders at a multiple of the output size and scales down
	Supersample int
	Background  color.RGBA
	LineWidth   float64 // pixels at output size
}

// DefaultOptions returns an 800x600 image on white
func DefaultOptions() Options {
	return Options{
		Width:       800,
		Height:      600,
		Supersample: 2,
		Background:  color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		LineWidth:   2,
	}
}

// renderer draws into a single canvas at working resolution
type renderer struct {
	dst       *image.RGBA
	camera    *scene.Camera
	width     float64
	height    float64
	lineWidth float64
}

// Render draws objects as seen by camera. Groups are drawn child by child.
func Render(objects []scene.Drawable, camera *scene.Camera, opts Options) *image.RGBA {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = DefaultOptions().Width, DefaultOptions().Height
	}
	ss := opts.Supersample
	if ss < 1 {
		ss = 1
	}

	w, h := opts.Width*ss, opts.Height*ss
	r := &renderer{
		dst:       image.NewRGBA(image.Rect(0, 0, w, h)),
		camera:    camera,
		width:     float64(w),
		height:    float64(h),
		lineWidth: math.Max(opts.LineWidth, 1) * float64(ss),
	}
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	for _, obj := range objects {
		r.drawObject(obj)
	}

	if ss == 1 {
		return r.dst
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.CatmullRom.Scale(out, out.Bounds(), r.dst, r.dst.Bounds(), draw.Src, nil)
	return out
}

func (r *renderer) drawObject(obj scene.Drawable) {
	switch o := obj.(type) {
	case *scene.Group:
		o.Walk(r.drawObject)
	case *scene.Line:
		r.drawLine(o)
	case *scene.Mesh:
		r.drawMesh(o)
	case *scene.Label:
		r.drawLabel(o)
	}
}

func (r *renderer) project(p geometry.Vector3) (float32, float32) {
	x, y, _ := r.camera.Project(p, r.width, r.height)
	return float32(x), float32(y)
}

func (r *renderer) drawLine(line *scene.Line) {
	if line.Material == nil {
		return
	}
	points := line.Points()
	distances := line.LineDistances()
	src := image.NewUniform(line.Material.Color)

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if !line.Material.Dashed {
			r.strokeSegment(a, b, src)
			continue
		}
		for _, seg := range Dashes(a, b, distances[i-1], line.Material.DashSize, line.Material.GapSize) {
			r.strokeSegment(seg[0], seg[1], src)
		}
	}
}

// strokeSegment fills the screen-space quad around the projected segment
func (r *renderer) strokeSegment(a, b geometry.Vector3, src image.Image) {
	ax, ay := r.project(a)
	bx, by := r.project(b)

	dx, dy := float64(bx-ax), float64(by-ay)
	length := math.Hypot(dx, dy)
	half := r.lineWidth / 2
	if length < 1e-6 {
		return
	}
	nx := float32(-dy / length * half)
	ny := float32(dx / length * half)

	z := vector.NewRasterizer(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
	z.Draw(r.dst, r.dst.Bounds(), src, image.Point{})
}

func (r *renderer) drawMesh(mesh *scene.Mesh) {
	if mesh.Material == nil {
		return
	}
	triangles := mesh.Triangles()
	if len(triangles) == 0 {
		return
	}

	z := vector.NewRasterizer(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	for _, tri := range triangles {
		x1, y1 := r.project(tri.V1)
		x2, y2 := r.project(tri.V2)
		x3, y3 := r.project(tri.V3)
		z.MoveTo(x1, y1)
		z.LineTo(x2, y2)
		z.LineTo(x3, y3)
		z.ClosePath()
	}
	z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(mesh.Material.Color), image.Point{})
}

// drawLabel composites the label texture centred on the projected label
// position, scaled to its world height and rotated in the view plane
func (r *renderer) drawLabel(label *scene.Label) {
	tex := label.Texture
	if tex == nil || tex.Image == nil {
		return
	}
	size := tex.Image.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return
	}

	cx, cy := r.project(label.Position)
	_, _, up := r.camera.Basis()
	tx, ty := r.project(label.Position.Add(up.Mul(tex.Height)))
	pixelHeight := math.Hypot(float64(tx-cx), float64(ty-cy))
	if pixelHeight < 1 {
		return
	}
	s := pixelHeight / float64(size.Y)

	// screen y points down, so a counter-clockwise world rotation turns
	// clockwise on screen
	cos, sin := math.Cos(label.Rotation), math.Sin(label.Rotation)
	a, b := s*cos, s*sin
	d, e := -s*sin, s*cos
	hw, hh := float64(size.X)/2, float64(size.Y)/2

	m := f64.Aff3{
		a, b, float64(cx) - (a*hw + b*hh),
		d, e, float64(cy) - (d*hw + e*hh),
	}
	draw.BiLinear.Transform(r.dst, m, tex.Image, tex.Image.Bounds(), draw.Over, nil)
}

// Dashes splits the segment a-b into dash pieces. offset is the distance
// along the whole line at which a starts, so patterns continue across
// vertices.
func Dashes(a, b geometry.Vector3, offset, dash, gap float64) [][2]geometry.Vector3 {
	length := a.Distance(b)
	if dash <= 0 || gap <= 0 || length == 0 {
		return [][2]geometry.Vector3{{a, b}}
	}

	period := dash + gap
	var out [][2]geometry.Vector3

	// position within the pattern at a
	phase := math.Mod(offset, period)
	t := 0.0
	for t < length {
		if phase < dash {
			end := math.Min(t+dash-phase, length)
			out = append(out, [2]geometry.Vector3{a.Lerp(b, t/length), a.Lerp(b, end/length)})
			t = end
			phase = dash
			continue
		}
		t += period - phase
		phase = 0
	}
	return out
}
