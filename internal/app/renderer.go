package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/godim/pkg/scene"
	"github.com/philipparndt/godim/pkg/snapshot"
)

// drawGrid draws unit grid lines on the measurement plane with the X and Y
// axes highlighted
func (app *App) drawGrid() {
	extent := app.opts.Extent
	n := int(math.Ceil(extent))
	minor := rl.NewColor(226, 232, 240, 255)

	for i := -n; i <= n; i++ {
		f := float32(i)
		e := float32(extent)
		rl.DrawLine3D(rl.Vector3{X: f, Y: -e}, rl.Vector3{X: f, Y: e}, minor)
		rl.DrawLine3D(rl.Vector3{X: -e, Y: f}, rl.Vector3{X: e, Y: f}, minor)
	}
	rl.DrawLine3D(rl.Vector3{X: -float32(extent)}, rl.Vector3{X: float32(extent)}, rl.NewColor(239, 68, 68, 255))
	rl.DrawLine3D(rl.Vector3{Y: -float32(extent)}, rl.Vector3{Y: float32(extent)}, rl.NewColor(34, 197, 94, 255))
}

// drawScene draws every line and mesh in the scene graph
func (app *App) drawScene() {
	thickness := float32(app.camera.Distance * 0.0015)

	app.graph.Walk(func(d scene.Drawable) {
		switch obj := d.(type) {
		case *scene.Line:
			app.drawLine(obj, thickness)
		case *scene.Mesh:
			if obj.Material == nil {
				return
			}
			col := obj.Material.Color
			for _, tri := range obj.Triangles() {
				v1, v2, v3 := toRL(tri.V1), toRL(tri.V2), toRL(tri.V3)
				// Both windings so the arrow is visible from either side
				rl.DrawTriangle3D(v1, v2, v3, col)
				rl.DrawTriangle3D(v1, v3, v2, col)
			}
		}
	})
}

func (app *App) drawLine(line *scene.Line, thickness float32) {
	if line.Material == nil {
		return
	}
	points := line.Points()
	distances := line.LineDistances()
	col := line.Material.Color

	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		if !line.Material.Dashed {
			drawThickLine(toRL(a), toRL(b), thickness, col)
			continue
		}
		for _, dash := range snapshot.Dashes(a, b, distances[i-1], line.Material.DashSize, line.Material.GapSize) {
			rl.DrawLine3D(toRL(dash[0]), toRL(dash[1]), col)
		}
	}
}

func drawThickLine(start, end rl.Vector3, thickness float32, col color.RGBA) {
	rl.DrawLine3D(start, end, col)
	if rl.Vector3Distance(start, end) > thickness {
		rl.DrawCylinderEx(start, end, thickness, thickness, 6, col)
	}
}

// drawLabels draws label drawables in screen space, scaled to their world
// height and rotated with the segment
func (app *App) drawLabels() {
	cam := app.rlCamera()
	_, _, up := app.camera.Basis()
	seen := make(map[string]bool)

	app.graph.Walk(func(d scene.Drawable) {
		label, ok := d.(*scene.Label)
		if !ok {
			return
		}

		height := app.opts.Style.LabelHeight
		if label.Texture != nil && label.Texture.Height > 0 {
			height = label.Texture.Height
		}
		center := rl.GetWorldToScreen(toRL(label.Position), cam)
		top := rl.GetWorldToScreen(toRL(label.Position.Add(up.Mul(height))), cam)
		pixelHeight := rl.Vector2Distance(center, top)
		if pixelHeight < 4 {
			return
		}
		// screen y points down, so rotation flips sign
		rotation := float32(-label.Rotation * 180 / math.Pi)

		if label.Texture != nil && label.Texture.Image != nil {
			key := label.ID().String()
			seen[key] = true
			tex := app.labelTexture(key, label)
			w, h := float32(tex.Width), float32(tex.Height)
			scale := pixelHeight / h
			rl.DrawTexturePro(tex,
				rl.NewRectangle(0, 0, w, h),
				rl.NewRectangle(center.X, center.Y, w*scale, h*scale),
				rl.Vector2{X: w * scale / 2, Y: h * scale / 2},
				rotation, rl.White)
			return
		}

		size := rl.MeasureTextEx(app.UI.font, label.Text, pixelHeight, 1)
		rl.DrawTextPro(app.UI.font, label.Text, center,
			rl.Vector2{X: size.X / 2, Y: size.Y / 2},
			rotation, pixelHeight, 1, app.opts.Style.LabelColor.ToRGBA())
	})

	// Unload textures of labels that left the scene
	for key, tex := range app.UI.textures {
		if !seen[key] {
			rl.UnloadTexture(tex)
			delete(app.UI.textures, key)
		}
	}
}

// labelTexture uploads the label image once and caches the GPU texture
func (app *App) labelTexture(key string, label *scene.Label) rl.Texture2D {
	if tex, exists := app.UI.textures[key]; exists {
		return tex
	}
	img := rl.NewImageFromImage(label.Texture.Image)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(tex, rl.FilterBilinear)
	app.UI.textures[key] = tex
	return tex
}

func (app *App) unloadTextures() {
	for key, tex := range app.UI.textures {
		rl.UnloadTexture(tex)
		delete(app.UI.textures, key)
	}
}
