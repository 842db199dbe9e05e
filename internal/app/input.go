package app

import (
	"fmt"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/snapshot"
)

// clickTolerance is how far the mouse may travel, in pixels, between press
// and release for the gesture to count as a click
const clickTolerance = 4

// InteractionState tracks the mouse between frames
type InteractionState struct {
	mouseDownPos rl.Vector2
	mouseMoved   bool
	isPanning    bool
	lastPick     geometry.Vector3
	hasPick      bool
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()

	// Camera view preset shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyOne) {
		app.setCameraTiltedView()
	}

	if rl.IsKeyPressed(rl.KeyM) {
		if app.tool.Active() {
			app.registry.DeactivateAll()
		} else {
			app.registry.ActivateAll()
		}
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.saveSnapshot()
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.registry.Dispatch(system.CategoryKey, system.Key(system.KeyEscape))
	}

	// Zoom
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.camera.Zoom(-float64(wheel) * 0.1)
	}

	// Orbit with the right button
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.camera.Rotate(float64(delta.Y)*0.005, -float64(delta.X)*0.005)
		}
	}

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = mouse
		app.Interaction.mouseMoved = false
		// Pan if Shift is pressed
		app.Interaction.isPanning = rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	}

	// Camera panning with Shift + mouse drag or middle mouse button drag
	if (rl.IsMouseButtonDown(rl.MouseLeftButton) && app.Interaction.isPanning) || rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if delta.X != 0 || delta.Y != 0 {
			app.Interaction.mouseMoved = true
			app.doPan(delta)
		}
	}
	if rl.IsMouseButtonDown(rl.MouseLeftButton) && movedBeyond(app.Interaction.mouseDownPos, mouse, clickTolerance) {
		app.Interaction.mouseMoved = true
	}

	// Pick the plane under the cursor
	p, ok := app.pick(mouse)
	app.Interaction.lastPick, app.Interaction.hasPick = p, ok
	if !ok {
		return
	}
	if rl.GetMouseDelta() != (rl.Vector2{}) {
		app.registry.Dispatch(system.CategoryMouse, system.Move(p))
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) && !app.Interaction.mouseMoved && !app.Interaction.isPanning {
		app.registry.Dispatch(system.CategoryMouse, system.Click(p))
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.isPanning = false
	}
}

// pick intersects the ray under the cursor with the z = 0 plane
func (app *App) pick(mouse rl.Vector2) (geometry.Vector3, bool) {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	return app.camera.PickPlane(float64(mouse.X), float64(mouse.Y), w, h, 0)
}

func movedBeyond(a, b rl.Vector2, tolerance float32) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy > tolerance*tolerance
}

// saveSnapshot renders the scene offscreen and writes a PNG
func (app *App) saveSnapshot() {
	opts := snapshot.DefaultOptions()
	opts.Width, opts.Height = rl.GetScreenWidth(), rl.GetScreenHeight()

	img := snapshot.Render(app.graph.Objects(), app.camera, opts)
	name := fmt.Sprintf("godim-%s.png", time.Now().Format("20060102-150405"))
	path := filepath.Join(app.opts.SnapshotDir, name)

	if err := snapshot.Save(path, img); err != nil {
		app.logger.Error("snapshot failed", zap.Error(err))
		app.UI.status = fmt.Sprintf("Snapshot failed: %v", err)
		return
	}
	app.logger.Info("snapshot written", zap.String("path", path))
	app.UI.status = "Saved " + path
	app.UI.statusTime = time.Now()
}
