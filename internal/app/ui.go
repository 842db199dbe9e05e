package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/version"
)

// UIState holds fonts, cached label textures and the status line
type UIState struct {
	font       rl.Font
	textures   map[string]rl.Texture2D
	status     string
	statusTime time.Time
}

var helpLines = []string{
	"Left click: start / finish measurement",
	"Esc: cancel measurement",
	"Right drag: orbit, Shift+drag: pan, wheel: zoom",
	"Home: reset view, T: top view, 1: tilted view",
	"M: toggle tool, P: save snapshot",
}

// drawUI draws the user interface
func (app *App) drawUI() {
	fontSize := float32(18)
	small := float32(15)
	y := float32(10)
	textColor := rl.NewColor(15, 23, 42, 255)
	muted := rl.NewColor(100, 116, 139, 255)

	state := app.tool.State().String()
	if !app.tool.Active() {
		state = "inactive"
	}
	header := fmt.Sprintf("godim %s  |  %s  |  %d measurement(s)", version.GetVersion(), state, len(app.tool.Measurements()))
	rl.DrawTextEx(app.UI.font, header, rl.Vector2{X: 10, Y: y}, fontSize, 1, textColor)
	y += 26

	for _, line := range helpLines {
		rl.DrawTextEx(app.UI.font, line, rl.Vector2{X: 10, Y: y}, small, 1, muted)
		y += 18
	}

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Cursor position bottom-left
	if app.Interaction.hasPick {
		p := app.Interaction.lastPick
		pos := fmt.Sprintf("x %.2f  y %.2f", p.X, p.Y)
		rl.DrawTextEx(app.UI.font, pos, rl.Vector2{X: 10, Y: screenHeight - 30}, small, 1, muted)
	}

	// Live measurement preview (bottom-right corner)
	if start, ok := app.tool.StartPoint(); ok && app.Interaction.hasPick {
		style := app.tool.Style()
		distance := start.Distance(app.Interaction.lastPick)
		previewText := measurement.FormatDistance(measurement.Snap(distance, style.SnapIncrement), style.Unit, style.Precision)

		boxPadding := float32(10)
		textSize := rl.MeasureTextEx(app.UI.font, previewText, fontSize, 1)
		boxWidth := textSize.X + boxPadding*2
		boxHeight := textSize.Y + boxPadding*2
		boxX := screenWidth - boxWidth - 20
		boxY := screenHeight - boxHeight - 20

		rl.DrawRectangle(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), rl.NewColor(255, 255, 255, 220))
		rl.DrawRectangleLines(int32(boxX), int32(boxY), int32(boxWidth), int32(boxHeight), style.LineColor.ToRGBA())
		rl.DrawTextEx(app.UI.font, previewText, rl.Vector2{X: boxX + boxPadding, Y: boxY + boxPadding}, fontSize, 1, textColor)
	}

	// Status message fades after a few seconds
	if app.UI.status != "" && time.Since(app.UI.statusTime) < 4*time.Second {
		size := rl.MeasureTextEx(app.UI.font, app.UI.status, small, 1)
		rl.DrawTextEx(app.UI.font, app.UI.status, rl.Vector2{X: screenWidth - size.X - 20, Y: 10}, small, 1, muted)
	}
}
