// Package app is the interactive raylib host for the measurement tool. It
// turns mouse input into world-space events on the XY plane, dispatches them
// through a system registry and draws the scene graph every frame.
package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// Options configures the viewer
type Options struct {
	Width, Height int32
	Style         config.Style
	Labels        measurement.LabelFactory
	Logger        *zap.Logger
	// Extent is the half size of the grid drawn on the measurement plane
	Extent float64
	// SnapshotDir receives screenshots taken with P
	SnapshotDir string
}

// App holds the window state between frames
type App struct {
	opts     Options
	registry *system.Registry
	tool     *measurement.Interactor
	graph    *scene.Graph
	camera   *scene.Camera
	logger   *zap.Logger

	Camera      CameraState
	Interaction InteractionState
	UI          UIState
}

// Run opens the window and blocks until it is closed
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 1400, 900
	}
	if opts.Extent <= 0 {
		opts.Extent = 5
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	bbox := geometry.NewBoundingBox()
	bbox.Extend(geometry.NewVector3(-opts.Extent, -opts.Extent, 0))
	bbox.Extend(geometry.NewVector3(opts.Extent, opts.Extent, 0))

	app := &App{
		opts:     opts,
		registry: system.Default,
		graph:    scene.NewGraph(),
		camera:   scene.NewCamera(bbox),
		logger:   opts.Logger,
		UI: UIState{
			textures: make(map[string]rl.Texture2D),
		},
	}
	app.Camera.defaults = *app.camera

	app.tool = system.CreateReference(app.registry, func() *measurement.Interactor {
		return measurement.NewInteractor(
			measurement.WithStyle(opts.Style),
			measurement.WithLogger(opts.Logger.Named("measure")),
			measurement.WithLabelFactory(opts.Labels),
		)
	})
	app.registry.InitAll(system.Dependencies{Scene: app.graph, Camera: app.camera})
	app.registry.ActivateAll()
	defer app.registry.Teardown()

	// Must be before InitWindow
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(opts.Width, opts.Height, "godim")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	// Escape cancels a measurement instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	app.UI.font = rl.LoadFontFromMemory(".ttf", goregular.TTF, 64, nil)
	defer rl.UnloadFont(app.UI.font)
	defer app.unloadTextures()

	app.logger.Info("viewer started", zap.Int32("width", opts.Width), zap.Int32("height", opts.Height))

	for !rl.WindowShouldClose() {
		// Check for Ctrl+C to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.handleInput()
		app.registry.Update(float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(248, 250, 252, 255))

		rl.BeginMode3D(app.rlCamera())
		app.drawGrid()
		app.drawScene()
		rl.EndMode3D()

		app.drawLabels()
		app.drawUI()

		rl.EndDrawing()
	}

	fmt.Printf("%d measurement(s) taken\n", len(app.tool.Measurements()))
	return nil
}
