package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// CameraState keeps the camera the view starts with
type CameraState struct {
	defaults scene.Camera
}

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	*app.camera = app.Camera.defaults
}

// setCameraTopView looks straight down the -Z axis onto the measurement plane
func (app *App) setCameraTopView() {
	app.camera.RotationX = 0
	app.camera.RotationY = 0
	app.camera.UpdatePosition()
}

// setCameraTiltedView looks at the plane from the front and above
func (app *App) setCameraTiltedView() {
	app.camera.RotationX = -math.Pi / 6
	app.camera.RotationY = 0
	app.camera.UpdatePosition()
}

// doPan moves the camera target in the view plane
func (app *App) doPan(delta rl.Vector2) {
	_, right, up := app.camera.Basis()

	// Pan speed based on distance from target
	panSpeed := app.camera.Distance * 0.001

	move := right.Mul(-float64(delta.X) * panSpeed).Add(up.Mul(float64(delta.Y) * panSpeed))
	app.camera.Target = app.camera.Target.Add(move)
	app.camera.UpdatePosition()
}

// rlCamera converts the scene camera for raylib
func (app *App) rlCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   toRL(app.camera.Position),
		Target:     toRL(app.camera.Target),
		Up:         toRL(app.camera.Up),
		Fovy:       float32(app.camera.FOV * 180 / math.Pi),
		Projection: rl.CameraPerspective,
	}
}

func toRL(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
