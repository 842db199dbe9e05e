package measurement

import (
	"go.uber.org/zap"

	"github.com/philipparndt/godim/internal/config"
	"github.com/philipparndt/godim/internal/logging"
	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// LabelFactory turns label text into a drawable. Implementations may attach
// a rasterized texture.
type LabelFactory interface {
	NewLabel(text string) *scene.Label
}

// plainLabels creates text-only labels
type plainLabels struct{}

func (plainLabels) NewLabel(text string) *scene.Label {
	return scene.NewLabel(text, nil)
}

// Option configures an Interactor
type Option func(*Interactor)

// WithStyle sets the annotation style
func WithStyle(style config.Style) Option {
	return func(it *Interactor) {
		it.style = style
	}
}

// WithLogger sets the logger used for state transitions
func WithLogger(logger *zap.Logger) Option {
	return func(it *Interactor) {
		if logger != nil {
			it.logger = logger
		}
	}
}

// WithLabelFactory sets how label drawables are created
func WithLabelFactory(labels LabelFactory) Option {
	return func(it *Interactor) {
		if labels != nil {
			it.labels = labels
		}
	}
}

// Interactor is the two-point distance tool. A first click starts a
// measurement with a dashed preview line, pointer moves stretch the preview
// and a second click commits a dimension annotation. Escape cancels.
type Interactor struct {
	system.Base

	style  config.Style
	labels LabelFactory
	logger *zap.Logger

	scene  scene.Scene
	camera *scene.Camera

	active       bool
	session      *Session
	preview      *scene.Line
	measurements []*Measurement
	materials    *materials
}

var _ system.System = (*Interactor)(nil)

// NewInteractor creates an inactive interactor with the default style
func NewInteractor(opts ...Option) *Interactor {
	it := &Interactor{
		style:  config.Default(),
		labels: plainLabels{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Init binds the scene and camera. A nil scene turns every scene operation
// into a no-op.
func (it *Interactor) Init(deps system.Dependencies) {
	it.scene = deps.Scene
	it.camera = deps.Camera
}

// Activate starts accepting events
func (it *Interactor) Activate() {
	it.active = true
	it.logger.Debug("measurement tool activated")
}

// Deactivate stops accepting events and cancels a measurement in progress
func (it *Interactor) Deactivate() {
	it.Cancel()
	it.active = false
	it.logger.Debug("measurement tool deactivated")
}

// Dispose cancels any session, releases every committed measurement and the
// shared materials. Calling it again is a no-op.
func (it *Interactor) Dispose() {
	it.Deactivate()

	for _, m := range it.measurements {
		m.Group.Dispose()
		it.removeFromScene(m.Group)
	}
	if len(it.measurements) > 0 {
		it.logger.Debug("measurements disposed", zap.Int("count", len(it.measurements)))
	}
	it.measurements = nil

	if it.materials != nil {
		it.materials.dispose()
		it.materials = nil
	}
}

// HandleEvent consumes pointer clicks, pointer moves and the escape key
// while the tool is active
func (it *Interactor) HandleEvent(category system.Category, event system.Event) bool {
	if !it.active {
		return false
	}

	switch category {
	case system.CategoryMouse:
		switch event.Type {
		case system.MouseClick:
			it.click(event.WorldPosition)
			return true
		case system.MouseMove:
			it.move(event.WorldPosition)
			return true
		}
	case system.CategoryKey:
		if event.Key == system.KeyEscape {
			it.Cancel()
			return true
		}
	}
	return false
}

// Cancel ends the measurement in progress without committing it
func (it *Interactor) Cancel() {
	if it.session == nil {
		return
	}
	it.endSession()
	it.logger.Debug("measurement cancelled")
}

// State returns Measuring between the first and the second click
func (it *Interactor) State() State {
	if it.session != nil {
		return Measuring
	}
	return Idle
}

// Active reports whether the tool accepts events
func (it *Interactor) Active() bool {
	return it.active
}

// StartPoint returns the first point of the measurement in progress
func (it *Interactor) StartPoint() (geometry.Vector3, bool) {
	if it.session == nil {
		return geometry.Vector3{}, false
	}
	return it.session.StartPoint, true
}

// Preview returns the preview line, nil when idle
func (it *Interactor) Preview() *scene.Line {
	return it.preview
}

// Measurements returns the committed measurements in creation order
func (it *Interactor) Measurements() []*Measurement {
	out := make([]*Measurement, len(it.measurements))
	copy(out, it.measurements)
	return out
}

// Style returns the annotation style in use
func (it *Interactor) Style() config.Style {
	return it.style
}

func (it *Interactor) click(p geometry.Vector3) {
	if it.session == nil {
		it.start(p)
		return
	}
	it.commit(p)
}

func (it *Interactor) start(p geometry.Vector3) {
	it.session = &Session{StartPoint: p}
	it.preview = scene.NewLine(it.shared().preview, p, p)
	it.addToScene(it.preview)
	it.logger.Debug("measurement started", point("start", p))
}

func (it *Interactor) move(q geometry.Vector3) {
	if it.session == nil || it.preview == nil {
		return
	}
	it.preview.Geometry.SetFromPoints(it.session.StartPoint, q)
}

func (it *Interactor) commit(q geometry.Vector3) {
	m := it.build(it.session.StartPoint, q)
	it.measurements = append(it.measurements, m)
	it.addToScene(m.Group)
	it.endSession()

	it.logger.Debug("measurement committed",
		point("start", m.Annotation.Start),
		point("end", m.Annotation.End),
		zap.Float64("distance", m.Annotation.RawDistance),
		zap.String("label", m.Annotation.Text),
		zap.Stringer("tier", m.Annotation.Label.Tier),
	)
}

func (it *Interactor) endSession() {
	if it.preview != nil {
		it.preview.Dispose()
		it.removeFromScene(it.preview)
		it.preview = nil
	}
	it.session = nil
}

// build creates the drawables for the annotation between start and end
func (it *Interactor) build(start, end geometry.Vector3) *Measurement {
	a := Annotate(start, end, it.style)
	mats := it.shared()

	m := &Measurement{Annotation: a}
	for i, ext := range a.Extensions {
		m.Extensions[i] = scene.NewLine(mats.line, ext.Start, ext.End)
	}
	m.Dimension = scene.NewLine(mats.line, a.Dimension.Start, a.Dimension.End)

	arrow := ArrowTriangle(it.style.ArrowLength, it.style.ArrowWidth)
	for i, head := range a.Arrows {
		mesh := scene.NewMesh(mats.arrow, arrow)
		mesh.Position = head.Position
		mesh.LookAt(head.Direction, PlaneNormal)
		m.Arrows[i] = mesh
	}

	m.Label = it.labels.NewLabel(a.Text)
	m.Label.Position = a.Label.Position
	m.Label.Rotation = a.Label.Rotation

	m.Group = scene.NewGroup("measurement", m.Drawables()...)
	return m
}

func (it *Interactor) shared() *materials {
	if it.materials == nil {
		it.materials = newMaterials(it.style)
	}
	return it.materials
}

func (it *Interactor) addToScene(d scene.Drawable) {
	if it.scene == nil {
		return
	}
	it.scene.Add(d)
}

func (it *Interactor) removeFromScene(d scene.Drawable) {
	if it.scene == nil {
		return
	}
	it.scene.Remove(d)
}

func point(key string, p geometry.Vector3) zap.Field {
	return logging.Point(key, p.X, p.Y, p.Z)
}
