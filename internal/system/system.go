// Package system defines the lifecycle contract shared by interactive tools
// and the registry that hosts them.
package system

import (
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

// Dependencies are handed to every system on Init
type Dependencies struct {
	Scene  scene.Scene
	Camera *scene.Camera
}

// System is an interactive component driven by a host application
type System interface {
	Init(deps Dependencies)
	Update(deltaTime float64)
	Activate()
	Deactivate()
	Dispose()
	// HandleEvent returns true when the event was consumed
	HandleEvent(category Category, event Event) bool
}

// Base provides no-op lifecycle hooks for embedding
type Base struct{}

func (Base) Init(Dependencies) {}
func (Base) Update(float64) {}
func (Base) Activate() {}
func (Base) Deactivate() {}
func (Base) Dispose() {}
func (Base) HandleEvent(Category, Event) bool { return false }

// Category groups events by input device
type Category string

const (
	CategoryMouse Category = "MOUSE"
	CategoryKey   Category = "KEY"
)

// EventType distinguishes events within a category
type EventType string

const (
	MouseClick EventType = "MOUSE_CLICK"
	MouseMove  EventType = "MOUSE_MOVE"
	KeyDown    EventType = "KEY_DOWN"
)

// KeyEscape is the key identifier hosts send for the escape key
const KeyEscape = "Escape"

// Event is an input event already resolved to world space by the host
type Event struct {
	Type          EventType
	WorldPosition geometry.Vector3
	Key           string
}

// Click builds a pointer click event
func Click(p geometry.Vector3) Event {
	return Event{Type: MouseClick, WorldPosition: p}
}

// Move builds a pointer move event
func Move(p geometry.Vector3) Event {
	return Event{Type: MouseMove, WorldPosition: p}
}

// Key builds a key press event
func Key(key string) Event {
	return Event{Type: KeyDown, Key: key}
}
