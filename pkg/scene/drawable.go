// Package scene holds the drawables the measurement tools place in a 3D view
// and a retained in-memory scene graph that stores them.
package scene

import "github.com/google/uuid"

// Kind identifies the concrete drawable type
type Kind int

const (
	KindLine Kind = iota
	KindMesh
	KindLabel
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindMesh:
		return "mesh"
	case KindLabel:
		return "label"
	case KindGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Drawable is anything that can be added to a Scene
type Drawable interface {
	ID() uuid.UUID
	Kind() Kind
	// Dispose releases the geometry and any material the drawable owns
	// exclusively. Shared materials are left alone. Safe to call twice.
	Dispose()
	Disposed() bool
}

// Scene is the target the tools add drawables to and remove them from
type Scene interface {
	Add(objects ...Drawable)
	Remove(objects ...Drawable)
}

type object struct {
	id       uuid.UUID
	disposed bool
}

func newObject() object {
	return object{id: uuid.New()}
}

// ID returns the unique identifier of the drawable
func (o *object) ID() uuid.UUID {
	return o.id
}

// Disposed reports whether Dispose has been called
func (o *object) Disposed() bool {
	return o.disposed
}
