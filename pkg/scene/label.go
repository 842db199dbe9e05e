package scene

import "github.com/philipparndt/godim/pkg/geometry"

// Label is a text quad that can be positioned and rotated in its plane
type Label struct {
	object
	Text     string
	Position geometry.Vector3
	// Rotation about the view normal in radians, 0 = horizontal
	Rotation float64
	Texture  *Texture
}

// NewLabel creates a label; texture may be nil for text-only hosts
func NewLabel(text string, texture *Texture) *Label {
	return &Label{
		object:  newObject(),
		Text:    text,
		Texture: texture,
	}
}

// Kind returns KindLabel
func (l *Label) Kind() Kind {
	return KindLabel
}

// Dispose releases the texture
func (l *Label) Dispose() {
	if l.disposed {
		return
	}
	if l.Texture != nil {
		l.Texture.Dispose()
	}
	l.disposed = true
}
