package scene

// Group bundles drawables so they enter and leave a scene together
type Group struct {
	object
	Name     string
	children []Drawable
}

// NewGroup creates a group holding children
func NewGroup(name string, children ...Drawable) *Group {
	g := &Group{object: newObject(), Name: name}
	g.children = append(g.children, children...)
	return g
}

// Kind returns KindGroup
func (g *Group) Kind() Kind {
	return KindGroup
}

// Children returns a copy of the direct children
func (g *Group) Children() []Drawable {
	out := make([]Drawable, len(g.children))
	copy(out, g.children)
	return out
}

// Walk visits every non-group descendant depth first
func (g *Group) Walk(fn func(Drawable)) {
	for _, child := range g.children {
		if sub, ok := child.(*Group); ok {
			sub.Walk(fn)
			continue
		}
		fn(child)
	}
}

// Dispose disposes every descendant
func (g *Group) Dispose() {
	if g.disposed {
		return
	}
	g.Walk(func(d Drawable) { d.Dispose() })
	g.disposed = true
}
