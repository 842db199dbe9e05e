package scene

import (
	"sync"

	"github.com/google/uuid"
	"github.com/philipparndt/godim/pkg/geometry"
)

// Graph is a retained in-memory scene. Objects are kept in insertion order
// and indexed by ID. It is safe for one writer and concurrent readers.
type Graph struct {
	mu      sync.RWMutex
	objects []Drawable
	byID    map[uuid.UUID]Drawable
}

// NewGraph creates an empty scene graph
func NewGraph() *Graph {
	return &Graph{
		byID: make(map[uuid.UUID]Drawable),
	}
}

// Add appends objects that are not already present
func (g *Graph) Add(objects ...Drawable) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, obj := range objects {
		if obj == nil {
			continue
		}
		if _, exists := g.byID[obj.ID()]; exists {
			continue
		}
		g.byID[obj.ID()] = obj
		g.objects = append(g.objects, obj)
	}
}

// Remove drops objects from the scene. Unknown objects are ignored.
func (g *Graph) Remove(objects ...Drawable) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, obj := range objects {
		if obj == nil {
			continue
		}
		if _, exists := g.byID[obj.ID()]; !exists {
			continue
		}
		delete(g.byID, obj.ID())
		for i, existing := range g.objects {
			if existing.ID() == obj.ID() {
				g.objects = append(g.objects[:i], g.objects[i+1:]...)
				break
			}
		}
	}
}

// Contains reports whether the object is a top-level member of the scene
func (g *Graph) Contains(obj Drawable) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, exists := g.byID[obj.ID()]
	return exists
}

// Len returns the number of top-level objects
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.objects)
}

// Objects returns a snapshot of the top-level objects
func (g *Graph) Objects() []Drawable {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Drawable, len(g.objects))
	copy(out, g.objects)
	return out
}

// Walk visits every leaf drawable, descending into groups
func (g *Graph) Walk(fn func(Drawable)) {
	for _, obj := range g.Objects() {
		if group, ok := obj.(*Group); ok {
			group.Walk(fn)
			continue
		}
		fn(obj)
	}
}

// Bounds returns the box enclosing every line, mesh and label anchor
func (g *Graph) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	g.Walk(func(d Drawable) {
		switch obj := d.(type) {
		case *Line:
			for _, p := range obj.Points() {
				bbox.Extend(p)
			}
		case *Mesh:
			for _, tri := range obj.Triangles() {
				for _, v := range tri.Vertices() {
					bbox.Extend(v)
				}
			}
		case *Label:
			bbox.Extend(obj.Position)
		}
	})
	return bbox
}
