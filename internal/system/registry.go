package system

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrNotCreated is returned when a system is looked up before creation
var ErrNotCreated = errors.New("system instance not created")

// Registry holds at most one instance per concrete system type
type Registry struct {
	mu      sync.Mutex
	systems map[reflect.Type]System
	order   []reflect.Type
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		systems: make(map[reflect.Type]System),
	}
}

// Default is the process-wide registry
var Default = NewRegistry()

// CreateReference returns the registered instance of T, creating it with
// factory on first use.
func CreateReference[T System](r *Registry, factory func() T) T {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.systems[key]; ok {
		return existing.(T)
	}
	instance := factory()
	r.systems[key] = instance
	r.order = append(r.order, key)
	return instance
}

// GetReference returns the registered instance of T
func GetReference[T System](r *Registry) (T, error) {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.systems[key]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", key, ErrNotCreated)
	}
	return existing.(T), nil
}

// Len returns the number of registered systems
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.order)
}

// snapshot returns the systems in registration order
func (r *Registry) snapshot() []System {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]System, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.systems[key])
	}
	return out
}

// InitAll binds dependencies on every system
func (r *Registry) InitAll(deps Dependencies) {
	for _, s := range r.snapshot() {
		s.Init(deps)
	}
}

// ActivateAll enables every system
func (r *Registry) ActivateAll() {
	for _, s := range r.snapshot() {
		s.Activate()
	}
}

// DeactivateAll disables every system
func (r *Registry) DeactivateAll() {
	for _, s := range r.snapshot() {
		s.Deactivate()
	}
}

// Update advances every system by deltaTime seconds
func (r *Registry) Update(deltaTime float64) {
	for _, s := range r.snapshot() {
		s.Update(deltaTime)
	}
}

// Dispatch offers the event to systems in registration order and stops at
// the first one that consumes it.
func (r *Registry) Dispatch(category Category, event Event) bool {
	for _, s := range r.snapshot() {
		if s.HandleEvent(category, event) {
			return true
		}
	}
	return false
}

// Teardown disposes every system in reverse registration order and empties
// the registry.
func (r *Registry) Teardown() {
	systems := r.snapshot()
	for i := len(systems) - 1; i >= 0; i-- {
		systems[i].Dispose()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.systems = make(map[reflect.Type]System)
	r.order = nil
}
