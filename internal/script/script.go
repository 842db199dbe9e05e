// Package script reads YAML event scripts and plays them into a system
// dispatcher. A script looks like
//
//	events:
//	  - click: [0, 0, 0]
//	  - move: [1, 0, 0]
//	  - click: [1, 0, 0]
//	  - key: Escape
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/geometry"
)

// ErrUnknownStep is returned for a step kind other than click, move or key
var ErrUnknownStep = errors.New("unknown step")

// Step is one input event
type Step struct {
	Category system.Category
	Event    system.Event
}

func (s Step) String() string {
	switch s.Event.Type {
	case system.MouseClick, system.MouseMove:
		p := s.Event.WorldPosition
		return fmt.Sprintf("%s (%.3f, %.3f, %.3f)", s.Event.Type, p.X, p.Y, p.Z)
	default:
		return fmt.Sprintf("%s %s", s.Event.Type, s.Event.Key)
	}
}

// UnmarshalYAML decodes a single-key mapping such as {click: [x, y, z]}
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: expected a mapping with one key", node.Line)
	}
	kind, value := node.Content[0].Value, node.Content[1]

	switch kind {
	case "click", "move":
		var xyz []float64
		if err := value.Decode(&xyz); err != nil {
			return fmt.Errorf("line %d: %s: %w", value.Line, kind, err)
		}
		if len(xyz) != 3 {
			return fmt.Errorf("line %d: %s needs 3 coordinates, got %d", value.Line, kind, len(xyz))
		}
		p := geometry.NewVector3(xyz[0], xyz[1], xyz[2])
		s.Category = system.CategoryMouse
		if kind == "click" {
			s.Event = system.Click(p)
		} else {
			s.Event = system.Move(p)
		}
	case "key":
		var key string
		if err := value.Decode(&key); err != nil {
			return fmt.Errorf("line %d: key: %w", value.Line, err)
		}
		s.Category = system.CategoryKey
		s.Event = system.Key(key)
	default:
		return fmt.Errorf("line %d: %w %q", node.Line, ErrUnknownStep, kind)
	}
	return nil
}

// Click returns a click step
func Click(x, y, z float64) Step {
	return Step{Category: system.CategoryMouse, Event: system.Click(geometry.NewVector3(x, y, z))}
}

// Move returns a pointer move step
func Move(x, y, z float64) Step {
	return Step{Category: system.CategoryMouse, Event: system.Move(geometry.NewVector3(x, y, z))}
}

// Key returns a key press step
func Key(key string) Step {
	return Step{Category: system.CategoryKey, Event: system.Key(key)}
}

// Parse reads a script from r
func Parse(r io.Reader) ([]Step, error) {
	var doc struct {
		Events []yaml.Node `yaml:"events"`
	}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}

	steps := make([]Step, 0, len(doc.Events))
	for i := range doc.Events {
		var step Step
		if err := doc.Events[i].Decode(&step); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// Load reads a script file
func Load(path string) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	steps, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return steps, nil
}

// Dispatcher receives events, returning true when one was consumed
type Dispatcher interface {
	Dispatch(category system.Category, event system.Event) bool
}

// Play sends every step to d in order and returns how many were consumed
func Play(d Dispatcher, steps []Step) int {
	consumed := 0
	for _, step := range steps {
		if d.Dispatch(step.Category, step.Event) {
			consumed++
		}
	}
	return consumed
}
