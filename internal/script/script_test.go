package script

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/godim/internal/measurement"
	"github.com/philipparndt/godim/internal/system"
	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/philipparndt/godim/pkg/scene"
)

const sample = `
events:
  - click: [0, 0, 0]
  - move: [0.5, 0, 0]
  - click: [1, 0, 0]
  - click: [0, 0, 0]
  - key: Escape
`

func TestParse(t *testing.T) {
	steps, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []Step{
		Click(0, 0, 0),
		Move(0.5, 0, 0),
		Click(1, 0, 0),
		Click(0, 0, 0),
		Key(system.KeyEscape),
	}, steps)
	assert.Equal(t, "MOUSE_MOVE (0.500, 0.000, 0.000)", steps[1].String())
	assert.Equal(t, "KEY_DOWN Escape", steps[4].String())
}

func TestParseEmpty(t *testing.T) {
	steps, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown kind", "events:\n  - click: [0, 0, 0]\n  - wheel: 3\n", "step 1"},
		{"short point", "events:\n  - move: [1, 2]\n", "needs 3 coordinates"},
		{"not a mapping", "events:\n  - click\n", "one key"},
		{"two keys", "events:\n  - {click: [0, 0, 0], key: Escape}\n", "one key"},
		{"bad number", "events:\n  - click: [a, 0, 0]\n", "click"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	_, err := Parse(strings.NewReader("events:\n  - scroll: 1\n"))
	assert.ErrorIs(t, err, ErrUnknownStep)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	steps, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, steps, 5)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPlayThroughRegistry(t *testing.T) {
	reg := system.NewRegistry()
	tool := system.CreateReference(reg, func() *measurement.Interactor {
		return measurement.NewInteractor()
	})
	graph := scene.NewGraph()
	reg.InitAll(system.Dependencies{Scene: graph})
	reg.ActivateAll()

	steps, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	steps = append(steps, Key("a"))
	assert.Equal(t, 5, Play(reg, steps))

	ms := tool.Measurements()
	require.Len(t, ms, 1)
	assert.Equal(t, "1.00 m", ms[0].Label.Text)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), ms[0].Annotation.End)
	assert.Equal(t, measurement.Idle, tool.State())
	assert.Equal(t, 1, graph.Len())

	reg.Teardown()
	assert.Equal(t, 0, graph.Len())
}
