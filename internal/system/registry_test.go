package system

import (
	"errors"
	"testing"

	"github.com/philipparndt/godim/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	Base
	name     string
	log      *[]string
	consumes bool
}

func (r *recorder) Init(Dependencies) { *r.log = append(*r.log, r.name+":init") }
func (r *recorder) Activate()         { *r.log = append(*r.log, r.name+":activate") }
func (r *recorder) Dispose()          { *r.log = append(*r.log, r.name+":dispose") }

func (r *recorder) HandleEvent(category Category, event Event) bool {
	*r.log = append(*r.log, r.name+":"+string(event.Type))
	return r.consumes
}

type first struct{ recorder }
type second struct{ recorder }

func TestCreateReferenceReturnsSingleton(t *testing.T) {
	reg := NewRegistry()
	var log []string
	created := 0

	a := CreateReference(reg, func() *first {
		created++
		return &first{recorder{name: "a", log: &log}}
	})
	b := CreateReference(reg, func() *first {
		created++
		return &first{recorder{name: "b", log: &log}}
	})

	assert.Same(t, a, b)
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, reg.Len())

	got, err := GetReference[*first](reg)
	require.NoError(t, err)
	assert.Same(t, a, got)
}

func TestGetReferenceBeforeCreate(t *testing.T) {
	reg := NewRegistry()

	_, err := GetReference[*second](reg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotCreated))
}

func TestDispatchStopsAtFirstConsumer(t *testing.T) {
	reg := NewRegistry()
	var log []string
	CreateReference(reg, func() *first { return &first{recorder{name: "a", log: &log}} })
	CreateReference(reg, func() *second { return &second{recorder{name: "b", log: &log, consumes: true}} })

	reg.InitAll(Dependencies{})
	reg.ActivateAll()
	consumed := reg.Dispatch(CategoryMouse, Click(geometry.Vector3{}))

	assert.True(t, consumed)
	assert.Equal(t, []string{
		"a:init", "b:init",
		"a:activate", "b:activate",
		"a:MOUSE_CLICK", "b:MOUSE_CLICK",
	}, log)
}

func TestTeardownDisposesInReverseOrder(t *testing.T) {
	reg := NewRegistry()
	var log []string
	CreateReference(reg, func() *first { return &first{recorder{name: "a", log: &log}} })
	CreateReference(reg, func() *second { return &second{recorder{name: "b", log: &log}} })

	reg.Teardown()

	assert.Equal(t, []string{"b:dispose", "a:dispose"}, log)
	assert.Equal(t, 0, reg.Len())
	assert.False(t, reg.Dispatch(CategoryKey, Key(KeyEscape)))
}

func TestBaseIgnoresEverything(t *testing.T) {
	var s System = Base{}
	s.Init(Dependencies{})
	s.Update(0.016)
	assert.False(t, s.HandleEvent(CategoryKey, Key(KeyEscape)))
}
