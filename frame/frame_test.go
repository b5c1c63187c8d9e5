package frame

import (
	"testing"

	"github.com/modelgen-run/modelgen/value"
	"github.com/stretchr/testify/assert"
)

type fakeModule struct{ globals *value.Map }

func (f *fakeModule) ModuleName() string  { return "fake" }
func (f *fakeModule) Globals() *value.Map { return f.globals }

func TestStack_PushPopRestoresTop(t *testing.T) {
	mod := &fakeModule{globals: value.NewMap()}
	s := &Stack{}
	assert.Nil(t, s.Top())

	base := NewModuleFrame(mod)
	s.Push(base)
	assert.Equal(t, base, s.Top())

	call := NewCallFrame(mod, value.NewMap(), nil, "f")
	s.Push(call)
	assert.Equal(t, call, s.Top())
	assert.Equal(t, base, call.Prev)

	popped := s.Pop()
	assert.Equal(t, call, popped)
	assert.Equal(t, base, s.Top())
	assert.Nil(t, base.Next)
}

func TestModuleFrame_LocalsAliasGlobals(t *testing.T) {
	mod := &fakeModule{globals: value.NewMap()}
	f := NewModuleFrame(mod)
	f.Locals.Set("x", value.NewInt(1))
	v, ok := mod.Globals().Get("x")
	assert.True(t, ok)
	assert.Equal(t, value.NewInt(1), v)
}

func TestStack_Depth(t *testing.T) {
	mod := &fakeModule{globals: value.NewMap()}
	s := &Stack{}
	s.Push(NewModuleFrame(mod))
	s.Push(NewCallFrame(mod, value.NewMap(), nil, "f"))
	assert.Equal(t, 2, s.Depth())
	s.Pop()
	assert.Equal(t, 1, s.Depth())
}
