package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTick_RunsStepsInOrder(t *testing.T) {
	var trace []string
	step := func(name string) Step {
		return Step{Name: name, Run: func(Frame) { trace = append(trace, name) }}
	}
	s := New(step("clock"), step("surface"), step("panel"), step("keys"))

	s.Tick()
	s.Tick()

	assert.Equal(t, []string{
		"clock", "surface", "panel", "keys",
		"clock", "surface", "panel", "keys",
	}, trace)
	assert.Equal(t, []string{"clock", "surface", "panel", "keys"}, s.Steps())
}

func TestTick_FrameIndex(t *testing.T) {
	var seen []uint64
	s := New(Step{Name: "record", Run: func(f Frame) { seen = append(seen, f.Index) }})

	assert.Equal(t, uint64(0), s.Tick().Index)
	assert.Equal(t, uint64(1), s.Tick().Index)
	assert.Equal(t, uint64(2), s.Tick().Index)
	assert.Equal(t, []uint64{0, 1, 2}, seen)
}

func TestTick_NoSteps(t *testing.T) {
	s := New()
	assert.NotPanics(t, func() { s.Tick() })
	assert.Empty(t, s.Steps())
}
