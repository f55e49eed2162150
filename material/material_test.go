package material

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNew_FullyDefinedAndDirty(t *testing.T) {
	s := New(800, 600)
	snap := s.Snapshot()
	assert.Equal(t, float32(0), snap.Time)
	assert.Equal(t, mgl32.Vec2{800, 600}, snap.Resolution)
	assert.Equal(t, mgl32.Vec4{}, snap.Params)
	assert.Equal(t, AllSlots, s.Dirty())
}

func TestSetParameter_OnlyTouchesSlot(t *testing.T) {
	for index := 0; index < ParamCount; index++ {
		for _, value := range []float32{0, 0.25, 0.73, 1} {
			s := New(1, 1)
			s.SetParameter((index+1)%ParamCount, 0.5)
			before := s.Snapshot()

			s.SetParameter(index, value)
			after := s.Snapshot()

			assert.Equal(t, value, after.Params[index])
			for other := 0; other < ParamCount; other++ {
				if other != index {
					assert.Equal(t, before.Params[other], after.Params[other])
				}
			}
			assert.Equal(t, before.Time, after.Time)
			assert.Equal(t, before.Resolution, after.Resolution)
		}
	}
}

func TestSetParameter_OutOfRangeIsNoop(t *testing.T) {
	s := New(640, 480)
	s.SetParameter(1, 0.3)
	s.ClearDirty()
	before := s.Snapshot()

	for _, index := range []int{-1, 4, 5, 1 << 20} {
		assert.NotPanics(t, func() { s.SetParameter(index, 0.9) })
	}
	assert.Equal(t, before, s.Snapshot())
	assert.Equal(t, Slots(0), s.Dirty())
}

func TestSetTime_Idempotent(t *testing.T) {
	once := New(10, 10)
	once.SetTime(1.5)

	twice := New(10, 10)
	twice.SetTime(1.5)
	twice.SetTime(1.5)

	assert.Equal(t, once.Snapshot(), twice.Snapshot())
}

func TestDirtyTracking(t *testing.T) {
	s := New(10, 10)
	s.ClearDirty()

	s.SetTime(0)
	s.SetResolution(10, 10)
	s.SetParameter(0, 0)
	assert.Equal(t, Slots(0), s.Dirty(), "unchanged values do not mark dirty")

	s.SetTime(2)
	assert.True(t, s.Dirty().Has(SlotTime))
	assert.False(t, s.Dirty().Has(SlotResolution))

	s.SetResolution(400, 300)
	s.SetParameter(3, 1)
	assert.Equal(t, AllSlots, s.Dirty())

	s.ClearDirty()
	assert.Equal(t, Slots(0), s.Dirty())
	assert.Equal(t, Snapshot{Time: 2, Resolution: mgl32.Vec2{400, 300}, Params: mgl32.Vec4{0, 0, 0, 1}}, s.Snapshot())
}
