package panel

import (
	"testing"

	"github.com/richinsley/goshaderview/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// thumbCentre returns the centre of slider i's thumb.
func thumbCentre(p *Panel, i int) (float32, float32) {
	r := p.ThumbBounds(i)
	return r.X + r.W/2, r.Y + r.H/2
}

func applyAll(p *Panel, changes []events.ParameterChanged) {
	for _, c := range changes {
		p.Apply(c)
	}
}

func TestNew_FourSlidersDistinctSlots(t *testing.T) {
	p := New(SlotCount)
	require.Equal(t, 4, p.Len())
	seen := map[int]bool{}
	for i := 0; i < p.Len(); i++ {
		s := p.Slider(i)
		assert.Equal(t, i, s.Slot())
		assert.Equal(t, float32(0), s.Value())
		assert.Equal(t, UnitRange, s.Range())
		seen[s.Slot()] = true
	}
	assert.Len(t, seen, 4)
	assert.Nil(t, p.Slider(4))
	assert.Nil(t, p.Slider(-1))
	assert.True(t, p.Visible())
}

func TestLayout_VerticalStack(t *testing.T) {
	p := New(SlotCount)
	for i := 1; i < p.Len(); i++ {
		prev, cur := p.SliderBounds(i-1), p.SliderBounds(i)
		assert.Equal(t, prev.X, cur.X)
		assert.Equal(t, prev.Y+SliderHeight, cur.Y)
	}

	rects := p.Layout()
	require.Len(t, rects, 1+2*SlotCount)
	assert.Equal(t, p.Bounds(), rects[0])
	assert.Equal(t, BackgroundColor, rects[0].Color)
	for i := 0; i < SlotCount; i++ {
		assert.Equal(t, RailColor, rects[1+i].Color)
		assert.Equal(t, float32(RailHeight), rects[1+i].H)
		assert.Equal(t, ThumbColor, rects[1+SlotCount+i].Color)
	}
}

func TestLayout_ContainerFollowsViewport(t *testing.T) {
	p := New(SlotCount)
	p.SetViewport(2000, 1000)
	rects := p.Layout()
	require.NotEmpty(t, rects)
	assert.Equal(t, float32(400), rects[0].W)
	for _, r := range rects[1:] {
		assert.LessOrEqual(t, r.X+r.W, rects[0].W, "sliders stay inside the container")
		assert.LessOrEqual(t, r.Y+r.H, rects[0].H)
	}
}

func TestBounds_MinimumWidth(t *testing.T) {
	p := New(SlotCount)
	p.SetViewport(800, 600)
	assert.Equal(t, float32(SliderWidth+2*Border), p.Bounds().W)
	p.SetViewport(2000, 1000)
	assert.Equal(t, float32(400), p.Bounds().W)
	assert.Equal(t, float32(2*Border+4*SliderHeight), p.Bounds().H)
}

func TestThumbOffset(t *testing.T) {
	assert.Equal(t, float32(0), ThumbOffset(0, UnitRange, 200))
	assert.Equal(t, float32(100), ThumbOffset(0.5, UnitRange, 200))
	assert.Equal(t, float32(200), ThumbOffset(1, UnitRange, 200))
	assert.Equal(t, float32(200), ThumbOffset(3, UnitRange, 200))
	assert.Equal(t, float32(0), ThumbOffset(-1, UnitRange, 200))
	assert.Equal(t, float32(50), ThumbOffset(15, Range{Min: 10, Max: 30}, 200))
	assert.Equal(t, float32(0), ThumbOffset(0.5, Range{Min: 1, Max: 1}, 200))
	assert.Equal(t, float32(0), ThumbOffset(0.5, UnitRange, 0))
}

func TestDragThumb(t *testing.T) {
	p := New(SlotCount)
	x, y := thumbCentre(p, 2)

	assert.Empty(t, p.HandlePointer(events.PointerPressed{X: x, Y: y}), "grabbing the thumb does not move it")
	assert.True(t, p.Slider(2).Dragging())

	changes := p.HandlePointer(events.PointerMoved{X: x + 0.73*TrackWidth, Y: y + 40})
	require.Len(t, changes, 1)
	assert.Equal(t, 2, changes[0].Slot)
	assert.InDelta(t, 0.73, changes[0].Value, 1e-5)

	// not committed until applied
	assert.Equal(t, float32(0), p.Slider(2).Value())
	applyAll(p, changes)
	assert.InDelta(t, 0.73, p.Slider(2).Value(), 1e-5)
	assert.InDelta(t, 0.73*TrackWidth, p.Slider(2).ThumbOffset(), 1e-3)

	p.HandlePointer(events.PointerReleased{X: x + 0.73*TrackWidth, Y: y})
	assert.False(t, p.Slider(2).Dragging())
	assert.Empty(t, p.HandlePointer(events.PointerMoved{X: x, Y: y}))

	for _, other := range []int{0, 1, 3} {
		assert.Equal(t, float32(0), p.Slider(other).Value())
	}
}

func TestDrag_ClampsToRange(t *testing.T) {
	p := New(SlotCount)
	x, y := thumbCentre(p, 0)
	p.HandlePointer(events.PointerPressed{X: x, Y: y})

	changes := p.HandlePointer(events.PointerMoved{X: x + 10*TrackWidth, Y: y})
	require.Len(t, changes, 1)
	assert.Equal(t, float32(1), changes[0].Value)
	applyAll(p, changes)

	assert.Empty(t, p.HandlePointer(events.PointerMoved{X: x + 20*TrackWidth, Y: y}), "no change, no event")

	changes = p.HandlePointer(events.PointerMoved{X: x - 10*TrackWidth, Y: y})
	require.Len(t, changes, 1)
	assert.Equal(t, float32(0), changes[0].Value)
}

func TestDrag_MultipleMovesBeforeApply(t *testing.T) {
	p := New(SlotCount)
	x, y := thumbCentre(p, 1)
	p.HandlePointer(events.PointerPressed{X: x, Y: y})

	var changes []events.ParameterChanged
	changes = append(changes, p.HandlePointer(events.PointerMoved{X: x + 0.25*TrackWidth, Y: y})...)
	changes = append(changes, p.HandlePointer(events.PointerMoved{X: x + 0.5*TrackWidth, Y: y})...)
	require.Len(t, changes, 2)
	applyAll(p, changes)
	assert.InDelta(t, 0.5, p.Slider(1).Value(), 1e-6)
}

func TestTrackClickSnaps(t *testing.T) {
	p := New(SlotCount)
	b := p.SliderBounds(3)
	// thumb centre lands under the pointer
	x := b.X + ThumbSize/2 + 0.5*TrackWidth

	changes := p.HandlePointer(events.PointerPressed{X: x, Y: b.Y + 3})
	require.Len(t, changes, 1)
	assert.Equal(t, 3, changes[0].Slot)
	assert.InDelta(t, 0.5, changes[0].Value, 1e-6)
	applyAll(p, changes)

	// dragging continues from the snapped value
	changes = p.HandlePointer(events.PointerMoved{X: x + 0.1*TrackWidth, Y: b.Y})
	require.Len(t, changes, 1)
	assert.InDelta(t, 0.6, changes[0].Value, 1e-5)
}

func TestPressOutsideSliders(t *testing.T) {
	p := New(SlotCount)
	assert.Empty(t, p.HandlePointer(events.PointerPressed{X: 500, Y: 500}))
	assert.Empty(t, p.HandlePointer(events.PointerMoved{X: 600, Y: 500}))
	for i := 0; i < p.Len(); i++ {
		assert.False(t, p.Slider(i).Dragging())
	}
}

func TestHover(t *testing.T) {
	p := New(SlotCount)
	x, y := thumbCentre(p, 1)
	p.HandlePointer(events.PointerMoved{X: x, Y: y})
	assert.True(t, p.Slider(1).Hovered())
	assert.False(t, p.Slider(0).Hovered())
	assert.Equal(t, ThumbHoverColor, p.ThumbBounds(1).Color)

	p.HandlePointer(events.PointerMoved{X: 900, Y: 900})
	assert.False(t, p.Slider(1).Hovered())
	assert.Equal(t, ThumbColor, p.ThumbBounds(1).Color)
}

func TestToggle_HiddenIgnoresInput(t *testing.T) {
	p := New(SlotCount)
	x, y := thumbCentre(p, 0)
	p.HandlePointer(events.PointerPressed{X: x, Y: y})

	ev := p.Toggle()
	assert.False(t, ev.Visible)
	assert.False(t, p.Visible())
	assert.False(t, p.Slider(0).Dragging(), "hiding cancels the drag")
	assert.Empty(t, p.Layout())

	assert.Empty(t, p.HandlePointer(events.PointerPressed{X: x, Y: y}))
	assert.Empty(t, p.HandlePointer(events.PointerMoved{X: x + 100, Y: y}))
	for i := 0; i < p.Len(); i++ {
		assert.False(t, p.Slider(i).Dragging())
		assert.False(t, p.Slider(i).Hovered())
	}

	ev = p.Toggle()
	assert.True(t, ev.Visible)
	assert.Len(t, p.Layout(), 1+2*SlotCount)
	p.HandlePointer(events.PointerPressed{X: x, Y: y})
	changes := p.HandlePointer(events.PointerMoved{X: x + 0.5*TrackWidth, Y: y})
	assert.Len(t, changes, 1)
}

func TestApply_UnknownSlotIgnored(t *testing.T) {
	p := New(SlotCount)
	assert.NotPanics(t, func() {
		p.Apply(events.ParameterChanged{Slot: 9, Value: 1})
		p.Apply(events.ParameterChanged{Slot: -1, Value: 1})
	})
	p.Apply(events.ParameterChanged{Slot: 1, Value: 4})
	assert.Equal(t, float32(1), p.Slider(1).Value(), "values stay within range")
}
