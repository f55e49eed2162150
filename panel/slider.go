package panel

// Range is the closed interval a slider value lives in.
type Range struct {
	Min, Max float32
}

// UnitRange is the range of every parameter slider.
var UnitRange = Range{Min: 0, Max: 1}

func (r Range) Clamp(v float32) float32 {
	return min(max(v, r.Min), r.Max)
}

// ThumbOffset projects value into a track of the given display width. Values
// outside r are clamped; an empty range or track puts the thumb at 0.
func ThumbOffset(value float32, r Range, trackWidth float32) float32 {
	span := r.Max - r.Min
	if span <= 0 || trackWidth <= 0 {
		return 0
	}
	return (r.Clamp(value) - r.Min) / span * trackWidth
}

// valueAt is the inverse of ThumbOffset.
func valueAt(offset float32, r Range, trackWidth float32) float32 {
	if trackWidth <= 0 {
		return r.Min
	}
	return r.Clamp(r.Min + offset/trackWidth*(r.Max-r.Min))
}

// Slider drives one parameter slot.
type Slider struct {
	slot     int
	value    float32
	proposed float32 // last value emitted and not yet applied
	rng      Range

	hovered  bool
	dragging bool
	dragX    float32 // pointer x when the drag started
	dragFrom float32 // value when the drag started
}

func newSlider(slot int) *Slider {
	return &Slider{slot: slot, rng: UnitRange}
}

func (s *Slider) Slot() int      { return s.slot }
func (s *Slider) Value() float32 { return s.value }
func (s *Slider) Range() Range   { return s.rng }
func (s *Slider) Hovered() bool  { return s.hovered }
func (s *Slider) Dragging() bool { return s.dragging }

// ThumbOffset is the thumb's distance from the left end of the track.
func (s *Slider) ThumbOffset() float32 {
	return ThumbOffset(s.value, s.rng, TrackWidth)
}

func (s *Slider) propose(v float32) (float32, bool) {
	v = s.rng.Clamp(v)
	if v == s.proposed {
		return v, false
	}
	s.proposed = v
	return v, true
}

func (s *Slider) set(v float32) {
	s.value = s.rng.Clamp(v)
	s.proposed = s.value
}

func (s *Slider) endDrag() {
	s.dragging = false
}
