// Package panel implements the floating control panel of parameter sliders.
package panel

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/goshaderview/events"
)

// SlotCount is the number of sliders the viewer creates, one per parameter slot.
const SlotCount = 4

// Layout metrics in framebuffer pixels.
const (
	Border       = 1
	SliderWidth  = 300
	SliderHeight = 12
	RailHeight   = 6
	ThumbSize    = 12
	// TrackWidth is the travel of the thumb's left edge; the track is short by
	// one thumb so the thumb never overhangs the rail.
	TrackWidth = SliderWidth - ThumbSize

	minWidthFraction = 0.2
)

var (
	BackgroundColor = mgl32.Vec4{0.1, 0.1, 0.1, 0.6}
	RailColor       = mgl32.Vec4{0.05, 0.05, 0.05, 1}
	ThumbColor      = mgl32.Vec4{0.35, 0.75, 0.35, 1}
	ThumbHoverColor = mgl32.Vec4{0.45, 0.85, 0.45, 1}
)

// Rect is an axis-aligned rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float32
	Color      mgl32.Vec4
}

func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Panel owns the sliders and the panel's visibility. Visibility and
// interactivity go together: a hidden panel ignores pointer input.
type Panel struct {
	sliders   []*Slider
	visible   bool
	viewportW float32
	viewportH float32
	active    *Slider
}

// New creates n sliders stacked vertically, bound to slots 0..n-1.
func New(n int) *Panel {
	p := &Panel{visible: true}
	for i := 0; i < n; i++ {
		p.sliders = append(p.sliders, newSlider(i))
	}
	return p
}

func (p *Panel) Len() int { return len(p.sliders) }

// Slider returns the slider bound to slot i, or nil.
func (p *Panel) Slider(i int) *Slider {
	if i < 0 || i >= len(p.sliders) {
		return nil
	}
	return p.sliders[i]
}

func (p *Panel) Visible() bool { return p.visible }

// Toggle flips visibility. Hiding cancels any drag and hover.
func (p *Panel) Toggle() events.VisibilityToggled {
	p.visible = !p.visible
	if !p.visible {
		p.release()
		for _, s := range p.sliders {
			s.hovered = false
		}
	}
	return events.VisibilityToggled{Visible: p.visible}
}

// SetViewport records the framebuffer size the panel floats over.
func (p *Panel) SetViewport(width, height float32) {
	p.viewportW, p.viewportH = width, height
}

// Bounds is the container rectangle.
func (p *Panel) Bounds() Rect {
	w := max(float32(SliderWidth+2*Border), p.viewportW*minWidthFraction)
	h := float32(2*Border + len(p.sliders)*SliderHeight)
	return Rect{X: 0, Y: 0, W: w, H: h, Color: BackgroundColor}
}

// SliderBounds is the hit area of slider i.
func (p *Panel) SliderBounds(i int) Rect {
	return Rect{X: Border, Y: float32(Border + i*SliderHeight), W: SliderWidth, H: SliderHeight}
}

// ThumbBounds is the thumb rectangle of slider i.
func (p *Panel) ThumbBounds(i int) Rect {
	b := p.SliderBounds(i)
	s := p.sliders[i]
	color := ThumbColor
	if s.hovered || s.dragging {
		color = ThumbHoverColor
	}
	return Rect{
		X:     b.X + s.ThumbOffset(),
		Y:     b.Y + (SliderHeight-ThumbSize)/2,
		W:     ThumbSize,
		H:     ThumbSize,
		Color: color,
	}
}

// Layout returns the rectangles to draw, back to front: the container, the
// rails, then the thumbs. It is empty when hidden.
func (p *Panel) Layout() []Rect {
	if !p.visible {
		return nil
	}
	rects := make([]Rect, 0, 1+2*len(p.sliders))
	rects = append(rects, p.Bounds())
	for i := range p.sliders {
		b := p.SliderBounds(i)
		rects = append(rects, Rect{
			X:     b.X,
			Y:     b.Y + (SliderHeight-RailHeight)/2,
			W:     b.W,
			H:     RailHeight,
			Color: RailColor,
		})
	}
	for i := range p.sliders {
		rects = append(rects, p.ThumbBounds(i))
	}
	return rects
}

// HandlePointer feeds one pointer event through the sliders and returns the
// value changes it produced. Slider values are not committed here; see Apply.
func (p *Panel) HandlePointer(e events.Event) []events.ParameterChanged {
	if !p.visible {
		p.release()
		return nil
	}
	switch e := e.(type) {
	case events.PointerPressed:
		p.hover(e.X, e.Y)
		return p.press(e.X, e.Y)
	case events.PointerMoved:
		p.hover(e.X, e.Y)
		return p.drag(e.X)
	case events.PointerReleased:
		p.hover(e.X, e.Y)
		p.release()
	}
	return nil
}

// Apply commits a change to the slider bound to its slot. Unknown slots are ignored.
func (p *Panel) Apply(c events.ParameterChanged) {
	if s := p.Slider(c.Slot); s != nil {
		s.set(c.Value)
	}
}

func (p *Panel) hover(x, y float32) {
	for i, s := range p.sliders {
		s.hovered = p.SliderBounds(i).Contains(x, y)
	}
}

func (p *Panel) press(x, y float32) []events.ParameterChanged {
	p.release()
	for i, s := range p.sliders {
		b := p.SliderBounds(i)
		if !b.Contains(x, y) {
			continue
		}
		s.dragging = true
		s.dragX = x
		s.dragFrom = s.proposed
		p.active = s
		if p.ThumbBounds(i).Contains(x, y) {
			return nil
		}
		// snap the thumb's centre to the pointer
		v := valueAt(x-b.X-ThumbSize/2, s.rng, TrackWidth)
		s.dragFrom = v
		return p.emit(s, v)
	}
	return nil
}

func (p *Panel) drag(x float32) []events.ParameterChanged {
	s := p.active
	if s == nil {
		return nil
	}
	v := s.dragFrom + (x-s.dragX)/TrackWidth*(s.rng.Max-s.rng.Min)
	return p.emit(s, v)
}

func (p *Panel) emit(s *Slider, v float32) []events.ParameterChanged {
	v, changed := s.propose(v)
	if !changed {
		return nil
	}
	return []events.ParameterChanged{{Slot: s.slot, Value: v}}
}

func (p *Panel) release() {
	if p.active != nil {
		p.active.endDrag()
		p.active = nil
	}
}
