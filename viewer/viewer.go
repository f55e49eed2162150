// Package viewer wires the live-update pipeline together: it owns the material,
// the surface, the animation clock and the control panel, queues window input
// and advances everything once per frame.
package viewer

import (
	"context"
	"log/slog"

	"github.com/richinsley/goshaderview/clock"
	"github.com/richinsley/goshaderview/events"
	"github.com/richinsley/goshaderview/material"
	"github.com/richinsley/goshaderview/panel"
	"github.com/richinsley/goshaderview/scheduler"
	"github.com/richinsley/goshaderview/surface"
)

const (
	KeyToggleUI events.Key = 'M'
	KeyRecord   events.Key = 'R'
)

// Step names, in execution order.
const (
	StepClock   = "clock"
	StepSurface = "surface"
	StepPanel   = "panel"
	StepKeys    = "keys"
)

type Config struct {
	Width, Height int            // initial framebuffer size
	Clock         func() float64 // seconds from a monotonic source; nil uses the wall clock
}

// FrameView is everything the renderer needs for one submission.
type FrameView struct {
	Material material.Snapshot
	Dirty    material.Slots
	Geometry *surface.Geometry
	Overlay  []panel.Rect
}

type Viewer struct {
	material *material.State
	surface  *surface.Synchronizer
	clock    *clock.Clock
	panel    *panel.Panel
	sched    *scheduler.Scheduler

	resizes events.Queue[events.Resize]
	pointer events.Queue[events.Event]
	changes events.Queue[events.ParameterChanged]
	keys    events.Queue[events.KeyPressed]

	recordRequested bool
}

func New(cfg Config) *Viewer {
	v := &Viewer{
		material: material.New(float32(max(cfg.Width, 0)), float32(max(cfg.Height, 0))),
		surface:  surface.NewSynchronizer(cfg.Width, cfg.Height),
		clock:    clock.New(cfg.Clock),
		panel:    panel.New(panel.SlotCount),
	}
	v.panel.SetViewport(float32(cfg.Width), float32(cfg.Height))
	v.sched = scheduler.New(
		scheduler.Step{Name: StepClock, Run: v.advanceClock},
		scheduler.Step{Name: StepSurface, Run: v.syncSurface},
		scheduler.Step{Name: StepPanel, Run: v.drainPanel},
		scheduler.Step{Name: StepKeys, Run: v.drainKeys},
	)
	return v
}

// Input sinks. They only queue; nothing changes until the next Tick.

func (v *Viewer) OnResize(width, height int) {
	v.resizes.Push(events.Resize{Width: width, Height: height})
}

func (v *Viewer) OnKey(key events.Key) {
	v.keys.Push(events.KeyPressed{Key: key})
}

func (v *Viewer) OnCursor(x, y float32) {
	v.pointer.Push(events.PointerMoved{X: x, Y: y})
}

func (v *Viewer) OnMouseButton(pressed bool, x, y float32) {
	if pressed {
		v.pointer.Push(events.PointerPressed{X: x, Y: y})
	} else {
		v.pointer.Push(events.PointerReleased{X: x, Y: y})
	}
}

// Tick runs one frame of updates.
func (v *Viewer) Tick() scheduler.Frame {
	return v.sched.Tick()
}

// Steps lists the update steps in the order Tick runs them.
func (v *Viewer) Steps() []string { return v.sched.Steps() }

// Frame returns the state to render after Tick.
func (v *Viewer) Frame() FrameView {
	return FrameView{
		Material: v.material.Snapshot(),
		Dirty:    v.material.Dirty(),
		Geometry: v.surface.Geometry(),
		Overlay:  v.panel.Layout(),
	}
}

// MarkUploaded tells the viewer the dirty uniform slots reached the GPU.
func (v *Viewer) MarkUploaded() { v.material.ClearDirty() }

// TakeRecordRequest reports, once, that the record key was pressed an odd
// number of times since the last call.
func (v *Viewer) TakeRecordRequest() bool {
	r := v.recordRequested
	v.recordRequested = false
	return r
}

func (v *Viewer) Material() *material.State      { return v.material }
func (v *Viewer) Panel() *panel.Panel            { return v.panel }
func (v *Viewer) Surface() *surface.Synchronizer { return v.surface }

func (v *Viewer) advanceClock(scheduler.Frame) {
	v.clock.Advance(v.material)
}

func (v *Viewer) syncSurface(scheduler.Frame) {
	v.resizes.Drain(v.surface.Notify)
	g, rebuilt := v.surface.Sync()
	if !rebuilt {
		return
	}
	v.material.SetResolution(g.Width, g.Height)
	v.panel.SetViewport(g.Width, g.Height)
}

func (v *Viewer) drainPanel(scheduler.Frame) {
	v.pointer.Drain(func(e events.Event) {
		for _, c := range v.panel.HandlePointer(e) {
			v.changes.Push(c)
		}
	})
	v.changes.Drain(v.applyChange)
}

// applyChange keeps the slider and its material slot in step.
func (v *Viewer) applyChange(c events.ParameterChanged) {
	v.panel.Apply(c)
	v.material.SetParameter(c.Slot, c.Value)
	if l := logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		p := v.material.Snapshot().Params
		l.Debug("parameter changed", "slot", c.Slot, "value", c.Value, "params", p[:])
	}
}

func (v *Viewer) drainKeys(scheduler.Frame) {
	v.keys.Drain(func(e events.KeyPressed) {
		switch e.Key {
		case KeyToggleUI:
			t := v.panel.Toggle()
			logger().Info("control panel toggled", "visible", t.Visible)
		case KeyRecord:
			v.recordRequested = !v.recordRequested
			logger().Info("recording toggle requested")
		}
	})
}
