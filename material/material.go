// Package material holds the uniform payload bound to the preview pipeline.
package material

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ParamCount is the number of user-adjustable parameter slots.
const ParamCount = 4

// Slots is a bit set of uniform slots awaiting upload.
type Slots uint8

// Uniform slots in binding order.
const (
	SlotTime Slots = 1 << iota
	SlotResolution
	SlotParams

	AllSlots = SlotTime | SlotResolution | SlotParams
)

// Has reports whether every slot in o is set in s.
func (s Slots) Has(o Slots) bool { return s&o == o }

// Snapshot is a copy of the payload taken for a render submission.
type Snapshot struct {
	Time       float32
	Resolution mgl32.Vec2
	Params     mgl32.Vec4
}

// State is the live uniform payload of one rendering surface.
type State struct {
	snap  Snapshot
	dirty Slots
}

// New creates a State for a viewport of the given size. Every slot starts dirty
// so the first submission uploads the full payload.
func New(width, height float32) *State {
	return &State{
		snap:  Snapshot{Resolution: mgl32.Vec2{width, height}},
		dirty: AllSlots,
	}
}

func (s *State) SetTime(t float32) {
	if s.snap.Time == t {
		return
	}
	s.snap.Time = t
	s.dirty |= SlotTime
}

func (s *State) SetResolution(width, height float32) {
	res := mgl32.Vec2{width, height}
	if s.snap.Resolution == res {
		return
	}
	s.snap.Resolution = res
	s.dirty |= SlotResolution
}

// SetParameter stores value in parameter slot index. Indices outside
// [0, ParamCount) are ignored.
func (s *State) SetParameter(index int, value float32) {
	if index < 0 || index >= ParamCount {
		return
	}
	if s.snap.Params[index] == value {
		return
	}
	s.snap.Params[index] = value
	s.dirty |= SlotParams
}

func (s *State) Snapshot() Snapshot { return s.snap }

// Dirty returns the slots changed since the last ClearDirty.
func (s *State) Dirty() Slots { return s.dirty }

// ClearDirty is called by the renderer once the dirty slots are uploaded.
func (s *State) ClearDirty() { s.dirty = 0 }
