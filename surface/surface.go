// Package surface keeps the preview quad matched to the viewport.
package surface

import (
	"github.com/richinsley/goshaderview/events"
)

// FloatsPerVertex is the interleaved layout: position xy, uv.
const FloatsPerVertex = 4

// VertexCount is the number of vertices in the two triangles of the quad.
const VertexCount = 6

// Geometry is the quad covering the viewport, centred on the origin in pixel
// units. A Geometry is never modified once built.
type Geometry struct {
	Width, Height float32
	Vertices      [VertexCount * FloatsPerVertex]float32
}

// NewGeometry builds a quad of the given size. Negative sizes are treated as zero.
func NewGeometry(width, height int) *Geometry {
	w := float32(max(width, 0))
	h := float32(max(height, 0))
	hw, hh := w/2, h/2
	g := &Geometry{Width: w, Height: h}
	// uv has its origin at the top-left corner
	g.Vertices = [VertexCount * FloatsPerVertex]float32{
		-hw, hh, 0, 0,
		-hw, -hh, 0, 1,
		hw, -hh, 1, 1,
		-hw, hh, 0, 0,
		hw, -hh, 1, 1,
		hw, hh, 1, 0,
	}
	return g
}

// Degenerate reports a zero-area quad, which renders nothing.
func (g *Geometry) Degenerate() bool {
	return g.Width == 0 || g.Height == 0
}

// Synchronizer rebuilds the geometry when the viewport was resized.
type Synchronizer struct {
	geom    *Geometry
	pending *events.Resize
}

func NewSynchronizer(width, height int) *Synchronizer {
	return &Synchronizer{geom: NewGeometry(width, height)}
}

// Notify records a resize. Only the last notification before Sync is used.
func (s *Synchronizer) Notify(e events.Resize) {
	s.pending = &e
}

// Pending reports whether a resize is waiting for Sync.
func (s *Synchronizer) Pending() bool { return s.pending != nil }

// Sync replaces the geometry if a resize was observed since the last call.
func (s *Synchronizer) Sync() (*Geometry, bool) {
	if s.pending == nil {
		return s.geom, false
	}
	s.geom = NewGeometry(s.pending.Width, s.pending.Height)
	s.pending = nil
	return s.geom, true
}

// Geometry returns the currently installed geometry.
func (s *Synchronizer) Geometry() *Geometry { return s.geom }
