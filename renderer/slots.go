package renderer

import (
	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderview/material"
	"github.com/richinsley/goshaderview/shader"
	gst "github.com/richinsley/goshadertranslator"
)

// slotCount is the number of uniform slots: time, resolution, params.
const slotCount = 3

var slotOrder = [slotCount]material.Slots{material.SlotTime, material.SlotResolution, material.SlotParams}

// slotUploader pushes dirty material slots into the bound program.
type slotUploader interface {
	upload(snap material.Snapshot, dirty material.Slots)
	destroy()
}

// packSlot lays a slot out as one std140 vec4: scalars and vec2 occupy the
// leading components.
func packSlot(slot int, snap material.Snapshot) [4]float32 {
	switch slot {
	case 0:
		return [4]float32{snap.Time}
	case 1:
		return [4]float32{snap.Resolution.X(), snap.Resolution.Y()}
	default:
		return [4]float32(snap.Params)
	}
}

// bufferSlots backs each slot with a 16-byte uniform buffer bound at the
// slot's binding index. Used by SPIR-V programs.
type bufferSlots struct {
	ubos [slotCount]uint32
}

func newBufferSlots() *bufferSlots {
	s := &bufferSlots{}
	gl.GenBuffers(slotCount, &s.ubos[0])
	for i, ubo := range s.ubos {
		gl.BindBuffer(gl.UNIFORM_BUFFER, ubo)
		gl.BufferData(gl.UNIFORM_BUFFER, 16, nil, gl.DYNAMIC_DRAW)
		gl.BindBufferBase(gl.UNIFORM_BUFFER, uint32(i), ubo)
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	return s
}

func (s *bufferSlots) upload(snap material.Snapshot, dirty material.Slots) {
	for i, slot := range slotOrder {
		if !dirty.Has(slot) {
			continue
		}
		data := packSlot(i, snap)
		gl.BindBuffer(gl.UNIFORM_BUFFER, s.ubos[i])
		gl.BufferSubData(gl.UNIFORM_BUFFER, 0, 16, gl.Ptr(&data[0]))
	}
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

func (s *bufferSlots) destroy() {
	gl.DeleteBuffers(slotCount, &s.ubos[0])
}

// namedSlots locates slots by uniform name in translated GLSL programs.
type namedSlots struct {
	locs [slotCount]int32
}

// mappedName returns the translated name of a source uniform, searching each
// stage in turn. ok is false when no stage uses it.
func mappedName(name string, stages ...map[string]gst.ShaderVariable) (string, bool) {
	for _, vars := range stages {
		if v, ok := vars[name]; ok {
			return v.MappedName, true
		}
	}
	return "", false
}

func newNamedSlots(program uint32, stages ...map[string]gst.ShaderVariable) *namedSlots {
	s := &namedSlots{}
	names := [slotCount]string{shader.UniformTime, shader.UniformResolution, shader.UniformParams}
	for i, name := range names {
		s.locs[i] = -1
		if mapped, ok := mappedName(name, stages...); ok {
			s.locs[i] = gl.GetUniformLocation(program, gl.Str(mapped+"\x00"))
		}
	}
	return s
}

func (s *namedSlots) upload(snap material.Snapshot, dirty material.Slots) {
	if dirty.Has(material.SlotTime) && s.locs[0] != -1 {
		gl.Uniform1f(s.locs[0], snap.Time)
	}
	if dirty.Has(material.SlotResolution) && s.locs[1] != -1 {
		gl.Uniform2f(s.locs[1], snap.Resolution.X(), snap.Resolution.Y())
	}
	if dirty.Has(material.SlotParams) && s.locs[2] != -1 {
		p := snap.Params
		gl.Uniform4f(s.locs[2], p[0], p[1], p[2], p[3])
	}
}

func (s *namedSlots) destroy() {}
