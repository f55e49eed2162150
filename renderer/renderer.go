package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderview/encoder"
	"github.com/richinsley/goshaderview/graphics"
	"github.com/richinsley/goshaderview/shader"
	"github.com/richinsley/goshaderview/surface"
	"github.com/richinsley/goshaderview/translator"
	"github.com/richinsley/goshaderview/viewer"
)

var glInitOnce sync.Once

// Renderer draws the material onto the surface quad, then the control panel.
type Renderer struct {
	context  graphics.Context
	family   shader.Family
	program  uint32
	slots    slotUploader
	quadVAO  uint32
	quadVBO  uint32
	geometry *surface.Geometry
	overlay  *overlay
	recorder *encoder.Recorder
}

func NewRenderer(ctx graphics.Context, spec shader.Spec, src shader.Sources) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		family:  spec.Family,
	}

	r.context.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	var err error
	switch spec.Family {
	case shader.FamilyLegacyGLSL:
		err = r.initLegacyProgram(src)
	default:
		err = r.initSPIRVProgram(src)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", spec.SourcePath, err)
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, surface.VertexCount*surface.FloatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	const stride = surface.FloatsPerVertex * 4
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.overlay, err = newOverlay()
	if err != nil {
		r.Shutdown()
		return nil, err
	}

	log.Printf("Loaded %s shader %s", spec.Family, spec.SourcePath)
	return r, nil
}

func (r *Renderer) initSPIRVProgram(src shader.Sources) error {
	program, err := newSPIRVProgram(src.Vertex, src.Fragment)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.slots = newBufferSlots()
	return nil
}

func (r *Renderer) initLegacyProgram(src shader.Sources) error {
	vs, err := translator.TranslateLegacy(src.Vertex, "vertex")
	if err != nil {
		return err
	}
	fs, err := translator.TranslateLegacy(src.Fragment, "fragment")
	if err != nil {
		return err
	}
	program, err := newProgram(vs.Code, fs.Code)
	if err != nil {
		return fmt.Errorf("failed to create shader program: %w", err)
	}
	r.program = program
	r.slots = newNamedSlots(program, fs.Variables, vs.Variables)
	return nil
}

// Draw submits one frame. Dirty slots are uploaded even when the surface is
// degenerate, so nothing is lost while the window is minimised.
func (r *Renderer) Draw(frame viewer.FrameView) {
	gl.UseProgram(r.program)
	r.slots.upload(frame.Material, frame.Dirty)

	g := frame.Geometry
	if g != r.geometry {
		r.uploadGeometry(g)
	}
	if g == nil || g.Degenerate() {
		return
	}

	width, height := int(g.Width), int(g.Height)
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.program)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, surface.VertexCount)
	gl.BindVertexArray(0)

	r.capture(width, height)
	r.overlay.draw(frame.Overlay, g.Width, g.Height)
}

// uploadGeometry replaces the quad vertices. Geometry is immutable, so a new
// pointer is the only change to watch for.
func (r *Renderer) uploadGeometry(g *surface.Geometry) {
	r.geometry = g
	if g == nil || g.Degenerate() {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(g.Vertices)*4, gl.Ptr(&g.Vertices[0]))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (r *Renderer) Shutdown() {
	r.stopRecording()
	if r.overlay != nil {
		r.overlay.destroy()
	}
	if r.slots != nil {
		r.slots.destroy()
	}
	gl.DeleteProgram(r.program)
	gl.DeleteBuffers(1, &r.quadVBO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
}

// Run drives the interactive loop until the window is closed: update, draw,
// then present and poll input for the next frame.
func (r *Renderer) Run(v *viewer.Viewer) {
	for !r.context.ShouldClose() {
		v.Tick()
		r.Draw(v.Frame())
		v.MarkUploaded()
		if v.TakeRecordRequest() {
			r.ToggleRecording()
		}
		r.context.EndFrame()
	}
}
