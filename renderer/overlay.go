package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderview/panel"
	"github.com/richinsley/goshaderview/shader"
)

// overlayFloatsPerVertex is position (2) plus colour (4).
const overlayFloatsPerVertex = 6

// overlayVertices expands rectangles into two triangles each, in framebuffer
// pixels with a top-left origin.
func overlayVertices(rects []panel.Rect) []float32 {
	out := make([]float32, 0, len(rects)*6*overlayFloatsPerVertex)
	for _, r := range rects {
		x0, y0 := r.X, r.Y
		x1, y1 := r.X+r.W, r.Y+r.H
		c := r.Color
		for _, p := range [6][2]float32{{x0, y0}, {x0, y1}, {x1, y1}, {x0, y0}, {x1, y1}, {x1, y0}} {
			out = append(out, p[0], p[1], c[0], c[1], c[2], c[3])
		}
	}
	return out
}

// overlay draws the control panel on top of the preview.
type overlay struct {
	program     uint32
	viewportLoc int32
	vao         uint32
	vbo         uint32
	capacity    int // floats allocated in vbo
}

func newOverlay() (*overlay, error) {
	program, err := newProgram(shader.GetOverlayVertexShader(), shader.GetOverlayFragmentShader())
	if err != nil {
		return nil, fmt.Errorf("failed to create overlay program: %w", err)
	}
	o := &overlay{
		program:     program,
		viewportLoc: gl.GetUniformLocation(program, gl.Str(shader.OverlayUniformViewport+"\x00")),
	}

	const stride = overlayFloatsPerVertex * 4
	gl.GenVertexArrays(1, &o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return o, nil
}

func (o *overlay) draw(rects []panel.Rect, width, height float32) {
	if len(rects) == 0 {
		return
	}
	vertices := overlayVertices(rects)

	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(vertices) > o.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.DYNAMIC_DRAW)
		o.capacity = len(vertices)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(o.program)
	gl.Uniform2f(o.viewportLoc, width, height)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(vertices)/overlayFloatsPerVertex))
	gl.BindVertexArray(0)
	gl.Disable(gl.BLEND)
}

func (o *overlay) destroy() {
	gl.DeleteProgram(o.program)
	gl.DeleteBuffers(1, &o.vbo)
	gl.DeleteVertexArrays(1, &o.vao)
}
