package renderer

import (
	"log"
	"time"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderview/encoder"
)

// recordFPS is the nominal frame rate written to captures.
const recordFPS = 60

// ToggleRecording starts a capture of the preview, or stops the running one.
func (r *Renderer) ToggleRecording() {
	if r.recorder != nil {
		r.stopRecording()
		return
	}
	width, height := r.context.GetFramebufferSize()
	rec, err := encoder.NewRecorder(encoder.OutputName(time.Now()), width, height, recordFPS)
	if err != nil {
		log.Printf("Failed to start recording: %v", err)
		return
	}
	r.recorder = rec
}

// Recording reports whether a capture is running.
func (r *Renderer) Recording() bool { return r.recorder != nil }

func (r *Renderer) stopRecording() {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Close(); err != nil {
		log.Printf("Recording to %s failed: %v", r.recorder.Path(), err)
	}
	r.recorder = nil
}

// capture reads back the shader output before the overlay is drawn. A resize
// ends the capture since ffmpeg's input size is fixed.
func (r *Renderer) capture(width, height int) {
	if r.recorder == nil {
		return
	}
	if w, h := r.recorder.Size(); w != width || h != height {
		log.Printf("Framebuffer resized to %dx%d, stopping recording", width, height)
		r.stopRecording()
		return
	}
	pixels := make([]byte, width*height*encoder.BytesPerPixel)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))
	r.recorder.SendFrame(pixels)
}
