package graphics

import (
	"github.com/richinsley/goshaderview/events"
)

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	// EndFrame presents the frame and polls window events, which are delivered
	// to the InputHandler before it returns.
	EndFrame()
	GetFramebufferSize() (int, int)
	Time() float64
	SetInputHandler(h InputHandler)
}

// InputHandler receives window events. Coordinates are framebuffer pixels with
// a top-left origin. Implementations must only queue work; they are called from
// inside the window system's event polling.
type InputHandler interface {
	OnResize(width, height int)
	OnKey(key events.Key)
	OnCursor(x, y float32)
	OnMouseButton(pressed bool, x, y float32)
}
