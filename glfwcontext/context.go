package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/goshaderview/events"
	"github.com/richinsley/goshaderview/graphics"
)

// Context wraps a GLFW window and forwards its input to a graphics.InputHandler.
type Context struct {
	window  *glfw.Window
	handler graphics.InputHandler
}

var _ graphics.Context = (*Context)(nil)

// New creates a resizable window with a GL 4.6 core context.
func New(width, height int, title string) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 6)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{window: win}
	win.SetFramebufferSizeCallback(c.glfwFramebufferSizeCallback)
	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	return c, nil
}

// SetInputHandler installs the receiver for window events. A nil handler
// discards them.
func (c *Context) SetInputHandler(h graphics.InputHandler) {
	c.handler = h
}

func (c *Context) glfwFramebufferSizeCallback(w *glfw.Window, width, height int) {
	if c.handler != nil {
		c.handler.OnResize(width, height)
	}
}

// glfwKeyCallback handles Escape itself and forwards every other key press.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	if c.handler != nil {
		c.handler.OnKey(events.Key(key))
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	if c.handler != nil {
		x, y := c.toFramebuffer(xpos, ypos)
		c.handler.OnCursor(x, y)
	}
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft || c.handler == nil {
		return
	}
	if action != glfw.Press && action != glfw.Release {
		return
	}
	x, y := c.toFramebuffer(w.GetCursorPos())
	c.handler.OnMouseButton(action == glfw.Press, x, y)
}

// toFramebuffer converts window coordinates to framebuffer pixels, which
// differ on high-DPI displays.
func (c *Context) toFramebuffer(x, y float64) (float32, float32) {
	fbWidth, fbHeight := c.GetFramebufferSize()
	winWidth, winHeight := c.window.GetSize()
	var scaleX, scaleY float64 = 1.0, 1.0
	if winWidth > 0 && winHeight > 0 {
		scaleX = float64(fbWidth) / float64(winWidth)
		scaleY = float64(fbHeight) / float64(winHeight)
	}
	return float32(x * scaleX), float32(y * scaleY)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
