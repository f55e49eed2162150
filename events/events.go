// Package events defines the messages exchanged between the window callbacks and
// the per-frame update steps.
package events

// Key is a keyboard key code. Printable keys use their upper-case ASCII value,
// which matches GLFW's key codes.
type Key int

type Event interface{}

// Resize reports the new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}

// ParameterChanged carries a slider's new value for one parameter slot.
type ParameterChanged struct {
	Slot  int
	Value float32
}

// VisibilityToggled reports the control panel's visibility after a toggle.
type VisibilityToggled struct {
	Visible bool
}

// Pointer events are in framebuffer pixels, origin at the top-left corner.
type PointerMoved struct {
	X, Y float32
}
type PointerPressed struct {
	X, Y float32
}
type PointerReleased struct {
	X, Y float32
}

type KeyPressed struct {
	Key Key
}
