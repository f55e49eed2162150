package shader

// ─────────────────────────────────── Overlay ────────────────────────────────────

// The overlay pass draws the control panel as flat coloured rectangles on top of
// the preview. Positions arrive in framebuffer pixels with a top-left origin.
const overlayVertexShaderSourceGL = `#version 410 core
layout (location = 0) in vec2 in_pos;
layout (location = 1) in vec4 in_color;
uniform vec2 u_viewport;
out vec4 v_color;
void main() {
    vec2 ndc = (in_pos / u_viewport) * 2.0 - 1.0;
    gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
    v_color = in_color;
}
`

const overlayFragmentShaderSourceGL = `#version 410 core
in vec4 v_color;
out vec4 fragColor;
void main() { fragColor = v_color; }
`

// ────────────────────────────────── Public API ─────────────────────────────────

// Uniform names used by the legacy GLSL family, in slot order.
const (
	UniformTime       = "time"
	UniformResolution = "resolution"
	UniformParams     = "params"
)

// OverlayUniformViewport is the overlay program's viewport size uniform.
const OverlayUniformViewport = "u_viewport"

func GetOverlayVertexShader() string {
	return overlayVertexShaderSourceGL
}

func GetOverlayFragmentShader() string {
	return overlayFragmentShaderSourceGL
}
