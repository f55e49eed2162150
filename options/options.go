package options

import (
	"errors"
	"flag"
	"strings"
)

// ErrNoShader is returned when the viewer is started without a fragment shader path.
var ErrNoShader = errors.New("a fragment shader path is required (-shader)")

// ViewerOptions holds the process entry configuration.
type ViewerOptions struct {
	ShaderPath *string // path of the fragment shader source to preview
}

// Register binds the viewer flags to fs and returns the options they fill in.
func Register(fs *flag.FlagSet) *ViewerOptions {
	return &ViewerOptions{
		ShaderPath: fs.String("shader", "", "Path to the fragment shader source (.wgsl, or .frag for GLSL)"),
	}
}

// Validate reports a configuration error before anything is created.
func (o *ViewerOptions) Validate() error {
	if o == nil || o.ShaderPath == nil || strings.TrimSpace(*o.ShaderPath) == "" {
		return ErrNoShader
	}
	return nil
}
