package shader

import (
	"errors"
	"fmt"
	"strings"
)

// Family identifies the shading language a fragment source is written in, and
// with it the vertex stage it has to be paired with.
type Family int

const (
	// FamilyWGSL is the default combined-language family.
	FamilyWGSL Family = iota
	// FamilyLegacyGLSL is the legacy stage-language family (WebGL2 GLSL ES 3.00).
	FamilyLegacyGLSL
)

const (
	// LegacyExtension marks a fragment source as legacy GLSL.
	LegacyExtension = ".frag"

	DefaultVertexWGSL   = "shaders/default.wgsl"
	DefaultVertexLegacy = "shaders/default.vert"
)

// ErrEmptyPath is returned by Resolve when no fragment path was supplied.
var ErrEmptyPath = errors.New("shader path is empty")

func (f Family) String() string {
	switch f {
	case FamilyWGSL:
		return "wgsl"
	case FamilyLegacyGLSL:
		return "glsl"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// Spec is the resolved shader pairing. It is built once at startup and never
// changes afterwards.
type Spec struct {
	SourcePath string // fragment stage, exactly as supplied
	Family     Family
	VertexPath string
}

// Resolve decides which vertex stage and language family go with the fragment
// source at path. Unknown or missing extensions fall back to WGSL.
func Resolve(path string) (Spec, error) {
	if strings.TrimSpace(path) == "" {
		return Spec{}, ErrEmptyPath
	}
	if strings.HasSuffix(path, LegacyExtension) {
		return Spec{SourcePath: path, Family: FamilyLegacyGLSL, VertexPath: DefaultVertexLegacy}, nil
	}
	return Spec{SourcePath: path, Family: FamilyWGSL, VertexPath: DefaultVertexWGSL}, nil
}

// Sources holds the text of both stages of a Spec.
type Sources struct {
	Vertex   string
	Fragment string
}

// LoadSources reads both stages of s using read (os.ReadFile in production).
func (s Spec) LoadSources(read func(name string) ([]byte, error)) (Sources, error) {
	vert, err := read(s.VertexPath)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read vertex stage %s: %w", s.VertexPath, err)
	}
	frag, err := read(s.SourcePath)
	if err != nil {
		return Sources{}, fmt.Errorf("failed to read fragment stage %s: %w", s.SourcePath, err)
	}
	return Sources{Vertex: string(vert), Fragment: string(frag)}, nil
}
