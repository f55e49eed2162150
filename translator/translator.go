package translator

import (
	"context"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"
	"github.com/gogpu/naga/spirv"
	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide GLSL translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// TranslateLegacy converts a WebGL2 (GLSL ES 3.00) stage to desktop GLSL 4.10.
// stage is "vertex" or "fragment". The returned shader's Variables map the
// source names to the names used in the translated code.
func TranslateLegacy(source, stage string) (*gst.Shader, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to start shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, stage, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, fmt.Errorf("%s shader translation failed: %w", stage, err)
	}
	return out, nil
}

// Stage is one compiled WGSL entry point.
type Stage struct {
	Entry string   // entry point name in the SPIR-V module
	Words []uint32 // SPIR-V words
}

var stages = map[string]ir.ShaderStage{
	"vertex":   ir.StageVertex,
	"fragment": ir.StageFragment,
}

// lowerWGSL parses and lowers WGSL to naga IR.
func lowerWGSL(source string) (*ir.Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WGSL: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("failed to lower WGSL: %w", err)
	}
	return module, nil
}

// entryPoint returns the first entry point of the given stage ("vertex" or "fragment").
func entryPoint(module *ir.Module, stage string) (string, error) {
	want, ok := stages[stage]
	if !ok {
		return "", fmt.Errorf("unknown shader stage %q", stage)
	}
	for _, ep := range module.EntryPoints {
		if ep.Stage == want {
			return ep.Name, nil
		}
	}
	return "", fmt.Errorf("no @%s entry point found", stage)
}

// EntryPoint returns the name of the first WGSL entry point for stage.
func EntryPoint(source, stage string) (string, error) {
	module, err := lowerWGSL(source)
	if err != nil {
		return "", err
	}
	return entryPoint(module, stage)
}

// CompileStage compiles WGSL to SPIR-V and picks the entry point for stage.
func CompileStage(source, stage string) (Stage, error) {
	module, err := lowerWGSL(source)
	if err != nil {
		return Stage{}, err
	}
	entry, err := entryPoint(module, stage)
	if err != nil {
		return Stage{}, err
	}

	validationErrors, err := naga.Validate(module)
	if err != nil {
		return Stage{}, fmt.Errorf("failed to validate WGSL: %w", err)
	}
	if len(validationErrors) > 0 {
		return Stage{}, fmt.Errorf("WGSL validation failed: %w", &validationErrors[0])
	}

	spirvBytes, err := naga.GenerateSPIRV(module, spirv.DefaultOptions())
	if err != nil {
		return Stage{}, fmt.Errorf("failed to compile WGSL: %w", err)
	}
	words, err := spirvWords(spirvBytes)
	if err != nil {
		return Stage{}, err
	}
	return Stage{Entry: entry, Words: words}, nil
}

// spirvWords converts a SPIR-V binary into little-endian 32-bit words.
func spirvWords(spirvBytes []byte) ([]uint32, error) {
	if len(spirvBytes)%4 != 0 {
		return nil, fmt.Errorf("SPIR-V output is %d bytes, not a whole number of words", len(spirvBytes))
	}
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return words, nil
}
