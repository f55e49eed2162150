package renderer

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/richinsley/goshaderview/translator"
)

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}
	return linkProgram(vertexShader, fragmentShader)
}

// newSPIRVProgram builds a program from two WGSL modules compiled to SPIR-V.
func newSPIRVProgram(vertexWGSL, fragmentWGSL string) (uint32, error) {
	vertexShader, err := loadSPIRVShader(vertexWGSL, "vertex", gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := loadSPIRVShader(fragmentWGSL, "fragment", gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}
	return linkProgram(vertexShader, fragmentShader)
}

func linkProgram(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)
	return shader, checkCompiled(shader)
}

// loadSPIRVShader compiles a WGSL stage with naga and specializes the entry
// point declared for that stage.
func loadSPIRVShader(source, stage string, shaderType uint32) (uint32, error) {
	compiled, err := translator.CompileStage(source, stage)
	if err != nil {
		return 0, fmt.Errorf("%s stage: %w", stage, err)
	}

	shader := gl.CreateShader(shaderType)
	gl.ShaderBinary(1, &shader, gl.SHADER_BINARY_FORMAT_SPIR_V, gl.Ptr(compiled.Words), int32(len(compiled.Words)*4))
	gl.SpecializeShader(shader, gl.Str(compiled.Entry+"\x00"), 0, nil, nil)
	if err := checkCompiled(shader); err != nil {
		return 0, fmt.Errorf("%s entry point %q: %w", stage, compiled.Entry, err)
	}
	return shader, nil
}

func checkCompiled(shader uint32) error {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return fmt.Errorf("failed to compile shader: %v", logText)
	}
	return nil
}
