package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quadWGSL = `
@group(0) @binding(1) var<uniform> resolution: vec2<f32>;

struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vertex(@location(0) position: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = vec4<f32>(position / (resolution * 0.5), 0.0, 1.0);
    out.uv = uv;
    return out;
}

@fragment fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(uv, 0.0, 1.0);
}
`

const commentedEntryWGSL = `
// @fragment fn fragment_old(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//     return vec4<f32>(1.0);
// }

/* @fragment fn fragment_older() -> @location(0) vec4<f32> { return vec4<f32>(0.0); } */

@fragment
fn fragment(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(uv, 0.0, 1.0);
}
`

func TestEntryPoint(t *testing.T) {
	name, err := EntryPoint(quadWGSL, "vertex")
	require.NoError(t, err)
	assert.Equal(t, "vertex", name)

	name, err = EntryPoint(quadWGSL, "fragment")
	require.NoError(t, err)
	assert.Equal(t, "fs_main", name)
}

func TestEntryPoint_IgnoresCommentedOutDeclarations(t *testing.T) {
	name, err := EntryPoint(commentedEntryWGSL, "fragment")
	require.NoError(t, err)
	assert.Equal(t, "fragment", name)

	stage, err := CompileStage(commentedEntryWGSL, "fragment")
	require.NoError(t, err)
	assert.Equal(t, "fragment", stage.Entry)
}

func TestEntryPoint_MissingStage(t *testing.T) {
	_, err := EntryPoint(commentedEntryWGSL, "vertex")
	assert.Error(t, err)

	_, err = EntryPoint(quadWGSL, "compute")
	assert.Error(t, err)
}

func TestCompileStage_SPIRVHeader(t *testing.T) {
	stage, err := CompileStage(quadWGSL, "vertex")
	require.NoError(t, err)
	assert.Equal(t, "vertex", stage.Entry)
	require.NotEmpty(t, stage.Words)
	assert.Equal(t, uint32(0x07230203), stage.Words[0], "SPIR-V magic number")
}

func TestCompileStage_SyntaxError(t *testing.T) {
	_, err := CompileStage("@fragment fn broken( -> {", "fragment")
	assert.Error(t, err)
}

func TestSPIRVWords(t *testing.T) {
	words, err := spirvWords([]byte{0x03, 0x02, 0x23, 0x07, 0x01, 0x00, 0x00, 0x00})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0x07230203, 1}, words)

	_, err = spirvWords([]byte{1, 2, 3})
	assert.Error(t, err)
}
