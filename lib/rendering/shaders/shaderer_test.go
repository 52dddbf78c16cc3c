package shaders

import (
	"testing"

	"github.com/kevincpp/trigl/lib/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShadererRendersBothTemplates(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"triangle.vert", "triangle.frag"}, s.TemplateNames())

	data := &ShaderData{TriangleColour: DefaultTriangleColour}

	vert, err := s.GetShaderSource("triangle.vert", data)
	require.NoError(t, err)
	assert.Contains(t, vert, "#version 330 core")
	assert.Contains(t, vert, "layout (location = 0) in vec3 aPos;")
	assert.Contains(t, vert, "gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);")

	frag, err := s.GetShaderSource("triangle.frag", data)
	require.NoError(t, err)
	assert.Contains(t, frag, "#version 330 core")
	assert.Contains(t, frag, "out vec4 FragColor;")
}

// The default colours must reproduce the fixed fragment source's
// vec4(1.0, 0.5, 0.2, 1.0) exactly, with no hex quantisation.
func TestDefaultColourMatchesFixedFragmentSource(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	frag, err := s.GetShaderSource("triangle.frag", &ShaderData{TriangleColour: DefaultTriangleColour})
	require.NoError(t, err)
	assert.Contains(t, frag, "FragColor = vec4(1.0000, 0.5000, 0.2000, 1.0000);")
}

func TestUserColourIsHexQuantised(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	data := &ShaderData{TriangleColour: utils.ColourParse("#ff8033ff")}
	frag, err := s.GetShaderSource("triangle.frag", data)
	require.NoError(t, err)
	assert.Contains(t, frag, "FragColor = vec4(1.0000, 0.5020, 0.2000, 1.0000);")
}

func TestShadererUnknownTemplate(t *testing.T) {
	s, err := NewShaderer()
	require.NoError(t, err)

	_, err = s.GetShaderSource("nope.frag", &ShaderData{})
	require.Error(t, err)
}
