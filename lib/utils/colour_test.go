package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColourValidate(t *testing.T) {
	assert.True(t, ColourValidate("#ff7f33ff"))
	assert.True(t, ColourValidate("#00000000"))
	assert.False(t, ColourValidate("#ff7f33"))
	assert.False(t, ColourValidate("ff7f33ff"))
	assert.False(t, ColourValidate("#gg7f33ff"))
	assert.False(t, ColourValidate(""))
}

func TestColourParse(t *testing.T) {
	c := ColourParse("#ff000080")
	assert.InDelta(t, 1.0, c.R, 0.001)
	assert.InDelta(t, 0.0, c.G, 0.001)
	assert.InDelta(t, 0.0, c.B, 0.001)
	assert.InDelta(t, 0.502, c.A, 0.001)
}

func TestColourGLSL(t *testing.T) {
	c := Colour{R: 1, G: 0.5, B: 0.25, A: 1}
	assert.Equal(t, "vec4(1.0000, 0.5000, 0.2500, 1.0000)", c.GLSL())
}
