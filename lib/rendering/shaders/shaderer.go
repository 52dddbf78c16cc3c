package shaders

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/kevincpp/trigl/lib/utils"
)

//go:embed *.frag *.vert
var templateDir embed.FS

type Shaderer struct {
	templates *template.Template
}

func NewShaderer() (*Shaderer, error) {
	s := &Shaderer{}

	var err error

	s.templates, err = template.ParseFS(templateDir, "*.frag", "*.vert")

	return s, err
}

// DefaultTriangleColour is the classic orange of the fragment source,
// vec4(1.0, 0.5, 0.2, 1.0). It bypasses hex parsing because 0.5 is
// not representable as a hex byte (0x80/255 is 0.50196...).
var DefaultTriangleColour = utils.Colour{R: 1, G: 0.5, B: 0.2, A: 1}

// ShaderData contains stuff that gets passed to the shader
type ShaderData struct {
	TriangleColour utils.Colour
}

func (s *Shaderer) GetShaderSource(name string, data *ShaderData) (string, error) {
	var b bytes.Buffer
	err := s.templates.ExecuteTemplate(&b, name, data)
	if err != nil {
		return "", fmt.Errorf("error while rendering template: %s", err)
	}

	return b.String(), nil
}

func (s *Shaderer) TemplateNames() []string {
	var names []string
	for _, t := range s.templates.Templates() {
		names = append(names, t.Name())
	}
	return names
}
