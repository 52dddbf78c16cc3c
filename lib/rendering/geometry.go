package rendering

import (
	"github.com/kevincpp/trigl/lib/metrics"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// TriangleVertices is the single hardcoded triangle, in normalised
// device coordinates.
var TriangleVertices = []mgl32.Vec3{
	{-0.5, -0.5, 0.0},
	{0.5, -0.5, 0.0},
	{0.0, 0.5, 0.0},
}

// Geometry owns one uploaded vertex buffer and the vertex array that
// captures its attribute layout.
type Geometry struct {
	VAO uint32
	VBO uint32

	vertexCount int32
}

// Flatten lays the vertices out as the tightly packed float array that
// gets uploaded to the buffer.
func Flatten(vertices []mgl32.Vec3) []float32 {
	data := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		data = append(data, v.X(), v.Y(), v.Z())
	}
	return data
}

// Upload copies the vertices into a GPU buffer and binds attribute
// slot 0 to it: three floats per vertex, tight stride, no
// normalisation, zero offset.
func Upload(vertices []mgl32.Vec3) *Geometry {
	g := &Geometry{vertexCount: int32(len(vertices))}
	data := Flatten(vertices)

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*f32, gl.Ptr(data), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*f32, 0)
	gl.EnableVertexAttribArray(0)

	// the VAO has captured the binding, keep global state clean
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g
}

func (g *Geometry) Bind() {
	gl.BindVertexArray(g.VAO)
}

// Draw issues the single per-frame draw call.
func (g *Geometry) Draw() {
	gl.DrawArrays(gl.TRIANGLES, 0, g.vertexCount)
	metrics.DrawCalls.Inc()
}
