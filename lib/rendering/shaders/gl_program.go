package shaders

import (
	"fmt"
	"io"
	"strings"

	"github.com/kevincpp/trigl/lib/metrics"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// BuildGLProgram renders the embedded shader templates, compiles both
// stages and links them into a program.
//
// Driver failures (compile or link) are not returned: the diagnostic
// block is written to diag, the failure counter is bumped, and the
// build carries on with a zero handle. Drawing with the resulting
// program then produces no visible output, which matches what the
// underlying API does with an unlinked program. Only template errors,
// which mean the binary itself is broken, are returned.
func BuildGLProgram(shaderData *ShaderData, diag io.Writer) (uint32, error) {
	shaderer, err := NewShaderer()
	if err != nil {
		return 0, fmt.Errorf("could not get shaders: %w", err)
	}

	vertexShader, err := shaderer.GetShaderSource("triangle.vert", shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get vertex shader: %w", err)
	}

	fragmentShader, err := shaderer.GetShaderSource("triangle.frag", shaderData)
	if err != nil {
		return 0, fmt.Errorf("could not get fragment shader: %w", err)
	}

	vert, err := Compile(vertexShader, VertexStage)
	if err != nil {
		report(diag, err)
	}

	frag, err := Compile(fragmentShader, FragmentStage)
	if err != nil {
		report(diag, err)
	}

	program, err := Link(vert, frag)
	if err != nil {
		report(diag, err)
	}

	return program, nil
}

// Compile compiles a single shader stage. On failure the returned
// handle is zero and the error carries the truncated driver log.
func Compile(source string, stage Stage) (uint32, error) {
	shaderType := uint32(gl.VERTEX_SHADER)
	if stage == FragmentStage {
		shaderType = gl.FRAGMENT_SHADER
	}
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		return 0, newCompileError(stage, shaderLog(shader))
	}

	return shader, nil
}

// Link links a vertex and fragment stage into a program and deletes
// the stage handles on success; the program keeps the linked result.
func Link(vertexShader, fragmentShader uint32) (uint32, error) {
	program := gl.CreateProgram()

	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, newLinkError(programLog(program))
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// Use makes the program current for subsequent draw calls.
func Use(program uint32) {
	gl.UseProgram(program)
}

func shaderLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(clog))
	return clog
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	clog := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(clog))
	return clog
}

func report(diag io.Writer, err error) {
	stage := "PROGRAM"
	var block string
	switch e := err.(type) {
	case *CompileError:
		stage = string(e.Stage)
		block = e.Diagnostic()
	case *LinkError:
		block = e.Diagnostic()
	default:
		block = err.Error()
	}
	fmt.Fprintf(diag, "%s\n", block)
	metrics.ShaderFailures.WithLabelValues(stage).Inc()
}
