package shaders

import (
	"fmt"
	"strings"
)

// MaxLogLen caps driver info logs; anything longer is truncated.
const MaxLogLen = 512

type Stage string

const (
	VertexStage   Stage = "VERTEX"
	FragmentStage Stage = "FRAGMENT"
)

// CompileError is a driver rejection of one shader stage's source.
type CompileError struct {
	Stage Stage
	Log   string
}

func newCompileError(stage Stage, log string) *CompileError {
	return &CompileError{Stage: stage, Log: truncateLog(log)}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", strings.ToLower(string(e.Stage)), e.Log)
}

// Diagnostic renders the error as a block for the diagnostic stream.
func (e *CompileError) Diagnostic() string {
	return fmt.Sprintf("ERROR::SHADER::%s::COMPILATION_FAILED\n%s", e.Stage, e.Log)
}

// LinkError is a driver rejection while linking the two stages into a
// program.
type LinkError struct {
	Log string
}

func newLinkError(log string) *LinkError {
	return &LinkError{Log: truncateLog(log)}
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

func (e *LinkError) Diagnostic() string {
	return fmt.Sprintf("ERROR::SHADER::PROGRAM::LINKING_FAILED\n%s", e.Log)
}

func truncateLog(log string) string {
	log = strings.TrimRight(log, "\x00")
	if len(log) > MaxLogLen {
		log = log[:MaxLogLen]
	}
	return log
}
