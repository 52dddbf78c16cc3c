package window

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/kevincpp/trigl/lib/config"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Both failure modes are fatal: callers exit non-zero without retry.
var (
	ErrInit           = errors.New("windowing subsystem failed to start")
	ErrWindowCreation = errors.New("window or context could not be created")
)

// Window owns the OS window and its OpenGL context for the process
// lifetime.
type Window struct {
	cfg *config.WindowCfg
	win *glfw.Window
}

// New initialises glfw, creates the window with a 3.3-core context and
// makes the context current on the calling thread. The caller must
// have locked the OS thread.
func New(cfg *config.WindowCfg) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInit, err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %s", ErrWindowCreation, err)
	}

	win.MakeContextCurrent()

	if cfg.VSync != nil {
		interval := 0
		if *cfg.VSync {
			interval = 1
		}
		glfw.SwapInterval(interval)
	}

	return &Window{cfg: cfg, win: win}, nil
}

// LogContextInfo reports the driver we ended up with. Needs the gl
// function pointers, so callers run rendering.Init first.
func (w *Window) LogContextInfo() {
	vendor := gl.GoStr(gl.GetString(gl.VENDOR))
	renderer := gl.GoStr(gl.GetString(gl.RENDERER))
	version := gl.GoStr(gl.GetString(gl.VERSION))

	slog.Info(
		fmt.Sprintf("OpenGL %s / %s / %s", vendor, renderer, version),
		slog.String("module", "window"),
	)
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// Present swaps the front and back buffers.
func (w *Window) Present() {
	w.win.SwapBuffers()
}

// PollEvents delivers queued OS events; close requests are the only
// ones this system consumes.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// RequestClose marks the window for closing, as if the user had.
func (w *Window) RequestClose() {
	w.win.SetShouldClose(true)
}

// Terminate releases the window and shuts the windowing subsystem
// down.
func (w *Window) Terminate() {
	glfw.Terminate()
}
