package renderer

import (
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/kevincpp/trigl/lib/api"
	"github.com/kevincpp/trigl/lib/config"
	"github.com/kevincpp/trigl/lib/metrics"
	"github.com/kevincpp/trigl/lib/rendering"
	"github.com/kevincpp/trigl/lib/rendering/shaders"
	"github.com/kevincpp/trigl/lib/stats"
	"github.com/kevincpp/trigl/lib/utils"
	"github.com/kevincpp/trigl/lib/watcher"
	"github.com/kevincpp/trigl/lib/window"
)

// Renderer owns the window, the linked program and the uploaded
// geometry. All handles live here rather than in package globals, and
// they live for the process duration; teardown happens once, when the
// loop ends.
type Renderer struct {
	cfgMu sync.Mutex
	cfg   *config.Config

	win      *window.Window
	program  uint32
	geometry *rendering.Geometry

	stats *stats.Stats

	ShutdownRequested bool
}

func (r *Renderer) Stats() *stats.Stats {
	return r.stats
}

// Config returns a copy; the API serves it from its own goroutines
// while the frame loop may be applying a hot reload.
func (r *Renderer) Config() *config.Config {
	r.cfgMu.Lock()
	defer r.cfgMu.Unlock()
	cfg := *r.cfg
	return &cfg
}

func (r *Renderer) RequestShutdown() {
	r.ShutdownRequested = true
}

// triangleColour picks the colour baked into the fragment shader: the
// exact built-in orange unless the config overrides it.
func triangleColour(cfg *config.Config) utils.Colour {
	if cfg.TriangleColour == "" {
		return shaders.DefaultTriangleColour
	}
	return utils.ColourParse(cfg.TriangleColour)
}

// MakeWindowAndDraw runs the whole show: window + context, one-time
// GPU setup, then the frame loop until the window is closed or a
// shutdown is requested. cfgPath may be empty; when set, the config
// file is watched for colour changes.
//
// Must run on the locked main OS thread. Setup failures are fatal and
// exit non-zero; shader compile/link failures are reported on stderr
// and the loop runs anyway, drawing nothing visible.
func MakeWindowAndDraw(cfg *config.Config, cfgPath string) {
	r := &Renderer{cfg: cfg, stats: stats.New()}

	win, err := window.New(cfg.Window)
	if err != nil {
		log.Fatalf("could not create window: %s", err)
	}
	r.win = win

	err = rendering.Init()
	if err != nil {
		win.Terminate()
		log.Fatalf("could not initialise renderer: %s", err)
	}
	win.LogContextInfo()

	shaderData := &shaders.ShaderData{
		TriangleColour: triangleColour(cfg),
	}
	program, err := shaders.BuildGLProgram(shaderData, os.Stderr)
	if err != nil {
		win.Terminate()
		log.Fatalf("could not init GL program: %s", err)
	}
	r.program = program
	r.geometry = rendering.Upload(rendering.TriangleVertices)

	api.ServeInBackground(cfg.Api, r)

	var cfgWatcher *watcher.ConfigWatcher
	if cfgPath != "" {
		cfgWatcher = watcher.New(cfgPath)
		cfgWatcher.WatchInBackground()
	}

	rendering.SetClearColour(utils.ColourParse(cfg.ClearColour))

	var deltaTimer utils.DeltaTimer
	for !r.ShutdownRequested {
		rendering.Clear()
		shaders.Use(r.program)
		r.geometry.Bind()
		r.geometry.Draw()

		win.Present()
		win.PollEvents()

		// Maintenance
		dt := deltaTimer.Next()
		metrics.FramesRendered.Inc()
		r.stats.Update(dt)

		if cfgWatcher != nil {
			select {
			case newCfg := <-cfgWatcher.Updates:
				r.applyConfig(newCfg)
			default:
			}
		}

		if win.ShouldClose() {
			r.ShutdownRequested = true
		}
	}

	win.Terminate()
}

// applyConfig takes over what can change without touching the GPU
// setup. The triangle colour is baked into the fragment shader at
// build time, so it stays as it was.
func (r *Renderer) applyConfig(cfg *config.Config) {
	if cfg.TriangleColour != r.cfg.TriangleColour {
		slog.Warn(
			"triangle_colour changes need a restart",
			slog.String("module", "renderer"),
		)
	}
	r.cfgMu.Lock()
	r.cfg.ClearColour = cfg.ClearColour
	r.cfgMu.Unlock()
	rendering.SetClearColour(utils.ColourParse(cfg.ClearColour))
}
