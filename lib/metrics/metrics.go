package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FramesRendered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trigl_frames_rendered_total",
		Help: "Total number of frames presented to the window",
	})
	DrawCalls = promauto.NewCounter(prometheus.CounterOpts{
		Name: "trigl_draw_calls_total",
		Help: "Total number of draw calls issued",
	})
	ShaderFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "trigl_shader_failures_total",
		Help: "Total number of shader compile/link failures, by stage",
	}, []string{"stage"})
)

func init() {
	// pre-register the stages so the series exist from the start
	for _, stage := range []string{"VERTEX", "FRAGMENT", "PROGRAM"} {
		ShaderFailures.WithLabelValues(stage).Add(0)
	}
}

// Handler should usually be mounted at /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
