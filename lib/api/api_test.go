package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kevincpp/trigl/lib/config"
	"github.com/kevincpp/trigl/lib/stats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct {
	stats    *stats.Stats
	cfg      *config.Config
	shutdown bool
}

func (b *fakeBackend) Stats() *stats.Stats    { return b.stats }
func (b *fakeBackend) Config() *config.Config { return b.cfg }
func (b *fakeBackend) RequestShutdown()       { b.shutdown = true }

func newTestApi() (*Api, *fakeBackend) {
	backend := &fakeBackend{stats: stats.New(), cfg: config.Default()}
	a := New(&config.ApiCfg{Bind: "127.0.0.1:0"}, backend)
	a.registerRoutes()
	return a, backend
}

func TestGetStats(t *testing.T) {
	a, backend := newTestApi()
	backend.stats.Update(16 * time.Millisecond)

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got stats.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, uint64(1), got.FramesRendered)
}

func TestGetConfig(t *testing.T) {
	a, _ := newTestApi()

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/config", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got config.Config
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Window)
	assert.Equal(t, 800, got.Window.Width)
}

func TestKillRequestsShutdown(t *testing.T) {
	a, backend := newTestApi()

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/kill", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, backend.shutdown)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestMetricsMounted(t *testing.T) {
	a, _ := newTestApi()

	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "trigl_frames_rendered_total")
}

func TestServeInBackgroundDisabled(t *testing.T) {
	assert.Nil(t, ServeInBackground(nil, &fakeBackend{}))
	assert.Nil(t, ServeInBackground(&config.ApiCfg{}, &fakeBackend{}))
}
