package api

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"runtime/pprof"
	"sync"
	"time"

	"github.com/kevincpp/trigl/lib/config"
	"github.com/kevincpp/trigl/lib/metrics"
	"github.com/kevincpp/trigl/lib/stats"

	"github.com/gorilla/websocket"
)

//go:embed static/*
var content embed.FS
var contentFS, _ = fs.Sub(content, "static")

// Backend is what the API needs from the render loop.
type Backend interface {
	Stats() *stats.Stats
	Config() *config.Config
	RequestShutdown()
}

type Api struct {
	srv     http.Server
	mux     *http.ServeMux
	cfg     *config.ApiCfg
	backend Backend

	wsClients   map[*websocket.Conn]bool
	wsClientsMu sync.Mutex
}

func New(cfg *config.ApiCfg, backend Backend) *Api {
	a := &Api{}
	a.cfg = cfg
	a.mux = http.NewServeMux()
	a.backend = backend
	a.srv.Addr = cfg.Bind
	a.srv.Handler = a.mux
	a.wsClients = make(map[*websocket.Conn]bool)
	return a
}

func (a *Api) Serve() error {
	a.registerRoutes()
	return a.srv.ListenAndServe()
}

func (a *Api) registerRoutes() {
	if a.cfg.EnableProfiler {
		a.mux.HandleFunc("/prof", a.profileCPU)
	}
	a.mux.HandleFunc("/api/kill", a.suicide)
	a.mux.HandleFunc("/api/stats", a.getStats)
	a.mux.HandleFunc("/api/config", a.getConfig)
	a.mux.HandleFunc("/api/ws", a.handleWebsocket)
	a.mux.Handle("/metrics", metrics.Handler())
	a.mux.Handle("/", http.FileServer(http.FS(contentFS)))
}

func (a *Api) profileCPU(w http.ResponseWriter, _ *http.Request) {
	err := pprof.StartCPUProfile(w)
	if err != nil {
		http.Error(w, fmt.Sprintf("Could not start CPU profile: %s", err), http.StatusInternalServerError)
		return
	}
	time.Sleep(10 * time.Second)
	pprof.StopCPUProfile()
}

// @Summary	Ask the render loop to shut down
// @Router		/api/kill [post]
// @Tags		base
// @Success	200
func (a *Api) suicide(w http.ResponseWriter, _ *http.Request) {
	log.Printf("shutting down as per api request")
	a.backend.RequestShutdown()
	_, err := fmt.Fprintf(w, "\"ok\"\n")
	if err != nil {
		log.Printf("could not write response: %s\n", err.Error())
		return
	}
}

// @Summary	Current frame statistics
// @Router		/api/stats [get]
// @Tags		base
// @Success	200
func (a *Api) getStats(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.backend.Stats().Snapshot())
	if err != nil {
		http.Error(w, fmt.Sprintf("could not encode stats: %s", err), http.StatusInternalServerError)
		return
	}
}

// @Summary	The effective configuration
// @Router		/api/config [get]
// @Tags		base
// @Success	200
func (a *Api) getConfig(w http.ResponseWriter, _ *http.Request) {
	encoder := json.NewEncoder(w)
	err := encoder.Encode(a.backend.Config())
	if err != nil {
		http.Error(w, fmt.Sprintf("couldn't encode config: %s", err), http.StatusInternalServerError)
		return
	}
}

// ServeInBackground starts the API server when one is configured; a
// nil cfg means no API and a nil return.
func ServeInBackground(cfg *config.ApiCfg, backend Backend) *Api {
	var theApi *Api
	if cfg != nil && cfg.Bind != "" {
		theApi = New(cfg, backend)

		log.Printf("starting web server on %s\n", cfg.Bind)
		go func() {
			err := theApi.Serve()
			if err != nil {
				log.Fatalf("could not start web server: %s", err)
			}
		}()
	}
	return theApi
}
