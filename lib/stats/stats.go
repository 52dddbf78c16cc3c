package stats

import (
	"sync"
	"time"
)

// Snapshot is the externally visible form of the counters; the API
// serialises it.
type Snapshot struct {
	FramesRendered uint64  `json:"frames_rendered"`
	Uptime         float64 `json:"uptime"`
	FPS            uint64  `json:"fps"`
	WsClients      int     `json:"ws_clients"`
}

// Stats is written by the frame loop and read from the HTTP and
// websocket goroutines, so every access goes through the mutex.
type Stats struct {
	mu            sync.Mutex
	snap          Snapshot
	frameCounter  uint64
	windowElapsed time.Duration
	start         time.Time
}

func New() *Stats {
	s := &Stats{}
	s.start = time.Now()
	return s
}

// Update is called once per presented frame with that frame's delta;
// the deltas add up to the one-second FPS window.
func (s *Stats) Update(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.FramesRendered++
	s.frameCounter++
	s.windowElapsed += dt
	if s.windowElapsed > time.Second {
		s.snap.FPS = s.frameCounter
		s.frameCounter = 0
		s.windowElapsed = 0
	}

	s.snap.Uptime = float64(time.Since(s.start).Nanoseconds()) / 1e9
}

func (s *Stats) SetWsClients(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap.WsClients = n
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}
