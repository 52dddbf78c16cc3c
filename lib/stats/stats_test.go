package stats

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCountsFrames(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s.Update(16 * time.Millisecond)
	}
	snap := s.Snapshot()
	assert.Equal(t, uint64(5), snap.FramesRendered)
	assert.Greater(t, snap.Uptime, 0.0)
}

func TestFPSRollsOverWhenDeltasPassASecond(t *testing.T) {
	s := New()
	// 25ms deltas: the window first exceeds one second at frame 41
	for i := 0; i < 60; i++ {
		s.Update(25 * time.Millisecond)
	}
	snap := s.Snapshot()
	assert.Equal(t, uint64(41), snap.FPS)
	assert.Equal(t, uint64(60), snap.FramesRendered)
}

func TestZeroDeltaNeverRollsOver(t *testing.T) {
	s := New()
	for i := 0; i < 100; i++ {
		s.Update(0)
	}
	assert.Equal(t, uint64(0), s.Snapshot().FPS)
}

func TestSetWsClients(t *testing.T) {
	s := New()
	s.SetWsClients(3)
	assert.Equal(t, 3, s.Snapshot().WsClients)
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Update(time.Millisecond)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.Snapshot()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.SetWsClients(i % 4)
		}
	}()
	wg.Wait()
	assert.Equal(t, uint64(1000), s.Snapshot().FramesRendered)
}
