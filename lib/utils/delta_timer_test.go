package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeltaTimerFirstCallIsZero(t *testing.T) {
	var d DeltaTimer
	assert.Equal(t, time.Duration(0), d.Next())
}

func TestDeltaTimerMeasuresElapsedTime(t *testing.T) {
	var d DeltaTimer
	d.Next()
	time.Sleep(10 * time.Millisecond)
	dt := d.Next()
	assert.GreaterOrEqual(t, dt, 10*time.Millisecond)
	assert.Less(t, dt, time.Second)
}
