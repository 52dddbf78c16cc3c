package utils

import "time"

// DeltaTimer hands out the wall-clock time elapsed since its previous
// Next call. The first call returns 0.
type DeltaTimer struct {
	last time.Time
}

func (d *DeltaTimer) Next() time.Duration {
	// read the clock exactly once so we don't accumulate error
	now := time.Now()

	defer func() { d.last = now }()
	if d.last.IsZero() {
		return 0
	}
	return now.Sub(d.last)
}
