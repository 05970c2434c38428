package service

import "time"

// Counter models the headline stat animation: it counts from 0 up to
// Target in unit steps spread evenly over Duration.
type Counter struct {
	Target   int
	Duration time.Duration
}

// Value returns the displayed count after elapsed time.
func (c Counter) Value(elapsed time.Duration) int {
	if c.Target <= 0 || elapsed <= 0 {
		return 0
	}
	if c.Duration <= 0 || elapsed >= c.Duration {
		return c.Target
	}
	return int(int64(c.Target) * int64(elapsed) / int64(c.Duration))
}

// StepInterval is the time between increments.
func (c Counter) StepInterval() time.Duration {
	if c.Target <= 0 {
		return 0
	}
	return c.Duration / time.Duration(c.Target)
}
