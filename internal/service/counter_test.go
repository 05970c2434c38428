package service

import (
	"testing"
	"time"
)

func TestCounter_Value(t *testing.T) {
	c := Counter{Target: 700, Duration: 1500 * time.Millisecond}

	tests := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"not started", 0, 0},
		{"negative", -time.Second, 0},
		{"halfway", 750 * time.Millisecond, 350},
		{"done", 1500 * time.Millisecond, 700},
		{"past end", 10 * time.Second, 700},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Value(tt.elapsed); got != tt.want {
				t.Errorf("Value(%s) = %d, want %d", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestCounter_ZeroTarget(t *testing.T) {
	c := Counter{Target: 0, Duration: time.Second}
	if c.Value(time.Second) != 0 {
		t.Error("zero target should always display 0")
	}
	if c.StepInterval() != 0 {
		t.Error("zero target has no step interval")
	}
}

func TestCounter_StepInterval(t *testing.T) {
	c := Counter{Target: 2, Duration: 2 * time.Second}
	if got := c.StepInterval(); got != time.Second {
		t.Errorf("StepInterval = %s, want 1s", got)
	}
}
