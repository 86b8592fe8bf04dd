package render

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestClockAdvances(t *testing.T) {
	c := NewClock(100)
	c.Advance(100.5)
	c.Advance(101.25)

	if !almostEqual(c.Now(), 101.25) {
		t.Fatalf("Now() = %v, want 101.25", c.Now())
	}
}

func TestClockPauseFreezes(t *testing.T) {
	c := NewClock(10)
	c.Advance(11)
	c.TogglePause()

	c.Advance(12)
	c.Advance(15)
	if !almostEqual(c.Now(), 11) {
		t.Fatalf("Now() while paused = %v, want 11", c.Now())
	}

	// Unpausing must not replay the time that passed while frozen.
	c.TogglePause()
	c.Advance(15.5)
	if !almostEqual(c.Now(), 11.5) {
		t.Fatalf("Now() after unpause = %v, want 11.5", c.Now())
	}
}

func TestClockStep(t *testing.T) {
	tests := []struct {
		name   string
		paused bool
		dirs   []int
		want   float64
	}{
		{name: "forward while paused", paused: true, dirs: []int{1}, want: 5 + ManualTimeStep},
		{name: "backward while paused", paused: true, dirs: []int{-1}, want: 5 - ManualTimeStep},
		{name: "several steps", paused: true, dirs: []int{1, 1, -1}, want: 5 + ManualTimeStep},
		{name: "ignored while running", paused: false, dirs: []int{1, -1}, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClock(5)
			if tt.paused {
				c.TogglePause()
			}
			for _, dir := range tt.dirs {
				c.Step(dir)
			}
			if !almostEqual(c.Now(), tt.want) {
				t.Fatalf("Now() = %v, want %v", c.Now(), tt.want)
			}
		})
	}
}
