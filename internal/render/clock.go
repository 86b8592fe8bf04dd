package render

// ManualTimeStep is how far one Left/Right step moves simulation time while
// the clock is paused.
const ManualTimeStep = 0.1

// Clock is the simulation time fed to the `time` uniform. While running it
// advances by real elapsed wall-clock time; while paused it only moves by
// explicit manual steps.
type Clock struct {
	now    float64
	prev   float64
	paused bool
}

// NewClock starts the simulation at the host's current wall-clock reading.
func NewClock(wall float64) *Clock {
	return &Clock{now: wall, prev: wall}
}

// Advance feeds the current wall-clock reading. The simulation accumulates
// the delta since the previous call unless paused; the reference point moves
// either way, so unpausing does not replay frozen time.
func (c *Clock) Advance(wall float64) {
	if !c.paused {
		c.now += wall - c.prev
	}
	c.prev = wall
}

func (c *Clock) Now() float64 {
	return c.now
}

func (c *Clock) Paused() bool {
	return c.paused
}

func (c *Clock) TogglePause() {
	c.paused = !c.paused
}

// Step moves simulation time by dir*ManualTimeStep. Only honored while
// paused; a running clock already owns its own advancement.
func (c *Clock) Step(dir int) {
	if c.paused {
		c.now += float64(dir) * ManualTimeStep
	}
}
