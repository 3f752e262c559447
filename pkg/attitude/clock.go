package attitude

// Clock advances the orientation once per tick. It is not safe for
// concurrent use; ticks must be delivered serially.
type Clock struct {
	params Params
	state  Orientation
	ticks  uint64
	paused bool
}

// NewClock creates a clock at yaw 0. The params are assumed valid; see
// Params.Validate.
func NewClock(p Params) *Clock {
	return &Clock{params: p}
}

// Params returns the clock's tuning constants.
func (c *Clock) Params() Params {
	return c.params
}

// Tick advances yaw by one step, wrapping past a full turn. A paused clock
// does not move.
func (c *Clock) Tick() {
	if c.paused {
		return
	}
	c.state.Yaw += c.params.Step
	if c.state.Yaw >= FullTurn {
		c.state.Yaw -= FullTurn
	}
	c.ticks++
}

// Orientation returns the current orientation.
func (c *Clock) Orientation() Orientation {
	return c.state
}

// Set replaces the current orientation. Yaw is wrapped into [0, 2π).
func (c *Clock) Set(o Orientation) {
	o.Yaw = Wrap(o.Yaw)
	c.state = o
}

// Ticks returns how many times the clock has advanced.
func (c *Clock) Ticks() uint64 {
	return c.ticks
}

// Pause stops the clock from advancing.
func (c *Clock) Pause() {
	c.paused = true
}

// Resume lets a paused clock advance again.
func (c *Clock) Resume() {
	c.paused = false
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}
