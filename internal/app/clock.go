package app

// Clock is the simulation clock. It also serves as the difficulty source:
// difficulty grows with elapsed minutes and the tier counts defeated bosses.
type Clock struct {
	elapsed   float64 // seconds
	perMinute float64
	tier      int
}

func NewClock(difficultyPerMinute float64) *Clock {
	return &Clock{perMinute: difficultyPerMinute}
}

// Advance moves the clock forward by dt seconds and returns the new time.
func (c *Clock) Advance(dt float64) float64 {
	if dt > 0 {
		c.elapsed += dt
	}
	return c.elapsed
}

func (c *Clock) Elapsed() float64 { return c.elapsed }

func (c *Clock) ElapsedMs() float64 { return c.elapsed * 1000 }

func (c *Clock) DifficultyMultiplier() float64 {
	return 1 + c.perMinute*c.elapsed/60
}

func (c *Clock) Tier() int { return c.tier }

// Escalate raises the tier by one and returns it.
func (c *Clock) Escalate() int {
	c.tier++
	return c.tier
}
