// internal/component/status_effect.go
package component

// SlowSpec describes a slow applied on hit.
type SlowSpec struct {
	Factor   float64 // speed multiplier while slowed, e.g. 0.5
	Duration float64
}

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Timer  float64 // How much time is left for the effect.
	Factor float64
}

func (s *SlowEffect) Active() bool { return s.Timer > 0 }

// Apply refreshes the slow. A stronger slow replaces a weaker one; a weaker one
// only extends the timer.
func (s *SlowEffect) Apply(spec SlowSpec) {
	if spec.Duration <= 0 || spec.Factor <= 0 || spec.Factor >= 1 {
		return
	}
	if !s.Active() || spec.Factor < s.Factor {
		s.Factor = spec.Factor
		s.Timer = spec.Duration
		return
	}
	if spec.Duration > s.Timer {
		s.Timer = spec.Duration
	}
}

// Multiplier is the current speed multiplier.
func (s *SlowEffect) Multiplier() float64 {
	if !s.Active() {
		return 1
	}
	return s.Factor
}

// Tick advances the timer and clears the effect once it runs out.
func (s *SlowEffect) Tick(dt float64) {
	if s.Timer <= 0 {
		return
	}
	s.Timer -= dt
	if s.Timer <= 0 {
		s.Timer = 0
		s.Factor = 0
	}
}
