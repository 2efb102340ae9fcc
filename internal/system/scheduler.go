// internal/system/scheduler.go
package system

import (
	"sort"

	"github.com/trouvaiilx/arcane-survivors/internal/types"
)

type scheduledAction struct {
	at       float64
	seq      uint64
	weaponID types.EntityID
	action   func()
}

// Scheduler runs deferred actions against the simulation clock. It replaces
// wall-clock timers for staggered shots and never blocks a tick.
type Scheduler struct {
	queue []scheduledAction
	seq   uint64
	valid func(weaponID types.EntityID) bool
}

// NewScheduler takes the liveness check applied when an action comes due.
// Actions whose check fails are dropped without running.
func NewScheduler(valid func(weaponID types.EntityID) bool) *Scheduler {
	return &Scheduler{valid: valid}
}

// Schedule queues action at sim time at. Actions due at the same time run in
// the order they were scheduled.
func (s *Scheduler) Schedule(at float64, weaponID types.EntityID, action func()) {
	s.seq++
	item := scheduledAction{at: at, seq: s.seq, weaponID: weaponID, action: action}
	i := sort.Search(len(s.queue), func(i int) bool { return s.queue[i].at > at })
	s.queue = append(s.queue, scheduledAction{})
	copy(s.queue[i+1:], s.queue[i:])
	s.queue[i] = item
}

// RunDue runs every action due at or before now, including ones scheduled by
// running actions. It returns how many ran and how many were abandoned.
func (s *Scheduler) RunDue(now float64) (ran, abandoned int) {
	for len(s.queue) > 0 && s.queue[0].at <= now {
		item := s.queue[0]
		s.queue[0] = scheduledAction{}
		s.queue = s.queue[1:]
		if s.valid != nil && !s.valid(item.weaponID) {
			abandoned++
			continue
		}
		item.action()
		ran++
	}
	return ran, abandoned
}

func (s *Scheduler) Len() int { return len(s.queue) }

func (s *Scheduler) Clear() { s.queue = nil }
