package system

import (
	"slices"
	"testing"

	"github.com/trouvaiilx/arcane-survivors/internal/types"
)

func TestSchedulerRunsInTimeThenInsertionOrder(t *testing.T) {
	s := NewScheduler(nil)
	var order []string
	s.Schedule(0.2, 1, func() { order = append(order, "late") })
	s.Schedule(0.1, 1, func() { order = append(order, "a") })
	s.Schedule(0.1, 1, func() { order = append(order, "b") })

	ran, abandoned := s.RunDue(0.15)
	if ran != 2 || abandoned != 0 {
		t.Fatalf("RunDue = (%d, %d), want (2, 0)", ran, abandoned)
	}
	s.RunDue(1)
	if want := []string{"a", "b", "late"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestSchedulerDropsActionsOfRemovedWeapons(t *testing.T) {
	equipped := map[types.EntityID]bool{1: true, 2: true}
	s := NewScheduler(func(id types.EntityID) bool { return equipped[id] })
	fired := 0
	s.Schedule(0.1, 1, func() { fired++ })
	s.Schedule(0.1, 2, func() { fired++ })
	delete(equipped, 2)

	ran, abandoned := s.RunDue(0.1)
	if ran != 1 || abandoned != 1 || fired != 1 {
		t.Errorf("ran=%d abandoned=%d fired=%d, want 1 1 1", ran, abandoned, fired)
	}
	if s.Len() != 0 {
		t.Errorf("queue not drained: %d left", s.Len())
	}
}

func TestSchedulerRunsActionsScheduledByActions(t *testing.T) {
	s := NewScheduler(nil)
	fired := 0
	s.Schedule(0, 1, func() {
		fired++
		s.Schedule(0, 1, func() { fired++ })
	})
	s.RunDue(0)
	if fired != 2 {
		t.Errorf("fired = %d, want 2", fired)
	}
}

func TestSchedulerClear(t *testing.T) {
	s := NewScheduler(nil)
	s.Schedule(1, 1, func() { t.Error("cleared action ran") })
	s.Clear()
	s.RunDue(2)
}
