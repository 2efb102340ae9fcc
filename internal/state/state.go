package state

import "github.com/hajimehoshi/ebiten/v2"

// State is one screen of the desktop shell: menu, run, pause or summary.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine runs one screen at a time. A screen that calls SetState from
// its own Update keeps running until that Update returns; the switch lands
// before the next frame's Update.
type StateMachine struct {
	current State
	next    State
	pending bool
}

func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState requests a switch to s. The first state is entered immediately.
func (sm *StateMachine) SetState(s State) {
	if sm.current == nil {
		sm.enter(s)
		return
	}
	sm.next, sm.pending = s, true
}

func (sm *StateMachine) enter(s State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = s
	if s != nil {
		s.Enter()
	}
}

// Current is the screen that will receive the next Update.
func (sm *StateMachine) Current() State {
	if sm.pending {
		return sm.next
	}
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.pending {
		sm.pending = false
		sm.enter(sm.next)
		sm.next = nil
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
