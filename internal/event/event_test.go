package event

import "testing"

type recorder struct{ got []EventType }

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e.Type) }

func TestDispatchOrderAndUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(BossDefeated, ListenerFunc(func(Event) { order = append(order, "first") }))
	rec := &recorder{}
	d.Subscribe(BossDefeated, rec)
	d.Subscribe(PlayerDied, rec)

	d.Dispatch(Event{Type: BossDefeated})
	if len(order) != 1 || len(rec.got) != 1 {
		t.Fatalf("order %v, recorder %v", order, rec.got)
	}

	d.Unsubscribe(PlayerDied, rec)
	d.Dispatch(Event{Type: PlayerDied})
	if len(rec.got) != 1 {
		t.Errorf("unsubscribed listener still called: %v", rec.got)
	}

	var nilDispatcher *Dispatcher
	nilDispatcher.Dispatch(Event{Type: Victory})
}
