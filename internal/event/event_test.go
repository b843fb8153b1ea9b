// internal/event/event_test.go
package event

import "testing"

type countingListener struct {
	got []Event
}

func (c *countingListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatcher_DeliversByType(t *testing.T) {
	d := NewDispatcher()
	waves := &countingListener{}
	kills := &countingListener{}
	d.Subscribe(WaveStarted, waves)
	d.Subscribe(EnemyKilled, kills)

	d.Dispatch(Event{Type: WaveStarted, Data: 3})
	d.Dispatch(Event{Type: EnemyKilled, Data: 2})
	d.Dispatch(Event{Type: TowerSold, Data: 7}) // без подписчиков

	if len(waves.got) != 1 || waves.got[0].Data != 3 {
		t.Errorf("wave listener got %+v, want one event with Data=3", waves.got)
	}
	if len(kills.got) != 1 || kills.got[0].Data != 2 {
		t.Errorf("kill listener got %+v, want one event with Data=2", kills.got)
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &countingListener{}
	b := &countingListener{}
	d.Subscribe(WaveEnded, a)
	d.Subscribe(WaveEnded, b)

	d.Unsubscribe(WaveEnded, a)
	d.Dispatch(Event{Type: WaveEnded, Data: 1})

	if len(a.got) != 0 {
		t.Errorf("unsubscribed listener still got %+v", a.got)
	}
	if len(b.got) != 1 {
		t.Errorf("remaining listener got %d events, want 1", len(b.got))
	}
}
