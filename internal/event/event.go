// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие с целочисленной нагрузкой: номер волны, количество
// врагов или id башни, в зависимости от типа.
type Event struct {
	Type EventType
	Data int
}

// Listener — получатель событий
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события подписчикам по их типу.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe — подписка на события заданного типа
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Unsubscribe убирает подписчика; порядок остальных сохраняется.
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			d.listeners[eventType] = append(listeners[:i], listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — доставка события всем подписчикам его типа
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
