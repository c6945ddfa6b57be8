package ecs

// EventKind names something gameplay systems report for sound and logging.
type EventKind string

const (
	EventDamage   EventKind = "damage"
	EventCoin     EventKind = "coin"
	EventPowerup  EventKind = "powerup"
	EventStomp    EventKind = "stomp"
	EventRespawn  EventKind = "respawn"
	EventVictory  EventKind = "victory"
	EventGameOver EventKind = "gameover"
)

// Event is one gameplay occurrence.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
	Value  int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
