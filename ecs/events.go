package ecs

// Event is a generic event payload.
type Event struct {
	Type string
	Data any
}

// EventClick marks a buffered pointer click awaiting the placement pass.
const EventClick = "click"

// ClickEvent carries the screen coordinates of a click.
type ClickEvent struct {
	X, Y int
}

// EventQueue is a simple FIFO queue. Events pushed during a frame are
// drained in order by whoever consumes them; leftovers are flushed at
// the end of the world update.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events in push order and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
