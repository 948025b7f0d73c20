package boxbuilder

import "github.com/akmonengine/boxbuilder/actor"

const (
	BASE_COMMITTED EventType = iota
	BOX_COMMITTED
	BOX_DISCARDED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// BaseCommittedEvent is sent when a base is released and becomes available for extrusion
type BaseCommittedEvent struct {
	Box actor.Descriptor
}

func (e BaseCommittedEvent) Type() EventType { return BASE_COMMITTED }

// BoxCommittedEvent is sent once per finished extrusion, with the final geometry
type BoxCommittedEvent struct {
	Box actor.Descriptor
}

func (e BoxCommittedEvent) Type() EventType { return BOX_COMMITTED }

// BoxDiscardedEvent is sent when a box leaves the workspace
type BoxDiscardedEvent struct {
	Box actor.Descriptor
}

func (e BoxDiscardedEvent) Type() EventType { return BOX_DISCARDED }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event
}

func NewEvents() Events {
	return Events{
		listeners: make(map[EventType][]EventListener),
		buffer:    make([]Event, 0, 8),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

func (e *Events) emit(event Event) {
	e.buffer = append(e.buffer, event)
}

// flush sends all buffered events and clears the buffer.
// Events emitted by a listener are delivered in the same flush.
func (e *Events) flush() {
	for len(e.buffer) > 0 {
		pending := e.buffer
		e.buffer = make([]Event, 0, cap(pending))

		for _, event := range pending {
			for _, listener := range e.listeners[event.Type()] {
				listener(event)
			}
		}
	}
}
