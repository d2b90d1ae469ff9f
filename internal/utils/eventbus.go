package utils

// Event is a board change notification. Data carries the event payload,
// always including the boardId the change belongs to.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// EventBus decouples the services that mutate boards from the websocket
// hub that fans changes out to connected clients.
type EventBus struct {
	events chan Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		events: make(chan Event, 100),
	}
}

// Publish never blocks; if the consumer falls behind the event is dropped.
// Clients resync from the REST API, so a lost notification is benign.
func (eb *EventBus) Publish(event string, data interface{}) {
	e := Event{Event: event, Data: data}
	select {
	case eb.events <- e:
	default:
	}
}

func (eb *EventBus) SubscribeCh() <-chan Event {
	return eb.events
}
