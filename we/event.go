package we

type EventType string

func (et EventType) String() string {
	return string(et)
}

type DomainEvent any

type EventTyped interface {
	EventType() EventType
}

func EventTypeOf(event DomainEvent) EventType {
	if typed, ok := event.(EventTyped); ok {
		return typed.EventType()
	}

	return EventType(NameOf(event))
}
