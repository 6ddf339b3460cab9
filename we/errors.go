package we

import "fmt"

type ReducerNotFoundError struct {
	EventType EventType
}

func (e ReducerNotFoundError) Error() string {
	return fmt.Sprintf("no reducer registered for event %s", e.EventType)
}

func ReducerNotFound(eventType EventType) ReducerNotFoundError {
	return ReducerNotFoundError{EventType: eventType}
}

type UnexpectedEventError struct {
	EventType EventType
}

func (e UnexpectedEventError) Error() string {
	return fmt.Sprintf("unexpected event %s", e.EventType)
}

func UnexpectedEvent(event DomainEvent) UnexpectedEventError {
	return UnexpectedEventError{EventType: EventTypeOf(event)}
}

type CommandNotFoundError struct {
	Command CommandName
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Command)
}

func CommandNotFound(command Command) CommandNotFoundError {
	return CommandNotFoundError{Command: CommandNameOf(command)}
}
