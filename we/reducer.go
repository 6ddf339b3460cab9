package we

type Reducer[T any] interface {
	Reduce(state *T, event DomainEvent) error
}

type Reducers[T any] map[EventType]Reducer[T]

// ReducerFunction adapts a function over a concrete event type to a Reducer.
type ReducerFunction[T any, E any] func(state *T, event E) error

func (f ReducerFunction[T, E]) Reduce(state *T, event DomainEvent) error {
	typed, ok := event.(E)
	if !ok {
		return UnexpectedEvent(event)
	}

	return f(state, typed)
}
