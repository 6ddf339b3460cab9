package we

import (
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Change describes one committed state transition. State and Previous are copies.
type Change[T any] struct {
	EventType EventType
	Revision  Revision
	State     T
	Previous  T
}

type Listener[T any] func(change Change[T])

// Unsubscribe removes a single registration. Calling it more than once is a no-op.
type Unsubscribe func()

type StoreOption func(*storeSettings)

type storeSettings struct {
	clock     Clock
	revisions *RevisionGenerator
}

func WithClock(clock Clock) StoreOption {
	return func(settings *storeSettings) {
		settings.clock = clock
	}
}

func WithRevisionGenerator(generator *RevisionGenerator) StoreOption {
	return func(settings *storeSettings) {
		settings.revisions = generator
	}
}

type subscription[T any] struct {
	id       uint64
	listener Listener[T]
	active   atomic.Bool
}

// Store holds a single value of T and applies events to it through reducers.
//
// T is copied on every read and write, so it should be a value type. Listeners
// run synchronously on the dispatching goroutine, in subscription order, after
// the state lock is released; they may read from or dispatch to the store.
type Store[T any] struct {
	lk            sync.Mutex
	state         T
	revision      Revision
	reducers      Reducers[T]
	subscriptions []*subscription[T]
	sequence      uint64

	clock     Clock
	revisions *RevisionGenerator
}

func NewStore[T any](initial T, reducers Reducers[T], options ...StoreOption) *Store[T] {
	settings := &storeSettings{}
	for _, option := range options {
		option(settings)
	}

	if settings.clock == nil {
		settings.clock = systemClock{}
	}

	if settings.revisions == nil {
		settings.revisions = NewRevisionGenerator()
	}

	return &Store[T]{
		state:     initial,
		revision:  InitialRevision,
		reducers:  reducers,
		clock:     settings.clock,
		revisions: settings.revisions,
	}
}

func (s *Store[T]) State() T {
	s.lk.Lock()
	defer s.lk.Unlock()

	return s.state
}

func (s *Store[T]) Revision() Revision {
	s.lk.Lock()
	defer s.lk.Unlock()

	return s.revision
}

// Current returns the state together with the revision that produced it.
func (s *Store[T]) Current() (T, Revision) {
	s.lk.Lock()
	defer s.lk.Unlock()

	return s.state, s.revision
}

// Dispatch reduces event into the state and notifies every listener before returning.
// The state is left untouched when no reducer accepts the event.
func (s *Store[T]) Dispatch(event DomainEvent) (Change[T], error) {
	eventType := EventTypeOf(event)

	reducer := s.reducers[eventType]
	if reducer == nil {
		return Change[T]{}, ReducerNotFound(eventType)
	}

	change, listeners, err := s.commit(eventType, reducer, event)
	if err != nil {
		return Change[T]{}, err
	}

	for _, sub := range listeners {
		if sub.active.Load() {
			sub.listener(change)
		}
	}

	return change, nil
}

func (s *Store[T]) commit(eventType EventType, reducer Reducer[T], event DomainEvent) (Change[T], []*subscription[T], error) {
	s.lk.Lock()
	defer s.lk.Unlock()

	next := s.state
	if err := reducer.Reduce(&next, event); err != nil {
		return Change[T]{}, nil, errors.Wrapf(err, "failed to reduce %s", eventType)
	}

	change := Change[T]{
		EventType: eventType,
		Revision:  s.revisions.NewRevision(s.clock.Now()),
		State:     next,
		Previous:  s.state,
	}

	s.state = next
	s.revision = change.Revision

	listeners := make([]*subscription[T], len(s.subscriptions))
	copy(listeners, s.subscriptions)

	return change, listeners, nil
}

func (s *Store[T]) Subscribe(listener Listener[T]) Unsubscribe {
	s.lk.Lock()
	defer s.lk.Unlock()

	s.sequence++
	sub := &subscription[T]{id: s.sequence, listener: listener}
	sub.active.Store(true)
	s.subscriptions = append(s.subscriptions, sub)

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(sub) })
	}
}

func (s *Store[T]) remove(sub *subscription[T]) {
	sub.active.Store(false)

	s.lk.Lock()
	defer s.lk.Unlock()

	for i, candidate := range s.subscriptions {
		if candidate.id == sub.id {
			s.subscriptions = append(s.subscriptions[:i:i], s.subscriptions[i+1:]...)
			return
		}
	}
}

func (s *Store[T]) Listeners() int {
	s.lk.Lock()
	defer s.lk.Unlock()

	return len(s.subscriptions)
}
