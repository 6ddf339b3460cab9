package counter

import (
	"fmt"

	"github.com/weegigs/wee-starter/we"
)

// Listener receives the new and the previous state after every change.
type Listener = func(state Counter, previous Counter)

type Snapshot struct {
	Count    int         `json:"count"`
	Revision we.Revision `json:"revision"`
}

// Store is the process-wide counter. Create one at startup and hand it to its consumers.
type Store struct {
	store *we.Store[Counter]
}

func NewStore(options ...we.StoreOption) *Store {
	return &Store{store: we.NewStore(Counter{}, Reducers(), options...)}
}

func (s *Store) Value() int {
	return s.store.State().Value()
}

func (s *Store) Snapshot() Snapshot {
	state, revision := s.store.Current()
	return Snapshot{Count: state.Count, Revision: revision}
}

func (s *Store) Increment() {
	s.apply(Incremented{Amount: 1})
}

func (s *Store) Reset() {
	s.apply(Cleared{})
}

// Execute runs a command and returns the snapshot it produced.
func (s *Store) Execute(command we.Command) (Snapshot, error) {
	switch command.(type) {
	case Increment, *Increment:
		return s.apply(Incremented{Amount: 1}), nil
	case Reset, *Reset:
		return s.apply(Cleared{}), nil
	default:
		return Snapshot{}, we.CommandNotFound(command)
	}
}

func (s *Store) Subscribe(listener Listener) we.Unsubscribe {
	return s.store.Subscribe(func(change we.Change[Counter]) {
		listener(change.State, change.Previous)
	})
}

// Watch delivers the snapshot produced by every change.
func (s *Store) Watch(watcher func(Snapshot)) we.Unsubscribe {
	return s.store.Subscribe(func(change we.Change[Counter]) {
		watcher(Snapshot{Count: change.State.Count, Revision: change.Revision})
	})
}

func (s *Store) Listeners() int {
	return s.store.Listeners()
}

func (s *Store) apply(event we.DomainEvent) Snapshot {
	change, err := s.store.Dispatch(event)
	if err != nil {
		// both events have total reducers, so this is a wiring fault
		panic(fmt.Sprintf("counter: %v", err))
	}

	return Snapshot{Count: change.State.Count, Revision: change.Revision}
}
