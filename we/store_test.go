package we

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tally struct {
	Total int
}

type added struct {
	Amount int
}

type cleared struct{}

type rejected struct{}

var errRejected = errors.New("rejected")

func tallyReducers() Reducers[tally] {
	var add ReducerFunction[tally, added] = func(state *tally, event added) error {
		state.Total += event.Amount
		return nil
	}

	var reset ReducerFunction[tally, cleared] = func(state *tally, _ cleared) error {
		state.Total = 0
		return nil
	}

	var reject ReducerFunction[tally, rejected] = func(state *tally, _ rejected) error {
		state.Total = -1
		return errRejected
	}

	return Reducers[tally]{
		EventTypeOf(added{}):    add,
		EventTypeOf(cleared{}):  reset,
		EventTypeOf(rejected{}): reject,
	}
}

func newTallyStore() *Store[tally] {
	return NewStore(tally{}, tallyReducers())
}

func TestStore(t *testing.T) {
	t.Run("starts at the initial revision", func(t *testing.T) {
		store := newTallyStore()

		state, revision := store.Current()
		assert.Equal(t, tally{}, state)
		assert.Equal(t, InitialRevision, revision)
	})

	t.Run("applies events through reducers", func(t *testing.T) {
		store := newTallyStore()

		change, err := store.Dispatch(added{Amount: 3})
		require.NoError(t, err)

		assert.Equal(t, 3, change.State.Total)
		assert.Equal(t, 0, change.Previous.Total)
		assert.Equal(t, EventType("we:added"), change.EventType)
		assert.Equal(t, change.Revision, store.Revision())
		assert.Equal(t, 3, store.State().Total)
	})

	t.Run("stamps each change with a later revision", func(t *testing.T) {
		now := time.Now()
		store := NewStore(tally{}, tallyReducers(), WithClock(ClockFunc(func() time.Time { return now })))

		first, err := store.Dispatch(added{Amount: 1})
		require.NoError(t, err)
		second, err := store.Dispatch(cleared{})
		require.NoError(t, err)

		assert.Greater(t, first.Revision.String(), InitialRevision.String())
		assert.Greater(t, second.Revision.String(), first.Revision.String())
	})

	t.Run("rejects events without a reducer", func(t *testing.T) {
		store := newTallyStore()
		notified := 0
		store.Subscribe(func(Change[tally]) { notified++ })

		_, err := store.Dispatch(struct{ Name string }{Name: "stray"})

		var notFound ReducerNotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, InitialRevision, store.Revision())
		assert.Equal(t, 0, notified)
	})

	t.Run("leaves state untouched when a reducer fails", func(t *testing.T) {
		store := newTallyStore()
		_, err := store.Dispatch(added{Amount: 5})
		require.NoError(t, err)
		revision := store.Revision()

		_, err = store.Dispatch(rejected{})

		assert.ErrorIs(t, err, errRejected)
		assert.Equal(t, 5, store.State().Total)
		assert.Equal(t, revision, store.Revision())
	})

	t.Run("notifies listeners in subscription order before returning", func(t *testing.T) {
		store := newTallyStore()

		var order []string
		store.Subscribe(func(change Change[tally]) { order = append(order, "first") })
		store.Subscribe(func(change Change[tally]) { order = append(order, "second") })
		store.Subscribe(func(change Change[tally]) { order = append(order, "third") })

		_, err := store.Dispatch(added{Amount: 1})
		require.NoError(t, err)

		assert.Equal(t, []string{"first", "second", "third"}, order)
	})

	t.Run("stops notifying after unsubscribe", func(t *testing.T) {
		store := newTallyStore()

		kept, removed := 0, 0
		store.Subscribe(func(Change[tally]) { kept++ })
		unsubscribe := store.Subscribe(func(Change[tally]) { removed++ })

		_, _ = store.Dispatch(added{Amount: 1})
		unsubscribe()
		unsubscribe()
		_, _ = store.Dispatch(added{Amount: 1})

		assert.Equal(t, 2, kept)
		assert.Equal(t, 1, removed)
		assert.Equal(t, 1, store.Listeners())
	})

	t.Run("skips a listener removed by an earlier listener", func(t *testing.T) {
		store := newTallyStore()

		var unsubscribe Unsubscribe
		late := 0
		store.Subscribe(func(Change[tally]) { unsubscribe() })
		unsubscribe = store.Subscribe(func(Change[tally]) { late++ })

		_, _ = store.Dispatch(added{Amount: 1})

		assert.Equal(t, 0, late)
	})

	t.Run("allows listeners to dispatch", func(t *testing.T) {
		store := newTallyStore()

		store.Subscribe(func(change Change[tally]) {
			if change.State.Total == 1 {
				_, _ = store.Dispatch(added{Amount: 1})
			}
		})

		_, err := store.Dispatch(added{Amount: 1})
		require.NoError(t, err)

		assert.Equal(t, 2, store.State().Total)
	})

	t.Run("serializes concurrent dispatches", func(t *testing.T) {
		store := newTallyStore()

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					_, _ = store.Dispatch(added{Amount: 1})
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 1000, store.State().Total)
	})
}
