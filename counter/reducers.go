package counter

import "github.com/weegigs/wee-starter/we"

func incremented() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Incremented] = func(counter *Counter, incremented Incremented) error {
		counter.Count = counter.Count + incremented.Amount
		return nil
	}

	return reducer
}

// cleared is absolute; it never looks at the current count.
func cleared() we.Reducer[Counter] {
	var reducer we.ReducerFunction[Counter, Cleared] = func(counter *Counter, _ Cleared) error {
		counter.Count = 0
		return nil
	}

	return reducer
}

func Reducers() we.Reducers[Counter] {
	return we.Reducers[Counter]{
		IncrementedEvent: incremented(),
		ResetEvent:       cleared(),
	}
}
