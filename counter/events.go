package counter

import "github.com/weegigs/wee-starter/we"

var IncrementedEvent = we.EventType("counter:incremented")

type Incremented struct {
	Amount int `json:"amount"`
}

func (Incremented) EventType() we.EventType {
	return IncrementedEvent
}

var ResetEvent = we.EventType("counter:reset")

type Cleared struct{}

func (Cleared) EventType() we.EventType {
	return ResetEvent
}
