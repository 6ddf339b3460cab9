package counter

type Counter struct {
	Count int `json:"count"`
}

func (state Counter) Value() int {
	return state.Count
}
