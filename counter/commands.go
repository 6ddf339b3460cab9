package counter

const IncrementCmd = "counter:increment"

type Increment struct{}

func (Increment) TypeName() string {
	return IncrementCmd
}

const ResetCmd = "counter:reset"

type Reset struct{}

func (Reset) TypeName() string {
	return ResetCmd
}
