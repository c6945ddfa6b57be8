package component

// Input stores the key-down state sampled at the start of a tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

var InputComponent = NewComponent[Input]()
