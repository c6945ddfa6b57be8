package component

type Goal struct {
	Width   float64
	Height  float64
	Reached bool
}

var GoalComponent = NewComponent[Goal]()
