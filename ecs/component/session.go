package component

type GameState int

const (
	StateRunning GameState = iota
	StateGameOver
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateGameOver:
		return "gameOver"
	case StateVictory:
		return "victory"
	default:
		return "running"
	}
}

// Terminal reports whether the attempt has ended.
func (s GameState) Terminal() bool {
	return s != StateRunning
}

// Session is the singleton holding score and outcome for one attempt.
type Session struct {
	State       GameState
	Score       int
	Tick        int
	LevelNumber int
	Theme       string
}

var SessionComponent = NewComponent[Session]()
