package component

type EnemyType string

const (
	EnemyWalker EnemyType = "walker"
	EnemyJumper EnemyType = "jumper"
	EnemyFlyer  EnemyType = "flyer"
)

// Enemy patrols OriginX±Range. Defeated enemies are deactivated, not destroyed.
type Enemy struct {
	Type      EnemyType
	Range     float64
	OriginX   float64
	Active    bool
	JumpTimer int
}

var EnemyComponent = NewComponent[Enemy]()
