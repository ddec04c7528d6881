package entities

type EnemyState int

const (
	// EnemyWaiting sits on its origin until the cooldown runs out.
	EnemyWaiting EnemyState = iota
	// EnemyLeaving walks straight out of the spawn area.
	EnemyLeaving
	EnemyRoaming
)

func (s EnemyState) String() string {
	switch s {
	case EnemyWaiting:
		return "waiting"
	case EnemyLeaving:
		return "leaving"
	case EnemyRoaming:
		return "roaming"
	default:
		return "unknown"
	}
}

type Enemy struct {
	Mover
	Index  int
	Type   int
	Origin Cell
	State  EnemyState
	// Cooldown is the number of seconds left before the enemy leaves its
	// origin.
	Cooldown float64
}

func NewEnemy(index, typ int, origin Cell, cooldown float64) *Enemy {
	e := &Enemy{Index: index, Type: typ, Origin: origin, Cooldown: cooldown}
	e.Place(origin)
	e.Dir = DirUp
	return e
}

// Active reports whether the enemy is on the board and can touch players.
func (e *Enemy) Active() bool {
	return e.State != EnemyWaiting
}

func (e *Enemy) Hitbox() Rect {
	return CenteredRect(e.Pos, ActorHitbox)
}

// SendHome puts the enemy back on its origin with a fresh cooldown.
func (e *Enemy) SendHome(cooldown float64) {
	e.Place(e.Origin)
	e.Dir = DirUp
	e.State = EnemyWaiting
	e.Cooldown = cooldown
}
