package world

import "github.com/GoncaloRod/PacmanWars/internal/entities"

type EventKind int

const (
	EventPacDot EventKind = iota
	EventPowerPellet
	EventFruit
	EventFruitSpawned
	EventFruitExpired
	EventEnemyEaten
	EventLifeLost
	EventPlayerOut
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventPacDot:
		return "pac-dot eaten"
	case EventPowerPellet:
		return "power pellet eaten"
	case EventFruit:
		return "fruit eaten"
	case EventFruitSpawned:
		return "fruit spawned"
	case EventFruitExpired:
		return "fruit expired"
	case EventEnemyEaten:
		return "enemy eaten"
	case EventLifeLost:
		return "life lost"
	case EventPlayerOut:
		return "player out"
	case EventGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Event reports something that happened during a step. Player is 1 or 2,
// or 0 when no player is involved (or, for EventGameOver, on a draw).
type Event struct {
	Kind   EventKind
	Player int
	Enemy  int
	Points int
	Cell   entities.Cell
}
