// Package world is the match simulation: two players and a pack of enemies
// moving on one board, pickups, fright mode and the end of the match. It
// advances in fixed steps and knows nothing about rendering or input
// devices.
package world

import (
	"github.com/GoncaloRod/PacmanWars/internal/config"
	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

// EnemyTypes is the number of enemy palettes; spawns cycle through them.
const EnemyTypes = 4

type World struct {
	cfg   *config.Config
	Board *tm.Board

	Players      [2]*entities.Player
	Enemies      []*entities.Enemy
	PacDots      []*entities.Pickup
	PowerPellets []*entities.Pickup
	Fruits       []*entities.Pickup
	Fright       Fright

	fruitSpots    []entities.Cell
	dotsEaten     int
	fruitsSpawned int

	dt     float64
	tick   int
	over   bool
	events []Event
}

// New builds a fresh match from a parsed level. The level is not modified,
// so it can seed any number of matches.
func New(level *tm.Level, cfg *config.Config) *World {
	w := &World{
		cfg:        cfg,
		Board:      level.Board,
		fruitSpots: level.FruitSpots,
		dt:         1 / float64(cfg.TPS),
	}
	for i, start := range level.PlayerStarts {
		w.Players[i] = entities.NewPlayer(i+1, start, cfg.Player.Lives)
	}
	for i, spawn := range level.EnemySpawns {
		cooldown := float64(i) * cfg.Enemy.SpawnStagger
		w.Enemies = append(w.Enemies, entities.NewEnemy(i, i%EnemyTypes, spawn, cooldown))
	}
	for _, c := range level.PacDots {
		w.PacDots = append(w.PacDots, entities.NewPacDot(c, cfg.Scoring.PacDot))
	}
	for _, c := range level.PowerPellets {
		w.PowerPellets = append(w.PowerPellets, entities.NewPowerPellet(c, cfg.Scoring.PowerPellet))
	}
	return w
}

// Steer queues a direction for player n (1 or 2). DirNone keeps the
// previous intent.
func (w *World) Steer(n int, d entities.Direction) {
	if n < 1 || n > len(w.Players) || d == entities.DirNone {
		return
	}
	w.Players[n-1].DesiredDir = d
}

// Step advances the match by one fixed update.
func (w *World) Step() {
	if w.over {
		return
	}
	w.tick++
	w.Fright.Update(w.dt)

	for _, p := range w.Players {
		w.updatePlayer(p)
	}
	w.collectPickups()
	w.updateFruit()
	for _, e := range w.Enemies {
		w.updateEnemy(e)
	}
	w.checkPlayerEnemyCollision()
	w.checkGameOver()
}

func (w *World) Tick() int {
	return w.tick
}

func (w *World) Over() bool {
	return w.over
}

// Winner returns the player with the higher score once the match is over,
// or nil while it runs and on a draw.
func (w *World) Winner() *entities.Player {
	if !w.over {
		return nil
	}
	p1, p2 := w.Players[0], w.Players[1]
	switch {
	case p1.Score > p2.Score:
		return p1
	case p2.Score > p1.Score:
		return p2
	default:
		return nil
	}
}

// Remaining counts the pac-dots and power pellets still on the board.
func (w *World) Remaining() int {
	return len(w.PacDots) + len(w.PowerPellets)
}

// DrainEvents returns the events raised since the last call.
func (w *World) DrainEvents() []Event {
	ev := w.events
	w.events = nil
	return ev
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) activePlayerPositions() []entities.Vec {
	pos := make([]entities.Vec, 0, len(w.Players))
	for _, p := range w.Players {
		if p.Active() {
			pos = append(pos, p.Pos)
		}
	}
	return pos
}

func (w *World) checkGameOver() {
	anyActive := false
	for _, p := range w.Players {
		if p.Active() {
			anyActive = true
		}
	}
	if w.Remaining() > 0 && anyActive {
		return
	}
	w.over = true
	ev := Event{Kind: EventGameOver}
	if winner := w.Winner(); winner != nil {
		ev.Player = winner.Number
		ev.Points = winner.Score
	}
	w.emit(ev)
}
