package world

import "github.com/GoncaloRod/PacmanWars/internal/entities"

// Arbitrate decides which of the players touching something at the same
// time gets it: the one closer to at, then the one with fewer points. When
// both match, the later player wins.
func Arbitrate(players []*entities.Player, at entities.Vec) *entities.Player {
	var (
		best     *entities.Player
		bestDist float64
	)
	for _, p := range players {
		d := p.Pos.DistSq(at)
		switch {
		case best == nil || d < bestDist:
			best, bestDist = p, d
		case d == bestDist && p.Score <= best.Score:
			best = p
		}
	}
	return best
}

func (w *World) collectPickups() {
	w.PacDots = w.collect(w.PacDots)
	w.PowerPellets = w.collect(w.PowerPellets)
	w.Fruits = w.collect(w.Fruits)
}

// collect hands out every pickup a player overlaps and returns the ones
// left on the board.
func (w *World) collect(items []*entities.Pickup) []*entities.Pickup {
	kept := items[:0]
	for _, it := range items {
		area := it.Area()
		var touching []*entities.Player
		for _, p := range w.Players {
			if p.Active() && p.Area().Intersects(area) {
				touching = append(touching, p)
			}
		}
		if len(touching) == 0 {
			kept = append(kept, it)
			continue
		}
		w.consume(it, Arbitrate(touching, it.Cell.Vec()))
	}
	for i := len(kept); i < len(items); i++ {
		items[i] = nil
	}
	return kept
}

func (w *World) consume(it *entities.Pickup, p *entities.Player) {
	it.Consumed = true
	p.AddPoints(it.Value)
	ev := Event{Player: p.Number, Points: it.Value, Cell: it.Cell}
	switch it.Kind {
	case entities.PacDot:
		ev.Kind = EventPacDot
		w.dotsEaten++
	case entities.PowerPellet:
		ev.Kind = EventPowerPellet
		w.Fright.Start(w.cfg.Enemy.FrightSeconds)
		w.reverseEnemies()
	case entities.Fruit:
		ev.Kind = EventFruit
	}
	w.emit(ev)
}

func (w *World) checkPlayerEnemyCollision() {
	for _, e := range w.Enemies {
		if !e.Active() {
			continue
		}
		hb := e.Hitbox()
		var touching []*entities.Player
		for _, p := range w.Players {
			if p.Active() && p.Hitbox().Intersects(hb) {
				touching = append(touching, p)
			}
		}
		if len(touching) == 0 {
			continue
		}
		if w.Frightened(e) {
			w.eatEnemy(e, Arbitrate(touching, e.Pos))
			continue
		}
		for _, p := range touching {
			if p.Vulnerable() {
				w.loseLife(p)
			}
		}
	}
}

func (w *World) eatEnemy(e *entities.Enemy, p *entities.Player) {
	points := w.Fright.Bonus(w.cfg.Scoring.EnemyBase, w.cfg.Scoring.EnemyMax)
	w.Fright.Eaten++
	p.AddPoints(points)
	w.emit(Event{Kind: EventEnemyEaten, Player: p.Number, Enemy: e.Index, Points: points, Cell: e.Cell})
	e.SendHome(w.cfg.Enemy.RespawnCooldown)
}

func (w *World) loseLife(p *entities.Player) {
	p.Lives--
	w.emit(Event{Kind: EventLifeLost, Player: p.Number, Cell: p.Cell})
	if p.Lives > 0 {
		p.Respawn(w.cfg.Player.RespawnInvulnerability)
		return
	}
	p.Lives = 0
	p.Place(p.Start)
	p.Dir = entities.DirNone
	w.emit(Event{Kind: EventPlayerOut, Player: p.Number})
}
