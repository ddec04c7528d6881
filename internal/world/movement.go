package world

import "github.com/GoncaloRod/PacmanWars/internal/entities"

func (w *World) playerStepSeconds() float64 {
	return 1 / w.cfg.Player.Speed
}

func (w *World) updatePlayer(p *entities.Player) {
	if !p.Active() {
		return
	}
	if p.Invulnerable > 0 {
		p.Invulnerable -= w.dt
	}
	secs := w.playerStepSeconds()

	// Turning back never has to wait for the next cell.
	if p.Moving() && entities.IsReverse(p.Dir, p.DesiredDir) {
		p.Reverse(secs)
	}
	if !p.Moving() {
		w.beginPlayerStep(p, secs)
	}
	if p.Advance(w.dt) {
		over := p.Overshoot()
		w.settle(&p.Mover)
		w.beginPlayerStep(p, secs)
		w.spend(&p.Mover, over)
	}
}

// beginPlayerStep takes the queued turn when the cell in that direction is
// open, otherwise keeps going straight, otherwise stays put.
func (w *World) beginPlayerStep(p *entities.Player, secs float64) {
	dir := p.Dir
	if p.DesiredDir != entities.DirNone && w.Board.Open(p.Cell.Step(p.DesiredDir)) {
		dir = p.DesiredDir
	}
	if dir == entities.DirNone || !w.Board.Open(p.Cell.Step(dir)) {
		return
	}
	p.Begin(dir, p.Cell.Step(dir), secs)
}

// settle folds a mover that crossed a tunnel back onto the board.
func (w *World) settle(m *entities.Mover) {
	if wrapped := w.Board.Wrap(m.Cell); wrapped != m.Cell {
		m.Place(wrapped)
	}
}

// spend moves a mover that just began a step by the time left over from
// finishing the previous one.
func (w *World) spend(m *entities.Mover, over float64) {
	if over <= 0 || !m.Moving() {
		return
	}
	if m.Advance(over) {
		w.settle(m)
	}
}
