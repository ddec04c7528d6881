package entities

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Mover is grid-locked movement shared by players and enemies. A mover is
// either resting on Cell or stepping towards Target; Pos is interpolated
// between the two and snaps exactly to Target on arrival.
type Mover struct {
	Cell   Cell
	Target Cell
	Pos    Vec
	Dir    Direction

	from Vec
	step *gween.Tween
	// elapsed and duration of the current step, and the part of the last
	// Advance left over after arriving.
	elapsed  float64
	duration float64
	over     float64
}

// Place puts the mover at rest on c, cancelling any step in progress.
func (m *Mover) Place(c Cell) {
	m.Cell = c
	m.Target = c
	m.Pos = c.Vec()
	m.from = m.Pos
	m.step = nil
	m.over = 0
}

func (m *Mover) Moving() bool {
	return m.step != nil
}

// Begin starts a linear step from the current cell to target lasting
// seconds. Target may lie outside the board when crossing a tunnel; the
// caller normalises Cell after arrival.
func (m *Mover) Begin(dir Direction, target Cell, seconds float64) {
	if seconds <= 0 {
		seconds = 1e-6
	}
	m.Dir = dir
	m.Target = target
	m.from = m.Cell.Vec()
	m.step = gween.New(0, 1, float32(seconds), ease.Linear)
	m.elapsed, m.duration, m.over = 0, seconds, 0
}

// Advance moves the tween forward by dt seconds and reports whether the
// mover arrived at its target during this call.
func (m *Mover) Advance(dt float64) bool {
	if m.step == nil {
		return false
	}
	m.elapsed += dt
	t, done := m.step.Update(float32(dt))
	if done {
		m.over = math.Max(0, m.elapsed-m.duration)
		m.Cell = m.Target
		m.Pos = m.Target.Vec()
		m.from = m.Pos
		m.step = nil
		return true
	}
	m.Pos = Lerp(m.from, m.Target.Vec(), float64(t))
	return false
}

// Reverse turns a step in progress around without losing ground: the mover
// heads back to the cell it came from over the distance already covered.
func (m *Mover) Reverse(secondsPerTile float64) {
	if m.step == nil {
		return
	}
	covered := m.Pos.Dist(m.from)
	origin := m.Cell
	m.Cell = m.Target
	m.Target = origin
	m.Dir = m.Dir.Reverse()
	m.from = m.Cell.Vec()
	// Resume at the current point: progress runs from what is left of the
	// new step up to 1.
	start := 1 - covered
	if start < 0 {
		start = 0
	}
	remaining := covered * secondsPerTile
	if remaining <= 0 {
		m.Place(m.Target)
		return
	}
	m.step = gween.New(float32(start), 1, float32(remaining), ease.Linear)
	m.elapsed, m.duration = 0, remaining
}

// Overshoot is how much of the last Advance was left after arriving. The
// next step spends it so that speed is not rounded down to whole updates
// per tile.
func (m *Mover) Overshoot() float64 {
	return m.over
}
