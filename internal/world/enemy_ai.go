package world

import (
	"sort"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

// neighbourOrder is the order candidates are enumerated in; it also breaks
// ties between equally good directions.
var neighbourOrder = [...]entities.Direction{
	entities.DirUp,
	entities.DirDown,
	entities.DirRight,
	entities.DirLeft,
}

type candidate struct {
	dir  entities.Direction
	dist float64
}

// ChooseDirection picks where an enemy standing on from goes next. Open
// neighbours are ordered by their distance to the nearest of the given
// player positions; chasing takes the closest, fleeing the farthest. The
// way back is only taken from a dead end. DirNone means the enemy is
// boxed in.
func ChooseDirection(b *tm.Board, from entities.Cell, current entities.Direction, players []entities.Vec, flee bool) entities.Direction {
	var (
		cands []candidate
		back  = entities.DirNone
	)
	for _, d := range neighbourOrder {
		next := b.Wrap(from.Step(d))
		if !b.Open(next) {
			continue
		}
		if entities.IsReverse(current, d) {
			back = d
			continue
		}
		cands = append(cands, candidate{dir: d, dist: nearestDistSq(next.Vec(), players)})
	}
	if len(cands) == 0 {
		return back
	}
	if len(players) == 0 {
		for _, c := range cands {
			if c.dir == current {
				return current
			}
		}
		return cands[0].dir
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if flee {
			return cands[i].dist > cands[j].dist
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].dir
}

func nearestDistSq(at entities.Vec, players []entities.Vec) float64 {
	best := -1.0
	for _, p := range players {
		if d := at.DistSq(p); best < 0 || d < best {
			best = d
		}
	}
	return best
}

// Frightened reports whether e is fleeing and can be eaten. Enemies still
// on their way out of the spawn area are not.
func (w *World) Frightened(e *entities.Enemy) bool {
	return w.Fright.Active() && e.State == entities.EnemyRoaming
}

func (w *World) enemyStepSeconds(e *entities.Enemy) float64 {
	speed := w.cfg.Enemy.Speed * w.cfg.Enemy.TypeSpeedFactor(e.Type)
	if w.Frightened(e) {
		speed *= w.cfg.Enemy.FrightSpeedFactor
	}
	return 1 / speed
}

func (w *World) updateEnemy(e *entities.Enemy) {
	switch e.State {
	case entities.EnemyWaiting:
		e.Cooldown -= w.dt
		if e.Cooldown > 0 {
			return
		}
		e.Cooldown = 0
		w.leaveSpawn(e)
	case entities.EnemyLeaving:
		if e.Advance(w.dt) {
			over := e.Overshoot()
			e.State = entities.EnemyRoaming
			w.steerEnemy(e)
			w.spend(&e.Mover, over)
		}
	case entities.EnemyRoaming:
		if !e.Moving() {
			w.steerEnemy(e)
		}
		if e.Advance(w.dt) {
			over := e.Overshoot()
			w.settle(&e.Mover)
			w.steerEnemy(e)
			w.spend(&e.Mover, over)
		}
	}
}

// leaveSpawn walks the enemy straight up out of the spawn area, through
// invisible walls, for ExitTiles cells. The walk goes on past that while
// the enemy is on or right under an invisible wall, so it never starts
// roaming inside the spawn area where the walls would shut it in.
func (w *World) leaveSpawn(e *entities.Enemy) {
	target := e.Cell
	tiles := 0
	for {
		next := target.Step(entities.DirUp)
		if !w.Board.OpenIgnoringInvisible(next) {
			break
		}
		if tiles >= w.cfg.Enemy.ExitTiles && !w.invisible(target) && !w.invisible(next) {
			break
		}
		target = next
		tiles++
	}
	if tiles == 0 {
		e.State = entities.EnemyRoaming
		return
	}
	e.State = entities.EnemyLeaving
	e.Begin(entities.DirUp, target, float64(tiles)*w.enemyStepSeconds(e))
}

func (w *World) steerEnemy(e *entities.Enemy) {
	dir := ChooseDirection(w.Board, e.Cell, e.Dir, w.activePlayerPositions(), w.Fright.Active())
	if dir == entities.DirNone {
		return
	}
	e.Begin(dir, e.Cell.Step(dir), w.enemyStepSeconds(e))
}

// reverseEnemies turns every roaming enemy around, as happens when fright
// mode starts.
func (w *World) reverseEnemies() {
	for _, e := range w.Enemies {
		if e.State != entities.EnemyRoaming {
			continue
		}
		if e.Moving() {
			// The cell behind may be an invisible wall right after leaving
			// the spawn area; going back there would shut the enemy in.
			if w.invisible(e.Cell) {
				continue
			}
			e.Reverse(w.enemyStepSeconds(e))
		} else {
			e.Dir = e.Dir.Reverse()
		}
	}
}

func (w *World) invisible(c entities.Cell) bool {
	c = w.Board.Wrap(c)
	return w.Board.At(c.X, c.Y) == tm.TileInvisibleWall
}
