package world

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

func openBoard(w, h int) *tm.Board {
	tiles := make([][]tm.Tile, h)
	for y := range tiles {
		tiles[y] = make([]tm.Tile, w)
	}
	return tm.NewBoard(tiles)
}

func at(x, y int) entities.Vec {
	return entities.Cell{X: x, Y: y}.Vec()
}

func TestChooseDirection(t *testing.T) {
	b := openBoard(5, 3)
	up, down, right, left := entities.DirUp, entities.DirDown, entities.DirRight, entities.DirLeft

	tests := []struct {
		name    string
		from    entities.Cell
		current entities.Direction
		players []entities.Vec
		flee    bool
		want    entities.Direction
	}{
		{"chase closest", entities.Cell{X: 2, Y: 1}, up, []entities.Vec{at(4, 1)}, false, right},
		{"flee farthest", entities.Cell{X: 2, Y: 1}, up, []entities.Vec{at(4, 1)}, true, left},
		{"chase tie keeps enumeration order", entities.Cell{X: 2, Y: 1}, right, []entities.Vec{at(0, 1)}, false, up},
		{"flee away from player behind", entities.Cell{X: 2, Y: 1}, right, []entities.Vec{at(0, 1)}, true, right},
		{"flee tie keeps enumeration order", entities.Cell{X: 2, Y: 1}, right, []entities.Vec{at(2, 1)}, true, up},
		{"chase nearest of two players", entities.Cell{X: 2, Y: 0}, left, []entities.Vec{at(4, 1), at(0, 1)}, false, left},
		{"flee nearest of two players", entities.Cell{X: 2, Y: 0}, left, []entities.Vec{at(4, 1), at(0, 1)}, true, down},
		{"no players keeps going", entities.Cell{X: 2, Y: 1}, left, nil, false, left},
		{"no players from rest takes first open", entities.Cell{X: 2, Y: 1}, entities.DirNone, nil, false, up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChooseDirection(b, tt.from, tt.current, tt.players, tt.flee))
		})
	}
}

func TestChooseDirectionNeverReversesOutsideDeadEnds(t *testing.T) {
	b := openBoard(5, 3)
	// The player sits right behind the enemy; it still has to go round.
	got := ChooseDirection(b, entities.Cell{X: 2, Y: 1}, entities.DirRight, []entities.Vec{at(1, 1)}, false)
	assert.NotEqual(t, entities.DirLeft, got)
}

func TestChooseDirectionDeadEnd(t *testing.T) {
	b := tm.NewBoard([][]tm.Tile{
		{tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall},
		{tm.TileWall, tm.TileEmpty, tm.TileEmpty, tm.TileWall},
		{tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall},
	})
	players := []entities.Vec{at(2, 1)}
	assert.Equal(t, entities.DirRight, ChooseDirection(b, entities.Cell{X: 1, Y: 1}, entities.DirLeft, players, false))
	assert.Equal(t, entities.DirRight, ChooseDirection(b, entities.Cell{X: 1, Y: 1}, entities.DirLeft, players, true))

	boxed := tm.NewBoard([][]tm.Tile{
		{tm.TileWall, tm.TileWall, tm.TileWall},
		{tm.TileWall, tm.TileEmpty, tm.TileWall},
		{tm.TileWall, tm.TileWall, tm.TileWall},
	})
	assert.Equal(t, entities.DirNone, ChooseDirection(boxed, entities.Cell{X: 1, Y: 1}, entities.DirUp, players, false))
}

func TestChooseDirectionFollowsTunnels(t *testing.T) {
	b := tm.NewBoard([][]tm.Tile{
		{tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall},
		{tm.TileEmpty, tm.TileEmpty, tm.TileEmpty, tm.TileEmpty, tm.TileEmpty},
		{tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall, tm.TileWall},
	})
	// From the left edge the wrapped cell (4,1) is a neighbour; the player
	// standing there is reached through the tunnel.
	got := ChooseDirection(b, entities.Cell{X: 0, Y: 1}, entities.DirLeft, []entities.Vec{at(4, 1)}, false)
	assert.Equal(t, entities.DirLeft, got)
}

func TestEnemyStepSecondsSlowsDuringFright(t *testing.T) {
	w := newWorld(t, corridor)
	e := roamingEnemyOn(w, entities.Cell{X: 3, Y: 1})
	normal := w.enemyStepSeconds(e)
	w.Fright.Start(5)
	assert.InDelta(t, normal*2, w.enemyStepSeconds(e), 1e-9)

	e.State = entities.EnemyLeaving
	assert.InDelta(t, normal, w.enemyStepSeconds(e), 1e-9)
}

func TestPelletReversesRoamingEnemies(t *testing.T) {
	w := newWorld(t, corridor)
	e := roamingEnemyOn(w, entities.Cell{X: 3, Y: 1})
	e.Begin(entities.DirRight, entities.Cell{X: 4, Y: 1}, w.enemyStepSeconds(e))
	e.Advance(0.05)

	w.reverseEnemies()
	assert.Equal(t, entities.DirLeft, e.Dir)
	assert.Equal(t, entities.Cell{X: 3, Y: 1}, e.Target)
	assert.True(t, e.Moving())
}
