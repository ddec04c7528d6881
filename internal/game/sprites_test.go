package game

import (
	"testing"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

func TestAnimationFrame(t *testing.T) {
	a := Animation{Frames: 3, Every: 5}
	want := []int{0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 2, 2, 2, 2, 2, 0}
	for tick, w := range want {
		if got := a.Frame(tick); got != w {
			t.Fatalf("tick %d: frame %d, want %d", tick, got, w)
		}
	}
	if got := (Animation{Frames: 1, Every: 5}).Frame(99); got != 0 {
		t.Fatalf("single frame animation returned %d", got)
	}
	if got := (Animation{Frames: 2}).Frame(99); got != 0 {
		t.Fatalf("animation without a rate returned %d", got)
	}
}

func TestPlayerSprite(t *testing.T) {
	p := entities.NewPlayer(2, entities.Cell{X: 1, Y: 1}, 3)
	p.Dir = entities.DirUp
	// At rest the mouth stays on the first frame.
	if got := playerSprite(p, 7); got != (tm.SpriteCell{Col: 6, Row: rowPlayer2}) {
		t.Fatalf("resting sprite %+v", got)
	}
	p.Begin(entities.DirLeft, entities.Cell{X: 0, Y: 1}, 1)
	if got := playerSprite(p, 7); got != (tm.SpriteCell{Col: 4, Row: rowPlayer2}) {
		t.Fatalf("moving sprite %+v", got)
	}
}

func TestEnemySpriteFlashesNearFrightEnd(t *testing.T) {
	e := entities.NewEnemy(0, 2, entities.Cell{X: 1, Y: 1}, 0)
	e.Dir = entities.DirDown
	if got := enemySprite(e, false, 0, 0); got != (tm.SpriteCell{Col: 6, Row: rowEnemy + 2}) {
		t.Fatalf("normal sprite %+v", got)
	}
	if got := enemySprite(e, true, 4, 16); got != (tm.SpriteCell{Col: 0, Row: rowFright}) {
		t.Fatalf("frightened sprite %+v", got)
	}
	// Tick 16 is on the first body frame and the white half of the flash.
	if got := enemySprite(e, true, 1.5, 16); got != (tm.SpriteCell{Col: 2, Row: rowFright}) {
		t.Fatalf("flashing sprite %+v", got)
	}
}

func TestPickupSprites(t *testing.T) {
	if got := pickupSprite(entities.NewPacDot(entities.Cell{}, 10)); got != pacDotSprite {
		t.Fatalf("pac-dot sprite %+v", got)
	}
	if got := pickupSprite(entities.NewPowerPellet(entities.Cell{}, 50)); got != powerPelletSprite {
		t.Fatalf("power pellet sprite %+v", got)
	}
	f := entities.NewFruit(entities.Cell{}, entities.Melon, 1000, 10)
	if got := pickupSprite(f); got != (tm.SpriteCell{Col: 2 + entities.Melon, Row: rowFruit}) {
		t.Fatalf("fruit sprite %+v", got)
	}
}
