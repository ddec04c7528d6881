package game

import (
	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

// Animation cycles through Frames sprite frames, moving on every Every
// updates.
type Animation struct {
	Frames int
	Every  int
}

func (a Animation) Frame(tick int) int {
	if a.Frames <= 1 || a.Every <= 0 || tick < 0 {
		return 0
	}
	return (tick / a.Every) % a.Frames
}

var (
	playerMouth = Animation{Frames: 3, Every: 5}
	enemyBody   = Animation{Frames: 2, Every: 8}
	// frightFlash alternates blue and white near the end of fright mode.
	frightFlash = Animation{Frames: 2, Every: 12}
	// hudBlink drives the end-of-match banner and invulnerable players.
	hudBlink = Animation{Frames: 2, Every: 20}
)

// frightWarnSeconds is how long before fright ends enemies start flashing.
const frightWarnSeconds = 2

// Sprite sheet rows. Players and enemies have one column block per facing,
// in dirColumn order.
const (
	rowPlayer1 = 0
	rowPlayer2 = 1
	rowFruit   = 3
	rowEnemy   = 4
	rowPickup  = 6
	rowFright  = 8
)

var (
	pacDotSprite      = tm.SpriteCell{Col: 8, Row: rowPickup}
	powerPelletSprite = tm.SpriteCell{Col: 10, Row: rowPickup}
)

func dirColumn(d entities.Direction) int {
	switch d {
	case entities.DirLeft:
		return 1
	case entities.DirUp:
		return 2
	case entities.DirDown:
		return 3
	default:
		return 0
	}
}

func playerSprite(p *entities.Player, tick int) tm.SpriteCell {
	row := rowPlayer1
	if p.Number == 2 {
		row = rowPlayer2
	}
	frame := 0
	if p.Moving() {
		frame = playerMouth.Frame(tick)
	}
	return tm.SpriteCell{Col: dirColumn(p.Dir)*playerMouth.Frames + frame, Row: row}
}

func enemySprite(e *entities.Enemy, frightened bool, frightLeft float64, tick int) tm.SpriteCell {
	frame := enemyBody.Frame(tick)
	if frightened {
		col := frame
		if frightFlashing(frightLeft, tick) {
			col += enemyBody.Frames
		}
		return tm.SpriteCell{Col: col, Row: rowFright}
	}
	return tm.SpriteCell{Col: dirColumn(e.Dir)*enemyBody.Frames + frame, Row: rowEnemy + e.Type}
}

func fruitSprite(f *entities.Pickup) tm.SpriteCell {
	return tm.SpriteCell{Col: 2 + f.FruitType, Row: rowFruit}
}

func pickupSprite(p *entities.Pickup) tm.SpriteCell {
	switch p.Kind {
	case entities.PowerPellet:
		return powerPelletSprite
	case entities.Fruit:
		return fruitSprite(p)
	default:
		return pacDotSprite
	}
}

// frightFlashing reports whether a frightened enemy shows its white frame.
func frightFlashing(frightLeft float64, tick int) bool {
	return frightLeft <= frightWarnSeconds && frightFlash.Frame(tick) == 1
}
