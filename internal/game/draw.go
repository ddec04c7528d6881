package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

var (
	playerColors = [2]color.RGBA{
		{R: 255, G: 221, B: 0, A: 255},   // yellow
		{R: 124, G: 252, B: 120, A: 255}, // green
	}
	enemyColors = []color.RGBA{
		{R: 255, G: 0, B: 0, A: 255},     // red
		{R: 255, G: 128, B: 255, A: 255}, // pink
		{R: 0, G: 191, B: 255, A: 255},   // cyan
		{R: 255, G: 128, B: 0, A: 255},   // orange
	}
	frightBlue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	frightWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pickupColor = color.RGBA{R: 255, G: 184, B: 151, A: 255}
	fruitColors = []color.RGBA{
		{R: 220, G: 20, B: 60, A: 255},  // cherry
		{R: 255, G: 60, B: 90, A: 255},  // strawberry
		{R: 255, G: 140, B: 0, A: 255},  // orange
		{R: 170, G: 255, B: 60, A: 255}, // apple
		{R: 60, G: 200, B: 90, A: 255},  // melon
	}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	// Draw at native resolution then scale up
	if g.off == nil {
		g.off = ebiten.NewImage(g.NativeWidth(), g.NativeHeight())
	}
	off := g.off
	off.Clear()

	g.walls.Draw(off)
	g.drawPickups(off)
	for _, e := range g.world.Enemies {
		g.drawEnemy(off, e)
	}
	for _, p := range g.world.Players {
		g.drawPlayer(off, p)
	}
	g.drawHUD(off)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	screen.DrawImage(off, op)
}

// drawSprite draws a sheet cell scaled to size tiles, centred on the tile at
// pos.
func (g *Game) drawSprite(dst *ebiten.Image, cell tm.SpriteCell, pos entities.Vec, size float64) {
	ts := float64(g.tileSize)
	px := size * ts
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(px/tm.SheetCellSize, px/tm.SheetCellSize)
	op.GeoM.Translate(pos.X*ts+(ts-px)/2, pos.Y*ts+(ts-px)/2)
	dst.DrawImage(tm.SheetCell(g.sheet, cell), op)
}

func (g *Game) center(pos entities.Vec) (float32, float32) {
	ts := float64(g.tileSize)
	return float32(pos.X*ts + ts/2), float32(pos.Y*ts + ts/2)
}

func (g *Game) drawPickups(dst *ebiten.Image) {
	groups := [][]*entities.Pickup{g.world.PacDots, g.world.PowerPellets, g.world.Fruits}
	for _, group := range groups {
		for _, p := range group {
			if g.sheet != nil {
				// Pac-dots are too small to read at sprite size, so pickups
				// are drawn a tile wide and their hitbox stays small.
				g.drawSprite(dst, pickupSprite(p), p.Cell.Vec(), 1)
				continue
			}
			cx, cy := g.center(p.Cell.Vec())
			r := float32(p.Size()*float64(g.tileSize)) / 2
			clr := pickupColor
			if p.Kind == entities.Fruit {
				clr = fruitColors[p.FruitType%len(fruitColors)]
			}
			if p.Kind == entities.PacDot && r < 2 {
				r = 2
			}
			vector.DrawFilledCircle(dst, cx, cy, r, clr, true)
		}
	}
}

func (g *Game) drawPlayer(dst *ebiten.Image, p *entities.Player) {
	if !p.Active() {
		return
	}
	// Invulnerable players blink.
	if !p.Vulnerable() && hudBlink.Frame(g.tick) == 1 {
		return
	}
	if g.sheet != nil {
		g.drawSprite(dst, playerSprite(p, g.tick), p.Pos, 1)
		return
	}
	cx, cy := g.center(p.Pos)
	r := float32(g.tileSize)/2 - 2
	vector.DrawFilledCircle(dst, cx, cy, r, playerColors[(p.Number-1)%2], true)
	if p.Moving() && playerMouth.Frame(g.tick) > 0 {
		// Mouth: a black wedge drawn as a short thick line along the heading.
		dx, dy := entities.DirDelta(p.Dir)
		width := r * float32(playerMouth.Frame(g.tick)) / 2
		vector.StrokeLine(dst, cx, cy, cx+float32(dx)*r, cy+float32(dy)*r, width, color.Black, true)
	}
}

func (g *Game) drawEnemy(dst *ebiten.Image, e *entities.Enemy) {
	frightened := g.world.Frightened(e)
	left := g.world.Fright.Remaining
	if g.sheet != nil {
		g.drawSprite(dst, enemySprite(e, frightened, left, g.tick), e.Pos, 1)
		return
	}
	clr := enemyColors[e.Type%len(enemyColors)]
	if frightened {
		clr = frightBlue
		if frightFlashing(left, g.tick) {
			clr = frightWhite
		}
	}
	cx, cy := g.center(e.Pos)
	r := float32(g.tileSize)/2 - 2
	vector.DrawFilledCircle(dst, cx, cy-r/3, r*2/3, clr, true)
	skirt := r / 4 * float32(1+enemyBody.Frame(g.tick))
	vector.DrawFilledRect(dst, cx-r*2/3, cy-r/3, r*4/3, r/3+r*2/3-skirt/4, clr, true)
}
