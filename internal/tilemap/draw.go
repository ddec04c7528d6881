package tilemap

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SheetCellSize is the edge of one sprite sheet cell in pixels.
const SheetCellSize = 16

var wallBlue = color.RGBA{R: 33, G: 33, B: 255, A: 255}

// Renderer draws the walls of a board. With a sprite sheet the autotile
// table picks the sprite of each wall; without one the walls are drawn as
// outlines that follow the same neighbour masks.
type Renderer struct {
	board    *Board
	tileSize int
	sheet    *ebiten.Image
	sprites  map[[2]int]SpriteCell
	masks    map[[2]int]Mask
}

func NewRenderer(b *Board, t *TileTable, sheet *ebiten.Image, tileSize int) *Renderer {
	r := &Renderer{
		board:    b,
		tileSize: tileSize,
		sheet:    sheet,
		sprites:  b.WallSprites(t),
		masks:    make(map[[2]int]Mask),
	}
	for pos := range r.sprites {
		r.masks[pos] = b.NeighbourMask(pos[0], pos[1])
	}
	return r
}

// SheetCell returns the sub image of the sheet at c.
func SheetCell(sheet *ebiten.Image, c SpriteCell) *ebiten.Image {
	x := c.Col * SheetCellSize
	y := c.Row * SheetCellSize
	return sheet.SubImage(image.Rect(x, y, x+SheetCellSize, y+SheetCellSize)).(*ebiten.Image)
}

func (r *Renderer) Draw(dst *ebiten.Image) {
	ts := float64(r.tileSize)
	for pos, sprite := range r.sprites {
		px := float64(pos[0]) * ts
		py := float64(pos[1]) * ts
		if r.sheet != nil {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(ts/SheetCellSize, ts/SheetCellSize)
			op.GeoM.Translate(px, py)
			dst.DrawImage(SheetCell(r.sheet, sprite), op)
			continue
		}
		r.drawOutline(dst, float32(px), float32(py), r.masks[pos])
	}
}

func (r *Renderer) drawOutline(dst *ebiten.Image, px, py float32, m Mask) {
	ts := float32(r.tileSize)
	half := ts / 2
	cx, cy := px+half, py+half
	width := ts / 8
	joined := false
	if m.Has(MaskN) {
		vector.StrokeLine(dst, cx, cy, cx, py, width, wallBlue, false)
		joined = true
	}
	if m.Has(MaskS) {
		vector.StrokeLine(dst, cx, cy, cx, py+ts, width, wallBlue, false)
		joined = true
	}
	if m.Has(MaskW) {
		vector.StrokeLine(dst, cx, cy, px, cy, width, wallBlue, false)
		joined = true
	}
	if m.Has(MaskE) {
		vector.StrokeLine(dst, cx, cy, px+ts, cy, width, wallBlue, false)
		joined = true
	}
	if !joined {
		vector.DrawFilledRect(dst, cx-width, cy-width, 2*width, 2*width, wallBlue, false)
	}
}
