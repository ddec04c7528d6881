package tilemap

import "github.com/GoncaloRod/PacmanWars/internal/entities"

type Tile int

const (
	TileEmpty Tile = iota
	TileWall
	// TileInvisibleWall blocks movement but is neither drawn nor joined by
	// neighbouring wall sprites.
	TileInvisibleWall
)

// Board is the static maze. It never changes after it has been loaded.
type Board struct {
	Width  int
	Height int
	Tiles  [][]Tile
}

func NewBoard(tiles [][]Tile) *Board {
	b := &Board{Height: len(tiles), Tiles: tiles}
	if b.Height > 0 {
		b.Width = len(tiles[0])
	}
	return b
}

func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.Width && y < b.Height
}

// At returns the tile at (x, y). Out of bounds reads as a wall.
func (b *Board) At(x, y int) Tile {
	if !b.InBounds(x, y) {
		return TileWall
	}
	return b.Tiles[y][x]
}

// IsWall reports whether (x, y) blocks movement. Out-of-bounds is a wall.
func (b *Board) IsWall(x, y int) bool {
	return b.At(x, y) != TileEmpty
}

// IsSolid reports whether (x, y) is a visible wall or outside the board.
func (b *Board) IsSolid(x, y int) bool {
	return b.At(x, y) == TileWall
}

// Wrap folds a horizontal coordinate that left the board back onto it, so
// rows whose edge cells are open act as tunnels.
func (b *Board) Wrap(c entities.Cell) entities.Cell {
	if b.Width == 0 || c.Y < 0 || c.Y >= b.Height {
		return c
	}
	c.X = ((c.X % b.Width) + b.Width) % b.Width
	return c
}

// Open reports whether c can be entered, following tunnels.
func (b *Board) Open(c entities.Cell) bool {
	w := b.Wrap(c)
	return !b.IsWall(w.X, w.Y)
}

// OpenIgnoringInvisible is Open for enemies leaving their spawn area.
func (b *Board) OpenIgnoringInvisible(c entities.Cell) bool {
	w := b.Wrap(c)
	return !b.IsSolid(w.X, w.Y)
}
