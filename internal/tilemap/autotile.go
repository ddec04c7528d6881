package tilemap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Mask is the 8-neighbour occupancy of a wall cell. Bits run NW, N, NE, W,
// E, SW, S, SE from the most significant down, the same order the tile
// table writes them.
type Mask uint8

const (
	MaskSE Mask = 1 << iota
	MaskS
	MaskSW
	MaskE
	MaskW
	MaskNE
	MaskN
	MaskNW

	MaskAll Mask = 0xFF
)

// neighbourOffsets lists (dx, dy) in bit order, most significant first.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// NeighbourMask computes the mask for (x, y). Visible walls and cells
// outside the board count as occupied.
func (b *Board) NeighbourMask(x, y int) Mask {
	var m Mask
	for _, off := range neighbourOffsets {
		m <<= 1
		if b.IsSolid(x+off[0], y+off[1]) {
			m |= 1
		}
	}
	return m
}

func (m Mask) Has(bits Mask) bool {
	return m&bits == bits
}

// String renders the mask the way the tile table spells it.
func (m Mask) String() string {
	return fmt.Sprintf("%08b", uint8(m))
}

func ParseMask(s string) (Mask, error) {
	if len(s) != 8 || strings.Trim(s, "01") != "" {
		return 0, fmt.Errorf("bad neighbour bitstring %q: want 8 binary digits", s)
	}
	v, err := strconv.ParseUint(s, 2, 8)
	if err != nil {
		return 0, fmt.Errorf("bad neighbour bitstring %q: %w", s, err)
	}
	return Mask(v), nil
}

// SpriteCell addresses a 16x16 cell of the sprite sheet.
type SpriteCell struct {
	Col, Row int
}

// DefaultWallSprite is used for masks the tile table does not list.
var DefaultWallSprite = SpriteCell{Col: 0, Row: 13}

// TileTable maps neighbour masks to wall sprites.
type TileTable struct {
	entries  map[Mask]SpriteCell
	Fallback SpriteCell
}

func NewTileTable() *TileTable {
	return &TileTable{entries: make(map[Mask]SpriteCell), Fallback: DefaultWallSprite}
}

func (t *TileTable) Len() int {
	return len(t.entries)
}

func (t *TileTable) Set(m Mask, c SpriteCell) {
	t.entries[m] = c
}

// Lookup returns the sprite for m and whether the table listed it.
func (t *TileTable) Lookup(m Mask) (SpriteCell, bool) {
	if c, ok := t.entries[m]; ok {
		return c, true
	}
	return t.Fallback, false
}

func LoadTileTable(path string) (*TileTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tile table: %w", err)
	}
	defer f.Close()
	t, err := ParseTileTable(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseTileTable reads "column row bitstring" lines. Blank lines and lines
// starting with # are ignored.
func ParseTileTable(r io.Reader) (*TileTable, error) {
	t := NewTileTable()
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: want \"column row bitstring\", got %q", n, line)
		}
		col, err := strconv.Atoi(fields[0])
		if err != nil || col < 0 {
			return nil, fmt.Errorf("line %d: bad column %q", n, fields[0])
		}
		row, err := strconv.Atoi(fields[1])
		if err != nil || row < 0 {
			return nil, fmt.Errorf("line %d: bad row %q", n, fields[1])
		}
		m, err := ParseMask(fields[2])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if _, dup := t.entries[m]; dup {
			return nil, fmt.Errorf("line %d: mask %s listed twice", n, m)
		}
		t.Set(m, SpriteCell{Col: col, Row: row})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read tile table: %w", err)
	}
	return t, nil
}

// WallSprites resolves the sprite of every visible wall cell once; the
// board is immutable so the result can be cached by the renderer.
func (b *Board) WallSprites(t *TileTable) map[[2]int]SpriteCell {
	out := make(map[[2]int]SpriteCell)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Tiles[y][x] != TileWall {
				continue
			}
			c, _ := t.Lookup(b.NeighbourMask(x, y))
			out[[2]int{x, y}] = c
		}
	}
	return out
}
