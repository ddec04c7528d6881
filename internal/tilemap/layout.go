package tilemap

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
)

// Layout characters.
const (
	CharWall          = 'W'
	CharInvisibleWall = 'I'
	CharPacDot        = 'D'
	CharPowerPellet   = 'P'
	CharFruit         = 'F'
	CharPlayer1       = '1'
	CharPlayer2       = '2'
	CharEnemySpawn    = 'S'
)

var (
	ErrEmptyLayout     = errors.New("layout is empty")
	ErrRaggedLayout    = errors.New("layout rows differ in length")
	ErrMissingPlayer   = errors.New("layout is missing a player start")
	ErrDuplicatePlayer = errors.New("layout has a duplicate player start")
)

// Level is everything a layout file describes: the board plus where things
// start. Markers other than walls sit on empty cells.
type Level struct {
	Board        *Board
	PlayerStarts [2]entities.Cell
	EnemySpawns  []entities.Cell
	PacDots      []entities.Cell
	PowerPellets []entities.Cell
	FruitSpots   []entities.Cell
}

func LoadLayout(path string) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()
	lvl, err := ParseLayout(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}

func ParseLayout(r io.Reader) (*Level, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyLayout
	}

	width := len(lines[0])
	lvl := &Level{}
	seen := [2]bool{}
	grid := make([][]Tile, len(lines))
	for y, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("line %d: %w (got %d, want %d)", y+1, ErrRaggedLayout, len(line), width)
		}
		grid[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			c := entities.Cell{X: x, Y: y}
			switch ch := line[x]; ch {
			case CharWall:
				grid[y][x] = TileWall
			case CharInvisibleWall:
				grid[y][x] = TileInvisibleWall
			case CharPacDot:
				lvl.PacDots = append(lvl.PacDots, c)
			case CharPowerPellet:
				lvl.PowerPellets = append(lvl.PowerPellets, c)
			case CharFruit:
				lvl.FruitSpots = append(lvl.FruitSpots, c)
			case CharEnemySpawn:
				lvl.EnemySpawns = append(lvl.EnemySpawns, c)
			case CharPlayer1, CharPlayer2:
				i := int(ch - CharPlayer1)
				if seen[i] {
					return nil, fmt.Errorf("line %d: %w %c", y+1, ErrDuplicatePlayer, ch)
				}
				seen[i] = true
				lvl.PlayerStarts[i] = c
			case ' ', '.':
			default:
				return nil, fmt.Errorf("line %d column %d: unknown layout character %q", y+1, x+1, ch)
			}
		}
	}
	for i, ok := range seen {
		if !ok {
			return nil, fmt.Errorf("%w %d", ErrMissingPlayer, i+1)
		}
	}
	lvl.Board = NewBoard(grid)
	return lvl, nil
}
