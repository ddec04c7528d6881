package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/GoncaloRod/PacmanWars/internal/config"
	"github.com/GoncaloRod/PacmanWars/internal/entities"
)

// Controls are the keys of one player.
type Controls struct {
	Up    ebiten.Key
	Down  ebiten.Key
	Right ebiten.Key
	Left  ebiten.Key
}

// ParseKey resolves an ebiten key name such as "W" or "ArrowLeft".
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown key %q: %w", name, err)
	}
	return k, nil
}

func NewControls(c config.ControlConfig) (Controls, error) {
	var (
		ctl Controls
		err error
	)
	for _, b := range []struct {
		dst  *ebiten.Key
		name string
	}{
		{&ctl.Up, c.Up},
		{&ctl.Down, c.Down},
		{&ctl.Right, c.Right},
		{&ctl.Left, c.Left},
	} {
		if *b.dst, err = ParseKey(b.name); err != nil {
			return Controls{}, err
		}
	}
	return ctl, nil
}

func (c Controls) keyDir(k ebiten.Key) entities.Direction {
	switch k {
	case c.Up:
		return entities.DirUp
	case c.Down:
		return entities.DirDown
	case c.Right:
		return entities.DirRight
	case c.Left:
		return entities.DirLeft
	default:
		return entities.DirNone
	}
}

// Direction returns the direction the player asks for this update. A key
// pressed this very update beats keys that are merely held, so the latest
// press wins when several are down.
func (c Controls) Direction() entities.Direction {
	keys := [...]ebiten.Key{c.Up, c.Down, c.Right, c.Left}
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return c.keyDir(k)
		}
	}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return c.keyDir(k)
		}
	}
	return entities.DirNone
}

func (g *Game) handleInput() {
	for i, ctl := range g.controls {
		g.world.Steer(i+1, ctl.Direction())
	}

	// Fullscreen toggle with 'F'
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fullscreen = !g.fullscreen
		ebiten.SetFullscreen(g.fullscreen)
	}

	// Pause toggle with Space
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !g.world.Over() {
		g.paused = !g.paused
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && g.world.Over() {
		g.restart()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit = true
	}
}
