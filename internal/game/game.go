package game

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/GoncaloRod/PacmanWars/internal/config"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
	"github.com/GoncaloRod/PacmanWars/internal/world"
)

// Assets are the optional resources loaded by the caller. A nil Sheet draws
// everything as shapes; a nil Face uses the built-in bitmap font.
type Assets struct {
	Sheet *ebiten.Image
	Face  font.Face
}

type Game struct {
	cfg      *config.Config
	level    *tm.Level
	world    *world.World
	walls    *tm.Renderer
	sheet    *ebiten.Image
	face     font.Face
	controls [2]Controls

	tileSize int
	scale    float64
	off      *ebiten.Image

	// best is the high score on disk, highScore the best seen so far.
	best          int
	highScore     int
	highScorePath string

	tick       int
	fullscreen bool
	paused     bool
	quit       bool
}

func New(cfg *config.Config, level *tm.Level, table *tm.TileTable, assets Assets) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		level:    level,
		world:    world.New(level, cfg),
		walls:    tm.NewRenderer(level.Board, table, assets.Sheet, cfg.TileSize),
		sheet:    assets.Sheet,
		face:     assets.Face,
		tileSize: cfg.TileSize,
		scale:    1,
	}
	if g.face == nil {
		g.face = basicfont.Face7x13
	}
	for i := range g.controls {
		ctl, err := NewControls(cfg.Controls[i])
		if err != nil {
			return nil, fmt.Errorf("controls of player %d: %w", i+1, err)
		}
		g.controls[i] = ctl
	}
	if cfg.WindowScale > 0 {
		g.scale = cfg.WindowScale
	}

	path, err := cfg.HighScorePath()
	if err != nil {
		log.WithError(err).Warn("no place to keep the high score")
	} else {
		g.highScorePath = path
		best, err := LoadHighScore(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("ignoring unreadable high score")
		}
		g.best, g.highScore = best, best
	}
	return g, nil
}

// NativeWidth is the width of the board in pixels before scaling.
func (g *Game) NativeWidth() int {
	return g.level.Board.Width * g.tileSize
}

// NativeHeight is the board plus the HUD strip under it.
func (g *Game) NativeHeight() int {
	return g.level.Board.Height*g.tileSize + g.tileSize
}

// FitTo picks the scale that fills about 75% of a screen, unless the
// configuration fixes one.
func (g *Game) FitTo(screenW, screenH int) {
	if g.cfg.WindowScale > 0 {
		return
	}
	g.scale = fitScale(g.NativeWidth(), g.NativeHeight(), screenW, screenH)
}

func fitScale(nativeW, nativeH, screenW, screenH int) float64 {
	const fit = 0.75
	if nativeW <= 0 || nativeH <= 0 {
		return 1
	}
	maxW := float64(screenW) * fit
	maxH := float64(screenH) * fit
	scale := math.Min(maxW/float64(nativeW), maxH/float64(nativeH))
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return 1
	}
	return scale
}

func (g *Game) ScreenWidth() int {
	return int(float64(g.NativeWidth()) * g.scale)
}

func (g *Game) ScreenHeight() int {
	return int(float64(g.NativeHeight()) * g.scale)
}

func (g *Game) Update() error {
	g.tick++
	g.handleInput()
	if g.quit {
		g.saveHighScore()
		return ebiten.Termination
	}
	if g.paused || g.world.Over() {
		return nil
	}
	g.step()
	return nil
}

// step advances the match by one update and reacts to what happened.
func (g *Game) step() {
	g.world.Step()
	for _, p := range g.world.Players {
		if p.Score > g.highScore {
			g.highScore = p.Score
		}
	}
	for _, ev := range g.world.DrainEvents() {
		g.logEvent(ev)
		if ev.Kind == world.EventGameOver {
			g.saveHighScore()
		}
	}
}

func (g *Game) logEvent(ev world.Event) {
	fields := log.Fields{
		"tick":   g.world.Tick(),
		"player": ev.Player,
	}
	switch ev.Kind {
	case world.EventGameOver:
		p1, p2 := g.world.Players[0], g.world.Players[1]
		log.WithFields(fields).WithFields(log.Fields{
			"score1": p1.Score,
			"score2": p2.Score,
		}).Info("match over")
		return
	case world.EventEnemyEaten:
		fields["enemy"] = ev.Enemy
	case world.EventPlayerOut:
		log.WithFields(fields).Info("player eliminated")
		return
	}
	fields["points"] = ev.Points
	fields["x"] = ev.Cell.X
	fields["y"] = ev.Cell.Y
	log.WithFields(fields).Debug(ev.Kind.String())
}

// saveHighScore writes the high score when this session has beaten the one
// on disk.
func (g *Game) saveHighScore() {
	if g.highScorePath == "" || g.highScore <= g.best {
		return
	}
	if err := SaveHighScore(g.highScorePath, g.highScore); err != nil {
		log.WithError(err).WithField("path", g.highScorePath).Warn("could not save high score")
		return
	}
	g.best = g.highScore
	log.WithField("score", g.highScore).Info("new high score")
}

// restart begins a new match on the same level.
func (g *Game) restart() {
	g.world = world.New(g.level, g.cfg)
	g.paused = false
	log.Info("match restarted")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.ScreenWidth(), g.ScreenHeight()
}
