package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/GoncaloRod/PacmanWars/internal/config"
	"github.com/GoncaloRod/PacmanWars/internal/entities"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

// oneDot is a match player 1 wins by moving right once.
const oneDot = "WWWWW\nW1D2W\nWWWWW\n"

func newTestGame(t *testing.T, layout string, tweak func(*config.Config)) *Game {
	t.Helper()
	lvl, err := tm.ParseLayout(strings.NewReader(layout))
	if err != nil {
		t.Fatalf("parse layout: %v", err)
	}
	cfg := config.Default()
	cfg.HighScoreFile = filepath.Join(t.TempDir(), "highscore.txt")
	if tweak != nil {
		tweak(cfg)
	}
	g, err := New(cfg, lvl, tm.NewTileTable(), Assets{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func playOut(t *testing.T, g *Game) {
	t.Helper()
	g.world.Steer(1, entities.DirRight)
	for i := 0; i < 120 && !g.world.Over(); i++ {
		g.step()
	}
	if !g.world.Over() {
		t.Fatal("match should be over")
	}
}

func TestScreenDimensionsPositive(t *testing.T) {
	g := newTestGame(t, oneDot, nil)
	if g.ScreenWidth() <= 0 || g.ScreenHeight() <= 0 {
		t.Fatalf("screen dimensions must be positive, got %dx%d", g.ScreenWidth(), g.ScreenHeight())
	}
	// One extra tile row holds the HUD.
	if g.NativeWidth() != 5*32 || g.NativeHeight() != 4*32 {
		t.Fatalf("unexpected native size %dx%d", g.NativeWidth(), g.NativeHeight())
	}
}

func TestFitScale(t *testing.T) {
	tests := []struct {
		name           string
		nw, nh, sw, sh int
		want           float64
	}{
		{"width bound", 100, 50, 400, 1000, 3},
		{"height bound", 100, 100, 4000, 400, 3},
		{"no screen", 100, 100, 0, 0, 1},
		{"empty board", 0, 0, 800, 600, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fitScale(tt.nw, tt.nh, tt.sw, tt.sh); got != tt.want {
				t.Fatalf("fitScale = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConfiguredScaleWins(t *testing.T) {
	g := newTestGame(t, oneDot, func(c *config.Config) { c.WindowScale = 2 })
	g.FitTo(4000, 4000)
	if g.ScreenWidth() != 2*g.NativeWidth() {
		t.Fatalf("expected configured scale 2, got width %d", g.ScreenWidth())
	}
}

func TestHighScoreSavedAtGameOver(t *testing.T) {
	g := newTestGame(t, oneDot, nil)
	playOut(t, g)

	data, err := os.ReadFile(g.highScorePath)
	if err != nil {
		t.Fatalf("read high score: %v", err)
	}
	if string(data) != "10" {
		t.Fatalf("unexpected high score file %q", string(data))
	}
	if g.best != 10 || g.highScore != 10 {
		t.Fatalf("best=%d highScore=%d, want 10", g.best, g.highScore)
	}
}

func TestHighScoreKeptWhenNotBeaten(t *testing.T) {
	g := newTestGame(t, oneDot, nil)
	path := g.highScorePath
	if err := SaveHighScore(path, 500); err != nil {
		t.Fatal(err)
	}
	// Reload so the game picks up the stored value.
	g, err := New(g.cfg, g.level, tm.NewTileTable(), Assets{})
	if err != nil {
		t.Fatal(err)
	}
	if g.highScore != 500 {
		t.Fatalf("expected loaded high score 500, got %d", g.highScore)
	}
	playOut(t, g)
	data, _ := os.ReadFile(path)
	if string(data) != "500" {
		t.Fatalf("high score should be untouched, got %q", string(data))
	}
}

func TestUnreadableHighScoreStartsAtZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.txt")
	if err := os.WriteFile(path, []byte("not a number"), 0o644); err != nil {
		t.Fatal(err)
	}
	g := newTestGame(t, oneDot, func(c *config.Config) { c.HighScoreFile = path })
	if g.highScore != 0 {
		t.Fatalf("expected 0, got %d", g.highScore)
	}
}

func TestRestartBuildsFreshMatch(t *testing.T) {
	g := newTestGame(t, oneDot, nil)
	playOut(t, g)
	g.paused = true
	g.restart()
	if g.world.Over() || g.paused {
		t.Fatal("restart should resume a running match")
	}
	if g.world.Remaining() != 1 {
		t.Fatalf("the level should be untouched by the previous match, remaining=%d", g.world.Remaining())
	}
	if g.world.Players[0].Score != 0 {
		t.Fatalf("scores should reset, got %d", g.world.Players[0].Score)
	}
	if g.highScore != 10 {
		t.Fatalf("the high score survives a restart, got %d", g.highScore)
	}
}

func TestNewRejectsUnknownKey(t *testing.T) {
	lvl, err := tm.ParseLayout(strings.NewReader(oneDot))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.HighScoreFile = filepath.Join(t.TempDir(), "hs.txt")
	cfg.Controls[1].Left = "NoSuchKey"
	if _, err := New(cfg, lvl, tm.NewTileTable(), Assets{}); err == nil {
		t.Fatal("expected an error for an unknown key name")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want ebiten.Key
	}{
		{"W", ebiten.KeyW},
		{"A", ebiten.KeyA},
		{"ArrowUp", ebiten.KeyArrowUp},
		{"ArrowLeft", ebiten.KeyArrowLeft},
	}
	for _, tt := range tests {
		got, err := ParseKey(tt.name)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Fatalf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
	if _, err := ParseKey(""); err == nil {
		t.Fatal("expected error for an empty key name")
	}
}

func TestDefaultControlsMapDirections(t *testing.T) {
	ctl, err := NewControls(config.Default().Controls[0])
	if err != nil {
		t.Fatal(err)
	}
	cases := map[ebiten.Key]entities.Direction{
		ebiten.KeyW: entities.DirUp,
		ebiten.KeyS: entities.DirDown,
		ebiten.KeyD: entities.DirRight,
		ebiten.KeyA: entities.DirLeft,
		ebiten.KeyQ: entities.DirNone,
	}
	for k, want := range cases {
		if got := ctl.keyDir(k); got != want {
			t.Fatalf("key %v: got %v, want %v", k, got, want)
		}
	}
}

func TestResultBanner(t *testing.T) {
	if got := resultBanner(nil); got != "draw!" {
		t.Fatalf("got %q", got)
	}
	p := entities.NewPlayer(2, entities.Cell{}, 3)
	if got := resultBanner(p); got != "player 2 wins!" {
		t.Fatalf("got %q", got)
	}
	if got := playerLabel(p); got != "P2 x3  0" {
		t.Fatalf("got %q", got)
	}
	p.Lives = 0
	p.Score = 70
	if got := playerLabel(p); got != "P2 out  70" {
		t.Fatalf("got %q", got)
	}
}

func TestLayoutMatchesScreenSize(t *testing.T) {
	g := newTestGame(t, oneDot, nil)
	g.FitTo(1600, 1200)
	w, h := g.Layout(0, 0)
	if w != g.ScreenWidth() || h != g.ScreenHeight() {
		t.Fatalf("layout mismatch: got %dx%d want %dx%d", w, h, g.ScreenWidth(), g.ScreenHeight())
	}
}
