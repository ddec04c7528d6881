package game

import (
	"fmt"
	"image/color"
	"os"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"github.com/GoncaloRod/PacmanWars/internal/entities"
)

var (
	hudGold = color.RGBA{R: 255, G: 215, B: 0, A: 255}
	hudGrey = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	dimmed  = color.RGBA{A: 160}
)

// LoadFont reads a TrueType font for the HUD.
func LoadFont(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func playerLabel(p *entities.Player) string {
	if !p.Active() {
		return fmt.Sprintf("P%d out  %d", p.Number, p.Score)
	}
	return fmt.Sprintf("P%d x%d  %d", p.Number, p.Lives, p.Score)
}

// resultBanner is the end-of-match message; winner is nil on a draw.
func resultBanner(winner *entities.Player) string {
	if winner == nil {
		return "draw!"
	}
	return fmt.Sprintf("player %d wins!", winner.Number)
}

func (g *Game) drawHUD(dst *ebiten.Image) {
	w := g.NativeWidth()
	boardH := g.level.Board.Height * g.tileSize
	baseline := boardH + (g.tileSize+g.face.Metrics().Ascent.Ceil())/2
	margin := g.tileSize / 4

	p1, p2 := g.world.Players[0], g.world.Players[1]
	text.Draw(dst, playerLabel(p1), g.face, margin, baseline, playerColors[0])
	right := playerLabel(p2)
	text.Draw(dst, right, g.face, w-margin-textWidth(g.face, right), baseline, playerColors[1])
	hi := fmt.Sprintf("HI %d", g.highScore)
	text.Draw(dst, hi, g.face, (w-textWidth(g.face, hi))/2, baseline, hudGold)

	switch {
	case g.world.Over():
		if hudBlink.Frame(g.tick) == 0 {
			g.drawBanner(dst, resultBanner(g.world.Winner()), color.White)
		}
		hint := "enter: play again"
		text.Draw(dst, hint, g.face, (w-textWidth(g.face, hint))/2, boardH/2+2*g.tileSize, hudGrey)
	case g.paused:
		g.drawBanner(dst, "paused", color.White)
	}
}

// drawBanner writes msg centred on the board over a dimmed band.
func (g *Game) drawBanner(dst *ebiten.Image, msg string, clr color.Color) {
	w := g.NativeWidth()
	mid := g.level.Board.Height * g.tileSize / 2
	vector.DrawFilledRect(dst, 0, float32(mid-g.tileSize), float32(w), float32(2*g.tileSize), dimmed, false)
	asc := g.face.Metrics().Ascent.Ceil()
	text.Draw(dst, msg, g.face, (w-textWidth(g.face, msg))/2, mid+asc/2, clr)
}

func textWidth(face font.Face, s string) int {
	return text.BoundString(face, s).Dx()
}
