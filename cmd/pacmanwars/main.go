package main

import (
	"flag"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"

	"github.com/GoncaloRod/PacmanWars/internal/config"
	"github.com/GoncaloRod/PacmanWars/internal/game"
	tm "github.com/GoncaloRod/PacmanWars/internal/tilemap"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $PACMAN_CONFIG)")
	boardPath := flag.String("board", "", "board layout file, overrides assets.board")
	tilesPath := flag.String("tiles", "", "autotile table file, overrides assets.tiles")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *boardPath != "" {
		cfg.Assets.Board = *boardPath
	}
	if *tilesPath != "" {
		cfg.Assets.Tiles = *tilesPath
	}
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.WithError(err).Warnf("unknown log level %q, keeping %s", cfg.LogLevel, log.GetLevel())
	}

	level, err := tm.LoadLayout(cfg.Assets.Board)
	if err != nil {
		log.Fatal(err)
	}
	table, err := tm.LoadTileTable(cfg.Assets.Tiles)
	if err != nil {
		log.Fatal(err)
	}
	log.WithFields(log.Fields{
		"board":    cfg.Assets.Board,
		"width":    level.Board.Width,
		"height":   level.Board.Height,
		"pacdots":  len(level.PacDots),
		"pellets":  len(level.PowerPellets),
		"enemies":  len(level.EnemySpawns),
		"autotile": table.Len(),
	}).Info("level loaded")

	var assets game.Assets
	if cfg.Assets.SpriteSheet != "" {
		img, _, err := ebitenutil.NewImageFromFile(cfg.Assets.SpriteSheet)
		if err != nil {
			log.Fatalf("sprite sheet: %v", err)
		}
		assets.Sheet = img
	}
	if cfg.Assets.Font != "" {
		face, err := game.LoadFont(cfg.Assets.Font, cfg.Assets.FontSize)
		if err != nil {
			log.WithError(err).Warn("falling back to the built-in font")
		} else {
			assets.Face = face
		}
	}

	g, err := game.New(cfg, level, table, assets)
	if err != nil {
		log.Fatal(err)
	}
	g.FitTo(ebiten.ScreenSizeInFullscreen())

	ebiten.SetWindowTitle("Pacman Wars")
	ebiten.SetWindowResizable(false)
	ebiten.SetWindowSize(g.ScreenWidth(), g.ScreenHeight())
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
