package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	envConfigFile = "PACMAN_CONFIG"
	envConfigDir  = "PACMAN_CONFIG_DIR"
	envLogLevel   = "PACMAN_LOG_LEVEL"

	configDirName  = "pacmanwars"
	highScoreTxtFN = "highscore.txt"
)

// Config is the root of the YAML configuration. Every field has a default,
// so a file only needs the keys it changes.
type Config struct {
	TileSize      int             `yaml:"tile_size"`
	TPS           int             `yaml:"tps"`
	WindowScale   float64         `yaml:"window_scale"`
	LogLevel      string          `yaml:"log_level"`
	HighScoreFile string          `yaml:"highscore_file"`
	Assets        AssetsConfig    `yaml:"assets"`
	Player        PlayerConfig    `yaml:"player"`
	Controls      []ControlConfig `yaml:"controls"`
	Enemy         EnemyConfig     `yaml:"enemy"`
	Scoring       ScoringConfig   `yaml:"scoring"`
	Fruit         FruitConfig     `yaml:"fruit"`
}

type AssetsConfig struct {
	Board string `yaml:"board"`
	Tiles string `yaml:"tiles"`
	// SpriteSheet and Font are optional; without them the game draws shapes
	// and uses the built-in bitmap font.
	SpriteSheet string  `yaml:"sprite_sheet"`
	Font        string  `yaml:"font"`
	FontSize    float64 `yaml:"font_size"`
}

type PlayerConfig struct {
	Lives int `yaml:"lives"`
	// Speed is in tiles per second.
	Speed                  float64 `yaml:"speed"`
	RespawnInvulnerability float64 `yaml:"respawn_invulnerability_seconds"`
}

// ControlConfig names ebiten keys, e.g. "W" or "ArrowUp".
type ControlConfig struct {
	Up    string `yaml:"up"`
	Down  string `yaml:"down"`
	Right string `yaml:"right"`
	Left  string `yaml:"left"`
}

type EnemyConfig struct {
	Speed             float64   `yaml:"speed"`
	FrightSpeedFactor float64   `yaml:"fright_speed_factor"`
	FrightSeconds     float64   `yaml:"fright_seconds"`
	RespawnCooldown   float64   `yaml:"respawn_cooldown_seconds"`
	SpawnStagger      float64   `yaml:"spawn_stagger_seconds"`
	ExitTiles         int       `yaml:"exit_tiles"`
	TypeSpeed         []float64 `yaml:"type_speed"`
}

type ScoringConfig struct {
	PacDot      int   `yaml:"pac_dot"`
	PowerPellet int   `yaml:"power_pellet"`
	EnemyBase   int   `yaml:"enemy_base"`
	EnemyMax    int   `yaml:"enemy_max"`
	Fruit       []int `yaml:"fruit"`
}

type FruitConfig struct {
	DotThresholds []int   `yaml:"dot_thresholds"`
	Seconds       float64 `yaml:"seconds"`
}

func Default() *Config {
	return &Config{
		TileSize: 32,
		TPS:      60,
		LogLevel: "info",
		Assets: AssetsConfig{
			Board:    "assets/board.txt",
			Tiles:    "assets/tiles.txt",
			FontSize: 16,
		},
		Player: PlayerConfig{
			Lives:                  3,
			Speed:                  4.5,
			RespawnInvulnerability: 2,
		},
		Controls: []ControlConfig{
			{Up: "W", Down: "S", Right: "D", Left: "A"},
			{Up: "ArrowUp", Down: "ArrowDown", Right: "ArrowRight", Left: "ArrowLeft"},
		},
		Enemy: EnemyConfig{
			Speed:             3.75,
			FrightSpeedFactor: 0.5,
			FrightSeconds:     5,
			RespawnCooldown:   3,
			SpawnStagger:      2,
			ExitTiles:         2,
			TypeSpeed:         []float64{1.0, 0.95, 1.05, 0.9},
		},
		Scoring: ScoringConfig{
			PacDot:      10,
			PowerPellet: 50,
			EnemyBase:   200,
			EnemyMax:    1600,
			Fruit:       []int{100, 300, 500, 700, 1000},
		},
		Fruit: FruitConfig{
			DotThresholds: []int{70, 170},
			Seconds:       10,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path falls back to
// $PACMAN_CONFIG; with neither set the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = os.Getenv(envConfigFile)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if lvl := os.Getenv(envLogLevel); lvl != "" {
		cfg.LogLevel = lvl
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("tile_size", float64(c.TileSize))
	positive("tps", float64(c.TPS))
	positive("player.lives", float64(c.Player.Lives))
	positive("player.speed", c.Player.Speed)
	positive("enemy.speed", c.Enemy.Speed)
	positive("enemy.fright_speed_factor", c.Enemy.FrightSpeedFactor)
	positive("enemy.fright_seconds", c.Enemy.FrightSeconds)
	positive("fruit.seconds", c.Fruit.Seconds)
	if c.WindowScale < 0 {
		errs = append(errs, fmt.Errorf("window_scale must not be negative, got %v", c.WindowScale))
	}
	if c.Enemy.ExitTiles < 0 {
		errs = append(errs, fmt.Errorf("enemy.exit_tiles must not be negative, got %d", c.Enemy.ExitTiles))
	}
	for i, f := range c.Enemy.TypeSpeed {
		positive(fmt.Sprintf("enemy.type_speed[%d]", i), f)
	}
	if len(c.Controls) != 2 {
		errs = append(errs, fmt.Errorf("controls must list 2 players, got %d", len(c.Controls)))
	}
	for i, ctl := range c.Controls {
		if ctl.Up == "" || ctl.Down == "" || ctl.Right == "" || ctl.Left == "" {
			errs = append(errs, fmt.Errorf("controls[%d] must bind up, down, right and left", i))
		}
	}
	if len(c.Scoring.Fruit) == 0 {
		errs = append(errs, errors.New("scoring.fruit must list at least one value"))
	}
	if c.Scoring.EnemyMax < c.Scoring.EnemyBase {
		errs = append(errs, fmt.Errorf("scoring.enemy_max (%d) is below scoring.enemy_base (%d)", c.Scoring.EnemyMax, c.Scoring.EnemyBase))
	}
	if c.Assets.Board == "" || c.Assets.Tiles == "" {
		errs = append(errs, errors.New("assets.board and assets.tiles are required"))
	}
	return errors.Join(errs...)
}

// TypeSpeedFactor returns the speed multiplier of an enemy type, cycling
// through the configured list.
func (e EnemyConfig) TypeSpeedFactor(typ int) float64 {
	if len(e.TypeSpeed) == 0 {
		return 1
	}
	return e.TypeSpeed[typ%len(e.TypeSpeed)]
}

// FruitValue returns the score of a fruit type; types past the end of the
// list are worth the last value.
func (s ScoringConfig) FruitValue(typ int) int {
	if len(s.Fruit) == 0 {
		return 0
	}
	if typ >= len(s.Fruit) {
		typ = len(s.Fruit) - 1
	}
	return s.Fruit[typ]
}

// BaseDir is where per-user state lives. If PACMAN_CONFIG_DIR is set it is
// used as-is, otherwise UserConfigDir()/pacmanwars.
func BaseDir() (string, error) {
	if env := os.Getenv(envConfigDir); env != "" {
		if err := os.MkdirAll(env, 0o755); err != nil {
			return "", err
		}
		return env, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, configDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// HighScorePath resolves the high-score file: the configured path when set,
// otherwise highscore.txt in BaseDir.
func (c *Config) HighScorePath() (string, error) {
	if c.HighScoreFile != "" {
		return c.HighScoreFile, nil
	}
	dir, err := BaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, highScoreTxtFN), nil
}
