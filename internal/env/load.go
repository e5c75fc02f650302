package env

import (
	"errors"
	"fmt"
	"io/fs"

	cenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Load reads the given file (e.g. ".env") into the process environment.
// Variables already set are not overridden. A missing file is not an error.
func Load(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Config is the process configuration read from ODD_* environment variables.
type Config struct {
	PrefsPath    string `env:"ODD_PREFS_PATH" envDefault:"config/game.json"`
	CatalogPath  string `env:"ODD_CATALOG_PATH"`
	LogPath      string `env:"ODD_LOG_PATH" envDefault:"logs/game.txt"`
	Seed         int64  `env:"ODD_SEED"`
	FPS          int32  `env:"ODD_FPS" envDefault:"60"`
	WindowWidth  int32  `env:"ODD_WINDOW_WIDTH" envDefault:"1280"`
	WindowHeight int32  `env:"ODD_WINDOW_HEIGHT" envDefault:"720"`
	Fullscreen   bool   `env:"ODD_FULLSCREEN" envDefault:"false"`
	// Font is a font file path or a family name searched under assets/fonts.
	Font         string `env:"ODD_FONT"`
}

// Parse reads Config from the environment. A zero Seed means seed from the clock.
func Parse() (Config, error) {
	var cfg Config
	if err := cenv.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("parse env: ODD_FPS must be positive, got %d", cfg.FPS)
	}
	if cfg.WindowWidth <= 0 || cfg.WindowHeight <= 0 {
		return Config{}, fmt.Errorf("parse env: window size must be positive, got %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	return cfg, nil
}
