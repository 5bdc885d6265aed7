package gamemode

import (
	"image"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"clickfruit/internal/assets"
	"clickfruit/internal/config"
)

// Setup is everything the loop needs, built before a window exists.
type Setup struct {
	Config config.Config
	Sprite image.Image
	Mode   *ClickMode
	Seed   int64
}

// Prepare validates cfg, loads the sprite once and spawns the first targets.
// Any error here is fatal: the game never reaches StateRunning.
func Prepare(cfg config.Config, logger *log.Logger) (*Setup, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	img, err := assets.DecodeImage(cfg.AssetPath)
	if err != nil {
		return nil, err
	}
	logger.Info("sprite loaded", "path", cfg.AssetPath,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("rng seeded", "seed", seed)

	mode, err := New(Options{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Size:   cfg.Target.Size,
		Margin: cfg.Target.Margin,
		Count:  cfg.Target.Count,
	}, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	for _, t := range mode.Targets() {
		logger.Debug("target spawned", "id", t.ID, "x", t.X, "y", t.Y)
	}

	return &Setup{Config: cfg, Sprite: img, Mode: mode, Seed: seed}, nil
}
