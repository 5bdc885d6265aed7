// clickfruit is a "click the fruit" minigame.
//
// Usage:
//
//	clickfruit [flags]
//
// Flags:
//
//	--config <path>     - Path to a YAML config (default: search ~/.clickfruit, ./configs)
//	--asset <path>      - Target sprite (default: assets/target.png)
//	--seed <value>      - RNG seed for reproducible spawns (0 = time based)
//	--targets <n>       - Targets kept on screen
//	--sound             - Play a click on every hit (needs an audio device)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"clickfruit/internal/config"
	"clickfruit/internal/gamemode"
)

var (
	flagConfig   string
	flagAsset    string
	flagSeed     int64
	flagTargets  int
	flagSound    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clickfruit",
	Short: "Click the fruit before it moves",
	Long: `clickfruit opens an 800x600 window with a target on it.
Click the target to score a point; a new one spawns somewhere else.
Close the window to quit.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.Flags().StringVar(&flagAsset, "asset", "", "Path to the target sprite")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagTargets, "targets", 0, "Number of targets on screen")
	rootCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a click sound on every hit")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "clickfruit",
	})
	// Honor --log-level while the config file is being searched.
	if cmd.Flags().Changed("log-level") {
		if lvl, err := log.ParseLevel(flagLogLevel); err == nil {
			logger.SetLevel(lvl)
		}
	}

	cfg, err := config.Load(flagConfig, logger)
	if err != nil {
		logger.Error("could not load config", "error", err)
		return err
	}
	cfg.Apply(flagOverrides(cmd))
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(lvl)
	}

	setup, err := gamemode.Prepare(cfg, logger)
	if err != nil {
		logger.Error("could not start game", "asset", cfg.AssetPath, "error", err)
		return err
	}

	game, err := NewGame(setup, logger)
	if err != nil {
		logger.Error("could not start game", "error", err)
		return err
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("game started", "targets", cfg.Target.Count, "tps", cfg.TPS, "seed", setup.Seed)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("game loop failed", "error", err)
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// flagOverrides collects the flags that were set explicitly; they win over the config file.
func flagOverrides(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()
	if flags.Changed("asset") {
		o.AssetPath = &flagAsset
	}
	if flags.Changed("seed") {
		o.Seed = &flagSeed
	}
	if flags.Changed("targets") {
		o.Targets = &flagTargets
	}
	if flags.Changed("sound") {
		o.Sound = &flagSound
	}
	if flags.Changed("log-level") {
		o.LogLevel = &flagLogLevel
	}
	return o
}
