package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Load reads the game configuration.
// Search order: customPath -> ~/.clickfruit/config.yaml -> ./configs/clickfruit.yaml -> embedded default.
// Files only override the keys they set; everything else keeps its default.
// A discovered file that fails to parse is skipped with a warning.
func Load(customPath string, logger *log.Logger) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		logger.Debug("config loaded", "path", customPath)
		return cfg, nil
	}

	candidates := []string{
		userConfigPath("config.yaml"),
		filepath.Join("configs", "clickfruit.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := Parse(data)
		if err != nil {
			logger.Warn("ignoring malformed config", "path", path, "error", err)
			continue
		}
		logger.Debug("config loaded", "path", path)
		return cfg, nil
	}

	logger.Debug("using built-in config")
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".clickfruit", filename)
}
