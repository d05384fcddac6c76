package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPaddle loads the tuning for one paddle-ball variant.
// Search order: customPath -> ~/.arcade/configs/paddle.yaml -> ./configs/paddle.yaml -> embedded default.
// A custom path that cannot be read or lacks the variant is an error; the
// other locations are skipped silently.
func LoadPaddle(variant, customPath string) (PaddleConfig, error) {
	if customPath != "" {
		var file PaddleFile
		if err := readYAML(customPath, &file); err != nil {
			return PaddleConfig{}, err
		}
		cfg, ok := file.Presets[variant]
		if !ok {
			return PaddleConfig{}, fmt.Errorf("config %s: no preset %q", customPath, variant)
		}
		if err := cfg.Validate(); err != nil {
			return PaddleConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("paddle.yaml") {
		var file PaddleFile
		if err := readYAML(path, &file); err != nil {
			continue
		}
		if cfg, ok := file.Presets[variant]; ok && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	var file PaddleFile
	if err := yaml.Unmarshal(defaultPaddleYAML, &file); err == nil {
		if cfg, ok := file.Presets[variant]; ok && cfg.Validate() == nil {
			return cfg, nil
		}
	}
	return DefaultPaddleConfig(variant), nil // Fallback to hardcoded if embed fails
}

// LoadHelix loads the helix tower configuration.
// Search order: customPath -> ~/.arcade/configs/helix.yaml -> ./configs/helix.yaml -> embedded default.
func LoadHelix(customPath string) (HelixConfig, error) {
	if customPath != "" {
		var cfg HelixConfig
		if err := readYAML(customPath, &cfg); err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths("helix.yaml") {
		var cfg HelixConfig
		if err := readYAML(path, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	var cfg HelixConfig
	if err := yaml.Unmarshal(defaultHelixYAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultHelixConfig(), nil
	}
	return cfg, nil
}

func readYAML(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// searchPaths lists the user and local locations of a config file.
func searchPaths(filename string) []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate rejects tunings the engine cannot run.
func (c PaddleConfig) Validate() error {
	var errs []error
	if c.Viewport.UnitsPerCol <= 0 || c.Viewport.UnitsPerRow <= 0 {
		errs = append(errs, errors.New("viewport units must be positive"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball.radius must be positive"))
	}
	if c.Ball.MaxComponent <= 0 {
		errs = append(errs, errors.New("ball.max_component must be positive"))
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		errs = append(errs, errors.New("paddle size must be positive"))
	}
	if c.Bricks != nil && (c.Bricks.Rows <= 0 || c.Bricks.Cols <= 0) {
		errs = append(errs, errors.New("bricks.rows and bricks.cols must be positive"))
	}
	if c.Targets != nil && (c.Targets.Count <= 0 || c.Targets.Size <= 0) {
		errs = append(errs, errors.New("targets.count and targets.size must be positive"))
	}
	return errors.Join(errs...)
}

// Validate rejects helix tunings the game cannot run.
func (c HelixConfig) Validate() error {
	var errs []error
	if c.Tower.PlatformCount <= 0 || c.Tower.LevelHeight <= 0 || c.Tower.PlatformHeight <= 0 {
		errs = append(errs, errors.New("tower dimensions must be positive"))
	}
	if c.Ball.Radius <= 0 {
		errs = append(errs, errors.New("ball.radius must be positive"))
	}
	if c.Physics.Gravity >= 0 {
		errs = append(errs, errors.New("physics.gravity must be negative"))
	}
	if c.Physics.BounceSpeed <= 0 {
		errs = append(errs, errors.New("physics.bounce_speed must be positive"))
	}
	return errors.Join(errs...)
}
