package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the working and config directories.
const FileName = "robotdemo.yaml"

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over discovery
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./" + FileName,
		filepath.Join(ConfigDir(), FileName),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "RobotDemo")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RobotDemo")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "robot-demo")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "robot-demo")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate rejects values the demo cannot start with. Out-of-range scene
// numbers are not an error; the scene selector clamps them. Enum values are
// lower-cased in place.
func (c *Config) Validate() error {
	c.Window.Backend = strings.ToLower(c.Window.Backend)
	c.Camera.Mode = strings.ToLower(c.Camera.Mode)
	c.Screenshot.Format = strings.ToLower(c.Screenshot.Format)

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Window.Backend {
	case "sdl", "glfw":
	default:
		return fmt.Errorf("unknown window backend %q", c.Window.Backend)
	}

	switch c.Camera.Mode {
	case "free", "orbit":
	default:
		return fmt.Errorf("unknown camera mode %q", c.Camera.Mode)
	}

	switch c.Screenshot.Format {
	case "png", "webp", "bmp", "tga":
	default:
		return fmt.Errorf("unknown screenshot format %q", c.Screenshot.Format)
	}

	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		return fmt.Errorf("camera fov %g out of range (0, 180)", c.Camera.FOV)
	}
	return nil
}
