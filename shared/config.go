package shared

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const APP_NAME = "melody"

type Config struct {
	OutputPort string `yaml:"output_port"`
	Channel    int    `yaml:"channel"`
	Program    int    `yaml:"program"`
	Velocity   int    `yaml:"velocity"`
	Window     struct {
		Width  int    `yaml:"width"`
		Height int    `yaml:"height"`
		Icon   string `yaml:"icon"`
	} `yaml:"window"`
	LogLevel string `yaml:"log_level"`
}

func DefaultConfig() Config {
	c := Config{
		Velocity: 100,
		LogLevel: "info",
	}
	c.Window.Width = 1240
	c.Window.Height = 250
	c.Window.Icon = "icon.jpg"
	return c
}

func ConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, APP_NAME, "config.yaml"), nil
}

// LoadConfig reads the config file at path. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, err
	}
	defer file.Close()
	return ReadConfig(file)
}

func ReadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	data, err := io.ReadAll(r)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	config.Validate()
	return config, nil
}

// Validate clamps values into the MIDI and window domains.
func (c *Config) Validate() {
	defaults := DefaultConfig()
	c.Channel = clamp(c.Channel, 0, 15)
	c.Program = clamp(c.Program, 0, 127)
	if c.Velocity == 0 {
		c.Velocity = defaults.Velocity
	}
	c.Velocity = clamp(c.Velocity, 1, 127)
	if c.Window.Width <= 0 {
		c.Window.Width = defaults.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = defaults.Window.Height
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
