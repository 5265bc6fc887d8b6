package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

type Config struct {
	Render    RenderConfig    `toml:"render"`
	Clipboard ClipboardConfig `toml:"clipboard"`
	Profiles  ProfilesConfig  `toml:"profiles"`
	Tracking  TrackingConfig  `toml:"tracking"`
	Shots     ShotsConfig     `toml:"shots"`
	Display   DisplayConfig   `toml:"display"`
}

type RenderConfig struct {
	Style    string `toml:"style"`
	Font     string `toml:"font"`
	DPI      int    `toml:"dpi"`
	Width    int    `toml:"width"`
	MaxLines int    `toml:"max_lines"`
	SplitAt  string `toml:"split_at"`
}

type ClipboardConfig struct {
	Tool string `toml:"tool"` // "auto", "native", "xclip", "wl-copy"
}

type ProfilesConfig struct {
	Dir string `toml:"dir"`
}

type TrackingConfig struct {
	DBPath string `toml:"db_path"`
}

type ShotsConfig struct {
	Dir      string `toml:"dir"`
	MaxFiles int    `toml:"max_files"`
}

type DisplayConfig struct {
	Color bool `toml:"color"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Render: RenderConfig{
			Style:    "dracula",
			Font:     "mono",
			DPI:      70,
			Width:    800,
			MaxLines: 1000,
			SplitAt:  "\n\n",
		},
		Clipboard: ClipboardConfig{
			Tool: "auto",
		},
		Profiles: ProfilesConfig{
			Dir: filepath.Join(home, ".config", "csnap", "profiles"),
		},
		Tracking: TrackingConfig{
			DBPath: filepath.Join(home, ".local", "share", "csnap", "history.db"),
		},
		Shots: ShotsConfig{
			Dir:      filepath.Join(home, "shots"),
			MaxFiles: 100,
		},
		Display: DisplayConfig{
			Color: true,
		},
	}
}

// Load reads config from file, merging with defaults. Returns defaults if file missing.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path := configPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Path returns the config file location without reading it.
func Path() string {
	return configPath()
}

func configPath() string {
	if p := os.Getenv("CSNAP_CONFIG"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "csnap", "config.toml")
}
