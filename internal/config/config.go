package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const appDir = "streamflix"

type Config struct {
	API     API     `toml:"api"`
	Images  Images  `toml:"images"`
	Player  Player  `toml:"player"`
	Logging Logging `toml:"logging"`
}

// API points at the catalog service.
type API struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout is the per-request deadline.
func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

type Images struct {
	BaseURL string `toml:"base_url"`
}

type Player struct {
	Command string `toml:"command"`
}

type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	Path   string `toml:"path"`   // directory for streamflix.log
}

func Default() *Config {
	return &Config{
		API: API{
			BaseURL:        "http://localhost:3000/api",
			TimeoutSeconds: 10,
		},
		Images: Images{
			BaseURL: "https://image.tmdb.org/t/p",
		},
		Player: Player{
			Command: "mpv",
		},
		Logging: Logging{
			Level:  "info",
			Format: "json",
		},
	}
}

func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(configDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cacheDir, appDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DefaultPath is config.toml inside ConfigDir.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path (or DefaultPath when empty). A missing file is not an error.
// Priority: environment > file > defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)
	cfg.normalize()
	return cfg, nil
}

// Save writes cfg to path as TOML, or to DefaultPath when path is empty.
func Save(cfg *Config, path string) error {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STREAMFLIX_API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("STREAMFLIX_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

func (c *Config) normalize() {
	def := Default()
	c.API.BaseURL = strings.TrimRight(strings.TrimSpace(c.API.BaseURL), "/")
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	c.Images.BaseURL = strings.TrimRight(strings.TrimSpace(c.Images.BaseURL), "/")
	if c.Images.BaseURL == "" {
		c.Images.BaseURL = def.Images.BaseURL
	}
	if strings.TrimSpace(c.Player.Command) == "" {
		c.Player.Command = def.Player.Command
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = def.Logging.Level
	}
	if c.Logging.Format != "console" {
		c.Logging.Format = "json"
	}
}
