// Package config loads the bayaz TOML configuration from ~/.config/bayaz/config.toml.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures where bayaz finds its catalog, lyrics, and service.
// BAYAZ_* environment variables override the file.
type Config struct {
	CatalogPath string `env:"CATALOG"`
	LyricsDir   string `env:"LYRICS_DIR"`
	APIURL      string `env:"API_URL"`
	LogDir      string `env:"LOG_DIR"`
	Watch       bool   `env:"WATCH"`
}

const envPrefix = "BAYAZ_"

const (
	defaultConfigPath  = "~/.config/bayaz/config.toml"
	defaultCatalogPath = "~/.local/share/bayaz/catalog.json"
	defaultLyricsDir   = "~/.local/share/bayaz/lyrics"
	defaultLogDir      = "~/.local/state/bayaz"
	logFileName        = "bayaz.log"
)

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog   string `toml:"catalog"`
		LyricsDir string `toml:"lyrics_dir"`
		APIURL    string `toml:"api_url"`
		LogDir    string `toml:"log_dir"`
		Watch     *bool  `toml:"watch"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Catalog); v != "" {
		cfg.CatalogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LyricsDir); v != "" {
		cfg.LyricsDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	cfg.APIURL = strings.TrimSpace(raw.APIURL)
	if raw.Watch != nil {
		cfg.Watch = *raw.Watch
	}

	return applyEnv(cfg)
}

// applyEnv layers BAYAZ_* variables over cfg. Unset variables keep the
// current value.
func applyEnv(cfg Config) (Config, error) {
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	cfg.CatalogPath = mustExpand(cfg.CatalogPath)
	cfg.LyricsDir = mustExpand(cfg.LyricsDir)
	cfg.LogDir = mustExpand(cfg.LogDir)
	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	return cfg, nil
}

// Remote reports whether the catalog comes from the catalog service.
func (c Config) Remote() bool {
	return c.APIURL != ""
}

// LogPath returns the path to the bayaz log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/" + logFileName)
	}
	return filepath.Join(c.LogDir, logFileName)
}

func defaults() Config {
	return Config{
		CatalogPath: mustExpand(defaultCatalogPath),
		LyricsDir:   mustExpand(defaultLyricsDir),
		LogDir:      mustExpand(defaultLogDir),
		Watch:       true,
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
