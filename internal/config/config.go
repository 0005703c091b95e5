package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"orderpad/internal/order"
	"orderpad/internal/store"
)

// Config captures everything orderpad needs: where the remote sync endpoint
// lives, where the local slot file sits, relay settings, and the seed
// catalog for a first run.
type Config struct {
	RemoteURL      string
	SlotPath       string
	ListenAddr     string
	UpstreamURL    string
	TimeoutSeconds int
	Seed           []order.Seed
}

const (
	defaultConfigPath = "~/.config/orderpad/config.toml"
	defaultRemoteURL  = "http://127.0.0.1:8691"
	defaultListenAddr = "127.0.0.1:8691"
	defaultTimeoutSec = 10
)

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

func defaultSeed() []order.Seed {
	return []order.Seed{
		{Category: "tofu", Sizes: []string{`9"`, `11"`}},
		{Category: "spinach", Sizes: []string{`9"`, `11"`}},
		{Category: "leek", Sizes: []string{`9"`, `11"`}},
	}
}

// Load locates and parses the config file, falling back to defaults when
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		RemoteURL:      defaultRemoteURL,
		SlotPath:       store.DefaultPath(),
		ListenAddr:     defaultListenAddr,
		TimeoutSeconds: defaultTimeoutSec,
		Seed:           defaultSeed(),
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		RemoteURL      string `toml:"remote_url"`
		SlotPath       string `toml:"slot_path"`
		ListenAddr     string `toml:"listen_addr"`
		UpstreamURL    string `toml:"upstream_url"`
		TimeoutSeconds int    `toml:"timeout_seconds"`
		Seed           []struct {
			Category string   `toml:"category"`
			Sizes    []string `toml:"sizes"`
		} `toml:"seed"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.RemoteURL); v != "" {
		cfg.RemoteURL = v
	}
	if v := strings.TrimSpace(raw.SlotPath); v != "" {
		cfg.SlotPath = v
	}
	if v := strings.TrimSpace(raw.ListenAddr); v != "" {
		cfg.ListenAddr = v
	}
	cfg.UpstreamURL = strings.TrimSpace(raw.UpstreamURL)
	if raw.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = raw.TimeoutSeconds
	}
	if len(raw.Seed) > 0 {
		cfg.Seed = nil
		for _, s := range raw.Seed {
			cfg.Seed = append(cfg.Seed, order.Seed{Category: s.Category, Sizes: s.Sizes})
		}
	}

	return cfg, nil
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSec * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
