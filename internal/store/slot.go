// Package store persists the order table to a single local slot file,
// JSON-serialized and rewritten in full after every mutation.
// The slot lives in ~/.local/share/orderpad/orders.json by default.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"orderpad/internal/order"
)

const defaultSlotPath = "~/.local/share/orderpad/orders.json"

// DefaultPath returns the default slot file path.
func DefaultPath() string {
	return defaultSlotPath
}

// Load reads the slot file. A missing file is not an error: it reports
// ok=false with an empty table. Read or parse failures are returned so the
// caller can log them, but the caller is expected to degrade to seed data;
// the in-memory table stays authoritative for the session.
func Load(path string) (order.Table, bool, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return order.New(), false, fmt.Errorf("resolve slot path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return order.New(), false, nil
		}
		return order.New(), false, fmt.Errorf("read slot: %w", err)
	}

	var t order.Table
	if err := json.Unmarshal(data, &t); err != nil {
		return order.New(), false, fmt.Errorf("parse slot: %w", err)
	}
	return t, true, nil
}

// Save overwrites the slot file with the JSON-serialized table, creating
// directories as needed.
func Save(path string, t order.Table) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve slot path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create slot dir: %w", err)
	}

	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal table: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultSlotPath)
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
