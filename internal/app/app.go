package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"orderpad/internal/config"
	"orderpad/internal/order"
	"orderpad/internal/session"
	"orderpad/internal/sheetsync"
	"orderpad/internal/store"
	"orderpad/internal/ui"
)

// Options configure the orderpad application.
type Options struct {
	ConfigPath string // empty uses ~/.config/orderpad/config.toml
	Offline    bool   // skip the startup remote import
}

// Run boots the order grid until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	client, err := sheetsync.NewClient(cfg.RemoteURL, cfg.Timeout())
	if err != nil {
		return fmt.Errorf("init sync client: %w", err)
	}

	table := initialTable(ctx, cfg, client, opts.Offline)
	ctrl := session.New(time.Now(), table, cfg.SlotPath)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: ctrl,
		Client:     client,
		ExportPath: "orders.xlsx",
	}
	return ui.Run(uiOpts)
}

// initialTable resolves the startup table: local slot first, seed catalog
// when there is no usable local data, and the remote store winning outright
// when it yields at least one row. Load-path failures are logged and
// swallowed; whatever local state exists stays authoritative.
func initialTable(ctx context.Context, cfg config.Config, client *sheetsync.Client, offline bool) order.Table {
	table, ok, err := store.Load(cfg.SlotPath)
	if err != nil {
		log.Printf("local slot unreadable, starting fresh: %v", err)
	}
	if !ok || table.Empty() {
		table = order.NewSeeded(cfg.Seed)
	}

	if offline {
		return table
	}

	ictx, cancel := context.WithTimeout(ctx, cfg.Timeout())
	defer cancel()

	remote, err := client.Import(ictx)
	if err != nil {
		log.Printf("startup import skipped: %v", err)
		return table
	}
	// Keep the slot in step with the remote win, same as the reload path.
	if err := store.Save(cfg.SlotPath, remote); err != nil {
		log.Printf("persist startup import: %v", err)
	}
	return remote
}
