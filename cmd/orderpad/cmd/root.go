package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"orderpad/internal/app"
	"orderpad/internal/config"
)

var (
	configPath string
	offline    bool
)

var rootCmd = &cobra.Command{
	Use:   "orderpad",
	Short: "Terminal order grid synced to a remote spreadsheet",
	Long: `orderpad is a small order-entry tool: a terminal grid for per-size,
per-day order quantities, persisted locally and synced to a remote
spreadsheet through the relay proxy.

Running orderpad without a subcommand opens the grid.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()
		return app.Run(ctx, app.Options{ConfigPath: configPath, Offline: offline})
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "orderpad: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "skip the startup import from the remote sheet")
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
