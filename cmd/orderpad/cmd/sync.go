package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"orderpad/internal/datewindow"
	"orderpad/internal/order"
	"orderpad/internal/sheetsync"
	"orderpad/internal/store"
)

var pushWindowOnly bool

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the remote sheet and replace the local slot",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := sheetsync.NewClient(cfg.RemoteURL, cfg.Timeout())
		if err != nil {
			return err
		}

		ctx, cancel := signalContext()
		defer cancel()

		table, err := client.Import(ctx)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		if err := store.Save(cfg.SlotPath, table); err != nil {
			return fmt.Errorf("write slot: %w", err)
		}

		printTable(cmd, table)
		return nil
	},
}

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Send the local table to the remote sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client, err := sheetsync.NewClient(cfg.RemoteURL, cfg.Timeout())
		if err != nil {
			return err
		}

		table, ok, err := store.Load(cfg.SlotPath)
		if err != nil {
			return fmt.Errorf("read slot: %w", err)
		}
		if !ok || table.Empty() {
			return fmt.Errorf("nothing to push: the local slot is empty")
		}

		windowKeys := datewindow.Keys(time.Now(), 0)
		env := sheetsync.ExportAll(table, windowKeys[:])
		if pushWindowOnly {
			env = sheetsync.ExportWindow(table, windowKeys[:])
		}

		ctx, cancel := signalContext()
		defer cancel()

		if err := client.Push(ctx, env); err != nil {
			return fmt.Errorf("push: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "pushed %d rows x %d days\n", len(env.Rows), len(env.Header)-1)
		return nil
	},
}

func init() {
	pushCmd.Flags().BoolVar(&pushWindowOnly, "window", false, "push only the current five-day window")
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(pushCmd)
}

func printTable(cmd *cobra.Command, table order.Table) {
	keys := table.AllDateKeys()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%-20s", order.HeaderSentinel)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s", key)
	}
	fmt.Fprintln(out)

	for _, item := range table.Items() {
		fmt.Fprintf(out, "%-20s", order.JoinItem(item.Category, item.Size))
		for _, key := range keys {
			fmt.Fprintf(out, "  %10d", table.Get(item.Category, item.Size, key))
		}
		fmt.Fprintln(out)
	}
}
