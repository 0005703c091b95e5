package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"orderpad/internal/datewindow"
	"orderpad/internal/export"
	"orderpad/internal/sheetsync"
	"orderpad/internal/store"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the local table to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		table, ok, err := store.Load(cfg.SlotPath)
		if err != nil {
			return fmt.Errorf("read slot: %w", err)
		}
		if !ok || table.Empty() {
			return fmt.Errorf("nothing to export: the local slot is empty")
		}

		windowKeys := datewindow.Keys(time.Now(), 0)
		env := sheetsync.ExportAll(table, windowKeys[:])
		if err := export.WriteWorkbook(exportOut, env); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "orders.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
