package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitn/violino/internal/export"
	"github.com/amitn/violino/internal/ui/theme"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export practice history to an xlsx workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		history, err := st.History(cmd.Context(), 0)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		if err := export.WriteWorkbook(out, history); err != nil {
			return err
		}

		fmt.Printf("Wrote %d answers to %s\n", len(history), theme.Highlight.Render(out))
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "violino-progress.xlsx", "Output file path")
}
