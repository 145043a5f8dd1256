package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amitn/violino/internal/difficulty"
	"github.com/amitn/violino/internal/export"
	"github.com/amitn/violino/internal/store"
	"github.com/amitn/violino/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show practice statistics per module",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		history, err := st.History(ctx, 0)
		if err != nil {
			return fmt.Errorf("load history: %w", err)
		}
		summaries := export.Summarize(history)
		if len(summaries) == 0 {
			fmt.Println(theme.Dim.Render("No practice recorded yet."))
			return nil
		}

		fmt.Println(theme.Title.Render("Practice progress"))
		fmt.Printf("%s\n", theme.TableHeader.Render(fmt.Sprintf(
			"%-14s %8s %10s %6s %8s %-12s %s",
			"MODULE", "ANSWERS", "ACCURACY", "GRADE", "XP", "LEVEL", "LAST PRACTICED")))

		for _, s := range summaries {
			level := moduleLevel(cmd, st, s.Module)
			last := "never"
			if !s.LastPracticed.IsZero() {
				last = s.LastPracticed.Local().Format(time.DateTime)
			}
			grade := theme.GradeStyle(string(s.Grade)).Render(fmt.Sprintf("%6s", s.Grade))
			fmt.Printf("%s %s %s %s %s %s %s\n",
				theme.TableCell.Render(fmt.Sprintf("%-14s", s.Module)),
				theme.TableCell.Render(fmt.Sprintf("%8d", s.Total)),
				theme.TableCell.Render(fmt.Sprintf("%9d%%", s.AccuracyPct)),
				grade,
				theme.TableCell.Render(fmt.Sprintf("%8d", s.XPEarned)),
				theme.TableCell.Render(fmt.Sprintf("%-12s", level)),
				theme.Dim.Render(last))
		}
		return nil
	},
}

// moduleLevel reads the persisted difficulty state for a module. Missing
// or unreadable state shows as the bottom level.
func moduleLevel(cmd *cobra.Command, st *store.Store, module string) string {
	data, err := st.LoadBlob(cmd.Context(), "difficulty:"+module)
	if err != nil || data == nil {
		return difficulty.LevelBeginner.DisplayName()
	}
	var state difficulty.State
	if err := json.Unmarshal(data, &state); err != nil {
		return difficulty.LevelBeginner.DisplayName()
	}
	return state.Current.DisplayName()
}
