package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amitn/violino/internal/session"
	"github.com/amitn/violino/internal/ui/theme"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Preview the next practice session plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetString("module")
		slots, _ := cmd.Flags().GetInt("slots")

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		logger := newLogger()
		defer logger.Sync()

		ctx := cmd.Context()
		engine := newEngine(ctx, st, logger)
		plan := session.NewPlannerWithSlots(engine, slots).BuildPlan(ctx, module)

		fmt.Println(theme.Title.Render(fmt.Sprintf("Next session: %s", module)))
		fmt.Println(theme.Subtitle.Render(fmt.Sprintf(
			"%d drills, %d reviews, about %s", len(plan.Slots), plan.ReviewCount(), plan.Duration)))
		for i, slot := range plan.Slots {
			label := theme.Dim.Render("fresh at " + slot.Level.DisplayName())
			if slot.Kind == session.KindReview {
				label = theme.Highlight.Render("review " + slot.Item.Key.ContentID())
			}
			fmt.Printf("%2d. %s\n", i+1, label)
		}
		return nil
	},
}

func init() {
	planCmd.Flags().String("module", "keys", "Practice module to plan")
	planCmd.Flags().Int("slots", session.DefaultTotalSlots, "Number of drill slots")

	rootCmd.AddCommand(planCmd)
}
