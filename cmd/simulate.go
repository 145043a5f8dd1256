package cmd

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/amitn/violino/internal/trainer"
	"github.com/amitn/violino/internal/ui/theme"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a synthetic practice session through the engine",
	Long: `Simulate drives the full answer pipeline with generated outcomes:
stats, XP, difficulty adaptation, and spaced-repetition scheduling all
update exactly as they would in a real session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetString("module")
		count, _ := cmd.Flags().GetInt("count")
		accuracy, _ := cmd.Flags().GetFloat64("accuracy")
		seed, _ := cmd.Flags().GetInt64("seed")

		if count <= 0 {
			return fmt.Errorf("count must be positive, got %d", count)
		}
		if accuracy < 0 || accuracy > 1 {
			return fmt.Errorf("accuracy must be in [0, 1], got %g", accuracy)
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		logger := newLogger()
		defer logger.Sync()

		ctx := cmd.Context()
		engine := newEngine(ctx, st, logger)
		rng := rand.New(rand.NewSource(seed))

		var correct int
		for i := 0; i < count; i++ {
			correctAnswer := rng.Float64() < accuracy
			if correctAnswer {
				correct++
			}
			// Correct answers skew fast, misses skew slow.
			responseMs := 1500 + rng.Intn(2000)
			if !correctAnswer {
				responseMs += 3000
			}

			res, err := engine.SubmitAnswer(ctx, trainer.Answer{
				Module:         module,
				ContentID:      fmt.Sprintf("drill-%03d", rng.Intn(40)),
				Correct:        correctAnswer,
				ResponseTimeMs: responseMs,
			})
			if err != nil {
				return fmt.Errorf("submit answer %d: %w", i+1, err)
			}

			mark := theme.Good.Render("+")
			if !correctAnswer {
				mark = theme.Bad.Render("x")
			}
			fmt.Printf("%s %s %4dms  %s  streak %d\n",
				mark, module, responseMs,
				theme.Dim.Render(fmt.Sprintf("+%d XP", res.XPAwarded)),
				res.Stats.Streak)
		}

		stats := engine.ModuleStats(ctx, module)
		fmt.Println()
		fmt.Println(theme.Title.Render("Session summary"))
		fmt.Printf("Answered %d (%d correct), session XP %s, level %s\n",
			count, correct,
			theme.Highlight.Render(fmt.Sprintf("%d", engine.SessionXP())),
			theme.Highlight.Render(engine.NextLevel(ctx, module).DisplayName()))
		fmt.Printf("Lifetime: %d/%d correct, combo x%.1f\n",
			stats.Correct, stats.Total, stats.ComboMultiplier)
		if due := engine.DueItems(module, 5); len(due) > 0 {
			fmt.Printf("%d items due for review\n", len(due))
		}
		return nil
	},
}

func init() {
	simulateCmd.Flags().String("module", "keys", "Practice module to simulate")
	simulateCmd.Flags().Int("count", 20, "Number of answers to generate")
	simulateCmd.Flags().Float64("accuracy", 0.8, "Probability each generated answer is correct")
	simulateCmd.Flags().Int64("seed", 0, "Random seed for reproducible runs")
}
