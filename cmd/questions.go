package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/filtering"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the questions shown on a tier's path",
	Run: func(cmd *cobra.Command, _ []string) {
		listQuestions(cmd)
	},
}

func init() {
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().StringP("tier", "t", "", "tier to list: entry, experienced or executive (default from config)")
	questionsCmd.Flags().StringP("output", "o", "", "output format: text or json")
	questionsCmd.Flags().Bool("canonical", false, "show canonical wording, skipping tier overrides")
}

func listQuestions(cmd *cobra.Command) {
	ctx := context.Background()
	logger, config := setup()

	tier, err := resolveTier(cmd.Flag("tier").Value.String(), config)
	if err != nil {
		logger.Fatal("resolving tier", zap.Error(err))
	}
	output, err := resolveOutput(cmd.Flag("output").Value.String(), config)
	if err != nil {
		logger.Fatal("resolving output", zap.Error(err))
	}

	b := loadBank(logger)

	steps := filtering.DefaultSteps()
	if canonical, _ := cmd.Flags().GetBool("canonical"); canonical {
		filtering.DisableByName(steps, "overrides", "--canonical flag")
	}

	questions, err := filtering.Run(ctx, &filtering.Config{Tier: tier}, filtering.Deps{Bank: b, Logger: logger}, steps, b.Questions())
	if err != nil {
		logger.Fatal("selecting questions", zap.Error(err))
	}

	for _, st := range filtering.Describe(steps) {
		logger.Debug("filter status", zap.String("filter", st.Name), zap.Bool("enabled", st.Enabled), zap.String("reason", st.Reason))
	}
	logger.Info("questions selected", zap.String("tier", string(tier)), zap.Int("count", len(questions)))

	if output == outputJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(questions); err != nil {
			logger.Fatal("encoding questions", zap.Error(err))
		}
		return
	}

	for i, q := range questions {
		printQuestion(i+1, len(questions), q)
	}
}

func printQuestion(n, total int, q bank.Question) {
	fmt.Printf("%d/%d  #%d [%s] %s\n", n, total, q.ID, q.Layer, q.Text)
	switch q.Type {
	case bank.MultipleChoice:
		for _, o := range q.Options {
			fmt.Printf("      %s) %s\n", o.Label, o.Text)
		}
	case bank.SliderType:
		fmt.Printf("      0 = %s ... %d = %s\n", sliderLabel(q.Left), bank.SliderMax, sliderLabel(q.Right))
	case bank.Ranking:
		for _, it := range q.Items {
			fmt.Printf("      - %s\n", it.Text)
		}
	}
}

func sliderLabel(end *bank.SliderEnd) string {
	if end == nil {
		return ""
	}
	return end.Label
}
