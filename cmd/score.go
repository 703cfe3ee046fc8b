package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/assessment"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/report"
)

var scoreCmd = &cobra.Command{
	Use:   "score <session-file>",
	Short: "Score a saved session and print the report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		score(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("output", "o", "", "output format: text or json")
	scoreCmd.Flags().Bool("narrate", false, "add a generated narrative (requires ai.gemini configuration)")
}

func score(cmd *cobra.Command, path string) {
	ctx := context.Background()
	log, config := setup()

	output, err := resolveOutput(cmd.Flag("output").Value.String(), config)
	if err != nil {
		log.Fatal("resolving output", zap.Error(err))
	}

	b := loadBank(log)

	session, skipped, err := assessment.LoadSession(path, b)
	if err != nil {
		log.Fatal("loading session", zap.Error(err))
	}

	log = logger.WithAssessment(log, session.ID, string(session.Tier), "")
	for _, s := range skipped {
		log.Warn("answer skipped", zap.String("question", s.Key), zap.String("reason", s.Reason))
	}
	if session.BankVersion != "" && session.BankVersion != b.Version() {
		log.Warn("session was taken against another bank version",
			zap.String("session_version", session.BankVersion),
			zap.String("bank_version", b.Version()),
		)
	}

	r, err := report.Build(ctx, b, session)
	if err != nil {
		log.Fatal("building report", zap.Error(err))
	}

	log = logger.WithArchetype(log, string(r.Archetype.Primary))
	log.Info("session scored", zap.Int("answered", r.Answered), zap.Int("total", r.Total))

	narrative := narrate(ctx, cmd, config, r, log)

	if output == outputJSON {
		err = writeJSON(os.Stdout, r, narrative)
	} else {
		err = writeText(os.Stdout, r, narrative, config.Top)
	}
	if err != nil {
		log.Fatal("writing report", zap.Error(err))
	}
}

// narrate returns nil when narration is off or fails; the report stands on its own.
func narrate(ctx context.Context, cmd *cobra.Command, config *Config, r *report.Report, log *zap.Logger) *ai.Narrative {
	wanted, _ := cmd.Flags().GetBool("narrate")
	if !wanted && (config.AI == nil || !config.AI.Enabled) {
		return nil
	}

	narrator, err := newNarrator(ctx, config.AI, log)
	if err != nil {
		log.Warn("skipping narrative", zap.Error(err))
		return nil
	}

	n, err := narrator.Narrate(ctx, r.Summary())
	if err != nil {
		log.Warn("narrative generation failed", zap.Error(err))
		return nil
	}
	return n
}
