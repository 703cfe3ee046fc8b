package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/assessment"
	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/dimension"
	"github.com/spigell/career-compass/internal/filtering"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/milestone"
	"github.com/spigell/career-compass/internal/report"
	"github.com/spigell/career-compass/internal/scoring"
)

var errPaused = errors.New("assessment paused")

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take the assessment interactively",
	Run: func(cmd *cobra.Command, _ []string) {
		take(cmd)
	},
}

func init() {
	rootCmd.AddCommand(takeCmd)

	takeCmd.Flags().StringP("tier", "t", "", "tier to take: entry, experienced or executive (asked when unset)")
	takeCmd.Flags().StringP("resume", "r", "", "resume a saved session file")
	takeCmd.Flags().StringP("session-file", "s", "", "where to save progress (default career-compass-<id>.yaml)")
	takeCmd.Flags().StringP("output", "o", "", "output format of the final report: text or json")
	takeCmd.Flags().Bool("narrate", false, "add a generated narrative (requires ai.gemini configuration)")
}

func take(cmd *cobra.Command) {
	ctx := context.Background()
	log, config := setup()

	output, err := resolveOutput(cmd.Flag("output").Value.String(), config)
	if err != nil {
		log.Fatal("resolving output", zap.Error(err))
	}

	b := loadBank(log)

	session, path := openSession(cmd, b, config, log)
	log = logger.WithAssessment(log, session.ID, string(session.Tier), "")

	questions := filtering.SelectQuestions(b, session.Tier)
	if len(questions) == 0 {
		log.Fatal("no questions selected", zap.String("tier", string(session.Tier)))
	}

	if err := ask(session, b, questions, path, log); err != nil {
		if errors.Is(err, errPaused) {
			log.Info("progress saved", zap.String("session_file", path),
				zap.String("hint", fmt.Sprintf("continue with: %s take --resume %s", app, path)))
			return
		}
		log.Fatal("taking assessment", zap.Error(err))
	}

	r, err := report.Build(ctx, b, session)
	if err != nil {
		log.Fatal("building report", zap.Error(err))
	}
	log = logger.WithArchetype(log, string(r.Archetype.Primary))
	log.Info("assessment complete", zap.String("session_file", path))

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

func openSession(cmd *cobra.Command, b *bank.Bank, config *Config, log *zap.Logger) (*assessment.Session, string) {
	if resume := strings.TrimSpace(cmd.Flag("resume").Value.String()); resume != "" {
		session, skipped, err := assessment.LoadSession(resume, b)
		if err != nil {
			log.Fatal("loading session", zap.Error(err))
		}
		for _, s := range skipped {
			log.Warn("answer skipped", zap.String("question", s.Key), zap.String("reason", s.Reason))
		}
		return session, resume
	}

	tier, err := bank.ParseTier(cmd.Flag("tier").Value.String())
	if err != nil {
		tier, err = selectTier(config)
		if err != nil {
			log.Fatal("selecting tier", zap.Error(err))
		}
	}

	session := assessment.NewSession(tier, b.Version())
	path := strings.TrimSpace(cmd.Flag("session-file").Value.String())
	if path == "" {
		path = fmt.Sprintf("%s-%s.yaml", app, session.ID[:8])
	}
	return session, path
}

func selectTier(config *Config) (bank.Tier, error) {
	tiers := bank.Tiers()
	items := make([]string, len(tiers))
	cursor := 0
	for i, t := range tiers {
		items[i] = string(t)
		if strings.EqualFold(string(t), config.Tier) {
			cursor = i
		}
	}

	p := promptui.Select{Label: "Your experience level", Items: items, CursorPos: cursor}
	_, selected, err := p.Run()
	if err != nil {
		return "", err
	}
	return bank.ParseTier(selected)
}

// ask walks the unanswered questions, saving after every answer.
func ask(session *assessment.Session, b *bank.Bank, questions []bank.Question, path string, log *zap.Logger) error {
	for {
		q, ok := session.NextUnanswered(questions)
		if !ok {
			return assessment.SaveSession(path, session)
		}

		answered, total := session.Progress(questions)
		fmt.Printf("\n%d/%d  %s\n", answered+1, total, milestone.Encouragement(answered, total))

		a, err := askQuestion(q)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				if serr := assessment.SaveSession(path, session); serr != nil {
					return serr
				}
				return errPaused
			}
			return fmt.Errorf("question %d: %w", q.ID, err)
		}

		session.Record(q.ID, a)
		if err := assessment.SaveSession(path, session); err != nil {
			return err
		}
		log.Debug("answer recorded", zap.Int("question", q.ID), zap.String("kind", a.Kind.String()))

		answered++
		scores, archetype := currentScores(b, session, questions)
		if m, ok := milestone.At(answered, scores, archetype); ok {
			fmt.Printf("\n%s %s\n   %s\n   %s\n", m.Emoji, m.Title, m.Headline, m.Detail)
		}
	}
}

func currentScores(b *bank.Bank, session *assessment.Session, questions []bank.Question) (dimension.Scores, scoring.Archetype) {
	base := scoring.ScoreBase(b, session.Answers)
	return scoring.Merge(base.Scores, scoring.ScoreComprehensive(session.Answers, questions)), base.Primary
}

func askQuestion(q bank.Question) (assessment.Answer, error) {
	switch q.Type {
	case bank.MultipleChoice:
		items := make([]string, len(q.Options))
		for i, o := range q.Options {
			items[i] = fmt.Sprintf("%s) %s", o.Label, o.Text)
		}
		p := promptui.Select{Label: q.Text, Items: items, Size: len(items)}
		idx, _, err := p.Run()
		if err != nil {
			return assessment.Answer{}, err
		}
		return assessment.Choice(q.Options[idx].Label), nil

	case bank.SliderType:
		p := promptui.Prompt{
			Label:    fmt.Sprintf("%s (0 = %s, %d = %s)", q.Text, sliderLabel(q.Left), bank.SliderMax, sliderLabel(q.Right)),
			Default:  strconv.Itoa(bank.SliderMax / 2),
			Validate: validateSlider,
		}
		raw, err := p.Run()
		if err != nil {
			return assessment.Answer{}, err
		}
		v, _ := strconv.Atoi(strings.TrimSpace(raw))
		return assessment.Slider(v), nil

	case bank.Ranking:
		remaining := make([]string, len(q.Items))
		for i, it := range q.Items {
			remaining[i] = it.Text
		}
		order := make([]string, 0, len(remaining))
		for len(remaining) > 1 {
			p := promptui.Select{
				Label: fmt.Sprintf("%s (pick #%d)", q.Text, len(order)+1),
				Items: remaining,
				Size:  len(remaining),
			}
			idx, picked, err := p.Run()
			if err != nil {
				return assessment.Answer{}, err
			}
			order = append(order, picked)
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}
		order = append(order, remaining...)
		return assessment.Ranking(order...), nil
	}

	return assessment.Answer{}, fmt.Errorf("unsupported question type %q", q.Type)
}

func validateSlider(input string) error {
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return errors.New("enter a whole number")
	}
	if v < 0 || v > bank.SliderMax {
		return fmt.Errorf("enter a value between 0 and %d", bank.SliderMax)
	}
	return nil
}
