package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/bank"
)

type tierFilter struct {
	tier bank.Tier
}

// NewTier creates a filter that keeps only the questions applicable to the configured tier.
func NewTier() Filter {
	return &tierFilter{}
}

func (f *tierFilter) Name() string { return "tier" }

func (f *tierFilter) Disable(string) {}

func (f *tierFilter) IsEnabled() bool { return true }

func (f *tierFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("tier is required")
	}
	tier, err := bank.ParseTier(string(cfg.Tier))
	if err != nil {
		return err
	}
	f.tier = tier
	return nil
}

func (f *tierFilter) Apply(_ context.Context, deps Deps, questions []bank.Question) ([]bank.Question, Step, error) {
	initial := len(questions)
	kept := make([]bank.Question, 0, initial)
	var dropped []int
	for _, q := range questions {
		if q.AppliesTo(f.tier) {
			kept = append(kept, q)
			continue
		}
		dropped = append(dropped, q.ID)
	}

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Debug("excluding questions outside the tier path",
			zap.String("tier", string(f.tier)),
			zap.Ints("excluded_questions", dropped),
			zap.Int("questions_left", len(kept)),
		)
	}

	return kept, Step{Initial: initial, Dropped: len(dropped), Left: len(kept)}, nil
}

func (f *tierFilter) Status() Status {
	details := map[string]string{}
	if f.tier != "" {
		details["tier"] = string(f.tier)
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
