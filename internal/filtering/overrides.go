package filtering

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/bank"
)

type overridesFilter struct {
	disabled bool
	reason   string
	tier     bank.Tier
	applied  int
}

// NewOverrides creates a filter that swaps in the tier-specific wording registered in the bank.
func NewOverrides() Filter {
	return &overridesFilter{}
}

func (f *overridesFilter) Name() string { return "overrides" }

func (f *overridesFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *overridesFilter) IsEnabled() bool { return !f.disabled }

func (f *overridesFilter) Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("tier is required")
	}
	f.tier = cfg.Tier
	return nil
}

func (f *overridesFilter) Apply(_ context.Context, deps Deps, questions []bank.Question) ([]bank.Question, Step, error) {
	initial := len(questions)
	if deps.Bank == nil {
		return questions, Step{Initial: initial, Left: initial}, nil
	}

	table := deps.Bank.Overrides(f.tier)
	if len(table) == 0 {
		return questions, Step{Initial: initial, Left: initial}, nil
	}

	out := make([]bank.Question, len(questions))
	used := make(map[int]bool, len(table))
	for i, q := range questions {
		o, ok := table[q.ID]
		if !ok {
			out[i] = q
			continue
		}
		out[i] = o.Apply(q)
		used[q.ID] = true
	}
	f.applied = len(used)

	if deps.Logger != nil {
		var ignored []int
		for id := range table {
			if !used[id] {
				ignored = append(ignored, id)
			}
		}
		if len(ignored) > 0 {
			sort.Ints(ignored)
			deps.Logger.Debug("overrides ignored for questions outside the path",
				zap.String("tier", string(f.tier)),
				zap.Ints("ignored_questions", ignored),
			)
		}
	}

	return out, Step{Initial: initial, Left: len(out), Overridden: len(used)}, nil
}

func (f *overridesFilter) Status() Status {
	details := map[string]string{
		"applied": strconv.Itoa(f.applied),
	}
	if f.tier != "" {
		details["tier"] = string(f.tier)
	}
	return Status{Name: f.Name(), Enabled: f.IsEnabled(), Reason: f.reason, Details: details}
}
