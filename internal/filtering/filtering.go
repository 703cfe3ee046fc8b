// Package filtering selects the questions a respondent sees for their tier.
package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/bank"
)

// Filter represents a single step applied to the question list.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, questions []bank.Question) ([]bank.Question, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Bank   *bank.Bank
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial    int
	Dropped    int
	Left       int
	Overridden int
}

// Config contains the settings consumed by the filters.
type Config struct {
	Tier bank.Tier
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DefaultSteps returns the path pipeline: tier selection followed by tier wording.
func DefaultSteps() []Filter {
	return []Filter{NewTier(), NewOverrides()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the resulting questions.
// The input slice is never modified.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, questions []bank.Question) ([]bank.Question, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	current := make([]bank.Question, 0, len(questions))
	for _, q := range questions {
		current = append(current, q.Clone())
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !step.IsEnabled() {
			deps.Logger.Debug("filter disabled", zap.String("name", step.Name()))
			continue
		}

		next, info, err := step.Apply(ctx, deps, current)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		deps.Logger.Debug("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
			zap.Int("overridden", info.Overridden),
		)

		current = next
	}

	return current, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// SelectQuestions returns the ordered questions shown to tier, with the tier's
// wording applied. An unknown tier selects nothing.
func SelectQuestions(b *bank.Bank, tier bank.Tier) []bank.Question {
	if b == nil {
		return nil
	}
	out, err := Run(context.Background(), &Config{Tier: tier}, Deps{Bank: b}, DefaultSteps(), b.Questions())
	if err != nil {
		return nil
	}
	return out
}
