// Package ai describes optional narrative generation on top of a scored report.
// Nothing here takes part in scoring.
package ai

import (
	"context"

	"github.com/spigell/career-compass/internal/report"
)

// Narrative is a short, generated description of a respondent's results.
type Narrative struct {
	Headline  string   `json:"headline" yaml:"headline"`
	Body      string   `json:"body" yaml:"body"`
	NextSteps []string `json:"next_steps" yaml:"next_steps"`
	Model     string   `json:"model,omitempty" yaml:"model,omitempty"`
	Raw       string   `json:"-" yaml:"-"`
}

type Narrator interface {
	Narrate(ctx context.Context, summary report.Summary) (*Narrative, error)
}
