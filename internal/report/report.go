// Package report assembles the complete result of a scored session.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spigell/career-compass/internal/assessment"
	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/dimension"
	"github.com/spigell/career-compass/internal/filtering"
	"github.com/spigell/career-compass/internal/matching"
	"github.com/spigell/career-compass/internal/milestone"
	"github.com/spigell/career-compass/internal/scoring"
)

const summaryCareerPaths = 3

// Report is everything derived from one session.
type Report struct {
	AssessmentID  string                    `json:"assessment_id" yaml:"assessment_id"`
	Tier          bank.Tier                 `json:"tier" yaml:"tier"`
	BankVersion   string                    `json:"bank_version" yaml:"bank_version"`
	GeneratedAt   time.Time                 `json:"generated_at" yaml:"generated_at"`
	Answered      int                       `json:"answered" yaml:"answered"`
	Total         int                       `json:"total" yaml:"total"`
	Archetype     scoring.ArchetypeResult   `json:"archetype" yaml:"archetype"`
	Profile       scoring.Profile           `json:"profile" yaml:"profile"`
	Comprehensive dimension.Scores          `json:"comprehensive_scores" yaml:"comprehensive_scores"`
	Scores        dimension.Scores          `json:"scores" yaml:"scores"`
	Sectors       []matching.SectorMatch    `json:"sectors" yaml:"sectors"`
	Departments   []matching.DepartmentFit  `json:"departments" yaml:"departments"`
	Geographies   []matching.GeographyMatch `json:"geographies" yaml:"geographies"`
	Milestones    []milestone.Milestone     `json:"milestones" yaml:"milestones"`
}

// Summary is the short form used for notifications and narratives.
type Summary struct {
	Archetype    scoring.Archetype `json:"archetype" yaml:"archetype"`
	Name         string            `json:"name" yaml:"name"`
	Emoji        string            `json:"emoji" yaml:"emoji"`
	Tagline      string            `json:"tagline" yaml:"tagline"`
	Secondary    string            `json:"secondary,omitempty" yaml:"secondary,omitempty"`
	CareerPaths  []string          `json:"career_paths" yaml:"career_paths"`
	EQSuperpower string            `json:"eq_superpower" yaml:"eq_superpower"`
	TopStrengths []string          `json:"top_strengths" yaml:"top_strengths"`
}

// Build scores a session against the bank. Scoring is best-effort: a partially
// answered session still produces a report. Errors only come from missing
// inputs or a cancelled context.
func Build(ctx context.Context, b *bank.Bank, s *assessment.Session) (*Report, error) {
	if b == nil {
		return nil, errors.New("question bank is required")
	}
	if s == nil {
		return nil, errors.New("session is required")
	}

	path := filtering.SelectQuestions(b, s.Tier)
	if path == nil {
		return nil, fmt.Errorf("no questions for tier %q", s.Tier)
	}

	base := scoring.ScoreBase(b, s.Answers)
	comprehensive := scoring.ScoreComprehensive(s.Answers, path)
	merged := scoring.Merge(base.Scores, comprehensive)
	answered, total := s.Progress(path)

	r := &Report{
		AssessmentID:  s.ID,
		Tier:          s.Tier,
		BankVersion:   b.Version(),
		GeneratedAt:   time.Now().UTC(),
		Answered:      answered,
		Total:         total,
		Archetype:     base,
		Profile:       scoring.Describe(base.Primary),
		Comprehensive: comprehensive,
		Scores:        merged,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		r.Sectors = matching.MatchSectors(merged)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		r.Departments = matching.MatchDepartments(merged)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		r.Geographies = matching.MatchGeographies(merged)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("match profiles: %w", err)
	}

	r.Milestones = milestone.Reached(answered, merged, base.Primary)
	return r, nil
}

// Summary condenses the report to the archetype, the leading sectors and the
// strongest EQ dimension.
func (r *Report) Summary() Summary {
	s := Summary{
		Archetype:    r.Archetype.Primary,
		Name:         r.Profile.Name,
		Emoji:        r.Profile.Emoji,
		Tagline:      r.Profile.Tagline,
		CareerPaths:  []string{},
		EQSuperpower: dimension.Label(milestone.Superpower(r.Scores)),
		TopStrengths: []string{},
	}
	if r.Archetype.Secondary != nil {
		s.Secondary = scoring.Describe(*r.Archetype.Secondary).Name
	}
	for i, m := range r.Sectors {
		if i == summaryCareerPaths {
			break
		}
		s.CareerPaths = append(s.CareerPaths, m.Sector)
	}
	for _, rk := range r.Scores.Top(3, dimension.Comprehensive()...) {
		s.TopStrengths = append(s.TopStrengths, dimension.Label(rk.Dimension))
	}
	return s
}
