// Package matching scores a candidate's dimension profile against static
// reference profiles: hospitality sectors, hotel departments and regions.
package matching

import (
	"math"
	"sort"

	"github.com/spigell/career-compass/internal/dimension"
)

// Term is one weighted dimension of a reference profile. Ideal is only read
// by the Proximity strategy.
type Term struct {
	Dimension dimension.Dimension
	Weight    float64
	Ideal     float64
}

// Profile is a named reference profile. Term order is significant: it breaks
// ties between equal contributions.
type Profile struct {
	Name  string
	Terms []Term
}

// Strategy computes how much one term contributes to a profile's fit.
type Strategy interface {
	Contribution(t Term, score int) float64
}

// Additive weighs the candidate's score directly.
type Additive struct{}

func (Additive) Contribution(t Term, score int) float64 {
	return float64(score) * t.Weight
}

// Proximity rewards closeness to the term's ideal score. The proximity is not
// clamped, so a gap above 100 contributes negatively.
type Proximity struct{}

func (Proximity) Contribution(t Term, score int) float64 {
	return (100 - math.Abs(float64(score)-t.Ideal)) * t.Weight
}

// Contribution is the evaluated share of one term.
type Contribution struct {
	Dimension dimension.Dimension
	Score     int
	Weight    float64
	Value     float64
	Gap       float64
}

// Evaluation is a profile scored against a candidate.
type Evaluation struct {
	Index int
	Name  string
	Fit   int
	// Contributions are ordered by Value, highest first.
	Contributions []Contribution
}

// ByGap returns the contributions ordered by distance from the ideal, closest first.
func (e Evaluation) ByGap() []Contribution {
	out := make([]Contribution, len(e.Contributions))
	copy(out, e.Contributions)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap < out[j].Gap })
	return out
}

// Rank evaluates every profile and returns them ordered by fit, highest first.
// Equal fits keep table order. Dimensions missing from scores count as 0.
func Rank(profiles []Profile, scores dimension.Scores, s Strategy) []Evaluation {
	out := make([]Evaluation, 0, len(profiles))
	for i, p := range profiles {
		e := Evaluation{Index: i, Name: p.Name, Contributions: make([]Contribution, 0, len(p.Terms))}

		total := 0.0
		for _, t := range p.Terms {
			score := scores.Get(t.Dimension)
			v := s.Contribution(t, score)
			total += v
			e.Contributions = append(e.Contributions, Contribution{
				Dimension: t.Dimension,
				Score:     score,
				Weight:    t.Weight,
				Value:     v,
				Gap:       math.Abs(float64(score) - t.Ideal),
			})
		}
		e.Fit = clampRound(total)

		sort.SliceStable(e.Contributions, func(a, b int) bool {
			return e.Contributions[a].Value > e.Contributions[b].Value
		})
		out = append(out, e)
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Fit > out[j].Fit })
	return out
}

func clampRound(v float64) int {
	return int(math.Round(math.Min(100, math.Max(0, v))))
}

// Stars converts a fit score to the 1-5 star scale.
func Stars(fit int) int {
	switch {
	case fit >= 85:
		return 5
	case fit >= 70:
		return 4
	case fit >= 55:
		return 3
	case fit >= 40:
		return 2
	}
	return 1
}

func labelFor(labels map[dimension.Dimension]string, d dimension.Dimension) string {
	if l, ok := labels[d]; ok && l != "" {
		return l
	}
	return string(d)
}
