// Package scoring turns an answer set into dimension scores and an archetype.
// Every function here is pure: the same inputs always give the same output.
package scoring

import (
	"math"
	"sort"

	"github.com/spigell/career-compass/internal/assessment"
	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/dimension"
)

var baseRankMultipliers = []float64{1.5, 1.0, 0.5}

const baseRankFloor = 0.5

// secondaryMargin is how far second place must lead third before it is reported.
const secondaryMargin = 1.1

// ArchetypeResult is the outcome of base scoring.
type ArchetypeResult struct {
	Scores     dimension.Scores      `json:"scores" yaml:"scores"`
	Primary    Archetype             `json:"primary_archetype" yaml:"primary_archetype"`
	Secondary  *Archetype            `json:"secondary_archetype" yaml:"secondary_archetype"`
	Affinities map[Archetype]float64 `json:"archetype_affinities" yaml:"archetype_affinities"`
	Answered   int                   `json:"answered" yaml:"answered"`
}

// ScoreBase scores the five base dimensions from the bank's canonical archetype
// questions and classifies the result. Tier wording never reaches this path, so
// respondents on different tiers with the same archetype answers get the same result.
func ScoreBase(b *bank.Bank, answers assessment.AnswerSet) ArchetypeResult {
	var questions []bank.Question
	if b != nil {
		questions = b.ArchetypeQuestions()
	}

	raw := make(map[dimension.Dimension]float64, 5)
	answered := 0

	for _, q := range questions {
		a, ok := answers.Get(q.ID)
		if !ok {
			continue
		}
		answered++

		switch q.Type {
		case bank.MultipleChoice:
			if a.Kind != assessment.KindChoice {
				continue
			}
			opt, ok := q.Option(a.Label)
			if !ok {
				continue
			}
			for d, w := range opt.Weights {
				raw[d] += w
			}
		case bank.SliderType:
			if !validSlider(a) {
				continue
			}
			interpolate(raw, q, a.Value, nil)
		case bank.Ranking:
			if a.Kind != assessment.KindRanking {
				continue
			}
			for idx, text := range a.Order {
				i := q.ItemIndex(text)
				if i < 0 {
					continue
				}
				m := multiplier(baseRankMultipliers, baseRankFloor, idx)
				for d, w := range q.Items[i].Weights {
					raw[d] += w * m
				}
			}
		}
	}

	scores := make(dimension.Scores, 5)
	for _, d := range dimension.Base() {
		if answered == 0 {
			scores[d] = 0
			continue
		}
		maxPossible := float64(answered * 10)
		scores[d] = int(math.Round(math.Min(100, raw[d]/maxPossible*100)))
	}

	result := Classify(scores)
	result.Answered = answered
	return result
}

// Classify derives archetype affinities from base scores and picks the primary
// and, when it clearly leads third place, the secondary archetype.
func Classify(scores dimension.Scores) ArchetypeResult {
	s := func(d dimension.Dimension) float64 { return float64(scores.Get(d)) }

	affinities := map[Archetype]float64{
		Lion: 0.35*s(dimension.Autonomy) + 0.40*s(dimension.Leadership) +
			0.15*s(dimension.Adaptability) + 0.10*s(dimension.Precision),
		Whale: 0.40*s(dimension.Collaboration) + 0.30*s(dimension.Adaptability) +
			0.15*s(dimension.Leadership) + 0.15*s(dimension.Precision),
		Falcon: 0.40*s(dimension.Precision) + 0.20*s(dimension.Autonomy) +
			0.15*s(dimension.Collaboration) + 0.15*s(dimension.Adaptability) +
			0.10*s(dimension.Leadership),
	}

	order := Archetypes()
	sort.SliceStable(order, func(i, j int) bool {
		return affinities[order[i]] > affinities[order[j]]
	})

	result := ArchetypeResult{
		Scores:     scores.Clone(),
		Primary:    order[0],
		Affinities: affinities,
	}
	if clearlyAhead(affinities[order[1]], affinities[order[2]]) {
		second := order[1]
		result.Secondary = &second
	}
	return result
}

// clearlyAhead reports whether second beats third by strictly more than secondaryMargin.
func clearlyAhead(second, third float64) bool {
	return second > third*secondaryMargin
}

func validSlider(a assessment.Answer) bool {
	return a.Kind == assessment.KindSlider && a.Value >= 0 && a.Value <= bank.SliderMax
}

// interpolate adds the slider contribution for every dimension named on either
// end and calls touched, when set, once per such dimension.
func interpolate(raw map[dimension.Dimension]float64, q bank.Question, value int, touched func(dimension.Dimension)) {
	t := float64(value) / bank.SliderMax
	keys := map[dimension.Dimension]struct{}{}
	if q.Left != nil {
		for d := range q.Left.Weights {
			keys[d] = struct{}{}
		}
	}
	if q.Right != nil {
		for d := range q.Right.Weights {
			keys[d] = struct{}{}
		}
	}
	for d := range keys {
		var left, right float64
		if q.Left != nil {
			left = q.Left.Weights[d]
		}
		if q.Right != nil {
			right = q.Right.Weights[d]
		}
		raw[d] += left*(1-t) + right*t
		if touched != nil {
			touched(d)
		}
	}
}

func multiplier(table []float64, floor float64, idx int) float64 {
	if idx < len(table) {
		return table[idx]
	}
	return floor
}
