package scoring

import (
	"math"

	"github.com/spigell/career-compass/internal/assessment"
	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/dimension"
)

var comprehensiveRankMultipliers = []float64{1.5, 1.0, 0.5, 0.25}

const comprehensiveRankFloor = 0.25

// Ranking item weights are authored on a 0-1 scale; this brings them to the option scale.
const rankingScale = 10

// ScoreComprehensive scores the eighteen comprehensive dimensions from the
// non-archetype questions on the respondent's path. Each dimension is the
// average contribution over the questions that touched it, scaled to [0,100].
// Dimensions no answered question touched score 0. Base dimension keys found
// on these questions are ignored; base scores come from ScoreBase only.
func ScoreComprehensive(answers assessment.AnswerSet, path []bank.Question) dimension.Scores {
	raw := make(map[dimension.Dimension]float64)
	count := make(map[dimension.Dimension]int)

	add := func(d dimension.Dimension, v float64) {
		if !d.IsComprehensive() {
			return
		}
		raw[d] += v
		count[d]++
	}

	for _, q := range path {
		if q.IsArchetype() {
			continue
		}
		a, ok := answers.Get(q.ID)
		if !ok {
			continue
		}

		switch q.Type {
		case bank.MultipleChoice:
			if a.Kind != assessment.KindChoice {
				continue
			}
			opt, ok := q.Option(a.Label)
			if !ok {
				continue
			}
			for _, d := range opt.Weights.Keys() {
				add(d, opt.Weights[d])
			}
		case bank.SliderType:
			if !validSlider(a) {
				continue
			}
			contrib := make(map[dimension.Dimension]float64)
			interpolate(contrib, q, a.Value, nil)
			for _, d := range dimension.All() {
				if v, ok := contrib[d]; ok {
					add(d, v)
				}
			}
		case bank.Ranking:
			if a.Kind != assessment.KindRanking {
				continue
			}
			for idx, text := range a.Order {
				i := q.ItemIndex(text)
				if i < 0 {
					continue
				}
				m := multiplier(comprehensiveRankMultipliers, comprehensiveRankFloor, idx)
				w := q.Items[i].Weights
				for _, d := range w.Keys() {
					add(d, w[d]*m*rankingScale)
				}
			}
		}
	}

	scores := make(dimension.Scores, len(dimension.Comprehensive()))
	for _, d := range dimension.Comprehensive() {
		if count[d] == 0 {
			scores[d] = 0
			continue
		}
		avg := raw[d] / float64(count[d])
		scores[d] = int(math.Round(math.Min(100, math.Max(0, avg*10))))
	}
	return scores
}

// Merge returns one score map holding both the base and comprehensive sets.
// Matchers read this view; dimensions missing from both count as 0.
func Merge(base, comprehensive dimension.Scores) dimension.Scores {
	out := make(dimension.Scores, len(base)+len(comprehensive))
	for d, v := range comprehensive {
		if d.IsComprehensive() {
			out[d] = v
		}
	}
	for d, v := range base {
		if d.IsBase() {
			out[d] = v
		}
	}
	return out
}
