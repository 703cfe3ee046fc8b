package bank

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spigell/career-compass/internal/dimension"
)

// ValidationError lists every problem found while loading a bank.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question bank: %s", strings.Join(e.Problems, "; "))
}

type validator struct {
	problems []string
}

func (v *validator) addf(format string, args ...any) {
	v.problems = append(v.problems, fmt.Sprintf(format, args...))
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	sort.Strings(v.problems)
	return &ValidationError{Problems: v.problems}
}

func (v *validator) question(q Question) {
	where := fmt.Sprintf("question %d", q.ID)

	if q.ID <= 0 {
		v.addf("%s: id must be positive", where)
	}
	if strings.TrimSpace(q.Text) == "" {
		v.addf("%s: empty text", where)
	}
	if !q.Layer.valid() {
		v.addf("%s: unknown layer %q", where, q.Layer)
	}
	if len(q.Paths) == 0 {
		v.addf("%s: no applicable paths", where)
	}
	for _, p := range q.Paths {
		if !p.valid() {
			v.addf("%s: unknown path %q", where, p)
		}
	}
	if q.IsArchetype() {
		for _, t := range Tiers() {
			if !q.AppliesTo(t) {
				v.addf("%s: archetype question must apply to %s", where, t)
			}
		}
	}

	switch q.Type {
	case MultipleChoice:
		if len(q.Options) < 2 {
			v.addf("%s: multiple-choice needs at least two options", where)
		}
		seen := map[string]bool{}
		for _, o := range q.Options {
			if o.Label == "" {
				v.addf("%s: option without label", where)
			}
			if seen[o.Label] {
				v.addf("%s: duplicate option label %q", where, o.Label)
			}
			seen[o.Label] = true
			v.weights(fmt.Sprintf("%s option %s", where, o.Label), o.Weights, q.IsArchetype(), true)
		}
	case SliderType:
		if q.Left == nil || q.Right == nil {
			v.addf("%s: slider needs left and right ends", where)
			return
		}
		v.weights(where+" left", q.Left.Weights, q.IsArchetype(), false)
		v.weights(where+" right", q.Right.Weights, q.IsArchetype(), false)
		if len(q.Left.Weights) == 0 && len(q.Right.Weights) == 0 {
			v.addf("%s: slider has no weights", where)
		}
	case Ranking:
		if len(q.Items) < 2 {
			v.addf("%s: ranking needs at least two items", where)
		}
		seen := map[string]bool{}
		for i, it := range q.Items {
			if seen[it.Text] {
				v.addf("%s: duplicate ranking item %q", where, it.Text)
			}
			seen[it.Text] = true
			v.weights(fmt.Sprintf("%s item %d", where, i+1), it.Weights, q.IsArchetype(), true)
		}
	default:
		v.addf("%s: unknown type %q", where, q.Type)
	}
}

func (v *validator) weights(where string, w dimension.Weights, baseOnly, required bool) {
	if required && len(w) == 0 {
		v.addf("%s: empty weight map", where)
	}
	for d, val := range w {
		if !d.Valid() {
			v.addf("%s: unknown dimension %q", where, d)
			continue
		}
		if baseOnly && !d.IsBase() {
			v.addf("%s: archetype weights must use base dimensions, got %q", where, d)
		}
		if val < 0 || val > 10 {
			v.addf("%s: weight %s=%v outside [0,10]", where, d, val)
		}
	}
}

func (v *validator) overrides(b *Bank, tier Tier, byID map[int]QuestionOverride) {
	if !tier.valid() {
		v.addf("overrides: unknown tier %q", tier)
	}

	for id, o := range byID {
		where := fmt.Sprintf("%s override %d", tier, id)
		for _, opt := range o.Options {
			if len(opt.Weights) > 0 {
				v.weights(where+" option "+opt.Label, opt.Weights, false, false)
			}
		}
		for i, it := range o.Items {
			if len(it.Weights) > 0 {
				v.weights(fmt.Sprintf("%s item %d", where, i+1), it.Weights, false, false)
			}
		}

		i, ok := b.index[id]
		if !ok {
			// Applied as a no-op by the path filter.
			continue
		}
		q := b.questions[i]

		if q.IsArchetype() && o.carriesWeights() {
			v.addf("%s: archetype questions may only change display text", where)
		}
		if len(o.Options) > 0 && q.Type != MultipleChoice {
			v.addf("%s: options given for %s question", where, q.Type)
		}
		if (o.Left != "" || o.Right != "") && q.Type != SliderType {
			v.addf("%s: slider labels given for %s question", where, q.Type)
		}
		if len(o.Items) > 0 && q.Type != Ranking {
			v.addf("%s: ranking items given for %s question", where, q.Type)
		}
		for _, opt := range o.Options {
			if len(opt.Weights) > 0 {
				continue
			}
			if _, ok := q.Option(opt.Label); !ok {
				v.addf("%s: option %q has no weights and no canonical counterpart", where, opt.Label)
			}
		}
		for i, it := range o.Items {
			if len(it.Weights) == 0 && i >= len(q.Items) {
				v.addf("%s: item %q has no weights and no canonical counterpart", where, it.Text)
			}
		}
	}
}
