package bank

import (
	"fmt"
	"strings"

	"github.com/spigell/career-compass/internal/dimension"
)

// Tier is the respondent's declared experience bracket.
type Tier string

const (
	Entry       Tier = "entry"
	Experienced Tier = "experienced"
	Executive   Tier = "executive"
)

// Tiers returns every tier in display order.
func Tiers() []Tier { return []Tier{Entry, Experienced, Executive} }

// ParseTier converts user input into a Tier.
func ParseTier(s string) (Tier, error) {
	t := Tier(strings.ToLower(strings.TrimSpace(s)))
	if !t.valid() {
		return "", fmt.Errorf("unknown tier %q (expected entry, experienced or executive)", s)
	}
	return t, nil
}

func (t Tier) valid() bool {
	switch t {
	case Entry, Experienced, Executive:
		return true
	}
	return false
}

// Layer groups questions for display. It plays no part in scoring math
// except that archetype questions are scored separately.
type Layer string

const (
	LayerArchetype   Layer = "archetype"
	LayerCognitive   Layer = "cognitive"
	LayerPersonality Layer = "personality"
	LayerEQ          Layer = "eq"
	LayerReliability Layer = "reliability"
	LayerCareer      Layer = "career"
)

func (l Layer) valid() bool {
	switch l {
	case LayerArchetype, LayerCognitive, LayerPersonality, LayerEQ, LayerReliability, LayerCareer:
		return true
	}
	return false
}

// Type is the answer shape a question expects.
type Type string

const (
	MultipleChoice Type = "multiple-choice"
	SliderType     Type = "slider"
	Ranking        Type = "ranking"
)

// SliderMax is the right-hand end of every slider; answers are integers in [0,SliderMax].
const SliderMax = 10

// Option is one multiple-choice answer.
type Option struct {
	Label   string            `yaml:"label" json:"label"`
	Text    string            `yaml:"text" json:"text"`
	Weights dimension.Weights `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// SliderEnd is one end of a slider scale.
type SliderEnd struct {
	Label   string            `yaml:"label" json:"label"`
	Weights dimension.Weights `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// RankingItem is one entry the respondent orders.
type RankingItem struct {
	Text    string            `yaml:"text" json:"text"`
	Weights dimension.Weights `yaml:"weights,omitempty" json:"weights,omitempty"`
}

// Question is a single unit of the questionnaire. Only the payload matching
// Type is populated.
type Question struct {
	ID      int           `yaml:"id" json:"id"`
	Type    Type          `yaml:"type" json:"type"`
	Layer   Layer         `yaml:"layer" json:"layer"`
	Paths   []Tier        `yaml:"paths" json:"paths"`
	Text    string        `yaml:"text" json:"text"`
	Options []Option      `yaml:"options,omitempty" json:"options,omitempty"`
	Left    *SliderEnd    `yaml:"left,omitempty" json:"left,omitempty"`
	Right   *SliderEnd    `yaml:"right,omitempty" json:"right,omitempty"`
	Items   []RankingItem `yaml:"items,omitempty" json:"items,omitempty"`
}

// AppliesTo reports whether the question is shown on the tier's path.
func (q Question) AppliesTo(t Tier) bool {
	for _, p := range q.Paths {
		if p == t {
			return true
		}
	}
	return false
}

// IsArchetype reports whether the question feeds the base scorer.
func (q Question) IsArchetype() bool { return q.Layer == LayerArchetype }

// Option returns the option with the given label.
func (q Question) Option(label string) (Option, bool) {
	for _, o := range q.Options {
		if o.Label == label {
			return o, true
		}
	}
	return Option{}, false
}

// ItemIndex returns the position of the ranking item with the given text, or -1.
func (q Question) ItemIndex(text string) int {
	for i, it := range q.Items {
		if it.Text == text {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy so callers can never reach the canonical bank.
func (q Question) Clone() Question {
	out := q
	out.Paths = append([]Tier(nil), q.Paths...)
	if q.Options != nil {
		out.Options = make([]Option, len(q.Options))
		for i, o := range q.Options {
			o.Weights = cloneWeights(o.Weights)
			out.Options[i] = o
		}
	}
	if q.Left != nil {
		l := *q.Left
		l.Weights = cloneWeights(l.Weights)
		out.Left = &l
	}
	if q.Right != nil {
		r := *q.Right
		r.Weights = cloneWeights(r.Weights)
		out.Right = &r
	}
	if q.Items != nil {
		out.Items = make([]RankingItem, len(q.Items))
		for i, it := range q.Items {
			it.Weights = cloneWeights(it.Weights)
			out.Items[i] = it
		}
	}
	return out
}

func cloneWeights(w dimension.Weights) dimension.Weights {
	if w == nil {
		return nil
	}
	out := make(dimension.Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
