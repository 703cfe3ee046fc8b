// Package dimension defines the closed set of trait axes the assessment scores.
package dimension

import (
	"fmt"
	"sort"
	"strings"
)

// Dimension is a named trait axis scored in [0,100].
type Dimension string

// Base dimensions are scored only from the canonical archetype questions.
const (
	Autonomy      Dimension = "autonomy"
	Collaboration Dimension = "collaboration"
	Precision     Dimension = "precision"
	Leadership    Dimension = "leadership"
	Adaptability  Dimension = "adaptability"
)

// Comprehensive dimensions are scored from the tier-specific question pools.
const (
	ProblemSolving      Dimension = "problemSolving"
	AttentionToDetail   Dimension = "attentionToDetail"
	LearningSpeed       Dimension = "learningSpeed"
	PatternRecognition  Dimension = "patternRecognition"
	Concentration       Dimension = "concentration"
	Extraversion        Dimension = "extraversion"
	Conscientiousness   Dimension = "conscientiousness"
	Openness            Dimension = "openness"
	Agreeableness       Dimension = "agreeableness"
	EmotionalStability  Dimension = "emotionalStability"
	ReadingOthers       Dimension = "readingOthers"
	Empathy             Dimension = "empathy"
	SelfRegulation      Dimension = "selfRegulation"
	SocialAwareness     Dimension = "socialAwareness"
	Integrity           Dimension = "integrity"
	RuleFollowing       Dimension = "ruleFollowing"
	SafetyConsciousness Dimension = "safetyConsciousness"
	Dependability       Dimension = "dependability"
)

var base = []Dimension{Autonomy, Collaboration, Precision, Leadership, Adaptability}

var comprehensive = []Dimension{
	ProblemSolving, AttentionToDetail, LearningSpeed, PatternRecognition, Concentration,
	Extraversion, Conscientiousness, Openness, Agreeableness, EmotionalStability,
	ReadingOthers, Empathy, SelfRegulation, SocialAwareness,
	Integrity, RuleFollowing, SafetyConsciousness, Dependability,
}

var known = func() map[Dimension]bool {
	m := make(map[Dimension]bool, len(base)+len(comprehensive))
	for _, d := range base {
		m[d] = true
	}
	for _, d := range comprehensive {
		m[d] = true
	}
	return m
}()

// Base returns the five archetype-founding dimensions in canonical order.
func Base() []Dimension {
	return append([]Dimension(nil), base...)
}

// Comprehensive returns the eighteen comprehensive dimensions in canonical order.
func Comprehensive() []Dimension {
	return append([]Dimension(nil), comprehensive...)
}

// All returns base followed by comprehensive dimensions.
func All() []Dimension {
	out := make([]Dimension, 0, len(base)+len(comprehensive))
	out = append(out, base...)
	return append(out, comprehensive...)
}

// IsBase reports whether d belongs to the base set.
func (d Dimension) IsBase() bool {
	for _, b := range base {
		if b == d {
			return true
		}
	}
	return false
}

// IsComprehensive reports whether d belongs to the comprehensive set.
func (d Dimension) IsComprehensive() bool {
	return known[d] && !d.IsBase()
}

// Valid reports whether d is a known dimension.
func (d Dimension) Valid() bool { return known[d] }

func (d Dimension) String() string { return string(d) }

// Parse converts an authored key into a Dimension, failing on unknown keys.
func Parse(key string) (Dimension, error) {
	d := Dimension(strings.TrimSpace(key))
	if !d.Valid() {
		return "", fmt.Errorf("unknown dimension %q", key)
	}
	return d, nil
}

// Scores maps dimensions to integer scores in [0,100].
type Scores map[Dimension]int

// Get returns the score for d, treating an absent dimension as 0.
func (s Scores) Get(d Dimension) int {
	if s == nil {
		return 0
	}
	return s[d]
}

// Clone returns an independent copy.
func (s Scores) Clone() Scores {
	out := make(Scores, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Ranked is a dimension and its score.
type Ranked struct {
	Dimension Dimension
	Score     int
}

// Top returns the n highest scoring entries among dims, ties broken by display label.
func (s Scores) Top(n int, dims ...Dimension) []Ranked {
	out := make([]Ranked, 0, len(dims))
	for _, d := range dims {
		out = append(out, Ranked{Dimension: d, Score: s.Get(d)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return Label(out[i].Dimension) < Label(out[j].Dimension)
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// Weights maps dimensions to authored weights.
type Weights map[Dimension]float64

// Keys returns the weight keys in canonical dimension order.
func (w Weights) Keys() []Dimension {
	out := make([]Dimension, 0, len(w))
	for _, d := range All() {
		if _, ok := w[d]; ok {
			out = append(out, d)
		}
	}
	return out
}
