// Package bank holds the canonical questionnaire and the per-tier display overrides.
package bank

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/questions.yaml
var questionsYAML []byte

//go:embed data/entry_overrides.yaml
var overridesYAML []byte

// Bank is an immutable, validated question bank. Accessors return copies.
type Bank struct {
	version   string
	questions []Question
	index     map[int]int
	overrides map[Tier]map[int]QuestionOverride
}

type questionsFile struct {
	Version   string     `yaml:"version"`
	Questions []Question `yaml:"questions"`
}

// Load parses and validates the embedded bank.
func Load() (*Bank, error) {
	return Parse(questionsYAML, overridesYAML)
}

// Parse builds a bank from YAML documents. overrides may be empty.
// Every authoring problem found is reported in a single *ValidationError.
func Parse(questions, overrides []byte) (*Bank, error) {
	var qf questionsFile
	if err := yaml.Unmarshal(questions, &qf); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	ovr := map[Tier]map[int]QuestionOverride{}
	if len(overrides) > 0 {
		if err := yaml.Unmarshal(overrides, &ovr); err != nil {
			return nil, fmt.Errorf("decode overrides: %w", err)
		}
	}
	for _, byID := range ovr {
		for id, o := range byID {
			o.ID = id
			byID[id] = o
		}
	}

	b := &Bank{
		version:   qf.Version,
		questions: qf.Questions,
		index:     make(map[int]int, len(qf.Questions)),
		overrides: ovr,
	}

	v := &validator{}
	for i, q := range b.questions {
		if _, dup := b.index[q.ID]; dup {
			v.addf("question %d: duplicate id", q.ID)
			continue
		}
		b.index[q.ID] = i
		v.question(q)
	}
	for tier, byID := range b.overrides {
		v.overrides(b, tier, byID)
	}

	if err := v.err(); err != nil {
		return nil, err
	}
	return b, nil
}

// Version is the authored revision of the bank.
func (b *Bank) Version() string { return b.version }

// Len returns the number of canonical questions.
func (b *Bank) Len() int { return len(b.questions) }

// Questions returns every canonical question in bank order.
func (b *Bank) Questions() []Question {
	out := make([]Question, 0, len(b.questions))
	for _, q := range b.questions {
		out = append(out, q.Clone())
	}
	return out
}

// Question returns the canonical question with the given id.
func (b *Bank) Question(id int) (Question, bool) {
	i, ok := b.index[id]
	if !ok {
		return Question{}, false
	}
	return b.questions[i].Clone(), true
}

// ArchetypeQuestions returns the canonical archetype-layer questions in bank order.
// They are never affected by tier overrides.
func (b *Bank) ArchetypeQuestions() []Question {
	var out []Question
	for _, q := range b.questions {
		if q.IsArchetype() {
			out = append(out, q.Clone())
		}
	}
	return out
}

// Overrides returns the display overrides registered for tier, keyed by question id.
func (b *Bank) Overrides(tier Tier) map[int]QuestionOverride {
	src := b.overrides[tier]
	out := make(map[int]QuestionOverride, len(src))
	for id, o := range src {
		out[id] = o
	}
	return out
}
