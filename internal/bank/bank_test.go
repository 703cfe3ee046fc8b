package bank

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/career-compass/internal/dimension"
)

func TestLoadEmbeddedBank(t *testing.T) {
	t.Parallel()

	b, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 95, b.Len())
	assert.NotEmpty(t, b.Version())

	archetype := b.ArchetypeQuestions()
	require.Len(t, archetype, 12)
	for i, q := range archetype {
		assert.Equal(t, i+1, q.ID)
		for _, tier := range Tiers() {
			assert.True(t, q.AppliesTo(tier), "question %d on %s", q.ID, tier)
		}
	}

	overrides := b.Overrides(Entry)
	assert.NotEmpty(t, overrides)
	for id, o := range overrides {
		assert.Equal(t, id, o.ID)
	}
	assert.Empty(t, b.Overrides(Executive))
}

func TestQuestionReturnsCopy(t *testing.T) {
	t.Parallel()

	b, err := Load()
	require.NoError(t, err)

	q, ok := b.Question(1)
	require.True(t, ok)
	q.Options[0].Weights[dimension.Leadership] = 0
	q.Text = "changed"

	again, ok := b.Question(1)
	require.True(t, ok)
	assert.Equal(t, "In a crisis, I prefer to:", again.Text)
	assert.Equal(t, 10.0, again.Options[0].Weights[dimension.Leadership])

	_, ok = b.Question(1000)
	assert.False(t, ok)
}

const validQuestions = `
version: test
questions:
  - id: 1
    type: multiple-choice
    layer: archetype
    paths: [entry, experienced, executive]
    text: "Pick one"
    options:
      - {label: A, text: "a", weights: {autonomy: 10}}
      - {label: B, text: "b", weights: {collaboration: 10}}
  - id: 2
    type: slider
    layer: eq
    paths: [entry]
    text: "Slide"
    left: {label: L, weights: {empathy: 2}}
    right: {label: R, weights: {empathy: 10}}
  - id: 3
    type: ranking
    layer: career
    paths: [experienced]
    text: "Rank"
    items:
      - {text: x, weights: {integrity: 1}}
      - {text: y, weights: {dependability: 1}}
`

func TestParseValid(t *testing.T) {
	t.Parallel()

	b, err := Parse([]byte(validQuestions), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, "test", b.Version())
}

func TestParseCollectsProblems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		replace [2]string
		want    string
	}{
		{
			name:    "unknown dimension",
			replace: [2]string{"{empathy: 2}", "{charisma: 2}"},
			want:    `unknown dimension "charisma"`,
		},
		{
			name:    "weight out of range",
			replace: [2]string{"{empathy: 10}", "{empathy: 11}"},
			want:    "outside [0,10]",
		},
		{
			name:    "duplicate id",
			replace: [2]string{"id: 3", "id: 2"},
			want:    "duplicate id",
		},
		{
			name:    "archetype not on every path",
			replace: [2]string{"paths: [entry, experienced, executive]", "paths: [entry]"},
			want:    "archetype question must apply to experienced",
		},
		{
			name:    "archetype uses comprehensive dimension",
			replace: [2]string{"{autonomy: 10}", "{empathy: 10}"},
			want:    "archetype weights must use base dimensions",
		},
		{
			name:    "empty option weights",
			replace: [2]string{`{label: B, text: "b", weights: {collaboration: 10}}`, `{label: B, text: "b"}`},
			want:    "empty weight map",
		},
		{
			name:    "unknown type",
			replace: [2]string{"type: ranking", "type: matrix"},
			want:    `unknown type "matrix"`,
		},
		{
			name:    "unknown path",
			replace: [2]string{"paths: [experienced]", "paths: [intern]"},
			want:    `unknown path "intern"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := strings.Replace(validQuestions, tt.replace[0], tt.replace[1], 1)
			require.NotEqual(t, validQuestions, doc, "replacement did not apply")

			_, err := Parse([]byte(doc), nil)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseOverrides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		overrides string
		want      string
	}{
		{
			name: "unknown id is accepted",
			overrides: `
entry:
  99: {text: "nowhere"}
`,
		},
		{
			name: "archetype weights cannot change",
			overrides: `
entry:
  1:
    options:
      - {label: A, text: "a", weights: {leadership: 10}}
      - {label: B, text: "b"}
`,
			want: "archetype questions may only change display text",
		},
		{
			name: "option without canonical counterpart",
			overrides: `
entry:
  1:
    options:
      - {label: A, text: "a"}
      - {label: Z, text: "z"}
`,
			want: `option "Z" has no weights and no canonical counterpart`,
		},
		{
			name: "slider labels on a choice question",
			overrides: `
entry:
  1: {left: "nope"}
`,
			want: "slider labels given for multiple-choice question",
		},
		{
			name: "unknown tier",
			overrides: `
intern:
  2: {text: "hi"}
`,
			want: `unknown tier "intern"`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(validQuestions), []byte(tt.overrides))
			if tt.want == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseTier(t *testing.T) {
	t.Parallel()

	tier, err := ParseTier(" Executive ")
	require.NoError(t, err)
	assert.Equal(t, Executive, tier)

	_, err = ParseTier("intern")
	require.Error(t, err)
}
