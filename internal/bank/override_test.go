package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/career-compass/internal/dimension"
)

func TestOverrideInheritsCanonicalWeights(t *testing.T) {
	t.Parallel()

	b, err := Load()
	require.NoError(t, err)

	canonical, ok := b.Question(13)
	require.True(t, ok)
	o, ok := b.Overrides(Entry)[13]
	require.True(t, ok)

	got := o.Apply(canonical)

	assert.Equal(t, o.Text, got.Text)
	require.Len(t, got.Options, len(canonical.Options))
	for i := range got.Options {
		assert.Equal(t, canonical.Options[i].Label, got.Options[i].Label)
		assert.Equal(t, canonical.Options[i].Weights, got.Options[i].Weights)
		assert.NotEqual(t, canonical.Options[i].Text, got.Options[i].Text)
	}
}

func TestOverrideSliderAndRanking(t *testing.T) {
	t.Parallel()

	b, err := Load()
	require.NoError(t, err)

	slider, _ := b.Question(17)
	got := b.Overrides(Entry)[17].Apply(slider)
	assert.Equal(t, slider.Left.Weights, got.Left.Weights)
	assert.Equal(t, slider.Right.Weights, got.Right.Weights)
	assert.Equal(t, "Close enough is fine", got.Left.Label)

	ranking, _ := b.Question(27)
	got = b.Overrides(Entry)[27].Apply(ranking)
	require.Len(t, got.Items, len(ranking.Items))
	for i := range got.Items {
		assert.Equal(t, ranking.Items[i].Weights, got.Items[i].Weights)
	}
	assert.Equal(t, "Repetitive chores (laundry, tidying)", got.Items[0].Text)
}

func TestOverrideOwnWeightsAreAuthoritative(t *testing.T) {
	t.Parallel()

	q := Question{
		ID:   5,
		Type: MultipleChoice,
		Options: []Option{
			{Label: "A", Text: "a", Weights: dimension.Weights{dimension.Empathy: 4}},
			{Label: "B", Text: "b", Weights: dimension.Weights{dimension.Integrity: 4}},
		},
	}
	o := QuestionOverride{
		ID: 5,
		Options: []Option{
			{Label: "A", Text: "first", Weights: dimension.Weights{dimension.Openness: 9}},
			{Label: "B", Text: "second"},
		},
	}

	got := o.Apply(q)
	assert.Equal(t, dimension.Weights{dimension.Openness: 9}, got.Options[0].Weights)
	assert.Equal(t, dimension.Weights{dimension.Integrity: 4}, got.Options[1].Weights)
	assert.Equal(t, dimension.Weights{dimension.Empathy: 4}, q.Options[0].Weights, "canonical question mutated")
}

func TestOverrideForOtherQuestionIsNoop(t *testing.T) {
	t.Parallel()

	q := Question{ID: 1, Text: "original"}
	got := QuestionOverride{ID: 2, Text: "other"}.Apply(q)
	assert.Equal(t, "original", got.Text)
}
