package milestone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "github.com/spigell/career-compass/internal/dimension"
	"github.com/spigell/career-compass/internal/scoring"
)

func TestReachedCounts(t *testing.T) {
	cases := []struct {
		answered int
		want     int
	}{
		{0, 0}, {11, 0}, {12, 1}, {26, 1}, {27, 2}, {47, 3}, {62, 4}, {76, 4}, {77, 5}, {95, 5},
	}
	for _, tc := range cases {
		got := Reached(tc.answered, d.Scores{}, scoring.Whale)
		assert.Len(t, got, tc.want, "answered %d", tc.answered)
		assert.NotNil(t, got)
	}
}

func TestReachedContent(t *testing.T) {
	scores := d.Scores{
		d.Concentration: 90, d.PatternRecognition: 70,
		d.Openness: 80, d.Agreeableness: 80,
		d.SocialAwareness: 60, d.Empathy: 60,
		d.Integrity: 80, d.RuleFollowing: 70, d.SafetyConsciousness: 60, d.Dependability: 50,
	}

	ms := Reached(95, scores, scoring.Lion)
	require.Len(t, ms, 5)

	assert.Equal(t, "You're a Lion!", ms[0].Headline)
	assert.Equal(t, "The Autonomous Leader: decisive, independent, visionary.", ms[0].Detail)
	assert.Equal(t, "🧬", ms[0].Emoji)

	assert.Equal(t, "Top strengths: Concentration & Pattern Recognition", ms[1].Headline)
	assert.Equal(t, "Your cognitive profile is taking shape. Concentration is your standout ability.", ms[1].Detail)

	assert.Equal(t, "High Openness, High Agreeableness", ms[2].Headline)
	assert.Equal(t, "Your EQ superpower: Empathy", ms[3].Headline)
	assert.Equal(t, "Solid Foundation", ms[4].Headline)
}

func TestPersonalityTiesKeepListOrder(t *testing.T) {
	ms := Reached(47, d.Scores{}, scoring.Falcon)
	require.Len(t, ms, 3)
	assert.Equal(t, "High Extraversion, High Conscientiousness", ms[2].Headline)
	assert.Equal(t, "Top strengths: Problem Solving & Attention to Detail", ms[1].Headline)
}

func TestUnknownArchetype(t *testing.T) {
	ms := Reached(12, nil, "")
	require.Len(t, ms, 1)
	assert.Equal(t, "You're a Unknown!", ms[0].Headline)
}

func TestAt(t *testing.T) {
	m, ok := At(62, d.Scores{d.ReadingOthers: 90}, scoring.Whale)
	require.True(t, ok)
	assert.Equal(t, "EQ Profile Unlocked!", m.Title)
	assert.Equal(t, "Your EQ superpower: Reading Others", m.Headline)

	_, ok = At(30, d.Scores{}, scoring.Whale)
	assert.False(t, ok)
}

func TestSuperpowerTieBreaksByLabel(t *testing.T) {
	assert.Equal(t, d.Empathy, Superpower(d.Scores{}))
	assert.Equal(t, d.SelfRegulation, Superpower(d.Scores{d.SelfRegulation: 70, d.SocialAwareness: 70}))
}

func TestReliabilityBand(t *testing.T) {
	assert.Equal(t, "Highly Reliable Professional", ReliabilityBand(d.Scores{
		d.Integrity: 75, d.RuleFollowing: 75, d.SafetyConsciousness: 75, d.Dependability: 75,
	}))
	assert.Equal(t, "Solid Foundation", ReliabilityBand(d.Scores{
		d.Integrity: 100, d.RuleFollowing: 100,
	}))
	assert.Equal(t, "Room to Grow", ReliabilityBand(d.Scores{d.Integrity: 100}))
}

func TestEncouragement(t *testing.T) {
	cases := []struct {
		current, total int
		want           string
	}{
		{0, 95, "Great start, let's discover your DNA 🧬"},
		{14, 100, "Great start, let's discover your DNA 🧬"},
		{15, 100, "You're building momentum 💪"},
		{30, 100, "Nearly halfway, your profile is taking shape"},
		{45, 100, "Over halfway! The insights get richer from here"},
		{60, 100, "Fantastic progress, you're in the home stretch"},
		{75, 100, "Almost there, just a few more questions ⭐"},
		{90, 100, "Final questions, your full DNA profile awaits! 🎉"},
		{62, 62, "Final questions, your full DNA profile awaits! 🎉"},
		{5, 0, "Great start, let's discover your DNA 🧬"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Encouragement(tc.current, tc.total), "%d/%d", tc.current, tc.total)
	}
}
