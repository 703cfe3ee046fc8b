// Package milestone produces the progress reveals shown while a respondent
// works through the questionnaire.
package milestone

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spigell/career-compass/internal/dimension"
	"github.com/spigell/career-compass/internal/scoring"
)

// Milestone is a reveal unlocked after a given number of answered questions.
type Milestone struct {
	After    int    `json:"after" yaml:"after"`
	Title    string `json:"title" yaml:"title"`
	Emoji    string `json:"emoji" yaml:"emoji"`
	Headline string `json:"headline" yaml:"headline"`
	Detail   string `json:"detail" yaml:"detail"`
}

type definition struct {
	after   int
	title   string
	emoji   string
	content func(scores dimension.Scores, a scoring.Archetype) (string, string)
}

var (
	cognitive   = []dimension.Dimension{dimension.ProblemSolving, dimension.AttentionToDetail, dimension.LearningSpeed, dimension.PatternRecognition, dimension.Concentration}
	personality = []dimension.Dimension{dimension.Extraversion, dimension.Conscientiousness, dimension.Openness, dimension.Agreeableness, dimension.EmotionalStability}
	// EQ lists the emotional-intelligence dimensions.
	EQ          = []dimension.Dimension{dimension.ReadingOthers, dimension.Empathy, dimension.SelfRegulation, dimension.SocialAwareness}
	reliability = []dimension.Dimension{dimension.Integrity, dimension.RuleFollowing, dimension.SafetyConsciousness, dimension.Dependability}
)

var definitions = []definition{
	{
		after: 12, title: "Archetype Discovered!", emoji: "🧬",
		content: func(_ dimension.Scores, a scoring.Archetype) (string, string) {
			if a == "" {
				return "You're a Unknown!", ""
			}
			p := scoring.Describe(a)
			detail := p.Tagline
			if len(p.Traits) > 0 {
				detail = fmt.Sprintf("%s: %s.", p.Tagline, joinLower(p.Traits))
			}
			return fmt.Sprintf("You're a %s!", p.Name), detail
		},
	},
	{
		after: 27, title: "Cognitive Profile Unlocked!", emoji: "🧠",
		content: func(s dimension.Scores, _ scoring.Archetype) (string, string) {
			top := inOrder(s, cognitive)
			first, second := dimension.Label(top[0].Dimension), dimension.Label(top[1].Dimension)
			return fmt.Sprintf("Top strengths: %s & %s", first, second),
				fmt.Sprintf("Your cognitive profile is taking shape. %s is your standout ability.", first)
		},
	},
	{
		after: 47, title: "Personality Profile Complete!", emoji: "🎭",
		content: func(s dimension.Scores, _ scoring.Archetype) (string, string) {
			top := inOrder(s, personality)
			return fmt.Sprintf("High %s, High %s", dimension.Label(top[0].Dimension), dimension.Label(top[1].Dimension)),
				"Your personality profile reveals what makes you tick in a team environment."
		},
	},
	{
		after: 62, title: "EQ Profile Unlocked!", emoji: "💡",
		content: func(s dimension.Scores, _ scoring.Archetype) (string, string) {
			return fmt.Sprintf("Your EQ superpower: %s", dimension.Label(Superpower(s))),
				"Emotional intelligence is what separates good hospitality from great hospitality."
		},
	},
	{
		after: 77, title: "Reliability Score Calculated!", emoji: "🛡️",
		content: func(s dimension.Scores, _ scoring.Archetype) (string, string) {
			return ReliabilityBand(s),
				"Your reliability profile helps properties understand your professional standards."
		},
	},
}

// Reached returns every milestone unlocked after answered questions, in order.
func Reached(answered int, scores dimension.Scores, a scoring.Archetype) []Milestone {
	out := []Milestone{}
	for _, def := range definitions {
		if answered < def.after {
			break
		}
		headline, detail := def.content(scores, a)
		out = append(out, Milestone{
			After:    def.after,
			Title:    def.title,
			Emoji:    def.emoji,
			Headline: headline,
			Detail:   detail,
		})
	}
	return out
}

// At returns the milestone unlocked exactly after question n, if any.
func At(n int, scores dimension.Scores, a scoring.Archetype) (Milestone, bool) {
	for _, def := range definitions {
		if def.after == n {
			ms := Reached(n, scores, a)
			return ms[len(ms)-1], true
		}
	}
	return Milestone{}, false
}

// Superpower is the highest EQ dimension, ties broken by label.
func Superpower(scores dimension.Scores) dimension.Dimension {
	return scores.Top(1, EQ...)[0].Dimension
}

// ReliabilityBand names the band of the rounded reliability average.
func ReliabilityBand(scores dimension.Scores) string {
	sum := 0
	for _, d := range reliability {
		sum += scores.Get(d)
	}
	avg := int(math.Round(float64(sum) / float64(len(reliability))))
	switch {
	case avg >= 75:
		return "Highly Reliable Professional"
	case avg >= 50:
		return "Solid Foundation"
	}
	return "Room to Grow"
}

// Encouragement returns the progress message for current of total answered.
func Encouragement(current, total int) string {
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(current) / float64(total) * 100))
	}
	switch {
	case percent < 15:
		return "Great start, let's discover your DNA 🧬"
	case percent < 30:
		return "You're building momentum 💪"
	case percent < 45:
		return "Nearly halfway, your profile is taking shape"
	case percent < 60:
		return "Over halfway! The insights get richer from here"
	case percent < 75:
		return "Fantastic progress, you're in the home stretch"
	case percent < 90:
		return "Almost there, just a few more questions ⭐"
	}
	return "Final questions, your full DNA profile awaits! 🎉"
}

// inOrder sorts dims by score keeping list order on ties.
func inOrder(s dimension.Scores, dims []dimension.Dimension) []dimension.Ranked {
	out := make([]dimension.Ranked, 0, len(dims))
	for _, d := range dims {
		out = append(out, dimension.Ranked{Dimension: d, Score: s.Get(d)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func joinLower(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return strings.Join(out, ", ")
}
