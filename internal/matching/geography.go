package matching

import (
	"fmt"

	d "github.com/spigell/career-compass/internal/dimension"
)

// Fit is the qualitative band of a geography match.
type Fit string

const (
	FitExcellent   Fit = "excellent"
	FitGood        Fit = "good"
	FitModerate    Fit = "moderate"
	FitChallenging Fit = "challenging"
)

// FitFor converts a geography fit score to its band.
func FitFor(score int) Fit {
	switch {
	case score >= 75:
		return FitExcellent
	case score >= 60:
		return FitGood
	case score >= 45:
		return FitModerate
	}
	return FitChallenging
}

// GeographyMatch is a candidate's fit with one region's work culture.
type GeographyMatch struct {
	Region   string `json:"region" yaml:"region"`
	Flag     string `json:"flag" yaml:"flag"`
	Fit      Fit    `json:"fit" yaml:"fit"`
	FitScore int    `json:"fit_score" yaml:"fit_score"`
	Reason   string `json:"reason" yaml:"reason"`
}

type regionProfile struct {
	Profile
	flag string
}

// MatchGeographies ranks the regional profiles by closeness to each region's ideal scores.
func MatchGeographies(scores d.Scores) []GeographyMatch {
	profiles := make([]Profile, len(regions))
	for i, r := range regions {
		profiles[i] = r.Profile
	}

	evals := Rank(profiles, scores, Proximity{})
	out := make([]GeographyMatch, 0, len(evals))
	for _, e := range evals {
		r := regions[e.Index]
		fit := FitFor(e.Fit)
		out = append(out, GeographyMatch{
			Region:   r.Name,
			Flag:     r.flag,
			Fit:      fit,
			FitScore: e.Fit,
			Reason:   geographyReason(r.Name, fit, e.ByGap()),
		})
	}
	return out
}

func geographyReason(region string, fit Fit, byGap []Contribution) string {
	if len(byGap) == 0 {
		return fmt.Sprintf("No cultural profile is registered for %s.", region)
	}
	closest := d.Phrase(byGap[0].Dimension)
	widest := d.Phrase(byGap[len(byGap)-1].Dimension)

	switch fit {
	case FitExcellent:
		return fmt.Sprintf("Your profile aligns strongly with %s's work culture, particularly your %s score.", region, closest)
	case FitGood:
		return fmt.Sprintf("Good cultural fit for %s. Your %s aligns well, with some areas to adapt.", region, closest)
	case FitModerate:
		return fmt.Sprintf("Workable fit, but %s's emphasis on %s may require adjustment.", region, widest)
	}
	return fmt.Sprintf("%s's work culture may be challenging, particularly the expectation around %s.", region, widest)
}

var regions = []regionProfile{
	{
		Profile: Profile{
			Name: "Ireland & UK",
			Terms: []Term{
				{Dimension: d.Collaboration, Ideal: 75, Weight: 0.20},
				{Dimension: d.EmotionalStability, Ideal: 70, Weight: 0.15},
				{Dimension: d.Agreeableness, Ideal: 70, Weight: 0.15},
				{Dimension: d.Dependability, Ideal: 75, Weight: 0.15},
				{Dimension: d.Conscientiousness, Ideal: 70, Weight: 0.10},
				{Dimension: d.Empathy, Ideal: 65, Weight: 0.10},
				{Dimension: d.Openness, Ideal: 60, Weight: 0.08},
				{Dimension: d.Adaptability, Ideal: 60, Weight: 0.07},
			},
		},
		flag: "🇮🇪",
	},
	{
		Profile: Profile{
			Name: "USA East Coast",
			Terms: []Term{
				{Dimension: d.Adaptability, Ideal: 85, Weight: 0.20},
				{Dimension: d.EmotionalStability, Ideal: 80, Weight: 0.15},
				{Dimension: d.Concentration, Ideal: 80, Weight: 0.15},
				{Dimension: d.Extraversion, Ideal: 75, Weight: 0.12},
				{Dimension: d.ProblemSolving, Ideal: 80, Weight: 0.10},
				{Dimension: d.Leadership, Ideal: 70, Weight: 0.10},
				{Dimension: d.Dependability, Ideal: 75, Weight: 0.10},
				{Dimension: d.Conscientiousness, Ideal: 70, Weight: 0.08},
			},
		},
		flag: "🇺🇸",
	},
	{
		Profile: Profile{
			Name: "USA West Coast",
			Terms: []Term{
				{Dimension: d.Openness, Ideal: 85, Weight: 0.20},
				{Dimension: d.Autonomy, Ideal: 80, Weight: 0.18},
				{Dimension: d.Adaptability, Ideal: 75, Weight: 0.15},
				{Dimension: d.Extraversion, Ideal: 70, Weight: 0.12},
				{Dimension: d.Collaboration, Ideal: 65, Weight: 0.10},
				{Dimension: d.EmotionalStability, Ideal: 70, Weight: 0.10},
				{Dimension: d.ProblemSolving, Ideal: 75, Weight: 0.08},
				{Dimension: d.LearningSpeed, Ideal: 75, Weight: 0.07},
			},
		},
		flag: "🌴",
	},
	{
		Profile: Profile{
			Name: "UAE & Gulf States",
			Terms: []Term{
				{Dimension: d.Precision, Ideal: 90, Weight: 0.18},
				{Dimension: d.SelfRegulation, Ideal: 85, Weight: 0.15},
				{Dimension: d.SocialAwareness, Ideal: 85, Weight: 0.15},
				{Dimension: d.RuleFollowing, Ideal: 80, Weight: 0.12},
				{Dimension: d.Conscientiousness, Ideal: 85, Weight: 0.10},
				{Dimension: d.Integrity, Ideal: 85, Weight: 0.10},
				{Dimension: d.ReadingOthers, Ideal: 80, Weight: 0.08},
				{Dimension: d.Adaptability, Ideal: 75, Weight: 0.07},
				{Dimension: d.EmotionalStability, Ideal: 80, Weight: 0.05},
			},
		},
		flag: "🇦🇪",
	},
	{
		Profile: Profile{
			Name: "Asia-Pacific",
			Terms: []Term{
				{Dimension: d.SocialAwareness, Ideal: 90, Weight: 0.20},
				{Dimension: d.RuleFollowing, Ideal: 85, Weight: 0.15},
				{Dimension: d.Collaboration, Ideal: 80, Weight: 0.15},
				{Dimension: d.SelfRegulation, Ideal: 80, Weight: 0.12},
				{Dimension: d.Precision, Ideal: 80, Weight: 0.10},
				{Dimension: d.Agreeableness, Ideal: 75, Weight: 0.10},
				{Dimension: d.Conscientiousness, Ideal: 80, Weight: 0.08},
				{Dimension: d.ReadingOthers, Ideal: 75, Weight: 0.05},
				{Dimension: d.Adaptability, Ideal: 70, Weight: 0.05},
			},
		},
		flag: "🌏",
	},
}
