package matching

import (
	d "github.com/spigell/career-compass/internal/dimension"
)

const (
	sectorStrengthMin   = 60
	sectorGrowthMax     = 50
	sectorGrowthWeight  = 0.08
	sectorStrengthCount = 3
	sectorGrowthCount   = 2
)

// SectorMatch is a candidate's fit with one hospitality sector.
type SectorMatch struct {
	Sector       string   `json:"sector" yaml:"sector"`
	Description  string   `json:"description" yaml:"description"`
	FitScore     int      `json:"fit_score" yaml:"fit_score"`
	Stars        int      `json:"stars" yaml:"stars"`
	TopStrengths []string `json:"top_strengths" yaml:"top_strengths"`
	GrowthAreas  []string `json:"growth_areas" yaml:"growth_areas"`
}

type sectorProfile struct {
	Profile
	description string
	strengths   map[d.Dimension]string
	growth      map[d.Dimension]string
}

// MatchSectors ranks the six sector profiles against scores.
func MatchSectors(scores d.Scores) []SectorMatch {
	profiles := make([]Profile, len(sectors))
	for i, s := range sectors {
		profiles[i] = s.Profile
	}

	evals := Rank(profiles, scores, Additive{})
	out := make([]SectorMatch, 0, len(evals))
	for _, e := range evals {
		s := sectors[e.Index]

		strengths := []string{}
		for i, c := range e.Contributions {
			if i >= sectorStrengthCount {
				break
			}
			if c.Score >= sectorStrengthMin {
				strengths = append(strengths, labelFor(s.strengths, c.Dimension))
			}
		}

		growth := []string{}
		for _, c := range e.Contributions {
			if len(growth) == sectorGrowthCount {
				break
			}
			if c.Score < sectorGrowthMax && c.Weight >= sectorGrowthWeight {
				growth = append(growth, labelFor(s.growth, c.Dimension))
			}
		}

		out = append(out, SectorMatch{
			Sector:       s.Name,
			Description:  s.description,
			FitScore:     e.Fit,
			Stars:        Stars(e.Fit),
			TopStrengths: strengths,
			GrowthAreas:  growth,
		})
	}
	return out
}

var sectors = []sectorProfile{
	{
		Profile: Profile{
			Name: "Luxury Hotels & Resorts",
			Terms: []Term{
				{Dimension: d.Precision, Weight: 0.15}, {Dimension: d.AttentionToDetail, Weight: 0.15},
				{Dimension: d.Empathy, Weight: 0.12}, {Dimension: d.ReadingOthers, Weight: 0.10},
				{Dimension: d.Conscientiousness, Weight: 0.10}, {Dimension: d.EmotionalStability, Weight: 0.08},
				{Dimension: d.SelfRegulation, Weight: 0.08}, {Dimension: d.SocialAwareness, Weight: 0.07},
				{Dimension: d.Collaboration, Weight: 0.05}, {Dimension: d.Integrity, Weight: 0.05},
				{Dimension: d.Dependability, Weight: 0.05},
			},
		},
		description: "5-star properties where detail and guest experience are paramount",
		strengths: map[d.Dimension]string{
			d.Precision:         "Exceptional eye for detail",
			d.AttentionToDetail: "Meticulous standards",
			d.Empathy:           "Intuitive guest care",
			d.ReadingOthers:     "Reads guest needs before they ask",
			d.Conscientiousness: "Consistent high standards",
			d.SelfRegulation:    "Grace under pressure",
			d.SocialAwareness:   "Cultural sensitivity",
		},
		growth: map[d.Dimension]string{
			d.Precision:         "Detail orientation needs development",
			d.AttentionToDetail: "May miss finer details",
			d.Empathy:           "Guest empathy could deepen",
			d.SelfRegulation:    "Emotional control under pressure",
		},
	},
	{
		Profile: Profile{
			Name: "Quick-Service Restaurants (QSR)",
			Terms: []Term{
				{Dimension: d.Adaptability, Weight: 0.18}, {Dimension: d.Concentration, Weight: 0.15},
				{Dimension: d.EmotionalStability, Weight: 0.12}, {Dimension: d.Dependability, Weight: 0.12},
				{Dimension: d.LearningSpeed, Weight: 0.10}, {Dimension: d.Collaboration, Weight: 0.08},
				{Dimension: d.RuleFollowing, Weight: 0.08}, {Dimension: d.SafetyConsciousness, Weight: 0.07},
				{Dimension: d.Conscientiousness, Weight: 0.05}, {Dimension: d.Extraversion, Weight: 0.05},
			},
		},
		description: "Fast-paced, high-volume environments where speed and consistency matter",
		strengths: map[d.Dimension]string{
			d.Adaptability:       "Thrives in fast-changing environments",
			d.Concentration:      "Stays focused during rush",
			d.EmotionalStability: "Handles pressure well",
			d.Dependability:      "Reliable under volume",
			d.LearningSpeed:      "Picks up systems quickly",
			d.RuleFollowing:      "Follows procedures consistently",
		},
		growth: map[d.Dimension]string{
			d.Adaptability:       "May struggle with rapid pace changes",
			d.Concentration:      "Focus under pressure needs work",
			d.EmotionalStability: "Stress management could improve",
		},
	},
	{
		Profile: Profile{
			Name: "Private Members' Clubs",
			Terms: []Term{
				{Dimension: d.Empathy, Weight: 0.15}, {Dimension: d.SocialAwareness, Weight: 0.15},
				{Dimension: d.ReadingOthers, Weight: 0.12}, {Dimension: d.SelfRegulation, Weight: 0.10},
				{Dimension: d.Integrity, Weight: 0.10}, {Dimension: d.Collaboration, Weight: 0.08},
				{Dimension: d.Conscientiousness, Weight: 0.08}, {Dimension: d.EmotionalStability, Weight: 0.07},
				{Dimension: d.Precision, Weight: 0.05}, {Dimension: d.Dependability, Weight: 0.05},
				{Dimension: d.Extraversion, Weight: 0.05},
			},
		},
		description: "Exclusive environments where relationship-building and discretion are key",
		strengths: map[d.Dimension]string{
			d.Empathy:         "Deep understanding of member needs",
			d.SocialAwareness: "Navigates social dynamics expertly",
			d.ReadingOthers:   "Anticipates preferences",
			d.SelfRegulation:  "Unflappable discretion",
			d.Integrity:       "Trusted with sensitive information",
		},
		growth: map[d.Dimension]string{
			d.SocialAwareness: "Social navigation skills need development",
			d.Empathy:         "Member relationship depth could grow",
			d.Integrity:       "Trust-building may take time",
		},
	},
	{
		Profile: Profile{
			Name: "Cruise Lines",
			Terms: []Term{
				{Dimension: d.Adaptability, Weight: 0.18}, {Dimension: d.Collaboration, Weight: 0.15},
				{Dimension: d.EmotionalStability, Weight: 0.12}, {Dimension: d.Extraversion, Weight: 0.10},
				{Dimension: d.Openness, Weight: 0.10}, {Dimension: d.SelfRegulation, Weight: 0.08},
				{Dimension: d.Dependability, Weight: 0.07}, {Dimension: d.SocialAwareness, Weight: 0.07},
				{Dimension: d.Agreeableness, Weight: 0.05}, {Dimension: d.SafetyConsciousness, Weight: 0.05},
				{Dimension: d.Concentration, Weight: 0.03},
			},
		},
		description: "Unique environment with confined living, diverse guests, and extended rotations",
		strengths: map[d.Dimension]string{
			d.Adaptability:       "Thrives in dynamic, changing environments",
			d.Collaboration:      "Excellent team player in close quarters",
			d.EmotionalStability: "Handles isolation and long rotations",
			d.Extraversion:       "Energised by diverse guest interactions",
			d.Openness:           "Embraces multicultural environments",
		},
		growth: map[d.Dimension]string{
			d.Adaptability:       "Extended rotations may be challenging",
			d.EmotionalStability: "Confined living requires resilience",
			d.Collaboration:      "Close-quarters teamwork needs development",
		},
	},
	{
		Profile: Profile{
			Name: "Airlines & Aviation",
			Terms: []Term{
				{Dimension: d.SafetyConsciousness, Weight: 0.18}, {Dimension: d.RuleFollowing, Weight: 0.15},
				{Dimension: d.Precision, Weight: 0.12}, {Dimension: d.SelfRegulation, Weight: 0.10},
				{Dimension: d.EmotionalStability, Weight: 0.10}, {Dimension: d.AttentionToDetail, Weight: 0.08},
				{Dimension: d.Dependability, Weight: 0.07}, {Dimension: d.SocialAwareness, Weight: 0.07},
				{Dimension: d.Adaptability, Weight: 0.05}, {Dimension: d.Extraversion, Weight: 0.05},
				{Dimension: d.Integrity, Weight: 0.03},
			},
		},
		description: "Safety-critical, protocol-driven environment with global exposure",
		strengths: map[d.Dimension]string{
			d.SafetyConsciousness: "Safety-first mindset",
			d.RuleFollowing:       "Excellent protocol adherence",
			d.Precision:           "Detail-oriented execution",
			d.SelfRegulation:      "Calm in high-stakes situations",
			d.EmotionalStability:  "Composed under pressure",
		},
		growth: map[d.Dimension]string{
			d.SafetyConsciousness: "Safety awareness needs strengthening",
			d.RuleFollowing:       "Protocol adherence could improve",
			d.Precision:           "Attention to safety details",
		},
	},
	{
		Profile: Profile{
			Name: "Events & Conferences",
			Terms: []Term{
				{Dimension: d.Collaboration, Weight: 0.15}, {Dimension: d.Adaptability, Weight: 0.15},
				{Dimension: d.ProblemSolving, Weight: 0.12}, {Dimension: d.Openness, Weight: 0.10},
				{Dimension: d.Extraversion, Weight: 0.10}, {Dimension: d.Concentration, Weight: 0.08},
				{Dimension: d.Leadership, Weight: 0.07}, {Dimension: d.Conscientiousness, Weight: 0.07},
				{Dimension: d.AttentionToDetail, Weight: 0.06}, {Dimension: d.EmotionalStability, Weight: 0.05},
				{Dimension: d.Dependability, Weight: 0.05},
			},
		},
		description: "Project-based, deadline-driven with high collaboration and creativity",
		strengths: map[d.Dimension]string{
			d.Collaboration:  "Excellent team coordinator",
			d.Adaptability:   "Handles last-minute changes gracefully",
			d.ProblemSolving: "Creative problem solver",
			d.Openness:       "Innovative approach to events",
			d.Extraversion:   "Natural networker and host",
		},
		growth: map[d.Dimension]string{
			d.Collaboration:  "Team coordination skills need development",
			d.Adaptability:   "May struggle with constant change",
			d.ProblemSolving: "Creative problem-solving could grow",
		},
	},
}
