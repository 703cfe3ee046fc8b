package matching

import (
	d "github.com/spigell/career-compass/internal/dimension"
)

const (
	departmentReasonMin   = 50
	departmentReasonCount = 3
)

// DepartmentFit is a candidate's fit with one hotel department.
type DepartmentFit struct {
	Department string   `json:"department" yaml:"department"`
	Emoji      string   `json:"emoji" yaml:"emoji"`
	FitScore   int      `json:"fit_score" yaml:"fit_score"`
	Stars      int      `json:"stars" yaml:"stars"`
	Rank       int      `json:"rank" yaml:"rank"`
	TopReasons []string `json:"top_reasons" yaml:"top_reasons"`
}

type departmentProfile struct {
	Profile
	emoji   string
	reasons map[d.Dimension]string
}

// MatchDepartments ranks the eight department profiles against scores and
// numbers them 1..N in that order.
func MatchDepartments(scores d.Scores) []DepartmentFit {
	profiles := make([]Profile, len(departments))
	for i, p := range departments {
		profiles[i] = p.Profile
	}

	evals := Rank(profiles, scores, Additive{})
	out := make([]DepartmentFit, 0, len(evals))
	for i, e := range evals {
		p := departments[e.Index]

		reasons := []string{}
		for j, c := range e.Contributions {
			if j >= departmentReasonCount {
				break
			}
			if c.Score >= departmentReasonMin {
				reasons = append(reasons, labelFor(p.reasons, c.Dimension))
			}
		}

		out = append(out, DepartmentFit{
			Department: p.Name,
			Emoji:      p.emoji,
			FitScore:   e.Fit,
			Stars:      Stars(e.Fit),
			Rank:       i + 1,
			TopReasons: reasons,
		})
	}
	return out
}

var departments = []departmentProfile{
	{
		Profile: Profile{
			Name: "Guest Relations / Concierge",
			Terms: []Term{
				{Dimension: d.Empathy, Weight: 0.18}, {Dimension: d.ReadingOthers, Weight: 0.15},
				{Dimension: d.Extraversion, Weight: 0.12}, {Dimension: d.SocialAwareness, Weight: 0.10},
				{Dimension: d.ProblemSolving, Weight: 0.10}, {Dimension: d.SelfRegulation, Weight: 0.08},
				{Dimension: d.Openness, Weight: 0.07}, {Dimension: d.Collaboration, Weight: 0.07},
				{Dimension: d.Conscientiousness, Weight: 0.05}, {Dimension: d.Adaptability, Weight: 0.05},
				{Dimension: d.EmotionalStability, Weight: 0.03},
			},
		},
		emoji: "🛎️",
		reasons: map[d.Dimension]string{
			d.Empathy:         "Natural ability to connect with guests",
			d.ReadingOthers:   "Reads unspoken guest needs",
			d.Extraversion:    "Energised by guest interaction",
			d.SocialAwareness: "Culturally sensitive service",
			d.ProblemSolving:  "Creative solutions for guest requests",
		},
	},
	{
		Profile: Profile{
			Name: "Front Office Management",
			Terms: []Term{
				{Dimension: d.Leadership, Weight: 0.18}, {Dimension: d.Conscientiousness, Weight: 0.15},
				{Dimension: d.Precision, Weight: 0.12}, {Dimension: d.EmotionalStability, Weight: 0.10},
				{Dimension: d.ProblemSolving, Weight: 0.10}, {Dimension: d.Collaboration, Weight: 0.08},
				{Dimension: d.AttentionToDetail, Weight: 0.07}, {Dimension: d.Dependability, Weight: 0.07},
				{Dimension: d.SelfRegulation, Weight: 0.05}, {Dimension: d.Integrity, Weight: 0.05},
				{Dimension: d.Concentration, Weight: 0.03},
			},
		},
		emoji: "🏨",
		reasons: map[d.Dimension]string{
			d.Leadership:         "Strong team leadership",
			d.Conscientiousness:  "Organised and systematic",
			d.Precision:          "High operational standards",
			d.EmotionalStability: "Calm during check-in rushes",
			d.ProblemSolving:     "Quick decision-making",
		},
	},
	{
		Profile: Profile{
			Name: "Events & Banqueting",
			Terms: []Term{
				{Dimension: d.Collaboration, Weight: 0.18}, {Dimension: d.Adaptability, Weight: 0.15},
				{Dimension: d.AttentionToDetail, Weight: 0.12}, {Dimension: d.ProblemSolving, Weight: 0.10},
				{Dimension: d.Concentration, Weight: 0.10}, {Dimension: d.Conscientiousness, Weight: 0.08},
				{Dimension: d.Openness, Weight: 0.07}, {Dimension: d.Extraversion, Weight: 0.07},
				{Dimension: d.Leadership, Weight: 0.05}, {Dimension: d.EmotionalStability, Weight: 0.05},
				{Dimension: d.Dependability, Weight: 0.03},
			},
		},
		emoji: "🎉",
		reasons: map[d.Dimension]string{
			d.Collaboration:     "Excellent team coordinator",
			d.Adaptability:      "Handles event surprises gracefully",
			d.AttentionToDetail: "Meticulous event execution",
			d.ProblemSolving:    "Quick fixes under pressure",
			d.Concentration:     "Stays focused during complex setups",
		},
	},
	{
		Profile: Profile{
			Name: "Food & Beverage Service",
			Terms: []Term{
				{Dimension: d.Extraversion, Weight: 0.15}, {Dimension: d.Adaptability, Weight: 0.15},
				{Dimension: d.Concentration, Weight: 0.12}, {Dimension: d.EmotionalStability, Weight: 0.10},
				{Dimension: d.Collaboration, Weight: 0.10}, {Dimension: d.SelfRegulation, Weight: 0.08},
				{Dimension: d.Dependability, Weight: 0.08}, {Dimension: d.LearningSpeed, Weight: 0.07},
				{Dimension: d.ReadingOthers, Weight: 0.05}, {Dimension: d.Empathy, Weight: 0.05},
				{Dimension: d.SafetyConsciousness, Weight: 0.05},
			},
		},
		emoji: "🍽️",
		reasons: map[d.Dimension]string{
			d.Extraversion:       "Natural front-of-house energy",
			d.Adaptability:       "Handles busy service with ease",
			d.Concentration:      "Manages multiple tables flawlessly",
			d.EmotionalStability: "Stays composed during rush",
			d.Collaboration:      "Strong team player on the floor",
		},
	},
	{
		Profile: Profile{
			Name: "Housekeeping",
			Terms: []Term{
				{Dimension: d.AttentionToDetail, Weight: 0.20}, {Dimension: d.Conscientiousness, Weight: 0.18},
				{Dimension: d.Dependability, Weight: 0.15}, {Dimension: d.RuleFollowing, Weight: 0.10},
				{Dimension: d.SafetyConsciousness, Weight: 0.10}, {Dimension: d.Autonomy, Weight: 0.08},
				{Dimension: d.Concentration, Weight: 0.07}, {Dimension: d.Integrity, Weight: 0.05},
				{Dimension: d.Adaptability, Weight: 0.04}, {Dimension: d.Collaboration, Weight: 0.03},
			},
		},
		emoji: "🛏️",
		reasons: map[d.Dimension]string{
			d.AttentionToDetail: "Eagle eye for cleanliness standards",
			d.Conscientiousness: "Consistently thorough work",
			d.Dependability:     "Reliable and punctual",
			d.RuleFollowing:     "Follows procedures exactly",
			d.Autonomy:          "Works well independently",
		},
	},
	{
		Profile: Profile{
			Name: "Revenue Management",
			Terms: []Term{
				{Dimension: d.PatternRecognition, Weight: 0.20}, {Dimension: d.Precision, Weight: 0.18},
				{Dimension: d.ProblemSolving, Weight: 0.15}, {Dimension: d.AttentionToDetail, Weight: 0.12},
				{Dimension: d.Concentration, Weight: 0.10}, {Dimension: d.Autonomy, Weight: 0.08},
				{Dimension: d.Conscientiousness, Weight: 0.07}, {Dimension: d.LearningSpeed, Weight: 0.05},
				{Dimension: d.Openness, Weight: 0.03}, {Dimension: d.Adaptability, Weight: 0.02},
			},
		},
		emoji: "📊",
		reasons: map[d.Dimension]string{
			d.PatternRecognition: "Spots revenue trends naturally",
			d.Precision:          "Data-driven decision maker",
			d.ProblemSolving:     "Analytical thinker",
			d.AttentionToDetail:  "Catches pricing anomalies",
			d.Concentration:      "Deep focus on complex data",
		},
	},
	{
		Profile: Profile{
			Name: "Kitchen / Culinary",
			Terms: []Term{
				{Dimension: d.Precision, Weight: 0.18}, {Dimension: d.Concentration, Weight: 0.15},
				{Dimension: d.SafetyConsciousness, Weight: 0.12}, {Dimension: d.Adaptability, Weight: 0.10},
				{Dimension: d.RuleFollowing, Weight: 0.10}, {Dimension: d.EmotionalStability, Weight: 0.08},
				{Dimension: d.LearningSpeed, Weight: 0.07}, {Dimension: d.Dependability, Weight: 0.07},
				{Dimension: d.Autonomy, Weight: 0.05}, {Dimension: d.Collaboration, Weight: 0.05},
				{Dimension: d.Conscientiousness, Weight: 0.03},
			},
		},
		emoji: "👨‍🍳",
		reasons: map[d.Dimension]string{
			d.Precision:           "Exacting standards in execution",
			d.Concentration:       "Laser focus during service",
			d.SafetyConsciousness: "Food safety priority",
			d.Adaptability:        "Handles kitchen pressure",
			d.RuleFollowing:       "Respects brigade hierarchy",
		},
	},
	{
		Profile: Profile{
			Name: "Spa & Wellness",
			Terms: []Term{
				{Dimension: d.Empathy, Weight: 0.20}, {Dimension: d.ReadingOthers, Weight: 0.15},
				{Dimension: d.SelfRegulation, Weight: 0.12}, {Dimension: d.EmotionalStability, Weight: 0.10},
				{Dimension: d.Conscientiousness, Weight: 0.10}, {Dimension: d.AttentionToDetail, Weight: 0.08},
				{Dimension: d.Agreeableness, Weight: 0.07}, {Dimension: d.Openness, Weight: 0.07},
				{Dimension: d.Collaboration, Weight: 0.05}, {Dimension: d.Integrity, Weight: 0.03},
				{Dimension: d.Dependability, Weight: 0.03},
			},
		},
		emoji: "🧖",
		reasons: map[d.Dimension]string{
			d.Empathy:            "Natural healer energy",
			d.ReadingOthers:      "Reads client comfort levels",
			d.SelfRegulation:     "Creates calm, safe space",
			d.EmotionalStability: "Steady, reassuring presence",
			d.Conscientiousness:  "Consistent service quality",
		},
	},
}
