package dimension

var labels = map[Dimension]string{
	Autonomy:            "Autonomy",
	Collaboration:       "Collaboration",
	Precision:           "Precision",
	Leadership:          "Leadership",
	Adaptability:        "Adaptability",
	ProblemSolving:      "Problem Solving",
	AttentionToDetail:   "Attention to Detail",
	LearningSpeed:       "Learning Speed",
	PatternRecognition:  "Pattern Recognition",
	Concentration:       "Concentration",
	Extraversion:        "Extraversion",
	Conscientiousness:   "Conscientiousness",
	Openness:            "Openness",
	Agreeableness:       "Agreeableness",
	EmotionalStability:  "Emotional Stability",
	ReadingOthers:       "Reading Others",
	Empathy:             "Empathy",
	SelfRegulation:      "Self-Regulation",
	SocialAwareness:     "Social Awareness",
	Integrity:           "Integrity",
	RuleFollowing:       "Rule Following",
	SafetyConsciousness: "Safety Consciousness",
	Dependability:       "Dependability",
}

// phrases are the lower-case forms used inside reason sentences.
var phrases = map[Dimension]string{
	Autonomy:            "independence",
	Collaboration:       "teamwork",
	Precision:           "attention to detail",
	Leadership:          "leadership",
	Adaptability:        "adaptability",
	ProblemSolving:      "problem solving",
	AttentionToDetail:   "detail orientation",
	LearningSpeed:       "learning agility",
	PatternRecognition:  "pattern recognition",
	Concentration:       "focus",
	Extraversion:        "social energy",
	Conscientiousness:   "organisation",
	Openness:            "openness to experience",
	Agreeableness:       "cooperation",
	EmotionalStability:  "emotional resilience",
	ReadingOthers:       "reading people",
	Empathy:             "empathy",
	SelfRegulation:      "emotional control",
	SocialAwareness:     "cultural awareness",
	Integrity:           "integrity",
	RuleFollowing:       "rule adherence",
	SafetyConsciousness: "safety awareness",
	Dependability:       "reliability",
}

// Label returns the display label for d, falling back to the raw key.
func Label(d Dimension) string {
	if l, ok := labels[d]; ok {
		return l
	}
	return string(d)
}

// Phrase returns the human phrase for d, falling back to the raw key.
func Phrase(d Dimension) string {
	if p, ok := phrases[d]; ok {
		return p
	}
	return string(d)
}
