package scoring

// Archetype is one of the three work-style labels derived from base scores.
type Archetype string

const (
	Lion   Archetype = "lion"
	Whale  Archetype = "whale"
	Falcon Archetype = "falcon"
)

// Archetypes returns every archetype in classification order. Ties keep this order.
func Archetypes() []Archetype { return []Archetype{Lion, Whale, Falcon} }

// Profile is the display material for an archetype.
type Profile struct {
	Archetype   Archetype `json:"archetype" yaml:"archetype"`
	Name        string    `json:"name" yaml:"name"`
	Emoji       string    `json:"emoji" yaml:"emoji"`
	Tagline     string    `json:"tagline" yaml:"tagline"`
	Traits      []string  `json:"traits" yaml:"traits"`
	Strengths   []string  `json:"strengths" yaml:"strengths"`
	WorkStyle   string    `json:"work_style" yaml:"work_style"`
	ThrivesWhen []string  `json:"thrives_when" yaml:"thrives_when"`
	Challenges  []string  `json:"challenges" yaml:"challenges"`
	CareerPaths []string  `json:"career_paths" yaml:"career_paths"`
}

var profiles = map[Archetype]Profile{
	Lion: {
		Archetype: Lion,
		Name:      "Lion",
		Emoji:     "🦁",
		Tagline:   "The Autonomous Leader",
		Traits:    []string{"Decisive", "Independent", "Visionary"},
		Strengths: []string{
			"Takes ownership and drives results without hand-holding",
			"Makes confident decisions under pressure",
			"Inspires others through bold action",
			"Sets ambitious goals and pursues them relentlessly",
			"Naturally gravitates toward leadership positions",
		},
		WorkStyle: "Lions prefer environments where they have full autonomy to make decisions and drive outcomes. " +
			"They work best when given a clear mission and the freedom to execute it their way.",
		ThrivesWhen: []string{
			"Given full ownership of projects or initiatives",
			"Facing ambitious, high-stakes challenges",
			"Leading teams toward a compelling vision",
		},
		Challenges: []string{
			"May overlook team input in pursuit of speed",
			"Can struggle with highly structured, process-heavy environments",
			"Might take on too much responsibility alone",
		},
		CareerPaths: []string{
			"General Manager", "Startup Founder", "Head of Operations",
			"Executive Chef", "Regional Director", "Entrepreneur",
		},
	},
	Whale: {
		Archetype: Whale,
		Name:      "Whale",
		Emoji:     "🐋",
		Tagline:   "The Collaborative Anchor",
		Traits:    []string{"Empathetic", "Supportive", "Adaptive"},
		Strengths: []string{
			"Builds deep, lasting relationships across teams",
			"Creates inclusive environments where everyone contributes",
			"Adapts quickly to changing circumstances and needs",
			"Brings calm stability during turbulent times",
			"Excels at mentoring and developing others",
		},
		WorkStyle: "Whales hold teams together. They thrive where relationships matter and bring " +
			"emotional intelligence and adaptability to periods of change.",
		ThrivesWhen: []string{
			"Working in tight-knit, supportive team environments",
			"Helping others grow and reach their potential",
			"Navigating change alongside trusted colleagues",
		},
		Challenges: []string{
			"May avoid necessary conflict or difficult decisions",
			"Can prioritize harmony over efficiency",
			"Might undervalue their own contributions",
		},
		CareerPaths: []string{
			"HR Director", "Team Lead", "Training Manager",
			"Guest Relations Manager", "People & Culture Head", "Community Manager",
		},
	},
	Falcon: {
		Archetype: Falcon,
		Name:      "Falcon",
		Emoji:     "🦅",
		Tagline:   "The Precision Specialist",
		Traits:    []string{"Detail-oriented", "Systematic", "Expert"},
		Strengths: []string{
			"Delivers consistently flawless work with meticulous attention",
			"Creates and optimizes systems that improve efficiency",
			"Builds deep expertise that others rely on",
			"Identifies problems before they escalate",
			"Maintains high standards even under pressure",
		},
		WorkStyle: "Falcons value expertise and systematic approaches. They build reliable processes, " +
			"keep the highest standards and prefer clear expectations.",
		ThrivesWhen: []string{
			"Working within clear systems and expectations",
			"Applying deep expertise to complex challenges",
			"Optimizing processes for peak efficiency",
		},
		Challenges: []string{
			"May resist change if processes are already working",
			"Can be overly critical of work that doesn't meet their standards",
			"Might struggle in highly ambiguous, unstructured environments",
		},
		CareerPaths: []string{
			"Quality Assurance Manager", "Head Sommelier", "Financial Controller",
			"Revenue Manager", "Compliance Director", "Technical Specialist",
		},
	},
}

// Describe returns the display profile for a. Unknown archetypes get a bare profile.
func Describe(a Archetype) Profile {
	p, ok := profiles[a]
	if !ok {
		return Profile{Archetype: a, Name: string(a)}
	}
	p.Traits = append([]string(nil), p.Traits...)
	p.Strengths = append([]string(nil), p.Strengths...)
	p.ThrivesWhen = append([]string(nil), p.ThrivesWhen...)
	p.Challenges = append([]string(nil), p.Challenges...)
	p.CareerPaths = append([]string(nil), p.CareerPaths...)
	return p
}
