// Package assessment holds respondent answers and the resumable session around them.
package assessment

import (
	"sort"
	"strconv"
)

// Kind tells which payload of an Answer is set.
type Kind int

const (
	KindChoice Kind = iota + 1
	KindSlider
	KindRanking
)

func (k Kind) String() string {
	switch k {
	case KindChoice:
		return "choice"
	case KindSlider:
		return "slider"
	case KindRanking:
		return "ranking"
	}
	return "unknown"
}

// Answer is a respondent's response to one question.
type Answer struct {
	Kind  Kind
	Label string
	Value int
	Order []string
}

// Choice answers a multiple-choice question with the option label.
func Choice(label string) Answer { return Answer{Kind: KindChoice, Label: label} }

// Slider answers a slider question with a position in [0,10].
func Slider(value int) Answer { return Answer{Kind: KindSlider, Value: value} }

// Ranking answers a ranking question with item texts, most preferred first.
func Ranking(order ...string) Answer {
	return Answer{Kind: KindRanking, Order: append([]string(nil), order...)}
}

// Raw returns the plain value stored in session files.
func (a Answer) Raw() any {
	switch a.Kind {
	case KindChoice:
		return a.Label
	case KindSlider:
		return a.Value
	case KindRanking:
		return append([]string(nil), a.Order...)
	}
	return nil
}

// AnswerSet maps question ids to answers. A missing key means unanswered.
type AnswerSet map[int]Answer

// Get returns the answer for id.
func (s AnswerSet) Get(id int) (Answer, bool) {
	if s == nil {
		return Answer{}, false
	}
	a, ok := s[id]
	return a, ok
}

// IDs returns the answered question ids in ascending order.
func (s AnswerSet) IDs() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Clone returns an independent copy.
func (s AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(s))
	for id, a := range s {
		a.Order = append([]string(nil), a.Order...)
		out[id] = a
	}
	return out
}

// Raw converts the set into the plain map written to session files.
func (s AnswerSet) Raw() map[string]any {
	out := make(map[string]any, len(s))
	for id, a := range s {
		out[strconv.Itoa(id)] = a.Raw()
	}
	return out
}
