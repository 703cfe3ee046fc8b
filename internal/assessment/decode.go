package assessment

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/spigell/career-compass/internal/bank"
)

// Skipped records a raw answer that could not be decoded.
type Skipped struct {
	Key    string
	Reason string
}

// DecodeAnswers converts loosely typed answer values (as read from YAML or JSON)
// into an AnswerSet, coercing each value to the shape its question expects.
// Decoding is best-effort: entries that cannot be coerced are reported and left out.
func DecodeAnswers(b *bank.Bank, raw map[string]any) (AnswerSet, []Skipped) {
	out := make(AnswerSet, len(raw))
	var skipped []Skipped

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		id, err := strconv.Atoi(strings.TrimSpace(key))
		if err != nil {
			skipped = append(skipped, Skipped{Key: key, Reason: "question id is not a number"})
			continue
		}
		q, ok := b.Question(id)
		if !ok {
			skipped = append(skipped, Skipped{Key: key, Reason: "unknown question"})
			continue
		}

		a, err := decodeAnswer(q.Type, raw[key])
		if err != nil {
			skipped = append(skipped, Skipped{Key: key, Reason: err.Error()})
			continue
		}
		out[id] = a
	}

	return out, skipped
}

func decodeAnswer(t bank.Type, value any) (Answer, error) {
	if value == nil {
		return Answer{}, fmt.Errorf("empty answer")
	}

	switch t {
	case bank.MultipleChoice:
		var label string
		if err := weakDecode(value, &label); err != nil {
			return Answer{}, fmt.Errorf("decode choice: %w", err)
		}
		return Choice(strings.TrimSpace(label)), nil
	case bank.SliderType:
		var v int
		if err := weakDecode(value, &v); err != nil {
			return Answer{}, fmt.Errorf("decode slider: %w", err)
		}
		return Slider(v), nil
	case bank.Ranking:
		var order []string
		if err := weakDecode(value, &order); err != nil {
			return Answer{}, fmt.Errorf("decode ranking: %w", err)
		}
		return Ranking(order...), nil
	}
	return Answer{}, fmt.Errorf("unsupported question type %q", t)
}

func weakDecode(input, output any) error {
	cfg := &mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           output,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
