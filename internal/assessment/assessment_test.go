package assessment

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spigell/career-compass/internal/bank"
)

func loadBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.Load()
	require.NoError(t, err)
	return b
}

func TestDecodeAnswersCoercesByQuestionType(t *testing.T) {
	t.Parallel()

	b := loadBank(t)
	raw := map[string]any{
		"1":   " A ",
		"2":   "7",
		"3":   []any{"Process excellence", "Team collaboration"},
		"7":   float64(3),
		"27":  "Long briefings or training sessions",
		"4":   map[string]any{"label": "A"},
		"abc": "A",
		"999": "B",
		"5":   nil,
	}

	got, skipped := DecodeAnswers(b, raw)

	assert.Equal(t, Choice("A"), got[1])
	assert.Equal(t, Slider(7), got[2])
	assert.Equal(t, Ranking("Process excellence", "Team collaboration"), got[3])
	assert.Equal(t, Slider(3), got[7])
	assert.Equal(t, Ranking("Long briefings or training sessions"), got[27])
	assert.Len(t, got, 5)

	keys := make([]string, 0, len(skipped))
	for _, s := range skipped {
		keys = append(keys, s.Key)
	}
	assert.ElementsMatch(t, []string{"4", "abc", "999", "5"}, keys)
}

func TestAnswerSetRawRoundTrip(t *testing.T) {
	t.Parallel()

	b := loadBank(t)
	set := AnswerSet{
		1:  Choice("B"),
		2:  Slider(4),
		3:  Ranking("Team collaboration"),
		13: Choice("C"),
	}

	got, skipped := DecodeAnswers(b, set.Raw())
	assert.Empty(t, skipped)
	assert.Equal(t, set, got)
	assert.Equal(t, []int{1, 2, 3, 13}, set.IDs())
}

func TestSessionProgress(t *testing.T) {
	t.Parallel()

	path := []bank.Question{{ID: 1}, {ID: 2}, {ID: 3}}
	s := NewSession(bank.Entry, "v1")

	_, err := uuid.Parse(s.ID)
	require.NoError(t, err)

	answered, total := s.Progress(path)
	assert.Equal(t, 0, answered)
	assert.Equal(t, 3, total)

	s.Record(1, Choice("A"))
	s.Record(3, Slider(5))

	answered, _ = s.Progress(path)
	assert.Equal(t, 2, answered)

	next, ok := s.NextUnanswered(path)
	require.True(t, ok)
	assert.Equal(t, 2, next.ID)
	assert.False(t, s.Complete(path))

	s.Record(2, Ranking("x"))
	_, ok = s.NextUnanswered(path)
	assert.False(t, ok)
	assert.True(t, s.Complete(path))
}

func TestSaveAndLoadSession(t *testing.T) {
	t.Parallel()

	b := loadBank(t)

	for _, name := range []string{"session.yaml", "session.json"} {
		name := name
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := NewSession(bank.Executive, b.Version())
			s.Record(1, Choice("D"))
			s.Record(2, Slider(10))
			s.Record(3, Ranking("Being the decision-maker", "Process excellence", "Team collaboration"))

			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveSession(path, s))

			loaded, skipped, err := LoadSession(path, b)
			require.NoError(t, err)
			assert.Empty(t, skipped)
			assert.Equal(t, s.ID, loaded.ID)
			assert.Equal(t, bank.Executive, loaded.Tier)
			assert.Equal(t, b.Version(), loaded.BankVersion)
			assert.Equal(t, s.Answers, loaded.Answers)
			assert.True(t, s.StartedAt.Equal(loaded.StartedAt))
		})
	}
}

func TestLoadHandWrittenSession(t *testing.T) {
	t.Parallel()

	b := loadBank(t)
	path := filepath.Join(t.TempDir(), "answers.yml")
	doc := `
tier: entry
answers:
  1: A
  2: 6
  3: [Team collaboration, Process excellence]
  13: Z
  500: A
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	s, skipped, err := LoadSession(path, b)
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, bank.Entry, s.Tier)
	assert.Equal(t, Choice("A"), s.Answers[1])
	assert.Equal(t, Slider(6), s.Answers[2])
	// Unknown labels are kept; scoring skips them.
	assert.Equal(t, Choice("Z"), s.Answers[13])
	require.Len(t, skipped, 1)
	assert.Equal(t, "500", skipped[0].Key)
}

func TestLoadSessionErrors(t *testing.T) {
	t.Parallel()

	b := loadBank(t)
	dir := t.TempDir()

	_, _, err := LoadSession(filepath.Join(dir, "missing.yaml"), b)
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("tier: intern\n"), 0o600))
	_, _, err = LoadSession(bad, b)
	require.ErrorContains(t, err, "unknown tier")

	require.Error(t, SaveSession(filepath.Join(dir, "nil.yaml"), nil))
}
