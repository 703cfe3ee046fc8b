package assessment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/spigell/career-compass/internal/bank"
)

// Session is a respondent's in-progress or finished assessment. It is a plain
// value owned by the caller and handed to scoring explicitly.
type Session struct {
	ID          string
	Tier        bank.Tier
	BankVersion string
	StartedAt   time.Time
	UpdatedAt   time.Time
	Answers     AnswerSet
}

// NewSession starts an empty session for tier.
func NewSession(tier bank.Tier, bankVersion string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:          uuid.NewString(),
		Tier:        tier,
		BankVersion: bankVersion,
		StartedAt:   now,
		UpdatedAt:   now,
		Answers:     AnswerSet{},
	}
}

// Record stores or replaces the answer to question id.
func (s *Session) Record(id int, a Answer) {
	if s.Answers == nil {
		s.Answers = AnswerSet{}
	}
	s.Answers[id] = a
	s.UpdatedAt = time.Now().UTC()
}

// Progress counts how many of the path questions have an answer.
func (s *Session) Progress(path []bank.Question) (answered, total int) {
	for _, q := range path {
		if _, ok := s.Answers.Get(q.ID); ok {
			answered++
		}
	}
	return answered, len(path)
}

// NextUnanswered returns the first path question without an answer.
func (s *Session) NextUnanswered(path []bank.Question) (bank.Question, bool) {
	for _, q := range path {
		if _, ok := s.Answers.Get(q.ID); !ok {
			return q, true
		}
	}
	return bank.Question{}, false
}

// Complete reports whether every path question is answered.
func (s *Session) Complete(path []bank.Question) bool {
	answered, total := s.Progress(path)
	return total > 0 && answered == total
}

type sessionFile struct {
	ID          string         `yaml:"id" json:"id"`
	Tier        bank.Tier      `yaml:"tier" json:"tier"`
	BankVersion string         `yaml:"bank_version,omitempty" json:"bank_version,omitempty"`
	StartedAt   time.Time      `yaml:"started_at" json:"started_at"`
	UpdatedAt   time.Time      `yaml:"updated_at" json:"updated_at"`
	Answers     map[string]any `yaml:"answers" json:"answers"`
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// SaveSession writes s to path as JSON when the extension is .json and YAML otherwise.
func SaveSession(path string, s *Session) error {
	if s == nil {
		return fmt.Errorf("session is nil")
	}

	file := sessionFile{
		ID:          s.ID,
		Tier:        s.Tier,
		BankVersion: s.BankVersion,
		StartedAt:   s.StartedAt,
		UpdatedAt:   s.UpdatedAt,
		Answers:     s.Answers.Raw(),
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(file, "", "  ")
	} else {
		data, err = yaml.Marshal(file)
	}
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

// LoadSession reads a session file written by SaveSession or by hand. Answers
// that do not fit their question are returned as skipped rather than failing the load.
func LoadSession(path string, b *bank.Bank) (*Session, []Skipped, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read session file: %w", err)
	}

	var file sessionFile
	if isJSON(path) {
		err = json.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("decode session file %s: %w", path, err)
	}

	tier, err := bank.ParseTier(string(file.Tier))
	if err != nil {
		return nil, nil, fmt.Errorf("session file %s: %w", path, err)
	}

	answers, skipped := DecodeAnswers(b, file.Answers)

	s := &Session{
		ID:          file.ID,
		Tier:        tier,
		BankVersion: file.BankVersion,
		StartedAt:   file.StartedAt,
		UpdatedAt:   file.UpdatedAt,
		Answers:     answers,
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return s, skipped, nil
}
