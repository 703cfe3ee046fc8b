package gemini

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/report"
	"github.com/spigell/career-compass/internal/utils"
)

const (
	providerName             = "gemini"
	defaultMaxLogLength      = 200
	maxUserInstructionRunes  = 500
	defaultTone              = "Warm"
	defaultAudience          = "Candidate"
	defaultFocus             = "Strengths and next steps"
	defaultLanguage          = "English"
	noUserInstructionsMarker = "  - none"
)

//go:embed system.md
var systemPrompt string

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// PromptOverrides adjusts the style of the generated narrative. Single-line
// fields are flattened; UserInstructions keeps its line breaks.
type PromptOverrides struct {
	Tone             string `mapstructure:"tone"`
	Audience         string `mapstructure:"audience"`
	Focus            string `mapstructure:"focus"`
	Language         string `mapstructure:"language"`
	UserInstructions string `mapstructure:"user-instructions"`
}

// Narrator turns a report summary into a short narrative via Gemini. Replies
// for an identical prompt are served from memory.
type Narrator struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
	overrides PromptOverrides

	cacheMu sync.RWMutex
	cache   map[string]ai.Narrative
}

var _ ai.Narrator = (*Narrator)(nil)

func NewNarrator(generator contentGenerator, maxLogLength int, log *zap.Logger) *Narrator {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	model := ""
	if generator != nil {
		model = generator.Model()
	}

	return &Narrator{
		generator: generator,
		logger:    logger.WithProvider(log, providerName, model),
		maxLogLen: maxLogLength,
	}
}

func (n *Narrator) SetPromptOverrides(o PromptOverrides) {
	n.overrides = o
}

func (n *Narrator) Narrate(ctx context.Context, summary report.Summary) (*ai.Narrative, error) {
	if n.generator == nil {
		return nil, errors.New("gemini narrator has no generator")
	}
	if strings.TrimSpace(string(summary.Archetype)) == "" {
		return nil, errors.New("summary has no archetype")
	}

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal summary payload: %w", err)
	}

	prompt := buildPrompt(string(summaryJSON), n.overrides)
	key := cacheKey(prompt)

	n.cacheMu.RLock()
	cached, ok := n.cache[key]
	n.cacheMu.RUnlock()
	if ok {
		n.logger.Debug("gemini narrative served from cache", zap.String("archetype", string(summary.Archetype)))
		out := cached
		out.NextSteps = append([]string(nil), cached.NextSteps...)
		return &out, nil
	}

	n.logger.Debug("gemini generate content request",
		zap.String("archetype", string(summary.Archetype)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, n.maxLogLen)),
	)

	raw, err := n.generator.GenerateContent(ctx, systemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	n.logger.Debug("gemini generate content response",
		zap.String("archetype", string(summary.Archetype)),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, n.maxLogLen)),
	)

	narrative, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}
	narrative.Model = n.generator.Model()
	narrative.Raw = raw

	n.cacheMu.Lock()
	if n.cache == nil {
		n.cache = make(map[string]ai.Narrative)
	}
	stored := *narrative
	stored.NextSteps = append([]string(nil), narrative.NextSteps...)
	n.cache[key] = stored
	n.cacheMu.Unlock()

	return narrative, nil
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("%x", sum[:])
}

func buildPrompt(summaryJSON string, o PromptOverrides) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Summary:\n{{SUMMARY_JSON}}\n\nJSON Response:"
	}

	replacer := strings.NewReplacer(
		"{{TONE}}", singleLine(o.Tone, defaultTone),
		"{{AUDIENCE}}", singleLine(o.Audience, defaultAudience),
		"{{FOCUS}}", singleLine(o.Focus, defaultFocus),
		"{{LANGUAGE}}", singleLine(o.Language, defaultLanguage),
		"{{USER_INSTRUCTIONS}}", userInstructions(o.UserInstructions),
		"{{SUMMARY_JSON}}", summaryJSON,
	)
	return replacer.Replace(template)
}

// neutralize stops user text from imitating the template's [Section] headers.
func neutralize(s string) string {
	return strings.NewReplacer("[", "(", "]", ")").Replace(s)
}

func singleLine(value, fallback string) string {
	value = strings.Join(strings.Fields(neutralize(value)), " ")
	if value == "" {
		return fallback
	}
	return value
}

func userInstructions(raw string) string {
	raw = neutralize(raw)

	lines := make([]string, 0)
	budget := maxUserInstructionRunes
	for _, line := range strings.Split(raw, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" || budget <= 0 {
			continue
		}
		runes := []rune(line)
		if len(runes) > budget {
			runes = runes[:budget]
		}
		budget -= len(runes)
		lines = append(lines, "  - "+string(runes))
	}

	if len(lines) == 0 {
		return noUserInstructionsMarker
	}
	return strings.Join(lines, "\n")
}

func parseResponse(raw string) (*ai.Narrative, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	narrative := &ai.Narrative{
		Headline:  coerceString(data["headline"]),
		Body:      coerceString(data["narrative"]),
		NextSteps: coerceStrings(data["next_steps"]),
	}
	if narrative.Headline == "" && narrative.Body == "" {
		return nil, errors.New("gemini response has neither headline nor narrative")
	}

	return narrative, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceStrings(v any) []string {
	out := []string{}
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s := coerceString(item); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, line := range strings.Split(val, "\n") {
			line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*"))
			if line != "" {
				out = append(out, line)
			}
		}
	}
	return out
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		bytes, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(bytes)
	}
}
