package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-compass/internal/ai"
	"github.com/spigell/career-compass/internal/ai/gemini"
	"github.com/spigell/career-compass/internal/bank"
	"github.com/spigell/career-compass/internal/logger"
	"github.com/spigell/career-compass/internal/secrets"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// setup builds the logger and reads the config shared by every command.
func setup() (*zap.Logger, *Config) {
	l, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		l.Fatal("getting a config", zap.Error(err))
	}
	if config == nil {
		config = &Config{}
	}

	return l, config
}

func loadBank(l *zap.Logger) *bank.Bank {
	b, err := bank.Load()
	if err != nil {
		var verr *bank.ValidationError
		if errors.As(err, &verr) {
			l.Fatal("question bank is invalid", zap.Strings("problems", verr.Problems))
		}
		l.Fatal("loading question bank", zap.Error(err))
	}

	l.Debug("question bank loaded", zap.String("version", b.Version()), zap.Int("questions", b.Len()))
	return b
}

func resolveTier(flag string, config *Config) (bank.Tier, error) {
	raw := strings.TrimSpace(flag)
	if raw == "" {
		raw = config.Tier
	}
	return bank.ParseTier(raw)
}

func resolveOutput(flag string, config *Config) (string, error) {
	out := strings.ToLower(strings.TrimSpace(flag))
	if out == "" {
		out = strings.ToLower(strings.TrimSpace(config.Output))
	}
	switch out {
	case "", outputText:
		return outputText, nil
	case outputJSON:
		return outputJSON, nil
	}
	return "", fmt.Errorf("unsupported output format: %s", out)
}

func newNarrator(ctx context.Context, cfg *AIConfig, l *zap.Logger) (ai.Narrator, error) {
	if cfg == nil {
		return nil, errors.New("ai section is not configured")
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	gcfg := cfg.Gemini
	if gcfg == nil {
		gcfg = &GeminiConfig{}
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		Value: gcfg.APIKey,
		File:  gcfg.APIKeyFile,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := l.With(zap.Int("ai_retry_attempts", gcfg.MaxRetries))

	generator, err := gemini.NewGenerator(ctx, apiKey, gcfg.Model, gcfg.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	narrator := gemini.NewNarrator(generator, gcfg.MaxLogLength, l)
	narrator.SetPromptOverrides(gcfg.Prompt)

	return narrator, nil
}
