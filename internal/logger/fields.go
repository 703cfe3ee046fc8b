package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured field keys shared across commands.
const (
	FieldProvider     = "ai_provider"
	FieldModel        = "ai_model"
	FieldAssessmentID = "assessment_id"
	FieldTier         = "tier"
	FieldArchetype    = "archetype"
)

// nonEmpty turns key/value pairs into string fields. Pairs with a blank key
// or value are dropped and a trailing unpaired key is ignored.
func nonEmpty(pairs ...string) []zap.Field {
	fields := make([]zap.Field, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, value := strings.TrimSpace(pairs[i]), strings.TrimSpace(pairs[i+1])
		if key == "" || value == "" {
			continue
		}
		fields = append(fields, zap.String(key, value))
	}
	return fields
}

func with(logger *zap.Logger, fields []zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// ProviderFields names the narrative provider and model.
func ProviderFields(provider, model string) []zap.Field {
	return nonEmpty(FieldProvider, provider, FieldModel, model)
}

// WithProvider returns logger tagged with the provider and model. A nil
// logger becomes a no-op one.
func WithProvider(logger *zap.Logger, provider, model string) *zap.Logger {
	return with(logger, ProviderFields(provider, model))
}

// AssessmentFields describes one assessment. An unscored session has no
// archetype yet, so that field is simply left out.
func AssessmentFields(id, tier, archetype string) []zap.Field {
	return nonEmpty(FieldAssessmentID, id, FieldTier, tier, FieldArchetype, archetype)
}

func WithAssessment(logger *zap.Logger, id, tier, archetype string) *zap.Logger {
	return with(logger, AssessmentFields(id, tier, archetype))
}

// WithArchetype tags logger with the scored archetype.
func WithArchetype(logger *zap.Logger, archetype string) *zap.Logger {
	return with(logger, nonEmpty(FieldArchetype, archetype))
}
