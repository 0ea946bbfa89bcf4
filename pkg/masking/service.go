// Package masking scrubs credentials from serialized payloads before
// they reach persistent storage. The audit trail records every tool
// call and its arguments; masking keeps leaked API keys, tokens, and
// passwords out of that table.
package masking

import (
	"log/slog"

	"github.com/switchyard-ai/switchyard/pkg/config"
)

// Service applies regex masking to payload strings. Created once at
// startup; thread-safe and stateless aside from the compiled patterns.
// It satisfies the events.Masker interface used by the audit logger.
type Service struct {
	enabled  bool
	patterns []*compiledPattern
	logger   *slog.Logger
}

// NewService compiles the built-in patterns plus any configured extras.
// Invalid extra patterns are skipped, never fatal.
func NewService(cfg config.MaskingConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		enabled: cfg.Enabled,
		logger:  logger.With("component", "masking"),
	}
	if !cfg.Enabled {
		s.logger.Info("masking disabled, payloads stored verbatim")
		return s
	}

	s.patterns = compilePatterns(append(builtinPatterns(), cfg.ExtraPatterns...), s.logger)
	s.logger.Info("masking service initialized",
		"builtin_patterns", len(builtinPatterns()),
		"extra_patterns", len(cfg.ExtraPatterns),
		"compiled_patterns", len(s.patterns))
	return s
}

// Mask replaces every pattern match in the payload. Content that matches
// nothing passes through unchanged, and a disabled service is a no-op.
func (s *Service) Mask(payload string) string {
	if !s.enabled || payload == "" {
		return payload
	}

	masked := payload
	for _, p := range s.patterns {
		masked = p.regex.ReplaceAllString(masked, p.replacement)
	}
	return masked
}
