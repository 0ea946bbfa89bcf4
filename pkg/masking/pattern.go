package masking

import (
	"log/slog"
	"regexp"

	"github.com/switchyard-ai/switchyard/pkg/config"
)

// maskedValue replaces every matched secret. Key-value patterns keep the
// field name and separator so masked payloads stay recognizable.
const maskedValue = "***MASKED***"

// compiledPattern is one masking rule ready to apply.
type compiledPattern struct {
	name        string
	regex       *regexp.Regexp
	replacement string
}

// builtinPatterns covers the credential shapes that show up in tool-call
// arguments and results. The key-value patterns tolerate both plain and
// JSON-escaped quoting, since audit payloads carry arguments as nested
// JSON strings.
func builtinPatterns() []config.MaskPattern {
	// kv matches the separator between a field name and its value:
	// `": "`, `=`, or the escaped `\":\"` form inside serialized JSON.
	const kv = `(\\?["']?\s*[:=]\s*\\?["']?)`

	return []config.MaskPattern{
		{
			Name:        "pem_block",
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: maskedValue,
		},
		{
			Name:        "aws_access_key",
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: maskedValue,
		},
		{
			Name:        "github_token",
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: maskedValue,
		},
		{
			Name:        "slack_token",
			Pattern:     `\bxox[baprs]-[A-Za-z0-9-]{10,72}\b`,
			Replacement: maskedValue,
		},
		{
			Name:        "api_key",
			Pattern:     `(?i)(api[_-]?key|apikey)` + kv + `([A-Za-z0-9_\-\.]{16,})`,
			Replacement: `${1}${2}` + maskedValue,
		},
		{
			Name:        "secret_key",
			Pattern:     `(?i)(secret[_-]?key|client[_-]?secret)` + kv + `([A-Za-z0-9_\-\.]{16,})`,
			Replacement: `${1}${2}` + maskedValue,
		},
		{
			Name:        "token",
			Pattern:     `(?i)(access[_-]?token|refresh[_-]?token|token|jwt)` + kv + `([A-Za-z0-9_\-\.]{16,})`,
			Replacement: `${1}${2}` + maskedValue,
		},
		{
			Name:        "password",
			Pattern:     `(?i)(password|passwd|pwd)` + kv + `([^"'\\\s]{6,})`,
			Replacement: `${1}${2}` + maskedValue,
		},
		{
			Name:        "bearer",
			Pattern:     `(?i)(bearer\s+)([A-Za-z0-9_\-\.=]{16,})`,
			Replacement: `${1}` + maskedValue,
		},
	}
}

// compilePatterns compiles built-in and extra patterns in order. Invalid
// extras are logged and skipped so one bad deployment regex cannot take
// masking down with it.
func compilePatterns(patterns []config.MaskPattern, logger *slog.Logger) []*compiledPattern {
	compiled := make([]*compiledPattern, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p.Pattern)
		if err != nil {
			logger.Error("failed to compile masking pattern, skipping",
				"pattern", p.Name,
				"error", err)
			continue
		}
		replacement := p.Replacement
		if replacement == "" {
			replacement = maskedValue
		}
		compiled = append(compiled, &compiledPattern{
			name:        p.Name,
			regex:       re,
			replacement: replacement,
		})
	}
	return compiled
}
