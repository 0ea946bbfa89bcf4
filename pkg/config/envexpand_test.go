package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("EXPAND_HOST", "db.internal")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "substitutes known variable",
			input: "host: {{.EXPAND_HOST}}",
			want:  "host: db.internal",
		},
		{
			name:  "unknown variable becomes empty",
			input: "key: {{.EXPAND_NOPE}}",
			want:  "key: ",
		},
		{
			name:  "plain text passes through",
			input: "port: 5432",
			want:  "port: 5432",
		},
		{
			name:  "broken template passes through unchanged",
			input: "value: {{.unterminated",
			want:  "value: {{.unterminated",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(ExpandEnv([]byte(tt.input))))
		})
	}
}
