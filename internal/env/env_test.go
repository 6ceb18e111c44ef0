package env

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ekisa-team/speakstore/internal/envvar"
)

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		lambda   string
		expected Environment
	}{
		{name: "explicit production", value: "production", expected: Production},
		{name: "short production", value: "PROD", expected: Production},
		{name: "explicit development wins over lambda", value: "dev", lambda: "fn", expected: Development},
		{name: "lambda runtime", lambda: "speakstore", expected: Production},
		{name: "default", expected: Development},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(envvar.SpeakstoreEnv, tt.value)
			t.Setenv(envvar.LambdaFunctionName, tt.lambda)

			assert.Equal(t, tt.expected, FromEnv())
		})
	}
}
