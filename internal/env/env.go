package env

import (
	"os"
	"strings"

	"github.com/ekisa-team/speakstore/internal/envvar"
)

// Environment is the runtime environment the process is running in.
type Environment string

const (
	// Development is used for local runs. Logs are colored and verbose.
	Development Environment = "development"

	// Production is used inside the Lambda runtime. Logs are JSON.
	Production Environment = "production"
)

// FromEnv resolves the environment.
// Precedence:
// 1. SPEAKSTORE_ENV environment variable.
// 2. Production when running inside the Lambda runtime.
// 3. Development.
func FromEnv() Environment {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envvar.SpeakstoreEnv))) {
	case string(Production), "prod":
		return Production
	case string(Development), "dev":
		return Development
	}

	if os.Getenv(envvar.LambdaFunctionName) != "" {
		return Production
	}

	return Development
}

// IsProduction reports whether e is the production environment.
func (e Environment) IsProduction() bool {
	return e == Production
}
