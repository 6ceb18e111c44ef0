package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.yaml.in/yaml/v3"
)

const schemaURL = "speakstore.v1.schema.json"

//go:embed speakstore.v1.schema.json
var schemaJSON []byte

// Load builds the configuration: defaults, then the YAML file at path (if any),
// then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile validates the file at path against the embedded schema and decodes it over cfg.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read config: %w", err)
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("config: invalid YAML: %w", err)
	}

	schema, err := compileSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(raw); err != nil {
		return fmt.Errorf("config: validation failed: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: failed to unmarshal into Config struct: %w", err)
	}

	return nil
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("config: failed to add schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("config: failed to compile schema: %w", err)
	}

	return schema, nil
}
