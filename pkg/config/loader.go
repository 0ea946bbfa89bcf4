package config

import (
	"fmt"
	"log/slog"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Load builds the runtime configuration:
//
//  1. Start from built-in defaults
//  2. Layer the YAML file on top when path is set ({{.VAR}} template
//     references are expanded against the environment first)
//  3. Pull secrets from the environment (they never live in YAML)
//  4. Validate the result
//
// An empty path skips the file entirely, which is the containerized
// deployment shape: defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		fileCfg, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, &LoadError{File: path, Err: fmt.Errorf("failed to merge configuration: %w", err)}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Info("configuration loaded",
		"file", path,
		"agent_mode", cfg.Agents.Mode,
		"auth_enabled", cfg.Auth.Enabled,
		"llm_model", cfg.LLM.Model)
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %s", ErrConfigNotFound, path)}
		}
		return nil, &LoadError{File: path, Err: err}
	}

	// Expand {{.VAR}} template references. ExpandEnv passes the data
	// through untouched on template errors so plain YAML still parses.
	data = ExpandEnv(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &LoadError{File: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}
	return &cfg, nil
}

// applyEnvOverrides reads the values that must come from the process
// environment: credentials, plus the DB_* variables shared with the
// test tooling so one set of variables configures both paths.
func applyEnvOverrides(cfg *Config) {
	cfg.Database.Password = os.Getenv("DB_PASSWORD")
	cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
	cfg.Auth.InternalSecret = os.Getenv("AUTH_INTERNAL_SECRET")

	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Name = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
}
