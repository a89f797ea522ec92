// Package config defines the CLI configuration for admintok.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultEnvPrefix is the environment variable prefix.
	DefaultEnvPrefix = "ADMINTOK_"

	// SecretEnvVar is the unprefixed variable holding the shared
	// credential. The paired server documents this exact name in its
	// .env, so the tool honors it directly.
	SecretEnvVar = "ADMIN_SECRET"
)

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".admintok", "cli.yaml")
}

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	envFile   string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithConfigFile sets the configuration file path. An explicitly set
// file must exist; the default path is optional.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithEnvFile sets a dotenv file to preload before reading the
// environment, typically the same .env the verifying server uses.
func WithEnvFile(path string) Option {
	return func(l *Loader) {
		l.envFile = path
	}
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load assembles the configuration. Source order (later overrides
// earlier): defaults, YAML file, environment. The dotenv preload only
// populates the process environment; regular env handling does the rest.
func (l *Loader) Load() (*CLIConfig, error) {
	cfg := Default()

	if err := l.loadEnvFile(); err != nil {
		return nil, err
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, err
	}

	if err := l.k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	// The server-documented variable wins only when nothing else
	// supplied a secret.
	if cfg.Secret == "" {
		cfg.Secret = os.Getenv(SecretEnvVar)
	}

	return cfg, nil
}

// loadEnvFile preloads a dotenv file into the process environment.
// An explicitly requested file must exist; otherwise ./.env is loaded
// opportunistically, matching how the paired server starts up.
func (l *Loader) loadEnvFile() error {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil {
			return fmt.Errorf("config: load env file %s: %w", l.envFile, err)
		}
		return nil
	}

	_ = godotenv.Load()
	return nil
}

// loadFile loads the YAML config file.
func (l *Loader) loadFile() error {
	path := l.filePath
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil
		}
	}

	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("config: load file %s: %w", path, err)
	}
	return nil
}

// loadEnv loads ADMINTOK_* environment variables.
// ADMINTOK_LOG_LEVEL -> log.level, ADMINTOK_SECRET -> secret.
func (l *Loader) loadEnv() error {
	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)
		s = strings.ReplaceAll(s, "_", ".")
		return s
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", envTransformer), nil); err != nil {
		return fmt.Errorf("config: load env: %w", err)
	}
	return nil
}
