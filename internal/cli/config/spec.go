// Package config defines the CLI configuration for admintok.
package config

// CLIConfig is the configuration for admintok.
type CLIConfig struct {
	// Secret is the shared admin credential. By convention it arrives
	// via environment (ADMINTOK_SECRET or ADMIN_SECRET), never via the
	// config file, so the file stays safe to commit.
	Secret string `koanf:"secret"`

	// Output is the default output format: text, json, yaml.
	Output string `koanf:"output"`

	// Log holds logging settings.
	Log LogConfig `koanf:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `koanf:"level"`

	// Format is the log output format (json, text).
	Format string `koanf:"format"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Output: "text",
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
