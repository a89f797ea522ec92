// Package command provides CLI command definitions for admintok.
package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/admintok-go/internal/cli/config"
	"github.com/yndnr/admintok-go/internal/core/domain"
	"github.com/yndnr/admintok-go/internal/infra/buildinfo"
	"github.com/yndnr/admintok-go/internal/telemetry/logger"
)

// App creates the CLI application.
//
// Running the binary with no subcommand generates a token, mirroring
// the single-purpose tool this replaces.
func App() *cli.App {
	return &cli.App{
		Name:           "admintok",
		Usage:          "generate the day-scoped admin token for the paired server",
		Version:        buildinfo.String(),
		Flags:          globalFlags(),
		DefaultCommand: "generate",
		Commands: []*cli.Command{
			GenerateCommand(),
			KeygenCommand(),
			VersionCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Config file path (default: ~/.admintok/cli.yaml)",
			EnvVars: []string{"ADMINTOK_CONFIG"},
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Dotenv file to preload, typically the server's .env",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: text, json, yaml",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Print only the bare result, for shell capture",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

// GlobalFlags holds parsed global flag values.
type GlobalFlags struct {
	Config  string
	EnvFile string
	Output  string
	Quiet   bool
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	return &GlobalFlags{
		Config:  c.String("config"),
		EnvFile: c.String("env-file"),
		Output:  c.String("output"),
		Quiet:   c.Bool("quiet"),
	}
}

// loadConfig assembles the effective configuration: loader sources
// (defaults, file, env) with command-line flags layered on top.
func loadConfig(c *cli.Context) (*config.CLIConfig, error) {
	var opts []config.Option
	if path := c.String("config"); path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if path := c.String("env-file"); path != "" {
		opts = append(opts, config.WithEnvFile(path))
	}

	cfg, err := config.NewLoader(opts...).Load()
	if err != nil {
		return nil, domain.ErrConfigInvalid.WithCause(err)
	}

	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	return cfg, nil
}

// newLogger builds the run logger from config, writing to the app's
// error stream.
func newLogger(c *cli.Context, cfg *config.CLIConfig) logger.Logger {
	out := c.App.ErrWriter
	if out == nil {
		out = os.Stderr
	}
	return logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: out,
	})
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
