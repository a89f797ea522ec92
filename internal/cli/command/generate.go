// Package command provides CLI command definitions for admintok.
package command

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/admintok-go/internal/cli/config"
	"github.com/yndnr/admintok-go/internal/cli/output"
	"github.com/yndnr/admintok-go/internal/core/service"
)

// GenerateCommand returns the generate command.
func GenerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate today's admin token from the shared secret",
		ArgsUsage: "[secret]",
		Description: "The secret is resolved in order: --secret flag, positional\n" +
			"argument, ADMINTOK_SECRET / ADMIN_SECRET environment (after an\n" +
			"optional dotenv preload), then an interactive prompt. The value\n" +
			"must match the verifying server's ADMIN_SECRET exactly.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "secret",
				Usage: "Shared admin secret (prefer the environment over this flag)",
			},
		},
		Action: generateAction,
	}
}

// tokenResult is the operator-facing result of one generation.
//
// The plaintext is intentionally visible: the operator is the owner of
// the secret, and seeing the composed value is how mismatches with the
// verifying side get debugged.
type tokenResult struct {
	Date      string `json:"date" yaml:"date"`
	Plaintext string `json:"plaintext" yaml:"plaintext"`
	Token     string `json:"token" yaml:"token"`
}

// RenderText writes the block the operator transcribes from.
func (r *tokenResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"--- admin token generator ---\n"+
			"Date:      %s\n"+
			"Plaintext: %s\n"+
			"Token:     %s\n"+
			"-----------------------------\n",
		r.Date, r.Plaintext, r.Token)
	return err
}

func generateAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(c, cfg)

	secret, err := resolveSecret(c, cfg)
	if err != nil {
		return err
	}

	issuer := service.NewIssuer(nil, log)
	tok, err := issuer.Issue(secret)
	if err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	if flags.Quiet {
		_, err := fmt.Fprintln(c.App.Writer, tok.Hex())
		return err
	}

	res := &tokenResult{
		Date:      tok.DateStamp,
		Plaintext: tok.Plaintext,
		Token:     tok.Hex(),
	}
	return output.NewFormatter(output.Format(cfg.Output)).Format(c.App.Writer, res)
}

// resolveSecret applies the resolution order documented on the command.
// Trimming and validation happen in the service; this only finds the
// raw value.
func resolveSecret(c *cli.Context, cfg *config.CLIConfig) (string, error) {
	if c.IsSet("secret") {
		return c.String("secret"), nil
	}
	if c.Args().Len() > 0 {
		return c.Args().First(), nil
	}
	if cfg.Secret != "" {
		return cfg.Secret, nil
	}
	return promptSecret(c)
}

// promptSecret asks for the secret interactively. The prompt goes to
// the error stream so captured stdout stays clean.
func promptSecret(c *cli.Context) (string, error) {
	in := c.App.Reader
	if in == nil {
		in = os.Stdin
	}
	errw := c.App.ErrWriter
	if errw == nil {
		errw = os.Stderr
	}

	fmt.Fprint(errw, "Enter the server's ADMIN_SECRET: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read secret: %w", err)
	}
	return line, nil
}
