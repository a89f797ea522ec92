// Package command provides CLI command definitions for admintok.
package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/admintok-go/internal/cli/output"
	"github.com/yndnr/admintok-go/internal/core/domain"
)

// KeygenCommand returns the keygen command.
func KeygenCommand() *cli.Command {
	return &cli.Command{
		Name:  "keygen",
		Usage: "Provision a fresh high-entropy shared secret",
		Description: "The token scheme derives its AES key from a single hash of\n" +
			"the shared secret, which is only sound for machine-generated\n" +
			"credentials. Use this to create one, then configure the same\n" +
			"value as ADMIN_SECRET on the verifying server.",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "bytes",
				Aliases: []string{"b"},
				Usage:   "Entropy in bytes before encoding",
				Value:   domain.DefaultSecretBytes,
			},
		},
		Action: keygenAction,
	}
}

// keygenResult is the provisioning output.
type keygenResult struct {
	Secret  string `json:"secret" yaml:"secret"`
	Entropy int    `json:"entropy_bytes" yaml:"entropy_bytes"`
}

// RenderText writes the provisioning block.
func (r *keygenResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"Generated shared secret (%d bytes of entropy):\n\n"+
			"  %s\n\n"+
			"Set this as ADMIN_SECRET on the verifying server and keep your\n"+
			"copy wherever this tool will read it from.\n",
		r.Entropy, r.Secret)
	return err
}

func keygenAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	numBytes := c.Int("bytes")
	secret, err := domain.NewSharedSecret(numBytes)
	if err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	if flags.Quiet {
		_, err := fmt.Fprintln(c.App.Writer, secret)
		return err
	}

	res := &keygenResult{Secret: secret, Entropy: numBytes}
	return output.NewFormatter(output.Format(cfg.Output)).Format(c.App.Writer, res)
}
