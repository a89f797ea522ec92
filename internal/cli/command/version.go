// Package command provides CLI command definitions for admintok.
package command

import (
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/admintok-go/internal/cli/output"
	"github.com/yndnr/admintok-go/internal/infra/buildinfo"
)

// VersionCommand returns the version command.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Show build information",
		Action: versionAction,
	}
}

// versionResult wraps build info for formatting.
type versionResult struct {
	buildinfo.Info `yaml:",inline"`
}

// RenderText writes the one-line version string.
func (r *versionResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "admintok %s\n", buildinfo.String())
	return err
}

func versionAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	res := &versionResult{Info: buildinfo.Get()}
	return output.NewFormatter(output.Format(cfg.Output)).Format(c.App.Writer, res)
}
