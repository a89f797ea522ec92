// Package command provides CLI command definitions for admintok.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: app construction, global flags, config and logger wiring
//   - generate.go: token generation (the default command)
//   - keygen.go: shared-secret provisioning
//   - version.go: build information
//
// Commands follow a consistent pattern of parsing flags, calling the
// appropriate service, and formatting output. Results go to the app's
// Writer, diagnostics to its ErrWriter, so both are capturable in tests
// and redirectable in shells.
package command
