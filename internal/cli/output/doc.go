// Package output provides output formatting for admintok.
//
// This package handles CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - text.go: human-readable result block
//   - json.go: JSON output formatting
//   - yaml.go: YAML output formatting
//
// Text is for operators transcribing a token by hand; json and yaml
// are machine-readable for scripting the same fields.
package output
