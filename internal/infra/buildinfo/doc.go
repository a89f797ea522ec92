// Package buildinfo provides build information for admintok.
//
// This package exposes build-time information injected via ldflags
// (Version, Commit, BuildTime) plus the Go version of the running
// binary, surfaced by the version command and --version flag.
package buildinfo
