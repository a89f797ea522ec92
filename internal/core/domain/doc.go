// Package domain defines the core domain models for admintok.
//
// Domain models are pure value objects without any IO dependencies or
// framework coupling. This package contains:
//
//   - SharedSecret: the admin credential, with validation and provisioning
//   - Errors: domain-specific error definitions with structured codes
//
// Token construction itself lives in pkg/admintoken; this package owns
// what counts as a usable credential and how failures are reported at
// the tool's boundaries.
package domain
