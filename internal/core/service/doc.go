// Package service provides the issuing service for admintok.
//
// Services contain the orchestration between domain rules and the token
// pipeline: validating the supplied credential, invoking the generator,
// mapping pipeline errors to coded domain errors, and emitting
// run-scoped structured logs. Services are stateless and safe for
// concurrent use.
package service
