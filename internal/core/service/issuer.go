// Package service provides the issuing service for admintok.
package service

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/admintok-go/internal/core/domain"
	"github.com/yndnr/admintok-go/internal/telemetry/logger"
	"github.com/yndnr/admintok-go/pkg/admintoken"
)

// Issuer issues day-scoped admin tokens.
//
// It owns boundary concerns the pipeline deliberately does not: secret
// validation, error-code mapping, and logging. The secret, derived key,
// and plaintext are never logged; only shape metadata is.
type Issuer struct {
	gen *admintoken.Generator
	log logger.Logger
}

// NewIssuer creates an Issuer. A nil generator means the production
// generator (system clock, crypto/rand); a nil log means a no-op logger.
func NewIssuer(gen *admintoken.Generator, log logger.Logger) *Issuer {
	if gen == nil {
		gen = admintoken.New()
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Issuer{gen: gen, log: log}
}

// Issue validates rawSecret and generates today's token for it.
//
// All failures carry a domain error code: AT-ARG-1002 (missing secret),
// AT-ARG-1004 (encoding), AT-CRYPT-5001 (entropy), AT-CRYPT-5000
// (anything else).
func (s *Issuer) Issue(rawSecret string) (*admintoken.Token, error) {
	runID := ulid.Make().String()
	log := s.log.With("run_id", runID)

	secret, err := domain.ValidateSecret(rawSecret)
	if err != nil {
		log.Warn("secret rejected", "code", domain.GetErrorCode(err))
		return nil, err
	}

	start := time.Now()
	tok, err := s.gen.Generate(secret)
	if err != nil {
		return nil, s.mapError(log, err)
	}

	log.Info("token issued",
		"date", tok.DateStamp,
		"token_bytes", len(tok.Bytes()),
		"elapsed", time.Since(start),
	)
	return tok, nil
}

// mapError translates pipeline sentinels into coded domain errors.
func (s *Issuer) mapError(log logger.Logger, err error) error {
	switch {
	case errors.Is(err, admintoken.ErrEmptySecret):
		// ValidateSecret runs first, so this only fires if the
		// pipeline is called directly with an untrimmed value.
		return domain.ErrSecretMissing.WithCause(err)
	case errors.Is(err, admintoken.ErrSecretEncoding):
		return domain.ErrSecretEncoding.WithCause(err)
	case errors.Is(err, admintoken.ErrEntropy):
		log.Error("entropy source unavailable", "error", err)
		return domain.ErrEntropyUnavailable.WithCause(err)
	default:
		log.Error("token generation failed", "error", err)
		return domain.ErrTokenGeneration.WithCause(err)
	}
}
