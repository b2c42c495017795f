// Package anchor writes payloads to an append-only consensus log and reads
// them back with their consensus proofs. The log is the source of truth the
// audit verifier reconciles the local ledger against.
package anchor

import (
	"context"
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
)

// Record is one anchored payload together with its consensus proof
type Record struct {
	Payload []byte
	Proof   domain.AnchorProof
}

// Filter narrows Records queries
type Filter struct {
	// Since restricts to records with a consensus timestamp at or after
	// this instant. Nil means from the beginning of the log.
	Since *time.Time
	// Limit caps the number of returned records; 0 means no cap
	Limit int
}

// Transport performs single submission attempts and log reads against a
// concrete consensus backend. Implementations never retry; retry lives in
// the Client so that an attempt budget is counted in exactly one place.
// Terminal rejections are wrapped in backoff.Permanent.
//
//go:generate mockgen -source=anchor.go -destination=../mocks/anchor.go -package=mocks -mock_names=Transport=MockAnchorTransport,Client=MockAnchorClient
type Transport interface {
	// Submit writes one payload to the log and returns its proof
	Submit(ctx context.Context, payload []byte) (*domain.AnchorProof, error)
	// Query reads back anchored records matching the filter, in consensus
	// order
	Query(ctx context.Context, filter Filter) ([]Record, error)
}

// Client anchors messages with canonicalization and bounded retry.
// A nil error guarantees a non-nil proof; an error means the submission
// attempt budget is exhausted and wraps domain.ErrAnchorFailure.
type Client interface {
	// Anchor canonicalizes the message and submits it until it lands or
	// the attempt budget runs out
	Anchor(ctx context.Context, message interface{}) (*domain.AnchorProof, error)
	// Records reads back anchored records for reconciliation
	Records(ctx context.Context, filter Filter) ([]Record, error)
}

// RetryPolicy bounds submission attempts. MaxAttempts counts the first
// attempt, so MaxAttempts=3 means one submission plus two retries.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxAttempts     uint64
}

// DefaultRetryPolicy returns the policy used when the configuration does
// not override it
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2.0,
		MaxAttempts:     3,
	}
}
