package anchor

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
)

type client struct {
	transport Transport
	jsonCodec adapter.JSON
	canonical adapter.JCS
	policy    RetryPolicy
}

// NewClient creates an anchor client over the given transport
func NewClient(transport Transport, jsonCodec adapter.JSON, canonical adapter.JCS, policy RetryPolicy) Client {
	if policy.MaxAttempts == 0 {
		policy = DefaultRetryPolicy()
	}
	return &client{
		transport: transport,
		jsonCodec: jsonCodec,
		canonical: canonical,
		policy:    policy,
	}
}

// Canonicalize serializes a message into the canonical JSON form that is
// anchored and later compared byte-for-byte during reconciliation.
func Canonicalize(jsonCodec adapter.JSON, canonical adapter.JCS, message interface{}) ([]byte, error) {
	raw, err := jsonCodec.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}
	payload, err := canonical.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize message: %w", err)
	}
	return payload, nil
}

func (c *client) Anchor(ctx context.Context, message interface{}) (*domain.AnchorProof, error) {
	payload, err := Canonicalize(c.jsonCodec, c.canonical, message)
	if err != nil {
		return nil, err
	}

	var proof *domain.AnchorProof
	attempt := uint64(0)

	operation := func() error {
		attempt++
		p, err := c.transport.Submit(ctx, payload)
		if err != nil {
			return err
		}
		proof = p
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.policy.InitialInterval
	bo.MaxInterval = c.policy.MaxInterval
	bo.Multiplier = c.policy.Multiplier
	bo.MaxElapsedTime = 0 // attempts are bounded by count, not wall time

	notify := func(err error, next time.Duration) {
		logger.WarnCtx(ctx, "anchor submission failed, retrying",
			zap.Uint64("attempt", attempt),
			zap.Duration("next_retry_in", next),
			zap.Error(err))
	}

	err = backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(bo, c.policy.MaxAttempts-1), ctx),
		notify)
	if err != nil {
		return nil, fmt.Errorf("%w: submission gave up after %d attempt(s): %v",
			domain.ErrAnchorFailure, attempt, err)
	}

	logger.DebugCtx(ctx, "payload anchored",
		zap.Uint64("attempts", attempt),
		zap.String("transaction_id", proof.TransactionID),
		zap.Uint64("sequence_number", proof.SequenceNumber))

	return proof, nil
}

func (c *client) Records(ctx context.Context, filter Filter) ([]Record, error) {
	records, err := c.transport.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query anchored records: %w", err)
	}
	return records, nil
}
