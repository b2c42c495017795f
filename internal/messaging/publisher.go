package messaging

import (
	"context"

	"github.com/Lideeyah/Haid/internal/domain"
)

// Publisher defines the interface for publishing ledger events to the
// message broker. Delivery is best effort: a collected claim is durable in
// the consensus log and the database before anything is published.
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishDistribution publishes a collected claim
	PublishDistribution(ctx context.Context, message *domain.DistributionMessage) error
	// PublishIdentity publishes an issued identity
	PublishIdentity(ctx context.Context, message *domain.IdentityMessage) error
	// Close closes the connection
	Close()
}

// NoopPublisher discards all messages; used when no broker is configured
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that discards everything
func NewNoopPublisher() Publisher {
	return &NoopPublisher{}
}

func (p *NoopPublisher) PublishDistribution(_ context.Context, _ *domain.DistributionMessage) error {
	return nil
}

func (p *NoopPublisher) PublishIdentity(_ context.Context, _ *domain.IdentityMessage) error {
	return nil
}

func (p *NoopPublisher) Close() {}
