// Package registry manages distribution events and agent assignments.
package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// CreateEventInput carries the fields for registering a new event
type CreateEventInput struct {
	Name        string
	AidType     domain.AidType
	DedupPolicy domain.DedupPolicy
	StartTime   time.Time
	EndTime     time.Time
}

// Registry manages the lifecycle of distribution events
//
//go:generate mockgen -source=registry.go -destination=../mocks/registry.go -package=mocks -mock_names=Registry=MockEventRegistry
type Registry interface {
	// CreateEvent registers a new event in the scheduled state
	CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error)
	// GetEvent retrieves an event with its agent assignments
	GetEvent(ctx context.Context, id string) (*schema.Event, error)
	// ActivateEvent opens a scheduled event for claims
	ActivateEvent(ctx context.Context, id string) error
	// CloseEvent finishes an event; closed events reject claims and cannot
	// be reopened
	CloseEvent(ctx context.Context, id string) error
	// AssignAgent authorizes an agent to record claims for an event
	AssignAgent(ctx context.Context, eventID, agentID string) error
	// IsAgentAuthorized reports whether the agent may record claims for the
	// event
	IsAgentAuthorized(ctx context.Context, eventID, agentID string) (bool, error)
}

type registry struct {
	store store.Store
	clock adapter.Clock
}

// NewRegistry creates an event registry
func NewRegistry(st store.Store, clock adapter.Clock) Registry {
	return &registry{store: st, clock: clock}
}

func (r *registry) CreateEvent(ctx context.Context, input CreateEventInput) (*schema.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: event name is required", domain.ErrValidation)
	}
	if !input.AidType.Valid() {
		return nil, fmt.Errorf("%w: unknown aid type %q", domain.ErrValidation, input.AidType)
	}
	if input.DedupPolicy == "" {
		input.DedupPolicy = domain.DedupStrict
	}
	if !input.DedupPolicy.Valid() {
		return nil, fmt.Errorf("%w: unknown dedup policy %q", domain.ErrValidation, input.DedupPolicy)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() || !input.EndTime.After(input.StartTime) {
		return nil, fmt.Errorf("%w: event window must have a start before its end", domain.ErrValidation)
	}

	event := &schema.Event{
		ID:          uuid.NewString(),
		Name:        input.Name,
		AidType:     input.AidType,
		DedupPolicy: input.DedupPolicy,
		StartTime:   input.StartTime.UTC(),
		EndTime:     input.EndTime.UTC(),
		Status:      schema.EventStatusScheduled,
	}

	if err := r.store.CreateEvent(ctx, event); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "event registered",
		zap.String("event_id", event.ID),
		zap.String("aid_type", string(event.AidType)),
		zap.String("dedup_policy", string(event.DedupPolicy)))

	return event, nil
}

func (r *registry) GetEvent(ctx context.Context, id string) (*schema.Event, error) {
	event, err := r.store.GetEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	return event, nil
}

func (r *registry) ActivateEvent(ctx context.Context, id string) error {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	switch event.Status {
	case schema.EventStatusActive:
		return nil
	case schema.EventStatusClosed:
		return fmt.Errorf("%w: closed events cannot be reactivated", domain.ErrEventClosed)
	}
	return r.store.UpdateEventStatus(ctx, id, schema.EventStatusActive)
}

func (r *registry) CloseEvent(ctx context.Context, id string) error {
	event, err := r.GetEvent(ctx, id)
	if err != nil {
		return err
	}
	if event.Status == schema.EventStatusClosed {
		return nil
	}
	return r.store.UpdateEventStatus(ctx, id, schema.EventStatusClosed)
}

func (r *registry) AssignAgent(ctx context.Context, eventID, agentID string) error {
	if agentID == "" {
		return fmt.Errorf("%w: agent id is required", domain.ErrValidation)
	}

	event, err := r.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if event.Status == schema.EventStatusClosed {
		return fmt.Errorf("%w: agents cannot be assigned to a closed event", domain.ErrEventClosed)
	}

	assigned, err := r.store.AssignAgent(ctx, eventID, agentID)
	if err != nil {
		return err
	}
	if !assigned {
		return domain.ErrAgentAlreadyAssigned
	}

	logger.InfoCtx(ctx, "agent assigned",
		zap.String("event_id", eventID),
		zap.String("agent_id", agentID))

	return nil
}

func (r *registry) IsAgentAuthorized(ctx context.Context, eventID, agentID string) (bool, error) {
	return r.store.IsAgentAssigned(ctx, eventID, agentID)
}
