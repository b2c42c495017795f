// Package claim implements the idempotent claim ledger. A scan either
// collects aid exactly once, is blocked as a duplicate, or fails without
// consuming the subject's entitlement.
package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// DefaultWindowDuration is the windowed dedup horizon when the
// configuration does not override it
const DefaultWindowDuration = 24 * time.Hour

// ScanInput is one agent scan of a subject at an event
type ScanInput struct {
	EventID    string
	SubjectDID domain.DID
	AgentID    string
}

// Result is the outcome of processing a scan. Status is one of collected,
// duplicate-blocked or failed; Duplicate carries the claim that blocked a
// duplicate attempt.
type Result struct {
	Claim     *schema.ClaimRecord
	Status    schema.ClaimStatus
	Duplicate *schema.ClaimRecord
}

// Processor turns scans into anchored claim records
//
//go:generate mockgen -source=processor.go -destination=../mocks/claim.go -package=mocks -mock_names=Processor=MockClaimProcessor
type Processor interface {
	// Process records one scan. A duplicate outcome is a Result, not an
	// error; the returned error wraps domain.ErrAnchorFailure when the
	// claim was inserted but could not be anchored, with Result.Claim
	// holding the failed record.
	Process(ctx context.Context, input ScanInput) (*Result, error)
	// Get retrieves a claim by scan id
	Get(ctx context.Context, scanID string) (*schema.ClaimRecord, error)
	// List retrieves claims matching the filter
	List(ctx context.Context, filter store.ClaimFilter) ([]schema.ClaimRecord, error)
}

type processor struct {
	store          store.Store
	anchorer       anchor.Client
	publisher      messaging.Publisher
	clock          adapter.Clock
	jsonCodec      adapter.JSON
	canonical      adapter.JCS
	windowDuration time.Duration
}

// NewProcessor creates a claim processor
func NewProcessor(st store.Store, anchorer anchor.Client, publisher messaging.Publisher,
	clock adapter.Clock, jsonCodec adapter.JSON, canonical adapter.JCS, windowDuration time.Duration) Processor {
	if windowDuration <= 0 {
		windowDuration = DefaultWindowDuration
	}
	return &processor{
		store:          st,
		anchorer:       anchorer,
		publisher:      publisher,
		clock:          clock,
		jsonCodec:      jsonCodec,
		canonical:      canonical,
		windowDuration: windowDuration,
	}
}

func (p *processor) Process(ctx context.Context, input ScanInput) (*Result, error) {
	event, err := p.admit(ctx, input)
	if err != nil {
		return nil, err
	}

	scanID := ulid.Make().String()
	now := p.clock.Now().UTC()

	message := domain.DistributionMessage{
		Type:       domain.MessageTypeDistribution,
		ScanID:     scanID,
		EventID:    input.EventID,
		SubjectDID: input.SubjectDID,
		AgentID:    input.AgentID,
		AidType:    event.AidType,
		Status:     string(schema.ClaimStatusCollected),
		Timestamp:  now.Unix(),
	}
	payload, err := anchor.Canonicalize(p.jsonCodec, p.canonical, message)
	if err != nil {
		return nil, err
	}

	record := &schema.ClaimRecord{
		ID:        scanID,
		SubjectID: string(input.SubjectDID),
		EventID:   input.EventID,
		AgentID:   input.AgentID,
		AidType:   event.AidType,
		Status:    schema.ClaimStatusPending,
		Payload:   datatypes.JSON(payload),
		Timestamp: now,
	}

	// The dedup gate. Whichever branch loses produces a duplicate-blocked
	// audit row referencing the claim that holds the slot.
	var holdsWindow bool
	if event.DedupPolicy == domain.DedupWindowed {
		acquired, err := p.store.AcquireAidWindow(ctx, record.SubjectID, event.AidType, scanID, now.Add(p.windowDuration))
		if err != nil {
			return nil, err
		}
		if !acquired {
			return p.blockDuplicate(ctx, record, nil)
		}
		holdsWindow = true
	}

	created, existing, err := p.store.CreateClaimIfAbsent(ctx, record)
	if err != nil {
		if holdsWindow {
			p.releaseWindow(ctx, record)
		}
		return nil, err
	}
	if !created {
		if holdsWindow {
			p.releaseWindow(ctx, record)
		}
		return p.blockDuplicate(ctx, record, existing)
	}

	proof, err := p.anchorer.Anchor(ctx, message)
	if err != nil {
		return p.failClaim(ctx, record, holdsWindow, err)
	}

	if err := p.store.UpdateClaimStatus(ctx, scanID, schema.ClaimStatusPending, schema.ClaimStatusCollected, proof); err != nil {
		// A sweeper can win the race and fail the row first; the anchored
		// payload stays in the log either way and reconciliation will
		// surface the mismatch.
		if errors.Is(err, store.ErrTransitionConflict) {
			stored, getErr := p.store.GetClaimByID(ctx, scanID)
			if getErr == nil && stored != nil {
				return &Result{Claim: stored, Status: stored.Status},
					fmt.Errorf("claim %s was finalized concurrently as %s", scanID, stored.Status)
			}
		}
		return nil, err
	}
	record.Status = schema.ClaimStatusCollected
	record.SetProof(proof)

	p.fanout(ctx, &message)

	logger.InfoCtx(ctx, "claim collected",
		zap.String("scan_id", scanID),
		zap.String("event_id", input.EventID),
		zap.String("subject_did", string(input.SubjectDID)),
		zap.Uint64("sequence_number", proof.SequenceNumber))

	return &Result{Claim: record, Status: schema.ClaimStatusCollected}, nil
}

// admit validates the scan against the event, the agent assignment and the
// subject identity
func (p *processor) admit(ctx context.Context, input ScanInput) (*schema.Event, error) {
	if input.EventID == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrValidation)
	}
	if input.AgentID == "" {
		return nil, fmt.Errorf("%w: agent id is required", domain.ErrValidation)
	}
	if !input.SubjectDID.Valid() {
		return nil, fmt.Errorf("%w: malformed subject did %q", domain.ErrValidation, input.SubjectDID)
	}

	event, err := p.store.GetEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, domain.ErrEventNotFound
	}
	if event.Status != schema.EventStatusActive {
		return nil, fmt.Errorf("%w: event %s is %s", domain.ErrEventClosed, event.ID, event.Status)
	}

	authorized, err := p.store.IsAgentAssigned(ctx, input.EventID, input.AgentID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, fmt.Errorf("%w: agent %s is not assigned to event %s", domain.ErrUnauthorizedClaim, input.AgentID, input.EventID)
	}

	subject, err := p.store.GetIdentityByDID(ctx, input.SubjectDID)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, fmt.Errorf("%w: unknown subject %s", domain.ErrSubjectNotFound, input.SubjectDID)
	}

	return event, nil
}

// blockDuplicate records the rejected attempt and returns the duplicate
// outcome. The blocked row never enters the active index.
func (p *processor) blockDuplicate(ctx context.Context, record *schema.ClaimRecord, blocking *schema.ClaimRecord) (*Result, error) {
	record.Status = schema.ClaimStatusDuplicateBlocked
	if err := p.store.CreateClaimRecord(ctx, record); err != nil {
		return nil, err
	}

	logger.WarnCtx(ctx, "duplicate claim blocked",
		zap.String("scan_id", record.ID),
		zap.String("event_id", record.EventID),
		zap.String("subject_did", record.SubjectID))

	return &Result{Claim: record, Status: schema.ClaimStatusDuplicateBlocked, Duplicate: blocking}, nil
}

// failClaim finalizes a pending row whose anchoring exhausted its budget.
// The failed row frees both the active slot and the aid window, so the
// subject keeps its entitlement.
func (p *processor) failClaim(ctx context.Context, record *schema.ClaimRecord, holdsWindow bool, cause error) (*Result, error) {
	if err := p.store.UpdateClaimStatus(ctx, record.ID, schema.ClaimStatusPending, schema.ClaimStatusFailed, nil); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "failed to finalize unanchored claim"),
			zap.String("scan_id", record.ID))
	}
	if holdsWindow {
		p.releaseWindow(ctx, record)
	}
	record.Status = schema.ClaimStatusFailed

	logger.ErrorCtx(ctx, cause,
		zap.String("message", "claim anchoring failed"),
		zap.String("scan_id", record.ID),
		zap.String("event_id", record.EventID))

	return &Result{Claim: record, Status: schema.ClaimStatusFailed}, cause
}

func (p *processor) releaseWindow(ctx context.Context, record *schema.ClaimRecord) {
	if err := p.store.ReleaseAidWindow(ctx, record.SubjectID, record.AidType, record.ID); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "failed to release aid window"),
			zap.String("scan_id", record.ID))
	}
}

// fanout publishes the collected claim. Failures are logged, never
// propagated: the ledger and the consensus log are already consistent.
func (p *processor) fanout(ctx context.Context, message *domain.DistributionMessage) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.PublishDistribution(ctx, message); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "failed to publish collected claim"),
			zap.String("scan_id", message.ScanID))
	}
}

func (p *processor) Get(ctx context.Context, scanID string) (*schema.ClaimRecord, error) {
	record, err := p.store.GetClaimByID(ctx, scanID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrClaimNotFound
	}
	return record, nil
}

func (p *processor) List(ctx context.Context, filter store.ClaimFilter) ([]schema.ClaimRecord, error) {
	return p.store.ListClaims(ctx, filter)
}
