package store

import (
	"context"
	"errors"
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// ErrTransitionConflict is returned by UpdateClaimStatus when the record is
// no longer in the expected from-status. Collected rows are immutable, so a
// conflicting transition is refused rather than applied.
var ErrTransitionConflict = errors.New("claim is not in the expected status")

// ClaimFilter narrows ListClaims results
type ClaimFilter struct {
	EventID   string
	SubjectID string
	Statuses  []schema.ClaimStatus
	Since     *time.Time
	Limit     int
}

// Store defines the interface for database operations. Duplicate detection
// is never a read followed by a write: the *IfAbsent and AcquireAidWindow
// primitives are atomic at the storage layer.
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetIdentityBySubjectRef retrieves an identity by its external subject
	// reference, or nil when none exists
	GetIdentityBySubjectRef(ctx context.Context, subjectRef string) (*schema.Identity, error)
	// GetIdentityByDID retrieves an identity by DID, or nil when none exists
	GetIdentityByDID(ctx context.Context, did domain.DID) (*schema.Identity, error)
	// CreateIdentityIfAbsent inserts the identity unless one already exists
	// for its subject_ref. Returns created=false and the stored row when the
	// insert lost to an existing record.
	CreateIdentityIfAbsent(ctx context.Context, identity *schema.Identity) (bool, *schema.Identity, error)
	// ListIdentities retrieves identities created at or after since (all when nil)
	ListIdentities(ctx context.Context, since *time.Time) ([]schema.Identity, error)

	// CreateEvent registers a new distribution event
	CreateEvent(ctx context.Context, event *schema.Event) error
	// GetEvent retrieves an event with its agent assignments, or nil when absent
	GetEvent(ctx context.Context, id string) (*schema.Event, error)
	// UpdateEventStatus moves an event through its lifecycle
	UpdateEventStatus(ctx context.Context, id string, status schema.EventStatus) error
	// AssignAgent assigns an agent to an event; returns false when the
	// assignment already existed
	AssignAgent(ctx context.Context, eventID, agentID string) (bool, error)
	// IsAgentAssigned reports whether the agent is assigned to the event
	IsAgentAssigned(ctx context.Context, eventID, agentID string) (bool, error)

	// CreateClaimIfAbsent inserts a pending claim unless an active
	// (pending or collected) claim already exists at (subject_id, event_id).
	// Returns created=false and the blocking row when the insert lost.
	CreateClaimIfAbsent(ctx context.Context, claim *schema.ClaimRecord) (bool, *schema.ClaimRecord, error)
	// CreateClaimRecord inserts a claim row unconditionally; used for
	// duplicate-blocked audit records which never enter the active index
	CreateClaimRecord(ctx context.Context, claim *schema.ClaimRecord) error
	// UpdateClaimStatus transitions a claim from one status to another,
	// attaching the proof when given. Returns ErrTransitionConflict when the
	// record is not in the from-status.
	UpdateClaimStatus(ctx context.Context, id string, from, to schema.ClaimStatus, proof *domain.AnchorProof) error
	// GetClaimByID retrieves a claim by its id, or nil when absent
	GetClaimByID(ctx context.Context, id string) (*schema.ClaimRecord, error)
	// GetActiveClaim retrieves the pending or collected claim at
	// (subject_id, event_id), or nil when none exists
	GetActiveClaim(ctx context.Context, subjectID, eventID string) (*schema.ClaimRecord, error)
	// ListClaims retrieves claims matching the filter, newest first
	ListClaims(ctx context.Context, filter ClaimFilter) ([]schema.ClaimRecord, error)
	// ListPendingClaimsBefore retrieves pending claims created before cutoff,
	// oldest first, for crash recovery
	ListPendingClaimsBefore(ctx context.Context, cutoff time.Time, limit int) ([]schema.ClaimRecord, error)

	// AcquireAidWindow atomically takes the (subject_id, aid_type) window
	// slot for claimID until expiresAt. Returns false when another claim
	// holds an unexpired slot.
	AcquireAidWindow(ctx context.Context, subjectID string, aidType domain.AidType, claimID string, expiresAt time.Time) (bool, error)
	// ReleaseAidWindow frees the window slot if claimID still holds it
	ReleaseAidWindow(ctx context.Context, subjectID string, aidType domain.AidType, claimID string) error
}
