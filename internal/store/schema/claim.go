package schema

import (
	"time"

	"gorm.io/datatypes"

	"github.com/Lideeyah/Haid/internal/domain"
)

// ClaimStatus represents the state of a claim record
type ClaimStatus string

const (
	// ClaimStatusPending marks a claim inserted but not yet anchored
	ClaimStatusPending ClaimStatus = "pending"
	// ClaimStatusCollected marks a successfully anchored claim; immutable once set
	ClaimStatusCollected ClaimStatus = "collected"
	// ClaimStatusDuplicateBlocked marks a rejected duplicate attempt, kept for audit
	ClaimStatusDuplicateBlocked ClaimStatus = "duplicate-blocked"
	// ClaimStatusFailed marks a claim whose anchoring exhausted retries; it
	// never blocks a later attempt on the same key
	ClaimStatusFailed ClaimStatus = "failed"
)

// ClaimRecord represents the claim_records table - one row per scan attempt.
// The partial unique index on (subject_id, event_id) over pending/collected
// rows is what makes the insert an atomic test-and-set: at most one attempt
// per key can ever be active, while duplicate-blocked and failed rows stay
// out of the index and keep the full attempt history.
type ClaimRecord struct {
	// ID is a ULID assigned per scan attempt (the scan_id in anchored payloads)
	ID string `gorm:"column:id;primaryKey;type:text"`
	// SubjectID is the beneficiary DID the claim credits
	SubjectID string `gorm:"column:subject_id;not null;type:text;uniqueIndex:udx_claims_active,priority:1,where:status = 'pending' OR status = 'collected'"`
	// EventID is the distribution event claimed against
	EventID string `gorm:"column:event_id;not null;type:text;uniqueIndex:udx_claims_active,priority:2;index:idx_claims_event"`
	// AgentID is the agent who performed the scan
	AgentID string `gorm:"column:agent_id;not null;type:text"`
	// AidType is copied from the event for windowed dedup queries
	AidType domain.AidType `gorm:"column:aid_type;not null;type:text"`
	// Status is the claim state machine position
	Status ClaimStatus `gorm:"column:status;not null;type:text;index:idx_claims_status"`
	// Payload is the canonicalized message anchored for this claim
	Payload datatypes.JSON `gorm:"column:payload;type:jsonb"`
	// Anchor proof columns; present only when Status is collected
	AnchorTransactionID      *string    `gorm:"column:anchor_transaction_id;type:text"`
	AnchorSequenceNumber     *uint64    `gorm:"column:anchor_sequence_number"`
	AnchorConsensusTimestamp *time.Time `gorm:"column:anchor_consensus_timestamp;type:timestamptz"`
	AnchorRunningHash        *string    `gorm:"column:anchor_running_hash;type:text"`
	// Timestamp is when the scan was made
	Timestamp time.Time `gorm:"column:timestamp;not null;type:timestamptz;index:idx_claims_timestamp"`
	// CreatedAt / UpdatedAt are record bookkeeping timestamps
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ClaimRecord model
func (ClaimRecord) TableName() string {
	return "claim_records"
}

// Proof assembles the stored anchor columns into a domain proof, or nil
// when the record carries none.
func (c *ClaimRecord) Proof() *domain.AnchorProof {
	if c.AnchorTransactionID == nil {
		return nil
	}
	proof := domain.AnchorProof{TransactionID: *c.AnchorTransactionID}
	if c.AnchorSequenceNumber != nil {
		proof.SequenceNumber = *c.AnchorSequenceNumber
	}
	if c.AnchorConsensusTimestamp != nil {
		proof.ConsensusTimestamp = *c.AnchorConsensusTimestamp
	}
	if c.AnchorRunningHash != nil {
		proof.RunningHash = *c.AnchorRunningHash
	}
	return &proof
}

// SetProof copies a domain proof into the anchor columns.
func (c *ClaimRecord) SetProof(proof *domain.AnchorProof) {
	if proof == nil {
		return
	}
	c.AnchorTransactionID = &proof.TransactionID
	c.AnchorSequenceNumber = &proof.SequenceNumber
	c.AnchorConsensusTimestamp = &proof.ConsensusTimestamp
	c.AnchorRunningHash = &proof.RunningHash
}

// ClaimWindow represents the claim_windows table - the slot a subject holds
// for an aid type under the windowed dedup policy. Acquisition is a
// conditional upsert: a slot can be taken over only once it has expired.
type ClaimWindow struct {
	SubjectID string         `gorm:"column:subject_id;primaryKey;type:text"`
	AidType   domain.AidType `gorm:"column:aid_type;primaryKey;type:text"`
	// ClaimID is the claim currently holding the slot
	ClaimID string `gorm:"column:claim_id;not null;type:text"`
	// ExpiresAt is when the slot frees up for the next claim
	ExpiresAt time.Time `gorm:"column:expires_at;not null;type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the ClaimWindow model
func (ClaimWindow) TableName() string {
	return "claim_windows"
}
