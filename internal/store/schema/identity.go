package schema

import (
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
)

// IdentityStatus represents the lifecycle state of a beneficiary identity
type IdentityStatus string

const (
	// IdentityStatusActive marks an identity usable for claims
	IdentityStatusActive IdentityStatus = "active"
	// IdentityStatusDeactivated marks a retired identity
	IdentityStatusDeactivated IdentityStatus = "deactivated"
)

// Identity represents the identities table - one row per beneficiary,
// keyed by the stable external subject reference (e.g. a wristband id)
type Identity struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// SubjectRef is the stable external reference; unique so that re-issuing
	// an identity for the same subject can never create a second row
	SubjectRef string `gorm:"column:subject_ref;not null;uniqueIndex;type:text"`
	// DID is the decentralized identifier derived from the public key
	DID domain.DID `gorm:"column:did;not null;uniqueIndex;type:text"`
	// PublicKey is the hex-encoded ed25519 public key
	PublicKey string `gorm:"column:public_key;not null;type:text"`
	// PrivateKey is the hex-encoded ed25519 private key held for the subject
	PrivateKey string `gorm:"column:private_key;not null;type:text"`
	// Status is the identity lifecycle state
	Status IdentityStatus `gorm:"column:status;not null;type:text;default:'active'"`
	// Anchor proof columns; identities are only persisted after anchoring
	// succeeded, so these are set on insert
	AnchorTransactionID      *string    `gorm:"column:anchor_transaction_id;type:text"`
	AnchorSequenceNumber     *uint64    `gorm:"column:anchor_sequence_number"`
	AnchorConsensusTimestamp *time.Time `gorm:"column:anchor_consensus_timestamp;type:timestamptz"`
	AnchorRunningHash        *string    `gorm:"column:anchor_running_hash;type:text"`
	// CreatedAt is the timestamp when this identity was issued
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Identity model
func (Identity) TableName() string {
	return "identities"
}

// Proof assembles the stored anchor columns into a domain proof, or nil
// when the identity carries none.
func (i *Identity) Proof() *domain.AnchorProof {
	if i.AnchorTransactionID == nil {
		return nil
	}
	proof := domain.AnchorProof{TransactionID: *i.AnchorTransactionID}
	if i.AnchorSequenceNumber != nil {
		proof.SequenceNumber = *i.AnchorSequenceNumber
	}
	if i.AnchorConsensusTimestamp != nil {
		proof.ConsensusTimestamp = *i.AnchorConsensusTimestamp
	}
	if i.AnchorRunningHash != nil {
		proof.RunningHash = *i.AnchorRunningHash
	}
	return &proof
}
