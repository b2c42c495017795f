package domain

import (
	"time"
)

// AidType identifies the category of aid handed out at a distribution event.
type AidType string

const (
	AidTypeFood    AidType = "FOOD"
	AidTypeWater   AidType = "WATER"
	AidTypeMedical AidType = "MEDICAL"
	AidTypeShelter AidType = "SHELTER"
)

// Valid reports whether the aid type is one of the known categories.
func (a AidType) Valid() bool {
	switch a {
	case AidTypeFood, AidTypeWater, AidTypeMedical, AidTypeShelter:
		return true
	}
	return false
}

// DedupPolicy selects how duplicate claims are detected for an event.
type DedupPolicy string

const (
	// DedupStrict blocks a second claim for the same (subject, event) pair.
	DedupStrict DedupPolicy = "strict"
	// DedupWindowed blocks a second claim of the same aid type for the same
	// subject within a configured time window, independent of event identity.
	DedupWindowed DedupPolicy = "windowed"
)

// Valid reports whether the policy is one of the known strategies.
func (p DedupPolicy) Valid() bool {
	return p == DedupStrict || p == DedupWindowed
}

// AnchorProof is the evidence returned by the consensus log that a payload
// was durably recorded. It is opaque to the ledger beyond equality checks.
type AnchorProof struct {
	TransactionID      string    `json:"transaction_id"`
	SequenceNumber     uint64    `json:"sequence_number"`
	ConsensusTimestamp time.Time `json:"consensus_timestamp"`
	RunningHash        string    `json:"running_hash"`
}

// Message payload types written to the consensus log.
const (
	MessageTypeDistribution    = "distribution"
	MessageTypeIdentityCreated = "did_created"
)

// DistributionMessage is the payload anchored for every collected claim.
type DistributionMessage struct {
	Type       string  `json:"type"`
	ScanID     string  `json:"scan_id"`
	EventID    string  `json:"event_id"`
	SubjectDID DID     `json:"subject_did"`
	AgentID    string  `json:"agent_id"`
	AidType    AidType `json:"aid_type"`
	Status     string  `json:"status"`
	Timestamp  int64   `json:"timestamp"`
}

// IdentityMessage is the payload anchored when a DID is issued.
type IdentityMessage struct {
	Type       string `json:"type"`
	SubjectRef string `json:"subject_ref"`
	DID        DID    `json:"did"`
	Timestamp  int64  `json:"timestamp"`
}
