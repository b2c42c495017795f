package dto

import (
	"encoding/json"
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// AnchorProofDTO is the consensus proof attached to anchored resources
type AnchorProofDTO struct {
	TransactionID      string    `json:"transaction_id"`
	SequenceNumber     uint64    `json:"sequence_number"`
	ConsensusTimestamp time.Time `json:"consensus_timestamp"`
	RunningHash        string    `json:"running_hash"`
}

// IdentityResponse represents an issued identity. The private key never
// leaves the server.
type IdentityResponse struct {
	DID        string          `json:"did"`
	SubjectRef string          `json:"subject_ref"`
	PublicKey  string          `json:"public_key"`
	Status     string          `json:"status"`
	Proof      *AnchorProofDTO `json:"proof,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EventResponse represents a distribution event
type EventResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	AidType     domain.AidType     `json:"aid_type"`
	DedupPolicy domain.DedupPolicy `json:"dedup_policy"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
	Status      string             `json:"status"`
	Agents      []string           `json:"agents,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ClaimResponse represents one claim record
type ClaimResponse struct {
	ScanID     string          `json:"scan_id"`
	SubjectDID string          `json:"subject_did"`
	EventID    string          `json:"event_id"`
	AgentID    string          `json:"agent_id"`
	AidType    domain.AidType  `json:"aid_type"`
	Status     string          `json:"status"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Proof      *AnchorProofDTO `json:"proof,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ScanResponse represents the outcome of a scan submission
type ScanResponse struct {
	Status    string         `json:"status"`
	Claim     *ClaimResponse `json:"claim"`
	Duplicate *ClaimResponse `json:"duplicate,omitempty"`
}

// ListClaimsResponse wraps a page of claims
type ListClaimsResponse struct {
	Claims []ClaimResponse `json:"claims"`
}

// NewAnchorProofDTO maps a domain proof, or nil
func NewAnchorProofDTO(proof *domain.AnchorProof) *AnchorProofDTO {
	if proof == nil {
		return nil
	}
	return &AnchorProofDTO{
		TransactionID:      proof.TransactionID,
		SequenceNumber:     proof.SequenceNumber,
		ConsensusTimestamp: proof.ConsensusTimestamp,
		RunningHash:        proof.RunningHash,
	}
}

// NewIdentityResponse maps a stored identity
func NewIdentityResponse(identity *schema.Identity) *IdentityResponse {
	return &IdentityResponse{
		DID:        string(identity.DID),
		SubjectRef: identity.SubjectRef,
		PublicKey:  identity.PublicKey,
		Status:     string(identity.Status),
		Proof:      NewAnchorProofDTO(identity.Proof()),
		CreatedAt:  identity.CreatedAt,
	}
}

// NewEventResponse maps a stored event with its agent assignments
func NewEventResponse(event *schema.Event) *EventResponse {
	agents := make([]string, 0, len(event.Agents))
	for _, a := range event.Agents {
		agents = append(agents, a.AgentID)
	}
	return &EventResponse{
		ID:          event.ID,
		Name:        event.Name,
		AidType:     event.AidType,
		DedupPolicy: event.DedupPolicy,
		StartTime:   event.StartTime,
		EndTime:     event.EndTime,
		Status:      string(event.Status),
		Agents:      agents,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

// NewClaimResponse maps a stored claim record
func NewClaimResponse(claim *schema.ClaimRecord) *ClaimResponse {
	return &ClaimResponse{
		ScanID:     claim.ID,
		SubjectDID: claim.SubjectID,
		EventID:    claim.EventID,
		AgentID:    claim.AgentID,
		AidType:    claim.AidType,
		Status:     string(claim.Status),
		Payload:    json.RawMessage(claim.Payload),
		Proof:      NewAnchorProofDTO(claim.Proof()),
		Timestamp:  claim.Timestamp,
		CreatedAt:  claim.CreatedAt,
		UpdatedAt:  claim.UpdatedAt,
	}
}
