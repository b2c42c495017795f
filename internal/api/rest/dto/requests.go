package dto

import (
	"fmt"
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
)

const (
	// MAX_SUBJECT_REF_LENGTH bounds the external subject reference
	MAX_SUBJECT_REF_LENGTH = 256
	// MAX_EVENT_NAME_LENGTH bounds the event name
	MAX_EVENT_NAME_LENGTH = 256
)

// IssueIdentityRequest represents the request body for issuing an identity
type IssueIdentityRequest struct {
	SubjectRef string `json:"subject_ref"`
}

// Validate validates the request body
func (r *IssueIdentityRequest) Validate() error {
	if r.SubjectRef == "" {
		return fmt.Errorf("subject_ref is required")
	}
	if len(r.SubjectRef) > MAX_SUBJECT_REF_LENGTH {
		return fmt.Errorf("subject_ref must be at most %d characters", MAX_SUBJECT_REF_LENGTH)
	}
	return nil
}

// CreateEventRequest represents the request body for registering an event
type CreateEventRequest struct {
	Name        string             `json:"name"`
	AidType     domain.AidType     `json:"aid_type"`
	DedupPolicy domain.DedupPolicy `json:"dedup_policy,omitempty"`
	StartTime   time.Time          `json:"start_time"`
	EndTime     time.Time          `json:"end_time"`
}

// Validate validates the request body
func (r *CreateEventRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if len(r.Name) > MAX_EVENT_NAME_LENGTH {
		return fmt.Errorf("name must be at most %d characters", MAX_EVENT_NAME_LENGTH)
	}
	if !r.AidType.Valid() {
		return fmt.Errorf("invalid aid type: %s", r.AidType)
	}
	if r.DedupPolicy != "" && !r.DedupPolicy.Valid() {
		return fmt.Errorf("invalid dedup policy: %s", r.DedupPolicy)
	}
	if r.StartTime.IsZero() || r.EndTime.IsZero() {
		return fmt.Errorf("start_time and end_time are required")
	}
	if !r.EndTime.After(r.StartTime) {
		return fmt.Errorf("end_time must be after start_time")
	}
	return nil
}

// AssignAgentRequest represents the request body for assigning an agent to an event
type AssignAgentRequest struct {
	AgentID string `json:"agent_id"`
}

// Validate validates the request body
func (r *AssignAgentRequest) Validate() error {
	if r.AgentID == "" {
		return fmt.Errorf("agent_id is required")
	}
	return nil
}

// SubmitScanRequest represents the request body for recording a scan.
// AgentID may be omitted when the caller authenticated with a JWT; the
// token subject is used instead.
type SubmitScanRequest struct {
	EventID    string `json:"event_id"`
	SubjectDID string `json:"subject_did"`
	AgentID    string `json:"agent_id,omitempty"`
}

// Validate validates the request body
func (r *SubmitScanRequest) Validate() error {
	if r.EventID == "" {
		return fmt.Errorf("event_id is required")
	}
	if r.SubjectDID == "" {
		return fmt.Errorf("subject_did is required")
	}
	if !domain.DID(r.SubjectDID).Valid() {
		return fmt.Errorf("invalid subject DID: %s", r.SubjectDID)
	}
	return nil
}
