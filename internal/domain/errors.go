package domain

import "errors"

var (
	// ErrValidation is returned for malformed input; nothing was mutated.
	ErrValidation = errors.New("validation failed")

	// ErrEventNotFound is returned when the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrSubjectNotFound is returned when the referenced beneficiary does not exist.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrEventClosed is returned when a claim targets a closed event.
	ErrEventClosed = errors.New("event closed")

	// ErrUnauthorizedClaim is returned when the agent is not assigned to the event.
	ErrUnauthorizedClaim = errors.New("agent not assigned to event")

	// ErrDuplicateClaim marks a blocked duplicate collection attempt. It is a
	// defined business outcome, not a failure.
	ErrDuplicateClaim = errors.New("duplicate claim")

	// ErrAgentAlreadyAssigned is returned when assigning an agent twice to an event.
	ErrAgentAlreadyAssigned = errors.New("agent already assigned")

	// ErrClaimNotFound is returned when the referenced claim does not exist.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrAnchorFailure is returned when the consensus log submission exhausted
	// its retries. The operation that hit it is safe to retry.
	ErrAnchorFailure = errors.New("anchor submission failed")
)
