// Package audit reconciles the local claim ledger against the consensus
// log. The log is the source of truth: a collected claim must have its
// canonical payload anchored, and every anchored distribution must map back
// to a collected claim.
package audit

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// Filter narrows a reconciliation run
type Filter struct {
	// EventID restricts to claims of one event; empty means all events
	EventID string
	// Since restricts both the local claims and the log records to those
	// at or after this instant
	Since *time.Time
}

// Mismatch is a collected claim the consensus log does not corroborate
type Mismatch struct {
	Claim  schema.ClaimRecord `json:"claim"`
	Reason string             `json:"reason"`
}

// IdentityMismatch is a stored identity the consensus log does not
// corroborate
type IdentityMismatch struct {
	Identity schema.Identity `json:"identity"`
	Reason   string          `json:"reason"`
}

// Report is the outcome of one reconciliation run
type Report struct {
	// Verified counts collected claims whose canonical payload was found
	// anchored with a matching sequence number
	Verified []schema.ClaimRecord `json:"verified"`
	// Unverified lists collected claims the log does not corroborate
	Unverified []Mismatch `json:"unverified"`
	// Orphaned lists anchored records with nothing in the ledger behind
	// them, distributions and identity creations alike
	Orphaned []anchor.Record `json:"orphaned"`
	// VerifiedIdentities lists identities whose creation message was found
	// anchored with a matching sequence number
	VerifiedIdentities []schema.Identity `json:"verified_identities"`
	// UnverifiedIdentities lists identities the log does not corroborate
	UnverifiedIdentities []IdentityMismatch `json:"unverified_identities"`
	// Degraded is true when the consensus log was unreachable and only the
	// local side of the report is populated
	Degraded  bool      `json:"degraded"`
	CheckedAt time.Time `json:"checked_at"`
}

// Verifier reconciles the ledger against the consensus log
//
//go:generate mockgen -source=verifier.go -destination=../mocks/audit.go -package=mocks -mock_names=Verifier=MockAuditVerifier
type Verifier interface {
	// Reconcile cross-checks collected claims and anchored records. A log
	// outage yields a degraded report, not an error.
	Reconcile(ctx context.Context, filter Filter) (*Report, error)
	// VerifyClaim checks a single claim against the log
	VerifyClaim(ctx context.Context, scanID string) (*ClaimVerification, error)
}

// ClaimVerification is the consensus-side check of one claim
type ClaimVerification struct {
	Claim *schema.ClaimRecord `json:"claim"`
	// Anchored is true when the claim's canonical payload was found in the
	// log at its recorded sequence number
	Anchored bool `json:"anchored"`
	// Record is the matching log record when Anchored is true
	Record *anchor.Record `json:"record,omitempty"`
}

type verifier struct {
	store     store.Store
	anchorer  anchor.Client
	jsonCodec adapter.JSON
	clock     adapter.Clock
}

// NewVerifier creates an audit verifier
func NewVerifier(st store.Store, anchorer anchor.Client, jsonCodec adapter.JSON, clock adapter.Clock) Verifier {
	return &verifier{
		store:     st,
		anchorer:  anchorer,
		jsonCodec: jsonCodec,
		clock:     clock,
	}
}

func (v *verifier) Reconcile(ctx context.Context, filter Filter) (*Report, error) {
	report := &Report{CheckedAt: v.clock.Now().UTC()}

	claims, err := v.store.ListClaims(ctx, store.ClaimFilter{
		EventID:  filter.EventID,
		Statuses: []schema.ClaimStatus{schema.ClaimStatusCollected},
		Since:    filter.Since,
	})
	if err != nil {
		return nil, err
	}

	// Identities are event-agnostic, so they join the run only when it is
	// not narrowed to a single event.
	var identities []schema.Identity
	if filter.EventID == "" {
		identities, err = v.store.ListIdentities(ctx, filter.Since)
		if err != nil {
			return nil, err
		}
	}

	records, err := v.anchorer.Records(ctx, anchor.Filter{Since: filter.Since})
	if err != nil {
		// The log being unreachable must not block the audit view; the
		// local side is reported as-is and nothing is marked verified.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "consensus log unreachable, reporting degraded audit"))
		report.Degraded = true
		for _, c := range claims {
			report.Unverified = append(report.Unverified, Mismatch{
				Claim:  c,
				Reason: "consensus log unreachable",
			})
		}
		for _, ident := range identities {
			report.UnverifiedIdentities = append(report.UnverifiedIdentities, IdentityMismatch{
				Identity: ident,
				Reason:   "consensus log unreachable",
			})
		}
		return report, nil
	}

	// Index anchored distributions by their payload bytes and identity
	// creations by the DID they announce. Identities do not keep the exact
	// anchored bytes locally, so the DID is their join key.
	anchored := make(map[string]anchor.Record)
	didAnchored := make(map[string]anchor.Record)
	for _, record := range records {
		anchored[string(record.Payload)] = record

		var identityMsg domain.IdentityMessage
		if err := v.jsonCodec.Unmarshal(record.Payload, &identityMsg); err != nil {
			continue
		}
		if identityMsg.Type == domain.MessageTypeIdentityCreated && identityMsg.DID != "" {
			didAnchored[string(identityMsg.DID)] = record
		}
	}

	matched := make(map[string]bool)
	for _, c := range claims {
		record, ok := anchored[string(c.Payload)]
		switch {
		case !ok:
			report.Unverified = append(report.Unverified, Mismatch{
				Claim:  c,
				Reason: "payload not found in consensus log",
			})
		case c.Proof() != nil && c.Proof().SequenceNumber != record.Proof.SequenceNumber:
			report.Unverified = append(report.Unverified, Mismatch{
				Claim:  c,
				Reason: "stored proof does not match the anchored record",
			})
		default:
			matched[string(c.Payload)] = true
			report.Verified = append(report.Verified, c)
		}
	}

	matchedDIDs := make(map[string]bool)
	for _, ident := range identities {
		record, ok := didAnchored[string(ident.DID)]
		switch {
		case !ok:
			report.UnverifiedIdentities = append(report.UnverifiedIdentities, IdentityMismatch{
				Identity: ident,
				Reason:   "creation message not found in consensus log",
			})
		case ident.Proof() != nil && ident.Proof().SequenceNumber != record.Proof.SequenceNumber:
			report.UnverifiedIdentities = append(report.UnverifiedIdentities, IdentityMismatch{
				Identity: ident,
				Reason:   "stored proof does not match the anchored record",
			})
		default:
			matchedDIDs[string(ident.DID)] = true
			report.VerifiedIdentities = append(report.VerifiedIdentities, ident)
		}
	}

	for _, record := range records {
		if matched[string(record.Payload)] {
			continue
		}
		var message struct {
			Type    string `json:"type"`
			EventID string `json:"event_id"`
			DID     string `json:"did"`
		}
		if err := v.jsonCodec.Unmarshal(record.Payload, &message); err != nil {
			continue
		}
		switch message.Type {
		case domain.MessageTypeDistribution:
			if filter.EventID != "" && message.EventID != filter.EventID {
				continue
			}
		case domain.MessageTypeIdentityCreated:
			if filter.EventID != "" || matchedDIDs[message.DID] {
				continue
			}
		default:
			continue
		}
		report.Orphaned = append(report.Orphaned, record)
	}

	logger.InfoCtx(ctx, "reconciliation finished",
		zap.Int("verified", len(report.Verified)),
		zap.Int("unverified", len(report.Unverified)),
		zap.Int("verified_identities", len(report.VerifiedIdentities)),
		zap.Int("unverified_identities", len(report.UnverifiedIdentities)),
		zap.Int("orphaned", len(report.Orphaned)))

	return report, nil
}

func (v *verifier) VerifyClaim(ctx context.Context, scanID string) (*ClaimVerification, error) {
	claim, err := v.store.GetClaimByID(ctx, scanID)
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, domain.ErrClaimNotFound
	}

	result := &ClaimVerification{Claim: claim}
	if claim.Status != schema.ClaimStatusCollected {
		return result, nil
	}

	var since *time.Time
	if proof := claim.Proof(); proof != nil {
		// Start the read slightly before the recorded consensus instant to
		// tolerate clock truncation on the mirror side.
		cutoff := proof.ConsensusTimestamp.Add(-time.Second)
		since = &cutoff
	}

	records, err := v.anchorer.Records(ctx, anchor.Filter{Since: since})
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if string(record.Payload) != string(claim.Payload) {
			continue
		}
		if claim.Proof() != nil && claim.Proof().SequenceNumber != record.Proof.SequenceNumber {
			continue
		}
		result.Anchored = true
		result.Record = &record
		break
	}

	return result, nil
}
