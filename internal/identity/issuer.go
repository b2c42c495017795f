// Package identity issues decentralized identifiers for beneficiaries and
// anchors the issuance to the consensus log before persisting it.
package identity

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// Issued is the result of an issuance request
type Issued struct {
	Identity *schema.Identity
	// Created is false when the subject already had an identity and the
	// stored one was returned instead
	Created bool
}

// Issuer issues one identity per subject reference. Issue is idempotent:
// repeated calls for the same subject return the same DID, whether the
// repeat races the first call or arrives long after it.
//
//go:generate mockgen -source=issuer.go -destination=../mocks/identity.go -package=mocks -mock_names=Issuer=MockIdentityIssuer
type Issuer interface {
	// Issue returns the subject's identity, creating and anchoring it first
	// when none exists
	Issue(ctx context.Context, subjectRef string) (*Issued, error)
	// Resolve looks up an identity by DID, or nil when unknown
	Resolve(ctx context.Context, did domain.DID) (*schema.Identity, error)
}

// attempt is an issuance that generated a keypair but has not been persisted
// yet. It is kept so that a retry after an anchoring failure re-anchors the
// same DID instead of minting a fresh one per attempt.
type attempt struct {
	publicKey  ed25519.PublicKey
	privateKey ed25519.PrivateKey
	did        domain.DID
}

type issuer struct {
	store     store.Store
	anchorer  anchor.Client
	publisher messaging.Publisher
	clock     adapter.Clock
	mu        sync.Mutex
	locks     map[string]*sync.Mutex
	attempts  map[string]*attempt
}

// NewIssuer creates an identity issuer
func NewIssuer(st store.Store, anchorer anchor.Client, publisher messaging.Publisher, clock adapter.Clock) Issuer {
	return &issuer{
		store:     st,
		anchorer:  anchorer,
		publisher: publisher,
		clock:     clock,
		locks:     make(map[string]*sync.Mutex),
		attempts:  make(map[string]*attempt),
	}
}

// lockSubject serializes issuance per subject within this process. The
// unique constraint on subject_ref remains the cross-process guarantee.
func (i *issuer) lockSubject(subjectRef string) func() {
	i.mu.Lock()
	lock, ok := i.locks[subjectRef]
	if !ok {
		lock = &sync.Mutex{}
		i.locks[subjectRef] = lock
	}
	i.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

func (i *issuer) Issue(ctx context.Context, subjectRef string) (*Issued, error) {
	if subjectRef == "" {
		return nil, fmt.Errorf("%w: subject reference is required", domain.ErrValidation)
	}

	unlock := i.lockSubject(subjectRef)
	defer unlock()

	existing, err := i.store.GetIdentityBySubjectRef(ctx, subjectRef)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &Issued{Identity: existing, Created: false}, nil
	}

	pending, err := i.pendingAttempt(subjectRef)
	if err != nil {
		return nil, err
	}

	message := domain.IdentityMessage{
		Type:       domain.MessageTypeIdentityCreated,
		SubjectRef: subjectRef,
		DID:        pending.did,
		Timestamp:  i.clock.Now().Unix(),
	}

	proof, err := i.anchorer.Anchor(ctx, message)
	if err != nil {
		// The attempt stays cached: a retry re-anchors the same DID.
		logger.ErrorCtx(ctx, err,
			zap.String("message", "identity anchoring failed"),
			zap.String("did", pending.did.String()))
		return nil, fmt.Errorf("identity for subject cannot be issued: %w", err)
	}

	identity := &schema.Identity{
		SubjectRef:               subjectRef,
		DID:                      pending.did,
		PublicKey:                hex.EncodeToString(pending.publicKey),
		PrivateKey:               hex.EncodeToString(pending.privateKey),
		Status:                   schema.IdentityStatusActive,
		AnchorTransactionID:      &proof.TransactionID,
		AnchorSequenceNumber:     &proof.SequenceNumber,
		AnchorConsensusTimestamp: &proof.ConsensusTimestamp,
		AnchorRunningHash:        &proof.RunningHash,
		CreatedAt:                i.clock.Now().UTC(),
	}

	created, stored, err := i.store.CreateIdentityIfAbsent(ctx, identity)
	if err != nil {
		return nil, err
	}

	i.mu.Lock()
	delete(i.attempts, subjectRef)
	i.mu.Unlock()

	if created {
		i.fanout(ctx, &message)
		logger.InfoCtx(ctx, "identity issued",
			zap.String("did", stored.DID.String()),
			zap.Uint64("sequence_number", proof.SequenceNumber))
	}

	return &Issued{Identity: stored, Created: created}, nil
}

// fanout publishes the issued identity. Failures are logged, never
// propagated: the identity is already anchored and persisted.
func (i *issuer) fanout(ctx context.Context, message *domain.IdentityMessage) {
	if i.publisher == nil {
		return
	}
	if err := i.publisher.PublishIdentity(ctx, message); err != nil {
		logger.ErrorCtx(ctx, err,
			zap.String("message", "failed to publish issued identity"),
			zap.String("did", message.DID.String()))
	}
}

// pendingAttempt returns the cached un-persisted attempt for the subject,
// generating a fresh keypair only when none exists.
func (i *issuer) pendingAttempt(subjectRef string) (*attempt, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if pending, ok := i.attempts[subjectRef]; ok {
		return pending, nil
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}

	pending := &attempt{
		publicKey:  pub,
		privateKey: priv,
		did:        domain.NewDID(pub),
	}
	i.attempts[subjectRef] = pending
	return pending, nil
}

func (i *issuer) Resolve(ctx context.Context, did domain.DID) (*schema.Identity, error) {
	if !did.Valid() {
		return nil, fmt.Errorf("%w: malformed did %q", domain.ErrValidation, did)
	}
	return i.store.GetIdentityByDID(ctx, did)
}
