package store

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestIdentity(t *testing.T, subjectRef string) *schema.Identity {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	txID := fmt.Sprintf("0.0.1001@%d.000000001", time.Now().Unix())
	seq := uint64(1)
	consensus := time.Now().UTC().Truncate(time.Microsecond)
	hash := "cmgnbGhhc2g="

	return &schema.Identity{
		SubjectRef:               subjectRef,
		DID:                      domain.NewDID(pub),
		PublicKey:                hex.EncodeToString(pub),
		PrivateKey:               hex.EncodeToString(priv),
		Status:                   schema.IdentityStatusActive,
		AnchorTransactionID:      &txID,
		AnchorSequenceNumber:     &seq,
		AnchorConsensusTimestamp: &consensus,
		AnchorRunningHash:        &hash,
		CreatedAt:                time.Now().UTC(),
	}
}

func buildTestEvent(aidType domain.AidType, policy domain.DedupPolicy) *schema.Event {
	now := time.Now().UTC()
	return &schema.Event{
		ID:          ulid.Make().String(),
		Name:        "Camp North food distribution",
		AidType:     aidType,
		DedupPolicy: policy,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		Status:      schema.EventStatusActive,
	}
}

func buildTestClaim(subjectID, eventID string, aidType domain.AidType) *schema.ClaimRecord {
	return &schema.ClaimRecord{
		ID:        ulid.Make().String(),
		SubjectID: subjectID,
		EventID:   eventID,
		AgentID:   "agent-001",
		AidType:   aidType,
		Status:    schema.ClaimStatusPending,
		Payload:   datatypes.JSON([]byte(`{"type":"distribution"}`)),
		Timestamp: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func buildTestProof() *domain.AnchorProof {
	return &domain.AnchorProof{
		TransactionID:      "0.0.1001@1756700000.000000042",
		SequenceNumber:     42,
		ConsensusTimestamp: time.Now().UTC().Truncate(time.Microsecond),
		RunningHash:        "aGFzaDQy",
	}
}

// =============================================================================
// Test: Identities
// =============================================================================

func testCreateIdentityIfAbsent(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("first insert wins", func(t *testing.T) {
		identity := buildTestIdentity(t, "wristband-0001")

		created, stored, err := store.CreateIdentityIfAbsent(ctx, identity)
		require.NoError(t, err)
		assert.True(t, created)
		require.NotNil(t, stored)
		assert.Equal(t, identity.DID, stored.DID)
		assert.NotZero(t, stored.ID)
	})

	t.Run("second insert returns the stored row", func(t *testing.T) {
		first := buildTestIdentity(t, "wristband-0002")
		created, _, err := store.CreateIdentityIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, created)

		second := buildTestIdentity(t, "wristband-0002")
		created, stored, err := store.CreateIdentityIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		require.NotNil(t, stored)
		assert.Equal(t, first.DID, stored.DID, "losing insert must surface the original identity")
	})

	t.Run("lookup round trips", func(t *testing.T) {
		identity := buildTestIdentity(t, "wristband-0003")
		_, _, err := store.CreateIdentityIfAbsent(ctx, identity)
		require.NoError(t, err)

		bySubject, err := store.GetIdentityBySubjectRef(ctx, "wristband-0003")
		require.NoError(t, err)
		require.NotNil(t, bySubject)
		assert.Equal(t, identity.DID, bySubject.DID)
		require.NotNil(t, bySubject.Proof())
		assert.Equal(t, *identity.AnchorTransactionID, bySubject.Proof().TransactionID)

		byDID, err := store.GetIdentityByDID(ctx, identity.DID)
		require.NoError(t, err)
		require.NotNil(t, byDID)
		assert.Equal(t, "wristband-0003", byDID.SubjectRef)
	})

	t.Run("absent lookups return nil without error", func(t *testing.T) {
		identity, err := store.GetIdentityBySubjectRef(ctx, "wristband-none")
		require.NoError(t, err)
		assert.Nil(t, identity)

		identity, err = store.GetIdentityByDID(ctx, domain.DID("did:haid:0000000000000000000000000000dead"))
		require.NoError(t, err)
		assert.Nil(t, identity)
	})
}

// =============================================================================
// Test: Events and agent assignments
// =============================================================================

func testEventLifecycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		event := buildTestEvent(domain.AidTypeFood, domain.DedupStrict)
		require.NoError(t, store.CreateEvent(ctx, event))

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, event.Name, got.Name)
		assert.Equal(t, domain.AidTypeFood, got.AidType)
		assert.Equal(t, domain.DedupStrict, got.DedupPolicy)
	})

	t.Run("missing event returns nil", func(t *testing.T) {
		got, err := store.GetEvent(ctx, ulid.Make().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("status update", func(t *testing.T) {
		event := buildTestEvent(domain.AidTypeWater, domain.DedupStrict)
		event.Status = schema.EventStatusScheduled
		require.NoError(t, store.CreateEvent(ctx, event))

		require.NoError(t, store.UpdateEventStatus(ctx, event.ID, schema.EventStatusActive))

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.EventStatusActive, got.Status)
	})

	t.Run("status update on missing event", func(t *testing.T) {
		err := store.UpdateEventStatus(ctx, ulid.Make().String(), schema.EventStatusClosed)
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("agent assignment is idempotent", func(t *testing.T) {
		event := buildTestEvent(domain.AidTypeMedical, domain.DedupStrict)
		require.NoError(t, store.CreateEvent(ctx, event))

		assigned, err := store.AssignAgent(ctx, event.ID, "agent-42")
		require.NoError(t, err)
		assert.True(t, assigned)

		assigned, err = store.AssignAgent(ctx, event.ID, "agent-42")
		require.NoError(t, err)
		assert.False(t, assigned, "second assignment of the same agent must report already-assigned")

		ok, err := store.IsAgentAssigned(ctx, event.ID, "agent-42")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.IsAgentAssigned(ctx, event.ID, "agent-43")
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := store.GetEvent(ctx, event.ID)
		require.NoError(t, err)
		require.Len(t, got.Agents, 1)
		assert.Equal(t, "agent-42", got.Agents[0].AgentID)
	})
}

// =============================================================================
// Test: Claim insert and state machine
// =============================================================================

func testCreateClaimIfAbsent(t *testing.T, store Store) {
	ctx := context.Background()
	event := buildTestEvent(domain.AidTypeFood, domain.DedupStrict)
	require.NoError(t, store.CreateEvent(ctx, event))

	t.Run("first claim wins the slot", func(t *testing.T) {
		claim := buildTestClaim("did:haid:aaaa000000000000000000000000aaaa", event.ID, event.AidType)

		created, stored, err := store.CreateClaimIfAbsent(ctx, claim)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, claim.ID, stored.ID)
	})

	t.Run("pending claim blocks a second insert", func(t *testing.T) {
		subject := "did:haid:bbbb000000000000000000000000bbbb"
		first := buildTestClaim(subject, event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, created)

		second := buildTestClaim(subject, event.ID, event.AidType)
		created, existing, err := store.CreateClaimIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		require.NotNil(t, existing)
		assert.Equal(t, first.ID, existing.ID)
		assert.Equal(t, schema.ClaimStatusPending, existing.Status)
	})

	t.Run("collected claim blocks a second insert", func(t *testing.T) {
		subject := "did:haid:cccc000000000000000000000000cccc"
		first := buildTestClaim(subject, event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, created)
		require.NoError(t, store.UpdateClaimStatus(ctx, first.ID, schema.ClaimStatusPending, schema.ClaimStatusCollected, buildTestProof()))

		second := buildTestClaim(subject, event.ID, event.AidType)
		created, existing, err := store.CreateClaimIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, schema.ClaimStatusCollected, existing.Status)
	})

	t.Run("failed claim frees the slot", func(t *testing.T) {
		subject := "did:haid:dddd000000000000000000000000dddd"
		first := buildTestClaim(subject, event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, first)
		require.NoError(t, err)
		require.True(t, created)
		require.NoError(t, store.UpdateClaimStatus(ctx, first.ID, schema.ClaimStatusPending, schema.ClaimStatusFailed, nil))

		second := buildTestClaim(subject, event.ID, event.AidType)
		created, stored, err := store.CreateClaimIfAbsent(ctx, second)
		require.NoError(t, err)
		assert.True(t, created, "failed attempts must not block a retry")
		assert.Equal(t, second.ID, stored.ID)
	})

	t.Run("duplicate-blocked record coexists with the active claim", func(t *testing.T) {
		subject := "did:haid:eeee000000000000000000000000eeee"
		active := buildTestClaim(subject, event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, active)
		require.NoError(t, err)
		require.True(t, created)

		blocked := buildTestClaim(subject, event.ID, event.AidType)
		blocked.Status = schema.ClaimStatusDuplicateBlocked
		require.NoError(t, store.CreateClaimRecord(ctx, blocked))

		claims, err := store.ListClaims(ctx, ClaimFilter{SubjectID: subject, EventID: event.ID})
		require.NoError(t, err)
		assert.Len(t, claims, 2, "attempt history keeps both rows")
	})
}

func testUpdateClaimStatus(t *testing.T, store Store) {
	ctx := context.Background()
	event := buildTestEvent(domain.AidTypeShelter, domain.DedupStrict)
	require.NoError(t, store.CreateEvent(ctx, event))

	t.Run("pending to collected attaches the proof", func(t *testing.T) {
		claim := buildTestClaim("did:haid:11110000000000000000000000001111", event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, claim)
		require.NoError(t, err)
		require.True(t, created)

		proof := buildTestProof()
		require.NoError(t, store.UpdateClaimStatus(ctx, claim.ID, schema.ClaimStatusPending, schema.ClaimStatusCollected, proof))

		got, err := store.GetClaimByID(ctx, claim.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, schema.ClaimStatusCollected, got.Status)
		require.NotNil(t, got.Proof())
		assert.Equal(t, proof.TransactionID, got.Proof().TransactionID)
		assert.Equal(t, proof.SequenceNumber, got.Proof().SequenceNumber)
	})

	t.Run("collected rows are immutable", func(t *testing.T) {
		claim := buildTestClaim("did:haid:22220000000000000000000000002222", event.ID, event.AidType)
		created, _, err := store.CreateClaimIfAbsent(ctx, claim)
		require.NoError(t, err)
		require.True(t, created)
		require.NoError(t, store.UpdateClaimStatus(ctx, claim.ID, schema.ClaimStatusPending, schema.ClaimStatusCollected, buildTestProof()))

		err = store.UpdateClaimStatus(ctx, claim.ID, schema.ClaimStatusPending, schema.ClaimStatusFailed, nil)
		assert.ErrorIs(t, err, ErrTransitionConflict)

		got, err := store.GetClaimByID(ctx, claim.ID)
		require.NoError(t, err)
		assert.Equal(t, schema.ClaimStatusCollected, got.Status)
	})

	t.Run("missing claim reports conflict", func(t *testing.T) {
		err := store.UpdateClaimStatus(ctx, ulid.Make().String(), schema.ClaimStatusPending, schema.ClaimStatusFailed, nil)
		assert.ErrorIs(t, err, ErrTransitionConflict)
	})
}

func testClaimQueries(t *testing.T, store Store) {
	ctx := context.Background()
	event := buildTestEvent(domain.AidTypeFood, domain.DedupStrict)
	require.NoError(t, store.CreateEvent(ctx, event))
	other := buildTestEvent(domain.AidTypeWater, domain.DedupStrict)
	require.NoError(t, store.CreateEvent(ctx, other))

	subject := "did:haid:33330000000000000000000000003333"
	collected := buildTestClaim(subject, event.ID, event.AidType)
	created, _, err := store.CreateClaimIfAbsent(ctx, collected)
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, store.UpdateClaimStatus(ctx, collected.ID, schema.ClaimStatusPending, schema.ClaimStatusCollected, buildTestProof()))

	pending := buildTestClaim(subject, other.ID, other.AidType)
	pending.CreatedAt = time.Now().Add(-time.Hour)
	created, _, err = store.CreateClaimIfAbsent(ctx, pending)
	require.NoError(t, err)
	require.True(t, created)

	t.Run("active claim lookup", func(t *testing.T) {
		got, err := store.GetActiveClaim(ctx, subject, event.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, collected.ID, got.ID)

		got, err = store.GetActiveClaim(ctx, subject, ulid.Make().String())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list by event and status", func(t *testing.T) {
		claims, err := store.ListClaims(ctx, ClaimFilter{
			EventID:  event.ID,
			Statuses: []schema.ClaimStatus{schema.ClaimStatusCollected},
		})
		require.NoError(t, err)
		require.Len(t, claims, 1)
		assert.Equal(t, collected.ID, claims[0].ID)
	})

	t.Run("stale pending claims surface for recovery", func(t *testing.T) {
		claims, err := store.ListPendingClaimsBefore(ctx, time.Now().Add(-30*time.Minute), 10)
		require.NoError(t, err)
		require.Len(t, claims, 1)
		assert.Equal(t, pending.ID, claims[0].ID)
	})
}

// =============================================================================
// Test: Aid windows
// =============================================================================

func testAidWindows(t *testing.T, store Store) {
	ctx := context.Background()
	subject := "did:haid:44440000000000000000000000004444"

	t.Run("slot is exclusive until it expires", func(t *testing.T) {
		ok, err := store.AcquireAidWindow(ctx, subject, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.AcquireAidWindow(ctx, subject, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok, "unexpired slot must block the second acquire")

		// A different aid type is an independent slot.
		ok, err = store.AcquireAidWindow(ctx, subject, domain.AidTypeWater, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("expired slot can be taken over", func(t *testing.T) {
		other := "did:haid:55550000000000000000000000005555"
		ok, err := store.AcquireAidWindow(ctx, other, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(-time.Minute))
		require.NoError(t, err)
		require.True(t, ok)

		ok, err = store.AcquireAidWindow(ctx, other, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("release frees the slot for the holder only", func(t *testing.T) {
		other := "did:haid:66660000000000000000000000006666"
		holder := ulid.Make().String()
		ok, err := store.AcquireAidWindow(ctx, other, domain.AidTypeFood, holder, time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		require.True(t, ok)

		// A release by a claim that does not hold the slot is a no-op.
		require.NoError(t, store.ReleaseAidWindow(ctx, other, domain.AidTypeFood, ulid.Make().String()))
		ok, err = store.AcquireAidWindow(ctx, other, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, store.ReleaseAidWindow(ctx, other, domain.AidTypeFood, holder))
		ok, err = store.AcquireAidWindow(ctx, other, domain.AidTypeFood, ulid.Make().String(), time.Now().Add(24*time.Hour))
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

// =============================================================================
// Test Suite Runner
// =============================================================================

// RunStoreTests runs the complete test suite against a store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateIdentityIfAbsent", testCreateIdentityIfAbsent},
		{"EventLifecycle", testEventLifecycle},
		{"CreateClaimIfAbsent", testCreateClaimIfAbsent},
		{"UpdateClaimStatus", testUpdateClaimStatus},
		{"ClaimQueries", testClaimQueries},
		{"AidWindows", testAidWindows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
