package sweeper_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
	"github.com/Lideeyah/Haid/internal/sweeper"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type sweeperFixture struct {
	store    store.Store
	anchorer anchor.Client
	sweeper  sweeper.Sweeper
}

func setupSweeper() *sweeperFixture {
	st := store.NewMemoryStore()
	transport := anchor.NewMemoryTransport(adapter.NewClock(), 0)
	anchorer := anchor.NewClient(transport, adapter.NewJSON(), adapter.NewJCS(), anchor.RetryPolicy{
		InitialInterval: 1,
		MaxInterval:     1,
		Multiplier:      1.0,
		MaxAttempts:     3,
	})

	return &sweeperFixture{
		store:    st,
		anchorer: anchorer,
		sweeper: sweeper.NewStaleClaimSweeper(&sweeper.StaleClaimSweeperConfig{
			BatchSize:      10,
			WorkerPoolSize: 2,
			PendingTimeout: 5 * time.Minute,
		}, st, anchorer, messaging.NewNoopPublisher(), adapter.NewJSON(), adapter.NewClock()),
	}
}

// plantPending inserts a pending claim with the given age. When anchored is
// true its payload is written to the consensus log first, simulating a crash
// after anchoring but before finalization.
func (f *sweeperFixture) plantPending(t *testing.T, age time.Duration, anchored bool) *schema.ClaimRecord {
	ctx := context.Background()
	scanID := ulid.Make().String()

	message := domain.DistributionMessage{
		Type:       domain.MessageTypeDistribution,
		ScanID:     scanID,
		EventID:    ulid.Make().String(),
		SubjectDID: domain.DID("did:haid:aaaa000000000000000000000000aaaa"),
		AgentID:    "agent-001",
		AidType:    domain.AidTypeFood,
		Status:     string(schema.ClaimStatusCollected),
		Timestamp:  time.Now().Unix(),
	}
	payload, err := anchor.Canonicalize(adapter.NewJSON(), adapter.NewJCS(), message)
	require.NoError(t, err)

	if anchored {
		_, err := f.anchorer.Anchor(ctx, message)
		require.NoError(t, err)
	}

	record := &schema.ClaimRecord{
		ID:        scanID,
		SubjectID: string(message.SubjectDID),
		EventID:   message.EventID,
		AgentID:   message.AgentID,
		AidType:   message.AidType,
		Status:    schema.ClaimStatusPending,
		Payload:   datatypes.JSON(payload),
		Timestamp: time.Now().UTC().Add(-age),
		CreatedAt: time.Now().UTC().Add(-age),
	}
	created, _, err := f.store.CreateClaimIfAbsent(ctx, record)
	require.NoError(t, err)
	require.True(t, created)
	return record
}

func (f *sweeperFixture) runUntil(t *testing.T, condition func() bool) {
	done := make(chan error, 1)
	go func() {
		done <- f.sweeper.Start(context.Background())
	}()

	assert.Eventually(t, condition, 5*time.Second, 20*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.sweeper.Stop(stopCtx))
	require.NoError(t, <-done)
}

func (f *sweeperFixture) claimStatus(id string) schema.ClaimStatus {
	claim, err := f.store.GetClaimByID(context.Background(), id)
	if err != nil || claim == nil {
		return ""
	}
	return claim.Status
}

func TestStaleClaimSweeper_RecoversAnchoredClaim(t *testing.T) {
	f := setupSweeper()
	planted := f.plantPending(t, time.Hour, true)

	f.runUntil(t, func() bool {
		return f.claimStatus(planted.ID) == schema.ClaimStatusCollected
	})

	claim, err := f.store.GetClaimByID(context.Background(), planted.ID)
	require.NoError(t, err)
	require.NotNil(t, claim.Proof(), "recovery must attach the proof found in the log")
	assert.Equal(t, uint64(1), claim.Proof().SequenceNumber)
}

func TestStaleClaimSweeper_FailsUnanchoredClaim(t *testing.T) {
	f := setupSweeper()
	planted := f.plantPending(t, time.Hour, false)

	f.runUntil(t, func() bool {
		return f.claimStatus(planted.ID) == schema.ClaimStatusFailed
	})

	claim, err := f.store.GetClaimByID(context.Background(), planted.ID)
	require.NoError(t, err)
	assert.Nil(t, claim.Proof())
}

func TestStaleClaimSweeper_LeavesFreshClaimsAlone(t *testing.T) {
	f := setupSweeper()
	stale := f.plantPending(t, time.Hour, false)
	fresh := f.plantPending(t, time.Minute, false)

	f.runUntil(t, func() bool {
		return f.claimStatus(stale.ID) == schema.ClaimStatusFailed
	})

	assert.Equal(t, schema.ClaimStatusPending, f.claimStatus(fresh.ID),
		"claims inside the pending timeout are not touched")
}

func TestStaleClaimSweeper_StartIsExclusive(t *testing.T) {
	f := setupSweeper()
	planted := f.plantPending(t, time.Hour, false)

	done := make(chan error, 1)
	go func() {
		done <- f.sweeper.Start(context.Background())
	}()

	// The planted claim flipping proves the background Start owns the run
	// before the second Start is attempted.
	assert.Eventually(t, func() bool {
		return f.claimStatus(planted.ID) == schema.ClaimStatusFailed
	}, 5*time.Second, 20*time.Millisecond)

	err := f.sweeper.Start(context.Background())
	require.Error(t, err, "a second Start must be rejected while running")
	assert.Contains(t, err.Error(), "already running")

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.sweeper.Stop(stopCtx))
	require.NoError(t, <-done)
}
