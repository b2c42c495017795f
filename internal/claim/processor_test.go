package claim_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/claim"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/identity"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
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

// recordingPublisher captures published messages for assertions
type recordingPublisher struct {
	mu            sync.Mutex
	distributions []domain.DistributionMessage
}

func (p *recordingPublisher) PublishDistribution(_ context.Context, message *domain.DistributionMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.distributions = append(p.distributions, *message)
	return nil
}

func (p *recordingPublisher) PublishIdentity(_ context.Context, _ *domain.IdentityMessage) error {
	return nil
}

func (p *recordingPublisher) Close() {}

func (p *recordingPublisher) published() []domain.DistributionMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.DistributionMessage(nil), p.distributions...)
}

type processorFixture struct {
	store     store.Store
	transport *anchor.MemoryTransport
	anchorer  anchor.Client
	publisher *recordingPublisher
	processor claim.Processor
}

func setupProcessor(windowDuration time.Duration) *processorFixture {
	st := store.NewMemoryStore()
	transport := anchor.NewMemoryTransport(adapter.NewClock(), 0)
	anchorer := anchor.NewClient(transport, adapter.NewJSON(), adapter.NewJCS(), anchor.RetryPolicy{
		InitialInterval: 1,
		MaxInterval:     1,
		Multiplier:      1.0,
		MaxAttempts:     3,
	})
	publisher := &recordingPublisher{}

	return &processorFixture{
		store:     st,
		transport: transport,
		anchorer:  anchorer,
		publisher: publisher,
		processor: claim.NewProcessor(st, anchorer, publisher,
			adapter.NewClock(), adapter.NewJSON(), adapter.NewJCS(), windowDuration),
	}
}

// seedEvent creates an active event with one assigned agent
func (f *processorFixture) seedEvent(t *testing.T, aidType domain.AidType, policy domain.DedupPolicy) *schema.Event {
	ctx := context.Background()
	now := time.Now().UTC()
	event := &schema.Event{
		ID:          ulid.Make().String(),
		Name:        "Camp North distribution",
		AidType:     aidType,
		DedupPolicy: policy,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		Status:      schema.EventStatusActive,
	}
	require.NoError(t, f.store.CreateEvent(ctx, event))
	_, err := f.store.AssignAgent(ctx, event.ID, "agent-001")
	require.NoError(t, err)
	return event
}

// seedSubject issues an identity so scans can reference its DID
func (f *processorFixture) seedSubject(t *testing.T, subjectRef string) domain.DID {
	issuer := identity.NewIssuer(f.store, f.anchorer, messaging.NewNoopPublisher(), adapter.NewClock())
	issued, err := issuer.Issue(context.Background(), subjectRef)
	require.NoError(t, err)
	return issued.Identity.DID
}

func TestProcessor_Process_Collected(t *testing.T) {
	f := setupProcessor(0)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupStrict)
	subject := f.seedSubject(t, "wristband-0001")

	result, err := f.processor.Process(ctx, claim.ScanInput{
		EventID:    event.ID,
		SubjectDID: subject,
		AgentID:    "agent-001",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, schema.ClaimStatusCollected, result.Status)
	require.NotNil(t, result.Claim.Proof(), "a collected claim carries its consensus proof")

	stored, err := f.processor.Get(ctx, result.Claim.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, schema.ClaimStatusCollected, stored.Status)
	assert.Equal(t, result.Claim.Proof().SequenceNumber, stored.Proof().SequenceNumber)

	// The anchored payload is exactly the stored canonical payload.
	records, err := f.anchorer.Records(ctx, anchor.Filter{})
	require.NoError(t, err)
	var anchored [][]byte
	for _, r := range records {
		anchored = append(anchored, r.Payload)
	}
	assert.Contains(t, anchored, []byte(stored.Payload))

	published := f.publisher.published()
	require.Len(t, published, 1)
	assert.Equal(t, result.Claim.ID, published[0].ScanID)
	assert.Equal(t, subject, published[0].SubjectDID)
}

func TestProcessor_Process_StrictDuplicate(t *testing.T) {
	f := setupProcessor(0)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupStrict)
	subject := f.seedSubject(t, "wristband-0002")

	input := claim.ScanInput{EventID: event.ID, SubjectDID: subject, AgentID: "agent-001"}

	first, err := f.processor.Process(ctx, input)
	require.NoError(t, err)
	require.Equal(t, schema.ClaimStatusCollected, first.Status)

	second, err := f.processor.Process(ctx, input)
	require.NoError(t, err, "a duplicate is an outcome, not an error")
	assert.Equal(t, schema.ClaimStatusDuplicateBlocked, second.Status)
	require.NotNil(t, second.Duplicate)
	assert.Equal(t, first.Claim.ID, second.Duplicate.ID)
	assert.Nil(t, second.Claim.Proof(), "blocked attempts are never anchored")

	// Both attempts stay in the history.
	history, err := f.processor.List(ctx, store.ClaimFilter{SubjectID: string(subject), EventID: event.ID})
	require.NoError(t, err)
	assert.Len(t, history, 2)

	assert.Len(t, f.publisher.published(), 1, "only the collected claim is published")
}

func TestProcessor_Process_Admission(t *testing.T) {
	f := setupProcessor(0)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupStrict)
	subject := f.seedSubject(t, "wristband-0003")

	t.Run("unknown event", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID: ulid.Make().String(), SubjectDID: subject, AgentID: "agent-001",
		})
		assert.ErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("unassigned agent", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID: event.ID, SubjectDID: subject, AgentID: "agent-999",
		})
		assert.ErrorIs(t, err, domain.ErrUnauthorizedClaim)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID:    event.ID,
			SubjectDID: domain.DID("did:haid:00000000000000000000000000000000"),
			AgentID:    "agent-001",
		})
		assert.ErrorIs(t, err, domain.ErrSubjectNotFound)
	})

	t.Run("malformed subject did", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID: event.ID, SubjectDID: domain.DID("not-a-did"), AgentID: "agent-001",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing agent id", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID: event.ID, SubjectDID: subject,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, err := f.processor.Process(ctx, claim.ScanInput{
			SubjectDID: subject, AgentID: "agent-001",
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.NotErrorIs(t, err, domain.ErrEventNotFound)
	})

	t.Run("inactive event", func(t *testing.T) {
		closed := f.seedEvent(t, domain.AidTypeWater, domain.DedupStrict)
		require.NoError(t, f.store.UpdateEventStatus(ctx, closed.ID, schema.EventStatusClosed))

		_, err := f.processor.Process(ctx, claim.ScanInput{
			EventID: closed.ID, SubjectDID: subject, AgentID: "agent-001",
		})
		assert.ErrorIs(t, err, domain.ErrEventClosed)
	})
}

func TestProcessor_Process_AnchorFailureFreesEntitlement(t *testing.T) {
	f := setupProcessor(0)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupStrict)
	subject := f.seedSubject(t, "wristband-0004")
	input := claim.ScanInput{EventID: event.ID, SubjectDID: subject, AgentID: "agent-001"}

	f.transport.FailSubmissions(3, false)

	result, err := f.processor.Process(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAnchorFailure)
	require.NotNil(t, result, "the failed attempt is still recorded")
	assert.Equal(t, schema.ClaimStatusFailed, result.Status)

	stored, getErr := f.processor.Get(ctx, result.Claim.ID)
	require.NoError(t, getErr)
	assert.Equal(t, schema.ClaimStatusFailed, stored.Status)
	assert.Nil(t, stored.Proof())

	// The failed attempt must not consume the entitlement.
	retry, err := f.processor.Process(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, schema.ClaimStatusCollected, retry.Status)
	assert.NotEqual(t, result.Claim.ID, retry.Claim.ID, "the retry is a fresh scan")

	assert.Len(t, f.publisher.published(), 1, "only the collected claim is published")
}

func TestProcessor_Process_ConcurrentScansOneWinner(t *testing.T) {
	f := setupProcessor(0)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupStrict)
	subject := f.seedSubject(t, "wristband-0005")
	input := claim.ScanInput{EventID: event.ID, SubjectDID: subject, AgentID: "agent-001"}

	const scans = 8
	var wg sync.WaitGroup
	results := make([]*claim.Result, scans)
	errs := make([]error, scans)

	for i := 0; i < scans; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.processor.Process(ctx, input)
		}(i)
	}
	wg.Wait()

	collected, blocked := 0, 0
	for i := 0; i < scans; i++ {
		require.NoError(t, errs[i])
		switch results[i].Status {
		case schema.ClaimStatusCollected:
			collected++
		case schema.ClaimStatusDuplicateBlocked:
			blocked++
		default:
			t.Fatalf("unexpected status %s", results[i].Status)
		}
	}
	assert.Equal(t, 1, collected, "exactly one concurrent scan may collect")
	assert.Equal(t, scans-1, blocked)

	assert.Len(t, f.publisher.published(), 1)
}

func TestProcessor_Process_WindowedPolicy(t *testing.T) {
	f := setupProcessor(24 * time.Hour)
	ctx := context.Background()
	subject := f.seedSubject(t, "wristband-0006")

	foodA := f.seedEvent(t, domain.AidTypeFood, domain.DedupWindowed)
	foodB := f.seedEvent(t, domain.AidTypeFood, domain.DedupWindowed)
	water := f.seedEvent(t, domain.AidTypeWater, domain.DedupWindowed)

	first, err := f.processor.Process(ctx, claim.ScanInput{
		EventID: foodA.ID, SubjectDID: subject, AgentID: "agent-001",
	})
	require.NoError(t, err)
	assert.Equal(t, schema.ClaimStatusCollected, first.Status)

	// Same aid type at a different event inside the window is a duplicate.
	second, err := f.processor.Process(ctx, claim.ScanInput{
		EventID: foodB.ID, SubjectDID: subject, AgentID: "agent-001",
	})
	require.NoError(t, err)
	assert.Equal(t, schema.ClaimStatusDuplicateBlocked, second.Status)

	// A different aid type is an independent entitlement.
	third, err := f.processor.Process(ctx, claim.ScanInput{
		EventID: water.ID, SubjectDID: subject, AgentID: "agent-001",
	})
	require.NoError(t, err)
	assert.Equal(t, schema.ClaimStatusCollected, third.Status)
}

func TestProcessor_Process_WindowReleasedOnAnchorFailure(t *testing.T) {
	f := setupProcessor(24 * time.Hour)
	ctx := context.Background()
	event := f.seedEvent(t, domain.AidTypeFood, domain.DedupWindowed)
	subject := f.seedSubject(t, "wristband-0007")
	input := claim.ScanInput{EventID: event.ID, SubjectDID: subject, AgentID: "agent-001"}

	f.transport.FailSubmissions(3, false)

	result, err := f.processor.Process(ctx, input)
	require.Error(t, err)
	require.Equal(t, schema.ClaimStatusFailed, result.Status)

	// The window slot was released with the failure, so the retry collects.
	retry, err := f.processor.Process(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, schema.ClaimStatusCollected, retry.Status)
}
