package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

func initMemoryTestDB(t *testing.T) Store {
	return NewMemoryStore()
}

func cleanupMemoryTestDB(t *testing.T) {
	// Each test gets a fresh store, nothing to clean up
}

// TestMemoryStore runs all store tests against the in-memory implementation
func TestMemoryStore(t *testing.T) {
	RunStoreTests(t, initMemoryTestDB, cleanupMemoryTestDB)
}

// TestMemoryConcurrentClaimInsert races N inserts for the same key; exactly
// one may win, matching the PostgreSQL partial unique index semantics.
func TestMemoryConcurrentClaimInsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	event := buildTestEvent(domain.AidTypeFood, domain.DedupStrict)
	require.NoError(t, store.CreateEvent(ctx, event))
	subject := "did:haid:99990000000000000000000000009999"

	const attempts = 32
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claim := buildTestClaim(subject, event.ID, event.AidType)
			created, _, err := store.CreateClaimIfAbsent(ctx, claim)
			results[i] = created
			errs[i] = err
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)

	claims, err := store.ListClaims(ctx, ClaimFilter{SubjectID: subject,
		Statuses: []schema.ClaimStatus{schema.ClaimStatusPending}})
	require.NoError(t, err)
	assert.Len(t, claims, 1)
}

// TestMemoryConcurrentWindowAcquire races N acquisitions of one slot
func TestMemoryConcurrentWindowAcquire(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	subject := "did:haid:88880000000000000000000000008888"
	expiresAt := time.Now().Add(24 * time.Hour)

	const attempts = 32
	var wg sync.WaitGroup
	results := make([]bool, attempts)
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claim := buildTestClaim(subject, "event", domain.AidTypeFood)
			results[i], errs[i] = store.AcquireAidWindow(ctx, subject, domain.AidTypeFood, claim.ID, expiresAt)
		}(i)
	}
	wg.Wait()

	winners := 0
	for i := 0; i < attempts; i++ {
		require.NoError(t, errs[i])
		if results[i] {
			winners++
		}
	}
	assert.Equal(t, 1, winners)
}
