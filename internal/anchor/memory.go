package anchor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/domain"
)

type memoryRecord struct {
	record    Record
	visibleAt time.Time
}

// MemoryTransport is an in-process consensus log for local development and
// tests. Records become queryable only after the visibility delay, modeling
// mirror node lag behind consensus.
type MemoryTransport struct {
	mu              sync.Mutex
	clock           adapter.Clock
	visibilityDelay time.Duration
	sequence        uint64
	records         []memoryRecord

	failuresLeft  int
	failPermanent bool
}

// NewMemoryTransport creates an empty in-memory consensus log
func NewMemoryTransport(clock adapter.Clock, visibilityDelay time.Duration) *MemoryTransport {
	return &MemoryTransport{
		clock:           clock,
		visibilityDelay: visibilityDelay,
	}
}

// FailSubmissions makes the next n Submit calls fail. When permanent is
// true the failures are terminal and suppress retries.
func (t *MemoryTransport) FailSubmissions(n int, permanent bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.failuresLeft = n
	t.failPermanent = permanent
}

func (t *MemoryTransport) Submit(ctx context.Context, payload []byte) (*domain.AnchorProof, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.failuresLeft > 0 {
		t.failuresLeft--
		err := fmt.Errorf("consensus log unavailable")
		if t.failPermanent {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	t.sequence++
	now := t.clock.Now().UTC()
	proof := domain.AnchorProof{
		TransactionID:      fmt.Sprintf("memory@%d.%09d", now.Unix(), now.Nanosecond()),
		SequenceNumber:     t.sequence,
		ConsensusTimestamp: now,
		RunningHash:        fmt.Sprintf("%016x", t.sequence),
	}
	t.records = append(t.records, memoryRecord{
		record: Record{
			Payload: append([]byte(nil), payload...),
			Proof:   proof,
		},
		visibleAt: now.Add(t.visibilityDelay),
	})

	return &proof, nil
}

func (t *MemoryTransport) Query(ctx context.Context, filter Filter) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.clock.Now()
	var records []Record
	for _, entry := range t.records {
		if entry.visibleAt.After(now) {
			continue
		}
		if filter.Since != nil && entry.record.Proof.ConsensusTimestamp.Before(*filter.Since) {
			continue
		}
		records = append(records, entry.record)
		if filter.Limit > 0 && len(records) >= filter.Limit {
			break
		}
	}
	return records, nil
}
