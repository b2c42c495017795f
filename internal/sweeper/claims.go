package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/Lideeyah/Haid/internal/adapter"
	"github.com/Lideeyah/Haid/internal/anchor"
	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/logger"
	"github.com/Lideeyah/Haid/internal/messaging"
	"github.com/Lideeyah/Haid/internal/store"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

const SWEEP_CYCLE_INTERVAL = 1 * time.Minute // Time to sleep between sweep cycles

// StaleClaimSweeperConfig holds configuration for the stale claim sweeper
type StaleClaimSweeperConfig struct {
	BatchSize      int           // Claims to recover per batch
	WorkerPoolSize int           // Concurrent workers
	PendingTimeout time.Duration // Only touch claims pending longer than this
}

// staleClaimSweeper recovers claims stuck in pending after a crash between
// anchoring and finalization. A stale claim is promoted to collected only
// when the consensus log actually holds its payload; otherwise it is failed,
// which frees the subject's entitlement for a fresh scan.
type staleClaimSweeper struct {
	config    *StaleClaimSweeperConfig
	store     store.Store
	anchorer  anchor.Client
	publisher messaging.Publisher
	jsonCodec adapter.JSON
	clock     adapter.Clock
	pool      pond.Pool
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewStaleClaimSweeper creates a new stale claim sweeper
func NewStaleClaimSweeper(
	config *StaleClaimSweeperConfig,
	st store.Store,
	anchorer anchor.Client,
	publisher messaging.Publisher,
	jsonCodec adapter.JSON,
	clock adapter.Clock,
) Sweeper {
	return &staleClaimSweeper{
		config:    config,
		store:     st,
		anchorer:  anchorer,
		publisher: publisher,
		jsonCodec: jsonCodec,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *staleClaimSweeper) Name() string {
	return "stale-claim-sweeper"
}

// Start begins the sweeper's main loop
func (s *staleClaimSweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh)
	}()

	logger.InfoCtx(ctx, "Starting stale claim sweeper",
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
		zap.Duration("pending_timeout", s.config.PendingTimeout),
	)

	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stale claim sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Stale claim sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *staleClaimSweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *staleClaimSweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping stale claim sweeper")

	close(s.stopChan)

	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Stale claim sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Stale claim sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *staleClaimSweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	cutoff := s.clock.Now().Add(-s.config.PendingTimeout)
	claims, err := s.store.ListPendingClaimsBefore(ctx, cutoff, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list stale pending claims: %w", err)
	}

	if len(claims) == 0 {
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err()
		}
		return nil
	}

	logger.InfoCtx(ctx, "Found stale pending claims", zap.Int("count", len(claims)))

	// One log read covers the whole batch; each worker matches its own
	// payload against it.
	oldest := claims[0].CreatedAt.Add(-time.Minute)
	records, err := s.anchorer.Records(ctx, anchor.Filter{Since: &oldest})
	if err != nil {
		// Without the log there is no safe verdict; leave the batch for
		// the next cycle.
		logger.ErrorCtx(ctx, fmt.Errorf("consensus log unreachable, deferring recovery: %w", err))
		if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
			return ctx.Err()
		}
		return nil
	}

	anchored := make(map[string]domain.AnchorProof, len(records))
	for _, record := range records {
		anchored[string(record.Payload)] = record.Proof
	}

	var recoveredCount, failedCount atomic.Int32

	for _, stale := range claims {
		s.pool.Submit(func() {
			if proof, ok := anchored[string(stale.Payload)]; ok {
				s.recover(ctx, stale, proof, &recoveredCount)
				return
			}
			s.fail(ctx, stale, &failedCount)
		})
	}

	s.pool.StopAndWait()

	// Recreate pool for next cycle
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.BatchSize),
		pond.WithContext(ctx),
	)

	logger.InfoCtx(ctx, "Sweep cycle completed",
		zap.Duration("duration", s.clock.Since(startTime)),
		zap.Int("total_stale", len(claims)),
		zap.Int32("recovered", recoveredCount.Load()),
		zap.Int32("failed", failedCount.Load()),
	)

	if !s.sleep(ctx, SWEEP_CYCLE_INTERVAL) {
		return ctx.Err()
	}

	return nil
}

// recover promotes a stale claim whose payload did land in the log
func (s *staleClaimSweeper) recover(ctx context.Context, stale schema.ClaimRecord, proof domain.AnchorProof, recovered *atomic.Int32) {
	err := s.store.UpdateClaimStatus(ctx, stale.ID, schema.ClaimStatusPending, schema.ClaimStatusCollected, &proof)
	if err != nil {
		if !errors.Is(err, store.ErrTransitionConflict) {
			logger.ErrorCtx(ctx, err, zap.String("scan_id", stale.ID))
		}
		return
	}
	recovered.Add(1)

	logger.InfoCtx(ctx, "recovered anchored claim",
		zap.String("scan_id", stale.ID),
		zap.Uint64("sequence_number", proof.SequenceNumber))

	var message domain.DistributionMessage
	if err := s.jsonCodec.Unmarshal(stale.Payload, &message); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("scan_id", stale.ID))
		return
	}
	if err := s.publisher.PublishDistribution(ctx, &message); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("scan_id", stale.ID))
	}
}

// fail finalizes a stale claim the log has no trace of and frees its aid
// window slot
func (s *staleClaimSweeper) fail(ctx context.Context, stale schema.ClaimRecord, failed *atomic.Int32) {
	err := s.store.UpdateClaimStatus(ctx, stale.ID, schema.ClaimStatusPending, schema.ClaimStatusFailed, nil)
	if err != nil {
		if !errors.Is(err, store.ErrTransitionConflict) {
			logger.ErrorCtx(ctx, err, zap.String("scan_id", stale.ID))
		}
		return
	}
	failed.Add(1)

	if err := s.store.ReleaseAidWindow(ctx, stale.SubjectID, stale.AidType, stale.ID); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("scan_id", stale.ID))
	}

	logger.WarnCtx(ctx, "failed unanchored stale claim",
		zap.String("scan_id", stale.ID),
		zap.String("event_id", stale.EventID))
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *staleClaimSweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true
	case <-ctx.Done():
		return false
	case <-s.stopChan:
		return false
	}
}
