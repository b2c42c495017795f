package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the database schema
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&schema.Identity{},
		&schema.Event{},
		&schema.EventAgent{},
		&schema.ClaimRecord{},
		&schema.ClaimWindow{},
	)
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

func (s *pgStore) GetIdentityBySubjectRef(ctx context.Context, subjectRef string) (*schema.Identity, error) {
	var identity schema.Identity
	err := s.db.WithContext(ctx).Where("subject_ref = ?", subjectRef).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by subject ref: %w", err)
	}
	return &identity, nil
}

func (s *pgStore) GetIdentityByDID(ctx context.Context, did domain.DID) (*schema.Identity, error) {
	var identity schema.Identity
	err := s.db.WithContext(ctx).Where("did = ?", did.String()).First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get identity by did: %w", err)
	}
	return &identity, nil
}

// CreateIdentityIfAbsent inserts the identity with ON CONFLICT DO NOTHING on
// subject_ref. An ID of 0 after the insert means the row already existed, so
// the stored record is fetched and returned instead.
func (s *pgStore) CreateIdentityIfAbsent(ctx context.Context, identity *schema.Identity) (bool, *schema.Identity, error) {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "subject_ref"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(identity).Error; err != nil {
		return false, nil, fmt.Errorf("failed to create identity: %w", err)
	}

	if identity.ID == 0 {
		var existing schema.Identity
		if err := s.db.WithContext(ctx).Where("subject_ref = ?", identity.SubjectRef).First(&existing).Error; err != nil {
			return false, nil, fmt.Errorf("failed to get existing identity: %w", err)
		}
		return false, &existing, nil
	}

	return true, identity, nil
}

func (s *pgStore) ListIdentities(ctx context.Context, since *time.Time) ([]schema.Identity, error) {
	query := s.db.WithContext(ctx).Model(&schema.Identity{})
	if since != nil {
		query = query.Where("created_at >= ?", *since)
	}

	var identities []schema.Identity
	if err := query.Order("created_at ASC").Find(&identities).Error; err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}
	return identities, nil
}

func (s *pgStore) CreateEvent(ctx context.Context, event *schema.Event) error {
	if err := s.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *pgStore) GetEvent(ctx context.Context, id string) (*schema.Event, error) {
	var event schema.Event
	err := s.db.WithContext(ctx).Preload("Agents").Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

func (s *pgStore) UpdateEventStatus(ctx context.Context, id string, status schema.EventStatus) error {
	res := s.db.WithContext(ctx).Model(&schema.Event{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to update event status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// AssignAgent inserts the assignment with ON CONFLICT DO NOTHING on
// (event_id, agent_id); zero rows affected means the agent was already assigned.
func (s *pgStore) AssignAgent(ctx context.Context, eventID, agentID string) (bool, error) {
	assignment := schema.EventAgent{
		EventID: eventID,
		AgentID: agentID,
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "agent_id"}},
		DoNothing: true,
	}).Create(&assignment)
	if res.Error != nil {
		return false, fmt.Errorf("failed to assign agent: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (s *pgStore) IsAgentAssigned(ctx context.Context, eventID, agentID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.EventAgent{}).
		Where("event_id = ? AND agent_id = ?", eventID, agentID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check agent assignment: %w", err)
	}
	return count > 0, nil
}

// CreateClaimIfAbsent inserts the claim with ON CONFLICT DO NOTHING targeting
// the partial unique index over active (pending or collected) rows. Zero rows
// affected means an active claim already holds the (subject_id, event_id)
// slot, in which case the blocking row is fetched and returned.
func (s *pgStore) CreateClaimIfAbsent(ctx context.Context, claim *schema.ClaimRecord) (bool, *schema.ClaimRecord, error) {
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "subject_id"}, {Name: "event_id"}},
		TargetWhere: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("status = 'pending' OR status = 'collected'"),
		}},
		DoNothing: true,
	}).Create(claim)
	if res.Error != nil {
		return false, nil, fmt.Errorf("failed to create claim: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		existing, err := s.GetActiveClaim(ctx, claim.SubjectID, claim.EventID)
		if err != nil {
			return false, nil, err
		}
		if existing == nil {
			// The blocking row was finalized between the insert and the
			// read. The caller retries from the top.
			return false, nil, fmt.Errorf("active claim for subject %s at event %s vanished during insert", claim.SubjectID, claim.EventID)
		}
		return false, existing, nil
	}

	return true, claim, nil
}

func (s *pgStore) CreateClaimRecord(ctx context.Context, claim *schema.ClaimRecord) error {
	if err := s.db.WithContext(ctx).Create(claim).Error; err != nil {
		return fmt.Errorf("failed to create claim record: %w", err)
	}
	return nil
}

// UpdateClaimStatus performs a guarded transition: the UPDATE only matches
// rows still in the from-status, so a finalized claim is never overwritten.
func (s *pgStore) UpdateClaimStatus(ctx context.Context, id string, from, to schema.ClaimStatus, proof *domain.AnchorProof) error {
	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now(),
	}
	if proof != nil {
		updates["anchor_transaction_id"] = proof.TransactionID
		updates["anchor_sequence_number"] = proof.SequenceNumber
		updates["anchor_consensus_timestamp"] = proof.ConsensusTimestamp
		updates["anchor_running_hash"] = proof.RunningHash
	}

	res := s.db.WithContext(ctx).Model(&schema.ClaimRecord{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update claim status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrTransitionConflict
	}
	return nil
}

func (s *pgStore) GetClaimByID(ctx context.Context, id string) (*schema.ClaimRecord, error) {
	var claim schema.ClaimRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}
	return &claim, nil
}

func (s *pgStore) GetActiveClaim(ctx context.Context, subjectID, eventID string) (*schema.ClaimRecord, error) {
	var claim schema.ClaimRecord
	err := s.db.WithContext(ctx).
		Where("subject_id = ? AND event_id = ? AND status IN ?", subjectID, eventID,
			[]schema.ClaimStatus{schema.ClaimStatusPending, schema.ClaimStatusCollected}).
		First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active claim: %w", err)
	}
	return &claim, nil
}

func (s *pgStore) ListClaims(ctx context.Context, filter ClaimFilter) ([]schema.ClaimRecord, error) {
	query := s.db.WithContext(ctx).Model(&schema.ClaimRecord{})
	if filter.EventID != "" {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.SubjectID != "" {
		query = query.Where("subject_id = ?", filter.SubjectID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}
	if filter.Since != nil {
		query = query.Where("timestamp >= ?", *filter.Since)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var claims []schema.ClaimRecord
	if err := query.Order("timestamp DESC").Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to list claims: %w", err)
	}
	return claims, nil
}

func (s *pgStore) ListPendingClaimsBefore(ctx context.Context, cutoff time.Time, limit int) ([]schema.ClaimRecord, error) {
	query := s.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", schema.ClaimStatusPending, cutoff).
		Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var claims []schema.ClaimRecord
	if err := query.Find(&claims).Error; err != nil {
		return nil, fmt.Errorf("failed to list pending claims: %w", err)
	}
	return claims, nil
}

// AcquireAidWindow upserts the (subject_id, aid_type) slot with a conditional
// DO UPDATE: the update only fires when the held slot has expired. Zero rows
// affected means another claim holds an unexpired slot.
func (s *pgStore) AcquireAidWindow(ctx context.Context, subjectID string, aidType domain.AidType, claimID string, expiresAt time.Time) (bool, error) {
	now := time.Now()
	window := schema.ClaimWindow{
		SubjectID: subjectID,
		AidType:   aidType,
		ClaimID:   claimID,
		ExpiresAt: expiresAt,
		UpdatedAt: now,
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "subject_id"}, {Name: "aid_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"claim_id":   claimID,
			"expires_at": expiresAt,
			"updated_at": now,
		}),
		Where: clause.Where{Exprs: []clause.Expression{
			gorm.Expr("claim_windows.expires_at <= ?", now),
		}},
	}).Create(&window)
	if res.Error != nil {
		return false, fmt.Errorf("failed to acquire aid window: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ReleaseAidWindow deletes the slot only while claimID still holds it, so a
// late release never frees a slot re-acquired by a newer claim.
func (s *pgStore) ReleaseAidWindow(ctx context.Context, subjectID string, aidType domain.AidType, claimID string) error {
	err := s.db.WithContext(ctx).
		Where("subject_id = ? AND aid_type = ? AND claim_id = ?", subjectID, aidType, claimID).
		Delete(&schema.ClaimWindow{}).Error
	if err != nil {
		return fmt.Errorf("failed to release aid window: %w", err)
	}
	return nil
}
