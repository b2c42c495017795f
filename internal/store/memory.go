package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
	"github.com/Lideeyah/Haid/internal/store/schema"
)

type windowKey struct {
	subjectID string
	aidType   domain.AidType
}

type agentKey struct {
	eventID string
	agentID string
}

// memoryStore is an in-memory Store with the same atomicity guarantees as
// the PostgreSQL implementation, backed by a single mutex. Used for local
// development and tests.
type memoryStore struct {
	mu sync.Mutex

	identityID uint64
	identities map[string]*schema.Identity // by subject_ref
	events     map[string]*schema.Event
	agents     map[agentKey]time.Time
	claims     map[string]*schema.ClaimRecord // by claim id
	windows    map[windowKey]*schema.ClaimWindow
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() Store {
	return &memoryStore{
		identities: make(map[string]*schema.Identity),
		events:     make(map[string]*schema.Event),
		agents:     make(map[agentKey]time.Time),
		claims:     make(map[string]*schema.ClaimRecord),
		windows:    make(map[windowKey]*schema.ClaimWindow),
	}
}

func copyIdentity(i *schema.Identity) *schema.Identity {
	c := *i
	return &c
}

func copyClaim(c *schema.ClaimRecord) *schema.ClaimRecord {
	cp := *c
	if c.Payload != nil {
		cp.Payload = append([]byte(nil), c.Payload...)
	}
	return &cp
}

func copyEvent(e *schema.Event) *schema.Event {
	c := *e
	c.Agents = append([]schema.EventAgent(nil), e.Agents...)
	return &c
}

func (s *memoryStore) GetIdentityBySubjectRef(_ context.Context, subjectRef string) (*schema.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identity, ok := s.identities[subjectRef]
	if !ok {
		return nil, nil
	}
	return copyIdentity(identity), nil
}

func (s *memoryStore) GetIdentityByDID(_ context.Context, did domain.DID) (*schema.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, identity := range s.identities {
		if identity.DID == did {
			return copyIdentity(identity), nil
		}
	}
	return nil, nil
}

func (s *memoryStore) CreateIdentityIfAbsent(_ context.Context, identity *schema.Identity) (bool, *schema.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.identities[identity.SubjectRef]; ok {
		return false, copyIdentity(existing), nil
	}

	s.identityID++
	identity.ID = s.identityID
	if identity.CreatedAt.IsZero() {
		identity.CreatedAt = time.Now()
	}
	s.identities[identity.SubjectRef] = copyIdentity(identity)
	return true, identity, nil
}

func (s *memoryStore) ListIdentities(_ context.Context, since *time.Time) ([]schema.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var identities []schema.Identity
	for _, identity := range s.identities {
		if since != nil && identity.CreatedAt.Before(*since) {
			continue
		}
		identities = append(identities, *copyIdentity(identity))
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].CreatedAt.Before(identities[j].CreatedAt)
	})
	return identities, nil
}

func (s *memoryStore) CreateEvent(_ context.Context, event *schema.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[event.ID]; ok {
		return fmt.Errorf("event %s already exists", event.ID)
	}
	now := time.Now()
	if event.CreatedAt.IsZero() {
		event.CreatedAt = now
	}
	if event.UpdatedAt.IsZero() {
		event.UpdatedAt = now
	}
	s.events[event.ID] = copyEvent(event)
	return nil
}

func (s *memoryStore) GetEvent(_ context.Context, id string) (*schema.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return nil, nil
	}

	result := copyEvent(event)
	result.Agents = nil
	for key, createdAt := range s.agents {
		if key.eventID == id {
			result.Agents = append(result.Agents, schema.EventAgent{
				EventID:   key.eventID,
				AgentID:   key.agentID,
				CreatedAt: createdAt,
			})
		}
	}
	sort.Slice(result.Agents, func(i, j int) bool {
		return result.Agents[i].AgentID < result.Agents[j].AgentID
	})
	return result, nil
}

func (s *memoryStore) UpdateEventStatus(_ context.Context, id string, status schema.EventStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[id]
	if !ok {
		return domain.ErrEventNotFound
	}
	event.Status = status
	event.UpdatedAt = time.Now()
	return nil
}

func (s *memoryStore) AssignAgent(_ context.Context, eventID, agentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := agentKey{eventID: eventID, agentID: agentID}
	if _, ok := s.agents[key]; ok {
		return false, nil
	}
	s.agents[key] = time.Now()
	return true, nil
}

func (s *memoryStore) IsAgentAssigned(_ context.Context, eventID, agentID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.agents[agentKey{eventID: eventID, agentID: agentID}]
	return ok, nil
}

func (s *memoryStore) CreateClaimIfAbsent(_ context.Context, claim *schema.ClaimRecord) (bool, *schema.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.claims {
		if existing.SubjectID == claim.SubjectID && existing.EventID == claim.EventID &&
			(existing.Status == schema.ClaimStatusPending || existing.Status == schema.ClaimStatusCollected) {
			return false, copyClaim(existing), nil
		}
	}

	s.stampClaim(claim)
	s.claims[claim.ID] = copyClaim(claim)
	return true, claim, nil
}

func (s *memoryStore) CreateClaimRecord(_ context.Context, claim *schema.ClaimRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.claims[claim.ID]; ok {
		return fmt.Errorf("claim %s already exists", claim.ID)
	}
	s.stampClaim(claim)
	s.claims[claim.ID] = copyClaim(claim)
	return nil
}

func (s *memoryStore) stampClaim(claim *schema.ClaimRecord) {
	now := time.Now()
	if claim.CreatedAt.IsZero() {
		claim.CreatedAt = now
	}
	if claim.UpdatedAt.IsZero() {
		claim.UpdatedAt = now
	}
}

func (s *memoryStore) UpdateClaimStatus(_ context.Context, id string, from, to schema.ClaimStatus, proof *domain.AnchorProof) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.claims[id]
	if !ok || claim.Status != from {
		return ErrTransitionConflict
	}
	claim.Status = to
	claim.SetProof(proof)
	claim.UpdatedAt = time.Now()
	return nil
}

func (s *memoryStore) GetClaimByID(_ context.Context, id string) (*schema.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.claims[id]
	if !ok {
		return nil, nil
	}
	return copyClaim(claim), nil
}

func (s *memoryStore) GetActiveClaim(_ context.Context, subjectID, eventID string) (*schema.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, claim := range s.claims {
		if claim.SubjectID == subjectID && claim.EventID == eventID &&
			(claim.Status == schema.ClaimStatusPending || claim.Status == schema.ClaimStatusCollected) {
			return copyClaim(claim), nil
		}
	}
	return nil, nil
}

func (s *memoryStore) ListClaims(_ context.Context, filter ClaimFilter) ([]schema.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claims []schema.ClaimRecord
	for _, claim := range s.claims {
		if filter.EventID != "" && claim.EventID != filter.EventID {
			continue
		}
		if filter.SubjectID != "" && claim.SubjectID != filter.SubjectID {
			continue
		}
		if len(filter.Statuses) > 0 {
			matched := false
			for _, status := range filter.Statuses {
				if claim.Status == status {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if filter.Since != nil && claim.Timestamp.Before(*filter.Since) {
			continue
		}
		claims = append(claims, *copyClaim(claim))
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].Timestamp.After(claims[j].Timestamp)
	})
	if filter.Limit > 0 && len(claims) > filter.Limit {
		claims = claims[:filter.Limit]
	}
	return claims, nil
}

func (s *memoryStore) ListPendingClaimsBefore(_ context.Context, cutoff time.Time, limit int) ([]schema.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var claims []schema.ClaimRecord
	for _, claim := range s.claims {
		if claim.Status == schema.ClaimStatusPending && claim.CreatedAt.Before(cutoff) {
			claims = append(claims, *copyClaim(claim))
		}
	}
	sort.Slice(claims, func(i, j int) bool {
		return claims[i].CreatedAt.Before(claims[j].CreatedAt)
	})
	if limit > 0 && len(claims) > limit {
		claims = claims[:limit]
	}
	return claims, nil
}

func (s *memoryStore) AcquireAidWindow(_ context.Context, subjectID string, aidType domain.AidType, claimID string, expiresAt time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	key := windowKey{subjectID: subjectID, aidType: aidType}
	if window, ok := s.windows[key]; ok && window.ExpiresAt.After(now) {
		return false, nil
	}
	s.windows[key] = &schema.ClaimWindow{
		SubjectID: subjectID,
		AidType:   aidType,
		ClaimID:   claimID,
		ExpiresAt: expiresAt,
		UpdatedAt: now,
	}
	return true, nil
}

func (s *memoryStore) ReleaseAidWindow(_ context.Context, subjectID string, aidType domain.AidType, claimID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := windowKey{subjectID: subjectID, aidType: aidType}
	if window, ok := s.windows[key]; ok && window.ClaimID == claimID {
		delete(s.windows, key)
	}
	return nil
}
