package schema

import (
	"time"

	"github.com/Lideeyah/Haid/internal/domain"
)

// EventStatus represents the lifecycle state of a distribution event
type EventStatus string

const (
	// EventStatusScheduled marks an event not yet open for claims
	EventStatusScheduled EventStatus = "scheduled"
	// EventStatusActive marks an event currently accepting claims
	EventStatusActive EventStatus = "active"
	// EventStatusClosed marks a finished event
	EventStatusClosed EventStatus = "closed"
)

// Event represents the events table - a distribution event organized by an
// NGO, with a time window and a set of assigned agents
type Event struct {
	// ID is a UUID assigned at creation
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the human-readable event name
	Name string `gorm:"column:name;not null;type:text"`
	// AidType is the category of aid handed out (FOOD, WATER, MEDICAL, SHELTER)
	AidType domain.AidType `gorm:"column:aid_type;not null;type:text"`
	// DedupPolicy selects the duplicate detection strategy for this event
	DedupPolicy domain.DedupPolicy `gorm:"column:dedup_policy;not null;type:text;default:'strict'"`
	// StartTime and EndTime bound the distribution window
	StartTime time.Time `gorm:"column:start_time;not null;type:timestamptz"`
	EndTime   time.Time `gorm:"column:end_time;not null;type:timestamptz"`
	// Status is the event lifecycle state
	Status EventStatus `gorm:"column:status;not null;type:text;default:'scheduled'"`
	// CreatedAt is the timestamp when this event was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the last lifecycle change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Agents []EventAgent `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "events"
}

// EventAgent represents the event_agents table - assignment of an agent to
// an event. The unique index rejects duplicate assignment at the storage level.
type EventAgent struct {
	ID      uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	EventID string `gorm:"column:event_id;not null;type:text;uniqueIndex:udx_event_agents,priority:1"`
	AgentID string `gorm:"column:agent_id;not null;type:text;uniqueIndex:udx_event_agents,priority:2"`
	// CreatedAt is the timestamp of the assignment
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the EventAgent model
func (EventAgent) TableName() string {
	return "event_agents"
}
