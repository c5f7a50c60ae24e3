package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultAssignmentScore is the weight stored with every assignment.
// Currently constant; kept as a column for future weighting schemes.
const DefaultAssignmentScore = 1

// Assignment binds exactly one physician to one slot. Persisted
// assignments for a period are always replaced wholesale, never
// merged.
type Assignment struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	PeriodID    uuid.UUID `gorm:"type:uuid;not null;index" json:"period_id"`
	SlotID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"slot_id"`
	PhysicianID uuid.UUID `gorm:"type:uuid;not null;index" json:"physician_id"`
	Score       int       `gorm:"not null;default:1" json:"score"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Slot      Slot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Physician User `gorm:"foreignKey:PhysicianID" json:"physician,omitempty"`
}

func (Assignment) TableName() string {
	return "assignments"
}
