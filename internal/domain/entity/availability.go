package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability marks a physician as willing to take a specific slot.
// At most one row exists per (physician, slot) pair; only rows with
// Available=true feed the assignment engine.
type Availability struct {
	PhysicianID uuid.UUID `gorm:"type:uuid;primaryKey" json:"physician_id"`
	SlotID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"slot_id"`
	Available   bool      `gorm:"not null;default:false" json:"available"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slot      Slot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
	Physician User `gorm:"foreignKey:PhysicianID" json:"physician,omitempty"`
}

func (Availability) TableName() string {
	return "availabilities"
}
