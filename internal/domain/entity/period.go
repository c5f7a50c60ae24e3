package entity

import (
	"time"

	"github.com/google/uuid"
)

// DutyPeriod is a quarter-long scheduling window. Slots are generated
// in bulk when the period is created and are deleted only together
// with the period itself.
type DutyPeriod struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Label     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"label"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	// Deadline after which physicians can no longer edit availability.
	Deadline  time.Time `gorm:"not null" json:"deadline"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Slots []Slot `gorm:"foreignKey:PeriodID" json:"slots,omitempty"`
}

func (DutyPeriod) TableName() string {
	return "duty_periods"
}
