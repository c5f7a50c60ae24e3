package entity

import (
	"time"

	"github.com/google/uuid"
)

// Target level bounds. Levels 1-4 are a hard monthly cap of that many
// shifts; level 5 (or no declared level) means "as many as possible"
// and is resolved to the configured soft monthly maximum.
const (
	TargetLevelMin     = 1
	TargetLevelMax     = 5
	TargetLevelSoftMax = 5
)

// DutyPreference is a physician's declared workload preference for
// one period.
type DutyPreference struct {
	PhysicianID uuid.UUID `gorm:"type:uuid;primaryKey" json:"physician_id"`
	PeriodID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"period_id"`
	TargetLevel *int      `gorm:"type:smallint" json:"target_level"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Physician User       `gorm:"foreignKey:PhysicianID" json:"physician,omitempty"`
	Period    DutyPeriod `gorm:"foreignKey:PeriodID" json:"period,omitempty"`
}

func (DutyPreference) TableName() string {
	return "duty_preferences"
}

// MonthlyTarget is an explicit per-month shift count declared by a
// physician. Any positive monthly target for a period overrides the
// level-derived quota entirely for that physician.
type MonthlyTarget struct {
	PhysicianID uuid.UUID `gorm:"type:uuid;primaryKey" json:"physician_id"`
	PeriodID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"period_id"`
	Month       string    `gorm:"type:varchar(7);primaryKey" json:"month"`
	TargetTotal int       `gorm:"not null" json:"target_total"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MonthlyTarget) TableName() string {
	return "monthly_targets"
}
