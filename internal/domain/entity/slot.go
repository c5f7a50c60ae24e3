package entity

import (
	"time"

	"github.com/google/uuid"
)

// SlotKind is one of the six canonical shift shapes. Which kinds a
// day produces is a pure function of its weekday, with holidays
// treated as Sundays.
type SlotKind string

const (
	KindWeekdayNight SlotKind = "WEEKDAY_20_00"
	KindSatNoon      SlotKind = "SAT_12_18"
	KindSatNight     SlotKind = "SAT_18_00"
	KindSunMorning   SlotKind = "SUN_08_14"
	KindSunAfternoon SlotKind = "SUN_14_20"
	KindSunNight     SlotKind = "SUN_20_00"
)

// Slot is a single duty shift. Slots are immutable once generated for
// a period.
type Slot struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PeriodID uuid.UUID `gorm:"type:uuid;not null;index" json:"period_id"`
	Date     time.Time `gorm:"type:date;not null;index" json:"date"`
	Kind     SlotKind  `gorm:"type:varchar(20);not null" json:"kind"`
	StartAt  time.Time `gorm:"not null;index" json:"start_at"`
	EndAt    time.Time `gorm:"not null" json:"end_at"`

	// Relationships
	Period DutyPeriod `gorm:"foreignKey:PeriodID" json:"period,omitempty"`
}

func (Slot) TableName() string {
	return "slots"
}

// IsNight reports whether the slot is one of the three kinds whose
// shift spans into the next calendar day. A physician working a night
// slot on date D must not work another night slot on D+1.
func (s *Slot) IsNight() bool {
	switch s.Kind {
	case KindWeekdayNight, KindSatNight, KindSunNight:
		return true
	}
	return false
}

// EndsAtMidnight reports whether the slot ends at 00:00 of the next
// day. Such a slot on date D excludes the Sunday morning slot on D+1.
func (s *Slot) EndsAtMidnight() bool {
	switch s.Kind {
	case KindWeekdayNight, KindSatNight, KindSunNight:
		return true
	}
	return false
}

// DateKey returns the slot's calendar date as YYYY-MM-DD.
func (s *Slot) DateKey() string {
	return s.Date.Format("2006-01-02")
}

// MonthKey returns the slot's calendar month as YYYY-MM.
func (s *Slot) MonthKey() string {
	return s.Date.Format("2006-01")
}
