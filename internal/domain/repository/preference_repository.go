package repository

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PreferenceRepository interface {
	Upsert(db *gorm.DB, pref *entity.DutyPreference) error
	FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.DutyPreference, error)
	FindByPhysicianAndPeriod(db *gorm.DB, physicianID, periodID uuid.UUID) (*entity.DutyPreference, error)
	DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error

	UpsertMonthlyTargets(db *gorm.DB, targets []entity.MonthlyTarget) error
	FindMonthlyTargetsByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.MonthlyTarget, error)
	DeleteMonthlyTargetsByPeriodID(db *gorm.DB, periodID uuid.UUID) error
}
