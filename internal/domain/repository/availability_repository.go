package repository

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository interface {
	Upsert(db *gorm.DB, availability *entity.Availability) error
	// FindAvailableByPeriodID returns only rows with available=true
	// for slots of the given period.
	FindAvailableByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Availability, error)
	FindByPhysicianAndPeriod(db *gorm.DB, physicianID, periodID uuid.UUID) ([]entity.Availability, error)
	DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error
}
