package repository

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PeriodRepository interface {
	Create(db *gorm.DB, period *entity.DutyPeriod) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.DutyPeriod, error)
	FindByLabel(db *gorm.DB, label string) (*entity.DutyPeriod, error)
	FindAll(db *gorm.DB) ([]entity.DutyPeriod, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
