package repository

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotRepository interface {
	CreateBatch(db *gorm.DB, slots []entity.Slot) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Slot, error)
	FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Slot, error)
	DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error
}
