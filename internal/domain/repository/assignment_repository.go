package repository

import (
	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository interface {
	CreateBatch(db *gorm.DB, assignments []entity.Assignment) error
	FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Assignment, error)
	DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error
}
