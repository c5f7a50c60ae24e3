package repository

import (
	"oncall-roster/internal/domain/entity"
	domainRepo "oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type assignmentRepository struct{}

func NewAssignmentRepository() domainRepo.AssignmentRepository {
	return &assignmentRepository{}
}

func (r *assignmentRepository) CreateBatch(db *gorm.DB, assignments []entity.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return db.CreateInBatches(assignments, 200).Error
}

func (r *assignmentRepository) FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Assignment, error) {
	var assignments []entity.Assignment
	err := db.Preload("Slot").Preload("Physician").
		Joins("JOIN slots ON slots.id = assignments.slot_id").
		Where("assignments.period_id = ?", periodID).
		Order("slots.start_at ASC, slots.kind ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *assignmentRepository) DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error {
	return db.Where("period_id = ?", periodID).Delete(&entity.Assignment{}).Error
}
