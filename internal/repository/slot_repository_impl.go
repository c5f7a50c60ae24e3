package repository

import (
	"errors"

	"oncall-roster/internal/domain/entity"
	domainRepo "oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type slotRepository struct{}

func NewSlotRepository() domainRepo.SlotRepository {
	return &slotRepository{}
}

func (r *slotRepository) CreateBatch(db *gorm.DB, slots []entity.Slot) error {
	if len(slots) == 0 {
		return nil
	}
	return db.CreateInBatches(slots, 200).Error
}

func (r *slotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Slot, error) {
	var slot entity.Slot
	err := db.Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Slot, error) {
	var slots []entity.Slot
	err := db.Where("period_id = ?", periodID).Order("start_at ASC, kind ASC").Find(&slots).Error
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error {
	return db.Where("period_id = ?", periodID).Delete(&entity.Slot{}).Error
}
