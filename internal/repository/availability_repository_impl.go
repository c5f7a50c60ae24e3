package repository

import (
	"oncall-roster/internal/domain/entity"
	domainRepo "oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type availabilityRepository struct{}

func NewAvailabilityRepository() domainRepo.AvailabilityRepository {
	return &availabilityRepository{}
}

func (r *availabilityRepository) Upsert(db *gorm.DB, availability *entity.Availability) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "physician_id"}, {Name: "slot_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"available", "updated_at"}),
	}).Create(availability).Error
}

func (r *availabilityRepository) FindAvailableByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.
		Joins("JOIN slots ON slots.id = availabilities.slot_id").
		Where("slots.period_id = ? AND availabilities.available = ?", periodID, true).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) FindByPhysicianAndPeriod(db *gorm.DB, physicianID, periodID uuid.UUID) ([]entity.Availability, error) {
	var rows []entity.Availability
	err := db.
		Joins("JOIN slots ON slots.id = availabilities.slot_id").
		Where("slots.period_id = ? AND availabilities.physician_id = ?", periodID, physicianID).
		Order("slots.start_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *availabilityRepository) DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error {
	return db.
		Where("slot_id IN (?)", db.Session(&gorm.Session{NewDB: true}).Model(&entity.Slot{}).Select("id").Where("period_id = ?", periodID)).
		Delete(&entity.Availability{}).Error
}
