package repository

import (
	"errors"

	"oncall-roster/internal/domain/entity"
	domainRepo "oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type periodRepository struct{}

func NewPeriodRepository() domainRepo.PeriodRepository {
	return &periodRepository{}
}

func (r *periodRepository) Create(db *gorm.DB, period *entity.DutyPeriod) error {
	return db.Create(period).Error
}

func (r *periodRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DutyPeriod, error) {
	var period entity.DutyPeriod
	err := db.Where("id = ?", id).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) FindByLabel(db *gorm.DB, label string) (*entity.DutyPeriod, error) {
	var period entity.DutyPeriod
	err := db.Where("label = ?", label).First(&period).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) FindAll(db *gorm.DB) ([]entity.DutyPeriod, error) {
	var periods []entity.DutyPeriod
	err := db.Order("start_date DESC").Find(&periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *periodRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.DutyPeriod{})
	return affected.RowsAffected, affected.Error
}
