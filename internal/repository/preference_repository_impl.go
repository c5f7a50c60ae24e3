package repository

import (
	"errors"

	"oncall-roster/internal/domain/entity"
	domainRepo "oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type preferenceRepository struct{}

func NewPreferenceRepository() domainRepo.PreferenceRepository {
	return &preferenceRepository{}
}

func (r *preferenceRepository) Upsert(db *gorm.DB, pref *entity.DutyPreference) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "physician_id"}, {Name: "period_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_level", "updated_at"}),
	}).Create(pref).Error
}

func (r *preferenceRepository) FindByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.DutyPreference, error) {
	var prefs []entity.DutyPreference
	err := db.Where("period_id = ?", periodID).Find(&prefs).Error
	if err != nil {
		return nil, err
	}
	return prefs, nil
}

func (r *preferenceRepository) FindByPhysicianAndPeriod(db *gorm.DB, physicianID, periodID uuid.UUID) (*entity.DutyPreference, error) {
	var pref entity.DutyPreference
	err := db.Where("physician_id = ? AND period_id = ?", physicianID, periodID).First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) DeleteByPeriodID(db *gorm.DB, periodID uuid.UUID) error {
	return db.Where("period_id = ?", periodID).Delete(&entity.DutyPreference{}).Error
}

func (r *preferenceRepository) UpsertMonthlyTargets(db *gorm.DB, targets []entity.MonthlyTarget) error {
	if len(targets) == 0 {
		return nil
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "physician_id"}, {Name: "period_id"}, {Name: "month"}},
		DoUpdates: clause.AssignmentColumns([]string{"target_total", "updated_at"}),
	}).Create(&targets).Error
}

func (r *preferenceRepository) FindMonthlyTargetsByPeriodID(db *gorm.DB, periodID uuid.UUID) ([]entity.MonthlyTarget, error) {
	var targets []entity.MonthlyTarget
	err := db.Where("period_id = ?", periodID).Find(&targets).Error
	if err != nil {
		return nil, err
	}
	return targets, nil
}

func (r *preferenceRepository) DeleteMonthlyTargetsByPeriodID(db *gorm.DB, periodID uuid.UUID) error {
	return db.Where("period_id = ?", periodID).Delete(&entity.MonthlyTarget{}).Error
}
