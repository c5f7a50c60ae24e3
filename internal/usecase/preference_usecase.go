package usecase

import (
	"context"
	"errors"
	"time"

	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/domain/entity"
	"oncall-roster/internal/domain/repository"
	"oncall-roster/internal/roster"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidTargetLevel   = errors.New("target level must be between 1 and 5")
	ErrMonthOutsidePeriod   = errors.New("monthly target month is outside the period")
	ErrInvalidMonthFormat   = errors.New("invalid month format, use YYYY-MM")
	ErrPreferenceAfterClose = errors.New("the preference deadline for this period has passed")
)

type PreferenceUsecase interface {
	SetPreference(ctx context.Context, physicianID, periodID uuid.UUID, req *dto.SetPreferenceRequest) (*dto.PreferenceResponse, error)
	SetMonthlyTargets(ctx context.Context, physicianID, periodID uuid.UUID, req *dto.SetMonthlyTargetsRequest) (*dto.PreferenceResponse, error)
	GetMyPreference(ctx context.Context, physicianID, periodID uuid.UUID) (*dto.PreferenceResponse, error)
}

type preferenceUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	periodRepo     repository.PeriodRepository
	preferenceRepo repository.PreferenceRepository
}

func NewPreferenceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	periodRepo repository.PeriodRepository,
	preferenceRepo repository.PreferenceRepository,
) PreferenceUsecase {
	return &preferenceUsecase{
		db:             db,
		log:            log,
		periodRepo:     periodRepo,
		preferenceRepo: preferenceRepo,
	}
}

func (u *preferenceUsecase) SetPreference(ctx context.Context, physicianID, periodID uuid.UUID, req *dto.SetPreferenceRequest) (*dto.PreferenceResponse, error) {
	period, err := u.findOpenPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	if req.TargetLevel != nil {
		if *req.TargetLevel < entity.TargetLevelMin || *req.TargetLevel > entity.TargetLevelMax {
			return nil, ErrInvalidTargetLevel
		}
	}

	pref := &entity.DutyPreference{
		PhysicianID: physicianID,
		PeriodID:    period.ID,
		TargetLevel: req.TargetLevel,
	}
	if err := u.preferenceRepo.Upsert(u.db.WithContext(ctx), pref); err != nil {
		u.log.Warnf("Failed to upsert preference: %+v", err)
		return nil, err
	}

	return u.buildResponse(ctx, physicianID, periodID)
}

func (u *preferenceUsecase) SetMonthlyTargets(ctx context.Context, physicianID, periodID uuid.UUID, req *dto.SetMonthlyTargetsRequest) (*dto.PreferenceResponse, error) {
	period, err := u.findOpenPeriod(ctx, periodID)
	if err != nil {
		return nil, err
	}

	months := roster.MonthsBetween(period.StartDate, period.EndDate)
	valid := make(map[string]bool, len(months))
	for _, m := range months {
		valid[m] = true
	}

	targets := make([]entity.MonthlyTarget, len(req.Targets))
	for i, t := range req.Targets {
		if _, err := time.Parse("2006-01", t.Month); err != nil {
			return nil, ErrInvalidMonthFormat
		}
		if !valid[t.Month] {
			return nil, ErrMonthOutsidePeriod
		}
		targets[i] = entity.MonthlyTarget{
			PhysicianID: physicianID,
			PeriodID:    period.ID,
			Month:       t.Month,
			TargetTotal: t.TargetTotal,
		}
	}

	if err := u.preferenceRepo.UpsertMonthlyTargets(u.db.WithContext(ctx), targets); err != nil {
		u.log.Warnf("Failed to upsert monthly targets: %+v", err)
		return nil, err
	}

	return u.buildResponse(ctx, physicianID, periodID)
}

func (u *preferenceUsecase) GetMyPreference(ctx context.Context, physicianID, periodID uuid.UUID) (*dto.PreferenceResponse, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	return u.buildResponse(ctx, physicianID, periodID)
}

func (u *preferenceUsecase) buildResponse(ctx context.Context, physicianID, periodID uuid.UUID) (*dto.PreferenceResponse, error) {
	pref, err := u.preferenceRepo.FindByPhysicianAndPeriod(u.db.WithContext(ctx), physicianID, periodID)
	if err != nil {
		u.log.Warnf("Failed to find preference: %+v", err)
		return nil, err
	}

	targets, err := u.preferenceRepo.FindMonthlyTargetsByPeriodID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find monthly targets: %+v", err)
		return nil, err
	}

	resp := &dto.PreferenceResponse{}
	if pref != nil {
		resp.TargetLevel = pref.TargetLevel
	}
	for _, t := range targets {
		if t.PhysicianID != physicianID {
			continue
		}
		resp.MonthlyTargets = append(resp.MonthlyTargets, dto.MonthlyTargetEntry{
			Month:       t.Month,
			TargetTotal: t.TargetTotal,
		})
	}

	return resp, nil
}

func (u *preferenceUsecase) findOpenPeriod(ctx context.Context, periodID uuid.UUID) (*entity.DutyPeriod, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}
	if time.Now().After(period.Deadline) {
		return nil, ErrDeadlinePassed
	}
	return period, nil
}
