package usecase

import (
	"context"
	"errors"
	"time"

	"oncall-roster/internal/converter"
	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/delivery/http/middleware"
	"oncall-roster/internal/domain/entity"
	"oncall-roster/internal/domain/repository"
	"oncall-roster/internal/roster"
	"oncall-roster/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPeriodNotFound     = errors.New("period not found")
	ErrPeriodLabelExists  = errors.New("a period with this label already exists")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidPeriodRange = errors.New("period end date must not be before start date")
)

type PeriodUsecase interface {
	CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error)
	EnsurePeriod(ctx context.Context, label string, start, end, deadline time.Time) (bool, error)
	GetPeriod(ctx context.Context, periodID uuid.UUID) (*dto.PeriodDetailResponse, error)
	ListPeriods(ctx context.Context) (*dto.PeriodListResponse, error)
	DeletePeriod(ctx context.Context, periodID uuid.UUID) error
}

type periodUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	periodRepo       repository.PeriodRepository
	slotRepo         repository.SlotRepository
	availabilityRepo repository.AvailabilityRepository
	preferenceRepo   repository.PreferenceRepository
	assignmentRepo   repository.AssignmentRepository
	auditService     service.AuditService
}

func NewPeriodUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	periodRepo repository.PeriodRepository,
	slotRepo repository.SlotRepository,
	availabilityRepo repository.AvailabilityRepository,
	preferenceRepo repository.PreferenceRepository,
	assignmentRepo repository.AssignmentRepository,
	auditService service.AuditService,
) PeriodUsecase {
	return &periodUsecase{
		db:               db,
		log:              log,
		periodRepo:       periodRepo,
		slotRepo:         slotRepo,
		availabilityRepo: availabilityRepo,
		preferenceRepo:   preferenceRepo,
		assignmentRepo:   assignmentRepo,
		auditService:     auditService,
	}
}

func (u *periodUsecase) CreatePeriod(ctx context.Context, req *dto.CreatePeriodRequest) (*dto.PeriodResponse, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	if end.Before(start) {
		return nil, ErrInvalidPeriodRange
	}

	holidays := make(map[string]bool, len(req.Holidays))
	for _, h := range req.Holidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return nil, ErrInvalidDateFormat
		}
		holidays[h] = true
	}

	existing, err := u.periodRepo.FindByLabel(u.db.WithContext(ctx), req.Label)
	if err != nil {
		u.log.Warnf("Failed to check period label: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPeriodLabelExists
	}

	period := &entity.DutyPeriod{
		Label:     req.Label,
		StartDate: start,
		EndDate:   end,
		Deadline:  deadline,
	}

	var slotCount int
	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.periodRepo.Create(tx, period); err != nil {
		u.log.Warnf("Failed to create period: %+v", err)
		return nil, err
	}

	slots := roster.GenerateSlots(period.ID, start, end, holidays)
	slotCount = len(slots)
	if err := u.slotRepo.CreateBatch(tx, slots); err != nil {
		u.log.Warnf("Failed to create slots: %+v", err)
		return nil, err
	}

	if err := u.auditService.Log(tx, &userID, service.ActionPeriodCreated, entity.JSON{
		"period_id":  period.ID.String(),
		"label":      period.Label,
		"slot_count": slotCount,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.PeriodToResponse(period)
	resp.SlotCount = slotCount
	return resp, nil
}

// EnsurePeriod is the cron entry point: create the period with
// generated slots unless the label already exists.
func (u *periodUsecase) EnsurePeriod(ctx context.Context, label string, start, end, deadline time.Time) (bool, error) {
	existing, err := u.periodRepo.FindByLabel(u.db.WithContext(ctx), label)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	period := &entity.DutyPeriod{
		Label:     label,
		StartDate: start,
		EndDate:   end,
		Deadline:  deadline,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.periodRepo.Create(tx, period); err != nil {
		return false, err
	}
	slots := roster.GenerateSlots(period.ID, start, end, nil)
	if err := u.slotRepo.CreateBatch(tx, slots); err != nil {
		return false, err
	}
	if err := u.auditService.Log(tx, nil, service.ActionPeriodCreated, entity.JSON{
		"period_id":  period.ID.String(),
		"label":      label,
		"slot_count": len(slots),
		"source":     "cron",
	}); err != nil {
		return false, err
	}
	if err := tx.Commit().Error; err != nil {
		return false, err
	}

	return true, nil
}

func (u *periodUsecase) GetPeriod(ctx context.Context, periodID uuid.UUID) (*dto.PeriodDetailResponse, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	slots, err := u.slotRepo.FindByPeriodID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}

	resp := &dto.PeriodDetailResponse{
		Period: *converter.PeriodToResponse(period),
		Slots:  converter.SlotsToResponses(slots),
	}
	resp.Period.SlotCount = len(slots)
	return resp, nil
}

func (u *periodUsecase) ListPeriods(ctx context.Context) (*dto.PeriodListResponse, error) {
	periods, err := u.periodRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list periods: %+v", err)
		return nil, err
	}

	responses := make([]dto.PeriodResponse, len(periods))
	for i := range periods {
		responses[i] = *converter.PeriodToResponse(&periods[i])
	}

	return &dto.PeriodListResponse{
		Periods: responses,
		Total:   len(responses),
	}, nil
}

// DeletePeriod removes the period and everything generated from it:
// assignments, availability, preferences, monthly targets, slots.
func (u *periodUsecase) DeletePeriod(ctx context.Context, periodID uuid.UUID) error {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return err
	}
	if period == nil {
		return ErrPeriodNotFound
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.assignmentRepo.DeleteByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete assignments: %+v", err)
		return err
	}
	if err := u.availabilityRepo.DeleteByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete availability: %+v", err)
		return err
	}
	if err := u.preferenceRepo.DeleteByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete preferences: %+v", err)
		return err
	}
	if err := u.preferenceRepo.DeleteMonthlyTargetsByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete monthly targets: %+v", err)
		return err
	}
	if err := u.slotRepo.DeleteByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete slots: %+v", err)
		return err
	}
	if _, err := u.periodRepo.Delete(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete period: %+v", err)
		return err
	}

	if err := u.auditService.Log(tx, &userID, service.ActionPeriodDeleted, entity.JSON{
		"period_id": periodID.String(),
		"label":     period.Label,
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
