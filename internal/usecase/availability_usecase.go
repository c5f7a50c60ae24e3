package usecase

import (
	"context"
	"errors"
	"time"

	"oncall-roster/internal/converter"
	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/domain/entity"
	"oncall-roster/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSlotNotFound   = errors.New("slot not found")
	ErrDeadlinePassed = errors.New("the availability deadline for this period has passed")
)

type AvailabilityUsecase interface {
	SetAvailability(ctx context.Context, physicianID uuid.UUID, req *dto.SetAvailabilityRequest) (*dto.AvailabilityResponse, error)
	SetAvailabilityBatch(ctx context.Context, physicianID uuid.UUID, req *dto.SetAvailabilityBatchRequest) (*dto.AvailabilityListResponse, error)
	ListMyAvailability(ctx context.Context, physicianID, periodID uuid.UUID) (*dto.AvailabilityListResponse, error)
}

type availabilityUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	periodRepo       repository.PeriodRepository
	slotRepo         repository.SlotRepository
	availabilityRepo repository.AvailabilityRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	periodRepo repository.PeriodRepository,
	slotRepo repository.SlotRepository,
	availabilityRepo repository.AvailabilityRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:               db,
		log:              log,
		periodRepo:       periodRepo,
		slotRepo:         slotRepo,
		availabilityRepo: availabilityRepo,
	}
}

func (u *availabilityUsecase) SetAvailability(ctx context.Context, physicianID uuid.UUID, req *dto.SetAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	slot, err := u.findOpenSlot(ctx, req.SlotID)
	if err != nil {
		return nil, err
	}

	availability := &entity.Availability{
		PhysicianID: physicianID,
		SlotID:      slot.ID,
		Available:   *req.Available,
	}

	if err := u.availabilityRepo.Upsert(u.db.WithContext(ctx), availability); err != nil {
		u.log.Warnf("Failed to upsert availability: %+v", err)
		return nil, err
	}

	return converter.AvailabilityToResponse(availability, slot), nil
}

func (u *availabilityUsecase) SetAvailabilityBatch(ctx context.Context, physicianID uuid.UUID, req *dto.SetAvailabilityBatchRequest) (*dto.AvailabilityListResponse, error) {
	// Resolve every slot before writing anything; one bad entry
	// rejects the whole batch.
	slots := make([]*entity.Slot, len(req.Entries))
	for i, entry := range req.Entries {
		slot, err := u.findOpenSlot(ctx, entry.SlotID)
		if err != nil {
			return nil, err
		}
		slots[i] = slot
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	entries := make([]dto.AvailabilityResponse, len(req.Entries))
	for i, entry := range req.Entries {
		availability := &entity.Availability{
			PhysicianID: physicianID,
			SlotID:      entry.SlotID,
			Available:   *entry.Available,
		}
		if err := u.availabilityRepo.Upsert(tx, availability); err != nil {
			u.log.Warnf("Failed to upsert availability: %+v", err)
			return nil, err
		}
		entries[i] = *converter.AvailabilityToResponse(availability, slots[i])
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return &dto.AvailabilityListResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

func (u *availabilityUsecase) ListMyAvailability(ctx context.Context, physicianID, periodID uuid.UUID) (*dto.AvailabilityListResponse, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	availabilities, err := u.availabilityRepo.FindByPhysicianAndPeriod(u.db.WithContext(ctx), physicianID, periodID)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}

	entries := make([]dto.AvailabilityResponse, len(availabilities))
	for i := range availabilities {
		entries[i] = *converter.AvailabilityToResponse(&availabilities[i], &availabilities[i].Slot)
	}

	return &dto.AvailabilityListResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}

// findOpenSlot loads the slot and checks that its period's deadline
// has not passed yet.
func (u *availabilityUsecase) findOpenSlot(ctx context.Context, slotID uuid.UUID) (*entity.Slot, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}

	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), slot.PeriodID)
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

	return slot, nil
}
