package usecase

import (
	"context"
	"errors"
	"time"

	"oncall-roster/config"
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
	ErrRosterLocked  = errors.New("a roster commit is already in progress for this period")
	ErrNoAssignments = errors.New("no assignments exist for this period")
)

type RosterUsecase interface {
	GetSummary(ctx context.Context, periodID uuid.UUID) (*dto.RosterSummaryResponse, error)
	Run(ctx context.Context, periodID uuid.UUID, req *dto.RunRosterRequest) (*dto.RosterRunResponse, error)
	GetAssignments(ctx context.Context, periodID uuid.UUID) (*dto.RosterRunResponse, error)
	Notify(ctx context.Context, periodID uuid.UUID) (*dto.NotifyResponse, error)
}

type rosterUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	cfg              config.RosterConfig
	periodRepo       repository.PeriodRepository
	slotRepo         repository.SlotRepository
	availabilityRepo repository.AvailabilityRepository
	preferenceRepo   repository.PreferenceRepository
	assignmentRepo   repository.AssignmentRepository
	userRepo         repository.UserRepository
	lockService      *service.RosterLockService
	notifier         service.RosterNotifier
	auditService     service.AuditService
}

func NewRosterUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	cfg config.RosterConfig,
	periodRepo repository.PeriodRepository,
	slotRepo repository.SlotRepository,
	availabilityRepo repository.AvailabilityRepository,
	preferenceRepo repository.PreferenceRepository,
	assignmentRepo repository.AssignmentRepository,
	userRepo repository.UserRepository,
	lockService *service.RosterLockService,
	notifier service.RosterNotifier,
	auditService service.AuditService,
) RosterUsecase {
	return &rosterUsecase{
		db:               db,
		log:              log,
		cfg:              cfg,
		periodRepo:       periodRepo,
		slotRepo:         slotRepo,
		availabilityRepo: availabilityRepo,
		preferenceRepo:   preferenceRepo,
		assignmentRepo:   assignmentRepo,
		userRepo:         userRepo,
		lockService:      lockService,
		notifier:         notifier,
		auditService:     auditService,
	}
}

// periodInputs is everything the engine needs for one period, loaded
// in a single pass.
type periodInputs struct {
	period  *entity.DutyPeriod
	summary *roster.Summary
	quotas  *roster.QuotaSet
	names   map[uuid.UUID]string
}

func (u *rosterUsecase) loadInputs(ctx context.Context, periodID uuid.UUID) (*periodInputs, error) {
	db := u.db.WithContext(ctx)

	period, err := u.periodRepo.FindByID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	slots, err := u.slotRepo.FindByPeriodID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find slots: %+v", err)
		return nil, err
	}
	avails, err := u.availabilityRepo.FindAvailableByPeriodID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find availability: %+v", err)
		return nil, err
	}
	prefs, err := u.preferenceRepo.FindByPeriodID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find preferences: %+v", err)
		return nil, err
	}
	targets, err := u.preferenceRepo.FindMonthlyTargetsByPeriodID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find monthly targets: %+v", err)
		return nil, err
	}

	idSet := make(map[uuid.UUID]bool)
	for i := range avails {
		idSet[avails[i].PhysicianID] = true
	}
	for i := range prefs {
		idSet[prefs[i].PhysicianID] = true
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	users, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find physicians: %+v", err)
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(users))
	for i := range users {
		names[users[i].ID] = users[i].FullName
	}

	summary := roster.BuildSummary(slots, avails, prefs, names)
	specs := roster.BuildQuotaSpecs(summary, targets, u.cfg.SoftMaxPerMonth)
	quotas := roster.ResolveQuotas(specs, roster.AvailByUserMonth(slots, avails), roster.MonthsOf(slots))

	return &periodInputs{
		period:  period,
		summary: summary,
		quotas:  quotas,
		names:   names,
	}, nil
}

func (u *rosterUsecase) GetSummary(ctx context.Context, periodID uuid.UUID) (*dto.RosterSummaryResponse, error) {
	in, err := u.loadInputs(ctx, periodID)
	if err != nil {
		return nil, err
	}
	return converter.SummaryToResponse(periodID, in.summary, in.quotas), nil
}

// Run executes the assignment engine. A dry run computes the full
// report without touching stored assignments; a commit run replaces
// the period's assignments wholesale under a per-period lock.
func (u *rosterUsecase) Run(ctx context.Context, periodID uuid.UUID, req *dto.RunRosterRequest) (*dto.RosterRunResponse, error) {
	in, err := u.loadInputs(ctx, periodID)
	if err != nil {
		return nil, err
	}

	solver := roster.NewSolver(in.summary, in.quotas)
	report := roster.BuildReport(solver.Solve(in.summary), in.names)

	if *req.DryRun {
		return converter.ReportToRunResponse(periodID, true, report, nil), nil
	}

	acquired, err := u.lockService.Acquire(ctx, periodID)
	if err != nil {
		u.log.Warnf("Failed to acquire roster lock: %+v", err)
		return nil, err
	}
	if !acquired {
		return nil, ErrRosterLocked
	}
	defer func() {
		if err := u.lockService.Release(context.Background(), periodID); err != nil {
			u.log.Warnf("Failed to release roster lock: %+v", err)
		}
	}()

	assignments := make([]entity.Assignment, len(report.Assignments))
	for i, a := range report.Assignments {
		assignments[i] = entity.Assignment{
			PeriodID:    periodID,
			SlotID:      a.SlotID,
			PhysicianID: a.PhysicianID,
			Score:       a.Score,
		}
	}

	userID, _ := middleware.GetUserIDFromContext(ctx)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.assignmentRepo.DeleteByPeriodID(tx, periodID); err != nil {
		u.log.Warnf("Failed to delete old assignments: %+v", err)
		return nil, err
	}
	if err := u.assignmentRepo.CreateBatch(tx, assignments); err != nil {
		u.log.Warnf("Failed to create assignments: %+v", err)
		return nil, err
	}
	if err := u.auditService.Log(tx, &userID, service.ActionRosterCommit, entity.JSON{
		"period_id":      periodID.String(),
		"assigned_count": report.AssignedCount,
		"hole_count":     report.HoleCount,
	}); err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	committedAt := time.Now()
	return converter.ReportToRunResponse(periodID, false, report, &committedAt), nil
}

func (u *rosterUsecase) GetAssignments(ctx context.Context, periodID uuid.UUID) (*dto.RosterRunResponse, error) {
	period, err := u.periodRepo.FindByID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	assignments, err := u.assignmentRepo.FindByPeriodID(u.db.WithContext(ctx), periodID)
	if err != nil {
		u.log.Warnf("Failed to find assignments: %+v", err)
		return nil, err
	}

	return converter.AssignmentsToRunResponse(periodID, assignments), nil
}

func (u *rosterUsecase) Notify(ctx context.Context, periodID uuid.UUID) (*dto.NotifyResponse, error) {
	db := u.db.WithContext(ctx)

	period, err := u.periodRepo.FindByID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find period: %+v", err)
		return nil, err
	}
	if period == nil {
		return nil, ErrPeriodNotFound
	}

	assignments, err := u.assignmentRepo.FindByPeriodID(db, periodID)
	if err != nil {
		u.log.Warnf("Failed to find assignments: %+v", err)
		return nil, err
	}
	if len(assignments) == 0 {
		return nil, ErrNoAssignments
	}

	idSet := make(map[uuid.UUID]bool)
	for i := range assignments {
		idSet[assignments[i].PhysicianID] = true
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	physicians, err := u.userRepo.FindByIDs(db, ids)
	if err != nil {
		u.log.Warnf("Failed to find physicians: %+v", err)
		return nil, err
	}

	sent, failed := u.notifier.NotifyPhysicians(period, assignments, physicians)

	userID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Log(db, &userID, service.ActionRosterNotified, entity.JSON{
		"period_id": periodID.String(),
		"sent":      sent,
		"failed":    failed,
	}); err != nil {
		return nil, err
	}

	return &dto.NotifyResponse{
		PeriodID: periodID,
		Sent:     sent,
		Failed:   failed,
	}, nil
}
