package converter

import (
	"sort"
	"time"

	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/domain/entity"
	"oncall-roster/internal/roster"

	"github.com/google/uuid"
)

// SummaryToResponse flattens the engine's summary plus the resolved
// quotas into one payload. Physicians are sorted by name then id so
// the listing is stable.
func SummaryToResponse(periodID uuid.UUID, summary *roster.Summary, quotas *roster.QuotaSet) *dto.RosterSummaryResponse {
	slots := make([]dto.SlotSummaryResponse, len(summary.Slots))
	for i, sc := range summary.Slots {
		slots[i] = dto.SlotSummaryResponse{
			SlotID:     sc.Slot.ID,
			Date:       sc.Slot.DateKey(),
			Kind:       string(sc.Slot.Kind),
			Candidates: sc.Candidates,
		}
	}

	physicians := make([]dto.PhysicianSummaryResponse, 0, len(summary.Physicians))
	for id, stat := range summary.Physicians {
		quotaByMonth := make(map[string]int)
		for month, n := range quotas.ByUserMonth[id] {
			quotaByMonth[month] = n
		}
		physicians = append(physicians, dto.PhysicianSummaryResponse{
			PhysicianID:  id,
			Name:         stat.Name,
			TargetLevel:  stat.TargetLevel,
			AvailCount:   stat.AvailCount,
			QuotaByMonth: quotaByMonth,
			TotalCap:     quotas.TotalCap(id),
		})
	}
	sort.Slice(physicians, func(i, j int) bool {
		if physicians[i].Name != physicians[j].Name {
			return physicians[i].Name < physicians[j].Name
		}
		return physicians[i].PhysicianID.String() < physicians[j].PhysicianID.String()
	})

	return &dto.RosterSummaryResponse{
		PeriodID:   periodID,
		Slots:      slots,
		Physicians: physicians,
	}
}

func ReportToRunResponse(periodID uuid.UUID, dryRun bool, report *roster.Report, committedAt *time.Time) *dto.RosterRunResponse {
	assignments := make([]dto.RosterAssignmentResponse, len(report.Assignments))
	for i, a := range report.Assignments {
		assignments[i] = dto.RosterAssignmentResponse{
			SlotID:        a.SlotID,
			Date:          a.Date.Format("2006-01-02"),
			Kind:          string(a.Kind),
			PhysicianID:   a.PhysicianID,
			PhysicianName: a.PhysicianName,
			Score:         a.Score,
		}
	}

	holes := make([]dto.RosterHoleResponse, len(report.Holes))
	for i, h := range report.Holes {
		holes[i] = dto.RosterHoleResponse{
			SlotID:         h.SlotID,
			Date:           h.Date.Format("2006-01-02"),
			Kind:           string(h.Kind),
			CandidateCount: h.CandidateCount,
		}
	}

	return &dto.RosterRunResponse{
		PeriodID:      periodID,
		DryRun:        dryRun,
		AssignedCount: report.AssignedCount,
		HoleCount:     report.HoleCount,
		Assignments:   assignments,
		Holes:         holes,
		CommittedAt:   committedAt,
	}
}

// AssignmentsToRunResponse renders stored assignments in the same
// shape as a fresh run, with no holes section.
func AssignmentsToRunResponse(periodID uuid.UUID, assignments []entity.Assignment) *dto.RosterRunResponse {
	responses := make([]dto.RosterAssignmentResponse, len(assignments))
	for i := range assignments {
		a := &assignments[i]
		responses[i] = dto.RosterAssignmentResponse{
			SlotID:        a.SlotID,
			Date:          a.Slot.DateKey(),
			Kind:          string(a.Slot.Kind),
			PhysicianID:   a.PhysicianID,
			PhysicianName: a.Physician.FullName,
			Score:         a.Score,
		}
	}

	return &dto.RosterRunResponse{
		PeriodID:      periodID,
		DryRun:        false,
		AssignedCount: len(responses),
		Assignments:   responses,
		Holes:         []dto.RosterHoleResponse{},
	}
}
