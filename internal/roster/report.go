package roster

import (
	"sort"
	"time"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
)

// ReportAssignment is one assignment enriched for display.
type ReportAssignment struct {
	SlotID        uuid.UUID       `json:"slot_id"`
	Date          time.Time       `json:"date"`
	Kind          entity.SlotKind `json:"kind"`
	PhysicianID   uuid.UUID       `json:"physician_id"`
	PhysicianName string          `json:"physician_name"`
	Score         int             `json:"score"`
}

// ReportHole is one unfillable slot with its diagnostic candidate
// count.
type ReportHole struct {
	SlotID         uuid.UUID       `json:"slot_id"`
	Date           time.Time       `json:"date"`
	Kind           entity.SlotKind `json:"kind"`
	CandidateCount int             `json:"candidate_count"`
}

// Report is the final payload of a solver run.
type Report struct {
	Assignments   []ReportAssignment `json:"assignments"`
	Holes         []ReportHole       `json:"holes"`
	AssignedCount int                `json:"assigned_count"`
	HoleCount     int                `json:"hole_count"`
}

// BuildReport sorts the run output for presentation: assignments and
// holes both ordered by (date, kind).
func BuildReport(result *Result, names map[uuid.UUID]string) *Report {
	report := &Report{
		Assignments:   make([]ReportAssignment, 0, len(result.Assignments)),
		Holes:         make([]ReportHole, 0, len(result.Holes)),
		AssignedCount: len(result.Assignments),
		HoleCount:     len(result.Holes),
	}

	for _, a := range result.Assignments {
		report.Assignments = append(report.Assignments, ReportAssignment{
			SlotID:        a.Slot.ID,
			Date:          a.Slot.Date,
			Kind:          a.Slot.Kind,
			PhysicianID:   a.PhysicianID,
			PhysicianName: names[a.PhysicianID],
			Score:         a.Score,
		})
	}
	sort.SliceStable(report.Assignments, func(i, j int) bool {
		if !report.Assignments[i].Date.Equal(report.Assignments[j].Date) {
			return report.Assignments[i].Date.Before(report.Assignments[j].Date)
		}
		return report.Assignments[i].Kind < report.Assignments[j].Kind
	})

	for _, h := range result.Holes {
		report.Holes = append(report.Holes, ReportHole{
			SlotID:         h.Slot.ID,
			Date:           h.Slot.Date,
			Kind:           h.Slot.Kind,
			CandidateCount: h.CandidateCount,
		})
	}
	sort.SliceStable(report.Holes, func(i, j int) bool {
		if !report.Holes[i].Date.Equal(report.Holes[j].Date) {
			return report.Holes[i].Date.Before(report.Holes[j].Date)
		}
		return report.Holes[i].Kind < report.Holes[j].Kind
	})

	return report
}
