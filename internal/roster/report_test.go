package roster

import (
	"testing"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildReport_SortedAndCounted(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	late := makeSlot(t, "2026-01-12", entity.KindWeekdayNight)
	early := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	holeSlot := makeSlot(t, "2026-01-10", entity.KindSatNoon)

	result := &Result{
		Assignments: []Assigned{
			{Slot: late, PhysicianID: bob, Score: 1},
			{Slot: early, PhysicianID: alice, Score: 1},
		},
		Holes: []Hole{
			{Slot: holeSlot, CandidateCount: 2},
		},
	}

	report := BuildReport(result, map[uuid.UUID]string{alice: "Alice", bob: "Bob"})

	require.Equal(t, 2, report.AssignedCount)
	require.Equal(t, 1, report.HoleCount)

	require.Equal(t, early.ID, report.Assignments[0].SlotID)
	require.Equal(t, "Alice", report.Assignments[0].PhysicianName)
	require.Equal(t, late.ID, report.Assignments[1].SlotID)
	require.Equal(t, "Bob", report.Assignments[1].PhysicianName)

	require.Equal(t, holeSlot.ID, report.Holes[0].SlotID)
	require.Equal(t, 2, report.Holes[0].CandidateCount)
}

func TestBuildReport_SameDateOrderedByKind(t *testing.T) {
	alice := uuid.New()
	night := makeSlot(t, "2026-01-11", entity.KindSunNight)
	morning := makeSlot(t, "2026-01-11", entity.KindSunMorning)

	result := &Result{
		Assignments: []Assigned{
			{Slot: night, PhysicianID: alice, Score: 1},
			{Slot: morning, PhysicianID: alice, Score: 1},
		},
	}

	report := BuildReport(result, map[uuid.UUID]string{alice: "Alice"})

	require.Equal(t, entity.KindSunMorning, report.Assignments[0].Kind)
	require.Equal(t, entity.KindSunNight, report.Assignments[1].Kind)
}
