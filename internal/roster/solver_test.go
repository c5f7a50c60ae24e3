package roster

import (
	"testing"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// runSolve wires summary, specs and solver together the way the
// usecase does, with a soft max of 1 unless overridden by targets.
func runSolve(t *testing.T, slots []entity.Slot, avails []entity.Availability, prefs []entity.DutyPreference, targets []entity.MonthlyTarget, names map[uuid.UUID]string) *Result {
	t.Helper()
	summary := BuildSummary(slots, avails, prefs, names)
	specs := BuildQuotaSpecs(summary, targets, 1)
	quotas := ResolveQuotas(specs, AvailByUserMonth(slots, avails), MonthsOf(slots))
	return NewSolver(summary, quotas).Solve(summary)
}

func TestSolve_TrivialFill(t *testing.T) {
	alice := uuid.New()
	slot := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)

	result := runSolve(t,
		[]entity.Slot{slot},
		availableFor(alice, slot),
		nil, nil,
		map[uuid.UUID]string{alice: "Alice"},
	)

	require.Empty(t, result.Holes)
	require.Len(t, result.Assignments, 1)
	require.Equal(t, alice, result.Assignments[0].PhysicianID)
	require.Equal(t, entity.DefaultAssignmentScore, result.Assignments[0].Score)
}

func TestSolve_ForcedHole(t *testing.T) {
	slot := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)

	result := runSolve(t, []entity.Slot{slot}, nil, nil, nil, nil)

	require.Empty(t, result.Assignments)
	require.Len(t, result.Holes, 1)
	require.Equal(t, 0, result.Holes[0].CandidateCount)
}

func TestSolve_ZeroSlots(t *testing.T) {
	result := runSolve(t, nil, nil, nil, nil, nil)

	require.Empty(t, result.Assignments)
	require.Empty(t, result.Holes)
}

func TestSolve_SameDayExclusivity(t *testing.T) {
	alice := uuid.New()
	noon := makeSlot(t, "2026-01-10", entity.KindSatNoon)
	night := makeSlot(t, "2026-01-10", entity.KindSatNight)

	// Explicit monthly target of 2 so quota is not the limiting factor.
	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 2},
	}

	result := runSolve(t,
		[]entity.Slot{noon, night},
		availableFor(alice, noon, night),
		nil, targets,
		map[uuid.UUID]string{alice: "Alice"},
	)

	require.Len(t, result.Assignments, 1)
	require.Len(t, result.Holes, 1)
	// The hole still reports Alice as a raw candidate.
	require.Equal(t, 1, result.Holes[0].CandidateCount)
}

func TestSolve_SameDaySecondSlotGoesToOtherCandidate(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	noon := makeSlot(t, "2026-01-10", entity.KindSatNoon)
	night := makeSlot(t, "2026-01-10", entity.KindSatNight)

	avails := append(availableFor(alice, noon, night), availableFor(bob, night)...)

	result := runSolve(t,
		[]entity.Slot{noon, night},
		avails,
		nil, nil,
		map[uuid.UUID]string{alice: "Alice", bob: "Bob"},
	)

	require.Len(t, result.Assignments, 2)
	require.Empty(t, result.Holes)
	byKind := map[entity.SlotKind]uuid.UUID{}
	for _, a := range result.Assignments {
		byKind[a.Slot.Kind] = a.PhysicianID
	}
	// night is the scarcer slot for Bob; the buckets hand it to Bob
	// (night has 2 candidates, noon has 1, so noon locks Alice first).
	require.Equal(t, alice, byKind[entity.KindSatNoon])
	require.Equal(t, bob, byKind[entity.KindSatNight])
}

func TestSolve_NightAdjacencyForcesHole(t *testing.T) {
	alice := uuid.New()
	monday := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	tuesday := makeSlot(t, "2026-01-06", entity.KindWeekdayNight)

	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 5},
	}

	result := runSolve(t,
		[]entity.Slot{monday, tuesday},
		availableFor(alice, monday, tuesday),
		nil, targets,
		map[uuid.UUID]string{alice: "Alice"},
	)

	require.Len(t, result.Assignments, 1)
	require.Equal(t, monday.ID, result.Assignments[0].Slot.ID)
	require.Len(t, result.Holes, 1)
	require.Equal(t, tuesday.ID, result.Holes[0].Slot.ID)
	require.Equal(t, 1, result.Holes[0].CandidateCount)
}

func TestSolve_NightIntoSundayMorningForcesHole(t *testing.T) {
	alice := uuid.New()
	satNight := makeSlot(t, "2026-01-10", entity.KindSatNight)
	sunMorning := makeSlot(t, "2026-01-11", entity.KindSunMorning)
	sunAfternoon := makeSlot(t, "2026-01-11", entity.KindSunAfternoon)

	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 5},
	}

	result := runSolve(t,
		[]entity.Slot{satNight, sunMorning, sunAfternoon},
		availableFor(alice, satNight, sunMorning, sunAfternoon),
		nil, targets,
		map[uuid.UUID]string{alice: "Alice"},
	)

	assignedSlots := map[uuid.UUID]bool{}
	for _, a := range result.Assignments {
		assignedSlots[a.Slot.ID] = true
	}
	require.True(t, assignedSlots[satNight.ID])
	// Saturday night ends at midnight, so Sunday morning is excluded;
	// Sunday afternoon is a fresh day and stays allowed.
	require.True(t, assignedSlots[sunAfternoon.ID])
	require.Len(t, result.Holes, 1)
	require.Equal(t, sunMorning.ID, result.Holes[0].Slot.ID)
}

func TestSolve_NightAdjacencyHoldsAcrossBuckets(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	// The one-candidate bucket fills Sunday (Bob) and Tuesday (Alice)
	// nights before Monday night is even considered. Monday then has
	// a held night on both neighbouring days: Bob is blocked by his
	// Sunday night, Alice by her Tuesday night, and the slot must
	// become a hole rather than hand Alice consecutive nights.
	sunNight := makeSlot(t, "2026-01-04", entity.KindSunNight)
	monNight := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	tueNight := makeSlot(t, "2026-01-06", entity.KindWeekdayNight)

	avails := append(availableFor(bob, sunNight, monNight), availableFor(alice, monNight, tueNight)...)
	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 3},
		{PhysicianID: bob, Month: "2026-01", TargetTotal: 3},
	}

	result := runSolve(t,
		[]entity.Slot{sunNight, monNight, tueNight},
		avails,
		nil, targets,
		map[uuid.UUID]string{alice: "Alice", bob: "Bob"},
	)

	bySlot := map[uuid.UUID]uuid.UUID{}
	for _, a := range result.Assignments {
		bySlot[a.Slot.ID] = a.PhysicianID
	}
	require.Equal(t, bob, bySlot[sunNight.ID])
	require.Equal(t, alice, bySlot[tueNight.ID])
	require.Len(t, result.Holes, 1)
	require.Equal(t, monNight.ID, result.Holes[0].Slot.ID)
	require.Equal(t, 2, result.Holes[0].CandidateCount)

	nightDays := map[uuid.UUID][]string{}
	for _, a := range result.Assignments {
		if a.Slot.IsNight() {
			nightDays[a.PhysicianID] = append(nightDays[a.PhysicianID], a.Slot.DateKey())
		}
	}
	require.Len(t, nightDays[alice], 1)
	require.Len(t, nightDays[bob], 1)
}

func TestSolve_MidnightEndBlockedBySundayMorningAcrossBuckets(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	// Sunday morning goes to Alice from the one-candidate bucket
	// before Saturday night is processed. Saturday night ends at
	// midnight into that morning, so Alice is blocked even though her
	// assignment lies on the following day; Bob is already at his
	// total cap from Friday, leaving a hole.
	friNight := makeSlot(t, "2026-01-09", entity.KindWeekdayNight)
	satNight := makeSlot(t, "2026-01-10", entity.KindSatNight)
	sunMorning := makeSlot(t, "2026-01-11", entity.KindSunMorning)

	avails := append(availableFor(bob, friNight, satNight), availableFor(alice, satNight, sunMorning)...)
	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 2},
		{PhysicianID: bob, Month: "2026-01", TargetTotal: 1},
	}

	result := runSolve(t,
		[]entity.Slot{friNight, satNight, sunMorning},
		avails,
		nil, targets,
		map[uuid.UUID]string{alice: "Alice", bob: "Bob"},
	)

	bySlot := map[uuid.UUID]uuid.UUID{}
	for _, a := range result.Assignments {
		bySlot[a.Slot.ID] = a.PhysicianID
	}
	require.Equal(t, bob, bySlot[friNight.ID])
	require.Equal(t, alice, bySlot[sunMorning.ID])
	require.Len(t, result.Holes, 1)
	require.Equal(t, satNight.ID, result.Holes[0].Slot.ID)
	require.Equal(t, 2, result.Holes[0].CandidateCount)
}

func TestSolve_SoftMaxSpreadsFairly(t *testing.T) {
	physicians := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	names := map[uuid.UUID]string{
		physicians[0]: "Alice",
		physicians[1]: "Bob",
		physicians[2]: "Carol",
	}

	dates := []string{
		"2026-01-05", "2026-01-06", "2026-01-07", "2026-01-08", "2026-01-09",
		"2026-01-12", "2026-01-13", "2026-01-14", "2026-01-15", "2026-01-16",
	}
	slots := make([]entity.Slot, 0, len(dates))
	for _, d := range dates {
		slots = append(slots, makeSlot(t, d, entity.KindWeekdayNight))
	}

	var avails []entity.Availability
	var prefs []entity.DutyPreference
	for _, p := range physicians {
		avails = append(avails, availableFor(p, slots...)...)
		prefs = append(prefs, entity.DutyPreference{PhysicianID: p, TargetLevel: levelPtr(5)})
	}

	result := runSolve(t, slots, avails, prefs, nil, names)

	// Soft max of 1 per month: everyone gets exactly one shift before
	// anyone could get a second, and the rest of the month holes out.
	require.Len(t, result.Assignments, 3)
	require.Len(t, result.Holes, 7)
	counts := map[uuid.UUID]int{}
	for _, a := range result.Assignments {
		counts[a.PhysicianID]++
	}
	for _, p := range physicians {
		require.Equal(t, 1, counts[p])
	}
	for _, h := range result.Holes {
		require.Equal(t, 3, h.CandidateCount)
	}
}

func TestSolve_MonthlyQuotaRespectedAcrossMonths(t *testing.T) {
	alice := uuid.New()
	jan1 := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	jan2 := makeSlot(t, "2026-01-12", entity.KindWeekdayNight)
	feb1 := makeSlot(t, "2026-02-09", entity.KindWeekdayNight)

	prefs := []entity.DutyPreference{
		{PhysicianID: alice, TargetLevel: levelPtr(1)},
	}

	result := runSolve(t,
		[]entity.Slot{jan1, jan2, feb1},
		availableFor(alice, jan1, jan2, feb1),
		prefs, nil,
		map[uuid.UUID]string{alice: "Alice"},
	)

	// Level 1 means one shift per month: January's second slot holes
	// out but February is fresh capacity.
	require.Len(t, result.Assignments, 2)
	require.Len(t, result.Holes, 1)
	require.Equal(t, jan2.ID, result.Holes[0].Slot.ID)

	perMonth := map[string]int{}
	for _, a := range result.Assignments {
		perMonth[a.Slot.MonthKey()]++
	}
	require.Equal(t, 1, perMonth["2026-01"])
	require.Equal(t, 1, perMonth["2026-02"])
}

func TestSolve_ScarcestBucketFirst(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	// flexible has both candidates and starts earlier; scarce has
	// only Alice. Bucket ordering must fill scarce first so Alice is
	// still free for it.
	flexible := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	scarce := makeSlot(t, "2026-01-09", entity.KindWeekdayNight)

	avails := append(availableFor(alice, flexible, scarce), availableFor(bob, flexible)...)
	targets := []entity.MonthlyTarget{
		{PhysicianID: alice, Month: "2026-01", TargetTotal: 1},
		{PhysicianID: bob, Month: "2026-01", TargetTotal: 1},
	}

	result := runSolve(t,
		[]entity.Slot{flexible, scarce},
		avails,
		nil, targets,
		map[uuid.UUID]string{alice: "Alice", bob: "Bob"},
	)

	require.Empty(t, result.Holes)
	bySlot := map[uuid.UUID]uuid.UUID{}
	for _, a := range result.Assignments {
		bySlot[a.Slot.ID] = a.PhysicianID
	}
	require.Equal(t, alice, bySlot[scarce.ID])
	require.Equal(t, bob, bySlot[flexible.ID])
}

func TestSolve_TieBreakPrefersRarerAvailability(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()
	shared := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	extra := makeSlot(t, "2026-01-07", entity.KindWeekdayNight)

	// Both slots sit in the two-candidate bucket. Bob is available
	// twice, Alice and Carol once each: at equal assignment counts the
	// rarer physician wins each slot and Bob is passed over entirely.
	avails := append(availableFor(alice, shared), availableFor(bob, shared, extra)...)
	avails = append(avails, availableFor(carol, extra)...)

	result := runSolve(t,
		[]entity.Slot{shared, extra},
		avails,
		nil, nil,
		map[uuid.UUID]string{alice: "Alice", bob: "Bob", carol: "Carol"},
	)

	bySlot := map[uuid.UUID]uuid.UUID{}
	for _, a := range result.Assignments {
		bySlot[a.Slot.ID] = a.PhysicianID
	}
	require.Equal(t, alice, bySlot[shared.ID])
	require.Equal(t, carol, bySlot[extra.ID])
}

func TestSolve_Deterministic(t *testing.T) {
	physicians := []uuid.UUID{uuid.New(), uuid.New(), uuid.New(), uuid.New()}
	names := map[uuid.UUID]string{}
	for i, p := range physicians {
		names[p] = string(rune('A' + i))
	}

	slots := []entity.Slot{
		makeSlot(t, "2026-01-05", entity.KindWeekdayNight),
		makeSlot(t, "2026-01-10", entity.KindSatNoon),
		makeSlot(t, "2026-01-10", entity.KindSatNight),
		makeSlot(t, "2026-01-11", entity.KindSunMorning),
		makeSlot(t, "2026-01-11", entity.KindSunAfternoon),
		makeSlot(t, "2026-01-11", entity.KindSunNight),
		makeSlot(t, "2026-02-02", entity.KindWeekdayNight),
	}

	var avails []entity.Availability
	for i, p := range physicians {
		for j, s := range slots {
			if (i+j)%2 == 0 {
				avails = append(avails, entity.Availability{PhysicianID: p, SlotID: s.ID, Available: true})
			}
		}
	}

	first := runSolve(t, slots, avails, nil, nil, names)
	second := runSolve(t, slots, avails, nil, nil, names)

	require.Equal(t, first, second)
}

func TestSolve_EverySlotAccountedForOnce(t *testing.T) {
	physicians := []uuid.UUID{uuid.New(), uuid.New()}
	names := map[uuid.UUID]string{physicians[0]: "Alice", physicians[1]: "Bob"}

	slots := []entity.Slot{
		makeSlot(t, "2026-01-05", entity.KindWeekdayNight),
		makeSlot(t, "2026-01-06", entity.KindWeekdayNight),
		makeSlot(t, "2026-01-10", entity.KindSatNoon),
		makeSlot(t, "2026-01-10", entity.KindSatNight),
		makeSlot(t, "2026-01-11", entity.KindSunMorning),
	}

	avails := append(availableFor(physicians[0], slots[0], slots[2], slots[4]),
		availableFor(physicians[1], slots[0], slots[1], slots[3])...)

	result := runSolve(t, slots, avails, nil, nil, names)

	seen := map[uuid.UUID]int{}
	for _, a := range result.Assignments {
		seen[a.Slot.ID]++
	}
	for _, h := range result.Holes {
		seen[h.Slot.ID]++
	}
	require.Len(t, seen, len(slots))
	for _, s := range slots {
		require.Equal(t, 1, seen[s.ID])
	}
}
