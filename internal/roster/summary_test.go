package roster

import (
	"testing"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBuildSummary_UniverseIsUnionOfSources(t *testing.T) {
	availOnly := uuid.New()
	prefOnly := uuid.New()
	slot := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)

	summary := BuildSummary(
		[]entity.Slot{slot},
		availableFor(availOnly, slot),
		[]entity.DutyPreference{{PhysicianID: prefOnly, TargetLevel: levelPtr(3)}},
		map[uuid.UUID]string{availOnly: "Alice", prefOnly: "Bob"},
	)

	require.Len(t, summary.Physicians, 2)

	alice := summary.Physicians[availOnly]
	require.Equal(t, "Alice", alice.Name)
	require.Nil(t, alice.TargetLevel)
	require.Equal(t, 1, alice.AvailCount)

	// Bob declared a target but is available nowhere; he still
	// appears, with zero availability.
	bob := summary.Physicians[prefOnly]
	require.Equal(t, "Bob", bob.Name)
	require.NotNil(t, bob.TargetLevel)
	require.Equal(t, 3, *bob.TargetLevel)
	require.Equal(t, 0, bob.AvailCount)
}

func TestBuildSummary_SlotsSortedByStart(t *testing.T) {
	alice := uuid.New()
	later := makeSlot(t, "2026-01-11", entity.KindSunMorning)
	earlier := makeSlot(t, "2026-01-10", entity.KindSatNight)

	summary := BuildSummary(
		[]entity.Slot{later, earlier},
		availableFor(alice, later, earlier),
		nil,
		map[uuid.UUID]string{alice: "Alice"},
	)

	require.Len(t, summary.Slots, 2)
	require.Equal(t, earlier.ID, summary.Slots[0].Slot.ID)
	require.Equal(t, later.ID, summary.Slots[1].Slot.ID)
}

func TestBuildSummary_IgnoresUnavailableRows(t *testing.T) {
	alice := uuid.New()
	slot := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)

	summary := BuildSummary(
		[]entity.Slot{slot},
		[]entity.Availability{{PhysicianID: alice, SlotID: slot.ID, Available: false}},
		nil,
		map[uuid.UUID]string{alice: "Alice"},
	)

	require.Empty(t, summary.Physicians)
	require.Empty(t, summary.Slots[0].Candidates)
}

func TestBuildSummary_ZeroSlots(t *testing.T) {
	summary := BuildSummary(nil, nil, nil, nil)

	require.Empty(t, summary.Slots)
	require.Empty(t, summary.Physicians)
}

func TestBuildSummary_CandidatesSortedByID(t *testing.T) {
	slot := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	avails := append(availableFor(c, slot), availableFor(a, slot)...)
	avails = append(avails, availableFor(b, slot)...)

	summary := BuildSummary([]entity.Slot{slot}, avails, nil, nil)

	candidates := summary.Slots[0].Candidates
	require.Len(t, candidates, 3)
	for i := 1; i < len(candidates); i++ {
		require.Less(t, candidates[i-1].String(), candidates[i].String())
	}
}

func TestAvailByUserMonth(t *testing.T) {
	alice := uuid.New()
	jan := makeSlot(t, "2026-01-05", entity.KindWeekdayNight)
	jan2 := makeSlot(t, "2026-01-12", entity.KindWeekdayNight)
	feb := makeSlot(t, "2026-02-02", entity.KindWeekdayNight)

	counts := AvailByUserMonth(
		[]entity.Slot{jan, jan2, feb},
		availableFor(alice, jan, jan2, feb),
	)

	require.Equal(t, 2, counts[alice]["2026-01"])
	require.Equal(t, 1, counts[alice]["2026-02"])
}
