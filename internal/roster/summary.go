package roster

import (
	"sort"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
)

// PhysicianStat is the aggregate view of one physician for a period.
type PhysicianStat struct {
	Name        string
	TargetLevel *int
	AvailCount  int
}

// SlotCandidates pairs a slot with the physicians who marked
// themselves available for it. Candidates are sorted by id so that
// every downstream pass iterates them in a fixed order.
type SlotCandidates struct {
	Slot       entity.Slot
	Candidates []uuid.UUID
}

// Summary is the read-side aggregation the engine consumes: every
// slot of the period with its candidate set, plus a per-physician
// index. It performs no assignment logic.
type Summary struct {
	Slots      []SlotCandidates
	Physicians map[uuid.UUID]PhysicianStat
}

// BuildSummary aggregates slots, availability and preferences for one
// period. The physician universe is the union of anyone available on
// at least one slot and anyone with a declared preference; a physician
// present in only one source still appears (nil target, zero avail
// count respectively). Zero slots yields empty, valid structures.
func BuildSummary(slots []entity.Slot, avails []entity.Availability, prefs []entity.DutyPreference, names map[uuid.UUID]string) *Summary {
	bySlot := make(map[uuid.UUID][]uuid.UUID)
	availCount := make(map[uuid.UUID]int)
	for i := range avails {
		if !avails[i].Available {
			continue
		}
		bySlot[avails[i].SlotID] = append(bySlot[avails[i].SlotID], avails[i].PhysicianID)
		availCount[avails[i].PhysicianID]++
	}

	physicians := make(map[uuid.UUID]PhysicianStat)
	for id, count := range availCount {
		physicians[id] = PhysicianStat{
			Name:       names[id],
			AvailCount: count,
		}
	}
	for i := range prefs {
		id := prefs[i].PhysicianID
		stat := physicians[id]
		stat.Name = names[id]
		stat.TargetLevel = prefs[i].TargetLevel
		physicians[id] = stat
	}

	summary := &Summary{
		Slots:      make([]SlotCandidates, 0, len(slots)),
		Physicians: physicians,
	}
	for i := range slots {
		candidates := bySlot[slots[i].ID]
		sort.Slice(candidates, func(a, b int) bool {
			return candidates[a].String() < candidates[b].String()
		})
		summary.Slots = append(summary.Slots, SlotCandidates{
			Slot:       slots[i],
			Candidates: candidates,
		})
	}
	sort.SliceStable(summary.Slots, func(a, b int) bool {
		if !summary.Slots[a].Slot.StartAt.Equal(summary.Slots[b].Slot.StartAt) {
			return summary.Slots[a].Slot.StartAt.Before(summary.Slots[b].Slot.StartAt)
		}
		return summary.Slots[a].Slot.Kind < summary.Slots[b].Slot.Kind
	})

	return summary
}

// AvailByUserMonth counts, per physician and month, the slots they
// marked available. The quota resolver zeroes out months with no
// availability.
func AvailByUserMonth(slots []entity.Slot, avails []entity.Availability) map[uuid.UUID]map[string]int {
	monthBySlot := make(map[uuid.UUID]string, len(slots))
	for i := range slots {
		monthBySlot[slots[i].ID] = slots[i].MonthKey()
	}

	counts := make(map[uuid.UUID]map[string]int)
	for i := range avails {
		if !avails[i].Available {
			continue
		}
		month, ok := monthBySlot[avails[i].SlotID]
		if !ok {
			continue
		}
		if counts[avails[i].PhysicianID] == nil {
			counts[avails[i].PhysicianID] = make(map[string]int)
		}
		counts[avails[i].PhysicianID][month]++
	}
	return counts
}
