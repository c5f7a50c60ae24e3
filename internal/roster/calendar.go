package roster

import (
	"sort"
	"time"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
)

// slotShape describes one shift template for a day.
type slotShape struct {
	kind      entity.SlotKind
	startHour int
	endHour   int // 24 means 00:00 of the next day
}

var (
	weekdayShapes = []slotShape{
		{entity.KindWeekdayNight, 20, 24},
	}
	saturdayShapes = []slotShape{
		{entity.KindSatNoon, 12, 18},
		{entity.KindSatNight, 18, 24},
	}
	sundayShapes = []slotShape{
		{entity.KindSunMorning, 8, 14},
		{entity.KindSunAfternoon, 14, 20},
		{entity.KindSunNight, 20, 24},
	}
)

// GenerateSlots walks the closed date range [start, end] and emits the
// deterministic slot set for each day: weekdays get one night slot,
// Saturdays two slots, Sundays three. Holidays (keyed YYYY-MM-DD) are
// treated as Sundays regardless of weekday.
func GenerateSlots(periodID uuid.UUID, start, end time.Time, holidays map[string]bool) []entity.Slot {
	var slots []entity.Slot

	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for !day.After(last) {
		shapes := shapesForDay(day, holidays)
		for _, shape := range shapes {
			startAt := day.Add(time.Duration(shape.startHour) * time.Hour)
			endAt := day.Add(time.Duration(shape.endHour) * time.Hour)
			slots = append(slots, entity.Slot{
				ID:       uuid.New(),
				PeriodID: periodID,
				Date:     day,
				Kind:     shape.kind,
				StartAt:  startAt,
				EndAt:    endAt,
			})
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots
}

func shapesForDay(day time.Time, holidays map[string]bool) []slotShape {
	if holidays[day.Format("2006-01-02")] {
		return sundayShapes
	}
	switch day.Weekday() {
	case time.Saturday:
		return saturdayShapes
	case time.Sunday:
		return sundayShapes
	default:
		return weekdayShapes
	}
}

// MonthsBetween returns every month (YYYY-MM) touched by the closed
// date range [start, end], in chronological order.
func MonthsBetween(start, end time.Time) []string {
	var months []string
	m := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !m.After(last) {
		months = append(months, m.Format("2006-01"))
		m = m.AddDate(0, 1, 0)
	}
	return months
}

// MonthsOf returns the distinct months (YYYY-MM) spanned by the slots,
// in chronological order.
func MonthsOf(slots []entity.Slot) []string {
	seen := make(map[string]bool)
	var months []string
	for i := range slots {
		m := slots[i].MonthKey()
		if !seen[m] {
			seen[m] = true
			months = append(months, m)
		}
	}
	sort.Strings(months)
	return months
}
