package roster

import (
	"testing"
	"time"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return d
}

func kindsOn(slots []entity.Slot, date string) []entity.SlotKind {
	var kinds []entity.SlotKind
	for i := range slots {
		if slots[i].DateKey() == date {
			kinds = append(kinds, slots[i].Kind)
		}
	}
	return kinds
}

func TestGenerateSlots_WeekdayShapes(t *testing.T) {
	periodID := uuid.New()
	// 2026-01-05 is a Monday.
	slots := GenerateSlots(periodID, day(t, "2026-01-05"), day(t, "2026-01-11"), nil)

	require.Equal(t, []entity.SlotKind{entity.KindWeekdayNight}, kindsOn(slots, "2026-01-05"))
	require.Equal(t, []entity.SlotKind{entity.KindWeekdayNight}, kindsOn(slots, "2026-01-09"))
	require.Equal(t, []entity.SlotKind{entity.KindSatNoon, entity.KindSatNight}, kindsOn(slots, "2026-01-10"))
	require.Equal(t, []entity.SlotKind{entity.KindSunMorning, entity.KindSunAfternoon, entity.KindSunNight}, kindsOn(slots, "2026-01-11"))

	// 5 weekdays + 2 Saturday + 3 Sunday
	require.Len(t, slots, 10)
	for i := range slots {
		require.Equal(t, periodID, slots[i].PeriodID)
	}
}

func TestGenerateSlots_HolidayTreatedAsSunday(t *testing.T) {
	// 2026-01-01 is a Thursday.
	holidays := map[string]bool{"2026-01-01": true}
	slots := GenerateSlots(uuid.New(), day(t, "2026-01-01"), day(t, "2026-01-02"), holidays)

	require.Equal(t, []entity.SlotKind{entity.KindSunMorning, entity.KindSunAfternoon, entity.KindSunNight}, kindsOn(slots, "2026-01-01"))
	require.Equal(t, []entity.SlotKind{entity.KindWeekdayNight}, kindsOn(slots, "2026-01-02"))
}

func TestGenerateSlots_MidnightEndRollsToNextDay(t *testing.T) {
	slots := GenerateSlots(uuid.New(), day(t, "2026-01-05"), day(t, "2026-01-05"), nil)

	require.Len(t, slots, 1)
	slot := slots[0]
	require.Equal(t, 20, slot.StartAt.Hour())
	require.Equal(t, 0, slot.EndAt.Hour())
	require.Equal(t, 6, slot.EndAt.Day())
	require.True(t, slot.IsNight())
	require.True(t, slot.EndsAtMidnight())
}

func TestGenerateSlots_ShapesDeterministic(t *testing.T) {
	start, end := day(t, "2026-01-01"), day(t, "2026-03-31")
	holidays := map[string]bool{"2026-01-01": true, "2026-02-16": true}

	first := GenerateSlots(uuid.New(), start, end, holidays)
	second := GenerateSlots(uuid.New(), start, end, holidays)

	require.Len(t, second, len(first))
	for i := range first {
		require.Equal(t, first[i].Date, second[i].Date)
		require.Equal(t, first[i].Kind, second[i].Kind)
		require.Equal(t, first[i].StartAt, second[i].StartAt)
		require.Equal(t, first[i].EndAt, second[i].EndAt)
	}
}

func TestMonthsBetween(t *testing.T) {
	got := MonthsBetween(day(t, "2026-01-15"), day(t, "2026-04-02"))
	require.Equal(t, []string{"2026-01", "2026-02", "2026-03", "2026-04"}, got)

	got = MonthsBetween(day(t, "2026-06-10"), day(t, "2026-06-20"))
	require.Equal(t, []string{"2026-06"}, got)

	got = MonthsBetween(day(t, "2026-11-01"), day(t, "2027-01-31"))
	require.Equal(t, []string{"2026-11", "2026-12", "2027-01"}, got)
}

func TestMonthsOf(t *testing.T) {
	slots := GenerateSlots(uuid.New(), day(t, "2026-01-01"), day(t, "2026-03-31"), nil)
	require.Equal(t, []string{"2026-01", "2026-02", "2026-03"}, MonthsOf(slots))

	require.Empty(t, MonthsOf(nil))
}
