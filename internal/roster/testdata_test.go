package roster

import (
	"testing"
	"time"

	"oncall-roster/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var slotHours = map[entity.SlotKind][2]int{
	entity.KindWeekdayNight: {20, 24},
	entity.KindSatNoon:      {12, 18},
	entity.KindSatNight:     {18, 24},
	entity.KindSunMorning:   {8, 14},
	entity.KindSunAfternoon: {14, 20},
	entity.KindSunNight:     {20, 24},
}

func makeSlot(t *testing.T, date string, kind entity.SlotKind) entity.Slot {
	t.Helper()
	day, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	hours := slotHours[kind]
	return entity.Slot{
		ID:      uuid.New(),
		Date:    day,
		Kind:    kind,
		StartAt: day.Add(time.Duration(hours[0]) * time.Hour),
		EndAt:   day.Add(time.Duration(hours[1]) * time.Hour),
	}
}

func availableFor(physician uuid.UUID, slots ...entity.Slot) []entity.Availability {
	rows := make([]entity.Availability, 0, len(slots))
	for _, s := range slots {
		rows = append(rows, entity.Availability{
			PhysicianID: physician,
			SlotID:      s.ID,
			Available:   true,
		})
	}
	return rows
}

func levelPtr(level int) *int {
	return &level
}
