package converter

import (
	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/domain/entity"
)

func PeriodToResponse(period *entity.DutyPeriod) *dto.PeriodResponse {
	return &dto.PeriodResponse{
		ID:        period.ID,
		Label:     period.Label,
		StartDate: period.StartDate.Format("2006-01-02"),
		EndDate:   period.EndDate.Format("2006-01-02"),
		Deadline:  period.Deadline,
		CreatedAt: period.CreatedAt,
	}
}

func SlotToResponse(slot *entity.Slot) *dto.SlotResponse {
	return &dto.SlotResponse{
		ID:      slot.ID,
		Date:    slot.DateKey(),
		Kind:    string(slot.Kind),
		StartAt: slot.StartAt,
		EndAt:   slot.EndAt,
	}
}

func SlotsToResponses(slots []entity.Slot) []dto.SlotResponse {
	responses := make([]dto.SlotResponse, len(slots))
	for i := range slots {
		responses[i] = *SlotToResponse(&slots[i])
	}
	return responses
}
