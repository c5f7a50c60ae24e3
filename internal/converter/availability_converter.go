package converter

import (
	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/domain/entity"
)

func AvailabilityToResponse(availability *entity.Availability, slot *entity.Slot) *dto.AvailabilityResponse {
	return &dto.AvailabilityResponse{
		SlotID:    availability.SlotID,
		Date:      slot.DateKey(),
		Kind:      string(slot.Kind),
		Available: availability.Available,
		UpdatedAt: availability.UpdatedAt,
	}
}
