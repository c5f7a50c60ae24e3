package dto

import (
	"time"

	"github.com/google/uuid"
)

type SetAvailabilityRequest struct {
	SlotID    uuid.UUID `json:"slot_id" validate:"required"`
	Available *bool     `json:"available" validate:"required"`
}

type SetAvailabilityBatchRequest struct {
	Entries []SetAvailabilityRequest `json:"entries" validate:"required,min=1,dive"`
}

type AvailabilityResponse struct {
	SlotID    uuid.UUID `json:"slot_id"`
	Date      string    `json:"date"`
	Kind      string    `json:"kind"`
	Available bool      `json:"available"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AvailabilityListResponse struct {
	Entries []AvailabilityResponse `json:"entries"`
	Total   int                    `json:"total"`
}
