package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePeriodRequest struct {
	Label     string   `json:"label" validate:"required,min=2,max=50"`
	StartDate string   `json:"start_date" validate:"required"`
	EndDate   string   `json:"end_date" validate:"required"`
	Deadline  string   `json:"deadline" validate:"required"`
	Holidays  []string `json:"holidays" validate:"omitempty,dive,required"`
}

type PeriodResponse struct {
	ID        uuid.UUID `json:"id"`
	Label     string    `json:"label"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Deadline  time.Time `json:"deadline"`
	SlotCount int       `json:"slot_count,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type PeriodListResponse struct {
	Periods []PeriodResponse `json:"periods"`
	Total   int              `json:"total"`
}

type SlotResponse struct {
	ID      uuid.UUID `json:"id"`
	Date    string    `json:"date"`
	Kind    string    `json:"kind"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type PeriodDetailResponse struct {
	Period PeriodResponse `json:"period"`
	Slots  []SlotResponse `json:"slots"`
}
