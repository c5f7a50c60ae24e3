package handler

import (
	"encoding/json"
	"net/http"

	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/delivery/http/middleware"
	"oncall-roster/internal/usecase"
	"oncall-roster/pkg/response"
	"oncall-roster/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewAvailabilityHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// Set marks one slot available or unavailable for the caller
// @Summary Set availability for a slot
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetAvailabilityRequest true "Availability Request"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /availability [put]
func (h *AvailabilityHandler) Set(w http.ResponseWriter, r *http.Request) {
	physicianID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entry, err := h.availabilityUsecase.SetAvailability(r.Context(), physicianID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", entry)
}

// SetBatch updates availability for many slots at once
// @Summary Set availability for multiple slots
// @Tags Availability
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SetAvailabilityBatchRequest true "Batch Availability Request"
// @Success 200 {object} response.Response
// @Router /availability/batch [put]
func (h *AvailabilityHandler) SetBatch(w http.ResponseWriter, r *http.Request) {
	physicianID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.SetAvailabilityBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	entries, err := h.availabilityUsecase.SetAvailabilityBatch(r.Context(), physicianID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability updated successfully", entries)
}

// ListMine returns the caller's availability for one period
// @Summary List my availability
// @Tags Availability
// @Security BearerAuth
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/availability [get]
func (h *AvailabilityHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	physicianID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	entries, err := h.availabilityUsecase.ListMyAvailability(r.Context(), physicianID, periodID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", entries)
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrSlotNotFound:
		response.NotFound(w, "Slot not found")
	case usecase.ErrPeriodNotFound:
		response.NotFound(w, "Period not found")
	case usecase.ErrDeadlinePassed:
		response.Conflict(w, "The availability deadline for this period has passed")
	default:
		response.InternalServerError(w, "Failed to update availability")
	}
}
