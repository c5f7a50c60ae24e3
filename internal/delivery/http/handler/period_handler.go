package handler

import (
	"encoding/json"
	"net/http"

	"oncall-roster/internal/delivery/dto"
	"oncall-roster/internal/usecase"
	"oncall-roster/pkg/response"
	"oncall-roster/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PeriodHandler struct {
	periodUsecase usecase.PeriodUsecase
	validator     *validator.CustomValidator
}

func NewPeriodHandler(periodUsecase usecase.PeriodUsecase, validator *validator.CustomValidator) *PeriodHandler {
	return &PeriodHandler{
		periodUsecase: periodUsecase,
		validator:     validator,
	}
}

// Create creates a duty period and generates its slots
// @Summary Create a duty period
// @Tags Periods
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreatePeriodRequest true "Create Period Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /periods [post]
func (h *PeriodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePeriodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	period, err := h.periodUsecase.CreatePeriod(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPeriodLabelExists:
			response.Conflict(w, "A period with this label already exists")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		case usecase.ErrInvalidPeriodRange:
			response.Error(w, http.StatusBadRequest, "End date must not be before start date", nil)
		default:
			response.InternalServerError(w, "Failed to create period")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Period created successfully", period)
}

// List returns all duty periods
// @Summary List duty periods
// @Tags Periods
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /periods [get]
func (h *PeriodHandler) List(w http.ResponseWriter, r *http.Request) {
	periods, err := h.periodUsecase.ListPeriods(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list periods")
		return
	}

	response.Success(w, http.StatusOK, "Periods retrieved successfully", periods)
}

// Get returns one period with its generated slots
// @Summary Get a duty period
// @Tags Periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /periods/{id} [get]
func (h *PeriodHandler) Get(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	period, err := h.periodUsecase.GetPeriod(r.Context(), periodID)
	if err != nil {
		switch err {
		case usecase.ErrPeriodNotFound:
			response.NotFound(w, "Period not found")
		default:
			response.InternalServerError(w, "Failed to get period")
		}
		return
	}

	response.Success(w, http.StatusOK, "Period retrieved successfully", period)
}

// Delete removes a period and everything generated from it
// @Summary Delete a duty period
// @Tags Periods
// @Security BearerAuth
// @Produce json
// @Param id path string true "Period ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /periods/{id} [delete]
func (h *PeriodHandler) Delete(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	if err := h.periodUsecase.DeletePeriod(r.Context(), periodID); err != nil {
		switch err {
		case usecase.ErrPeriodNotFound:
			response.NotFound(w, "Period not found")
		default:
			response.InternalServerError(w, "Failed to delete period")
		}
		return
	}

	response.Success(w, http.StatusOK, "Period deleted successfully", nil)
}
