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

type PreferenceHandler struct {
	preferenceUsecase usecase.PreferenceUsecase
	validator         *validator.CustomValidator
}

func NewPreferenceHandler(preferenceUsecase usecase.PreferenceUsecase, validator *validator.CustomValidator) *PreferenceHandler {
	return &PreferenceHandler{
		preferenceUsecase: preferenceUsecase,
		validator:         validator,
	}
}

// Set declares the caller's target level for a period
// @Summary Set duty preference
// @Tags Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param periodId path string true "Period ID"
// @Param request body dto.SetPreferenceRequest true "Preference Request"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/preference [put]
func (h *PreferenceHandler) Set(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SetPreferenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pref, err := h.preferenceUsecase.SetPreference(r.Context(), physicianID, periodID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Preference updated successfully", pref)
}

// SetMonthlyTargets declares explicit per-month shift counts
// @Summary Set monthly targets
// @Tags Preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param periodId path string true "Period ID"
// @Param request body dto.SetMonthlyTargetsRequest true "Monthly Targets Request"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/preference/monthly-targets [put]
func (h *PreferenceHandler) SetMonthlyTargets(w http.ResponseWriter, r *http.Request) {
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

	var req dto.SetMonthlyTargetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	pref, err := h.preferenceUsecase.SetMonthlyTargets(r.Context(), physicianID, periodID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Monthly targets updated successfully", pref)
}

// GetMine returns the caller's preference for one period
// @Summary Get my preference
// @Tags Preferences
// @Security BearerAuth
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/preference [get]
func (h *PreferenceHandler) GetMine(w http.ResponseWriter, r *http.Request) {
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

	pref, err := h.preferenceUsecase.GetMyPreference(r.Context(), physicianID, periodID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Preference retrieved successfully", pref)
}

func (h *PreferenceHandler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPeriodNotFound:
		response.NotFound(w, "Period not found")
	case usecase.ErrDeadlinePassed:
		response.Conflict(w, "The preference deadline for this period has passed")
	case usecase.ErrInvalidTargetLevel:
		response.Error(w, http.StatusBadRequest, "Target level must be between 1 and 5", nil)
	case usecase.ErrInvalidMonthFormat:
		response.Error(w, http.StatusBadRequest, "Invalid month format, use YYYY-MM", nil)
	case usecase.ErrMonthOutsidePeriod:
		response.Error(w, http.StatusBadRequest, "Monthly target month is outside the period", nil)
	default:
		response.InternalServerError(w, "Failed to update preference")
	}
}
