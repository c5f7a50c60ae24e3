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

type RosterHandler struct {
	rosterUsecase usecase.RosterUsecase
	validator     *validator.CustomValidator
}

func NewRosterHandler(rosterUsecase usecase.RosterUsecase, validator *validator.CustomValidator) *RosterHandler {
	return &RosterHandler{
		rosterUsecase: rosterUsecase,
		validator:     validator,
	}
}

// Summary returns the engine's aggregated input view for one period
// @Summary Get roster summary
// @Tags Roster
// @Security BearerAuth
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/roster/summary [get]
func (h *RosterHandler) Summary(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	summary, err := h.rosterUsecase.GetSummary(r.Context(), periodID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Summary retrieved successfully", summary)
}

// Run executes the assignment engine, dry-run or commit
// @Summary Run the assignment engine
// @Tags Roster
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param periodId path string true "Period ID"
// @Param request body dto.RunRosterRequest true "Run Request"
// @Success 200 {object} response.Response
// @Failure 423 {object} response.Response
// @Router /periods/{periodId}/roster/run [post]
func (h *RosterHandler) Run(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	var req dto.RunRosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.rosterUsecase.Run(r.Context(), periodID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Roster run completed", result)
}

// Assignments returns the stored assignments for one period
// @Summary Get committed assignments
// @Tags Roster
// @Security BearerAuth
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/roster/assignments [get]
func (h *RosterHandler) Assignments(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	result, err := h.rosterUsecase.GetAssignments(r.Context(), periodID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", result)
}

// Notify emails every physician their committed assignments
// @Summary Notify physicians
// @Tags Roster
// @Security BearerAuth
// @Produce json
// @Param periodId path string true "Period ID"
// @Success 200 {object} response.Response
// @Router /periods/{periodId}/roster/notify [post]
func (h *RosterHandler) Notify(w http.ResponseWriter, r *http.Request) {
	periodID, err := uuid.Parse(mux.Vars(r)["periodId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid period ID", nil)
		return
	}

	result, err := h.rosterUsecase.Notify(r.Context(), periodID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Notifications dispatched", result)
}

func (h *RosterHandler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case usecase.ErrPeriodNotFound:
		response.NotFound(w, "Period not found")
	case usecase.ErrRosterLocked:
		response.Error(w, http.StatusLocked, "A roster commit is already in progress", nil)
	case usecase.ErrNoAssignments:
		response.Conflict(w, "No assignments exist for this period")
	default:
		response.InternalServerError(w, "Roster operation failed")
	}
}
