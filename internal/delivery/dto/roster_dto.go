package dto

import (
	"time"

	"github.com/google/uuid"
)

type RunRosterRequest struct {
	DryRun *bool `json:"dry_run" validate:"required"`
}

type SlotSummaryResponse struct {
	SlotID     uuid.UUID   `json:"slot_id"`
	Date       string      `json:"date"`
	Kind       string      `json:"kind"`
	Candidates []uuid.UUID `json:"candidates"`
}

type PhysicianSummaryResponse struct {
	PhysicianID  uuid.UUID      `json:"physician_id"`
	Name         string         `json:"name"`
	TargetLevel  *int           `json:"target_level"`
	AvailCount   int            `json:"avail_count"`
	QuotaByMonth map[string]int `json:"quota_by_month"`
	TotalCap     int            `json:"total_cap"`
}

type RosterSummaryResponse struct {
	PeriodID   uuid.UUID                  `json:"period_id"`
	Slots      []SlotSummaryResponse      `json:"slots"`
	Physicians []PhysicianSummaryResponse `json:"physicians"`
}

type RosterAssignmentResponse struct {
	SlotID        uuid.UUID `json:"slot_id"`
	Date          string    `json:"date"`
	Kind          string    `json:"kind"`
	PhysicianID   uuid.UUID `json:"physician_id"`
	PhysicianName string    `json:"physician_name"`
	Score         int       `json:"score"`
}

type RosterHoleResponse struct {
	SlotID         uuid.UUID `json:"slot_id"`
	Date           string    `json:"date"`
	Kind           string    `json:"kind"`
	CandidateCount int       `json:"candidate_count"`
}

type RosterRunResponse struct {
	PeriodID      uuid.UUID                  `json:"period_id"`
	DryRun        bool                       `json:"dry_run"`
	AssignedCount int                        `json:"assigned_count"`
	HoleCount     int                        `json:"hole_count"`
	Assignments   []RosterAssignmentResponse `json:"assignments"`
	Holes         []RosterHoleResponse       `json:"holes"`
	CommittedAt   *time.Time                 `json:"committed_at,omitempty"`
}

type NotifyResponse struct {
	PeriodID uuid.UUID `json:"period_id"`
	Sent     int       `json:"sent"`
	Failed   int       `json:"failed"`
}
