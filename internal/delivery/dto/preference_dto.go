package dto

type SetPreferenceRequest struct {
	TargetLevel *int `json:"target_level" validate:"omitempty,gte=1,lte=5"`
}

type MonthlyTargetEntry struct {
	Month       string `json:"month" validate:"required,len=7"`
	TargetTotal int    `json:"target_total" validate:"gte=0"`
}

type SetMonthlyTargetsRequest struct {
	Targets []MonthlyTargetEntry `json:"targets" validate:"required,min=1,dive"`
}

type PreferenceResponse struct {
	TargetLevel    *int                 `json:"target_level"`
	MonthlyTargets []MonthlyTargetEntry `json:"monthly_targets,omitempty"`
}
