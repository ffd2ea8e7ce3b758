package request_models

import "time"

type MatchCreateRequest struct {
	Sport     string    `json:"sport" binding:"required,oneof=cricket indoor"`
	TeamA     string    `json:"team_a" binding:"required"`
	TeamB     string    `json:"team_b" binding:"required"`
	Venue     string    `json:"venue" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Status    string    `json:"status" binding:"omitempty,oneof=upcoming live finished"`
	Details   *string   `json:"details"`
}

type MatchUpdateRequest struct {
	Status  *string `json:"status" binding:"omitempty,oneof=upcoming live finished"`
	ScoreA  *string `json:"score_a"`
	ScoreB  *string `json:"score_b"`
	Details *string `json:"details"`
}
