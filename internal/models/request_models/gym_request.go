package request_models

type GymPlanRequest struct {
	Email string `json:"email" binding:"required,email"`
	Plan  string `json:"plan" binding:"required,oneof=monthly quarterly yearly"`
}
