package request_models

type PaymentRequest struct {
	Email     string   `json:"email" binding:"required,email"`
	Amount    *float64 `json:"amount" binding:"required,gte=0"`
	Purpose   string   `json:"purpose" binding:"omitempty,oneof=gym_membership booking other"`
	Method    string   `json:"method" binding:"omitempty,oneof=upi card netbanking cash"`
	Reference string   `json:"reference"`
}
