package response_models

type AuthResponse struct {
	ID    string `json:"id,omitempty"`
	Token string `json:"token"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
