package response_models

type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
