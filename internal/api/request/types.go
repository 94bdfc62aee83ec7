package request

// RegisterRequest is the request body for creating an account
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for signing in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SaveResultRequest is the request body for recording a finished game
type SaveResultRequest struct {
	GameSlug string `json:"gameSlug"`
	GameName string `json:"gameName,omitempty"`
	Score    int    `json:"score"`
	Result   string `json:"result"`
}
