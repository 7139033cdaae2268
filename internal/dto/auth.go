package dto

// LoginRequest defines the payload for password login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}

// GoogleCallbackRequest carries the ID token posted by the frontend after
// a Google sign-in.
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}
