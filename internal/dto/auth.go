package dto

// SignupRequest is the request body for user registration.
type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginRequest is the request body for credential login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest is the request body for changing a password.
type UpdatePasswordRequest struct {
	OriginalPassword string `json:"originalPassword" binding:"required"`
	NewPassword      string `json:"newPassword" binding:"required,min=6,max=72"`
}

// LoginResponse carries the access token; the refresh token travels in an
// http-only cookie, never in the body.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// OkResponse is the generic success body for operations with no payload.
type OkResponse struct {
	OK bool `json:"ok"`
}
