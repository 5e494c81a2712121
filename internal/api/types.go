// Package api holds the JSON envelopes shared by every HTTP handler.
package api

// ErrorResponse is the body of every non-2xx response. Message repeats
// Error for clients that read "message".
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewError builds an ErrorResponse carrying msg in both fields.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg, Message: msg}
}

// RegisterResponse confirms a registration.
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// SuccessResponse acknowledges an operation without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	OK bool `json:"ok"`
}
