package dto

// LoginReq represents the request body for the /login endpoint.
// The email shape is not checked here so that a malformed address fails
// the same way as an unknown one.
type LoginReq struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required"`
}
