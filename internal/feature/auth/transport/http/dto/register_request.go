// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

import "strings"

// RegisterReq represents the request body for the /register endpoint.
// Clients may send the display name as either "name" or "username".
type RegisterReq struct {
	Name     string `json:"name" binding:"required_without=Username"`
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,mailaddr"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone" binding:"omitempty,phone10"`
}

// DisplayName returns name, falling back to username.
func (r RegisterReq) DisplayName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(r.Username)
}
