// Package dto holds the JSON bodies of the function endpoints.
package dto

// CreateUserRequest is the body of POST /create-user.
type CreateUserRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	Role          string `json:"role,omitempty"`
	Department    string `json:"department,omitempty"`
	TeamRole      string `json:"team_role,omitempty"`
	CallingUserID string `json:"callingUserId"`
}

// CreateUserResponse is returned after a successful provisioning.
type CreateUserResponse struct {
	Success bool   `json:"success"`
	UserID  string `json:"userId"`
}

// DeleteUserRequest is the body of POST /delete-user.
type DeleteUserRequest struct {
	UserID        string `json:"userId"`
	CallingUserID string `json:"callingUserId"`
}

// SuccessResponse acknowledges an operation without payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the body of every failed call.
type ErrorResponse struct {
	Error string `json:"error"`
}
