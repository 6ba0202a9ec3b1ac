package entities

import "fmt"

// MaxPasswordBytes is the longest password bcrypt can hash.
const MaxPasswordBytes = 72

// CreateAccountInput is the validated create-user request.
type CreateAccountInput struct {
	Email         string
	Password      string
	Role          string
	Department    string
	TeamRole      string
	CallingUserID string
}

// Validate checks required fields and the role value.
func (in CreateAccountInput) Validate() error {
	if in.Email == "" || in.Password == "" || in.CallingUserID == "" {
		return fmt.Errorf("%w: email, password, and calling user ID are required", ErrInvalidArgument)
	}
	if len(in.Password) > MaxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidArgument, MaxPasswordBytes)
	}
	if _, ok := ParseRole(in.Role); !ok {
		return fmt.Errorf("%w: role must be admin or member", ErrInvalidArgument)
	}
	return nil
}

// DeleteAccountInput is the validated delete-user request.
type DeleteAccountInput struct {
	UserID        string
	CallingUserID string
}

// Validate checks required fields.
func (in DeleteAccountInput) Validate() error {
	if in.UserID == "" || in.CallingUserID == "" {
		return fmt.Errorf("%w: user ID and calling user ID are required", ErrInvalidArgument)
	}
	return nil
}
