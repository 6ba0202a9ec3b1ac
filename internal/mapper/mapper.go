// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"strings"

	"member-admin/internal/entities"
	"member-admin/internal/transport/http/dto"
)

// FromCreateUserRequest builds the create-account input from the request body.
func FromCreateUserRequest(src dto.CreateUserRequest) entities.CreateAccountInput {
	return entities.CreateAccountInput{
		Email:         strings.TrimSpace(src.Email),
		Password:      src.Password,
		Role:          strings.TrimSpace(src.Role),
		Department:    strings.TrimSpace(src.Department),
		TeamRole:      strings.TrimSpace(src.TeamRole),
		CallingUserID: strings.TrimSpace(src.CallingUserID),
	}
}

// ToCreateUserRequest is the console side of FromCreateUserRequest.
func ToCreateUserRequest(in entities.CreateAccountInput) dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:         in.Email,
		Password:      in.Password,
		Role:          in.Role,
		Department:    in.Department,
		TeamRole:      in.TeamRole,
		CallingUserID: in.CallingUserID,
	}
}

// FromDeleteUserRequest builds the delete-account input from the request body.
func FromDeleteUserRequest(src dto.DeleteUserRequest) entities.DeleteAccountInput {
	return entities.DeleteAccountInput{
		UserID:        strings.TrimSpace(src.UserID),
		CallingUserID: strings.TrimSpace(src.CallingUserID),
	}
}

// ToDeleteUserRequest is the console side of FromDeleteUserRequest.
func ToDeleteUserRequest(in entities.DeleteAccountInput) dto.DeleteUserRequest {
	return dto.DeleteUserRequest{UserID: in.UserID, CallingUserID: in.CallingUserID}
}
