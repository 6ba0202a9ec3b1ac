package usecase

import (
	"context"

	"member-admin/internal/entities"
)

// SessionUsecaseInterface issues and re-validates caller sessions.
type SessionUsecaseInterface interface {
	SignIn(ctx context.Context, email, password string) (*entities.Session, error)
	ResolveSession(ctx context.Context, token string) (*entities.Session, error)
}

// AccountUsecaseInterface abstracts the privileged create/delete operations.
type AccountUsecaseInterface interface {
	CreateAccount(ctx context.Context, session entities.Session, in entities.CreateAccountInput) (string, error)
	DeleteAccount(ctx context.Context, session entities.Session, in entities.DeleteAccountInput) error
}

// MemberUsecaseInterface abstracts the non-privileged list/edit flow.
type MemberUsecaseInterface interface {
	AssignRole(ctx context.Context, userID string, role entities.Role) error
	Role(ctx context.Context, userID string) (entities.Role, error)
	Profile(ctx context.Context, userID string) (*entities.Profile, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
	UpdateMember(ctx context.Context, member entities.Member, edit entities.MemberEdit) error
}
