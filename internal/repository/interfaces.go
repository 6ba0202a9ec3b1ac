// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"member-admin/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// AccountInterface exposes the auth-provider side of the store.
type AccountInterface interface {
	CreateAccount(ctx context.Context, account entities.NewAccount) (*entities.Account, error)
	DeleteAccount(ctx context.Context, userID string) error
	GetAccount(ctx context.Context, userID string) (*entities.Account, error)
	GetCredentials(ctx context.Context, email string) (*entities.Credentials, error)
}

// RoleInterface exposes role assignment operations.
type RoleInterface interface {
	GetRole(ctx context.Context, userID string) (entities.Role, error)
	ReplaceRole(ctx context.Context, userID string, role entities.Role) error
}

// ProfileInterface exposes profile reads and admin-editable writes.
type ProfileInterface interface {
	GetProfile(ctx context.Context, userID string) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, profileID string, fields entities.ProfileFields) error
	UpdateProfileByUserID(ctx context.Context, userID string, fields entities.ProfileFields) error
	ListMembers(ctx context.Context) ([]entities.Member, error)
}
