package domain

import (
	"context"
	"errors"
	"fmt"

	"member-admin/internal/entities"
)

// AssignRole replaces every role of the account with exactly one.
func (u *Usecase) AssignRole(ctx context.Context, userID string, role entities.Role) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	if !role.Valid() {
		return fmt.Errorf("%w: role must be admin or member", entities.ErrInvalidArgument)
	}

	if err := u.repo.ReplaceRole(ctx, userID, role); err != nil {
		u.log.Errorw("failed to assign role", "error", err, "user_id", userID, "role", role)
		return downstream(err)
	}
	return nil
}

// Role returns the account's current role.
func (u *Usecase) Role(ctx context.Context, userID string) (entities.Role, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return "", fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetRole(ctx, userID)
}

// Profile returns the profile owned by the account.
func (u *Usecase) Profile(ctx context.Context, userID string) (*entities.Profile, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetProfile(ctx, userID)
}

// ListMembers returns all profiles joined with their role.
func (u *Usecase) ListMembers(ctx context.Context) ([]entities.Member, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListMembers(ctx)
}

// UpdateMember applies the edit form. The role table is only written when the
// role actually changes.
func (u *Usecase) UpdateMember(ctx context.Context, member entities.Member, edit entities.MemberEdit) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if member.ID == "" || member.UserID == "" {
		return fmt.Errorf("%w: member is required", entities.ErrInvalidArgument)
	}

	role := edit.Role
	if role == "" {
		role = member.CurrentRole()
	}
	if !role.Valid() {
		return fmt.Errorf("%w: role must be admin or member", entities.ErrInvalidArgument)
	}

	if role != member.CurrentRole() {
		if err := u.AssignRole(ctx, member.UserID, role); err != nil {
			return err
		}
	}

	err := u.repo.UpdateProfile(ctx, member.ID, entities.NewProfileFields(edit.Department, edit.TeamRole))
	if err != nil {
		if errors.Is(err, entities.ErrProfileNotFound) {
			return fmt.Errorf("%w: %w", entities.ErrInvalidArgument, err)
		}
		return downstream(err)
	}

	u.log.Infow("member updated", "profile_id", member.ID, "role", role)
	return nil
}
