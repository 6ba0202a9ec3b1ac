package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"member-admin/internal/auth"
	"member-admin/internal/entities"

	"github.com/hashicorp/go-multierror"
)

// CreateAccount provisions a pre-confirmed account with its role and profile
// fields. Once the account exists, any later failure deletes it again.
func (u *Usecase) CreateAccount(ctx context.Context, session entities.Session, in entities.CreateAccountInput) (string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := in.Validate(); err != nil {
		return "", err
	}
	role, _ := entities.ParseRole(in.Role)

	if err := u.requireAdmin(ctx, session, in.CallingUserID); err != nil {
		return "", err
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return "", downstream(err)
	}

	acc, err := u.repo.CreateAccount(ctx, entities.NewAccount{
		Email:        in.Email,
		PasswordHash: hash,
		Username:     entities.UsernameFromEmail(in.Email),
		Confirmed:    true,
	})
	if errors.Is(err, entities.ErrAccountExists) {
		u.log.Infow("account already registered", "email", in.Email)
		return "", err
	}
	if err != nil {
		u.log.Errorw("failed to create account", "error", err, "email", in.Email)
		return "", downstream(err)
	}

	if err := u.AssignRole(ctx, acc.ID, role); err != nil {
		return "", u.compensate(ctx, acc.ID, err)
	}

	fields := entities.NewProfileFields(in.Department, in.TeamRole)
	if err := u.repo.UpdateProfileByUserID(ctx, acc.ID, fields); err != nil {
		return "", u.compensate(ctx, acc.ID, fmt.Errorf("update profile: %w", err))
	}

	u.log.Infow("account provisioned", "user_id", acc.ID, "role", role, "created_by", in.CallingUserID)
	return acc.ID, nil
}

// DeleteAccount permanently removes the target account and its dependent rows.
func (u *Usecase) DeleteAccount(ctx context.Context, session entities.Session, in entities.DeleteAccountInput) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := in.Validate(); err != nil {
		return err
	}
	if err := u.requireAdmin(ctx, session, in.CallingUserID); err != nil {
		return err
	}

	if err := u.repo.DeleteAccount(ctx, in.UserID); err != nil {
		if errors.Is(err, entities.ErrAccountNotFound) {
			return err
		}
		return downstream(err)
	}

	u.log.Infow("account deleted", "user_id", in.UserID, "deleted_by", in.CallingUserID)
	return nil
}

// compensate deletes a partially provisioned account. The rollback runs on a
// context detached from the request so a timed-out request still cleans up.
func (u *Usecase) compensate(ctx context.Context, userID string, cause error) error {
	rbCtx, cancel := withTimeout(context.WithoutCancel(ctx), u.timeout)
	defer cancel()

	err := u.repo.DeleteAccount(rbCtx, userID)
	if err == nil {
		u.log.Warnw("account provisioning rolled back", "user_id", userID, "cause", cause)
		return downstream(cause)
	}

	u.log.Errorw("account rollback failed", "user_id", userID, "cause", cause, "error", err)
	merr := multierror.Append(cause, fmt.Errorf("rollback account %s: %w", userID, err))
	merr.ErrorFormat = joinErrors
	return downstream(merr)
}

func joinErrors(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}
