package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"member-admin/internal/auth"
	"member-admin/internal/entities"
)

// SignIn checks email and password and issues a session.
func (u *Usecase) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	creds, err := u.repo.GetCredentials(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrAccountNotFound) {
		return nil, downstream(err)
	}
	if err != nil || !auth.CheckPassword(creds.PasswordHash, password) {
		u.log.Infow("sign-in rejected", "email", email)
		return nil, fmt.Errorf("%w: invalid login credentials", entities.ErrUnauthenticated)
	}

	token, expiresAt, err := u.tokens.Issue(creds.ID, creds.Email)
	if err != nil {
		return nil, downstream(err)
	}

	return &entities.Session{
		UserID:      creds.ID,
		Email:       creds.Email,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// ResolveSession verifies a bearer token and checks that its account still exists.
func (u *Usecase) ResolveSession(ctx context.Context, token string) (*entities.Session, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	claims, err := u.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrUnauthenticated, err)
	}

	acc, err := u.repo.GetAccount(ctx, claims.Subject)
	if errors.Is(err, entities.ErrAccountNotFound) {
		return nil, fmt.Errorf("%w: session account no longer exists", entities.ErrUnauthenticated)
	}
	if err != nil {
		return nil, downstream(err)
	}

	s := &entities.Session{UserID: acc.ID, Email: acc.Email, AccessToken: token}
	if claims.ExpiresAt != nil {
		s.ExpiresAt = claims.ExpiresAt.Time
	}
	return s, nil
}

// requireAdmin is the access-control gate of the privileged operations. The
// caller named in the request must be the session owner and hold the admin role.
func (u *Usecase) requireAdmin(ctx context.Context, session entities.Session, callingUserID string) error {
	if session.UserID == "" {
		return fmt.Errorf("%w: no active session", entities.ErrUnauthenticated)
	}
	if session.UserID != callingUserID {
		u.log.Warnw("calling user does not match session", "session_user", session.UserID, "calling_user", callingUserID)
		return fmt.Errorf("%w: calling user does not match session", entities.ErrForbidden)
	}

	role, err := u.repo.GetRole(ctx, callingUserID)
	if errors.Is(err, entities.ErrRoleNotFound) {
		return entities.ErrForbidden
	}
	if err != nil {
		return downstream(err)
	}
	if role != entities.RoleAdmin {
		u.log.Warnw("non-admin attempted privileged operation", "user_id", callingUserID, "role", role)
		return entities.ErrForbidden
	}
	return nil
}
