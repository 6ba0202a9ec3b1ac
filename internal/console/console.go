// Package console implements the admin member console flows: sign-in, the
// member roster, edits through the store and create/delete through the
// mutation service.
package console

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"member-admin/internal/entities"

	"go.uber.org/zap"
)

// ErrNotConfirmed is returned when a delete was not confirmed by the operator.
var ErrNotConfirmed = errors.New("deletion not confirmed")

// Store is the non-privileged part of the backend used by the console.
type Store interface {
	SignIn(ctx context.Context, email, password string) (*entities.Session, error)
	Role(ctx context.Context, userID string) (entities.Role, error)
	Profile(ctx context.Context, userID string) (*entities.Profile, error)
	ListMembers(ctx context.Context) ([]entities.Member, error)
	UpdateMember(ctx context.Context, member entities.Member, edit entities.MemberEdit) error
}

// Functions invokes the privileged operations.
type Functions interface {
	CreateUser(ctx context.Context, session entities.Session, in entities.CreateAccountInput) (string, error)
	DeleteUser(ctx context.Context, session entities.Session, in entities.DeleteAccountInput) error
}

// ConfirmFunc asks the operator to approve deleting a member.
type ConfirmFunc func(member entities.Member) bool

// NewMember is the add-member form.
type NewMember struct {
	Email      string
	Password   string
	Role       entities.Role
	Department string
	TeamRole   string
}

// Console holds the signed-in admin session and the last fetched roster.
type Console struct {
	log       *zap.SugaredLogger
	store     Store
	functions Functions

	mu      sync.Mutex
	session *entities.Session
	roster  Roster
}

// New constructs a console that is not signed in.
func New(log *zap.SugaredLogger, store Store, functions Functions) *Console {
	return &Console{
		log:       log.Named("console"),
		store:     store,
		functions: functions,
	}
}

// SignIn opens a session. Accounts without the admin role are turned away.
func (c *Console) SignIn(ctx context.Context, email, password string) (*entities.Session, error) {
	session, err := c.store.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	role, err := c.store.Role(ctx, session.UserID)
	if err != nil && !errors.Is(err, entities.ErrRoleNotFound) {
		return nil, err
	}
	if role != entities.RoleAdmin {
		c.log.Infow("non-admin sign-in refused", "user_id", session.UserID)
		return nil, entities.ErrForbidden
	}

	c.mu.Lock()
	c.session = session
	c.roster = Roster{}
	c.mu.Unlock()
	return session, nil
}

// Session returns the active session.
func (c *Console) Session() (entities.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session == nil {
		return entities.Session{}, fmt.Errorf("%w: no active session", entities.ErrUnauthenticated)
	}
	return *c.session, nil
}

// Me returns the signed-in account's profile.
func (c *Console) Me(ctx context.Context) (*entities.Profile, error) {
	s, err := c.Session()
	if err != nil {
		return nil, err
	}
	return c.store.Profile(ctx, s.UserID)
}

// Roster returns the last fetched roster.
func (c *Console) Roster() Roster {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roster
}

// Refresh fetches the member list.
func (c *Console) Refresh(ctx context.Context) (Roster, error) {
	if _, err := c.Session(); err != nil {
		return Roster{}, err
	}

	members, err := c.store.ListMembers(ctx)
	if err != nil {
		return c.Roster(), err
	}

	c.mu.Lock()
	c.roster = newRoster(members)
	r := c.roster
	c.mu.Unlock()
	return r, nil
}

// AddMember provisions an account through the mutation service.
func (c *Console) AddMember(ctx context.Context, form NewMember) (string, error) {
	s, err := c.Session()
	if err != nil {
		return "", err
	}
	if form.Email == "" || form.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", entities.ErrInvalidArgument)
	}

	userID, err := c.functions.CreateUser(ctx, s, entities.CreateAccountInput{
		Email:         form.Email,
		Password:      form.Password,
		Role:          string(form.Role),
		Department:    form.Department,
		TeamRole:      form.TeamRole,
		CallingUserID: s.UserID,
	})
	if err != nil {
		return "", err
	}

	c.log.Infow("member added", "user_id", userID, "email", form.Email)
	c.refreshQuietly(ctx)
	return userID, nil
}

// EditMember updates the role and profile fields of a roster member.
func (c *Console) EditMember(ctx context.Context, userID string, edit entities.MemberEdit) (entities.Member, error) {
	member, err := c.lookup(ctx, userID)
	if err != nil {
		return entities.Member{}, err
	}

	if err := c.store.UpdateMember(ctx, member, edit); err != nil {
		return entities.Member{}, err
	}

	c.refreshQuietly(ctx)
	return member, nil
}

// RemoveMember deletes an account through the mutation service once confirm
// approves it.
func (c *Console) RemoveMember(ctx context.Context, userID string, confirm ConfirmFunc) (entities.Member, error) {
	s, err := c.Session()
	if err != nil {
		return entities.Member{}, err
	}
	member, err := c.lookup(ctx, userID)
	if err != nil {
		return entities.Member{}, err
	}
	if confirm == nil || !confirm(member) {
		return member, ErrNotConfirmed
	}

	err = c.functions.DeleteUser(ctx, s, entities.DeleteAccountInput{UserID: member.UserID, CallingUserID: s.UserID})
	if err != nil {
		return member, err
	}

	c.log.Infow("member removed", "user_id", member.UserID)
	c.refreshQuietly(ctx)
	return member, nil
}

func (c *Console) lookup(ctx context.Context, userID string) (entities.Member, error) {
	roster := c.Roster()
	if roster.State == RosterLoading {
		var err error
		if roster, err = c.Refresh(ctx); err != nil {
			return entities.Member{}, err
		}
	}

	member, ok := roster.Find(userID)
	if !ok {
		return entities.Member{}, fmt.Errorf("%w: %s", entities.ErrAccountNotFound, userID)
	}
	return member, nil
}

func (c *Console) refreshQuietly(ctx context.Context) {
	if _, err := c.Refresh(ctx); err != nil {
		c.log.Warnw("failed to refresh roster", "error", err)
	}
}
