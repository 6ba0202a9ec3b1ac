package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"member-admin/config"
	"member-admin/internal/auth"
	"member-admin/internal/entities"
	"member-admin/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) OnStart(_ context.Context) error { return nil }
func (m *repoMock) OnStop(_ context.Context) error  { return nil }

func (m *repoMock) CreateAccount(ctx context.Context, account entities.NewAccount) (*entities.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *repoMock) DeleteAccount(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *repoMock) GetAccount(ctx context.Context, userID string) (*entities.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Account), args.Error(1)
}

func (m *repoMock) GetCredentials(ctx context.Context, email string) (*entities.Credentials, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Credentials), args.Error(1)
}

func (m *repoMock) GetRole(ctx context.Context, userID string) (entities.Role, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(entities.Role), args.Error(1)
}

func (m *repoMock) ReplaceRole(ctx context.Context, userID string, role entities.Role) error {
	return m.Called(ctx, userID, role).Error(0)
}

func (m *repoMock) GetProfile(ctx context.Context, userID string) (*entities.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Profile), args.Error(1)
}

func (m *repoMock) UpdateProfile(ctx context.Context, profileID string, fields entities.ProfileFields) error {
	return m.Called(ctx, profileID, fields).Error(0)
}

func (m *repoMock) UpdateProfileByUserID(ctx context.Context, userID string, fields entities.ProfileFields) error {
	return m.Called(ctx, userID, fields).Error(0)
}

func (m *repoMock) ListMembers(ctx context.Context) ([]entities.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Member), args.Error(1)
}

func newUsecase(repo *repoMock) *Usecase {
	tokens := auth.NewTokens(config.AuthConfig{
		JWTSecret: "0123456789abcdef0123456789abcdef",
		Issuer:    "member-admin",
		TokenTTL:  time.Hour,
	})
	return New(zap.NewNop().Sugar(), context.Background(), repo, tokens, time.Second)
}

var adminSession = entities.Session{UserID: "admin-1", Email: "root@b.com"}

func validCreate() entities.CreateAccountInput {
	return entities.CreateAccountInput{Email: "a@b.com", Password: "x", CallingUserID: adminSession.UserID}
}

func TestUsecase_CreateAccountDefaultsToMember(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("CreateAccount", mock.Anything, mock.MatchedBy(func(a entities.NewAccount) bool {
		return a.Email == "a@b.com" && a.Username == "a" && a.Confirmed && auth.CheckPassword(a.PasswordHash, "x")
	})).Return(&entities.Account{ID: "new-1", Email: "a@b.com"}, nil)
	repo.On("ReplaceRole", mock.Anything, "new-1", entities.RoleMember).Return(nil)
	repo.On("UpdateProfileByUserID", mock.Anything, "new-1", entities.ProfileFields{}).Return(nil)

	id, err := uc.CreateAccount(context.Background(), adminSession, validCreate())
	require.NoError(t, err)
	require.Equal(t, "new-1", id)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountProfileFields(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := validCreate()
	in.Role = "admin"
	in.Department = "security"

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("CreateAccount", mock.Anything, mock.Anything).Return(&entities.Account{ID: "new-1"}, nil)
	repo.On("ReplaceRole", mock.Anything, "new-1", entities.RoleAdmin).Return(nil)
	repo.On("UpdateProfileByUserID", mock.Anything, "new-1", mock.MatchedBy(func(f entities.ProfileFields) bool {
		return f.Department != nil && *f.Department == "security" && f.TeamRole == nil
	})).Return(nil)

	_, err := uc.CreateAccount(context.Background(), adminSession, in)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_CreateAccountValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := validCreate()
	in.Password = ""

	_, err := uc.CreateAccount(context.Background(), adminSession, in)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountRejectsOverlongPassword(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := validCreate()
	in.Password = strings.Repeat("x", entities.MaxPasswordBytes+1)

	_, err := uc.CreateAccount(context.Background(), adminSession, in)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	require.NotErrorIs(t, err, entities.ErrDownstream)
	repo.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountRequiresAdmin(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	session := entities.Session{UserID: "member-1"}
	in := validCreate()
	in.CallingUserID = "member-1"

	repo.On("GetRole", mock.Anything, "member-1").Return(entities.RoleMember, nil)

	_, err := uc.CreateAccount(context.Background(), session, in)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountRoleless(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	session := entities.Session{UserID: "ghost"}
	in := validCreate()
	in.CallingUserID = "ghost"

	repo.On("GetRole", mock.Anything, "ghost").Return(entities.Role(""), entities.ErrRoleNotFound)

	_, err := uc.CreateAccount(context.Background(), session, in)
	require.ErrorIs(t, err, entities.ErrForbidden)
}

func TestUsecase_CreateAccountCallerMustMatchSession(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	in := validCreate()
	in.CallingUserID = "someone-else"

	_, err := uc.CreateAccount(context.Background(), adminSession, in)
	require.ErrorIs(t, err, entities.ErrForbidden)
	repo.AssertNotCalled(t, "GetRole", mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountRollsBackOnRoleFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("CreateAccount", mock.Anything, mock.Anything).Return(&entities.Account{ID: "new-1"}, nil)
	repo.On("ReplaceRole", mock.Anything, "new-1", entities.RoleMember).Return(errors.New("connection reset"))
	repo.On("DeleteAccount", mock.Anything, "new-1").Return(nil)

	_, err := uc.CreateAccount(context.Background(), adminSession, validCreate())
	require.ErrorIs(t, err, entities.ErrDownstream)
	require.Contains(t, err.Error(), "connection reset")
	repo.AssertCalled(t, "DeleteAccount", mock.Anything, "new-1")
	repo.AssertNotCalled(t, "UpdateProfileByUserID", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_CreateAccountReportsFailedRollback(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("CreateAccount", mock.Anything, mock.Anything).Return(&entities.Account{ID: "new-1"}, nil)
	repo.On("ReplaceRole", mock.Anything, "new-1", entities.RoleMember).Return(nil)
	repo.On("UpdateProfileByUserID", mock.Anything, "new-1", mock.Anything).Return(entities.ErrProfileNotFound)
	repo.On("DeleteAccount", mock.Anything, "new-1").Return(errors.New("db down"))

	_, err := uc.CreateAccount(context.Background(), adminSession, validCreate())
	require.ErrorIs(t, err, entities.ErrDownstream)
	require.ErrorIs(t, err, entities.ErrProfileNotFound)
	require.Contains(t, err.Error(), "rollback account new-1: db down")
}

func TestUsecase_CreateAccountProviderRejection(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("CreateAccount", mock.Anything, mock.Anything).Return(nil, entities.ErrAccountExists)

	_, err := uc.CreateAccount(context.Background(), adminSession, validCreate())
	require.ErrorIs(t, err, entities.ErrAccountExists)
	require.EqualError(t, err, "a user with this email address has already been registered")
	repo.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestUsecase_DeleteAccount(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("DeleteAccount", mock.Anything, "u2").Return(nil)

	err := uc.DeleteAccount(context.Background(), adminSession, entities.DeleteAccountInput{UserID: "u2", CallingUserID: "admin-1"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_DeleteUnknownAccount(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	repo.On("GetRole", mock.Anything, "admin-1").Return(entities.RoleAdmin, nil)
	repo.On("DeleteAccount", mock.Anything, "missing").Return(entities.ErrAccountNotFound)

	err := uc.DeleteAccount(context.Background(), adminSession, entities.DeleteAccountInput{UserID: "missing", CallingUserID: "admin-1"})
	require.ErrorIs(t, err, entities.ErrAccountNotFound)
}

func TestUsecase_DeleteAccountValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	err := uc.DeleteAccount(context.Background(), adminSession, entities.DeleteAccountInput{CallingUserID: "admin-1"})
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "DeleteAccount", mock.Anything, mock.Anything)
}

func TestUsecase_AssignRoleValidation(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	require.ErrorIs(t, uc.AssignRole(context.Background(), "", entities.RoleAdmin), entities.ErrInvalidArgument)
	require.ErrorIs(t, uc.AssignRole(context.Background(), "u1", entities.Role("owner")), entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "ReplaceRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateMemberWithoutRoleChange(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	member := entities.Member{Profile: entities.Profile{ID: "p1", UserID: "u1"}}
	repo.On("UpdateProfile", mock.Anything, "p1", mock.MatchedBy(func(f entities.ProfileFields) bool {
		return f.Department != nil && *f.Department == "ops"
	})).Return(nil)

	err := uc.UpdateMember(context.Background(), member, entities.MemberEdit{Role: entities.RoleMember, Department: "ops"})
	require.NoError(t, err)
	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "ReplaceRole", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_UpdateMemberRoleChange(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	member := entities.Member{Profile: entities.Profile{ID: "p1", UserID: "u1"}}
	repo.On("ReplaceRole", mock.Anything, "u1", entities.RoleAdmin).Return(nil).Once()
	repo.On("UpdateProfile", mock.Anything, "p1", entities.ProfileFields{}).Return(nil).Once()

	err := uc.UpdateMember(context.Background(), member, entities.MemberEdit{Role: entities.RoleAdmin})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUsecase_UpdateMemberStopsOnRoleFailure(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	member := entities.Member{Profile: entities.Profile{ID: "p1", UserID: "u1"}}
	repo.On("ReplaceRole", mock.Anything, "u1", entities.RoleAdmin).Return(errors.New("boom"))

	err := uc.UpdateMember(context.Background(), member, entities.MemberEdit{Role: entities.RoleAdmin})
	require.ErrorIs(t, err, entities.ErrDownstream)
	repo.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUsecase_SignInAndResolve(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	hash, err := auth.HashPassword("secret")
	require.NoError(t, err)
	repo.On("GetCredentials", mock.Anything, "root@b.com").
		Return(&entities.Credentials{ID: "admin-1", Email: "root@b.com", PasswordHash: hash}, nil)
	repo.On("GetAccount", mock.Anything, "admin-1").
		Return(&entities.Account{ID: "admin-1", Email: "root@b.com"}, nil)

	session, err := uc.SignIn(context.Background(), " root@b.com ", "secret")
	require.NoError(t, err)
	require.Equal(t, "admin-1", session.UserID)
	require.NotEmpty(t, session.AccessToken)

	resolved, err := uc.ResolveSession(context.Background(), session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "admin-1", resolved.UserID)
	require.Equal(t, session.AccessToken, resolved.AccessToken)

	_, err = uc.SignIn(context.Background(), "root@b.com", "wrong")
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
}

func TestUsecase_ResolveSessionRejects(t *testing.T) {
	repo := &repoMock{}
	uc := newUsecase(repo)

	_, err := uc.ResolveSession(context.Background(), "garbage")
	require.ErrorIs(t, err, entities.ErrUnauthenticated)

	token, _, err := uc.tokens.Issue("gone", "gone@b.com")
	require.NoError(t, err)
	repo.On("GetAccount", mock.Anything, "gone").Return(nil, entities.ErrAccountNotFound)

	_, err = uc.ResolveSession(context.Background(), token)
	require.ErrorIs(t, err, entities.ErrUnauthenticated)
}
