package service

import (
	"context"
	"testing"
	"time"

	"ella-rises-admin/core/constants"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/session"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/modules/auth/dto"
	"ella-rises-admin/modules/auth/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAuthRepo struct {
	mock.Mock
}

func (m *mockAuthRepo) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entity.User)
	return user, args.Error(1)
}

func (m *mockAuthRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*entity.User)
	return created, args.Error(1)
}

func (m *mockAuthRepo) StampLastLogin(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) SaveSession(ctx context.Context, s *session.Session) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockCache) GetSession(ctx context.Context, sid string) (*session.Session, error) {
	args := m.Called(ctx, sid)
	s, _ := args.Get(0).(*session.Session)
	return s, args.Error(1)
}

func (m *mockCache) DeleteSession(ctx context.Context, sid string) error {
	return m.Called(ctx, sid).Error(0)
}

func (m *mockCache) RevokeUserSessions(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *mockCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) ClearLoginAttempts(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return m.Called(ctx, key, ttl).Error(0)
}

func activeUser(t *testing.T, password string) *entity.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	u := &entity.User{
		Username:     "aisha",
		Email:        "aisha@example.org",
		PasswordHash: hash,
		Role:         constants.RoleUser,
		Status:       constants.StatusActive,
	}
	u.ID = 7
	return u
}

func TestLoginSuccess(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	user := activeUser(t, "secret1")
	key := constants.RedisKeyLoginAttempt + "aisha"

	store.On("IsLoginBlocked", mock.Anything, key).Return(false, nil)
	repo.On("GetUserByUsername", mock.Anything, "aisha").Return(user, nil)
	repo.On("StampLastLogin", mock.Anything, int64(7)).Return(nil)
	store.On("SaveSession", mock.Anything, mock.AnythingOfType("*session.Session")).Return(nil)
	store.On("ClearLoginAttempts", mock.Anything, key).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "aisha", Password: "secret1"})

	require.Nil(t, appErr)
	require.NotNil(t, s)
	assert.Equal(t, int64(7), s.UserID)
	assert.Equal(t, "aisha", s.Username)
	assert.NotEmpty(t, s.ID)
	store.AssertCalled(t, "SaveSession", mock.Anything, mock.AnythingOfType("*session.Session"))
}

func TestLoginWrongPasswordIsGeneric(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	key := constants.RedisKeyLoginAttempt + "aisha"
	store.On("IsLoginBlocked", mock.Anything, key).Return(false, nil)
	repo.On("GetUserByUsername", mock.Anything, "aisha").Return(activeUser(t, "secret1"), nil)
	store.On("IncrementLoginAttempt", mock.Anything, key).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "aisha", Password: "wrong"})

	assert.Nil(t, s)
	require.NotNil(t, appErr)
	assert.Equal(t, InvalidCredentials, appErr.Message)
}

// A nonexistent username must read identically to a wrong password.
func TestLoginUnknownUserIsGeneric(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	key := constants.RedisKeyLoginAttempt + "ghost"
	store.On("IsLoginBlocked", mock.Anything, key).Return(false, nil)
	repo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, nil)
	store.On("IncrementLoginAttempt", mock.Anything, key).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "ghost", Password: "secret1"})

	assert.Nil(t, s)
	require.NotNil(t, appErr)
	assert.Equal(t, InvalidCredentials, appErr.Message)
}

func TestLoginInactiveAccountIsGeneric(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	user := activeUser(t, "secret1")
	user.Status = constants.StatusInactive

	key := constants.RedisKeyLoginAttempt + "aisha"
	store.On("IsLoginBlocked", mock.Anything, key).Return(false, nil)
	repo.On("GetUserByUsername", mock.Anything, "aisha").Return(user, nil)
	store.On("IncrementLoginAttempt", mock.Anything, key).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "aisha", Password: "secret1"})

	assert.Nil(t, s)
	require.NotNil(t, appErr)
	assert.Equal(t, InvalidCredentials, appErr.Message)
}

// With the legacy flag off (the default in tests, since no config is
// loaded), a plain-text stored credential never matches.
func TestLoginPlaintextStoredCredentialRejected(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	user := activeUser(t, "secret1")
	user.PasswordHash = "secret1"

	key := constants.RedisKeyLoginAttempt + "aisha"
	store.On("IsLoginBlocked", mock.Anything, key).Return(false, nil)
	repo.On("GetUserByUsername", mock.Anything, "aisha").Return(user, nil)
	store.On("IncrementLoginAttempt", mock.Anything, key).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "aisha", Password: "secret1"})

	assert.Nil(t, s)
	require.NotNil(t, appErr)
	assert.Equal(t, InvalidCredentials, appErr.Message)
}

func TestLoginBlockedAfterTooManyAttempts(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	key := constants.RedisKeyLoginAttempt + "aisha"
	store.On("IsLoginBlocked", mock.Anything, key).Return(true, nil)
	store.On("Expire", mock.Anything, key, constants.BlockDuration).Return(nil)

	s, appErr := svc.Login(context.Background(), &dto.LoginRequest{Username: "aisha", Password: "secret1"})

	assert.Nil(t, s)
	require.NotNil(t, appErr)
	assert.Equal(t, "Too many failed login attempts. Please try again later.", appErr.Message)
	repo.AssertNotCalled(t, "GetUserByUsername", mock.Anything, mock.Anything)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	repo.On("GetUserByUsername", mock.Anything, "aisha").Return(activeUser(t, "secret1"), nil)

	appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "aisha", Email: "new@example.org", Password: "secret1",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrAlreadyExists, appErr.Code)
	assert.Equal(t, "Username already exists", appErr.Message)
}

func TestRegisterHashesThePassword(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	repo.On("GetUserByUsername", mock.Anything, "newbie").Return(nil, nil)
	repo.On("GetUserByEmail", mock.Anything, "new@example.org").Return(nil, nil)
	repo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
		return u.Username == "newbie" &&
			u.Role == constants.RoleUser &&
			u.Status == constants.StatusActive &&
			utils.IsBcryptHash(u.PasswordHash)
	})).Return(&entity.User{}, nil)

	appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Username: "newbie", Email: "new@example.org", Password: "secret1",
	})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func TestLogoutDeletesTheSession(t *testing.T) {
	repo := new(mockAuthRepo)
	store := new(mockCache)
	svc := NewAuthService(repo, store)

	store.On("DeleteSession", mock.Anything, "sid-123").Return(nil)

	assert.Nil(t, svc.Logout(context.Background(), "sid-123"))
	store.AssertExpectations(t)
}

func TestLogoutWithoutSessionIsNoOp(t *testing.T) {
	svc := NewAuthService(new(mockAuthRepo), new(mockCache))

	assert.Nil(t, svc.Logout(context.Background(), ""))
}
