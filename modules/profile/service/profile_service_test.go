package service

import (
	"context"
	"testing"
	"time"

	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/session"
	profiledto "ella-rises-admin/modules/profile/dto"
	"ella-rises-admin/modules/user/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockProfileRepo struct {
	mock.Mock
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockProfileRepo) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	args := m.Called(ctx, username, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockProfileRepo) UpdateAccount(ctx context.Context, id int64, username, passwordHash string) error {
	return m.Called(ctx, id, username, passwordHash).Error(0)
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

func ownSession() *session.Session {
	return &session.Session{ID: "sid-1", UserID: 7, Username: "aisha", Role: "user"}
}

// The password hash never shows up in the serialized profile.
func TestGetOmitsPasswordHash(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, new(mockCache))

	u := &entity.User{Username: "aisha", Email: "aisha@example.org", PasswordHash: "$2a$..", Role: "user", Status: "active"}
	u.ID = 7
	repo.On("GetByID", mock.Anything, int64(7)).Return(u, nil)

	profile, appErr := svc.Get(context.Background(), 7)

	require.Nil(t, appErr)
	assert.Equal(t, "aisha", profile.Username)
	assert.Equal(t, "aisha@example.org", profile.Email)
}

func TestUpdatePasswordMismatch(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, new(mockCache))

	repo.On("UsernameTaken", mock.Anything, "aisha", int64(7)).Return(false, nil)

	appErr := svc.Update(context.Background(), ownSession(), &profiledto.UpdateProfileRequest{
		Username: "aisha", Password: "secret1", ConfirmPassword: "secret2",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "Passwords do not match", appErr.Message)
	repo.AssertNotCalled(t, "UpdateAccount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateShortPassword(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, new(mockCache))

	repo.On("UsernameTaken", mock.Anything, "aisha", int64(7)).Return(false, nil)

	appErr := svc.Update(context.Background(), ownSession(), &profiledto.UpdateProfileRequest{
		Username: "aisha", Password: "abc", ConfirmPassword: "abc",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
}

func TestUpdateUsernameTaken(t *testing.T) {
	repo := new(mockProfileRepo)
	svc := NewProfileService(repo, new(mockCache))

	repo.On("UsernameTaken", mock.Anything, "taken", int64(7)).Return(true, nil)

	appErr := svc.Update(context.Background(), ownSession(), &profiledto.UpdateProfileRequest{
		Username: "taken",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrAlreadyExists, appErr.Code)
}

// After a username change the stored session is rewritten so the new name
// appears without a fresh login.
func TestUpdateRefreshesTheSession(t *testing.T) {
	repo := new(mockProfileRepo)
	store := new(mockCache)
	svc := NewProfileService(repo, store)

	s := ownSession()
	repo.On("UsernameTaken", mock.Anything, "aisha2", int64(7)).Return(false, nil)
	repo.On("UpdateAccount", mock.Anything, int64(7), "aisha2", "").Return(nil)
	store.On("SaveSession", mock.Anything, mock.MatchedBy(func(saved *session.Session) bool {
		return saved.Username == "aisha2" && saved.ID == "sid-1"
	})).Return(nil)

	appErr := svc.Update(context.Background(), s, &profiledto.UpdateProfileRequest{Username: "aisha2"})

	assert.Nil(t, appErr)
	assert.Equal(t, "aisha2", s.Username)
	store.AssertExpectations(t)
}
