package service

import (
	"context"
	"database/sql"

	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/config"
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/session"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/modules/auth/dto"
	"ella-rises-admin/modules/auth/entity"
	"ella-rises-admin/modules/auth/repository"
)

// InvalidCredentials is deliberately identical for a wrong username and a
// wrong password, so the response never reveals which part failed.
const InvalidCredentials = "Invalid username or password"

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

func NewAuthService(repo repository.AuthRepositoryInterface, cache cache.Cache) *AuthService {
	return &AuthService{repo: repo, cache: cache}
}

type AuthServiceInterface interface {
	Login(ctx context.Context, requestData *dto.LoginRequest) (*session.Session, *errors.AppError)
	Register(ctx context.Context, requestData *dto.RegisterRequest) *errors.AppError
	Logout(ctx context.Context, sid string) *errors.AppError
}

// Login verifies the credentials, stamps last_login and persists the session.
// The session write completes before this returns; the controller only issues
// its redirect afterwards.
func (service *AuthService) Login(ctx context.Context, requestData *dto.LoginRequest) (*session.Session, *errors.AppError) {
	loginKey := constants.RedisKeyLoginAttempt + requestData.Username

	blocked, err := service.cache.IsLoginBlocked(ctx, loginKey)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}
	if blocked {
		if errExpire := service.cache.Expire(ctx, loginKey, constants.BlockDuration); errExpire != nil {
			logger.Error("AuthService:Login:Expire", errExpire)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized,
			"Too many failed login attempts. Please try again later.", nil)
	}

	user, err := service.repo.GetUserByUsername(ctx, requestData.Username)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}
	if user == nil || user.Status != constants.StatusActive {
		return nil, service.failAttempt(ctx, loginKey)
	}

	allowPlaintext := false
	if cfg, ok := config.GetSafe(); ok {
		allowPlaintext = cfg.Auth.AllowPlaintext
	}
	if !utils.VerifyPassword(user.PasswordHash, requestData.Password, allowPlaintext) {
		return nil, service.failAttempt(ctx, loginKey)
	}

	if err := service.repo.StampLastLogin(ctx, user.ID); err != nil {
		logger.Error("AuthService:Login:StampLastLogin", err)
	}

	sid, err := session.NewID()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}
	s := &session.Session{
		ID:       sid,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		Email:    user.Email,
		FullName: utils.FullName(user.FirstName.String, user.LastName.String),
	}
	if err := service.cache.SaveSession(ctx, s); err != nil {
		logger.Error("AuthService:Login:SaveSession", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}

	if err := service.cache.ClearLoginAttempts(ctx, loginKey); err != nil {
		logger.Error("AuthService:Login:ClearLoginAttempts", err)
	}

	logger.Info("Login successful", "username", user.Username, "role", user.Role)
	return s, nil
}

func (service *AuthService) failAttempt(ctx context.Context, loginKey string) *errors.AppError {
	if err := service.cache.IncrementLoginAttempt(ctx, loginKey); err != nil {
		logger.Error("AuthService:Login:IncrementLoginAttempt", err)
	}
	return errors.NewAppError(errors.ErrUnauthorized, InvalidCredentials, nil)
}

// Register creates a common-user account. Uniqueness is pre-checked for the
// friendly message; the database constraint remains the arbiter for the race
// between check and insert.
func (service *AuthService) Register(ctx context.Context, requestData *dto.RegisterRequest) *errors.AppError {
	existing, err := service.repo.GetUserByUsername(ctx, requestData.Username)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}
	if existing != nil {
		return errors.NewAppError(errors.ErrAlreadyExists, "Username already exists", nil)
	}

	existing, err = service.repo.GetUserByEmail(ctx, requestData.Email)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}
	if existing != nil {
		return errors.NewAppError(errors.ErrAlreadyExists, "Email already exists", nil)
	}

	hashed, err := utils.HashPassword(requestData.Password)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "An error occurred. Please try again.", err)
	}

	user := &entity.User{
		Username:     requestData.Username,
		Email:        requestData.Email,
		PasswordHash: hashed,
		FirstName:    nullString(requestData.FirstName),
		LastName:     nullString(requestData.LastName),
		Role:         constants.RoleUser,
		Status:       constants.StatusActive,
	}
	if _, err := service.repo.CreateUser(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "Username already exists", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create account. Please try again.", err)
	}
	return nil
}

func (service *AuthService) Logout(ctx context.Context, sid string) *errors.AppError {
	if sid == "" {
		return nil
	}
	if err := service.cache.DeleteSession(ctx, sid); err != nil {
		logger.Error("AuthService:Logout:DeleteSession", err)
		return errors.NewAppError(errors.ErrInternalServer, "Logout failed", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
