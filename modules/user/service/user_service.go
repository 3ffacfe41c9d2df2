package service

import (
	"context"
	"database/sql"

	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	userdto "ella-rises-admin/modules/user/dto"
	"ella-rises-admin/modules/user/entity"
	"ella-rises-admin/modules/user/mapper"
	"ella-rises-admin/modules/user/repository"
)

type UserService struct {
	repo  repository.UserRepositoryInterface
	cache cache.Cache
}

func NewUserService(repo repository.UserRepositoryInterface, cache cache.Cache) *UserService {
	return &UserService{repo: repo, cache: cache}
}

type UserServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams, role string) (*userdto.UserList, *errors.AppError)
	GetByID(ctx context.Context, id int64) (*userdto.UserResponse, *errors.AppError)
	Create(ctx context.Context, requestData *userdto.CreateUserRequest) *errors.AppError
	Update(ctx context.Context, id int64, requestData *userdto.UpdateUserRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
}

// List filters by a recognized role token; anything else means no role
// predicate.
func (service *UserService) List(ctx context.Context, queryParams params.QueryParams, role string) (*userdto.UserList, *errors.AppError) {
	if !validRole(role) {
		role = ""
	}

	page, err := service.repo.List(ctx, queryParams, role)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load users", err)
	}
	return mapper.ToUserList(page, queryParams.Search, queryParams.DateSort, role), nil
}

func (service *UserService) GetByID(ctx context.Context, id int64) (*userdto.UserResponse, *errors.AppError) {
	u, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load user details", err)
	}
	if u == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}
	return mapper.ToUserResponse(u), nil
}

func (service *UserService) Create(ctx context.Context, requestData *userdto.CreateUserRequest) *errors.AppError {
	taken, err := service.repo.UsernameTaken(ctx, requestData.Username, 0)
	if err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create user", err)
	}
	if taken {
		return errors.NewAppError(errors.ErrAlreadyExists, "That username is already taken", nil)
	}

	hash, err := utils.HashPassword(requestData.Password)
	if err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create user", err)
	}

	role := requestData.Role
	if !validRole(role) {
		role = constants.RoleUser
	}

	u := &entity.User{
		Username:     requestData.Username,
		Email:        requestData.Email,
		PasswordHash: hash,
		FirstName:    nullString(requestData.FirstName),
		LastName:     nullString(requestData.LastName),
		Role:         role,
		Status:       constants.StatusActive,
	}
	if _, err := service.repo.Create(ctx, u); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "That username or email is already taken", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create user", err)
	}
	return nil
}

// Update edits an account and revokes its sessions so role or status changes
// take effect immediately rather than at cookie expiry.
func (service *UserService) Update(ctx context.Context, id int64, requestData *userdto.UpdateUserRequest) *errors.AppError {
	u, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update user. Please try again.", err)
	}
	if u == nil {
		return errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	taken, err := service.repo.UsernameTaken(ctx, requestData.Username, id)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update user. Please try again.", err)
	}
	if taken {
		return errors.NewAppError(errors.ErrAlreadyExists, "That username is already taken", nil)
	}

	u.Username = requestData.Username
	u.Email = requestData.Email
	u.FirstName = nullString(requestData.FirstName)
	u.LastName = nullString(requestData.LastName)
	if validRole(requestData.Role) {
		u.Role = requestData.Role
	}
	if requestData.Status == constants.StatusActive || requestData.Status == constants.StatusInactive {
		u.Status = requestData.Status
	}
	if requestData.Password != "" {
		if len(requestData.Password) < 6 {
			return errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 6 characters", nil)
		}
		hash, err := utils.HashPassword(requestData.Password)
		if err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update user. Please try again.", err)
		}
		u.PasswordHash = hash
	}

	updated, err := service.repo.Update(ctx, u)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "That username or email is already taken", err)
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update user. Please try again.", err)
	}
	if !updated {
		return errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	if err := service.cache.RevokeUserSessions(ctx, id); err != nil {
		logger.Error("UserService:Update:RevokeUserSessions", err)
	}
	return nil
}

func (service *UserService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrDeleteFailed,
				"Unable to delete user. They may have related records.", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete user. Please try again.", err)
	}

	if err := service.cache.RevokeUserSessions(ctx, id); err != nil {
		logger.Error("UserService:Delete:RevokeUserSessions", err)
	}
	return nil
}

func validRole(role string) bool {
	switch role {
	case constants.RoleUser, constants.RoleManager, constants.RoleAdmin:
		return true
	}
	return false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
