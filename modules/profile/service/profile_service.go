package service

import (
	"context"

	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/session"
	"ella-rises-admin/core/utils"
	profiledto "ella-rises-admin/modules/profile/dto"
	"ella-rises-admin/modules/profile/repository"
)

type ProfileService struct {
	repo  repository.ProfileRepositoryInterface
	cache cache.Cache
}

func NewProfileService(repo repository.ProfileRepositoryInterface, cache cache.Cache) *ProfileService {
	return &ProfileService{repo: repo, cache: cache}
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, userID int64) (*profiledto.ProfileResponse, *errors.AppError)
	Update(ctx context.Context, s *session.Session, requestData *profiledto.UpdateProfileRequest) *errors.AppError
}

func (service *ProfileService) Get(ctx context.Context, userID int64) (*profiledto.ProfileResponse, *errors.AppError) {
	u, err := service.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load your profile", err)
	}
	if u == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Account not found", nil)
	}

	resp := &profiledto.ProfileResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		FullName:  utils.FullName(u.FirstName.String, u.LastName.String),
		Role:      u.Role,
	}
	if u.LastLogin.Valid {
		resp.LastLogin = u.LastLogin.Time.Format("2006-01-02 15:04")
	}
	return resp, nil
}

// Update changes the caller's own username and optionally their password.
// The stored session is rewritten afterwards so the new username shows up on
// the next request without a re-login.
func (service *ProfileService) Update(ctx context.Context, s *session.Session, requestData *profiledto.UpdateProfileRequest) *errors.AppError {
	taken, err := service.repo.UsernameTaken(ctx, requestData.Username, s.UserID)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update your profile. Please try again.", err)
	}
	if taken {
		return errors.NewAppError(errors.ErrAlreadyExists, "That username is already taken", nil)
	}

	var hash string
	if requestData.Password != "" || requestData.ConfirmPassword != "" {
		if requestData.Password != requestData.ConfirmPassword {
			return errors.NewAppError(errors.ErrInvalidInput, "Passwords do not match", nil)
		}
		if len(requestData.Password) < 6 {
			return errors.NewAppError(errors.ErrInvalidInput, "Password must be at least 6 characters", nil)
		}
		hash, err = utils.HashPassword(requestData.Password)
		if err != nil {
			return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update your profile. Please try again.", err)
		}
	}

	if err := service.repo.UpdateAccount(ctx, s.UserID, requestData.Username, hash); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update your profile. Please try again.", err)
	}

	s.Username = requestData.Username
	if err := service.cache.SaveSession(ctx, s); err != nil {
		logger.Error("ProfileService:Update:SaveSession", err)
	}
	return nil
}
