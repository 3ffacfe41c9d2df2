package service

import (
	"context"
	"database/sql"
	"strconv"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	surveydto "ella-rises-admin/modules/survey/dto"
	"ella-rises-admin/modules/survey/entity"
	"ella-rises-admin/modules/survey/mapper"
	"ella-rises-admin/modules/survey/repository"
)

type SurveyService struct {
	repo repository.SurveyRepositoryInterface
}

func NewSurveyService(repo repository.SurveyRepositoryInterface) *SurveyService {
	return &SurveyService{repo: repo}
}

type SurveyServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams) (*surveydto.PaginatedSurveys, *errors.AppError)
	GetByID(ctx context.Context, id int64) (*surveydto.SurveyResponse, *errors.AppError)
	Create(ctx context.Context, requestData *surveydto.SurveyRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
}

func (service *SurveyService) List(ctx context.Context, queryParams params.QueryParams) (*surveydto.PaginatedSurveys, *errors.AppError) {
	page, err := service.repo.List(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load surveys", err)
	}
	return mapper.ToPaginatedResponse(page, queryParams.Search, queryParams.DateSort), nil
}

func (service *SurveyService) GetByID(ctx context.Context, id int64) (*surveydto.SurveyResponse, *errors.AppError) {
	row, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load survey details", err)
	}
	if row == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Survey not found", nil)
	}
	return mapper.ToSurveyResponse(row), nil
}

func (service *SurveyService) Create(ctx context.Context, requestData *surveydto.SurveyRequest) *errors.AppError {
	s := &entity.Survey{
		Comments: sql.NullString{String: requestData.Comments, Valid: requestData.Comments != ""},
	}

	if requestData.RegistrationID != "" {
		id, err := strconv.ParseInt(requestData.RegistrationID, 10, 64)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Please select a registration", nil)
		}
		s.RegistrationID = sql.NullInt64{Int64: id, Valid: true}
	}
	if requestData.SatisfactionScore != "" {
		score, err := strconv.ParseInt(requestData.SatisfactionScore, 10, 64)
		if err != nil || score < 1 || score > 5 {
			return errors.NewAppError(errors.ErrInvalidInput, "Satisfaction score must be between 1 and 5", nil)
		}
		s.SatisfactionScore = sql.NullInt64{Int64: score, Valid: true}
	}

	if _, err := service.repo.Create(ctx, s); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrNotFound, "Registration not found", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to record the survey response", err)
	}
	return nil
}

func (service *SurveyService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete survey. Please try again.", err)
	}
	return nil
}
