package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	milestonedto "ella-rises-admin/modules/milestone/dto"
	"ella-rises-admin/modules/milestone/entity"
	"ella-rises-admin/modules/milestone/mapper"
	"ella-rises-admin/modules/milestone/repository"
)

type MilestoneService struct {
	repo repository.MilestoneRepositoryInterface
}

func NewMilestoneService(repo repository.MilestoneRepositoryInterface) *MilestoneService {
	return &MilestoneService{repo: repo}
}

type MilestoneServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams, typeTitle string) (*milestonedto.MilestoneList, *errors.AppError)
	Create(ctx context.Context, requestData *milestonedto.MilestoneRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
	ListTypes(ctx context.Context) ([]milestonedto.MilestoneTypeResponse, *errors.AppError)
	CreateType(ctx context.Context, requestData *milestonedto.MilestoneTypeRequest) *errors.AppError
	DeleteType(ctx context.Context, id int64) *errors.AppError
}

// List applies the joined search plus an optional exact filter on the type
// title. A title that matches no existing type is ignored.
func (service *MilestoneService) List(ctx context.Context, queryParams params.QueryParams, typeTitle string) (*milestonedto.MilestoneList, *errors.AppError) {
	types, err := service.repo.ListTypes(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load milestones", err)
	}

	if !containsTitle(types, typeTitle) {
		typeTitle = ""
	}

	page, err := service.repo.List(ctx, queryParams, typeTitle)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load milestones", err)
	}
	return mapper.ToMilestoneList(page, queryParams.Search, queryParams.DateSort, typeTitle, types), nil
}

func (service *MilestoneService) Create(ctx context.Context, requestData *milestonedto.MilestoneRequest) *errors.AppError {
	participantID, err := strconv.ParseInt(requestData.ParticipantID, 10, 64)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Please select a participant", nil)
	}
	typeID, err := strconv.ParseInt(requestData.MilestoneTypeID, 10, 64)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Please select a milestone type", nil)
	}
	date, err := time.Parse("2006-01-02", requestData.MilestoneDate)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Milestone date is not a valid date", nil)
	}

	m := &entity.Milestone{
		ParticipantID:   participantID,
		MilestoneTypeID: typeID,
		MilestoneDate:   date,
		Notes:           sql.NullString{String: requestData.Notes, Valid: requestData.Notes != ""},
	}
	if _, err := service.repo.Create(ctx, m); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrNotFound, "Participant or milestone type not found", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to record the milestone", err)
	}
	return nil
}

func (service *MilestoneService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete milestone. Please try again.", err)
	}
	return nil
}

func (service *MilestoneService) ListTypes(ctx context.Context) ([]milestonedto.MilestoneTypeResponse, *errors.AppError) {
	types, err := service.repo.ListTypes(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load milestone types", err)
	}
	return mapper.ToTypeResponses(types), nil
}

func (service *MilestoneService) CreateType(ctx context.Context, requestData *milestonedto.MilestoneTypeRequest) *errors.AppError {
	t := &entity.MilestoneType{
		Title:    requestData.Title,
		Category: sql.NullString{String: requestData.Category, Valid: requestData.Category != ""},
	}
	if _, err := service.repo.CreateType(ctx, t); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "A milestone type with that title already exists", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create milestone type", err)
	}
	return nil
}

func (service *MilestoneService) DeleteType(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.DeleteType(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrDeleteFailed,
				"Unable to delete milestone type. It may have related records.", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete milestone type. Please try again.", err)
	}
	return nil
}

func containsTitle(types []entity.MilestoneType, title string) bool {
	for _, t := range types {
		if t.Title == title {
			return true
		}
	}
	return false
}
