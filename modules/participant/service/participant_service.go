package service

import (
	"context"
	"database/sql"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	participantdto "ella-rises-admin/modules/participant/dto"
	"ella-rises-admin/modules/participant/entity"
	"ella-rises-admin/modules/participant/mapper"
	"ella-rises-admin/modules/participant/repository"
)

type ParticipantService struct {
	repo repository.ParticipantRepositoryInterface
}

func NewParticipantService(repo repository.ParticipantRepositoryInterface) *ParticipantService {
	return &ParticipantService{repo: repo}
}

type ParticipantServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams) (*participantdto.PaginatedParticipants, *errors.AppError)
	GetDetail(ctx context.Context, id int64) (*participantdto.ParticipantDetail, *errors.AppError)
	Create(ctx context.Context, requestData *participantdto.ParticipantRequest) *errors.AppError
	Update(ctx context.Context, id int64, requestData *participantdto.ParticipantRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
}

func (service *ParticipantService) List(ctx context.Context, queryParams params.QueryParams) (*participantdto.PaginatedParticipants, *errors.AppError) {
	page, err := service.repo.List(ctx, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load participants", err)
	}
	return mapper.ToPaginatedResponse(page, queryParams.Search, queryParams.DateSort), nil
}

// GetDetail loads the participant together with their milestone and event
// history. History queries failing does not hide the participant itself.
func (service *ParticipantService) GetDetail(ctx context.Context, id int64) (*participantdto.ParticipantDetail, *errors.AppError) {
	p, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load participant details", err)
	}
	if p == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}

	detail := &participantdto.ParticipantDetail{
		Participant: *mapper.ToParticipantResponse(p),
		Milestones:  []participantdto.MilestoneHistory{},
		Events:      []participantdto.EventHistory{},
	}

	if milestones, err := service.repo.GetMilestones(ctx, id); err != nil {
		logger.Error("ParticipantService:GetDetail:GetMilestones", err)
	} else {
		detail.Milestones = mapper.ToMilestoneHistory(milestones)
	}

	if events, err := service.repo.GetEvents(ctx, id); err != nil {
		logger.Error("ParticipantService:GetDetail:GetEvents", err)
	} else {
		detail.Events = mapper.ToEventHistory(events)
	}

	return detail, nil
}

func (service *ParticipantService) Create(ctx context.Context, requestData *participantdto.ParticipantRequest) *errors.AppError {
	p := toEntity(requestData)
	if _, err := service.repo.Create(ctx, p); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "A participant with that email already exists", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create participant", err)
	}
	return nil
}

func (service *ParticipantService) Update(ctx context.Context, id int64, requestData *participantdto.ParticipantRequest) *errors.AppError {
	p := toEntity(requestData)
	p.ID = id
	updated, err := service.repo.Update(ctx, p)
	if err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update participant. Please try again.", err)
	}
	if !updated {
		return errors.NewAppError(errors.ErrNotFound, "Participant not found", nil)
	}
	return nil
}

func (service *ParticipantService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrDeleteFailed,
				"Unable to delete participant. They may have related records.", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete participant. Please try again.", err)
	}
	return nil
}

func toEntity(requestData *participantdto.ParticipantRequest) *entity.Participant {
	return &entity.Participant{
		Email:            requestData.Email,
		FirstName:        requestData.FirstName,
		LastName:         requestData.LastName,
		Role:             nullString(requestData.Role),
		SchoolOrEmployer: nullString(requestData.SchoolOrEmployer),
		Phone:            nullString(requestData.Phone),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
