package service

import (
	"context"
	"database/sql"
	"strconv"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	donationdto "ella-rises-admin/modules/donation/dto"
	"ella-rises-admin/modules/donation/entity"
	"ella-rises-admin/modules/donation/mapper"
	"ella-rises-admin/modules/donation/repository"
)

type DonationService struct {
	repo repository.DonationRepositoryInterface
}

func NewDonationService(repo repository.DonationRepositoryInterface) *DonationService {
	return &DonationService{repo: repo}
}

type DonationServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams, amountFilter string) (*donationdto.DonationList, *errors.AppError)
	GetByID(ctx context.Context, id int64) (*donationdto.DonationResponse, *errors.AppError)
	Create(ctx context.Context, requestData *donationdto.DonationRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
}

// AmountBracket maps a filter token to its amount range. An unrecognized
// token yields the zero range, which applies no predicate.
func AmountBracket(token string) repository.AmountRange {
	bound := func(v float64) *float64 { return &v }
	switch token {
	case "under25":
		return repository.AmountRange{Max: bound(25)}
	case "25-50":
		return repository.AmountRange{Min: bound(25), Max: bound(50)}
	case "50-100":
		return repository.AmountRange{Min: bound(50), Max: bound(100)}
	case "100-250":
		return repository.AmountRange{Min: bound(100), Max: bound(250)}
	case "250-500":
		return repository.AmountRange{Min: bound(250), Max: bound(500)}
	case "500-1000":
		return repository.AmountRange{Min: bound(500), Max: bound(1000)}
	case "over1000":
		return repository.AmountRange{Min: bound(1000)}
	}
	return repository.AmountRange{}
}

func (service *DonationService) List(ctx context.Context, queryParams params.QueryParams, amountFilter string) (*donationdto.DonationList, *errors.AppError) {
	bracket := AmountBracket(amountFilter)
	if bracket.IsZero() {
		amountFilter = ""
	}

	page, err := service.repo.List(ctx, queryParams, bracket)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load donations", err)
	}
	return mapper.ToDonationList(page, queryParams.Search, queryParams.DateSort, amountFilter), nil
}

func (service *DonationService) GetByID(ctx context.Context, id int64) (*donationdto.DonationResponse, *errors.AppError) {
	row, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load donation details", err)
	}
	if row == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Donation not found", nil)
	}
	return mapper.ToDonationResponse(row), nil
}

// Create records a donation from the public form. The amount must parse and
// be strictly positive; the schema CHECK backstops the same rule.
func (service *DonationService) Create(ctx context.Context, requestData *donationdto.DonationRequest) *errors.AppError {
	amount, err := strconv.ParseFloat(requestData.Amount, 64)
	if err != nil || amount <= 0 {
		return errors.NewAppError(errors.ErrInvalidInput, "Donation amount must be greater than zero", nil)
	}

	d := &entity.Donation{
		Amount:       amount,
		DonorName:    requestData.DonorName,
		DonorEmail:   requestData.DonorEmail,
		DonorPhone:   sql.NullString{String: requestData.DonorPhone, Valid: requestData.DonorPhone != ""},
		DonationType: requestData.DonationType,
	}
	if d.DonationType == "" {
		d.DonationType = "general"
	}
	if requestData.ParticipantID != "" {
		id, err := strconv.ParseInt(requestData.ParticipantID, 10, 64)
		if err != nil {
			return errors.NewAppError(errors.ErrInvalidInput, "Please select a participant", nil)
		}
		d.ParticipantID = sql.NullInt64{Int64: id, Valid: true}
	}

	if _, err := service.repo.Create(ctx, d); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrNotFound, "Participant not found", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to record the donation. Please try again.", err)
	}
	return nil
}

func (service *DonationService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete donation. Please try again.", err)
	}
	return nil
}
