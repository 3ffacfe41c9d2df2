package service

import (
	"context"
	"testing"

	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	milestonedto "ella-rises-admin/modules/milestone/dto"
	"ella-rises-admin/modules/milestone/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockMilestoneRepo struct {
	mock.Mock
}

func (m *mockMilestoneRepo) List(ctx context.Context, p params.QueryParams, typeTitle string) (*entity.PaginatedMilestones, error) {
	args := m.Called(ctx, p, typeTitle)
	page, _ := args.Get(0).(*entity.PaginatedMilestones)
	return page, args.Error(1)
}

func (m *mockMilestoneRepo) Create(ctx context.Context, ms *entity.Milestone) (*entity.Milestone, error) {
	args := m.Called(ctx, ms)
	created, _ := args.Get(0).(*entity.Milestone)
	return created, args.Error(1)
}

func (m *mockMilestoneRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockMilestoneRepo) ListTypes(ctx context.Context) ([]entity.MilestoneType, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]entity.MilestoneType)
	return types, args.Error(1)
}

func (m *mockMilestoneRepo) CreateType(ctx context.Context, t *entity.MilestoneType) (*entity.MilestoneType, error) {
	args := m.Called(ctx, t)
	created, _ := args.Get(0).(*entity.MilestoneType)
	return created, args.Error(1)
}

func (m *mockMilestoneRepo) DeleteType(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func knownTypes() []entity.MilestoneType {
	graduated := entity.MilestoneType{Title: "Graduated"}
	graduated.ID = 1
	hired := entity.MilestoneType{Title: "Hired"}
	hired.ID = 2
	return []entity.MilestoneType{graduated, hired}
}

func TestListIgnoresUnknownTypeTitle(t *testing.T) {
	repo := new(mockMilestoneRepo)
	svc := NewMilestoneService(repo)

	queryParams := params.QueryParams{PageNumber: 1, PageSize: 15, DateSort: "desc"}
	repo.On("ListTypes", mock.Anything).Return(knownTypes(), nil)
	repo.On("List", mock.Anything, queryParams, "").
		Return(&entity.PaginatedMilestones{Items: []entity.MilestoneRow{}, PageNumber: 1, PageSize: 15}, nil)

	page, appErr := svc.List(context.Background(), queryParams, "Knighted")

	require.Nil(t, appErr)
	assert.Equal(t, "", page.Type)
	repo.AssertExpectations(t)
}

func TestListKeepsKnownTypeTitle(t *testing.T) {
	repo := new(mockMilestoneRepo)
	svc := NewMilestoneService(repo)

	queryParams := params.QueryParams{PageNumber: 1, PageSize: 15, DateSort: "desc"}
	repo.On("ListTypes", mock.Anything).Return(knownTypes(), nil)
	repo.On("List", mock.Anything, queryParams, "Graduated").
		Return(&entity.PaginatedMilestones{Items: []entity.MilestoneRow{}, PageNumber: 1, PageSize: 15}, nil)

	page, appErr := svc.List(context.Background(), queryParams, "Graduated")

	require.Nil(t, appErr)
	assert.Equal(t, "Graduated", page.Type)
}

func TestCreateRejectsBadDate(t *testing.T) {
	repo := new(mockMilestoneRepo)
	svc := NewMilestoneService(repo)

	appErr := svc.Create(context.Background(), &milestonedto.MilestoneRequest{
		ParticipantID: "4", MilestoneTypeID: "1", MilestoneDate: "not-a-date",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateParsesTheRequest(t *testing.T) {
	repo := new(mockMilestoneRepo)
	svc := NewMilestoneService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(ms *entity.Milestone) bool {
		return ms.ParticipantID == 4 && ms.MilestoneTypeID == 1 &&
			ms.MilestoneDate.Format("2006-01-02") == "2026-06-15" &&
			ms.Notes.String == "First cohort"
	})).Return(&entity.Milestone{}, nil)

	appErr := svc.Create(context.Background(), &milestonedto.MilestoneRequest{
		ParticipantID: "4", MilestoneTypeID: "1", MilestoneDate: "2026-06-15", Notes: "First cohort",
	})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}
