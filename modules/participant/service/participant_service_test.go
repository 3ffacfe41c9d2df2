package service

import (
	"context"
	"errors"
	"testing"

	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	participantdto "ella-rises-admin/modules/participant/dto"
	"ella-rises-admin/modules/participant/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockParticipantRepo struct {
	mock.Mock
}

func (m *mockParticipantRepo) List(ctx context.Context, p params.QueryParams) (*entity.PaginatedParticipants, error) {
	args := m.Called(ctx, p)
	page, _ := args.Get(0).(*entity.PaginatedParticipants)
	return page, args.Error(1)
}

func (m *mockParticipantRepo) GetByID(ctx context.Context, id int64) (*entity.Participant, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Participant)
	return p, args.Error(1)
}

func (m *mockParticipantRepo) GetMilestones(ctx context.Context, participantID int64) ([]entity.ParticipantMilestone, error) {
	args := m.Called(ctx, participantID)
	rows, _ := args.Get(0).([]entity.ParticipantMilestone)
	return rows, args.Error(1)
}

func (m *mockParticipantRepo) GetEvents(ctx context.Context, participantID int64) ([]entity.ParticipantEvent, error) {
	args := m.Called(ctx, participantID)
	rows, _ := args.Get(0).([]entity.ParticipantEvent)
	return rows, args.Error(1)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*entity.Participant)
	return created, args.Error(1)
}

func (m *mockParticipantRepo) Update(ctx context.Context, p *entity.Participant) (bool, error) {
	args := m.Called(ctx, p)
	return args.Bool(0), args.Error(1)
}

func (m *mockParticipantRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func storedParticipant() *entity.Participant {
	p := &entity.Participant{Email: "maria@example.org", FirstName: "Maria", LastName: "Lopez"}
	p.ID = 4
	return p
}

// A failing history query degrades the detail page instead of hiding the
// participant.
func TestGetDetailToleratesHistoryFailures(t *testing.T) {
	repo := new(mockParticipantRepo)
	svc := NewParticipantService(repo)

	repo.On("GetByID", mock.Anything, int64(4)).Return(storedParticipant(), nil)
	repo.On("GetMilestones", mock.Anything, int64(4)).Return(nil, errors.New("boom"))
	repo.On("GetEvents", mock.Anything, int64(4)).Return([]entity.ParticipantEvent{}, nil)

	detail, appErr := svc.GetDetail(context.Background(), 4)

	require.Nil(t, appErr)
	assert.Equal(t, "Maria Lopez", detail.Participant.FullName)
	assert.Empty(t, detail.Milestones)
	assert.Empty(t, detail.Events)
}

func TestGetDetailNotFound(t *testing.T) {
	repo := new(mockParticipantRepo)
	svc := NewParticipantService(repo)

	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	detail, appErr := svc.GetDetail(context.Background(), 99)

	assert.Nil(t, detail)
	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrNotFound, appErr.Code)
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := new(mockParticipantRepo)
	svc := NewParticipantService(repo)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, &pq.Error{Code: "23505"})

	appErr := svc.Create(context.Background(), &participantdto.ParticipantRequest{
		Email: "maria@example.org", FirstName: "Maria", LastName: "Lopez",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrAlreadyExists, appErr.Code)
	assert.Equal(t, "A participant with that email already exists", appErr.Message)
}

// Deleting a participant with registrations or milestones surfaces the
// related-records message, not a raw constraint error.
func TestDeleteWithRelatedRecords(t *testing.T) {
	repo := new(mockParticipantRepo)
	svc := NewParticipantService(repo)

	repo.On("Delete", mock.Anything, int64(4)).Return(&pq.Error{Code: "23503"})

	appErr := svc.Delete(context.Background(), 4)

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrDeleteFailed, appErr.Code)
	assert.Equal(t, "Unable to delete participant. They may have related records.", appErr.Message)
}

func TestUpdateMissingParticipant(t *testing.T) {
	repo := new(mockParticipantRepo)
	svc := NewParticipantService(repo)

	repo.On("Update", mock.Anything, mock.Anything).Return(false, nil)

	appErr := svc.Update(context.Background(), 99, &participantdto.ParticipantRequest{
		Email: "maria@example.org", FirstName: "Maria", LastName: "Lopez",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrNotFound, appErr.Code)
}
