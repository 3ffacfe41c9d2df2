package service

import (
	"context"
	"testing"

	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	eventdto "ella-rises-admin/modules/event/dto"
	"ella-rises-admin/modules/event/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) List(ctx context.Context, p params.QueryParams, eventType string) (*entity.PaginatedEvents, error) {
	args := m.Called(ctx, p, eventType)
	page, _ := args.Get(0).(*entity.PaginatedEvents)
	return page, args.Error(1)
}

func (m *mockEventRepo) ListTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	types, _ := args.Get(0).([]string)
	return types, args.Error(1)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*entity.Event)
	return e, args.Error(1)
}

func (m *mockEventRepo) Create(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	args := m.Called(ctx, e)
	created, _ := args.Get(0).(*entity.Event)
	return created, args.Error(1)
}

func (m *mockEventRepo) Update(ctx context.Context, e *entity.Event) (bool, error) {
	args := m.Called(ctx, e)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) ListOccurrences(ctx context.Context, eventID int64) ([]entity.EventOccurrence, error) {
	args := m.Called(ctx, eventID)
	rows, _ := args.Get(0).([]entity.EventOccurrence)
	return rows, args.Error(1)
}

func (m *mockEventRepo) GetOccurrence(ctx context.Context, id int64) (*entity.EventOccurrence, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.EventOccurrence)
	return o, args.Error(1)
}

func (m *mockEventRepo) CreateOccurrence(ctx context.Context, o *entity.EventOccurrence) (*entity.EventOccurrence, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(*entity.EventOccurrence)
	return created, args.Error(1)
}

func (m *mockEventRepo) DeleteOccurrence(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockEventRepo) CreateRegistration(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	args := m.Called(ctx, reg)
	created, _ := args.Get(0).(*entity.Registration)
	return created, args.Error(1)
}

func TestListIgnoresUnknownTypeToken(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	queryParams := params.QueryParams{PageNumber: 1, PageSize: 15, DateSort: "desc"}
	repo.On("ListTypes", mock.Anything).Return([]string{"mentoring", "workshop"}, nil)
	repo.On("List", mock.Anything, queryParams, "").
		Return(&entity.PaginatedEvents{Items: []entity.Event{}, PageNumber: 1, PageSize: 15}, nil)

	page, appErr := svc.List(context.Background(), queryParams, "seminar")

	require.Nil(t, appErr)
	assert.Equal(t, "", page.Type)
	assert.Equal(t, []string{"mentoring", "workshop"}, page.Types)
	repo.AssertExpectations(t)
}

func TestListKeepsRecognizedTypeToken(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	queryParams := params.QueryParams{PageNumber: 1, PageSize: 15, DateSort: "desc"}
	repo.On("ListTypes", mock.Anything).Return([]string{"mentoring", "workshop"}, nil)
	repo.On("List", mock.Anything, queryParams, "workshop").
		Return(&entity.PaginatedEvents{Items: []entity.Event{}, PageNumber: 1, PageSize: 15}, nil)

	page, appErr := svc.List(context.Background(), queryParams, "workshop")

	require.Nil(t, appErr)
	assert.Equal(t, "workshop", page.Type)
	repo.AssertExpectations(t)
}

func TestAddOccurrenceRejectsStartAfterEnd(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Event{Name: "Mentoring Circle"}, nil)

	appErr := svc.AddOccurrence(context.Background(), 1, &eventdto.OccurrenceRequest{
		StartsAt: "2026-09-01T15:00",
		EndsAt:   "2026-09-01T14:00",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "Start time must be before end time", appErr.Message)
	repo.AssertNotCalled(t, "CreateOccurrence", mock.Anything, mock.Anything)
}

func TestAddOccurrenceRejectsNegativeCapacity(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Event{Name: "Mentoring Circle"}, nil)

	appErr := svc.AddOccurrence(context.Background(), 1, &eventdto.OccurrenceRequest{
		StartsAt: "2026-09-01T14:00",
		EndsAt:   "2026-09-01T15:00",
		Capacity: "-3",
	})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrInvalidInput, appErr.Code)
}

func TestAddOccurrenceAcceptsDatetimeLocal(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	repo.On("GetByID", mock.Anything, int64(1)).Return(&entity.Event{Name: "Mentoring Circle"}, nil)
	repo.On("CreateOccurrence", mock.Anything, mock.MatchedBy(func(o *entity.EventOccurrence) bool {
		return o.EventID == 1 && o.StartsAt.Before(o.EndsAt) && o.Capacity.Valid && o.Capacity.Int64 == 12
	})).Return(&entity.EventOccurrence{}, nil)

	appErr := svc.AddOccurrence(context.Background(), 1, &eventdto.OccurrenceRequest{
		StartsAt: "2026-09-01T14:00",
		EndsAt:   "2026-09-01T15:30",
		Capacity: "12",
	})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func TestRegisterDefaultsAttendanceStatus(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	repo.On("GetOccurrence", mock.Anything, int64(9)).Return(&entity.EventOccurrence{EventID: 1}, nil)
	repo.On("CreateRegistration", mock.Anything, mock.MatchedBy(func(reg *entity.Registration) bool {
		return reg.ParticipantID == 4 && reg.EventOccurrenceID == 9 && reg.AttendanceStatus == "registered"
	})).Return(&entity.Registration{}, nil)

	appErr := svc.Register(context.Background(), 9, &eventdto.RegistrationRequest{ParticipantID: "4"})

	assert.Nil(t, appErr)
	repo.AssertExpectations(t)
}

func TestRegisterUnknownOccurrence(t *testing.T) {
	repo := new(mockEventRepo)
	svc := NewEventService(repo)

	repo.On("GetOccurrence", mock.Anything, int64(99)).Return(nil, nil)

	appErr := svc.Register(context.Background(), 99, &eventdto.RegistrationRequest{ParticipantID: "4"})

	require.NotNil(t, appErr)
	assert.Equal(t, coreerrors.ErrNotFound, appErr.Code)
}
