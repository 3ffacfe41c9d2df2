package service

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	eventdto "ella-rises-admin/modules/event/dto"
	"ella-rises-admin/modules/event/entity"
	"ella-rises-admin/modules/event/mapper"
	"ella-rises-admin/modules/event/repository"
)

type EventService struct {
	repo repository.EventRepositoryInterface
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

type EventServiceInterface interface {
	List(ctx context.Context, queryParams params.QueryParams, eventType string) (*eventdto.EventList, *errors.AppError)
	GetDetail(ctx context.Context, id int64) (*eventdto.EventDetail, *errors.AppError)
	ListOccurrences(ctx context.Context, eventID int64) ([]eventdto.OccurrenceResponse, *errors.AppError)
	Create(ctx context.Context, requestData *eventdto.EventRequest) *errors.AppError
	Update(ctx context.Context, id int64, requestData *eventdto.EventRequest) *errors.AppError
	Delete(ctx context.Context, id int64) *errors.AppError
	AddOccurrence(ctx context.Context, eventID int64, requestData *eventdto.OccurrenceRequest) *errors.AppError
	DeleteOccurrence(ctx context.Context, id int64) *errors.AppError
	Register(ctx context.Context, occurrenceID int64, requestData *eventdto.RegistrationRequest) *errors.AppError
}

// List applies the name search plus an optional type filter. A type token
// that does not match any existing event type is ignored rather than
// returning an empty page.
func (service *EventService) List(ctx context.Context, queryParams params.QueryParams, eventType string) (*eventdto.EventList, *errors.AppError) {
	types, err := service.repo.ListTypes(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load events", err)
	}

	if !containsType(types, eventType) {
		eventType = ""
	}

	page, err := service.repo.List(ctx, queryParams, eventType)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load events", err)
	}
	return mapper.ToEventList(page, queryParams.Search, eventType, types), nil
}

func (service *EventService) GetDetail(ctx context.Context, id int64) (*eventdto.EventDetail, *errors.AppError) {
	e, err := service.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load event details", err)
	}
	if e == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	detail := &eventdto.EventDetail{
		Event:       *mapper.ToEventResponse(e),
		Occurrences: []eventdto.OccurrenceResponse{},
	}

	if occurrences, err := service.repo.ListOccurrences(ctx, id); err != nil {
		logger.Error("EventService:GetDetail:ListOccurrences", err)
	} else {
		detail.Occurrences = mapper.ToOccurrenceResponses(occurrences)
	}

	return detail, nil
}

func (service *EventService) ListOccurrences(ctx context.Context, eventID int64) ([]eventdto.OccurrenceResponse, *errors.AppError) {
	e, err := service.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load occurrences", err)
	}
	if e == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	occurrences, err := service.repo.ListOccurrences(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load occurrences", err)
	}
	return mapper.ToOccurrenceResponses(occurrences), nil
}

func (service *EventService) Create(ctx context.Context, requestData *eventdto.EventRequest) *errors.AppError {
	e, appErr := toEntity(requestData)
	if appErr != nil {
		return appErr
	}
	if _, err := service.repo.Create(ctx, e); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "An event with that name already exists", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to create event", err)
	}
	return nil
}

func (service *EventService) Update(ctx context.Context, id int64, requestData *eventdto.EventRequest) *errors.AppError {
	e, appErr := toEntity(requestData)
	if appErr != nil {
		return appErr
	}
	e.ID = id
	updated, err := service.repo.Update(ctx, e)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists, "An event with that name already exists", err)
		}
		return errors.NewAppError(errors.ErrUpdateFailed, "Unable to update event. Please try again.", err)
	}
	if !updated {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return nil
}

func (service *EventService) Delete(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.Delete(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrDeleteFailed,
				"Unable to delete event. It may have scheduled occurrences.", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete event. Please try again.", err)
	}
	return nil
}

func (service *EventService) AddOccurrence(ctx context.Context, eventID int64, requestData *eventdto.OccurrenceRequest) *errors.AppError {
	e, err := service.repo.GetByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Unable to load event details", err)
	}
	if e == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	startsAt, ok := parseTime(requestData.StartsAt)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "Start time is not a valid date", nil)
	}
	endsAt, ok := parseTime(requestData.EndsAt)
	if !ok {
		return errors.NewAppError(errors.ErrInvalidInput, "End time is not a valid date", nil)
	}
	if !startsAt.Before(endsAt) {
		return errors.NewAppError(errors.ErrInvalidInput, "Start time must be before end time", nil)
	}

	o := &entity.EventOccurrence{
		EventID:  eventID,
		StartsAt: startsAt,
		EndsAt:   endsAt,
		Location: nullString(requestData.Location),
		Capacity: e.DefaultCapacity,
	}

	if requestData.Capacity != "" {
		capacity, err := strconv.ParseInt(requestData.Capacity, 10, 64)
		if err != nil || capacity < 0 {
			return errors.NewAppError(errors.ErrInvalidInput, "Capacity must be zero or a positive number", nil)
		}
		o.Capacity = sql.NullInt64{Int64: capacity, Valid: true}
	}
	if requestData.RegistrationDeadline != "" {
		deadline, ok := parseTime(requestData.RegistrationDeadline)
		if !ok {
			return errors.NewAppError(errors.ErrInvalidInput, "Registration deadline is not a valid date", nil)
		}
		o.RegistrationDeadline = sql.NullTime{Time: deadline, Valid: true}
	}

	if _, err := service.repo.CreateOccurrence(ctx, o); err != nil {
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to schedule the event occurrence", err)
	}
	return nil
}

func (service *EventService) DeleteOccurrence(ctx context.Context, id int64) *errors.AppError {
	if err := service.repo.DeleteOccurrence(ctx, id); err != nil {
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrDeleteFailed,
				"Unable to delete occurrence. It may have registrations.", err)
		}
		return errors.NewAppError(errors.ErrDeleteFailed, "Unable to delete occurrence. Please try again.", err)
	}
	return nil
}

// Register adds a participant to an occurrence. The unique constraint on
// (participant, occurrence) backstops double registration.
func (service *EventService) Register(ctx context.Context, occurrenceID int64, requestData *eventdto.RegistrationRequest) *errors.AppError {
	o, err := service.repo.GetOccurrence(ctx, occurrenceID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Unable to load event details", err)
	}
	if o == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event occurrence not found", nil)
	}

	participantID, err := strconv.ParseInt(requestData.ParticipantID, 10, 64)
	if err != nil {
		return errors.NewAppError(errors.ErrInvalidInput, "Please select a participant", nil)
	}

	status := requestData.AttendanceStatus
	if status == "" {
		status = "registered"
	}

	reg := &entity.Registration{
		ParticipantID:     participantID,
		EventOccurrenceID: occurrenceID,
		AttendanceStatus:  status,
	}
	if _, err := service.repo.CreateRegistration(ctx, reg); err != nil {
		if database.IsUniqueViolation(err) {
			return errors.NewAppError(errors.ErrAlreadyExists,
				"That participant is already registered for this occurrence", err)
		}
		if database.IsForeignKeyViolation(err) {
			return errors.NewAppError(errors.ErrNotFound, "Participant not found", err)
		}
		return errors.NewAppError(errors.ErrCreateFailed, "Unable to register the participant", err)
	}
	return nil
}

func toEntity(requestData *eventdto.EventRequest) (*entity.Event, *errors.AppError) {
	e := &entity.Event{
		Name:              requestData.Name,
		Type:              requestData.Type,
		Description:       nullString(requestData.Description),
		RecurrencePattern: nullString(requestData.RecurrencePattern),
	}
	if requestData.DefaultCapacity != "" {
		capacity, err := strconv.ParseInt(requestData.DefaultCapacity, 10, 64)
		if err != nil || capacity < 0 {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Capacity must be zero or a positive number", nil)
		}
		e.DefaultCapacity = sql.NullInt64{Int64: capacity, Valid: true}
	}
	return e, nil
}

func containsType(types []string, eventType string) bool {
	for _, t := range types {
		if t == eventType {
			return true
		}
	}
	return false
}

// parseTime accepts the browser datetime-local format and RFC 3339.
func parseTime(value string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02T15:04", time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
