package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/event/entity"
)

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams, eventType string) (*entity.PaginatedEvents, error)
	ListTypes(ctx context.Context) ([]string, error)
	GetByID(ctx context.Context, id int64) (*entity.Event, error)
	Create(ctx context.Context, e *entity.Event) (*entity.Event, error)
	Update(ctx context.Context, e *entity.Event) (bool, error)
	Delete(ctx context.Context, id int64) error
	ListOccurrences(ctx context.Context, eventID int64) ([]entity.EventOccurrence, error)
	GetOccurrence(ctx context.Context, id int64) (*entity.EventOccurrence, error)
	CreateOccurrence(ctx context.Context, o *entity.EventOccurrence) (*entity.EventOccurrence, error)
	DeleteOccurrence(ctx context.Context, id int64) error
	CreateRegistration(ctx context.Context, reg *entity.Registration) (*entity.Registration, error)
}

const eventColumns = `id, name, type, description, recurrence_pattern, default_capacity,
       created_at, updated_at`

// List filters by name search and an optional exact type. An empty eventType
// means no type predicate at all.
func (r *EventRepository) List(ctx context.Context, params params.QueryParams, eventType string) (*entity.PaginatedEvents, error) {
	b := query.NewBuilder()
	b.Search(params.Search, "name")
	if eventType != "" {
		b.And("type = ?", eventType)
	}

	countSQL, countArgs := b.Count(`SELECT COUNT(*) FROM events`)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("EventRepository:List - Count", err)
		return nil, err
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+eventColumns+` FROM events`,
		"ORDER BY name ASC",
		params.PageSize, params.Offset(),
	)

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, dataSQL, dataArgs...); err != nil {
		logger.Error("EventRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedEvents{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

// ListTypes feeds the type filter dropdown and doubles as the set of
// recognized filter tokens.
func (r *EventRepository) ListTypes(ctx context.Context) ([]string, error) {
	var types []string
	sql := `SELECT DISTINCT type FROM events ORDER BY type ASC`
	if err := r.DB.SelectContext(ctx, &types, sql); err != nil {
		logger.Error("EventRepository:ListTypes", err)
		return nil, err
	}
	return types, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*entity.Event, error) {
	sql := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e entity.Event
	err := r.DB.GetContext(ctx, &e, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("EventRepository:GetByID", err)
		return nil, err
	}
	return &e, nil
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) (*entity.Event, error) {
	sql := `
		INSERT INTO events (name, type, description, recurrence_pattern, default_capacity)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, sql,
		e.Name, e.Type, e.Description, e.RecurrencePattern, e.DefaultCapacity)
	if err != nil {
		logger.Error("EventRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) Update(ctx context.Context, e *entity.Event) (bool, error) {
	sql := `
		UPDATE events
		SET name = $2, type = $3, description = $4,
		    recurrence_pattern = $5, default_capacity = $6, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.DB.SQLx().ExecContext(ctx, sql,
		e.ID, e.Name, e.Type, e.Description, e.RecurrencePattern, e.DefaultCapacity)
	if err != nil {
		logger.Error("EventRepository:Update", err)
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id); err != nil {
		logger.Error("EventRepository:Delete", err)
		return err
	}
	return nil
}

const occurrenceColumns = `id, event_id, starts_at, ends_at, location, capacity,
       registration_deadline, created_at, updated_at`

func (r *EventRepository) ListOccurrences(ctx context.Context, eventID int64) ([]entity.EventOccurrence, error) {
	sql := `SELECT ` + occurrenceColumns + ` FROM event_occurrences
		WHERE event_id = $1 ORDER BY starts_at ASC`

	var occurrences []entity.EventOccurrence
	if err := r.DB.SelectContext(ctx, &occurrences, sql, eventID); err != nil {
		logger.Error("EventRepository:ListOccurrences", err)
		return nil, err
	}
	return occurrences, nil
}

func (r *EventRepository) GetOccurrence(ctx context.Context, id int64) (*entity.EventOccurrence, error) {
	sql := `SELECT ` + occurrenceColumns + ` FROM event_occurrences WHERE id = $1`

	var o entity.EventOccurrence
	err := r.DB.GetContext(ctx, &o, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("EventRepository:GetOccurrence", err)
		return nil, err
	}
	return &o, nil
}

func (r *EventRepository) CreateOccurrence(ctx context.Context, o *entity.EventOccurrence) (*entity.EventOccurrence, error) {
	sql := `
		INSERT INTO event_occurrences (event_id, starts_at, ends_at, location, capacity, registration_deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + occurrenceColumns

	var created entity.EventOccurrence
	err := r.DB.GetContext(ctx, &created, sql,
		o.EventID, o.StartsAt, o.EndsAt, o.Location, o.Capacity, o.RegistrationDeadline)
	if err != nil {
		logger.Error("EventRepository:CreateOccurrence", err)
		return nil, err
	}
	return &created, nil
}

func (r *EventRepository) DeleteOccurrence(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM event_occurrences WHERE id = $1`, id); err != nil {
		logger.Error("EventRepository:DeleteOccurrence", err)
		return err
	}
	return nil
}

func (r *EventRepository) CreateRegistration(ctx context.Context, reg *entity.Registration) (*entity.Registration, error) {
	sql := `
		INSERT INTO registrations (participant_id, event_occurrence_id, attendance_status)
		VALUES ($1, $2, $3)
		RETURNING id, participant_id, event_occurrence_id, attendance_status, created_at, updated_at
	`

	var created entity.Registration
	err := r.DB.GetContext(ctx, &created, sql,
		reg.ParticipantID, reg.EventOccurrenceID, reg.AttendanceStatus)
	if err != nil {
		logger.Error("EventRepository:CreateRegistration", err)
		return nil, err
	}
	return &created, nil
}
