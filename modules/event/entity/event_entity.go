package entity

import (
	"database/sql"
	"time"

	"ella-rises-admin/core/entity"
)

// Event is a recurring program definition; occurrences are its scheduled
// instances.
type Event struct {
	Name              string         `db:"name"`
	Type              string         `db:"type"`
	Description       sql.NullString `db:"description"`
	RecurrencePattern sql.NullString `db:"recurrence_pattern"`
	DefaultCapacity   sql.NullInt64  `db:"default_capacity"`

	entity.BaseEntity
}

type PaginatedEvents = entity.Pagination[Event]

type EventOccurrence struct {
	EventID              int64          `db:"event_id"`
	StartsAt             time.Time      `db:"starts_at"`
	EndsAt               time.Time      `db:"ends_at"`
	Location             sql.NullString `db:"location"`
	Capacity             sql.NullInt64  `db:"capacity"`
	RegistrationDeadline sql.NullTime   `db:"registration_deadline"`

	entity.BaseEntity
}

type Registration struct {
	ParticipantID     int64  `db:"participant_id"`
	EventOccurrenceID int64  `db:"event_occurrence_id"`
	AttendanceStatus  string `db:"attendance_status"`

	entity.BaseEntity
}
