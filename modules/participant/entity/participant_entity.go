package entity

import (
	"database/sql"
	"time"

	"ella-rises-admin/core/entity"
)

type Participant struct {
	Email            string         `db:"email"`
	FirstName        string         `db:"first_name"`
	LastName         string         `db:"last_name"`
	Role             sql.NullString `db:"role"`
	SchoolOrEmployer sql.NullString `db:"school_or_employer"`
	Phone            sql.NullString `db:"phone"`

	entity.BaseEntity
}

type PaginatedParticipants = entity.Pagination[Participant]

// ParticipantMilestone is one row of a participant's achievement history,
// left-joined to the type lookup so an orphaned type still lists.
type ParticipantMilestone struct {
	ID            int64          `db:"id"`
	MilestoneDate time.Time      `db:"milestone_date"`
	Notes         sql.NullString `db:"notes"`
	TypeTitle     sql.NullString `db:"type_title"`
	TypeCategory  sql.NullString `db:"type_category"`
}

// ParticipantEvent is one row of a participant's event history.
type ParticipantEvent struct {
	EventName        string    `db:"event_name"`
	EventType        string    `db:"event_type"`
	StartsAt         time.Time `db:"starts_at"`
	AttendanceStatus string    `db:"attendance_status"`
}
