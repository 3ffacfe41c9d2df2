package entity

import (
	"database/sql"
	"time"

	"ella-rises-admin/core/entity"
)

type Survey struct {
	RegistrationID    sql.NullInt64  `db:"registration_id"`
	SubmissionDate    time.Time      `db:"submission_date"`
	SatisfactionScore sql.NullInt64  `db:"satisfaction_score"`
	Comments          sql.NullString `db:"comments"`

	entity.BaseEntity
}

// SurveyRow is the joined listing shape. The joins are all LEFT so a survey
// with no registration still shows up.
type SurveyRow struct {
	Survey

	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
	EventName sql.NullString `db:"event_name"`
	StartsAt  sql.NullTime   `db:"starts_at"`
}

type PaginatedSurveys = entity.Pagination[SurveyRow]
