package entity

import (
	"database/sql"
	"time"

	"ella-rises-admin/core/entity"
)

type Milestone struct {
	ParticipantID   int64          `db:"participant_id"`
	MilestoneTypeID int64          `db:"milestone_type_id"`
	MilestoneDate   time.Time      `db:"milestone_date"`
	Notes           sql.NullString `db:"notes"`

	entity.BaseEntity
}

type MilestoneType struct {
	Title    string         `db:"title"`
	Category sql.NullString `db:"category"`

	entity.BaseEntity
}

// MilestoneRow is the joined listing shape with participant names and the
// type title.
type MilestoneRow struct {
	Milestone

	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	TypeTitle    sql.NullString `db:"type_title"`
	TypeCategory sql.NullString `db:"type_category"`
}

type PaginatedMilestones = entity.Pagination[MilestoneRow]
