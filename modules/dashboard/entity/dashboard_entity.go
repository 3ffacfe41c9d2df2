package entity

import (
	"database/sql"
	"time"
)

type Totals struct {
	Participants int     `db:"participants"`
	Events       int     `db:"events"`
	Surveys      int     `db:"surveys"`
	Milestones   int     `db:"milestones"`
	DonationSum  float64 `db:"donation_sum"`
}

type RecentParticipant struct {
	ID        int64     `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type RecentMilestone struct {
	ID            int64          `db:"id"`
	FirstName     sql.NullString `db:"first_name"`
	LastName      sql.NullString `db:"last_name"`
	TypeTitle     sql.NullString `db:"type_title"`
	MilestoneDate time.Time      `db:"milestone_date"`
}

type RecentSurvey struct {
	ID                int64          `db:"id"`
	FirstName         sql.NullString `db:"first_name"`
	LastName          sql.NullString `db:"last_name"`
	EventName         sql.NullString `db:"event_name"`
	SatisfactionScore sql.NullInt64  `db:"satisfaction_score"`
	SubmissionDate    time.Time      `db:"submission_date"`
}

type RecentDonation struct {
	ID           int64        `db:"id"`
	DonorName    string       `db:"donor_name"`
	Amount       float64      `db:"amount"`
	DonationDate sql.NullTime `db:"donation_date"`
}
