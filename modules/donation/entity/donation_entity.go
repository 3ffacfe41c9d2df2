package entity

import (
	"database/sql"

	"ella-rises-admin/core/entity"
)

type Donation struct {
	ParticipantID sql.NullInt64  `db:"participant_id"`
	Amount        float64        `db:"amount"`
	DonationDate  sql.NullTime   `db:"donation_date"`
	DonorName     string         `db:"donor_name"`
	DonorEmail    string         `db:"donor_email"`
	DonorPhone    sql.NullString `db:"donor_phone"`
	DonationType  string         `db:"donation_type"`

	entity.BaseEntity
}

// DonationRow joins the optionally linked participant's names onto the
// donation.
type DonationRow struct {
	Donation

	FirstName sql.NullString `db:"first_name"`
	LastName  sql.NullString `db:"last_name"`
}

type PaginatedDonations = entity.Pagination[DonationRow]
