package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/donation/entity"
)

type DonationRepository struct {
	DB database.IDatabase
}

func NewDonationRepository(db database.IDatabase) *DonationRepository {
	return &DonationRepository{DB: db}
}

type DonationRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams, amount AmountRange) (*entity.PaginatedDonations, error)
	GetByID(ctx context.Context, id int64) (*entity.DonationRow, error)
	Create(ctx context.Context, d *entity.Donation) (*entity.Donation, error)
	Delete(ctx context.Context, id int64) error
}

// AmountRange is a half-open [Min, Max) bracket on the donation amount. A
// nil bound is unbounded on that side.
type AmountRange struct {
	Min *float64
	Max *float64
}

func (a AmountRange) IsZero() bool {
	return a.Min == nil && a.Max == nil
}

const donationJoins = `
	FROM donations d
	LEFT JOIN participants p ON d.participant_id = p.id
`

const donationRowColumns = `d.id, d.participant_id, d.amount, d.donation_date, d.donor_name,
       d.donor_email, d.donor_phone, d.donation_type, d.created_at, d.updated_at,
       p.first_name, p.last_name`

// List searches donor and linked participant names, optionally constrained
// to an amount bracket. Rows without a donation date sort last either way.
func (r *DonationRepository) List(ctx context.Context, params params.QueryParams, amount AmountRange) (*entity.PaginatedDonations, error) {
	b := query.NewBuilder()
	b.Search(params.Search,
		"d.donor_name",
		"p.first_name",
		"p.last_name",
		query.FullName("p.first_name", "p.last_name"),
	)
	if amount.Min != nil {
		b.And("d.amount >= ?", *amount.Min)
	}
	if amount.Max != nil {
		b.And("d.amount < ?", *amount.Max)
	}

	countSQL, countArgs := b.Count(`SELECT COUNT(*) ` + donationJoins)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("DonationRepository:List - Count", err)
		return nil, err
	}

	orderBy := "ORDER BY d.donation_date DESC NULLS LAST"
	if params.DateSort == "asc" {
		orderBy = "ORDER BY d.donation_date ASC NULLS LAST"
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+donationRowColumns+donationJoins,
		orderBy,
		params.PageSize, params.Offset(),
	)

	var donations []entity.DonationRow
	if err := r.DB.SelectContext(ctx, &donations, dataSQL, dataArgs...); err != nil {
		logger.Error("DonationRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedDonations{
		Items:      donations,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *DonationRepository) GetByID(ctx context.Context, id int64) (*entity.DonationRow, error) {
	sql := `SELECT ` + donationRowColumns + donationJoins + ` WHERE d.id = $1`

	var d entity.DonationRow
	err := r.DB.GetContext(ctx, &d, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("DonationRepository:GetByID", err)
		return nil, err
	}
	return &d, nil
}

func (r *DonationRepository) Create(ctx context.Context, d *entity.Donation) (*entity.Donation, error) {
	sql := `
		INSERT INTO donations (participant_id, amount, donation_date, donor_name,
		                       donor_email, donor_phone, donation_type)
		VALUES ($1, $2, NOW(), $3, $4, $5, $6)
		RETURNING id, participant_id, amount, donation_date, donor_name, donor_email,
		          donor_phone, donation_type, created_at, updated_at
	`

	var created entity.Donation
	err := r.DB.GetContext(ctx, &created, sql,
		d.ParticipantID, d.Amount, d.DonorName, d.DonorEmail, d.DonorPhone, d.DonationType)
	if err != nil {
		logger.Error("DonationRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *DonationRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM donations WHERE id = $1`, id); err != nil {
		logger.Error("DonationRepository:Delete", err)
		return err
	}
	return nil
}
