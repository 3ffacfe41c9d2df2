package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/modules/dashboard/entity"
)

// Dashboard listings cap at the 50 most recent rows.
const recentLimit = 50

type DashboardRepository struct {
	DB database.IDatabase
}

func NewDashboardRepository(db database.IDatabase) *DashboardRepository {
	return &DashboardRepository{DB: db}
}

type DashboardRepositoryInterface interface {
	GetTotals(ctx context.Context) (*entity.Totals, error)
	RecentParticipants(ctx context.Context) ([]entity.RecentParticipant, error)
	RecentMilestones(ctx context.Context) ([]entity.RecentMilestone, error)
	RecentSurveys(ctx context.Context) ([]entity.RecentSurvey, error)
	RecentDonations(ctx context.Context) ([]entity.RecentDonation, error)
}

func (r *DashboardRepository) GetTotals(ctx context.Context) (*entity.Totals, error) {
	sql := `
		SELECT
			(SELECT COUNT(*) FROM participants)              AS participants,
			(SELECT COUNT(*) FROM events)                    AS events,
			(SELECT COUNT(*) FROM surveys)                   AS surveys,
			(SELECT COUNT(*) FROM milestones)                AS milestones,
			(SELECT COALESCE(SUM(amount), 0) FROM donations) AS donation_sum
	`

	var totals entity.Totals
	if err := r.DB.GetContext(ctx, &totals, sql); err != nil {
		logger.Error("DashboardRepository:GetTotals", err)
		return nil, err
	}
	return &totals, nil
}

func (r *DashboardRepository) RecentParticipants(ctx context.Context) ([]entity.RecentParticipant, error) {
	sql := `
		SELECT id, first_name, last_name, email, created_at
		FROM participants
		ORDER BY created_at DESC
		LIMIT $1
	`

	var rows []entity.RecentParticipant
	if err := r.DB.SelectContext(ctx, &rows, sql, recentLimit); err != nil {
		logger.Error("DashboardRepository:RecentParticipants", err)
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepository) RecentMilestones(ctx context.Context) ([]entity.RecentMilestone, error) {
	sql := `
		SELECT m.id, p.first_name, p.last_name, mt.title AS type_title, m.milestone_date
		FROM milestones m
		LEFT JOIN participants p ON m.participant_id = p.id
		LEFT JOIN milestone_types mt ON m.milestone_type_id = mt.id
		ORDER BY m.milestone_date DESC
		LIMIT $1
	`

	var rows []entity.RecentMilestone
	if err := r.DB.SelectContext(ctx, &rows, sql, recentLimit); err != nil {
		logger.Error("DashboardRepository:RecentMilestones", err)
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepository) RecentSurveys(ctx context.Context) ([]entity.RecentSurvey, error) {
	sql := `
		SELECT s.id, p.first_name, p.last_name, e.name AS event_name,
		       s.satisfaction_score, s.submission_date
		FROM surveys s
		LEFT JOIN registrations reg ON s.registration_id = reg.id
		LEFT JOIN participants p ON reg.participant_id = p.id
		LEFT JOIN event_occurrences o ON reg.event_occurrence_id = o.id
		LEFT JOIN events e ON o.event_id = e.id
		ORDER BY s.submission_date DESC
		LIMIT $1
	`

	var rows []entity.RecentSurvey
	if err := r.DB.SelectContext(ctx, &rows, sql, recentLimit); err != nil {
		logger.Error("DashboardRepository:RecentSurveys", err)
		return nil, err
	}
	return rows, nil
}

func (r *DashboardRepository) RecentDonations(ctx context.Context) ([]entity.RecentDonation, error) {
	sql := `
		SELECT id, donor_name, amount, donation_date
		FROM donations
		ORDER BY donation_date DESC NULLS LAST
		LIMIT $1
	`

	var rows []entity.RecentDonation
	if err := r.DB.SelectContext(ctx, &rows, sql, recentLimit); err != nil {
		logger.Error("DashboardRepository:RecentDonations", err)
		return nil, err
	}
	return rows, nil
}
