package service

import (
	"context"
	"strings"

	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/utils"
	dashboarddto "ella-rises-admin/modules/dashboard/dto"
	"ella-rises-admin/modules/dashboard/repository"
)

type DashboardService struct {
	repo repository.DashboardRepositoryInterface
}

func NewDashboardService(repo repository.DashboardRepositoryInterface) *DashboardService {
	return &DashboardService{repo: repo}
}

type DashboardServiceInterface interface {
	Get(ctx context.Context) (*dashboarddto.Dashboard, *errors.AppError)
}

// Get assembles the overview. The totals are required; a failing recent
// listing degrades to an empty section rather than blanking the whole page.
func (service *DashboardService) Get(ctx context.Context) (*dashboarddto.Dashboard, *errors.AppError) {
	totals, err := service.repo.GetTotals(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Unable to load the dashboard", err)
	}

	dashboard := &dashboarddto.Dashboard{
		Totals: dashboarddto.Totals{
			Participants: totals.Participants,
			Events:       totals.Events,
			Surveys:      totals.Surveys,
			Milestones:   totals.Milestones,
			DonationSum:  totals.DonationSum,
		},
		Participants: []dashboarddto.RecentParticipant{},
		Milestones:   []dashboarddto.RecentMilestone{},
		Surveys:      []dashboarddto.RecentSurvey{},
		Donations:    []dashboarddto.RecentDonation{},
	}

	if rows, err := service.repo.RecentParticipants(ctx); err != nil {
		logger.Error("DashboardService:Get:RecentParticipants", err)
	} else {
		for _, p := range rows {
			dashboard.Participants = append(dashboard.Participants, dashboarddto.RecentParticipant{
				ID:       p.ID,
				FullName: utils.FullName(p.FirstName, p.LastName),
				Email:    p.Email,
				JoinedOn: p.CreatedAt.Format("2006-01-02"),
			})
		}
	}

	if rows, err := service.repo.RecentMilestones(ctx); err != nil {
		logger.Error("DashboardService:Get:RecentMilestones", err)
	} else {
		for _, m := range rows {
			dashboard.Milestones = append(dashboard.Milestones, dashboarddto.RecentMilestone{
				ID:              m.ID,
				ParticipantName: strings.TrimSpace(m.FirstName.String + " " + m.LastName.String),
				Title:           m.TypeTitle.String,
				Date:            m.MilestoneDate.Format("2006-01-02"),
			})
		}
	}

	if rows, err := service.repo.RecentSurveys(ctx); err != nil {
		logger.Error("DashboardService:Get:RecentSurveys", err)
	} else {
		for _, s := range rows {
			recent := dashboarddto.RecentSurvey{
				ID:              s.ID,
				ParticipantName: strings.TrimSpace(s.FirstName.String + " " + s.LastName.String),
				EventName:       s.EventName.String,
				SubmittedOn:     s.SubmissionDate.Format("2006-01-02"),
			}
			if s.SatisfactionScore.Valid {
				score := s.SatisfactionScore.Int64
				recent.SatisfactionScore = &score
			}
			dashboard.Surveys = append(dashboard.Surveys, recent)
		}
	}

	if rows, err := service.repo.RecentDonations(ctx); err != nil {
		logger.Error("DashboardService:Get:RecentDonations", err)
	} else {
		for _, d := range rows {
			recent := dashboarddto.RecentDonation{
				ID:        d.ID,
				DonorName: d.DonorName,
				Amount:    d.Amount,
			}
			if d.DonationDate.Valid {
				recent.Date = d.DonationDate.Time.Format("2006-01-02")
			}
			dashboard.Donations = append(dashboard.Donations, recent)
		}
	}

	return dashboard, nil
}
