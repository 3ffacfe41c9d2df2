package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/survey/entity"
)

type SurveyRepository struct {
	DB database.IDatabase
}

func NewSurveyRepository(db database.IDatabase) *SurveyRepository {
	return &SurveyRepository{DB: db}
}

type SurveyRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedSurveys, error)
	GetByID(ctx context.Context, id int64) (*entity.SurveyRow, error)
	Create(ctx context.Context, s *entity.Survey) (*entity.Survey, error)
	Delete(ctx context.Context, id int64) error
}

// Joins are LEFT end to end so surveys with a missing or pruned registration
// chain still list.
const surveyJoins = `
	FROM surveys s
	LEFT JOIN registrations reg ON s.registration_id = reg.id
	LEFT JOIN participants p ON reg.participant_id = p.id
	LEFT JOIN event_occurrences o ON reg.event_occurrence_id = o.id
	LEFT JOIN events e ON o.event_id = e.id
`

const surveyRowColumns = `s.id, s.registration_id, s.submission_date, s.satisfaction_score,
       s.comments, s.created_at, s.updated_at,
       p.first_name, p.last_name, e.name AS event_name, o.starts_at`

func (r *SurveyRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedSurveys, error) {
	b := query.NewBuilder()
	b.Search(params.Search,
		"p.first_name",
		"p.last_name",
		"e.name",
		query.FullName("p.first_name", "p.last_name"),
	)

	countSQL, countArgs := b.Count(`SELECT COUNT(*) ` + surveyJoins)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("SurveyRepository:List - Count", err)
		return nil, err
	}

	orderBy := "ORDER BY s.submission_date DESC"
	if params.DateSort == "asc" {
		orderBy = "ORDER BY s.submission_date ASC"
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+surveyRowColumns+surveyJoins,
		orderBy,
		params.PageSize, params.Offset(),
	)

	var surveys []entity.SurveyRow
	if err := r.DB.SelectContext(ctx, &surveys, dataSQL, dataArgs...); err != nil {
		logger.Error("SurveyRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedSurveys{
		Items:      surveys,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *SurveyRepository) GetByID(ctx context.Context, id int64) (*entity.SurveyRow, error) {
	sql := `SELECT ` + surveyRowColumns + surveyJoins + ` WHERE s.id = $1`

	var s entity.SurveyRow
	err := r.DB.GetContext(ctx, &s, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("SurveyRepository:GetByID", err)
		return nil, err
	}
	return &s, nil
}

func (r *SurveyRepository) Create(ctx context.Context, s *entity.Survey) (*entity.Survey, error) {
	sql := `
		INSERT INTO surveys (registration_id, satisfaction_score, comments)
		VALUES ($1, $2, $3)
		RETURNING id, registration_id, submission_date, satisfaction_score, comments,
		          created_at, updated_at
	`

	var created entity.Survey
	err := r.DB.GetContext(ctx, &created, sql,
		s.RegistrationID, s.SatisfactionScore, s.Comments)
	if err != nil {
		logger.Error("SurveyRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *SurveyRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM surveys WHERE id = $1`, id); err != nil {
		logger.Error("SurveyRepository:Delete", err)
		return err
	}
	return nil
}
