package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/milestone/entity"
)

type MilestoneRepository struct {
	DB database.IDatabase
}

func NewMilestoneRepository(db database.IDatabase) *MilestoneRepository {
	return &MilestoneRepository{DB: db}
}

type MilestoneRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams, typeTitle string) (*entity.PaginatedMilestones, error)
	Create(ctx context.Context, m *entity.Milestone) (*entity.Milestone, error)
	Delete(ctx context.Context, id int64) error
	ListTypes(ctx context.Context) ([]entity.MilestoneType, error)
	CreateType(ctx context.Context, t *entity.MilestoneType) (*entity.MilestoneType, error)
	DeleteType(ctx context.Context, id int64) error
}

const milestoneJoins = `
	FROM milestones m
	LEFT JOIN participants p ON m.participant_id = p.id
	LEFT JOIN milestone_types mt ON m.milestone_type_id = mt.id
`

const milestoneRowColumns = `m.id, m.participant_id, m.milestone_type_id, m.milestone_date,
       m.notes, m.created_at, m.updated_at,
       p.first_name, p.last_name, mt.title AS type_title, mt.category AS type_category`

// List searches across participant names and the type title, with an
// optional exact filter on the type title.
func (r *MilestoneRepository) List(ctx context.Context, params params.QueryParams, typeTitle string) (*entity.PaginatedMilestones, error) {
	b := query.NewBuilder()
	b.Search(params.Search,
		"p.first_name",
		"p.last_name",
		"mt.title",
		query.FullName("p.first_name", "p.last_name"),
	)
	if typeTitle != "" {
		b.And("mt.title = ?", typeTitle)
	}

	countSQL, countArgs := b.Count(`SELECT COUNT(*) ` + milestoneJoins)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("MilestoneRepository:List - Count", err)
		return nil, err
	}

	orderBy := "ORDER BY m.milestone_date DESC"
	if params.DateSort == "asc" {
		orderBy = "ORDER BY m.milestone_date ASC"
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+milestoneRowColumns+milestoneJoins,
		orderBy,
		params.PageSize, params.Offset(),
	)

	var milestones []entity.MilestoneRow
	if err := r.DB.SelectContext(ctx, &milestones, dataSQL, dataArgs...); err != nil {
		logger.Error("MilestoneRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedMilestones{
		Items:      milestones,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *MilestoneRepository) Create(ctx context.Context, m *entity.Milestone) (*entity.Milestone, error) {
	sql := `
		INSERT INTO milestones (participant_id, milestone_type_id, milestone_date, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, participant_id, milestone_type_id, milestone_date, notes,
		          created_at, updated_at
	`

	var created entity.Milestone
	err := r.DB.GetContext(ctx, &created, sql,
		m.ParticipantID, m.MilestoneTypeID, m.MilestoneDate, m.Notes)
	if err != nil {
		logger.Error("MilestoneRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *MilestoneRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM milestones WHERE id = $1`, id); err != nil {
		logger.Error("MilestoneRepository:Delete", err)
		return err
	}
	return nil
}

func (r *MilestoneRepository) ListTypes(ctx context.Context) ([]entity.MilestoneType, error) {
	sql := `SELECT id, title, category, created_at, updated_at
		FROM milestone_types ORDER BY title ASC`

	var types []entity.MilestoneType
	if err := r.DB.SelectContext(ctx, &types, sql); err != nil {
		logger.Error("MilestoneRepository:ListTypes", err)
		return nil, err
	}
	return types, nil
}

func (r *MilestoneRepository) CreateType(ctx context.Context, t *entity.MilestoneType) (*entity.MilestoneType, error) {
	sql := `
		INSERT INTO milestone_types (title, category)
		VALUES ($1, $2)
		RETURNING id, title, category, created_at, updated_at
	`

	var created entity.MilestoneType
	err := r.DB.GetContext(ctx, &created, sql, t.Title, t.Category)
	if err != nil {
		logger.Error("MilestoneRepository:CreateType", err)
		return nil, err
	}
	return &created, nil
}

func (r *MilestoneRepository) DeleteType(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM milestone_types WHERE id = $1`, id); err != nil {
		logger.Error("MilestoneRepository:DeleteType", err)
		return err
	}
	return nil
}
