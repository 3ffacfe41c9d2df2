package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/participant/entity"
)

type ParticipantRepository struct {
	DB database.IDatabase
}

func NewParticipantRepository(db database.IDatabase) *ParticipantRepository {
	return &ParticipantRepository{DB: db}
}

type ParticipantRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams) (*entity.PaginatedParticipants, error)
	GetByID(ctx context.Context, id int64) (*entity.Participant, error)
	GetMilestones(ctx context.Context, participantID int64) ([]entity.ParticipantMilestone, error)
	GetEvents(ctx context.Context, participantID int64) ([]entity.ParticipantEvent, error)
	Create(ctx context.Context, p *entity.Participant) (*entity.Participant, error)
	Update(ctx context.Context, p *entity.Participant) (bool, error)
	Delete(ctx context.Context, id int64) error
}

const participantColumns = `id, email, first_name, last_name, role, school_or_employer, phone,
       created_at, updated_at`

// List searches by first name, last name, the concatenated full name, or
// email. The count query shares the builder with the data query so the two
// predicates cannot diverge.
func (r *ParticipantRepository) List(ctx context.Context, params params.QueryParams) (*entity.PaginatedParticipants, error) {
	b := query.NewBuilder()
	b.Search(params.Search,
		"first_name",
		"last_name",
		"email",
		query.FullName("first_name", "last_name"),
	)

	countSQL, countArgs := b.Count(`SELECT COUNT(*) FROM participants`)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("ParticipantRepository:List - Count", err)
		return nil, err
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+participantColumns+` FROM participants`,
		"ORDER BY last_name ASC, first_name ASC",
		params.PageSize, params.Offset(),
	)

	var participants []entity.Participant
	if err := r.DB.SelectContext(ctx, &participants, dataSQL, dataArgs...); err != nil {
		logger.Error("ParticipantRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedParticipants{
		Items:      participants,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*entity.Participant, error) {
	sql := `SELECT ` + participantColumns + ` FROM participants WHERE id = $1`

	var p entity.Participant
	err := r.DB.GetContext(ctx, &p, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("ParticipantRepository:GetByID", err)
		return nil, err
	}
	return &p, nil
}

func (r *ParticipantRepository) GetMilestones(ctx context.Context, participantID int64) ([]entity.ParticipantMilestone, error) {
	sql := `
		SELECT m.id, m.milestone_date, m.notes,
		       mt.title AS type_title, mt.category AS type_category
		FROM milestones m
		LEFT JOIN milestone_types mt ON m.milestone_type_id = mt.id
		WHERE m.participant_id = $1
		ORDER BY m.milestone_date DESC
	`

	var milestones []entity.ParticipantMilestone
	if err := r.DB.SelectContext(ctx, &milestones, sql, participantID); err != nil {
		logger.Error("ParticipantRepository:GetMilestones", err)
		return nil, err
	}
	return milestones, nil
}

func (r *ParticipantRepository) GetEvents(ctx context.Context, participantID int64) ([]entity.ParticipantEvent, error) {
	sql := `
		SELECT e.name AS event_name, e.type AS event_type,
		       o.starts_at, reg.attendance_status
		FROM registrations reg
		JOIN event_occurrences o ON reg.event_occurrence_id = o.id
		JOIN events e ON o.event_id = e.id
		WHERE reg.participant_id = $1
		ORDER BY o.starts_at DESC
	`

	var events []entity.ParticipantEvent
	if err := r.DB.SelectContext(ctx, &events, sql, participantID); err != nil {
		logger.Error("ParticipantRepository:GetEvents", err)
		return nil, err
	}
	return events, nil
}

func (r *ParticipantRepository) Create(ctx context.Context, p *entity.Participant) (*entity.Participant, error) {
	sql := `
		INSERT INTO participants (email, first_name, last_name, role, school_or_employer, phone)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + participantColumns

	var created entity.Participant
	err := r.DB.GetContext(ctx, &created, sql,
		p.Email, p.FirstName, p.LastName, p.Role, p.SchoolOrEmployer, p.Phone)
	if err != nil {
		logger.Error("ParticipantRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

// Update reports whether a row was touched so the caller can distinguish
// not-found from success.
func (r *ParticipantRepository) Update(ctx context.Context, p *entity.Participant) (bool, error) {
	sql := `
		UPDATE participants
		SET first_name = $2, last_name = $3, role = $4,
		    school_or_employer = $5, phone = $6, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.DB.SQLx().ExecContext(ctx, sql,
		p.ID, p.FirstName, p.LastName, p.Role, p.SchoolOrEmployer, p.Phone)
	if err != nil {
		logger.Error("ParticipantRepository:Update", err)
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM participants WHERE id = $1`, id); err != nil {
		logger.Error("ParticipantRepository:Delete", err)
		return err
	}
	return nil
}
