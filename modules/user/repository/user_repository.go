package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/query"
	"ella-rises-admin/modules/user/entity"
)

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	List(ctx context.Context, params params.QueryParams, role string) (*entity.PaginatedUsers, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	Create(ctx context.Context, u *entity.User) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) (bool, error)
	Delete(ctx context.Context, id int64) error
}

const userColumns = `id, username, email, password_hash, first_name, last_name, role, status,
       last_login, created_at, updated_at`

func (r *UserRepository) List(ctx context.Context, params params.QueryParams, role string) (*entity.PaginatedUsers, error) {
	b := query.NewBuilder()
	b.Search(params.Search,
		"username",
		"email",
		"first_name",
		"last_name",
		query.FullName("first_name", "last_name"),
	)
	if role != "" {
		b.And("role = ?", role)
	}

	countSQL, countArgs := b.Count(`SELECT COUNT(*) FROM users`)
	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, countSQL, countArgs...); err != nil {
		logger.Error("UserRepository:List - Count", err)
		return nil, err
	}

	orderBy := "ORDER BY created_at DESC"
	if params.DateSort == "asc" {
		orderBy = "ORDER BY created_at ASC"
	}

	dataSQL, dataArgs := b.Paginated(
		`SELECT `+userColumns+` FROM users`,
		orderBy,
		params.PageSize, params.Offset(),
	)

	var users []entity.User
	if err := r.DB.SelectContext(ctx, &users, dataSQL, dataArgs...); err != nil {
		logger.Error("UserRepository:List - Select", err)
		return nil, err
	}

	return &entity.PaginatedUsers{
		Items:      users,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var u entity.User
	err := r.DB.GetContext(ctx, &u, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", err)
		return nil, err
	}
	return &u, nil
}

// UsernameTaken reports whether another account already uses the username.
// excludeID skips the account being edited; pass 0 on create.
func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int
	sql := `SELECT COUNT(*) FROM users WHERE username = $1 AND id <> $2`
	if err := r.DB.GetContext(ctx, &count, sql, username, excludeID); err != nil {
		logger.Error("UserRepository:UsernameTaken", err)
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) (*entity.User, error) {
	sql := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, sql,
		u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.Status)
	if err != nil {
		logger.Error("UserRepository:Create", err)
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) (bool, error) {
	sql := `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, first_name = $5,
		    last_name = $6, role = $7, status = $8, updated_at = NOW()
		WHERE id = $1
	`
	res, err := r.DB.SQLx().ExecContext(ctx, sql,
		u.ID, u.Username, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Role, u.Status)
	if err != nil {
		logger.Error("UserRepository:Update", err)
		return false, err
	}
	affected, _ := res.RowsAffected()
	return affected > 0, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	if err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		logger.Error("UserRepository:Delete", err)
		return err
	}
	return nil
}
