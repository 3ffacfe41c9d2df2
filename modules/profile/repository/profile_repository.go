package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/modules/user/entity"
)

type ProfileRepository struct {
	DB database.IDatabase
}

func NewProfileRepository(db database.IDatabase) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

type ProfileRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error)
	UpdateAccount(ctx context.Context, id int64, username, passwordHash string) error
}

func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	sql := `SELECT id, username, email, password_hash, first_name, last_name, role, status,
	       last_login, created_at, updated_at
		FROM users WHERE id = $1`

	var u entity.User
	err := r.DB.GetContext(ctx, &u, sql, id)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("ProfileRepository:GetByID", err)
		return nil, err
	}
	return &u, nil
}

func (r *ProfileRepository) UsernameTaken(ctx context.Context, username string, excludeID int64) (bool, error) {
	var count int
	sql := `SELECT COUNT(*) FROM users WHERE username = $1 AND id <> $2`
	if err := r.DB.GetContext(ctx, &count, sql, username, excludeID); err != nil {
		logger.Error("ProfileRepository:UsernameTaken", err)
		return false, err
	}
	return count > 0, nil
}

// UpdateAccount writes the username and, when passwordHash is non-empty, the
// new credential.
func (r *ProfileRepository) UpdateAccount(ctx context.Context, id int64, username, passwordHash string) error {
	sql := `UPDATE users SET username = $2, updated_at = NOW() WHERE id = $1`
	args := []any{id, username}
	if passwordHash != "" {
		sql = `UPDATE users SET username = $2, password_hash = $3, updated_at = NOW() WHERE id = $1`
		args = append(args, passwordHash)
	}
	if err := r.DB.ExecContext(ctx, sql, args...); err != nil {
		logger.Error("ProfileRepository:UpdateAccount", err)
		return err
	}
	return nil
}
