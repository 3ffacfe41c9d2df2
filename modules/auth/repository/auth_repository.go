package repository

import (
	"context"

	"ella-rises-admin/core/database"
	"ella-rises-admin/core/logger"
	"ella-rises-admin/modules/auth/entity"
)

// AuthRepository handles the account reads and writes authentication needs.
type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	StampLastLogin(ctx context.Context, userID int64) error
}

const userColumns = `id, username, email, password_hash, first_name, last_name,
       role, status, last_login, created_at, updated_at`

func (r *AuthRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, username)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByUsername", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if database.IsNoRows(err) {
			return nil, nil
		}
		logger.Error("AuthRepository:GetUserByEmail", err)
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (username, email, password_hash, first_name, last_name, role, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Username, user.Email, user.PasswordHash,
		user.FirstName, user.LastName, user.Role, user.Status)
	if err != nil {
		logger.Error("AuthRepository:CreateUser", err)
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) StampLastLogin(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_login = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, userID); err != nil {
		logger.Error("AuthRepository:StampLastLogin", err)
		return err
	}
	return nil
}
