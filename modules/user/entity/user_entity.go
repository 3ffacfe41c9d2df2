package entity

import (
	"database/sql"

	"ella-rises-admin/core/entity"
)

type User struct {
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	FirstName    sql.NullString `db:"first_name"`
	LastName     sql.NullString `db:"last_name"`
	Role         string         `db:"role"`
	Status       string         `db:"status"`
	LastLogin    sql.NullTime   `db:"last_login"`

	entity.BaseEntity
}

type PaginatedUsers = entity.Pagination[User]
