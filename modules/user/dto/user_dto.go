package dto

import (
	"time"

	"ella-rises-admin/core/dto"
)

type CreateUserRequest struct {
	Username  string `form:"username" json:"username" validate:"required,min=3"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Password  string `form:"password" json:"password" validate:"required,min=6"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Role      string `form:"role" json:"role"`
}

type UpdateUserRequest struct {
	Username  string `form:"username" json:"username" validate:"required,min=3"`
	Email     string `form:"email" json:"email" validate:"required,email"`
	Password  string `form:"password" json:"password"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Role      string `form:"role" json:"role"`
	Status    string `form:"status" json:"status"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	LastLogin string    `json:"last_login,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// UserList echoes the active role filter back for the filter control.
type UserList struct {
	dto.Pagination[UserResponse]
	Role string `json:"role,omitempty"`
}
