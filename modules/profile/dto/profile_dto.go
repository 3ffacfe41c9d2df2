package dto

type ProfileResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role"`
	LastLogin string `json:"last_login,omitempty"`
}

type UpdateProfileRequest struct {
	Username        string `form:"username" json:"username" validate:"required,min=3"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}
