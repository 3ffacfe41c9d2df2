package mapper

import (
	"ella-rises-admin/core/dto"
	"ella-rises-admin/core/utils"
	userdto "ella-rises-admin/modules/user/dto"
	"ella-rises-admin/modules/user/entity"
)

// ToUserResponse serializes an account. The password hash never leaves the
// entity.
func ToUserResponse(u *entity.User) *userdto.UserResponse {
	resp := &userdto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName.String,
		LastName:  u.LastName.String,
		FullName:  utils.FullName(u.FirstName.String, u.LastName.String),
		Role:      u.Role,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
	if u.LastLogin.Valid {
		resp.LastLogin = u.LastLogin.Time.Format("2006-01-02 15:04")
	}
	return resp
}

func ToUserList(page *entity.PaginatedUsers, search, dateSort, role string) *userdto.UserList {
	items := make([]userdto.UserResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToUserResponse(&page.Items[i])
	}
	return &userdto.UserList{
		Pagination: dto.Pagination[userdto.UserResponse]{
			Items:      items,
			TotalItems: page.TotalItems,
			TotalPages: dto.TotalPages(page.TotalItems, page.PageSize),
			PageNumber: page.PageNumber,
			PageSize:   page.PageSize,
			Search:     search,
			DateSort:   dateSort,
		},
		Role: role,
	}
}
