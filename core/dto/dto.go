package dto

type Pagination[T any] struct {
	Items      []T    `json:"items"`
	TotalItems int    `json:"total_items"`
	TotalPages int    `json:"total_pages"`
	PageNumber int    `json:"page_number"`
	PageSize   int    `json:"page_size"`
	Search     string `json:"search,omitempty"`
	DateSort   string `json:"date_sort,omitempty"`
}

// TotalPages computes ceil(totalItems / pageSize).
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}
