package entity

import "time"

// BaseEntity carries the columns shared by every table: an auto-incrementing
// surrogate key and the bookkeeping timestamps.
type BaseEntity struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Pagination[T any] struct {
	Items      []T
	TotalItems int
	PageNumber int
	PageSize   int
}
