package params

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// QueryParams holds the normalized list-query parameters shared by every
// resource listing: free-text search, page number and date sort direction.
// Resource-specific filters (amountFilter, type, role) are read by the
// individual controllers.
type QueryParams struct {
	Search     string
	PageNumber int
	PageSize   int
	DateSort   string
}

// NewQueryParams reads search/page/dateSort from the request. Search is
// trimmed; a missing, non-numeric or non-positive page becomes page 1; any
// dateSort other than "asc" is normalized to "desc".
func NewQueryParams(c echo.Context, pageSize int) *QueryParams {
	return &QueryParams{
		Search:     strings.TrimSpace(c.QueryParam("search")),
		PageNumber: ParsePage(c.QueryParam("page")),
		PageSize:   pageSize,
		DateSort:   NormalizeSort(c.QueryParam("dateSort")),
	}
}

func (p *QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func NormalizeSort(raw string) string {
	if raw == "asc" {
		return "asc"
	}
	return "desc"
}
