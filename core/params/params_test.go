package params

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newContext(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestNewQueryParamsDefaults(t *testing.T) {
	c := newContext(t, "/participants")

	p := NewQueryParams(c, 15)

	assert.Equal(t, "", p.Search)
	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 15, p.PageSize)
	assert.Equal(t, "desc", p.DateSort)
	assert.Equal(t, 0, p.Offset())
}

func TestNewQueryParamsTrimsSearch(t *testing.T) {
	c := newContext(t, "/participants?search=++maria++")

	p := NewQueryParams(c, 15)

	assert.Equal(t, "maria", p.Search)
}

func TestParsePage(t *testing.T) {
	assert.Equal(t, 3, ParsePage("3"))
	assert.Equal(t, 1, ParsePage(""))
	assert.Equal(t, 1, ParsePage("abc"))
	assert.Equal(t, 1, ParsePage("0"))
	assert.Equal(t, 1, ParsePage("-2"))
}

func TestNormalizeSort(t *testing.T) {
	assert.Equal(t, "asc", NormalizeSort("asc"))
	assert.Equal(t, "desc", NormalizeSort("desc"))
	assert.Equal(t, "desc", NormalizeSort(""))
	assert.Equal(t, "desc", NormalizeSort("ASC"))
	assert.Equal(t, "desc", NormalizeSort("sideways"))
}

func TestOffset(t *testing.T) {
	p := QueryParams{PageNumber: 4, PageSize: 20}
	assert.Equal(t, 60, p.Offset())
}
