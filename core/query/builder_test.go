package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyBuilderHasNoWhereClause(t *testing.T) {
	b := NewBuilder()

	where, args := b.WhereClause()

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestSearchBuildsCaseInsensitiveOrGroup(t *testing.T) {
	b := NewBuilder()
	b.Search("maria", "first_name", "last_name")

	where, args := b.WhereClause()

	assert.Equal(t, " WHERE (first_name ILIKE $1 OR last_name ILIKE $2)", where)
	assert.Equal(t, []any{"%maria%", "%maria%"}, args)
}

func TestSearchWithEmptyTermIsNoOp(t *testing.T) {
	b := NewBuilder()
	b.Search("", "first_name", "last_name")

	where, args := b.WhereClause()

	assert.Equal(t, "", where)
	assert.Empty(t, args)
}

func TestAndCombinesWithSearch(t *testing.T) {
	b := NewBuilder()
	b.Search("rise", "name")
	b.And("type = ?", "workshop")

	where, args := b.WhereClause()

	assert.Equal(t, " WHERE (name ILIKE $1) AND type = $2", where)
	assert.Equal(t, []any{"%rise%", "workshop"}, args)
}

func TestFullNameExpressionIsNullSafe(t *testing.T) {
	expr := FullName("first_name", "last_name")

	assert.Equal(t, "COALESCE(first_name, '') || ' ' || COALESCE(last_name, '')", expr)
}

// The count and data queries must render the identical predicate from one
// builder; a divergence here breaks pagination totals.
func TestCountAndPaginatedShareThePredicate(t *testing.T) {
	b := NewBuilder()
	b.Search("maria", "first_name")
	b.And("role = ?", "mentor")

	countSQL, countArgs := b.Count(`SELECT COUNT(*) FROM participants`)
	dataSQL, dataArgs := b.Paginated(`SELECT id FROM participants`, "ORDER BY id ASC", 15, 30)

	assert.Equal(t, `SELECT COUNT(*) FROM participants WHERE (first_name ILIKE $1) AND role = $2`, countSQL)
	assert.Equal(t, []any{"%maria%", "mentor"}, countArgs)

	assert.Equal(t, `SELECT id FROM participants WHERE (first_name ILIKE $1) AND role = $2 ORDER BY id ASC LIMIT $3 OFFSET $4`, dataSQL)
	assert.Equal(t, []any{"%maria%", "mentor", 15, 30}, dataArgs)
}

func TestPaginatedWithoutConditions(t *testing.T) {
	b := NewBuilder()

	dataSQL, dataArgs := b.Paginated(`SELECT id FROM events`, "ORDER BY name ASC", 15, 0)

	assert.Equal(t, `SELECT id FROM events ORDER BY name ASC LIMIT $1 OFFSET $2`, dataSQL)
	assert.Equal(t, []any{15, 0}, dataArgs)
}
