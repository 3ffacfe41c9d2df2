package query

import (
	"fmt"
	"strings"
)

// Builder accumulates WHERE conditions for a list query. The same builder
// renders both the COUNT query and the paginated data query, so the two can
// never disagree on the filter predicate.
//
// Conditions are written with ? placeholders; rendering rewrites them to
// Postgres $n positional parameters in order.
type Builder struct {
	conds []string
	args  []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

// And appends one condition. Multiple conditions are combined with AND.
func (b *Builder) And(cond string, args ...any) *Builder {
	b.conds = append(b.conds, cond)
	b.args = append(b.args, args...)
	return b
}

// Search appends a case-insensitive substring match against the given column
// expressions, OR'd together. An empty term (after the caller's trimming) is
// a no-op. Expressions may be plain columns or raw SQL such as the COALESCE'd
// first+last name concatenation.
func (b *Builder) Search(term string, exprs ...string) *Builder {
	if term == "" || len(exprs) == 0 {
		return b
	}
	parts := make([]string, len(exprs))
	for i, expr := range exprs {
		parts[i] = expr + " ILIKE ?"
		b.args = append(b.args, "%"+term+"%")
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
	return b
}

// FullName returns the search expression for a concatenated first+last name,
// null-safe on both sides.
func FullName(firstCol, lastCol string) string {
	return fmt.Sprintf("COALESCE(%s, '') || ' ' || COALESCE(%s, '')", firstCol, lastCol)
}

// WhereClause renders the accumulated conditions as a " WHERE ..." fragment
// (empty string when there are no conditions) with numbered placeholders, and
// returns the matching argument slice.
func (b *Builder) WhereClause() (string, []any) {
	if len(b.conds) == 0 {
		return "", nil
	}
	joined := strings.Join(b.conds, " AND ")
	var out strings.Builder
	n := 0
	for _, ch := range joined {
		if ch == '?' {
			n++
			out.WriteString(fmt.Sprintf("$%d", n))
			continue
		}
		out.WriteRune(ch)
	}
	return " WHERE " + out.String(), append([]any(nil), b.args...)
}

// Paginated renders the data query: base select + where + the caller's ORDER
// BY + LIMIT/OFFSET, with the limit and offset appended to the args.
func (b *Builder) Paginated(selectSQL, orderBy string, limit, offset int) (string, []any) {
	where, args := b.WhereClause()
	n := len(args)
	sql := selectSQL + where + " " + orderBy +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2)
	return sql, append(args, limit, offset)
}

// Count renders the count query over the same predicate. countSQL is the
// "SELECT COUNT(*) FROM ..." prefix including any joins the data query uses.
func (b *Builder) Count(countSQL string) (string, []any) {
	where, args := b.WhereClause()
	return countSQL + where, args
}
