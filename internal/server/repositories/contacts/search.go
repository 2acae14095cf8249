package contacts

import (
	"fmt"
	"strings"
)

// predicate is a single WHERE condition with its bind arguments. The expr
// uses '?' markers that are renumbered into $n placeholders at build time,
// which keeps the decision table (which filters are present) separate from
// placeholder bookkeeping.
type predicate struct {
	expr string
	args []any
}

// whereBuilder accumulates predicates and folds them into one conjunction.
type whereBuilder struct {
	preds []predicate
}

func (b *whereBuilder) add(expr string, args ...any) {
	b.preds = append(b.preds, predicate{expr: expr, args: args})
}

// build returns the WHERE clause body (predicates joined with AND) and the
// flattened argument list. Placeholders are numbered from 1; callers
// appending LIMIT/OFFSET continue from len(args)+1.
func (b *whereBuilder) build() (string, []any) {
	parts := make([]string, 0, len(b.preds))
	var args []any
	n := 0
	for _, p := range b.preds {
		expr := p.expr
		for range p.args {
			n++
			expr = strings.Replace(expr, "?", fmt.Sprintf("$%d", n), 1)
		}
		parts = append(parts, expr)
		args = append(args, p.args...)
	}
	return strings.Join(parts, " AND "), args
}

// searchWhere assembles the conjunction for a contact search: ownership is
// always present; each supplied filter ANDs in a contains-match, with name
// checked against either name column. Matching is case-insensitive.
func searchWhere(username string, f Filter) (string, []any) {
	b := &whereBuilder{}
	b.add("username = ?", username)
	if f.Name != "" {
		b.add("(first_name ILIKE ? OR last_name ILIKE ?)", contains(f.Name), contains(f.Name))
	}
	if f.Email != "" {
		b.add("email ILIKE ?", contains(f.Email))
	}
	if f.Phone != "" {
		b.add("phone ILIKE ?", contains(f.Phone))
	}
	return b.build()
}

func contains(s string) string {
	return "%" + s + "%"
}
