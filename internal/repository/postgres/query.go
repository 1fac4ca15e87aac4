package postgres

import (
	"fmt"
	"strings"
)

// condBuilder accumulates AND-ed equality conditions with positional args.
// Mandatory scope predicates go in first; caller filters are appended and
// can only narrow the result set further.
type condBuilder struct {
	conds []string
	args  []any
}

// arg registers a value and returns its positional placeholder.
func (b *condBuilder) arg(value any) string {
	b.args = append(b.args, value)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *condBuilder) eq(column string, value any) {
	b.conds = append(b.conds, fmt.Sprintf("%s = %s", column, b.arg(value)))
}

// eqOrNull appends an equality check, or an IS NULL check when value is nil.
// Equality against SQL NULL matches nothing, which is never the intent.
func (b *condBuilder) eqOrNull(column string, value *int64) {
	if value == nil {
		b.conds = append(b.conds, column+" IS NULL")
		return
	}
	b.eq(column, *value)
}

func (b *condBuilder) lt(column string, value any) {
	b.conds = append(b.conds, fmt.Sprintf("%s < %s", column, b.arg(value)))
}

// cond returns the conditions joined, without the WHERE keyword.
func (b *condBuilder) cond() string {
	return strings.Join(b.conds, " AND ")
}

func (b *condBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// snapshot returns a copy of the accumulated args, for running a COUNT with
// the filter conditions before pagination predicates are added.
func (b *condBuilder) snapshot() (string, []any) {
	args := make([]any, len(b.args))
	copy(args, b.args)
	return b.where(), args
}
