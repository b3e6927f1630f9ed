package sqlite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/msomdec/userboard/internal/domain"
)

type colKind int

const (
	colText colKind = iota
	colInt
	colBool
)

// column maps a wire-format field name onto its SQL column.
type column struct {
	name string
	kind colKind
}

// listClauses turns ListOptions into a WHERE/ORDER/LIMIT suffix and
// its arguments. Filters on fields outside the column map and filter
// values that do not parse for the column type are rejected with
// ErrInvalidInput, which the store surfaces as a 400.
func listClauses(cols map[string]column, opts domain.ListOptions) (string, []any, error) {
	var conds []string
	var args []any

	for _, f := range opts.Filters {
		c, ok := cols[f.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: unknown filter field %q", domain.ErrInvalidInput, f.Field)
		}
		switch c.kind {
		case colInt:
			n, err := strconv.ParseInt(f.Value, 10, 64)
			if err != nil {
				return "", nil, fmt.Errorf("%w: field %q wants a number", domain.ErrInvalidInput, f.Field)
			}
			conds = append(conds, c.name+" = ?")
			args = append(args, n)
		case colBool:
			b, err := strconv.ParseBool(f.Value)
			if err != nil {
				return "", nil, fmt.Errorf("%w: field %q wants a boolean", domain.ErrInvalidInput, f.Field)
			}
			conds = append(conds, c.name+" = ?")
			args = append(args, b)
		default:
			if f.Exact {
				conds = append(conds, c.name+" = ?")
				args = append(args, f.Value)
			} else {
				conds = append(conds, "LOWER("+c.name+") LIKE '%' || LOWER(?) || '%' ESCAPE '\\'")
				args = append(args, escapeLike(f.Value))
			}
		}
	}

	var b strings.Builder
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}
	b.WriteString(" ORDER BY id")

	switch {
	case opts.Limit > 0:
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, opts.Limit, max(opts.Start, 0))
	case opts.Start > 0:
		// SQLite needs a LIMIT clause to use OFFSET; -1 means unbounded.
		b.WriteString(" LIMIT -1 OFFSET ?")
		args = append(args, opts.Start)
	}

	return b.String(), args, nil
}

// escapeLike neutralizes LIKE wildcards in a user-supplied value so
// it only ever matches literally.
func escapeLike(v string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(v)
}
