package gateway

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// PostgresGateway implements QueryGateway over database/sql. Every column is
// scanned into an untyped value so the dual status encoding survives the trip
// unchanged.
type PostgresGateway struct {
	db *sql.DB
}

func NewPostgresGateway(db *sql.DB) *PostgresGateway {
	return &PostgresGateway{db: db}
}

func (g *PostgresGateway) Select(ctx context.Context, table string, opts ...QueryOption) ([]Row, error) {
	q := NewQuery(opts...)

	projection := "*"
	if len(q.Columns) > 0 {
		quoted := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			quoted[i] = pq.QuoteIdentifier(c)
		}
		projection = strings.Join(quoted, ", ")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", projection, pq.QuoteIdentifier(table))

	var args []interface{}
	argN := 1
	for i, f := range q.Filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		col := pq.QuoteIdentifier(f.Column)
		switch f.Op {
		case OpEq:
			fmt.Fprintf(&sb, "%s = $%d", col, argN)
			args = append(args, f.Value)
			argN++
		case OpNeq:
			fmt.Fprintf(&sb, "%s <> $%d", col, argN)
			args = append(args, f.Value)
			argN++
		case OpIn:
			fmt.Fprintf(&sb, "%s = ANY($%d)", col, argN)
			args = append(args, pq.Array(stringify(f.Values)))
			argN++
		case OpNotNull:
			fmt.Fprintf(&sb, "%s IS NOT NULL", col)
		}
	}

	if q.OrderBy != nil {
		dir := "ASC"
		if q.OrderBy.Descending {
			dir = "DESC"
		}
		fmt.Fprintf(&sb, " ORDER BY %s %s", pq.QuoteIdentifier(q.OrderBy.Column), dir)
	}

	rows, err := g.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}

	var out []Row
	for rows.Next() {
		values := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("select %s: scan: %w", table, err)
		}
		row := make(Row, len(cols))
		for i, c := range cols {
			v := values[i]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			row[c] = v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	return out, nil
}

// stringify renders membership values as text so pq.Array gets a uniform
// element type regardless of what the caller passed.
func stringify(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}
