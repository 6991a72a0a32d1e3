// Package gateway exposes the portal's row-retrieval API: filtered, ordered
// reads by table name returning loosely typed rows. Readers that must not
// assume how a column was encoded (the statistics aggregator in particular)
// depend on this interface instead of the concrete repositories.
package gateway

import "context"

// Op is a filter operator.
type Op int

const (
	OpEq Op = iota
	OpNeq
	OpIn
	OpNotNull
)

type Filter struct {
	Column string
	Op     Op
	Value  any   // OpEq, OpNeq
	Values []any // OpIn
}

type Order struct {
	Column     string
	Descending bool
}

// Query is the assembled request an implementation executes. An empty
// Columns slice means all columns.
type Query struct {
	Columns []string
	Filters []Filter
	OrderBy *Order
}

type QueryOption func(*Query)

// NewQuery applies opts to a zero Query. Implementations call this once per
// Select.
func NewQuery(opts ...QueryOption) Query {
	var q Query
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

func Columns(cols ...string) QueryOption {
	return func(q *Query) { q.Columns = append(q.Columns, cols...) }
}

func Eq(column string, value any) QueryOption {
	return func(q *Query) {
		q.Filters = append(q.Filters, Filter{Column: column, Op: OpEq, Value: value})
	}
}

func Neq(column string, value any) QueryOption {
	return func(q *Query) {
		q.Filters = append(q.Filters, Filter{Column: column, Op: OpNeq, Value: value})
	}
}

func In(column string, values ...any) QueryOption {
	return func(q *Query) {
		q.Filters = append(q.Filters, Filter{Column: column, Op: OpIn, Values: values})
	}
}

func NotNull(column string) QueryOption {
	return func(q *Query) {
		q.Filters = append(q.Filters, Filter{Column: column, Op: OpNotNull})
	}
}

func OrderAsc(column string) QueryOption {
	return func(q *Query) { q.OrderBy = &Order{Column: column} }
}

func OrderDesc(column string) QueryOption {
	return func(q *Query) { q.OrderBy = &Order{Column: column, Descending: true} }
}

// QueryGateway retrieves rows from a named table. Implementations return a
// non-nil error on any retrieval failure; rows and error are mutually
// exclusive.
type QueryGateway interface {
	Select(ctx context.Context, table string, opts ...QueryOption) ([]Row, error)
}
