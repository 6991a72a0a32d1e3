package statistics_test

import (
	"context"
	"fmt"
	"sort"
	"time"

	"achievement-portal/app/gateway"

	"github.com/google/uuid"
)

// fakeGateway serves canned rows per table and applies the same filter and
// order semantics a real backend would, so the aggregator's queries are
// exercised end to end.
type fakeGateway struct {
	tables map[string][]gateway.Row
	fail   map[string]error
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		tables: make(map[string][]gateway.Row),
		fail:   make(map[string]error),
	}
}

func (f *fakeGateway) add(table string, rows ...gateway.Row) {
	f.tables[table] = append(f.tables[table], rows...)
}

func (f *fakeGateway) Select(ctx context.Context, table string, opts ...gateway.QueryOption) ([]gateway.Row, error) {
	if err := f.fail[table]; err != nil {
		return nil, err
	}

	q := gateway.NewQuery(opts...)
	var out []gateway.Row
	for _, r := range f.tables[table] {
		if rowMatches(r, q.Filters) {
			out = append(out, r)
		}
	}

	if q.OrderBy != nil {
		col := q.OrderBy.Column
		desc := q.OrderBy.Descending
		sort.SliceStable(out, func(i, j int) bool {
			ti, tj := out[i].Time(col), out[j].Time(col)
			if !ti.IsZero() || !tj.IsZero() {
				if desc {
					return tj.Before(ti)
				}
				return ti.Before(tj)
			}
			if desc {
				return out[j].String(col) < out[i].String(col)
			}
			return out[i].String(col) < out[j].String(col)
		})
	}
	return out, nil
}

func rowMatches(r gateway.Row, filters []gateway.Filter) bool {
	for _, f := range filters {
		switch f.Op {
		case gateway.OpEq:
			if fmt.Sprint(r[f.Column]) != fmt.Sprint(f.Value) {
				return false
			}
		case gateway.OpNeq:
			if fmt.Sprint(r[f.Column]) == fmt.Sprint(f.Value) {
				return false
			}
		case gateway.OpIn:
			found := false
			for _, v := range f.Values {
				if fmt.Sprint(r[f.Column]) == fmt.Sprint(v) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case gateway.OpNotNull:
			if r[f.Column] == nil {
				return false
			}
		}
	}
	return true
}

func achievementRow(publisherID, instructorID, typeID string, status, score any, created time.Time) gateway.Row {
	return gateway.Row{
		"id":            uuid.NewString(),
		"publisher_id":  publisherID,
		"instructor_id": instructorID,
		"type_id":       typeID,
		"status":        status,
		"score":         score,
		"created_at":    created,
	}
}

func typeRow(id, name string, created time.Time) gateway.Row {
	return gateway.Row{
		"id":         id,
		"name":       name,
		"created_at": created,
	}
}

func studentRow(id string) gateway.Row {
	return gateway.Row{"id": id, "role": 1}
}
