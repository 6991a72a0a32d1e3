package gateway

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Row is a single record keyed by column name. Values keep whatever dynamic
// type the store returned; the accessors below normalize the common cases.
type Row map[string]any

// String returns the column as a string, or "" when absent or NULL.
func (r Row) String(column string) string {
	switch t := r[column].(type) {
	case string:
		return t
	case []byte:
		return string(t)
	case uuid.UUID:
		return t.String()
	}
	return ""
}

// UUID parses the column as a UUID, returning uuid.Nil when it is absent or
// malformed.
func (r Row) UUID(column string) uuid.UUID {
	if u, ok := r[column].(uuid.UUID); ok {
		return u
	}
	id, err := uuid.Parse(r.String(column))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// Float returns the column as a float64. The second result is false when the
// column is absent, NULL, or not numeric, so NULL scores stay distinguishable
// from zero.
func (r Row) Float(column string) (float64, bool) {
	switch t := r[column].(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case []byte:
		return parseFloat(string(t))
	case string:
		return parseFloat(t)
	}
	return 0, false
}

// Time returns the column as a time.Time, accepting RFC 3339 text for rows
// that arrive with timestamps rendered as strings. The zero time stands for
// absent or unparsable values.
func (r Row) Time(column string) time.Time {
	switch t := r[column].(type) {
	case time.Time:
		return t
	case string:
		if ts, err := time.Parse(time.RFC3339, t); err == nil {
			return ts
		}
	case []byte:
		if ts, err := time.Parse(time.RFC3339, string(t)); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
