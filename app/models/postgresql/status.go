package models

import (
	"strconv"
	"strings"
)

// Status is the approval state of an achievement.
type Status int

const (
	StatusDraft Status = iota
	StatusPending
	StatusApproved
	StatusRejected
)

var statusTags = map[string]Status{
	"draft":    StatusDraft,
	"pending":  StatusPending,
	"approved": StatusApproved,
	"rejected": StatusRejected,
}

func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPending:
		return "pending"
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	}
	return "unknown"
}

// ParseStatus normalizes the two encodings the store contains: integer codes
// (0-3, possibly scanned as int64, float64 or a digit string) and lowercase
// string tags. Older rows carry tags, newer rows carry codes; both must be
// read as the same value.
func ParseStatus(v any) (Status, bool) {
	switch t := v.(type) {
	case Status:
		return intStatus(int(t))
	case int:
		return intStatus(t)
	case int32:
		return intStatus(int(t))
	case int64:
		return intStatus(int(t))
	case float64:
		return intStatus(int(t))
	case []byte:
		return ParseStatus(string(t))
	case string:
		tag := strings.ToLower(strings.TrimSpace(t))
		if s, ok := statusTags[tag]; ok {
			return s, true
		}
		if n, err := strconv.Atoi(tag); err == nil {
			return intStatus(n)
		}
	}
	return 0, false
}

func intStatus(n int) (Status, bool) {
	if n < int(StatusDraft) || n > int(StatusRejected) {
		return 0, false
	}
	return Status(n), true
}

// IsApproved reports whether v denotes an approved achievement under either
// encoding.
func IsApproved(v any) bool {
	s, ok := ParseStatus(v)
	return ok && s == StatusApproved
}

// IsPending reports whether v denotes an achievement awaiting review under
// either encoding.
func IsPending(v any) bool {
	s, ok := ParseStatus(v)
	return ok && s == StatusPending
}
