package models_test

import (
	"testing"

	models "achievement-portal/app/models/postgresql"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  models.Status
		ok    bool
	}{
		{"int code", 2, models.StatusApproved, true},
		{"int64 code", int64(1), models.StatusPending, true},
		{"float64 code", float64(3), models.StatusRejected, true},
		{"digit string", "2", models.StatusApproved, true},
		{"string tag", "approved", models.StatusApproved, true},
		{"tag with casing and spaces", "  Pending ", models.StatusPending, true},
		{"byte slice tag", []byte("draft"), models.StatusDraft, true},
		{"out of range code", 7, 0, false},
		{"negative code", -1, 0, false},
		{"unknown tag", "archived", 0, false},
		{"nil", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := models.ParseStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestIsApprovedAcceptsBothEncodings(t *testing.T) {
	assert.True(t, models.IsApproved(2))
	assert.True(t, models.IsApproved("2"))
	assert.True(t, models.IsApproved("approved"))
	assert.False(t, models.IsApproved("pending"))
	assert.False(t, models.IsApproved(nil))
}

func TestIsPendingAcceptsBothEncodings(t *testing.T) {
	assert.True(t, models.IsPending(1))
	assert.True(t, models.IsPending("pending"))
	assert.False(t, models.IsPending("approved"))
}
