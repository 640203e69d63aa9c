package contract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInput(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		input       string
		want        time.Time
		expectError bool
	}{
		{"calendar date", "1970-01-01", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"rfc3339", "2020-03-01T00:00:00Z", time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), false},
		{"years ago", "5 years ago", now.AddDate(-5, 0, 0), false},
		{"singular unit", "1 month ago", now.AddDate(0, -1, 0), false},
		{"weeks ago", "2 weeks ago", now.AddDate(0, 0, -14), false},
		{"surrounding whitespace", "  1970-01-01  ", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), false},
		{"garbage", "not a date", time.Time{}, true},
		{"unsupported unit", "3 decades ago", time.Time{}, true},
		{"us style date", "01/01/1970", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateInput(tt.input, now)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %v, got %v", tt.want, got)
		})
	}
}

func TestMonthKey(t *testing.T) {
	midMonth := time.Date(2020, 3, 17, 9, 30, 0, 0, time.FixedZone("EST", -5*3600))
	key := MonthKey(midMonth)
	assert.Equal(t, time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC), key)

	// Already normalized dates are unchanged.
	first := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, first, MonthKey(first))
}
