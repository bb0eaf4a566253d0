package ds

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsComplianceStatus(t *testing.T) {
	tests := []struct {
		name      string
		newStatus EnvironmentStatus
		current   EnvironmentStatus
		want      string
	}{
		{"request from available", EnvironmentPending, EnvironmentAvailable, ""},
		{"request from disabled", EnvironmentPending, EnvironmentDisabled, ""},
		{"request from pending", EnvironmentPending, EnvironmentPending, "environment is not available to request"},
		{"request from locked", EnvironmentPending, EnvironmentLocked, "environment is not available to request"},

		{"approve from pending", EnvironmentLocked, EnvironmentPending, ""},
		{"approve from available", EnvironmentLocked, EnvironmentAvailable, "environment is not ready to approve"},
		{"approve from locked", EnvironmentLocked, EnvironmentLocked, "environment is not ready to approve"},

		{"release from locked", EnvironmentAvailable, EnvironmentLocked, ""},
		{"release from pending", EnvironmentAvailable, EnvironmentPending, ""},
		{"release from available", EnvironmentAvailable, EnvironmentAvailable, "environment is not ready to release"},
		{"release from disabled", EnvironmentAvailable, EnvironmentDisabled, "environment is not ready to release"},

		{"disable from any", EnvironmentDisabled, EnvironmentLocked, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComplianceStatus(tt.newStatus, tt.current))
		})
	}
}

func TestValidEnvironmentStatus(t *testing.T) {
	assert.True(t, ValidEnvironmentStatus(""))
	assert.True(t, ValidEnvironmentStatus("available"))
	assert.True(t, ValidEnvironmentStatus("disabled"))
	assert.False(t, ValidEnvironmentStatus("invalid"))
}

func TestDayWindow(t *testing.T) {
	from, to := DayWindow(time.Date(2024, 3, 1, 15, 30, 45, 0, time.UTC))

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 3, 1, 23, 59, 59, 0, time.UTC), to)
}

func TestDayWindowConvertsToUTC(t *testing.T) {
	// 01:00 по московскому времени — ещё 29 февраля по UTC
	msk := time.FixedZone("MSK", 3*60*60)
	from, to := DayWindow(time.Date(2024, 3, 1, 1, 0, 0, 0, msk))

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC), to)
}
