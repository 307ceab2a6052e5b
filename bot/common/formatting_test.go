package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBalance(t *testing.T) {
	tests := []struct {
		name     string
		balance  int64
		expected string
	}{
		{"zero", 0, "0"},
		{"small", 950, "950"},
		{"thousands", 12345, "12,345"},
		{"millions", 1234567, "1,234,567"},
		{"exact group", 1000, "1,000"},
		{"negative", -12345, "-12,345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBalance(tt.balance))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{"zero", 0, "0 seconds"},
		{"negative", -5, "0 seconds"},
		{"one second", 1, "1 second"},
		{"seconds only", 45, "45 seconds"},
		{"one minute exactly", 60, "1 minute"},
		{"minutes and seconds", 125, "2 minutes, 5 seconds"},
		{"one hour exactly", 3600, "1 hour"},
		{"hours skip zero minutes", 3605, "1 hour, 5 seconds"},
		{"all parts", 7384, "2 hours, 3 minutes, 4 seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.seconds))
		})
	}
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Unix(1700000000, 0)
	assert.Equal(t, "<t:1700000000:R>", FormatDiscordTimestamp(ts, "R"))
	assert.Equal(t, "<t:1700000000:F>", FormatDiscordTimestamp(ts, "F"))
}
