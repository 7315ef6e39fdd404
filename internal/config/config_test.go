package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-datepanel/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DefaultPrefix", config.DefaultPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestMonthKeys checks there is exactly one distinct label key per month.
func TestMonthKeys(t *testing.T) {
	assert.Len(t, config.MonthKeys, 12)

	seen := make(map[string]bool)
	for _, k := range config.MonthKeys {
		assert.True(t, strings.HasPrefix(k, config.TKeyMonthPrefix))
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
	assert.Equal(t, "month_1", config.MonthKeys[0])
	assert.Equal(t, "month_12", config.MonthKeys[11])
}

func TestDefaults_Sanity(t *testing.T) {
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-DatePanel/"))
	assert.True(t, strings.HasSuffix(config.StubVCalendar, "END:VCALENDAR\r\n"))
}

// TestTimeouts ensures that operational constraints are reasonable.
func TestTimeouts(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.ShutdownTimeout, 0*time.Second)
	assert.Greater(t, config.ServerReadTimeout, 0*time.Second)
	assert.LessOrEqual(t, config.ServerWriteTimeout, 2*time.Minute)
}
