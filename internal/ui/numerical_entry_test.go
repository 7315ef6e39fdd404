package ui_test

import (
	"testing"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepanel/internal/ui"
)

func TestNumericalEntry_TypedRune(t *testing.T) {
	entry := ui.NewNumericalEntry()
	window := test.NewWindow(entry)
	defer window.Close()

	tests := []struct {
		name     string
		input    rune
		accepted bool
	}{
		{"Digit_Zero", '0', true},
		{"Digit_Nine", '9', true},
		{"Letter_a", 'a', false},
		{"Symbol_Dash", '-', false},
		{"Symbol_Space", ' ', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry.SetText("")
			test.Type(entry, string(tt.input))

			if tt.accepted {
				assert.Equal(t, string(tt.input), entry.Text)
			} else {
				assert.Empty(t, entry.Text)
			}
		})
	}
}

func TestNumericalEntry_NegativeYears(t *testing.T) {
	entry := ui.NewNumericalEntry()
	entry.AllowNegative = true
	window := test.NewWindow(entry)
	defer window.Close()

	test.Type(entry, "-44")
	assert.Equal(t, "-44", entry.Text)

	year, err := entry.Int()
	require.NoError(t, err)
	assert.Equal(t, -44, year)

	// A minus sign is only accepted in first position.
	entry.SetText("")
	test.Type(entry, "12-3")
	assert.Equal(t, "123", entry.Text)
}

func TestNumericalEntry_Keyboard(t *testing.T) {
	entry := ui.NewNumericalEntry()
	assert.Equal(t, mobile.NumberKeyboard, entry.Keyboard())
}

// TestNumericalEntry_DirectSetText documents that SetText bypasses the keystroke filter.
func TestNumericalEntry_DirectSetText(t *testing.T) {
	entry := ui.NewNumericalEntry()

	entry.SetText("abc")
	assert.Equal(t, "abc", entry.Text)

	_, err := entry.Int()
	assert.Error(t, err)
}
