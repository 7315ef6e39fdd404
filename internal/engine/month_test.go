package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

func day(y int, m time.Month, d int) engine.DateValue {
	return engine.Date(y, m, d, time.UTC)
}

func TestGenerateMonths_Scenario(t *testing.T) {
	// Scenario: anchor 2023, selection 2023-03-15, today 2023-01-01.
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2023, time.January, 1),
		Selected: day(2023, time.March, 15),
		Today:    day(2023, time.January, 1),
		Prefix:   "dp",
	})

	require.Len(t, g.Cells, engine.GridSize)
	assert.Equal(t, engine.GranularityMonth, g.Granularity)

	assert.True(t, g.Cells[2].Flags.Active, "March should be active")
	assert.True(t, g.Cells[0].Flags.IsNow, "January should be now")
	assert.False(t, g.Cells[0].Flags.Active)
	assert.False(t, g.Cells[2].Flags.IsNow)
	assert.Equal(t, 2, g.ActiveIndex())

	assert.Equal(t, "dp-active", g.Cells[2].Flags.Class)
	assert.Equal(t, "dp-now", g.Cells[0].Flags.Class)
	assert.Empty(t, g.Cells[5].Flags.Class)

	// Clicking June keeps the 15th from the previous selection.
	action := engine.Dispatch(g, 5)
	assert.Equal(t, engine.ActionSelect, action.Kind)
	assert.Equal(t, day(2023, time.June, 15), action.Value)
}

func TestGenerateMonths_CellsAndPatches(t *testing.T) {
	labels := []string{"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec"}
	g := engine.GenerateMonths(engine.MonthInput{Anchor: day(1999, time.July, 4), Labels: labels})

	for i, c := range g.Cells {
		assert.Equal(t, labels[i], c.Label)
		assert.Equal(t, engine.KindSelect, c.Kind, "month panels have no sentinels")
		assert.False(t, c.Disabled)

		year, ok := c.Patch.Get(engine.FieldYear)
		require.True(t, ok)
		assert.Equal(t, 1999, year)

		month, ok := c.Patch.Get(engine.FieldMonth)
		require.True(t, ok)
		assert.Equal(t, i+1, month)
	}

	// Row-major layout: the second row starts with April.
	assert.Equal(t, "apr", g.Cell(1, 0).Label)
	rows := g.Rows()
	require.Len(t, rows, engine.GridRows)
	for _, row := range rows {
		assert.Len(t, row, engine.GridCols)
	}
	assert.Equal(t, "dec", rows[3][2].Label)
}

func TestGenerateMonths_LabelFallback(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
	}{
		{"Nil", nil},
		{"Too short", []string{"a", "b"}},
		{"Too long", make([]string, 13)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.GenerateMonths(engine.MonthInput{Anchor: day(2020, time.May, 1), Labels: tt.labels})
			assert.Equal(t, "Jan", g.Cells[0].Label)
			assert.Equal(t, "Dec", g.Cells[11].Label)
		})
	}
}

func TestGenerateMonths_NoSelectionNoToday(t *testing.T) {
	g := engine.GenerateMonths(engine.MonthInput{Anchor: day(2023, time.January, 1)})

	assert.Equal(t, -1, g.ActiveIndex())
	for _, c := range g.Cells {
		assert.False(t, c.Flags.IsNow)
	}
}

func TestGenerateMonths_CrossYearNeverActive(t *testing.T) {
	// Same month, different year: neither active nor now.
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2024, time.January, 1),
		Selected: day(2023, time.March, 15),
		Today:    day(2023, time.March, 15),
	})

	assert.Equal(t, -1, g.ActiveIndex())
	assert.False(t, g.Cells[2].Flags.IsNow)
}

func TestGenerateMonths_ActiveAndNowCoincide(t *testing.T) {
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2023, time.January, 1),
		Selected: day(2023, time.August, 2),
		Today:    day(2023, time.August, 30),
		Prefix:   "p",
	})

	c := g.Cells[7]
	assert.True(t, c.Flags.Active)
	assert.True(t, c.Flags.IsNow)
	assert.Equal(t, "p-active p-now", c.Flags.Class)
}

func TestGenerateMonths_AtMostOneActive(t *testing.T) {
	for anchorYear := 2020; anchorYear <= 2025; anchorYear++ {
		for selYear := 2019; selYear <= 2026; selYear++ {
			for m := time.January; m <= time.December; m++ {
				g := engine.GenerateMonths(engine.MonthInput{
					Anchor:   day(anchorYear, time.June, 1),
					Selected: day(selYear, m, 10),
				})

				active := 0
				for _, c := range g.Cells {
					if c.Flags.Active {
						active++
					}
				}
				if anchorYear == selYear {
					assert.Equal(t, 1, active, "anchor %d selected %d-%d", anchorYear, selYear, m)
				} else {
					assert.Equal(t, 0, active, "anchor %d selected %d-%d", anchorYear, selYear, m)
				}
			}
		}
	}
}

func TestGenerateMonths_DisabledPredicate(t *testing.T) {
	var candidates []engine.DateValue
	var selections []engine.DateValue
	selected := engine.FromTime(time.Date(2023, time.March, 15, 10, 30, 0, 0, time.UTC))

	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2023, time.January, 1),
		Selected: selected,
		Prefix:   "dp",
		Disabled: func(candidate, sel engine.DateValue) bool {
			candidates = append(candidates, candidate)
			selections = append(selections, sel)
			return candidate.Month() < time.April
		},
	})

	require.Len(t, candidates, engine.GridSize)
	// Candidates carry the selected day and time of day.
	assert.Equal(t, time.Date(2023, time.June, 15, 10, 30, 0, 0, time.UTC), candidates[5].Time())
	for _, s := range selections {
		assert.Equal(t, selected, s)
	}

	for i, c := range g.Cells {
		assert.Equal(t, i < 3, c.Disabled, "cell %d", i)
	}
	assert.Equal(t, "dp-active dp-disabled", g.Cells[2].Flags.Class)
}

func TestGenerateMonths_CandidateWithoutSelection(t *testing.T) {
	var candidates []engine.DateValue
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor: engine.FromTime(time.Date(2023, time.January, 20, 18, 0, 0, 0, time.UTC)),
		Disabled: func(candidate, sel engine.DateValue) bool {
			assert.True(t, sel.IsZero())
			candidates = append(candidates, candidate)
			return false
		},
	})

	require.Len(t, candidates, engine.GridSize)
	assert.Equal(t, -1, g.ActiveIndex())
	for i, c := range candidates {
		assert.Equal(t, time.Date(2023, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC), c.Time())
	}
}

func TestGenerateMonths_MinMax(t *testing.T) {
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor: day(2023, time.January, 1),
		Disabled: engine.AnyOf(
			engine.DisableBefore(day(2023, time.March, 20)),
			engine.DisableAfter(day(2023, time.October, 2)),
			nil,
		),
	})

	var enabled []string
	for _, c := range g.Cells {
		if !c.Disabled {
			enabled = append(enabled, c.Label)
		}
	}
	assert.Equal(t, []string{"Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct"}, enabled)
}

func TestGenerateMonths_EndOfMonthSelection(t *testing.T) {
	var candidates []engine.DateValue
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2023, time.January, 1),
		Selected: day(2023, time.January, 31),
		Disabled: func(candidate, sel engine.DateValue) bool {
			candidates = append(candidates, candidate)
			return engine.DisableAfter(day(2023, time.April, 15))(candidate, sel)
		},
	})

	require.Len(t, candidates, engine.GridSize)
	for i, c := range candidates {
		assert.Equal(t, time.Month(i+1), c.Month(), "candidate %d left its month", i)
	}
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), candidates[1].Time())
	assert.Equal(t, time.Date(2023, time.April, 30, 0, 0, 0, 0, time.UTC), candidates[3].Time())

	for i, c := range g.Cells {
		assert.Equal(t, i > 3, c.Disabled, "cell %d", i)
	}
}
