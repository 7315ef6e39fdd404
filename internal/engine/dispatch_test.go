package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockCallbacks records which caller callback an Action triggers.
type MockCallbacks struct {
	mock.Mock
}

func (m *MockCallbacks) OnChange(v engine.DateValue)        { m.Called(v) }
func (m *MockCallbacks) OnCurrentChange(v engine.DateValue) { m.Called(v) }

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestDispatch_YearSentinels(t *testing.T) {
	anchor := day(2024, time.May, 20)
	g := engine.GenerateYears(engine.YearInput{Anchor: anchor})

	prev := engine.Dispatch(g, 0)
	assert.Equal(t, engine.ActionNavigate, prev.Kind)
	assert.Equal(t, day(2014, time.May, 20), prev.Value)

	next := engine.Dispatch(g, 11)
	assert.Equal(t, engine.ActionNavigate, next.Kind)
	assert.Equal(t, day(2034, time.May, 20), next.Value)
}

func TestDispatch_YearSelect(t *testing.T) {
	g := engine.GenerateYears(engine.YearInput{
		Anchor:   day(2024, time.January, 1),
		Selected: day(2021, time.September, 12),
	})

	action := engine.Dispatch(g, 8) // 2027
	assert.Equal(t, engine.ActionSelect, action.Kind)
	assert.Equal(t, day(2027, time.September, 12), action.Value)
}

func TestDispatch_YearSelectWithoutSelection(t *testing.T) {
	g := engine.GenerateYears(engine.YearInput{Anchor: day(2024, time.March, 3)})

	action := engine.Dispatch(g, 1)
	assert.Equal(t, engine.ActionSelect, action.Kind)
	assert.Equal(t, day(2020, time.March, 3), action.Value)
}

func TestDispatch_DisabledCellsNeverSelect(t *testing.T) {
	g := engine.GenerateMonths(engine.MonthInput{
		Anchor:   day(2023, time.January, 1),
		Disabled: func(candidate, _ engine.DateValue) bool { return candidate.Month()%2 == 0 },
	})

	for i, c := range g.Cells {
		action := engine.Dispatch(g, i)
		if c.Disabled {
			assert.Equal(t, engine.ActionIgnored, action.Kind, "cell %d", i)
			assert.True(t, action.Value.IsZero())
		} else {
			assert.Equal(t, engine.ActionSelect, action.Kind, "cell %d", i)
		}
	}
}

func TestDispatch_OutOfRange(t *testing.T) {
	g := engine.GenerateMonths(engine.MonthInput{Anchor: day(2023, time.January, 1)})

	assert.Equal(t, engine.ActionIgnored, engine.Dispatch(g, -1).Kind)
	assert.Equal(t, engine.ActionIgnored, engine.Dispatch(g, engine.GridSize).Kind)
}

func TestDispatch_MonthSentinelStep(t *testing.T) {
	// Month grids never carry sentinels, but a caller-built one shifts by a single year.
	g := engine.GenerateMonths(engine.MonthInput{Anchor: day(2023, time.April, 2)})
	g.Cells[0].Kind = engine.KindPrev
	g.Cells[11].Kind = engine.KindNext

	assert.Equal(t, day(2022, time.April, 2), engine.Dispatch(g, 0).Value)
	assert.Equal(t, day(2024, time.April, 2), engine.Dispatch(g, 11).Value)
}

func TestAction_Apply(t *testing.T) {
	want := day(2023, time.June, 15)

	t.Run("Select", func(t *testing.T) {
		cb := new(MockCallbacks)
		cb.On("OnChange", want).Return().Once()

		engine.Action{Kind: engine.ActionSelect, Value: want}.Apply(cb.OnChange, cb.OnCurrentChange)

		cb.AssertExpectations(t)
		cb.AssertNotCalled(t, "OnCurrentChange", mock.Anything)
	})

	t.Run("Navigate", func(t *testing.T) {
		cb := new(MockCallbacks)
		cb.On("OnCurrentChange", want).Return().Once()

		engine.Action{Kind: engine.ActionNavigate, Value: want}.Apply(cb.OnChange, cb.OnCurrentChange)

		cb.AssertExpectations(t)
		cb.AssertNotCalled(t, "OnChange", mock.Anything)
	})

	t.Run("Ignored", func(t *testing.T) {
		cb := new(MockCallbacks)

		engine.Action{Kind: engine.ActionIgnored}.Apply(cb.OnChange, cb.OnCurrentChange)

		cb.AssertNotCalled(t, "OnChange", mock.Anything)
		cb.AssertNotCalled(t, "OnCurrentChange", mock.Anything)
	})

	t.Run("Nil callbacks", func(t *testing.T) {
		assert.NotPanics(t, func() {
			engine.Action{Kind: engine.ActionSelect, Value: want}.Apply(nil, nil)
			engine.Action{Kind: engine.ActionNavigate, Value: want}.Apply(nil, nil)
		})
	})
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "ignored", engine.Action{}.String())
	assert.Equal(t, "select(2023-06-15T00:00:00Z)", engine.Action{Kind: engine.ActionSelect, Value: day(2023, time.June, 15)}.String())
}
