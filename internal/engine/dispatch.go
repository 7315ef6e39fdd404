package engine

import "fmt"

// ActionKind is the outcome of activating a cell.
type ActionKind int

const (
	// ActionIgnored means the click had no effect and no callback must run.
	ActionIgnored ActionKind = iota
	ActionSelect
	ActionNavigate
)

func (k ActionKind) String() string {
	switch k {
	case ActionSelect:
		return "select"
	case ActionNavigate:
		return "navigate"
	default:
		return "ignored"
	}
}

// Action is the result of Dispatch. Value is the new selection for ActionSelect and
// the new anchor for ActionNavigate.
type Action struct {
	Kind  ActionKind
	Value DateValue
}

func (a Action) String() string {
	if a.Kind == ActionIgnored {
		return a.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Value)
}

// Apply invokes exactly one of the callbacks, or none for an ignored action.
// Nil callbacks are skipped.
func (a Action) Apply(onChange, onCurrentChange func(DateValue)) {
	switch a.Kind {
	case ActionSelect:
		if onChange != nil {
			onChange(a.Value)
		}
	case ActionNavigate:
		if onCurrentChange != nil {
			onCurrentChange(a.Value)
		}
	}
}

// NavigationStep is the number of years a sentinel moves the anchor by.
func NavigationStep(g Granularity) int {
	if g == GranularityYear {
		return DecadeSpan
	}
	return 1
}

// Dispatch resolves a click on cell index of g.
// Disabled select cells and indexes outside the grid are ignored silently.
func Dispatch(g Grid, index int) Action {
	if index < 0 || index >= GridSize {
		return Action{Kind: ActionIgnored}
	}
	c := g.Cells[index]

	switch c.Kind {
	case KindPrev:
		return Action{Kind: ActionNavigate, Value: g.Anchor.SetYear(g.Anchor.Year() - NavigationStep(g.Granularity))}
	case KindNext:
		return Action{Kind: ActionNavigate, Value: g.Anchor.SetYear(g.Anchor.Year() + NavigationStep(g.Granularity))}
	}

	if c.Disabled {
		return Action{Kind: ActionIgnored}
	}
	return Action{Kind: ActionSelect, Value: Merge(c.Patch, g.Anchor, g.Selected)}
}
