// Package picker holds the caller-side state of a month/year date picker: the displayed
// anchor, the committed value and the active mode. It feeds that state into the pure
// engine on every render and applies the resulting actions.
package picker

import (
	"log/slog"
	"sync"
	"time"

	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

// Options configures a Picker. Zero values are usable.
type Options struct {
	Mode     engine.Granularity
	Anchor   engine.DateValue // Defaults to today.
	Value    engine.DateValue // Zero when nothing is selected yet.
	Labels   []string
	Disabled engine.DisabledFunc
	Prefix   string
	Clock    engine.Clock

	// ReturnToMonth switches back to the month panel, anchored on the picked year,
	// after a year is selected.
	ReturnToMonth bool

	OnChange        func(engine.DateValue)
	OnCurrentChange func(engine.DateValue)
}

// State is a snapshot of the picker.
type State struct {
	Mode   engine.Granularity
	Anchor engine.DateValue
	Value  engine.DateValue
}

// gridKey identifies the inputs a cached grid was computed from.
type gridKey struct {
	mode       engine.Granularity
	anchor     time.Time
	value      time.Time
	todayMonth int
	generation int
}

// Picker is safe for concurrent use. Callbacks run after the internal lock is released,
// so they may call back into the picker.
type Picker struct {
	mu sync.Mutex

	opts  Options
	state State

	generation int
	cached     *engine.Grid
	cachedKey  gridKey
}

// New creates a picker from opts.
func New(opts Options) *Picker {
	if opts.Clock == nil {
		opts.Clock = engine.RealClock{}
	}
	if opts.Prefix == "" {
		opts.Prefix = config.DefaultPrefix
	}
	anchor := opts.Anchor
	if anchor.IsZero() {
		anchor = opts.Value
	}
	if anchor.IsZero() {
		anchor = engine.Today(opts.Clock)
	}
	return &Picker{
		opts: opts,
		state: State{
			Mode:   opts.Mode,
			Anchor: anchor,
			Value:  opts.Value,
		},
	}
}

// State returns the current snapshot.
func (p *Picker) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Value returns the committed selection, zero when nothing is selected.
func (p *Picker) Value() engine.DateValue { return p.State().Value }

// Anchor returns the displayed date.
func (p *Picker) Anchor() engine.DateValue { return p.State().Anchor }

// Mode returns the active panel.
func (p *Picker) Mode() engine.Granularity { return p.State().Mode }

// Grid returns the panel for the current state, recomputing it only when an input changed.
func (p *Picker) Grid() engine.Grid {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gridLocked()
}

func (p *Picker) gridLocked() engine.Grid {
	today := engine.Today(p.opts.Clock)
	key := gridKey{
		mode:       p.state.Mode,
		anchor:     p.state.Anchor.Time(),
		value:      p.state.Value.Time(),
		todayMonth: today.Year()*12 + int(today.Month()),
		generation: p.generation,
	}
	if p.cached != nil && p.cachedKey == key {
		return *p.cached
	}

	var g engine.Grid
	switch p.state.Mode {
	case engine.GranularityYear:
		g = engine.GenerateYears(engine.YearInput{
			Anchor:   p.state.Anchor,
			Selected: p.state.Value,
			Prefix:   p.opts.Prefix,
		})
	default:
		g = engine.GenerateMonths(engine.MonthInput{
			Anchor:   p.state.Anchor,
			Selected: p.state.Value,
			Today:    today,
			Labels:   p.opts.Labels,
			Disabled: p.opts.Disabled,
			Prefix:   p.opts.Prefix,
		})
	}

	slog.Debug(config.MsgGridComputed,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMode, p.state.Mode.String(),
		config.LogKeyAnchor, p.state.Anchor.String(),
	)

	p.cached = &g
	p.cachedKey = key
	return g
}

// Click activates cell index of the current grid and returns what happened.
// Ignored clicks change nothing and trigger no callback.
func (p *Picker) Click(index int) engine.Action {
	p.mu.Lock()
	g := p.gridLocked()
	action := engine.Dispatch(g, index)

	log := slog.With(
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyMode, p.state.Mode.String(),
		config.LogKeyIndex, index,
		config.LogKeyAction, action.Kind.String(),
	)

	switch action.Kind {
	case engine.ActionSelect:
		p.state.Value = action.Value
		if p.state.Mode == engine.GranularityYear && p.opts.ReturnToMonth {
			p.state.Mode = engine.GranularityMonth
			p.state.Anchor = p.state.Anchor.SetYear(action.Value.Year())
		}
		log.Debug(config.MsgCellSelected, config.LogKeyValue, action.Value.String())
	case engine.ActionNavigate:
		p.state.Anchor = action.Value
		log.Debug(config.MsgCellNavigated, config.LogKeyAnchor, action.Value.String())
	default:
		log.Debug(config.MsgCellIgnored)
	}
	onChange, onCurrentChange := p.opts.OnChange, p.opts.OnCurrentChange
	p.mu.Unlock()

	action.Apply(onChange, onCurrentChange)
	return action
}

// SetMode switches between the month and year panels.
func (p *Picker) SetMode(mode engine.Granularity) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state.Mode == mode {
		return
	}
	slog.Debug(config.MsgModeChanged,
		config.LogKeyComponent, config.CompPicker,
		config.LogKeyOld, p.state.Mode.String(),
		config.LogKeyNew, mode.String(),
	)
	p.state.Mode = mode
}

// Shift moves the anchor by n panel pages: one year per page on the month panel,
// one decade per page on the year panel.
func (p *Picker) Shift(n int) engine.DateValue {
	p.mu.Lock()
	anchor := p.state.Anchor
	return p.moveAnchorLocked(anchor.SetYear(anchor.Year() + n*engine.NavigationStep(p.state.Mode)))
}

// JumpTo anchors the panel on year, keeping the other anchor fields.
func (p *Picker) JumpTo(year int) engine.DateValue {
	p.mu.Lock()
	return p.moveAnchorLocked(p.state.Anchor.SetYear(year))
}

// Today anchors the panel on the clock's current date.
func (p *Picker) Today() engine.DateValue {
	p.mu.Lock()
	return p.moveAnchorLocked(engine.Today(p.opts.Clock))
}

// moveAnchorLocked must be called with the lock held; it releases it before
// running the anchor callback.
func (p *Picker) moveAnchorLocked(anchor engine.DateValue) engine.DateValue {
	p.state.Anchor = anchor
	cb := p.opts.OnCurrentChange
	p.mu.Unlock()

	if cb != nil {
		cb(anchor)
	}
	return anchor
}

// SetValue replaces the committed value without triggering callbacks, e.g. when
// restoring a stored selection.
func (p *Picker) SetValue(v engine.DateValue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Value = v
}

// SetLabels replaces the month labels, e.g. after a language change.
func (p *Picker) SetLabels(labels []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Labels = labels
	p.generation++
}

// SetPrefix replaces the style prefix. An empty prefix restores the default.
func (p *Picker) SetPrefix(prefix string) {
	if prefix == "" {
		prefix = config.DefaultPrefix
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Prefix = prefix
	p.generation++
}

// SetDisabled replaces the month disabling predicate.
func (p *Picker) SetDisabled(fn engine.DisabledFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.opts.Disabled = fn
	p.generation++
}
