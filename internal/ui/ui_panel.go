package ui

import (
	"fmt"
	"log/slog"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

// panelView holds references to the widgets refreshed after every state change.
type panelView struct {
	title    *widget.Label
	selected *widget.Label

	prev     *widget.Button
	next     *widget.Button
	mode     *widget.Button
	today    *widget.Button
	settings *widget.Button
	jump     *NumericalEntry

	cells [engine.GridSize]*widget.Button
}

// ShowPanel opens the main window, or focuses it when already open.
func (app *PanelApp) ShowPanel() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w

	w.SetContent(app.buildPanel())
	w.Resize(fyne.NewSize(config.WindowWidth, config.WindowHeight))
	w.SetMaster()
	w.SetOnClosed(func() {
		app.Window = nil
		app.view = nil
	})
	w.Show()
}

// buildPanel lays out the header, the 3x4 cell grid and the footer row.
func (app *PanelApp) buildPanel() fyne.CanvasObject {
	v := &panelView{}
	app.view = v

	v.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	v.selected = widget.NewLabel("")
	v.selected.Alignment = fyne.TextAlignCenter

	v.prev = widget.NewButton("", func() { app.shift(-1) })
	v.next = widget.NewButton("", func() { app.shift(1) })
	v.mode = widget.NewButton("", app.toggleMode)
	v.today = widget.NewButton("", app.goToday)
	v.settings = widget.NewButton("", app.ShowSettingsWindow)

	v.jump = NewNumericalEntry()
	v.jump.AllowNegative = true
	v.jump.OnSubmitted = func(string) { app.jumpTo() }

	cells := make([]fyne.CanvasObject, 0, engine.GridSize)
	for i := range v.cells {
		index := i
		v.cells[i] = widget.NewButton("", func() { app.clickCell(index) })
		cells = append(cells, v.cells[i])
	}

	header := container.NewBorder(nil, nil, v.prev, v.next, v.title)
	toolbar := container.NewGridWithColumns(config.LayoutColumnsDouble, v.mode, v.today)
	grid := container.NewGridWithColumns(engine.GridCols, cells...)
	footer := container.NewVBox(
		v.selected,
		container.NewBorder(nil, nil, nil, v.settings, v.jump),
	)

	app.refresh()
	return container.NewBorder(container.NewVBox(header, toolbar), footer, nil, nil, grid)
}

// -----------------------------------------------------------------------------
// Actions
// -----------------------------------------------------------------------------

func (app *PanelApp) clickCell(index int) {
	app.Picker.Click(index)
	app.refresh()
}

func (app *PanelApp) shift(pages int) {
	app.Picker.Shift(pages)
	app.refresh()
}

func (app *PanelApp) goToday() {
	app.Picker.Today()
	app.refresh()
}

func (app *PanelApp) toggleMode() {
	if app.Picker.Mode() == engine.GranularityYear {
		app.Picker.SetMode(engine.GranularityMonth)
	} else {
		app.Picker.SetMode(engine.GranularityYear)
	}
	app.refresh()
}

func (app *PanelApp) jumpTo() {
	if app.view == nil {
		return
	}
	year, err := app.view.jump.Int()
	if err != nil {
		slog.Debug(config.MsgJumpInvalid,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, app.view.jump.Text,
			config.LogKeyError, err,
		)
		return
	}
	app.Picker.JumpTo(year)
	app.view.jump.SetText("")
	app.refresh()
}

// -----------------------------------------------------------------------------
// Rendering
// -----------------------------------------------------------------------------

// refreshAsync schedules a refresh on the fyne goroutine; picker callbacks may
// fire from the HTTP server.
func (app *PanelApp) refreshAsync() {
	fyne.Do(app.refresh)
}

// refresh re-renders every widget from the picker's current grid.
func (app *PanelApp) refresh() {
	v := app.view
	if v == nil {
		return
	}
	g := app.Picker.Grid()

	v.title.SetText(panelTitle(g))
	for i, c := range g.Cells {
		btn := v.cells[i]
		btn.Importance = cellImportance(c)
		btn.SetText(c.Label)
		if c.Disabled {
			btn.Disable()
		} else {
			btn.Enable()
		}
	}

	if g.Granularity == engine.GranularityYear {
		v.mode.SetText(app.GetMsg(config.TKeyBtnMonth))
	} else {
		v.mode.SetText(app.GetMsg(config.TKeyBtnYear))
	}
	v.prev.SetText(app.GetMsg(config.TKeyBtnPrev))
	v.next.SetText(app.GetMsg(config.TKeyBtnNext))
	v.today.SetText(app.GetMsg(config.TKeyBtnToday))
	v.settings.SetText(app.GetMsg(config.TKeyBtnSettings))
	v.jump.SetPlaceHolder(app.GetMsg(config.TKeyLblJump))
	v.selected.SetText(app.selectedText(g.Selected))
}

func (app *PanelApp) selectedText(v engine.DateValue) string {
	if v.IsZero() {
		return app.GetMsg(config.TKeyLblNone)
	}
	return app.Localizer().MsgWith(config.TKeyLblSelected, map[string]any{
		"Date": v.Time().Format(config.DateFormatDisplay),
	})
}

// panelTitle is the anchor year on the month panel and the decade on the year panel.
func panelTitle(g engine.Grid) string {
	first, last := g.Span()
	if first == last {
		return strconv.Itoa(first)
	}
	return fmt.Sprintf(config.FormatDecadeTitle, first, last)
}

// cellImportance maps cell flags to button styles. Active wins over "now".
func cellImportance(c engine.Cell) widget.Importance {
	switch {
	case c.Kind != engine.KindSelect:
		return widget.LowImportance
	case c.Flags.Active:
		return widget.HighImportance
	case c.Flags.IsNow:
		return widget.SuccessImportance
	}
	return widget.MediumImportance
}
