// Package ui is the fyne rendering surface of the date panel: a three-column
// button grid with a navigation header and a settings window.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
	"github.com/tartampluch/go-datepanel/internal/feed"
	"github.com/tartampluch/go-datepanel/internal/locale"
	"github.com/tartampluch/go-datepanel/internal/picker"
	"github.com/tartampluch/go-datepanel/internal/server"
)

// PanelApp encapsulates the UI state, preferences and the shared picker.
type PanelApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	Catalog     *locale.Catalog
	Ctx         context.Context

	Picker *picker.Picker
	Server *server.PanelServer

	SupportedLanguages []string

	// localizer is read by the HTTP goroutine through the feed summary.
	localizer atomic.Pointer[locale.Localizer]

	view           *panelView
	settingsWindow fyne.Window
}

// NewPanelApp constructs the application and wires the picker to the server.
// opts.Labels, opts.Prefix and an absent opts.Value are filled from preferences;
// opts.OnChange and opts.OnCurrentChange are chained after the UI's own handlers.
func NewPanelApp(a fyne.App, ctx context.Context, cat *locale.Catalog, opts picker.Options) *PanelApp {
	app := &PanelApp{
		App:                a,
		Preferences:        a.Preferences(),
		Catalog:            cat,
		Ctx:                ctx,
		SupportedLanguages: config.SupportedLanguages,
	}
	if cat != nil && len(cat.Languages) > 0 {
		app.SupportedLanguages = cat.Languages
	}
	app.UpdateLocalizer()

	opts.Labels = app.Localizer().MonthLabels()
	if opts.Prefix == "" {
		opts.Prefix = app.Preferences.StringWithFallback(config.PrefPrefix, config.DefaultPrefix)
	}
	if opts.Value.IsZero() {
		opts.Value = app.loadStoredValue()
	}

	userChange, userCurrent := opts.OnChange, opts.OnCurrentChange
	opts.OnChange = func(v engine.DateValue) {
		app.storeValue(v)
		app.Server.Publish(v)
		app.refreshAsync()
		if userChange != nil {
			userChange(v)
		}
	}
	opts.OnCurrentChange = func(v engine.DateValue) {
		app.refreshAsync()
		if userCurrent != nil {
			userCurrent(v)
		}
	}

	app.Picker = picker.New(opts)

	port := app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort)
	app.Server = server.NewPanelServer(port, app.Picker, &feed.Encoder{Summary: app.summary})

	// A restored selection is served right away.
	if v := app.Picker.Value(); !v.IsZero() {
		app.Server.Publish(v)
	}
	return app
}

// Run launches the HTTP surface and the main UI loop.
func (app *PanelApp) Run() {
	go func() {
		if err := app.Server.Start(app.Ctx); err != nil {
			slog.Error(config.ErrServerStartup,
				config.LogKeyError, err,
				config.LogKeyComponent, config.CompUI)

			app.App.SendNotification(fyne.NewNotification(
				config.TitleStartupError,
				fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
		}
	}()

	app.ShowPanel()
	app.App.Run()
}

// -----------------------------------------------------------------------------
// Localization
// -----------------------------------------------------------------------------

// UpdateLocalizer refreshes the translator from the language preference.
func (app *PanelApp) UpdateLocalizer() {
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	if app.Catalog == nil {
		app.localizer.Store(nil)
		return
	}
	app.localizer.Store(app.Catalog.Localizer(lang))
}

// Localizer returns the active translator. It may be nil; its methods then return keys.
func (app *PanelApp) Localizer() *locale.Localizer {
	return app.localizer.Load()
}

// GetMsg is a helper to translate a key safely.
func (app *PanelApp) GetMsg(key string) string {
	return app.Localizer().Msg(key)
}

// ApplyLanguage switches the label language of the whole panel.
func (app *PanelApp) ApplyLanguage(lang string) {
	app.Preferences.SetString(config.PrefLanguage, lang)
	app.UpdateLocalizer()
	app.Picker.SetLabels(app.Localizer().MonthLabels())

	slog.Info(config.MsgLangChanged,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyLang, lang,
	)

	if app.Window != nil {
		app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	}
	app.refresh()
}

// summary localizes the feed's event title.
func (app *PanelApp) summary(date string) string {
	msg := app.Localizer().MsgWith(config.TKeyEvtSummary, map[string]any{"Date": date})
	if msg == config.TKeyEvtSummary {
		return config.FallbackSummary + ": " + date
	}
	return msg
}

// -----------------------------------------------------------------------------
// Persistence
// -----------------------------------------------------------------------------

func (app *PanelApp) storeValue(v engine.DateValue) {
	if v.IsZero() {
		app.Preferences.RemoveValue(config.PrefLastValue)
		return
	}
	app.Preferences.SetString(config.PrefLastValue, v.Time().Format(config.PrefValueLayout))
}

func (app *PanelApp) loadStoredValue() engine.DateValue {
	raw := app.Preferences.String(config.PrefLastValue)
	if raw == "" {
		return engine.DateValue{}
	}
	t, err := time.Parse(config.PrefValueLayout, raw)
	if err != nil {
		slog.Warn(config.ErrStoredValue,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyValue, raw,
			config.LogKeyError, err,
		)
		return engine.DateValue{}
	}
	slog.Debug(config.MsgValueRestored,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyValue, raw,
	)
	return engine.FromTime(t)
}
