package ui

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-datepanel/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	entryPort   *NumericalEntry
	entryPrefix *widget.Entry
}

// ShowSettingsWindow displays the preferences dialog.
func (app *PanelApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.entryPort)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	itemPrefix := widget.NewFormItem(app.GetMsg(config.TKeyLblPrefix), sw.entryPrefix)
	itemPrefix.HintText = app.GetMsg(config.TKeyHelpPrefix)

	form := widget.NewForm(itemLang, itemPort, itemPrefix)

	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		// Only the port blocks saving.
		if err := sw.entryPort.Validate(); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footerLabel := widget.NewLabel(app.Localizer().MsgWith(config.TKeyLblFooter, map[string]any{"Version": config.Version}))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		form,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footerLabel,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets builds the form inputs pre-filled from preferences.
func (app *PanelApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.entryPort = NewNumericalEntry()
	sw.entryPort.SetText(app.Preferences.StringWithFallback(config.PrefServerPort, config.DefaultPort))
	sw.entryPort.Validator = app.validatePort

	sw.entryPrefix = widget.NewEntry()
	sw.entryPrefix.SetPlaceHolder(config.DefaultPrefix)
	sw.entryPrefix.SetText(app.Preferences.StringWithFallback(config.PrefPrefix, config.DefaultPrefix))

	return sw
}

// validatePort returns a translated error for anything outside 1-65535.
func (app *PanelApp) validatePort(s string) error {
	if s == "" {
		return errors.New(app.GetMsg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(app.GetMsg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(app.GetMsg(config.TKeyErrPortRange))
	}
	return nil
}

// saveSettings persists the form and applies what can change at runtime.
// The port is only read at startup.
func (app *PanelApp) saveSettings(sw *settingsWidgets) {
	app.Preferences.SetString(config.PrefServerPort, sw.entryPort.Text)

	prefix := strings.TrimSpace(sw.entryPrefix.Text)
	if prefix == "" {
		prefix = config.DefaultPrefix
	}
	app.Preferences.SetString(config.PrefPrefix, prefix)
	app.Picker.SetPrefix(prefix)

	lang := sw.langSelect.Selected
	if lang == "" {
		lang = config.DefaultLanguage
	}
	if lang != app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage) {
		app.ApplyLanguage(lang)
	} else {
		app.refresh()
	}

	slog.Info(config.MsgSettingsSaved,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, lang,
		config.LogKeyPort, sw.entryPort.Text,
	)
}
