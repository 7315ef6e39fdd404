package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP surface in response headers.
var UserAgent = "Go-DatePanel/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go DatePanel"
	AppID             = "com.github.tartampluch.go-datepanel"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagPrint        = "print"
	FlagLang         = "lang"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescPrint    = "Print the month or year panel for today to stdout and exit (month|year)"
	FlagDescLang     = "Override the label language (en, fr)"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Panel Modes & Styling
// -----------------------------------------------------------------------------

const (
	ModeMonth = "month"
	ModeYear  = "year"

	// DefaultPrefix is the style prefix attached to cell classes.
	DefaultPrefix = "datepanel"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	WindowWidth         = 360
	WindowHeight        = 300
	SettingsWindowWidth = 420
	LayoutColumnsDouble = 2

	// FormatDecadeTitle renders the year panel header, e.g. "2020-2029".
	FormatDecadeTitle = "%d-%d"

	// Preference Keys
	PrefLanguage   = "language"
	PrefServerPort = "server_port"
	PrefPrefix     = "style_prefix"
	PrefLastValue  = "last_value"
	PrefLastRun    = "last_run_version"

	// PrefValueLayout stores the committed selection between runs.
	PrefValueLayout = time.RFC3339
)

// SupportedLanguages defines the list of available label languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle    = "win_title"
	TKeyBtnMonth    = "btn_mode_month"
	TKeyBtnYear     = "btn_mode_year"
	TKeyBtnPrev     = "btn_prev"
	TKeyBtnNext     = "btn_next"
	TKeyBtnToday    = "btn_today"
	TKeyLblJump     = "lbl_jump_year"
	TKeyLblSelected = "lbl_selected"
	TKeyLblNone     = "lbl_none"
	TKeyEvtSummary  = "event_summary"

	// Settings
	TKeyWinSettings  = "win_settings"
	TKeyBtnSettings  = "btn_settings"
	TKeyLblLanguage  = "lbl_language"
	TKeyLblPort      = "lbl_port"
	TKeyHelpPort     = "help_port"
	TKeyLblPrefix    = "lbl_prefix"
	TKeyHelpPrefix   = "help_prefix"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyLblFooter    = "lbl_footer"
	TKeyErrPortReq   = "err_port_required"
	TKeyErrPortNum   = "err_port_number"
	TKeyErrPortRange = "err_port_range"

	// TKeyMonthPrefix is suffixed with 1..12 to build month label keys.
	TKeyMonthPrefix = "month_"
)

// MonthKeys lists the twelve month label keys, January first.
var MonthKeys = []string{
	TKeyMonthPrefix + "1", TKeyMonthPrefix + "2", TKeyMonthPrefix + "3",
	TKeyMonthPrefix + "4", TKeyMonthPrefix + "5", TKeyMonthPrefix + "6",
	TKeyMonthPrefix + "7", TKeyMonthPrefix + "8", TKeyMonthPrefix + "9",
	TKeyMonthPrefix + "10", TKeyMonthPrefix + "11", TKeyMonthPrefix + "12",
}

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18081"
	DefaultLanguage = "en"
	MinPort         = 1
	MaxPort         = 65535
)

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Go DatePanel//Feed//EN"
	ICalCalName = "Selected date"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "datepanel"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	// FormatUID expects the date as YYYYMMDD and the domain.
	FormatUID = "selection-%s@%s"
	// DateFormatBasic is the compact date layout used in UIDs.
	DateFormatBasic = "20060102"
	// DateFormatDisplay is used for logs and the selected-date label.
	DateFormatDisplay = "2006-01-02"

	// StubVCalendar is the minimal valid iCalendar object served when nothing is selected.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary = "Selected date"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AllowedMethods     = "GET, HEAD"
	AllowedClick       = "POST"
	AddrSeparator      = ":"

	RoutePanel     = "/panel"
	RouteClick     = "/panel/click"
	RouteSelection = "/selection.ics"

	QueryMode  = "mode"
	QueryIndex = "index"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderAllow           = "Allow"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderServer          = "Server"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrUnknownMode      = "unknown panel mode"
	ErrBadIndex         = "cell index must be an integer"
	ErrPrintFailed      = "failed to print panel"
	ErrStoredValue      = "ignoring unreadable stored selection"
	HTTPMsgInitializing = "Nothing selected yet, please try again shortly."
	HTTPMsgMethodNotAll = "Method Not Allowed"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgCacheUpdated  = "Selection feed updated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgCellSelected  = "Cell selected"
	MsgCellNavigated = "Panel navigated"
	MsgCellIgnored   = "Click ignored"
	MsgJumpInvalid   = "Jump year is not a number, ignored"
	MsgModeChanged   = "Panel mode changed"
	MsgGridComputed  = "Grid computed"
	MsgValueRestored = "Stored selection restored"
	MsgSettingsOpen  = "Opening settings window"
	MsgSettingsFocus = "Settings window already open, requesting focus"
	MsgSettingsSaved = "Preferences saved"
	MsgLangChanged   = "Label language changed"

	// User-facing notifications (not translated: shown before the catalog may be ready).
	TitleStartupError = "Go DatePanel: startup error"
	MsgPortBusy       = "Could not start the HTTP server on port %s."
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyMode      = "mode"
	LogKeyIndex     = "index"
	LogKeyAction    = "action"
	LogKeyValue     = "value"
	LogKeyAnchor    = "anchor"
	LogKeyOld       = "old"
	LogKeyNew       = "new"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyDate    = "date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI      = "ui"
	CompUISet   = "ui_settings"
	CompPicker  = "picker"
	CompServer  = "server"
	CompFeed    = "feed"
	CompMain    = "main"
	CompI18n    = "i18n"
)
