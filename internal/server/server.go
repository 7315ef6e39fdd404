package server

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
	"github.com/tartampluch/go-datepanel/internal/feed"
	"github.com/tartampluch/go-datepanel/internal/picker"
)

// cacheItem stores the rendered selection feed and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// PanelServer exposes a picker over HTTP on the loopback interface and serves the
// committed selection as an iCalendar feed.
type PanelServer struct {
	// cache uses atomic.Pointer for lock-free reads: the feed is polled often by
	// calendar clients but only changes when a value is committed.
	cache   atomic.Pointer[cacheItem]
	Port    string
	Picker  *picker.Picker
	Encoder *feed.Encoder
}

// NewPanelServer creates a new instance of the server.
func NewPanelServer(port string, p *picker.Picker, enc *feed.Encoder) *PanelServer {
	if enc == nil {
		enc = &feed.Encoder{}
	}
	return &PanelServer{
		Port:    port,
		Picker:  p,
		Encoder: enc,
	}
}

// Handler returns the routing table.
func (s *PanelServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(config.RoutePanel, s.handlePanel)
	mux.HandleFunc(config.RouteClick, s.handleClick)
	mux.HandleFunc(config.RouteSelection, s.handleSelectionFeed)
	return mux
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *PanelServer) Start(ctx context.Context) error {
	if s.Port == "" {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + s.Port,
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Publish renders value as the served feed. It is meant to be wired as the
// picker's value-changed callback.
func (s *PanelServer) Publish(value engine.DateValue) {
	data, err := s.Encoder.Encode(value, time.Now())
	if err != nil {
		slog.Error(config.ErrICalEncode,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		return
	}
	s.Update(data)
}

// Update atomically replaces the served feed.
func (s *PanelServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	item := &cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	}

	// Concurrent readers see either the old or the new complete item, never a partial state.
	s.cache.Store(item)

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// -----------------------------------------------------------------------------
// Panel API
// -----------------------------------------------------------------------------

type cellView struct {
	Index    int    `json:"index"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Disabled bool   `json:"disabled"`
	Active   bool   `json:"active"`
	Now      bool   `json:"now"`
	Class    string `json:"class,omitempty"`
}

type gridView struct {
	Mode   string     `json:"mode"`
	Anchor string     `json:"anchor"`
	Value  string     `json:"value,omitempty"`
	Cells  []cellView `json:"cells"`
}

type clickView struct {
	Action string   `json:"action"`
	Value  string   `json:"value,omitempty"`
	Grid   gridView `json:"grid"`
}

func formatDate(d engine.DateValue) string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(time.RFC3339)
}

func newGridView(g engine.Grid) gridView {
	v := gridView{
		Mode:   g.Granularity.String(),
		Anchor: formatDate(g.Anchor),
		Value:  formatDate(g.Selected),
		Cells:  make([]cellView, 0, len(g.Cells)),
	}
	for i, c := range g.Cells {
		v.Cells = append(v.Cells, cellView{
			Index:    i,
			Label:    c.Label,
			Kind:     c.Kind.String(),
			Disabled: c.Disabled,
			Active:   c.Flags.Active,
			Now:      c.Flags.IsNow,
			Class:    c.Flags.Class,
		})
	}
	return v
}

// parseMode maps the query value to a granularity. An empty value keeps the current mode.
func parseMode(raw string) (engine.Granularity, bool, error) {
	switch raw {
	case "":
		return 0, false, nil
	case config.ModeMonth:
		return engine.GranularityMonth, true, nil
	case config.ModeYear:
		return engine.GranularityYear, true, nil
	default:
		return 0, false, fmt.Errorf("%s: %q", config.ErrUnknownMode, raw)
	}
}

func (s *PanelServer) applyMode(w http.ResponseWriter, r *http.Request) bool {
	mode, ok, err := parseMode(r.URL.Query().Get(config.QueryMode))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	if ok {
		s.Picker.SetMode(mode)
	}
	return true
}

// handlePanel serves the current grid as JSON.
func (s *PanelServer) handlePanel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}
	if !s.applyMode(w, r) {
		return
	}
	s.writeJSON(w, r, newGridView(s.Picker.Grid()))
}

// handleClick activates one cell and returns the action with the refreshed grid.
func (s *PanelServer) handleClick(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set(config.HeaderAllow, config.AllowedClick)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}
	if !s.applyMode(w, r) {
		return
	}

	index, err := strconv.Atoi(r.URL.Query().Get(config.QueryIndex))
	if err != nil {
		http.Error(w, config.ErrBadIndex, http.StatusBadRequest)
		return
	}

	action := s.Picker.Click(index)
	s.writeJSON(w, r, clickView{
		Action: action.Kind.String(),
		Value:  formatDate(action.Value),
		Grid:   newGridView(s.Picker.Grid()),
	})
}

func (s *PanelServer) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set(config.HeaderContentType, config.MimeJSON)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderServer, config.UserAgent)
	if r.Method == http.MethodHead {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error(config.ErrWriteResp,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
	}
}

// -----------------------------------------------------------------------------
// Selection Feed
// -----------------------------------------------------------------------------

// handleSelectionFeed serves the ICS content with HTTP caching support.
func (s *PanelServer) handleSelectionFeed(w http.ResponseWriter, r *http.Request) {
	// 1. Method Validation
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set(config.HeaderAllow, config.AllowedMethods)
		http.Error(w, config.HTTPMsgMethodNotAll, http.StatusMethodNotAllowed)
		return
	}

	// 2. Load Data (Atomic / Lock-Free)
	item := s.cache.Load()

	// 3. Readiness Check
	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	// 4. Set Response Headers
	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	// 5. Check Conditional Headers
	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	// 6. Serve Content
	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}
