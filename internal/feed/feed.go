// Package feed exports the committed selection as an iCalendar document so that
// calendar clients can subscribe to it.
package feed

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-datepanel/internal/config"
	"github.com/tartampluch/go-datepanel/internal/engine"
)

// Encoder renders selections. Summary may be nil, in which case a fixed English
// summary is used.
type Encoder struct {
	Summary func(date string) string
}

// Encode builds a VCALENDAR holding one all-day VEVENT for value.
// An absent value yields the stub calendar so clients never see an invalid feed.
func (e *Encoder) Encode(value engine.DateValue, stamp time.Time) ([]byte, error) {
	if value.IsZero() {
		return []byte(config.StubVCalendar), nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// The selection is a calendar date in the user's zone; only the stamp is UTC.
	t := value.Time()
	date := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, date.Format(config.DateFormatBasic), config.ICalDomain))
	event.Props.SetText(config.PropSummary, e.summary(date.Format(config.DateFormatDisplay)))

	dtStart := ical.NewProp(config.PropDTStart)
	dtStart.SetDate(date)
	event.Props.Set(dtStart)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(stamp.UTC())
	event.Props.Set(dtStamp)

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyValue, date.Format(config.DateFormatDisplay),
		config.LogKeySizeBytes, buf.Len(),
	)
	return buf.Bytes(), nil
}

func (e *Encoder) summary(date string) string {
	if e == nil || e.Summary == nil {
		return config.FallbackSummary + ": " + date
	}
	return e.Summary(date)
}
