// Package eventlink derives the calendar artifacts for a completed event:
// a prefilled Google Calendar link and an iCalendar record.
package eventlink

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kalendo/kalendo/internal/utils"
)

const (
	DefaultTimezone = "Europe/Kyiv"
	DefaultDuration = time.Hour
	DefaultBaseURL  = "https://calendar.google.com/calendar/render"
)

// compactStamp is the dates= range format expected by the calendar provider.
const compactStamp = "20060102T150405"

// Event carries the collected fields of a finished draft. Date and Time are
// expected in their canonical forms (YYYY-MM-DD and HH:mm); anything else is
// a bug in the caller's validation.
type Event struct {
	Title    string
	Date     string
	Time     string
	Location string
}

// DerivedEvent is the result of building artifacts for one Event. It is
// rendered into a reply and discarded; nothing here is persisted.
type DerivedEvent struct {
	Start        time.Time
	End          time.Time
	CalendarLink string
	ICS          string
}

type Builder struct {
	loc      *time.Location
	duration time.Duration
	baseURL  string
	clock    utils.Clock
}

func NewBuilder(timezone string, duration time.Duration, baseURL string, clock utils.Clock) (*Builder, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load event timezone: %w", err)
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if clock == nil {
		clock = &utils.SystemClock{}
	}
	return &Builder{loc: loc, duration: duration, baseURL: baseURL, clock: clock}, nil
}

// Build anchors the event's civil date and time in the reference timezone,
// computes the event window, and renders both artifacts.
func (b *Builder) Build(event Event) (DerivedEvent, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", event.Date+" "+event.Time, b.loc)
	if err != nil {
		return DerivedEvent{}, fmt.Errorf("failed to combine event date and time: %w", err)
	}
	end := start.Add(b.duration)

	ics, err := b.renderICS(event, start)
	if err != nil {
		return DerivedEvent{}, fmt.Errorf("failed to render calendar record: %w", err)
	}

	return DerivedEvent{
		Start:        start,
		End:          end,
		CalendarLink: b.renderLink(event, start, end),
		ICS:          ics,
	}, nil
}

// renderLink keeps the provider's parameter order and encodes spaces as %20.
func (b *Builder) renderLink(event Event, start, end time.Time) string {
	return b.baseURL +
		"?action=TEMPLATE" +
		"&text=" + escape(event.Title) +
		"&dates=" + start.Format(compactStamp) + "/" + end.Format(compactStamp) +
		"&location=" + escape(event.Location) +
		"&ctz=" + escape(b.loc.String()) +
		"&sf=true&output=xml"
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
