package eventlink

import (
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
)

// renderICS builds the VEVENT block for the event. The start keeps local-time
// semantics (the reference timezone, not UTC), matching the deep link.
func (b *Builder) renderICS(event Event, start time.Time) (string, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//kalendo//EN")

	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, uuid.NewString())
	ve.Props.SetText(ical.PropSummary, event.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, b.clock.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, start)
	ve.Props.SetText(ical.PropDuration, icalDuration(b.duration))
	if event.Location != "" {
		ve.Props.SetText(ical.PropLocation, event.Location)
	}
	cal.Children = append(cal.Children, ve)

	var sb strings.Builder
	if err := ical.NewEncoder(&sb).Encode(cal); err != nil {
		return "", fmt.Errorf("failed to encode calendar: %w", err)
	}
	return sb.String(), nil
}

// icalDuration renders a duration as an RFC 5545 DUR value, e.g. "PT1H" or
// "PT1H30M". Sub-minute precision is not needed for event windows.
func icalDuration(d time.Duration) string {
	d = d.Round(time.Minute)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60

	var sb strings.Builder
	sb.WriteString("PT")
	if hours > 0 {
		fmt.Fprintf(&sb, "%dH", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&sb, "%dM", minutes)
	}
	if hours == 0 && minutes == 0 {
		sb.WriteString("0S")
	}
	return sb.String()
}
