package eventlink

import (
	"testing"
	"time"

	"github.com/kalendo/kalendo/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBuilder(t *testing.T) *Builder {
	clock := &utils.MockClock{FixedNow: time.Date(2025, time.March, 9, 12, 0, 0, 0, time.UTC)}
	builder, err := NewBuilder(DefaultTimezone, DefaultDuration, DefaultBaseURL, clock)
	require.NoError(t, err)
	return builder
}

func TestBuild_CalendarLink(t *testing.T) {
	builder := defaultBuilder(t)

	derived, err := builder.Build(Event{
		Title:    "Standup",
		Date:     "2025-03-10",
		Time:     "09:30",
		Location: "Room 4",
	})
	assert.NoError(t, err)

	assert.Equal(t,
		"https://calendar.google.com/calendar/render"+
			"?action=TEMPLATE"+
			"&text=Standup"+
			"&dates=20250310T093000/20250310T103000"+
			"&location=Room%204"+
			"&ctz=Europe%2FKyiv"+
			"&sf=true&output=xml",
		derived.CalendarLink,
	)
}

func TestBuild_EventWindow(t *testing.T) {
	builder := defaultBuilder(t)

	derived, err := builder.Build(Event{Title: "Standup", Date: "2025-03-10", Time: "09:30"})
	assert.NoError(t, err)

	kyiv, err := time.LoadLocation("Europe/Kyiv")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.March, 10, 9, 30, 0, 0, kyiv), derived.Start)
	assert.Equal(t, derived.Start.Add(time.Hour), derived.End)
}

func TestBuild_Idempotent(t *testing.T) {
	builder := defaultBuilder(t)
	event := Event{Title: "Standup", Date: "2025-03-10", Time: "09:30", Location: "Room 4"}

	first, err := builder.Build(event)
	assert.NoError(t, err)
	second, err := builder.Build(event)
	assert.NoError(t, err)

	assert.Equal(t, first.Start, second.Start)
	assert.Equal(t, first.End, second.End)
	assert.Equal(t, first.CalendarLink, second.CalendarLink)
}

func TestBuild_ICSRecord(t *testing.T) {
	builder := defaultBuilder(t)

	derived, err := builder.Build(Event{
		Title:    "Standup",
		Date:     "2025-03-10",
		Time:     "09:30",
		Location: "Room 4",
	})
	assert.NoError(t, err)

	assert.Contains(t, derived.ICS, "BEGIN:VEVENT")
	assert.Contains(t, derived.ICS, "SUMMARY:Standup")
	assert.Contains(t, derived.ICS, "DTSTART")
	assert.Contains(t, derived.ICS, "20250310T093000")
	assert.Contains(t, derived.ICS, "DURATION:PT1H")
	assert.Contains(t, derived.ICS, "LOCATION:Room 4")
}

func TestBuild_ICSTimestampFromClock(t *testing.T) {
	builder := defaultBuilder(t)

	derived, err := builder.Build(Event{Title: "Standup", Date: "2025-03-10", Time: "09:30"})
	assert.NoError(t, err)
	assert.Contains(t, derived.ICS, "DTSTAMP:20250309T120000Z")
}

func TestBuild_EmptyTitleAndLocation(t *testing.T) {
	builder := defaultBuilder(t)

	derived, err := builder.Build(Event{Date: "2025-03-10", Time: "09:30"})
	assert.NoError(t, err)
	assert.Contains(t, derived.CalendarLink, "&text=&")
	assert.Contains(t, derived.CalendarLink, "&location=&")
}

func TestBuild_CustomDuration(t *testing.T) {
	builder, err := NewBuilder(DefaultTimezone, 90*time.Minute, DefaultBaseURL, nil)
	require.NoError(t, err)

	derived, err := builder.Build(Event{Title: "Standup", Date: "2025-03-10", Time: "09:30"})
	assert.NoError(t, err)
	assert.Contains(t, derived.CalendarLink, "dates=20250310T093000/20250310T110000")
	assert.Contains(t, derived.ICS, "DURATION:PT1H30M")
}

func TestNewBuilder_UnknownTimezone(t *testing.T) {
	_, err := NewBuilder("Mars/Olympus", DefaultDuration, DefaultBaseURL, nil)
	assert.Error(t, err)
}

func TestICalDuration(t *testing.T) {
	testCases := []struct {
		duration time.Duration
		want     string
	}{
		{duration: time.Hour, want: "PT1H"},
		{duration: 90 * time.Minute, want: "PT1H30M"},
		{duration: 45 * time.Minute, want: "PT45M"},
		{duration: 0, want: "PT0S"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, icalDuration(tc.duration))
		})
	}
}
