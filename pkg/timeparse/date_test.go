package timeparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "ISO date", input: "2025-03-10", want: "2025-03-10"},
		{name: "ISO date with spaces", input: "2025 03 10", want: "2025-03-10"},
		{name: "ISO date with slashes", input: "2025/03/10", want: "2025-03-10"},
		{name: "Two-digit year first", input: "25/03/10", want: "2025-03-10"},
		{name: "Day first with slashes", input: "10/03/2025", want: "2025-03-10"},
		{name: "Day first with dashes", input: "10-03-2025", want: "2025-03-10"},
		{name: "Day first with dots", input: "10.03.2025", want: "2025-03-10"},
		{name: "Day first unpadded", input: "9/3/2025", want: "2025-03-09"},
		{name: "Day first unpadded with dashes", input: "9-3-2025", want: "2025-03-09"},
		{name: "Day first two-digit year", input: "31.12.25", want: "2025-12-31"},
		{name: "Abbreviated month name", input: "10 Mar 2025", want: "2025-03-10"},
		{name: "Abbreviated month name unpadded day", input: "9 Mar 2025", want: "2025-03-09"},
		{name: "Full month name", input: "10 March 2025", want: "2025-03-10"},
		{name: "Month name first with comma", input: "March 10, 2025", want: "2025-03-10"},
		{name: "Comma delimited", input: "10,03,2025", want: "2025-03-10"},
		{name: "Surrounding whitespace is trimmed", input: "  2025-03-10  ", want: "2025-03-10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseDate_DayFirstWinsOverMonthFirst(t *testing.T) {
	// An input that a month-first reading would flip must resolve day-first.
	got, err := ParseDate("10/03/2025")
	assert.NoError(t, err)
	assert.Equal(t, "2025-03-10", got)
}

func TestParseDate_Rejections(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Free text", input: "not-a-date"},
		{name: "Empty string", input: ""},
		{name: "Whitespace only", input: "   "},
		{name: "Day out of range", input: "32/01/2025"},
		{name: "Month out of range", input: "2025-13-01"},
		{name: "Missing year", input: "10/03"},
		{name: "Trailing garbage", input: "2025-03-10 tomorrow"},
		{name: "Unknown delimiter", input: "10_03_2025"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDate(tc.input)
			assert.ErrorIs(t, err, ErrUnknownFormat)
			assert.Empty(t, got)
		})
	}
}

func TestParseDate_CanonicalRoundTrip(t *testing.T) {
	inputs := []string{
		"2025-03-10",
		"10/03/2025",
		"9 Mar 2025",
		"March 10, 2025",
		"31.12.25",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := ParseDate(input)
			assert.NoError(t, err)
			second, err := ParseDate(first)
			assert.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}
