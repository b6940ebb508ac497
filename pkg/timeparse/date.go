// Package timeparse normalizes free-text dates and times of day into the
// canonical forms stored on an event draft. Matching is strict: a value must
// consume one of the known layouts completely, and layouts are tried in
// order, first full match wins.
package timeparse

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrUnknownFormat = errors.New("unrecognized format")

// CanonicalDate is the layout stored on a draft once a date is accepted.
const CanonicalDate = "2006-01-02"

// Day-first layouts are listed before anything that could read the first
// component as a month, so "10/03/2025" always resolves to March 10th.
var dateLayouts = []string{
	"2006-01-02",
	"2006 01 02",
	"2006/01/02",
	"06-01-02",
	"06 01 02",
	"06/01/02",
	"02-01-2006",
	"02/01/2006",
	"02.01.2006",
	"2-1-2006",
	"2/1/2006",
	"02-01-06",
	"02/01/06",
	"02.01.06",
	"2-1-06",
	"2/1/06",
	"02 Jan 2006",
	"2 Jan 2006",
	"02 January 2006",
	"2 January 2006",
	"January 2, 2006",
	"January 02, 2006",
	"02,01,2006",
}

// ParseDate matches s against the known date layouts and returns the
// canonical YYYY-MM-DD rendering of the first layout that fully matches.
func ParseDate(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return parsed.Format(CanonicalDate), nil
	}
	return "", fmt.Errorf("%w: %q is not a recognized date", ErrUnknownFormat, s)
}
