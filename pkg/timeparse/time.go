package timeparse

import (
	"fmt"
	"strings"
	"time"
)

// CanonicalTime is the layout stored on a draft once a time is accepted.
const CanonicalTime = "15:04"

// 24-hour layouts come first; the "15" hour also matches a single digit, so
// "9:30" and "09:30" both resolve through "15:04". The 12-hour layouts carry
// both meridiem spellings because the parser matches their case exactly.
var timeLayouts = []string{
	"15:04",
	"15.04",
	"15-04",
	"15 04",
	"15:04:05",
	"03:04 PM",
	"3:04 PM",
	"03:04:05 PM",
	"3:04:05 PM",
	"03:04 pm",
	"3:04 pm",
	"03:04:05 pm",
	"3:04:05 pm",
}

// ParseTime matches s against the known time-of-day layouts and returns the
// canonical 24-hour HH:mm rendering of the first layout that fully matches.
func ParseTime(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}
		return parsed.Format(CanonicalTime), nil
	}
	return "", fmt.Errorf("%w: %q is not a recognized time", ErrUnknownFormat, s)
}
