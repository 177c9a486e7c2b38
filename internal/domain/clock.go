package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// maxClockHours bounds parsed input so minute totals stay well inside int range.
const maxClockHours = 99999

var clockPattern = regexp.MustCompile(`^([0-9]{1,5}):([0-5][0-9])$`)

// ErrInvalidClock is returned for text that is not a valid "H:MM" duration.
var ErrInvalidClock = errors.New("invalid H:MM duration")

// ParseClock parses an "H:MM" duration (e.g. "12:30", "0:05") into minutes.
// Surrounding whitespace is ignored. Minutes must be two digits in 00-59.
func ParseClock(s string) (int, error) {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hours, err := strconv.Atoi(m[1])
	if err != nil || hours > maxClockHours {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	mins, _ := strconv.Atoi(m[2])
	return hours*60 + mins, nil
}

// FormatClock renders minutes as "H:MM". Negative values get a leading '-'.
func FormatClock(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%d:%02d", sign, minutes/60, minutes%60)
}
