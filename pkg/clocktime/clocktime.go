// Package clocktime converts 12-hour clock strings ("HH:MM AM/PM") to and
// from absolute minute offsets within a day.
package clocktime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of minutes in one calendar day.
const MinutesPerDay = 1440

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// ToMinutes parses a clock string like "2:00 PM" into a minute offset in
// [0, 1440). 12 AM maps to 0 and 12 PM to 720. An empty string maps to 0,
// a convention inherited from callers that treat "no time" as midnight.
// Any other malformed input is an error.
func ToMinutes(clock string) (int, error) {
	trimmed := strings.TrimSpace(clock)
	if trimmed == "" {
		return 0, nil
	}

	m := clockPattern.FindStringSubmatch(strings.ToUpper(trimmed))
	if m == nil {
		return 0, fmt.Errorf("invalid clock time %q", clock)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	period := m[3]

	if hours < 1 || hours > 12 || minutes > 59 {
		return 0, fmt.Errorf("clock time %q out of range", clock)
	}

	if period == "PM" && hours != 12 {
		hours += 12
	}
	if period == "AM" && hours == 12 {
		hours = 0
	}

	return hours*60 + minutes, nil
}

// FromMinutes formats a minute offset as a zero-padded 12-hour clock string.
// The caller is responsible for keeping minutes within [0, 1440); the
// function does not wrap.
func FromMinutes(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	if hours > 12 {
		hours -= 12
	}
	if hours == 0 {
		hours = 12
	}

	return fmt.Sprintf("%02d:%02d %s", hours, mins, period)
}

// Normalize rewrites a loosely formatted clock token ("2:00pm") into the
// canonical zero-padded "HH:MM AM/PM" form. Unrecognized input is returned
// uppercased and trimmed, unchanged otherwise.
func Normalize(clock string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(clock))
	m := clockPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return cleaned
	}

	hours, _ := strconv.Atoi(m[1])
	return fmt.Sprintf("%02d:%s %s", hours, m[2], m[3])
}
