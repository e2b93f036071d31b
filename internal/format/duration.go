package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var relativePattern = regexp.MustCompile(`^\s*(\d+)\s*([a-zA-Z]+)\s*$`)

// ResolveRelative resolves a relative duration like "6 months" or "1 hour"
// against now and returns the resulting instant in UTC. Day, week, month,
// and year units use calendar arithmetic, so "1 month" from January 31st
// lands where the calendar says, not 30 days later. Plain Go durations
// ("90m", "12h30m") are accepted as well.
func ResolveRelative(now time.Time, value string) (time.Time, error) {
	if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
		return now.Add(d).UTC(), nil
	}

	match := relativePattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, fmt.Errorf(`invalid duration %q, expected something like "6 months"`, value)
	}

	n, err := strconv.Atoi(match[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid duration %q: %w", value, err)
	}

	switch strings.ToLower(match[2]) {
	case "second", "seconds", "sec", "secs":
		return now.Add(time.Duration(n) * time.Second).UTC(), nil
	case "minute", "minutes", "min", "mins":
		return now.Add(time.Duration(n) * time.Minute).UTC(), nil
	case "hour", "hours", "hr", "hrs":
		return now.Add(time.Duration(n) * time.Hour).UTC(), nil
	case "day", "days":
		return now.AddDate(0, 0, n).UTC(), nil
	case "week", "weeks":
		return now.AddDate(0, 0, 7*n).UTC(), nil
	case "month", "months":
		return now.AddDate(0, n, 0).UTC(), nil
	case "year", "years":
		return now.AddDate(n, 0, 0).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("invalid duration %q: unknown unit %q", value, match[2])
}
