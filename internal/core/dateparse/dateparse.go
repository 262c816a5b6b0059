// Package dateparse interprets due-date expressions. It is the single
// place where date strings are parsed; all format support lives here.
package dateparse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformed is returned when the input matches none of the
	// recognized grammars.
	ErrMalformed = errors.New("malformed date expression")
	// ErrInvalidDate is returned when the input is well-formed but
	// names a date that does not exist on the calendar.
	ErrInvalidDate = errors.New("invalid calendar date")
)

const (
	layoutDateTime  = "2006-01-02 15:04"
	layoutDate      = "2006-01-02"
	layoutDateSlash = "2006/01/02"
)

var (
	relativeRe = regexp.MustCompile(`^\+(\d+)([dwm])$`)
	dateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}$`)
	dateRe     = regexp.MustCompile(`^\d{4}([-/])\d{2}([-/])\d{2}$`)
)

// Parse converts a due-date expression into a timestamp. Grammars are
// tried in a fixed precedence order:
//
//  1. Relative: +<N><unit> with unit d (days), w (weeks), or m
//     (calendar months, clamping the day when the target month is
//     shorter). The time-of-day of ref is preserved.
//  2. Absolute date-time: YYYY-MM-DD HH:MM (24-hour clock).
//  3. Absolute date: YYYY-MM-DD or YYYY/MM/DD, at start of day.
//
// Times are naive local time; no timezone is ever inferred.
func Parse(raw string, ref time.Time) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty expression", ErrMalformed)
	}

	if strings.HasPrefix(raw, "+") {
		return parseRelative(raw, ref)
	}

	return parseAbsolute(raw)
}

func parseRelative(raw string, ref time.Time) (time.Time, error) {
	m := relativeRe.FindStringSubmatch(raw)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: %q is not +<N><d|w|m>", ErrMalformed, raw)
	}

	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return time.Time{}, fmt.Errorf("%w: offset in %q must be a positive integer", ErrMalformed, raw)
	}

	switch m[2] {
	case "d":
		return ref.AddDate(0, 0, n), nil
	case "w":
		return ref.AddDate(0, 0, 7*n), nil
	case "m":
		return addMonths(ref, n), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unknown unit in %q", ErrMalformed, raw)
	}
}

// addMonths advances t by n calendar months, clamping the day-of-month
// when the target month is shorter (Jan 31 +1m lands on the last day
// of February, not March 3).
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + n
	year += total / 12
	target := time.Month(total%12 + 1)

	if last := daysIn(year, target); day > last {
		day = last
	}

	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// Day 0 of the following month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func parseAbsolute(raw string) (time.Time, error) {
	var layout string

	switch {
	case dateTimeRe.MatchString(raw):
		layout = layoutDateTime
	case dateRe.MatchString(raw):
		// Both separators accepted, but not mixed.
		m := dateRe.FindStringSubmatch(raw)
		if m[1] != m[2] {
			return time.Time{}, fmt.Errorf("%w: mixed separators in %q", ErrMalformed, raw)
		}
		layout = layoutDate
		if m[1] == "/" {
			layout = layoutDateSlash
		}
	default:
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformed, raw)
	}

	t, err := time.ParseInLocation(layout, raw, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}

	return t, nil
}
