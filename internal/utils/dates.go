// Date helpers for the Persian (Solar Hijri) calendar used by every stored
// date in the system. Parsing is strict: malformed input is an error, never a
// silent default.
package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	ptime "github.com/yaa110/go-persian-calendar"
)

// ParseDate parses a Persian date such as "1378-2-14" or "1378-02-14".
func ParseDate(s string) (ptime.Time, error) {
	year, month, day, err := splitDate(s)
	if err != nil {
		return ptime.Time{}, err
	}
	return makeDate(year, month, day, 0, 0, 0, 0)
}

// ParseDateTime parses a Persian date and time such as "1404-6-16 22:00".
func ParseDateTime(s string) (ptime.Time, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return ptime.Time{}, fmt.Errorf("expected \"YYYY-M-D HH:MM\", got %q", s)
	}

	year, month, day, err := splitDate(parts[0])
	if err != nil {
		return ptime.Time{}, err
	}

	clock := strings.Split(parts[1], ":")
	if len(clock) != 2 {
		return ptime.Time{}, fmt.Errorf("expected clock \"HH:MM\", got %q", parts[1])
	}
	hour, err := strconv.Atoi(clock[0])
	if err != nil {
		return ptime.Time{}, fmt.Errorf("invalid hour %q", clock[0])
	}
	minute, err := strconv.Atoi(clock[1])
	if err != nil {
		return ptime.Time{}, fmt.Errorf("invalid minute %q", clock[1])
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ptime.Time{}, fmt.Errorf("clock %q out of range", parts[1])
	}

	return makeDate(year, month, day, hour, minute, 0, 0)
}

// FormatTimestamp renders a Persian timestamp in the ISO-like form used for
// persisted created_at / cashback_date values, e.g.
// "1404-06-16T22:00:00.000000".
func FormatTimestamp(t ptime.Time) string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%06d",
		t.Year(), int(t.Month()), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000)
}

// ParseTimestamp parses the form produced by FormatTimestamp.
func ParseTimestamp(s string) (ptime.Time, error) {
	var year, month, day, hour, minute, sec, micro int
	n, err := fmt.Sscanf(s, "%d-%d-%dT%d:%d:%d.%d",
		&year, &month, &day, &hour, &minute, &sec, &micro)
	if err != nil || n != 7 {
		return ptime.Time{}, fmt.Errorf("expected \"YYYY-MM-DDTHH:MM:SS.ffffff\", got %q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || sec < 0 || sec > 59 {
		return ptime.Time{}, fmt.Errorf("clock out of range in %q", s)
	}
	return makeDate(year, month, day, hour, minute, sec, micro*1000)
}

// TimeSpan returns the signed duration from one instant to another.
func TimeSpan(from, to ptime.Time) time.Duration {
	return to.Time().Sub(from.Time())
}

func splitDate(s string) (int, int, int, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("expected \"YYYY-M-D\", got %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year %q", parts[0])
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month %q", parts[1])
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid day %q", parts[2])
	}
	return year, month, day, nil
}

// makeDate builds a calendar value and rejects inputs the calendar would
// silently normalize, such as the 31st of a 30-day month.
func makeDate(year, month, day, hour, minute, sec, nsec int) (ptime.Time, error) {
	if year < 1 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ptime.Time{}, fmt.Errorf("date %04d-%02d-%02d out of range", year, month, day)
	}
	t := ptime.Date(year, ptime.Month(month), day, hour, minute, sec, nsec, ptime.Iran())
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return ptime.Time{}, fmt.Errorf("no such day in the calendar: %04d-%02d-%02d", year, month, day)
	}
	return t, nil
}
