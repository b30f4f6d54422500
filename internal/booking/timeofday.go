package booking

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const dateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time with second precision and no date component.
// Two values are equal iff their hour, minute and second are equal.
type TimeOfDay struct {
	sec int32 // seconds since midnight, 0..86399
}

// NewTimeOfDay builds a TimeOfDay, rejecting out-of-range components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("time of day %02d:%02d:%02d out of range", hour, minute, second)
	}
	return TimeOfDay{sec: int32(hour*3600 + minute*60 + second)}, nil
}

// MustTimeOfDay is NewTimeOfDay for constants; it panics on invalid input.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf drops the date (and sub-second part) of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return MustTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

// ParseTimeOfDay accepts "15", "15:04" or "15:04:05".
// The bare-hour form matches the keys of the time slot dictionary.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, ":")
	if len(parts) > 3 || s == "" {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
	}

	var hms [3]int
	for i, p := range parts {
		if !isClockField(p) {
			return TimeOfDay{}, fmt.Errorf("invalid time of day %q", s)
		}
		hms[i], _ = strconv.Atoi(p)
	}
	return NewTimeOfDay(hms[0], hms[1], hms[2])
}

// isClockField reports whether p is one or two ASCII digits.
func isClockField(p string) bool {
	if len(p) == 0 || len(p) > 2 {
		return false
	}
	for _, r := range p {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) Hour() int   { return int(t.sec / 3600) }
func (t TimeOfDay) Minute() int { return int(t.sec % 3600 / 60) }
func (t TimeOfDay) Second() int { return int(t.sec % 60) }

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool { return t.sec < u.sec }

// After reports whether t is later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool { return t.sec > u.sec }

// String renders "HH:MM", or "HH:MM:SS" when seconds are set.
func (t TimeOfDay) String() string {
	if t.Second() == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PgTime converts t to the driver's TIME representation.
func (t TimeOfDay) PgTime() pgtype.Time {
	return pgtype.Time{Microseconds: int64(t.sec) * 1_000_000, Valid: true}
}

// timeOfDayFromPg converts a non-null TIME value. Sub-second precision is dropped.
func timeOfDayFromPg(v pgtype.Time) (TimeOfDay, error) {
	if !v.Valid {
		return TimeOfDay{}, fmt.Errorf("null time")
	}
	sec := v.Microseconds / 1_000_000
	if sec < 0 || sec >= 24*3600 {
		return TimeOfDay{}, fmt.Errorf("time value %dus out of range", v.Microseconds)
	}
	return TimeOfDay{sec: int32(sec)}, nil
}

// DateOf returns the calendar date of t as midnight UTC, discarding the clock and zone.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}
