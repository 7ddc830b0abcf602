package timezone

import (
	"errors"
	"strings"
	"time"
)

const DefaultTimezone = "UTC"

var ErrInvalidISODate = errors.New("invalid ISO-8601 date")

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// --------------------------------------------------
// ISO-8601
// --------------------------------------------------

// zoned layouts keep the offset carried by the input
var zonedLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
}

// naive layouts are interpreted in the application location
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO accepts the date forms clients send on the wire: a bare date,
// date + time with minute or (fractional) second precision, 'T' or space
// separator and an optional UTC offset. The result is always expressed in loc.
func ParseISO(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	if s == "" {
		return time.Time{}, ErrInvalidISODate
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(loc), nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, ErrInvalidISODate
}

// FormatISO renders t without offset, adding microseconds only when present.
func FormatISO(t time.Time, loc *time.Location) string {
	t = t.In(loc)
	if t.Nanosecond()/int(time.Microsecond) != 0 {
		return t.Format("2006-01-02T15:04:05.000000")
	}
	return t.Format("2006-01-02T15:04:05")
}
