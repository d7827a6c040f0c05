/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package gx

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrInvalidFormat is wrapped by the errors of the parse functions.
var ErrInvalidFormat = errors.New("invalid format")

func invalid(kind string, s string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidFormat, kind, s)
}

// Layouts accepted for the time part of date-time values, most specific first
var timeLayouts = []string{
	"15:04:05.999999999",
	"15:04",
}

func parseWith(kind string, s string, layouts ...string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid(kind, s)
}

// ParseLocalDate parses "2016-01-01".
func ParseLocalDate(s string) (LocalDate, error) {
	t, err := parseWith("local date", s, "2006-01-02")
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDateOf(t), nil
}

// ParseLocalTime parses "12:30", "12:30:45" or "12:30:45.000000001".
func ParseLocalTime(s string) (LocalTime, error) {
	t, err := parseWith("local time", s, timeLayouts...)
	if err != nil {
		return LocalTime{}, err
	}
	return LocalTimeOf(t), nil
}

// ParseLocalDateTime parses "2016-01-01T12:30" with optional seconds and fraction.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	t, err := parseWith("local date-time", s, "2006-01-02T"+timeLayouts[0], "2006-01-02T"+timeLayouts[1])
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTimeOf(t), nil
}

// ParseMonthDay parses "--01-01".
func ParseMonthDay(s string) (MonthDay, error) {
	if !strings.HasPrefix(s, "--") {
		return MonthDay{}, invalid("month-day", s)
	}
	// Any leap year accepts February 29.
	t, err := time.Parse("2006-01-02", "2000-"+s[2:])
	if err != nil {
		return MonthDay{}, invalid("month-day", s)
	}
	return MonthDay{t.Month(), t.Day()}, nil
}

// ParseYear parses "2016".
func ParseYear(s string) (Year, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, invalid("year", s)
	}
	return Year(year), nil
}

// ParseYearMonth parses "2016-06".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := parseWith("year-month", s, "2006-01")
	if err != nil {
		return YearMonth{}, err
	}
	return YearMonth{t.Year(), t.Month()}, nil
}

// ParseZoneOffset parses "Z", "+01", "+01:00" or "+01:00:30".
func ParseZoneOffset(s string) (ZoneOffset, error) {
	if s == "Z" {
		return 0, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return 0, invalid("zone offset", s)
	}

	parts := strings.Split(s[1:], ":")
	if len(parts) > 3 {
		return 0, invalid("zone offset", s)
	}
	limits := []int{18, 59, 59}
	seconds := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || len(part) != 2 || n > limits[i] {
			return 0, invalid("zone offset", s)
		}
		seconds += n * []int{3600, 60, 1}[i]
	}
	if s[0] == '-' {
		seconds = -seconds
	}
	return ZoneOffset(seconds), nil
}

// splitOffset splits a trailing zone offset from s.
func splitOffset(s string) (string, ZoneOffset, bool) {
	if strings.HasSuffix(s, "Z") {
		return s[:len(s)-1], 0, true
	}
	// The offset starts at the last sign after the time separator.
	start := strings.IndexByte(s, 'T') + 1
	i := strings.LastIndexAny(s, "+-")
	if i <= start {
		return "", 0, false
	}
	offset, err := ParseZoneOffset(s[i:])
	if err != nil {
		return "", 0, false
	}
	return s[:i], offset, true
}

// ParseOffsetTime parses "10:15:30+01:00".
func ParseOffsetTime(s string) (OffsetTime, error) {
	i := strings.LastIndexAny(s, "+-Z")
	if i <= 0 {
		return OffsetTime{}, invalid("offset time", s)
	}
	t, err := ParseLocalTime(s[:i])
	if err != nil {
		return OffsetTime{}, invalid("offset time", s)
	}
	offset, err := ParseZoneOffset(s[i:])
	if err != nil {
		return OffsetTime{}, invalid("offset time", s)
	}
	return OffsetTime{t, offset}, nil
}

// ParseInstant parses "2016-12-14T16:39:19.349Z".
func ParseInstant(s string) (Instant, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Instant{}, invalid("instant", s)
	}
	return Instant{t.UTC()}, nil
}

// ParseOffsetDateTime parses "2007-12-03T10:15:30+01:00".
func ParseOffsetDateTime(s string) (OffsetDateTime, error) {
	local, offset, ok := splitOffset(s)
	if !ok {
		return OffsetDateTime{}, invalid("offset date-time", s)
	}
	dt, err := ParseLocalDateTime(local)
	if err != nil {
		return OffsetDateTime{}, invalid("offset date-time", s)
	}
	return OffsetDateTime{dt.In(offset.Location())}, nil
}

// ParseZonedDateTime parses "2007-12-03T10:15:30+01:00[Europe/Paris]". Without a zone in brackets,
// the time is in a fixed zone with the offset.
func ParseZonedDateTime(s string) (ZonedDateTime, error) {
	var zone string
	if strings.HasSuffix(s, "]") {
		i := strings.LastIndexByte(s, '[')
		if i < 0 {
			return ZonedDateTime{}, invalid("zoned date-time", s)
		}
		zone = s[i+1 : len(s)-1]
		s = s[:i]
	}

	dt, err := ParseOffsetDateTime(s)
	if err != nil {
		return ZonedDateTime{}, invalid("zoned date-time", s)
	}
	if len(zone) == 0 {
		if _, offset := dt.Zone(); offset == 0 {
			return ZonedDateTime{dt.In(time.FixedZone("Z", 0))}, nil
		}
		return ZonedDateTime{dt.Time}, nil
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return ZonedDateTime{}, fmt.Errorf("%w: unknown time zone %q", ErrInvalidFormat, zone)
	}
	return ZonedDateTime{dt.In(loc)}, nil
}

var (
	durationPattern = regexp.MustCompile(`(?i)^([-+]?)P(?:([-+]?[0-9]+)D)?` +
		`(T(?:([-+]?[0-9]+)H)?(?:([-+]?[0-9]+)M)?(?:([-+]?[0-9]+)(?:[.,]([0-9]{0,9}))?S)?)?$`)
	periodPattern = regexp.MustCompile(`(?i)^([-+]?)P(?:([-+]?[0-9]+)Y)?(?:([-+]?[0-9]+)M)?` +
		`(?:([-+]?[0-9]+)W)?(?:([-+]?[0-9]+)D)?$`)
)

// ParseDuration parses an ISO-8601 duration in days, hours, minutes and seconds such as
// "PT8H6M12.345S" or "P2DT3H".
func ParseDuration(s string) (time.Duration, error) {
	m := durationPattern.FindStringSubmatch(s)
	if m == nil || m[3] == "T" || (len(m[2]) == 0 && len(m[3]) == 0) {
		return 0, invalid("duration", s)
	}

	var total float64
	var nanos int64
	add := func(field string, unit time.Duration) error {
		if len(field) == 0 {
			return nil
		}
		n, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return invalid("duration", s)
		}
		total += float64(n) * float64(unit)
		nanos += n * int64(unit)
		return nil
	}

	for _, part := range []struct {
		field string
		unit  time.Duration
	}{
		{m[2], 24 * time.Hour},
		{m[4], time.Hour},
		{m[5], time.Minute},
		{m[6], time.Second},
	} {
		if err := add(part.field, part.unit); err != nil {
			return 0, err
		}
	}

	if fraction := m[7]; len(fraction) > 0 {
		f, _ := strconv.Atoi((fraction + "000000000")[:9])
		if strings.HasPrefix(m[6], "-") {
			f = -f
		}
		total += float64(f)
		nanos += int64(f)
	}

	// Detects durations beyond the range of time.Duration.
	if math.Abs(total) > math.MaxInt64 {
		return 0, fmt.Errorf("%w: duration %q is out of range", ErrInvalidFormat, s)
	}

	if m[1] == "-" {
		nanos = -nanos
	}
	return time.Duration(nanos), nil
}

// ParsePeriod parses "P1Y2M3D". Weeks ("P2W") are converted to days.
func ParsePeriod(s string) (Period, error) {
	m := periodPattern.FindStringSubmatch(s)
	if m == nil || (len(m[2])+len(m[3])+len(m[4])+len(m[5])) == 0 {
		return Period{}, invalid("period", s)
	}

	values := make([]int, 4)
	for i, field := range m[2:6] {
		if len(field) == 0 {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return Period{}, invalid("period", s)
		}
		values[i] = n
	}

	p := Period{
		Years:  values[0],
		Months: values[1],
		Days:   values[2]*7 + values[3],
	}
	if m[1] == "-" {
		p = Period{-p.Years, -p.Months, -p.Days}
	}
	return p, nil
}

// ParseChar parses a string of exactly one character.
func ParseChar(s string) (Char, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || r == utf8.RuneError {
		return 0, invalid("character", s)
	}
	return Char(r), nil
}
