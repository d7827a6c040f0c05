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
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Char is a single character.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

// LocalDate is a date without a time zone.
type LocalDate struct {
	Year  int
	Month time.Month
	Day   int
}

// LocalDateOf returns the date part of t.
func LocalDateOf(t time.Time) LocalDate {
	year, month, day := t.Date()
	return LocalDate{year, month, day}
}

func (d LocalDate) String() string {
	return formatYear(d.Year) + fmt.Sprintf("-%02d-%02d", int(d.Month), d.Day)
}

// LocalTime is a time of day without a time zone.
type LocalTime struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// LocalTimeOf returns the time of day part of t.
func LocalTimeOf(t time.Time) LocalTime {
	return LocalTime{t.Hour(), t.Minute(), t.Second(), t.Nanosecond()}
}

// String formats the time as "HH:mm", adding the seconds and a fraction in groups of three digits
// only when they are not zero.
func (t LocalTime) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%02d:%02d", t.Hour, t.Minute)
	if t.Second > 0 || t.Nanosecond > 0 {
		fmt.Fprintf(&b, ":%02d", t.Second)
		b.WriteString(formatFraction(t.Nanosecond))
	}
	return b.String()
}

// LocalDateTime is a date and a time without a time zone.
type LocalDateTime struct {
	Date LocalDate
	Time LocalTime
}

// LocalDateTimeOf returns the wall clock reading of t.
func LocalDateTimeOf(t time.Time) LocalDateTime {
	return LocalDateTime{LocalDateOf(t), LocalTimeOf(t)}
}

func (dt LocalDateTime) String() string {
	return dt.Date.String() + "T" + dt.Time.String()
}

// In returns the instant the date and time designate in loc.
func (dt LocalDateTime) In(loc *time.Location) time.Time {
	return time.Date(dt.Date.Year, dt.Date.Month, dt.Date.Day, dt.Time.Hour, dt.Time.Minute, dt.Time.Second,
		dt.Time.Nanosecond, loc)
}

// MonthDay is a day of the year such as a birthday.
type MonthDay struct {
	Month time.Month
	Day   int
}

func (md MonthDay) String() string {
	return fmt.Sprintf("--%02d-%02d", int(md.Month), md.Day)
}

// Year is a year of the ISO calendar.
type Year int

func (y Year) String() string {
	return formatYear(int(y))
}

// YearMonth is a month of a year.
type YearMonth struct {
	Year  int
	Month time.Month
}

func (ym YearMonth) String() string {
	return formatYear(ym.Year) + fmt.Sprintf("-%02d", int(ym.Month))
}

// ZoneOffset is an offset from UTC in seconds.
type ZoneOffset int

// String formats the offset as "Z" or "+HH:MM", with seconds if there are any.
func (offset ZoneOffset) String() string {
	if offset == 0 {
		return "Z"
	}
	seconds := int(offset)
	sign := "+"
	if seconds < 0 {
		sign = "-"
		seconds = -seconds
	}
	s := fmt.Sprintf("%s%02d:%02d", sign, seconds/3600, seconds/60%60)
	if seconds%60 != 0 {
		s += fmt.Sprintf(":%02d", seconds%60)
	}
	return s
}

// Location returns a fixed time zone with the offset.
func (offset ZoneOffset) Location() *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone(offset.String(), int(offset))
}

// OffsetTime is a time of day with an offset from UTC.
type OffsetTime struct {
	Time   LocalTime
	Offset ZoneOffset
}

func (t OffsetTime) String() string {
	return t.Time.String() + t.Offset.String()
}

// Instant is a point on the time line, written in UTC.
type Instant struct {
	time.Time
}

// String formats the instant as "2006-01-02T15:04:05Z" with a fraction in groups of three digits
// when it is not zero.
func (i Instant) String() string {
	t := i.UTC()
	return LocalDateOf(t).String() + "T" + fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second()) +
		formatFraction(t.Nanosecond()) + "Z"
}

// OffsetDateTime is a date and time with an offset from UTC. The offset is the one of the location
// of the embedded time.
type OffsetDateTime struct {
	time.Time
}

func (dt OffsetDateTime) String() string {
	_, offset := dt.Zone()
	return LocalDateTimeOf(dt.Time).String() + ZoneOffset(offset).String()
}

// ZonedDateTime is a date and time in a time zone. A named location other than Local is written
// after the offset, as in "2007-12-03T10:15:30+01:00[Europe/Paris]".
type ZonedDateTime struct {
	time.Time
}

func (dt ZonedDateTime) String() string {
	_, offset := dt.Zone()
	s := LocalDateTimeOf(dt.Time).String() + ZoneOffset(offset).String()
	if name := dt.Location().String(); isZoneID(name) {
		s += "[" + name + "]"
	}
	return s
}

// isZoneID reports whether name is a region or UTC, as opposed to the name of a fixed offset or the
// local zone.
func isZoneID(name string) bool {
	switch {
	case len(name) == 0, name == "Local", name == "Z":
		return false
	case name[0] == '+', name[0] == '-':
		return false
	}
	return true
}

// Period is an amount of time in calendar units.
type Period struct {
	Years  int
	Months int
	Days   int
}

// String formats the period as "P1Y2M3D", leaving out zero units. The zero period is "P0D".
func (p Period) String() string {
	if p == (Period{}) {
		return "P0D"
	}
	var b strings.Builder
	b.WriteString("P")
	if p.Years != 0 {
		b.WriteString(strconv.Itoa(p.Years) + "Y")
	}
	if p.Months != 0 {
		b.WriteString(strconv.Itoa(p.Months) + "M")
	}
	if p.Days != 0 {
		b.WriteString(strconv.Itoa(p.Days) + "D")
	}
	return b.String()
}

// FormatDuration formats d as an ISO-8601 duration with hours, minutes and seconds such as
// "PT8H6M12.345S". Seconds and nanoseconds of a negative duration are written the way the JVM
// writes them: "PT-0.5S", "PT-1.5S".
func FormatDuration(d time.Duration) string {
	if d == 0 {
		return "PT0S"
	}

	// Whole seconds rounded down and a non-negative nanosecond adjustment
	seconds := int64(d / time.Second)
	nanos := int64(d % time.Second)
	if nanos < 0 {
		nanos += int64(time.Second)
		seconds--
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	var b strings.Builder
	b.WriteString("PT")
	if hours != 0 {
		b.WriteString(strconv.FormatInt(hours, 10) + "H")
	}
	if minutes != 0 {
		b.WriteString(strconv.FormatInt(minutes, 10) + "M")
	}
	if secs == 0 && nanos == 0 && b.Len() > 2 {
		return b.String()
	}

	if secs < 0 && nanos > 0 {
		if secs == -1 {
			b.WriteString("-0")
		} else {
			b.WriteString(strconv.FormatInt(secs+1, 10))
		}
	} else {
		b.WriteString(strconv.FormatInt(secs, 10))
	}

	if nanos > 0 {
		if secs < 0 {
			nanos = int64(time.Second) - nanos
		}
		fraction := strings.TrimRight(fmt.Sprintf("%09d", nanos), "0")
		b.WriteString("." + fraction)
	}

	b.WriteString("S")
	return b.String()
}

// formatYear writes years beyond four digits with a sign as ISO-8601 requires.
func formatYear(year int) string {
	switch {
	case year > 9999:
		return "+" + strconv.Itoa(year)
	case year < 0:
		return fmt.Sprintf("-%04d", -year)
	}
	return fmt.Sprintf("%04d", year)
}

// formatFraction formats nanoseconds as a fraction of a second with 3, 6 or 9 digits, or nothing if
// zero.
func formatFraction(nanos int) string {
	switch {
	case nanos == 0:
		return ""
	case nanos%1000000 == 0:
		return fmt.Sprintf(".%03d", nanos/1000000)
	case nanos%1000 == 0:
		return fmt.Sprintf(".%06d", nanos/1000)
	}
	return fmt.Sprintf(".%09d", nanos)
}
