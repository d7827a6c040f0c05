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

package gx_test

import (
	"errors"
	"time"
	_ "time/tzdata"

	"github.com/botobag/graphson/gx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Calendar values", func() {
	Context("LocalTime", func() {
		It("leaves out zero seconds", func() {
			Expect(gx.LocalTime{Hour: 9, Minute: 5}.String()).Should(Equal("09:05"))
			Expect(gx.LocalTime{Hour: 9, Minute: 5, Second: 7}.String()).Should(Equal("09:05:07"))
		})

		It("writes fractions in groups of three digits", func() {
			Expect(gx.LocalTime{Hour: 12, Nanosecond: 500000000}.String()).Should(Equal("12:00:00.500"))
			Expect(gx.LocalTime{Hour: 12, Nanosecond: 1000}.String()).Should(Equal("12:00:00.000001"))
			Expect(gx.LocalTime{Hour: 12, Nanosecond: 1}.String()).Should(Equal("12:00:00.000000001"))
		})

		It("parses what it writes", func() {
			for _, s := range []string{"09:05", "23:59:59", "00:00:00.123", "12:30:45.000000001"} {
				t, err := gx.ParseLocalTime(s)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(t.String()).Should(Equal(s))
			}
		})
	})

	It("formats dates with ISO years", func() {
		Expect(gx.LocalDate{Year: 2016, Month: time.January, Day: 2}.String()).Should(Equal("2016-01-02"))
		Expect(gx.LocalDate{Year: 12016, Month: time.December, Day: 31}.String()).Should(Equal("+12016-12-31"))
		Expect(gx.Year(33).String()).Should(Equal("0033"))
		Expect(gx.YearMonth{Year: 2016, Month: time.June}.String()).Should(Equal("2016-06"))
		Expect(gx.MonthDay{Month: time.February, Day: 29}.String()).Should(Equal("--02-29"))
	})

	It("parses dates", func() {
		d, err := gx.ParseLocalDate("2016-01-02")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(d).Should(Equal(gx.LocalDate{Year: 2016, Month: time.January, Day: 2}))

		md, err := gx.ParseMonthDay("--02-29")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(md).Should(Equal(gx.MonthDay{Month: time.February, Day: 29}))

		ym, err := gx.ParseYearMonth("2016-06")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ym).Should(Equal(gx.YearMonth{Year: 2016, Month: time.June}))

		dt, err := gx.ParseLocalDateTime("2016-01-02T03:04")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dt.String()).Should(Equal("2016-01-02T03:04"))

		_, err = gx.ParseLocalDate("2016-13-01")
		Expect(errors.Is(err, gx.ErrInvalidFormat)).Should(BeTrue())
		_, err = gx.ParseMonthDay("02-29")
		Expect(errors.Is(err, gx.ErrInvalidFormat)).Should(BeTrue())
	})

	Context("ZoneOffset", func() {
		It("writes UTC as Z", func() {
			Expect(gx.ZoneOffset(0).String()).Should(Equal("Z"))
			Expect(gx.ZoneOffset(3600).String()).Should(Equal("+01:00"))
			Expect(gx.ZoneOffset(-(5*3600 + 30*60)).String()).Should(Equal("-05:30"))
			Expect(gx.ZoneOffset(3600 + 15).String()).Should(Equal("+01:00:15"))
		})

		It("parses short and long forms", func() {
			for s, expected := range map[string]gx.ZoneOffset{
				"Z":         0,
				"+01":       3600,
				"-05:30":    -(5*3600 + 30*60),
				"+01:00:15": 3615,
			} {
				offset, err := gx.ParseZoneOffset(s)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(offset).Should(Equal(expected))
			}

			for _, s := range []string{"", "01:00", "+1", "+19:00", "+01:60"} {
				_, err := gx.ParseZoneOffset(s)
				Expect(err).Should(HaveOccurred(), s)
			}
		})
	})

	It("writes instants in UTC", func() {
		paris, err := time.LoadLocation("Europe/Paris")
		Expect(err).ShouldNot(HaveOccurred())

		instant := gx.Instant{Time: time.Date(2016, 12, 14, 17, 39, 19, 349000000, paris)}
		Expect(instant.String()).Should(Equal("2016-12-14T16:39:19.349Z"))

		parsed, err := gx.ParseInstant("2016-12-14T16:39:19.349Z")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(parsed.Equal(instant.Time)).Should(BeTrue())
	})

	It("keeps the offset of offset date-times", func() {
		dt, err := gx.ParseOffsetDateTime("2007-12-03T10:15:30+01:00")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(dt.String()).Should(Equal("2007-12-03T10:15:30+01:00"))
		Expect(dt.UTC().Hour()).Should(Equal(9))

		t, err := gx.ParseOffsetTime("10:15:30-08:00")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(t).Should(Equal(gx.OffsetTime{
			Time:   gx.LocalTime{Hour: 10, Minute: 15, Second: 30},
			Offset: -8 * 3600,
		}))
		Expect(t.String()).Should(Equal("10:15:30-08:00"))
	})

	It("writes the region of zoned date-times", func() {
		for _, s := range []string{
			"2007-12-03T10:15:30+01:00[Europe/Paris]",
			"2007-12-03T10:15:30+01:00",
			"2007-12-03T10:15:30Z",
			"2007-12-03T10:15:30Z[UTC]",
		} {
			dt, err := gx.ParseZonedDateTime(s)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(dt.String()).Should(Equal(s))
		}

		_, err := gx.ParseZonedDateTime("2007-12-03T10:15:30+01:00[Nowhere/Atlantis]")
		Expect(errors.Is(err, gx.ErrInvalidFormat)).Should(BeTrue())
	})
})

var _ = Describe("Durations", func() {
	It("formats like the JVM", func() {
		for _, test := range []struct {
			d        time.Duration
			expected string
		}{
			{0, "PT0S"},
			{8*time.Hour + 6*time.Minute + 12345*time.Millisecond, "PT8H6M12.345S"},
			{time.Hour, "PT1H"},
			{90 * time.Second, "PT1M30S"},
			{-500 * time.Millisecond, "PT-0.5S"},
			{-1500 * time.Millisecond, "PT-1.5S"},
			{-90 * time.Minute, "PT-1H-30M"},
			{time.Nanosecond, "PT0.000000001S"},
		} {
			Expect(gx.FormatDuration(test.d)).Should(Equal(test.expected))
		}
	})

	It("parses days, hours, minutes and seconds", func() {
		for s, expected := range map[string]time.Duration{
			"PT8H6M12.345S": 8*time.Hour + 6*time.Minute + 12345*time.Millisecond,
			"P2DT3H":        51 * time.Hour,
			"PT-0.5S":       -500 * time.Millisecond,
			"PT-1.5S":       -1500 * time.Millisecond,
			"-PT6H3M":       -(6*time.Hour + 3*time.Minute),
			"pt20s":         20 * time.Second,
			"PT0S":          0,
		} {
			d, err := gx.ParseDuration(s)
			Expect(err).ShouldNot(HaveOccurred(), s)
			Expect(d).Should(Equal(expected), s)
		}
	})

	It("rejects malformed durations", func() {
		for _, s := range []string{"", "P", "PT", "P1Y", "PT1.5H", "1H", "P200000DT0S"} {
			_, err := gx.ParseDuration(s)
			Expect(errors.Is(err, gx.ErrInvalidFormat)).Should(BeTrue(), s)
		}
	})

	It("reads and writes periods", func() {
		Expect(gx.Period{}.String()).Should(Equal("P0D"))
		Expect(gx.Period{Years: 1, Months: 2, Days: 3}.String()).Should(Equal("P1Y2M3D"))
		Expect(gx.Period{Months: -1}.String()).Should(Equal("P-1M"))

		p, err := gx.ParsePeriod("P2W1D")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p).Should(Equal(gx.Period{Days: 15}))

		p, err = gx.ParsePeriod("-P1Y2M")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(p).Should(Equal(gx.Period{Years: -1, Months: -2}))

		_, err = gx.ParsePeriod("P")
		Expect(errors.Is(err, gx.ErrInvalidFormat)).Should(BeTrue())
	})
})

var _ = Describe("Char", func() {
	It("holds exactly one character", func() {
		c, err := gx.ParseChar("\u00e9")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(c).Should(Equal(gx.Char(0xe9)))
		Expect(c.String()).Should(Equal("\u00e9"))

		_, err = gx.ParseChar("ab")
		Expect(err).Should(HaveOccurred())
		_, err = gx.ParseChar("")
		Expect(err).Should(HaveOccurred())
	})
})
