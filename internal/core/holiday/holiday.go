// Package holiday computes Philippine public holidays and classifies
// calendar days for delivery scheduling.
//
// The regular-holiday set covers the fixed national holidays plus the
// movable Easter-derived Holy Week. Special non-working days declared by
// proclamation are not modeled.
package holiday

import (
	"slices"
	"time"

	"padala/internal/platform/logger"

	"github.com/puzpuzpuz/xsync/v4"
)

// nextWorkingDayBound caps the forward scan in NextWorkingDay.
const nextWorkingDayBound = 30

// Date builds a date-only value (midnight UTC). All holiday math in this
// package works on such values.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date,
// ignoring time of day and zone offset.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Easter returns Easter Sunday for the given year using the anonymous
// Gregorian Computus. If the closed form produces a date outside
// March/April (it cannot for any sane year), April 15 is returned as a
// fixed fallback rather than failing the caller.
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1

	if month != 3 && month != 4 {
		logger.Named("holiday").Warn().
			Int("year", year).
			Int("month", month).
			Msg("computus out of range, using april 15 fallback")
		return Date(year, time.April, 15)
	}
	return Date(year, time.Month(month), day)
}

// HolyWeek returns Maundy Thursday, Good Friday, and Black Saturday for
// the given year, in that order.
func HolyWeek(year int) [3]time.Time {
	easter := Easter(year)
	return [3]time.Time{
		easter.AddDate(0, 0, -3), // Maundy Thursday
		easter.AddDate(0, 0, -2), // Good Friday
		easter.AddDate(0, 0, -1), // Black Saturday
	}
}

// IsSunday reports whether d is a Sunday.
func IsSunday(d time.Time) bool { return d.Weekday() == time.Sunday }

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	return d.Weekday() == time.Saturday || d.Weekday() == time.Sunday
}

// Calendar memoizes per-year holiday sets for the process lifetime.
// Concurrent first access of a year may compute the set twice; both
// computations yield identical slices, so no lock is taken.
type Calendar struct {
	all   *xsync.Map[int, []time.Time]
	major *xsync.Map[int, []time.Time]
}

// NewCalendar returns an empty Calendar.
func NewCalendar() *Calendar {
	return &Calendar{
		all:   xsync.NewMap[int, []time.Time](),
		major: xsync.NewMap[int, []time.Time](),
	}
}

// Holidays returns all regular holidays for the year, deduplicated and
// sorted ascending. The result is memoized; callers must not mutate it.
func (c *Calendar) Holidays(year int) []time.Time {
	out, _ := c.all.LoadOrCompute(year, func() ([]time.Time, bool) {
		return computeHolidays(year), false
	})
	return out
}

// MajorHolidays returns the holidays on which most couriers do not
// operate: New Year, Christmas, Maundy Thursday, and Good Friday.
func (c *Calendar) MajorHolidays(year int) []time.Time {
	out, _ := c.major.LoadOrCompute(year, func() ([]time.Time, bool) {
		return computeMajorHolidays(year), false
	})
	return out
}

// IsHoliday reports whether d is a holiday. With majorOnly set, only the
// major set is consulted.
func (c *Calendar) IsHoliday(d time.Time, majorOnly bool) bool {
	var set []time.Time
	if majorOnly {
		set = c.MajorHolidays(d.Year())
	} else {
		set = c.Holidays(d.Year())
	}
	for _, h := range set {
		if SameDate(h, d) {
			return true
		}
	}
	return false
}

// NextWorkingDay returns the first day after d that is neither a Sunday
// nor a holiday under the given policy. The scan is bounded; when the
// bound is exhausted the last date reached is returned.
func (c *Calendar) NextWorkingDay(d time.Time, majorOnly bool) time.Time {
	next := d.AddDate(0, 0, 1)
	for i := 0; i < nextWorkingDayBound; i++ {
		if !IsSunday(next) && !c.IsHoliday(next, majorOnly) {
			return next
		}
		next = next.AddDate(0, 0, 1)
	}
	logger.Named("holiday").Warn().
		Time("after", d).
		Msg("next working day scan exhausted")
	return next
}

// ClearCache evicts all memoized per-year sets. Useful for test isolation
// and explicit year-rollover refresh.
func (c *Calendar) ClearCache() {
	c.all.Clear()
	c.major.Clear()
}

func computeHolidays(year int) []time.Time {
	hs := []time.Time{
		Date(year, time.January, 1),   // New Year's Day
		Date(year, time.April, 9),     // Araw ng Kagitingan (Day of Valor)
		Date(year, time.May, 1),       // Labor Day
		Date(year, time.June, 12),     // Independence Day
		Date(year, time.August, 21),   // Ninoy Aquino Day
		Date(year, time.August, 25),   // National Heroes Day (last Monday of August, fixed approximation)
		Date(year, time.November, 1),  // All Saints' Day
		Date(year, time.November, 30), // Bonifacio Day
		Date(year, time.December, 25), // Christmas Day
		Date(year, time.December, 30), // Rizal Day
		Date(year, time.December, 31), // Last Day of the Year
	}
	hw := HolyWeek(year)
	hs = append(hs, hw[0], hw[1], hw[2])
	return dedupSort(hs)
}

func computeMajorHolidays(year int) []time.Time {
	hw := HolyWeek(year)
	hs := []time.Time{
		Date(year, time.January, 1),   // New Year's Day
		Date(year, time.December, 25), // Christmas Day
		hw[0],                         // Maundy Thursday
		hw[1],                         // Good Friday
	}
	return dedupSort(hs)
}

func dedupSort(in []time.Time) []time.Time {
	seen := make(map[time.Time]struct{}, len(in))
	out := make([]time.Time, 0, len(in))
	for _, d := range in {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b time.Time) int { return a.Compare(b) })
	return out
}
