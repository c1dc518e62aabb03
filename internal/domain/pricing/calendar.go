package pricing

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

var (
	ErrCalendarYearNotLoaded = errors.New("no holiday calendar loaded for year")
	ErrInvalidCalendar       = errors.New("invalid holiday calendar")
)

const (
	DefaultHolidayName     = "Hari Libur"
	DefaultSchoolBreakName = "Libur Sekolah"
)

type Holiday struct {
	Date time.Time
	Name string
}

// SchoolBreak is an inclusive range of high-season days. It may run into the next year.
type SchoolBreak struct {
	Start time.Time
	End   time.Time
	Name  string
}

func (b SchoolBreak) Contains(d time.Time) bool {
	k := dayKey(d)
	return k >= dayKey(b.Start) && k <= dayKey(b.End)
}

type YearData struct {
	Year         int
	Holidays     []Holiday
	SchoolBreaks []SchoolBreak
}

// Calendar is immutable once built and safe for concurrent use.
type Calendar struct {
	years    map[int]struct{}
	holidays map[int]string
	breaks   []SchoolBreak
	ordered  []Holiday
}

func NewCalendar(data ...YearData) (*Calendar, error) {
	cal := &Calendar{
		years:    make(map[int]struct{}, len(data)),
		holidays: make(map[int]string),
	}

	for _, yd := range data {
		if _, dup := cal.years[yd.Year]; dup {
			return nil, fmt.Errorf("%w: year %d declared twice", ErrInvalidCalendar, yd.Year)
		}
		cal.years[yd.Year] = struct{}{}

		for _, h := range yd.Holidays {
			if h.Date.Year() != yd.Year {
				return nil, fmt.Errorf("%w: holiday %s outside year %d", ErrInvalidCalendar, FormatDate(h.Date), yd.Year)
			}
			name := h.Name
			if name == "" {
				name = DefaultHolidayName
			}
			k := dayKey(h.Date)
			if _, dup := cal.holidays[k]; dup {
				return nil, fmt.Errorf("%w: holiday %s declared twice", ErrInvalidCalendar, FormatDate(h.Date))
			}
			cal.holidays[k] = name
			cal.ordered = append(cal.ordered, Holiday{Date: DateOf(h.Date), Name: name})
		}

		for _, b := range yd.SchoolBreaks {
			if b.Start.Year() != yd.Year {
				return nil, fmt.Errorf("%w: school break starting %s outside year %d", ErrInvalidCalendar, FormatDate(b.Start), yd.Year)
			}
			if dayKey(b.End) < dayKey(b.Start) {
				return nil, fmt.Errorf("%w: school break %s ends before it starts", ErrInvalidCalendar, FormatDate(b.Start))
			}
			if b.Name == "" {
				b.Name = DefaultSchoolBreakName
			}
			cal.breaks = append(cal.breaks, SchoolBreak{Start: DateOf(b.Start), End: DateOf(b.End), Name: b.Name})
		}
	}

	sort.Slice(cal.ordered, func(i, j int) bool {
		return cal.ordered[i].Date.Before(cal.ordered[j].Date)
	})
	sort.SliceStable(cal.breaks, func(i, j int) bool {
		return cal.breaks[i].Start.Before(cal.breaks[j].Start)
	})
	return cal, nil
}

func (c *Calendar) HasYear(year int) bool {
	_, ok := c.years[year]
	return ok
}

func (c *Calendar) Years() []int {
	out := make([]int, 0, len(c.years))
	for y := range c.years {
		out = append(out, y)
	}
	sort.Ints(out)
	return out
}

// HolidayName reports the holiday name for d, if d is a listed holiday.
func (c *Calendar) HolidayName(d time.Time) (string, bool) {
	name, ok := c.holidays[dayKey(d)]
	return name, ok
}

func (c *Calendar) SchoolBreakAt(d time.Time) (SchoolBreak, bool) {
	for _, b := range c.breaks {
		if b.Contains(d) {
			return b, true
		}
	}
	return SchoolBreak{}, false
}

func (c *Calendar) Holidays() []Holiday {
	out := make([]Holiday, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// SchoolBreaks returns the loaded breaks ordered by start day.
func (c *Calendar) SchoolBreaks() []SchoolBreak {
	out := make([]SchoolBreak, len(c.breaks))
	copy(out, c.breaks)
	return out
}
