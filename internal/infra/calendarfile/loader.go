// Package calendarfile loads the high-season calendar from YAML.
package calendarfile

import (
	_ "embed"
	"log/slog"
	"os"
	"time"

	"villa-booking/internal/domain/pricing"
	"villa-booking/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed calendar.yaml
var embedded []byte

type file struct {
	Years []yearEntry `yaml:"years"`
}

type yearEntry struct {
	Year         int          `yaml:"year"`
	Holidays     []dateEntry  `yaml:"holidays"`
	SchoolBreaks []rangeEntry `yaml:"school_breaks"`
}

type dateEntry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

type rangeEntry struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
	Name  string `yaml:"name"`
}

// Load reads the calendar at path, or the embedded one when path is empty.
func Load(path string) (*pricing.Calendar, error) {
	data := embedded
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.Wrapf(err, "failed to read calendar file %s", path)
		}
		data = b
	}

	cal, err := Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Info("Holiday calendar loaded", slog.String("path", path), slog.Any("years", cal.Years()))
	return cal, nil
}

func Parse(data []byte) (*pricing.Calendar, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode calendar"), pricing.ErrInvalidCalendar)
	}
	if len(f.Years) == 0 {
		return nil, errs.Wrap(pricing.ErrInvalidCalendar, "calendar declares no years")
	}

	years := make([]pricing.YearData, 0, len(f.Years))
	for _, y := range f.Years {
		yd := pricing.YearData{Year: y.Year}
		for _, h := range y.Holidays {
			d, err := parseDate(h.Date, y.Year)
			if err != nil {
				return nil, err
			}
			yd.Holidays = append(yd.Holidays, pricing.Holiday{Date: d, Name: h.Name})
		}
		for _, b := range y.SchoolBreaks {
			start, err := parseDate(b.Start, y.Year)
			if err != nil {
				return nil, err
			}
			end, err := parseDate(b.End, y.Year)
			if err != nil {
				return nil, err
			}
			yd.SchoolBreaks = append(yd.SchoolBreaks, pricing.SchoolBreak{Start: start, End: end, Name: b.Name})
		}
		years = append(years, yd)
	}
	return pricing.NewCalendar(years...)
}

func parseDate(s string, year int) (time.Time, error) {
	d, err := pricing.ParseDate(s)
	if err != nil {
		return time.Time{}, errs.Mark(errs.Wrapf(err, "bad date %q in year %d", s, year), pricing.ErrInvalidCalendar)
	}
	return d, nil
}
