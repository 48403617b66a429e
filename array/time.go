package array

import (
	"fmt"
	"strings"
	"time"
)

// CF time decoding. NetCDF time coordinates are numeric offsets from an
// epoch declared in the "units" attribute ("days since 1850-01-01"), with
// an optional non-standard calendar. Non-standard calendars are aligned on
// years and converted to the standard calendar at load time, so plotting
// code only ever sees time.Time.

var cfUnitSeconds = map[string]float64{
	"seconds": 1,
	"second":  1,
	"secs":    1,
	"sec":     1,
	"s":       1,
	"minutes": 60,
	"minute":  60,
	"mins":    60,
	"min":     60,
	"hours":   3600,
	"hour":    3600,
	"hrs":     3600,
	"hr":      3600,
	"h":       3600,
	"days":    86400,
	"day":     86400,
	"d":       86400,
}

// noLeapMonthDays are month lengths of the 365_day calendar.
var noLeapMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DecodeCFTime converts numeric offsets to time.Time given CF "units" and
// "calendar" attributes. An empty calendar means "standard".
func DecodeCFTime(values []float64, units, calendar string) ([]time.Time, error) {
	unit, epoch, err := parseCFUnits(units)
	if err != nil {
		return nil, err
	}

	cal := strings.ToLower(strings.TrimSpace(calendar))
	out := make([]time.Time, len(values))
	switch cal {
	case "", "standard", "gregorian", "proleptic_gregorian":
		for i, v := range values {
			out[i] = epoch.Add(time.Duration(v * unit * float64(time.Second)))
		}
	case "noleap", "365_day":
		for i, v := range values {
			out[i] = addFixedYearDays(epoch, v*unit/86400, 365)
		}
	case "all_leap", "366_day":
		for i, v := range values {
			out[i] = addFixedYearDays(epoch, v*unit/86400, 366)
		}
	case "360_day":
		for i, v := range values {
			out[i] = add360Days(epoch, v*unit/86400)
		}
	default:
		return nil, fmt.Errorf("unsupported calendar %q", calendar)
	}
	return out, nil
}

// parseCFUnits splits "days since 1850-01-01 00:00:00" into a unit scale
// (seconds per step) and the epoch.
func parseCFUnits(units string) (float64, time.Time, error) {
	fields := strings.SplitN(strings.TrimSpace(units), " since ", 2)
	if len(fields) != 2 {
		return 0, time.Time{}, fmt.Errorf("time units %q: missing 'since'", units)
	}
	scale, ok := cfUnitSeconds[strings.ToLower(strings.TrimSpace(fields[0]))]
	if !ok {
		return 0, time.Time{}, fmt.Errorf("time units %q: unknown unit %q", units, fields[0])
	}

	stamp := strings.TrimSpace(fields[1])
	stamp = strings.TrimSuffix(stamp, " UTC")
	for _, layout := range []string{
		"2006-01-02 15:04:05.9",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006-1-2 15:4:5",
		"2006-1-2",
	} {
		if t, err := time.Parse(layout, stamp); err == nil {
			return scale, t, nil
		}
	}
	return 0, time.Time{}, fmt.Errorf("time units %q: cannot parse epoch %q", units, stamp)
}

// addFixedYearDays advances the epoch by whole days in a calendar where
// every year has yearLen days, aligning the result on the standard
// calendar's year/month/day.
func addFixedYearDays(epoch time.Time, days float64, yearLen int) time.Time {
	whole := int(days)
	frac := days - float64(whole)

	year := epoch.Year()
	// days into the fixed-calendar year at the epoch
	doy := fixedDayOfYear(epoch, yearLen)

	total := doy + whole
	year += total / yearLen
	total %= yearLen
	if total < 0 {
		total += yearLen
		year--
	}

	month, day := 1, total+1
	lengths := noLeapMonthDays
	if yearLen == 366 {
		lengths[1] = 29
	}
	for m, n := range lengths {
		if day <= n {
			month = m + 1
			break
		}
		day -= n
	}

	t := time.Date(year, time.Month(month), day, epoch.Hour(), epoch.Minute(), epoch.Second(), 0, time.UTC)
	return t.Add(time.Duration(frac * 24 * float64(time.Hour)))
}

// fixedDayOfYear is the zero-based day of year of the epoch in a fixed
// 365/366-day calendar.
func fixedDayOfYear(epoch time.Time, yearLen int) int {
	lengths := noLeapMonthDays
	if yearLen == 366 {
		lengths[1] = 29
	}
	doy := epoch.Day() - 1
	for m := 0; m < int(epoch.Month())-1; m++ {
		doy += lengths[m]
	}
	return doy
}

// add360Days advances the epoch through the 360-day calendar (twelve
// 30-day months), clamping day 30 of short months to the standard
// calendar's last day.
func add360Days(epoch time.Time, days float64) time.Time {
	whole := int(days)
	frac := days - float64(whole)

	year := epoch.Year()
	doy := (int(epoch.Month())-1)*30 + epoch.Day() - 1

	total := doy + whole
	year += total / 360
	total %= 360
	if total < 0 {
		total += 360
		year--
	}

	month := total/30 + 1
	day := total%30 + 1
	// clamp to real month lengths (e.g. Feb 30 -> Feb 28)
	maxDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > maxDay {
		day = maxDay
	}

	t := time.Date(year, time.Month(month), day, epoch.Hour(), epoch.Minute(), epoch.Second(), 0, time.UTC)
	return t.Add(time.Duration(frac * 24 * float64(time.Hour)))
}
