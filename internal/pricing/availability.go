package pricing

import (
	"time"

	"tripcost/pkg/utils"
)

type DayStatus string

const (
	DayOpen           DayStatus = "open"
	DayClosedWeekday  DayStatus = "closed_weekday"
	DayClosedSpecific DayStatus = "closed_date"
	DayOutOfRange     DayStatus = "out_of_range"
)

func (s DayStatus) String() string { return string(s) }

// Schedule is the availability window of a bookable package: an
// optional validity range, recurring weekday closures and specific
// closed dates. A nil bound is open-ended.
type Schedule struct {
	ValidFrom      *time.Time
	ValidTo        *time.Time
	ClosedWeekdays []time.Weekday
	ClosedDates    []time.Time
}

// StatusOn reports whether date can be booked. Checks run in a fixed
// precedence, first match wins: validity window, specific closed date,
// recurring weekday closure, open. Any layer that visualizes
// availability must call this same function so what is shown as
// bookable matches what pricing accepts.
func (s Schedule) StatusOn(date time.Time) DayStatus {
	d := utils.DateOnly(date)

	if s.ValidFrom != nil && d.Before(utils.DateOnly(*s.ValidFrom)) {
		return DayOutOfRange
	}
	if s.ValidTo != nil && d.After(utils.DateOnly(*s.ValidTo)) {
		return DayOutOfRange
	}

	for _, closed := range s.ClosedDates {
		if d.Equal(utils.DateOnly(closed)) {
			return DayClosedSpecific
		}
	}

	for _, wd := range s.ClosedWeekdays {
		if d.Weekday() == wd {
			return DayClosedWeekday
		}
	}

	return DayOpen
}
