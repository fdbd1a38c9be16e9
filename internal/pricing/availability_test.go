package pricing

import (
	"testing"
	"time"
)

func TestStatusOnPrecedence(t *testing.T) {
	from := date(2026, time.March, 1)
	to := date(2026, time.March, 31)

	// 2026-03-09 is a Monday.
	sched := Schedule{
		ValidFrom:      &from,
		ValidTo:        &to,
		ClosedWeekdays: []time.Weekday{time.Monday},
		ClosedDates:    []time.Time{date(2026, time.March, 9), date(2026, time.March, 12)},
	}

	cases := []struct {
		name string
		day  time.Time
		want DayStatus
	}{
		{"before window", date(2026, time.February, 28), DayOutOfRange},
		{"after window", date(2026, time.April, 1), DayOutOfRange},
		{"specific closure wins over weekday", date(2026, time.March, 9), DayClosedSpecific},
		{"specific closure", date(2026, time.March, 12), DayClosedSpecific},
		{"recurring weekday closure", date(2026, time.March, 16), DayClosedWeekday},
		{"plain open day", date(2026, time.March, 10), DayOpen},
		{"window bounds are inclusive", date(2026, time.March, 31), DayOpen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sched.StatusOn(tc.day); got != tc.want {
				t.Fatalf("StatusOn(%s) = %s, want %s", tc.day.Format("2006-01-02"), got, tc.want)
			}
		})
	}
}

func TestStatusOnOpenEndedWindow(t *testing.T) {
	from := date(2026, time.March, 1)

	onlyFrom := Schedule{ValidFrom: &from}
	if got := onlyFrom.StatusOn(date(2030, time.January, 1)); got != DayOpen {
		t.Fatalf("open upper bound should accept any later date, got %s", got)
	}
	if got := onlyFrom.StatusOn(date(2026, time.February, 1)); got != DayOutOfRange {
		t.Fatalf("date before lower bound should be out of range, got %s", got)
	}

	unbounded := Schedule{}
	if got := unbounded.StatusOn(date(1999, time.July, 4)); got != DayOpen {
		t.Fatalf("no bounds means no date is out of range, got %s", got)
	}
}

func TestStatusOnOutOfRangeBeatsClosures(t *testing.T) {
	from := date(2026, time.March, 1)
	to := date(2026, time.March, 31)

	// 2026-04-06 is a Monday and a specific closure, but outside the window.
	sched := Schedule{
		ValidFrom:      &from,
		ValidTo:        &to,
		ClosedWeekdays: []time.Weekday{time.Monday},
		ClosedDates:    []time.Time{date(2026, time.April, 6)},
	}

	if got := sched.StatusOn(date(2026, time.April, 6)); got != DayOutOfRange {
		t.Fatalf("window check must run first, got %s", got)
	}
}

func TestStatusOnIgnoresClock(t *testing.T) {
	sched := Schedule{ClosedDates: []time.Time{date(2026, time.March, 12)}}

	noon := time.Date(2026, time.March, 12, 12, 30, 0, 0, time.UTC)
	if got := sched.StatusOn(noon); got != DayClosedSpecific {
		t.Fatalf("clock part must not matter, got %s", got)
	}
}
