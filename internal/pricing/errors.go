package pricing

import (
	"fmt"
	"time"

	"tripcost/pkg/utils"
)

// UnresolvableError means no conversion path exists between two
// currencies in the current rate table.
type UnresolvableError struct {
	From string
	To   string
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("no exchange rate path from %s to %s", e.From, e.To)
}

// NightRateError reports a seasonal-price gap: one night of one room
// booking has no covering range. Pricing never falls back to zero or a
// nearby rate for such a night.
type NightRateError struct {
	RoomType string
	Night    time.Time
}

func (e *NightRateError) Error() string {
	return fmt.Sprintf("no seasonal rate for room type %q on %s", e.RoomType, utils.FormatDate(e.Night))
}

// ScheduleError reports an activity package that is not open on its
// assigned service date.
type ScheduleError struct {
	Package string
	Date    time.Time
	Status  DayStatus
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("package %q is %s on %s", e.Package, e.Status, utils.FormatDate(e.Date))
}

// CapacityError reports a vehicle option overbooked relative to its
// passenger limit.
type CapacityError struct {
	VehicleType   string
	MaxPassengers int
	Assigned      int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("vehicle %q seats %d but %d travelers are assigned",
		e.VehicleType, e.MaxPassengers, e.Assigned)
}

// SelectionError covers a catalog/itinerary mismatch: a missing entry,
// an unknown room type, package or vehicle, or a payload that does not
// match the entry's category.
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string {
	return e.Reason
}

func selectionErrorf(format string, args ...any) *SelectionError {
	return &SelectionError{Reason: fmt.Sprintf(format, args...)}
}
