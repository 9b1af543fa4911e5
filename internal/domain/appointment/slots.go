package appointment

import "time"

// BusinessHours defines the fixed booking grid: half-hour boundaries from
// opening (inclusive) to closing (exclusive). The grid width is independent
// of the selected service's duration; a long service does not block the
// neighbouring slots. That matches the shop's established behaviour.
type BusinessHours struct {
	OpenHour  int
	CloseHour int
	SlotEvery time.Duration
}

var DefaultBusinessHours = BusinessHours{
	OpenHour:  9,
	CloseHour: 17,
	SlotEvery: 30 * time.Minute,
}

// SlotsForDay enumerates every candidate slot on the grid for the calendar
// day of date, in date's location, in ascending order.
func (bh BusinessHours) SlotsForDay(date time.Time) []time.Time {
	opening := time.Date(date.Year(), date.Month(), date.Day(), bh.OpenHour, 0, 0, 0, date.Location())
	closing := time.Date(date.Year(), date.Month(), date.Day(), bh.CloseHour, 0, 0, 0, date.Location())

	var slots []time.Time
	for cur := opening; cur.Before(closing); cur = cur.Add(bh.SlotEvery) {
		slots = append(slots, cur)
	}
	return slots
}

// DayBounds returns the [start, end) range covering the grid for date's day.
func (bh BusinessHours) DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24 * time.Hour)
}

// OnGrid reports whether t lands exactly on a bookable boundary.
func (bh BusinessHours) OnGrid(t time.Time) bool {
	if t.Hour() < bh.OpenHour || t.Hour() >= bh.CloseHour {
		return false
	}
	if t.Second() != 0 || t.Nanosecond() != 0 {
		return false
	}
	boundary := time.Duration(t.Minute()) * time.Minute
	return boundary%bh.SlotEvery == 0
}

// FreeSlots filters candidates down to those not present in booked.
// Comparison is by instant, so booked timestamps may carry any location.
func FreeSlots(candidates []time.Time, booked []time.Time) []time.Time {
	taken := make(map[int64]struct{}, len(booked))
	for _, b := range booked {
		taken[b.Unix()] = struct{}{}
	}

	free := make([]time.Time, 0, len(candidates))
	for _, s := range candidates {
		if _, ok := taken[s.Unix()]; ok {
			continue
		}
		free = append(free, s)
	}
	return free
}
