package promotion

import (
	"sort"
	"time"
)

// WithinClosedInterval reports whether the wall clock of local lies in
// [start, end] of a Monday-first week. local must already be expressed in
// the location the points are defined in.
func WithinClosedInterval(local time.Time, start, end WeeklyPoint) bool {
	off := wallOffset(local)
	return off >= start.weekOffset() && off <= end.weekOffset()
}

// NextOccurrence returns the first instant at or after from whose wall
// clock in loc reaches p. A wall time repeated by a backward zone change has
// two instants and either may be returned. A wall time skipped by a forward
// change resolves to the instant the zone changes, which is the first moment
// the wall clock has passed p that day.
func NextOccurrence(from time.Time, p WeeklyPoint, loc *time.Location) time.Time {
	local := from.In(loc)
	days := (int(p.weekday) - int(local.Weekday()) + 7) % 7

	for offset := days; ; offset += 7 {
		for _, t := range wallInstants(local.Year(), local.Month(), local.Day()+offset, p.hour, p.minute, loc) {
			if !t.Before(from) {
				return t
			}
		}
	}
}

// wallInstants lists, in ascending order, the instants whose wall clock in
// loc reads the given date and time. It is empty only when a gap would leave
// nothing at all, which is reported as the instant the gap ends.
func wallInstants(year int, month time.Month, day, hour, minute int, loc *time.Location) []time.Time {
	naive := time.Date(year, month, day, hour, minute, 0, 0, time.UTC)

	var out []time.Time
	for _, around := range []time.Duration{-24 * time.Hour, 24 * time.Hour} {
		_, off := naive.Add(around).In(loc).Zone()
		t := naive.Add(-time.Duration(off) * time.Second).In(loc)
		if !sameWall(t, naive) || contains(out, t) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })

	if len(out) == 0 {
		// Inside a forward gap. Anchoring on the zone in force an hour before
		// lands before the change, and that zone's end is the change itself.
		before := naive.Add(-time.Hour)
		_, off := before.In(loc).Zone()
		_, end := before.Add(-time.Duration(off) * time.Second).In(loc).ZoneBounds()
		if end.IsZero() {
			return []time.Time{time.Date(year, month, day, hour, minute, 0, 0, loc)}
		}
		return []time.Time{end.In(loc)}
	}
	return out
}

func sameWall(t, naive time.Time) bool {
	y, mo, d := t.Date()
	ny, nmo, nd := naive.Date()
	return y == ny && mo == nmo && d == nd && t.Hour() == naive.Hour() && t.Minute() == naive.Minute()
}

func contains(ts []time.Time, t time.Time) bool {
	for _, x := range ts {
		if x.Equal(t) {
			return true
		}
	}
	return false
}

// nextTransition is the first instant after local at which the window's
// state stops being active. Normally that is the next occurrence of the
// boundary point, but a zone change that moves the wall clock across a
// boundary flips the state earlier.
func nextTransition(local time.Time, p, start, end WeeklyPoint, active bool) time.Time {
	loc := local.Location()
	next := NextOccurrence(local, p, loc)

	_, zoneEnd := local.ZoneBounds()
	if zoneEnd.IsZero() || !zoneEnd.After(local) || !zoneEnd.Before(next) {
		return next
	}
	if WithinClosedInterval(zoneEnd.In(loc), start, end) != active {
		return zoneEnd.In(loc)
	}
	return next
}

// hoursUntil rounds up to whole hours and never reports less than one.
func hoursUntil(from, to time.Time) int {
	d := to.Sub(from)
	hours := int(d / time.Hour)
	if d%time.Hour > 0 {
		hours++
	}
	if hours < 1 {
		return 1
	}
	return hours
}
