package promotion

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidWeekday     = errors.New("invalid weekday")
	ErrInvalidClock       = errors.New("invalid time of day, expected HH:MM")
	ErrInvalidWeeklyPoint = errors.New("invalid weekly point, expected \"<weekday> HH:MM\"")
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// WeeklyPoint is a weekday plus a wall-clock time of day, with minute
// resolution. It has no timezone of its own; a Rule anchors it.
type WeeklyPoint struct {
	weekday time.Weekday
	hour    int
	minute  int
}

func NewWeeklyPoint(weekday time.Weekday, hour, minute int) (WeeklyPoint, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return WeeklyPoint{}, ErrInvalidWeekday
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return WeeklyPoint{}, ErrInvalidClock
	}
	return WeeklyPoint{weekday: weekday, hour: hour, minute: minute}, nil
}

// ParseWeeklyPoint reads values such as "friday 09:00" or "Sun 23:59".
func ParseWeeklyPoint(s string) (WeeklyPoint, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return WeeklyPoint{}, fmt.Errorf("%w: %q", ErrInvalidWeeklyPoint, s)
	}

	weekday, err := ParseWeekday(fields[0])
	if err != nil {
		return WeeklyPoint{}, err
	}

	hour, minute, err := ParseClock(fields[1])
	if err != nil {
		return WeeklyPoint{}, err
	}

	return NewWeeklyPoint(weekday, hour, minute)
}

func ParseWeekday(day string) (time.Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(day))
	if weekday, ok := weekdayNames[normalized]; ok {
		return weekday, nil
	}
	return time.Sunday, fmt.Errorf("%w: %q", ErrInvalidWeekday, day)
}

func ParseClock(v string) (hour, minute int, err error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, 0, ErrInvalidClock
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidClock, v)
	}
	return t.Hour(), t.Minute(), nil
}

func (p WeeklyPoint) Weekday() time.Weekday { return p.weekday }
func (p WeeklyPoint) Hour() int             { return p.hour }
func (p WeeklyPoint) Minute() int           { return p.minute }

func (p WeeklyPoint) String() string {
	return fmt.Sprintf("%s %02d:%02d", p.weekday, p.hour, p.minute)
}

// weekOffset places p on a Monday-first week.
func (p WeeklyPoint) weekOffset() time.Duration {
	return time.Duration(dayIndex(p.weekday))*24*time.Hour +
		time.Duration(p.hour)*time.Hour +
		time.Duration(p.minute)*time.Minute
}

// dayIndex numbers weekdays Monday=0 … Sunday=6 so that a Friday→Sunday
// window is ordered inside one cycle.
func dayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// wallOffset is the wall-clock distance of t from the Monday 00:00 that
// starts its week, read in t's own location.
func wallOffset(t time.Time) time.Duration {
	return time.Duration(dayIndex(t.Weekday()))*24*time.Hour +
		time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
}
