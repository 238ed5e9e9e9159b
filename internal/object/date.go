package object

import (
	"fmt"
	"time"

	"github.com/funvibe/datelang/internal/config"
	"github.com/funvibe/datelang/internal/typesystem"
)

// Date is an immutable calendar date. Attribute assignment goes through
// With, which returns a new value; nothing ever edits a Date in place, so a
// Date read into several slots can be shared freely.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate validates the triple as a real calendar date.
func NewDate(year, month, day int) (*Date, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid date %04d-%02d-%02d: month out of range", year, month, day)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return nil, fmt.Errorf("invalid date %04d-%02d-%02d", year, month, day)
	}
	return &Date{year: year, month: time.Month(month), day: day}, nil
}

func fromTime(t time.Time) *Date {
	return &Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d *Date) time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d *Date) Type() ObjectType             { return DATE_OBJ }
func (d *Date) Inspect() string              { return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day) }
func (d *Date) RuntimeType() typesystem.Type { return typesystem.Date }

func (d *Date) Year() int  { return d.year }
func (d *Date) Month() int { return int(d.month) }
func (d *Date) Day() int   { return d.day }

// Weekday is the ISO weekday: Monday is 1, Sunday is 7.
func (d *Date) Weekday() int {
	wd := int(d.time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Weeknum is the ISO-8601 week number.
func (d *Date) Weeknum() int {
	_, week := d.time().ISOWeek()
	return week
}

// Attr reads a named attribute.
func (d *Date) Attr(name string) (int64, bool) {
	switch name {
	case config.AttrDay:
		return int64(d.day), true
	case config.AttrMonth:
		return int64(d.month), true
	case config.AttrYear:
		return int64(d.year), true
	case config.AttrWeekday:
		return int64(d.Weekday()), true
	case config.AttrWeeknum:
		return int64(d.Weeknum()), true
	}
	return 0, false
}

// With returns a copy of d with one writable attribute replaced.
func (d *Date) With(name string, value int64) (*Date, error) {
	year, month, day := d.year, int(d.month), d.day
	switch name {
	case config.AttrDay:
		day = int(value)
	case config.AttrMonth:
		month = int(value)
	case config.AttrYear:
		year = int(value)
	default:
		return nil, fmt.Errorf("date attribute %q is not writable", name)
	}
	return NewDate(year, month, day)
}

// AddDays shifts the date by n days (n may be negative). Shifts beyond
// config.MaxDayShift in either direction are rejected.
func (d *Date) AddDays(n int64) (*Date, error) {
	if n > config.MaxDayShift || n < -config.MaxDayShift {
		return nil, fmt.Errorf("day shift %d out of range, at most %d days either way", n, config.MaxDayShift)
	}
	return fromTime(d.time().AddDate(0, 0, int(n))), nil
}

const secondsPerDay = 24 * 60 * 60

// DaysSince returns the number of days from other to d.
func (d *Date) DaysSince(other *Date) int64 {
	return (d.time().Unix() - other.time().Unix()) / secondsPerDay
}

func (d *Date) Equal(other *Date) bool {
	return d.year == other.year && d.month == other.month && d.day == other.day
}

func (d *Date) Before(other *Date) bool {
	return d.time().Before(other.time())
}
