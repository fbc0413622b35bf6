package domain

import "time"

// CivilMoment is a naive local date and clock time as read off a birth
// certificate, before any timezone is attached. Field ranges are enforced by
// the parser; the moment itself carries no zone information.
type CivilMoment struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Shift returns the moment moved by a whole number of hours, carried through
// the calendar. Used to step over spring-forward gaps.
func (m CivilMoment) Shift(hours int) CivilMoment {
	t := time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour+hours, m.Minute, m.Second, 0, time.UTC)
	return CivilMoment{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
