package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"natal-chart-service/internal/domain"
)

// ParseCivilMoment builds a CivilMoment from wire strings. The date must be
// YYYY-MM-DD. The time accepts ':' or '.' separators with optional seconds,
// so "14.30" and "14:30:00" both parse. Impossible calendar dates such as
// February 30th are rejected here rather than silently normalized downstream.
func ParseCivilMoment(date, clock string) (domain.CivilMoment, error) {
	year, month, day, err := parseCivilDate(date)
	if err != nil {
		return domain.CivilMoment{}, err
	}

	hour, minute, second, err := parseCivilTime(clock)
	if err != nil {
		return domain.CivilMoment{}, err
	}

	m := domain.CivilMoment{
		Year:   year,
		Month:  month,
		Day:    day,
		Hour:   hour,
		Minute: minute,
		Second: second,
	}

	if err := validateCalendarDate(m); err != nil {
		return domain.CivilMoment{}, err
	}

	return m, nil
}

func parseCivilDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("date %q must be YYYY-MM-DD: %w", s, domain.ErrMalformedInput)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("date %q has non-numeric field %q: %w", s, p, domain.ErrMalformedInput)
		}
		nums[i] = n
	}

	year, month, day = nums[0], nums[1], nums[2]
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("month %d out of range [1, 12]: %w", month, domain.ErrMalformedInput)
	}
	if day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("day %d out of range [1, 31]: %w", day, domain.ErrMalformedInput)
	}

	return year, month, day, nil
}

func parseCivilTime(s string) (hour, minute, second int, err error) {
	// Some data sources write clock times with dots.
	norm := strings.ReplaceAll(strings.TrimSpace(s), ".", ":")

	parts := strings.Split(norm, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, 0, 0, fmt.Errorf("time %q must be HH:MM or HH:MM:SS: %w", s, domain.ErrMalformedInput)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, convErr := strconv.Atoi(p)
		if convErr != nil {
			return 0, 0, 0, fmt.Errorf("time %q has non-numeric field %q: %w", s, p, domain.ErrMalformedInput)
		}
		nums[i] = n
	}

	hour, minute = nums[0], nums[1]
	if len(nums) == 3 {
		second = nums[2]
	}

	if hour < 0 || hour > 23 {
		return 0, 0, 0, fmt.Errorf("hour %d out of range [0, 23]: %w", hour, domain.ErrMalformedInput)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, 0, fmt.Errorf("minute %d out of range [0, 59]: %w", minute, domain.ErrMalformedInput)
	}
	if second < 0 || second > 59 {
		return 0, 0, 0, fmt.Errorf("second %d out of range [0, 59]: %w", second, domain.ErrMalformedInput)
	}

	return hour, minute, second, nil
}

// validateCalendarDate round-trips the date through the calendar; a date
// that normalizes to a different one never existed.
func validateCalendarDate(m domain.CivilMoment) error {
	t := time.Date(m.Year, time.Month(m.Month), m.Day, 0, 0, 0, 0, time.UTC)
	if t.Year() != m.Year || int(t.Month()) != m.Month || t.Day() != m.Day {
		return fmt.Errorf("date %04d-%02d-%02d does not exist: %w", m.Year, m.Month, m.Day, domain.ErrMalformedInput)
	}
	return nil
}
