package utils

import (
	"errors"
	"fmt"
	"time"
)

var ErrMissingDate = errors.New("data não informada")

// ParseDate interpreta YYYY-MM-DD como meia-noite no fuso informado
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrMissingDate
	}

	if loc == nil {
		loc = time.UTC
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", dateStr, err)
	}

	return date, nil
}

// EndOfDay retorna o último nanossegundo do dia civil de t
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).
		AddDate(0, 0, 1).
		Add(-time.Nanosecond)
}

// ParseDateRange lê início e fim inclusivos; o fim é estendido até o final do dia
func ParseDateRange(startStr, endStr string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := ParseDate(startStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start_date: %w", err)
	}

	end, err := ParseDate(endStr, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end_date: %w", err)
	}

	return start, EndOfDay(end), nil
}
