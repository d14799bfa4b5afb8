package utils

import (
	"fmt"
	"time"
)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// Presets de período aceitos pelo dashboard
const (
	PresetToday       = "today"
	PresetLast7Days   = "last-7-days"
	PresetLast30Days  = "last-30-days"
	PresetThisMonth   = "this-month"
	PresetLastMonth   = "last-month"
	PresetLast3Months = "last-3-months"
	PresetLast6Months = "last-6-months"
	PresetThisYear    = "this-year"
)

// DateRangeFromPreset resolve um preset de período para o par de datas
// correspondente, relativo a now
func DateRangeFromPreset(preset string, now time.Time) (time.Time, time.Time, error) {
	switch preset {
	case PresetToday:
		return StartOfDay(now), EndOfDay(now), nil
	case PresetLast7Days:
		return StartOfDay(now.AddDate(0, 0, -7)), EndOfDay(now), nil
	case PresetLast30Days:
		return StartOfDay(now.AddDate(0, 0, -30)), EndOfDay(now), nil
	case PresetThisMonth:
		return startOfMonth(now), endOfMonth(now), nil
	case PresetLastMonth:
		lastMonth := now.AddDate(0, -1, 0)
		return startOfMonth(lastMonth), endOfMonth(lastMonth), nil
	case PresetLast3Months:
		return StartOfDay(now.AddDate(0, 0, -90)), EndOfDay(now), nil
	case PresetLast6Months:
		return StartOfDay(now.AddDate(0, 0, -180)), EndOfDay(now), nil
	case PresetThisYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return start, endOfMonth(time.Date(now.Year(), time.December, 1, 0, 0, 0, 0, now.Location())), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("período desconhecido: %s", preset)
}

func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

func EndOfDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1).Add(-time.Second)
}

func startOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

func endOfMonth(date time.Time) time.Time {
	return EndOfDay(startOfMonth(date).AddDate(0, 1, -1))
}
