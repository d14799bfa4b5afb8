package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Data válida no formato ISO", func(t *testing.T) {
		date, err := ParseDate("2024-03-10")

		assert.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("String vazia devolve data zero sem erro", func(t *testing.T) {
		date, err := ParseDate("")

		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("Formato inválido devolve erro", func(t *testing.T) {
		_, err := ParseDate("10/03/2024")

		assert.Error(t, err)
	})
}

func TestDateRangeFromPreset(t *testing.T) {
	// Uma quarta-feira no meio do mês, para não mascarar bordas
	now := time.Date(2024, 3, 13, 15, 30, 45, 0, time.UTC)

	tests := []struct {
		name          string
		preset        string
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:          "Hoje",
			preset:        PresetToday,
			expectedStart: time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "Últimos 7 dias",
			preset:        PresetLast7Days,
			expectedStart: time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "Últimos 30 dias",
			preset:        PresetLast30Days,
			expectedStart: time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 13, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "Este mês",
			preset:        PresetThisMonth,
			expectedStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "Mês passado - fevereiro bissexto",
			preset:        PresetLastMonth,
			expectedStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC),
		},
		{
			name:          "Este ano",
			preset:        PresetThisYear,
			expectedStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			expectedEnd:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := DateRangeFromPreset(tt.preset, now)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedStart, start)
			assert.Equal(t, tt.expectedEnd, end)
		})
	}

	t.Run("Preset desconhecido devolve erro", func(t *testing.T) {
		_, _, err := DateRangeFromPreset("last-century", now)

		assert.Error(t, err)
	})
}

func TestEndOfDay(t *testing.T) {
	t.Run("Último segundo do dia", func(t *testing.T) {
		end := EndOfDay(time.Date(2024, 3, 10, 8, 15, 0, 0, time.UTC))

		assert.Equal(t, time.Date(2024, 3, 10, 23, 59, 59, 0, time.UTC), end)
	})
}
