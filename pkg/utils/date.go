package utils

import (
	"fmt"
	"time"
)

// ParseDate interpreta uma data no formato YYYY-MM-DD; string vazia devolve nil
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// ResolveDateRange aplica os defaults de período: fim em hoje e início
// lookbackDays atrás quando os parâmetros vierem vazios. Falha se o início
// for posterior ao fim.
func ResolveDateRange(startStr, endStr string, lookbackDays int) (time.Time, time.Time, error) {
	var zero time.Time

	end := time.Now().UTC().Truncate(24 * time.Hour)
	parsedEnd, err := ParseDate(endStr)
	if err != nil {
		return zero, zero, fmt.Errorf("data final inválida: %w", err)
	}
	if parsedEnd != nil {
		end = *parsedEnd
	}

	start := end.AddDate(0, 0, -lookbackDays)
	parsedStart, err := ParseDate(startStr)
	if err != nil {
		return zero, zero, fmt.Errorf("data inicial inválida: %w", err)
	}
	if parsedStart != nil {
		start = *parsedStart
	}

	if start.After(end) {
		return zero, zero, fmt.Errorf("data inicial %s posterior à data final %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	return start, end, nil
}
