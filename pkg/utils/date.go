package utils

import "time"

// UTCMidnight trunca o instante para 00:00 UTC do mesmo dia
func UTCMidnight(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate formata no padrão YYYY-MM-DD em UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
