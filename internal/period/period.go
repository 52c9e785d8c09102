package period

import (
	"errors"
	"strconv"
	"time"
)

var ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")

// Вся календарная математика привязана к UTC, чтобы границы MTD/YTD
// не зависели от таймзоны сервера.

// MonthKey возвращает ключ месяца в формате YYYY-MM
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// StartOfMonth первый момент календарного месяца
func StartOfMonth(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// StartOfYear первый момент 1 января того же года
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.UTC().Year(), 1, 1, 0, 0, 0, 0, time.UTC)
}

// ParseMonthRange разбирает токен YYYY-MM в полуинтервал [начало месяца, начало следующего).
// Декабрь переходит на январь следующего года.
func ParseMonthRange(token string) (time.Time, time.Time, error) {
	if len(token) != 7 || token[4] != '-' {
		return time.Time{}, time.Time{}, ErrInvalidMonthFormat
	}
	for i := 0; i < len(token); i++ {
		if i == 4 {
			continue
		}
		if token[i] < '0' || token[i] > '9' {
			return time.Time{}, time.Time{}, ErrInvalidMonthFormat
		}
	}

	year, _ := strconv.Atoi(token[:4])
	month, _ := strconv.Atoi(token[5:])
	if month < 1 || month > 12 {
		return time.Time{}, time.Time{}, ErrInvalidMonthFormat
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0), nil
}

// ParseInstant пытается разобрать ISO-8601 метку времени.
// Возвращает nil при неудаче: для аналитики нераспознанная граница
// означает "без ограничения", а не ошибку.
func ParseInstant(token string) *time.Time {
	if token == "" {
		return nil
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, token); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
