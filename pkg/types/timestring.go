package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")

	// ErrTimeOutOfRange возвращается, когда время выходит за границы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeString время суток в формате "HH:MM" (24-часовой формат).
// Используется для хранения времени начала слотов и бронирований
// без привязки к дате и часовому поясу.
//
// При парсинге допускаются варианты "H:MM" и "HH:MM:SS" (секунды
// отбрасываются, значимы только первые 5 символов).
type TimeString string

// NewTimeString создает TimeString из time.Time (берется только время суток)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString парсит строку времени и возвращает
// нормализованный TimeString ("9:30" -> "09:30", "10:00:00" -> "10:00")
func NewTimeStringFromString(s string) (TimeString, error) {
	h, m, err := parseHourMinute(s)
	if err != nil {
		return "", err
	}
	return FromMinutes(h*60 + m), nil
}

// FromMinutes создает TimeString из количества минут с начала суток.
// Значения вне диапазона [0, 1440) обрезаются до границ суток.
func FromMinutes(minutes int) TimeString {
	if minutes < 0 {
		minutes = 0
	}
	if minutes >= MinutesPerDay {
		minutes = MinutesPerDay - 1
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// String возвращает строковое представление времени
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что строка является корректным временем суток
func (t TimeString) Validate() error {
	_, _, err := parseHourMinute(string(t))
	return err
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	h, m, err := parseHourMinute(string(t))
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// AddMinutes возвращает время, сдвинутое на указанное количество минут.
// Возвращает ошибку, если результат выходит за границы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total > MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}
	// 24:00 не представимо в HH:MM, считаем выходом за границы
	if total == MinutesPerDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return FromMinutes(total), nil
}

// IsBefore возвращает true, если t строго раньше other.
// Для некорректных значений выполняется лексикографическое сравнение.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return string(t) < string(other)
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Scan реализует sql.Scanner.
// PostgreSQL TIME может приходить как time.Time, []byte или string.
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		parsed, err := NewTimeStringFromString(string(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case string:
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeFormat, value)
	}
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// parseHourMinute разбирает "H:MM", "HH:MM" или "HH:MM:SS".
// Значимы только час и минута, секунды отбрасываются.
func parseHourMinute(s string) (int, int, error) {
	// Отбрасываем секунды: значимы только первые 5 символов "HH:MM"
	if len(s) > 5 && s[5] == ':' {
		s = s[:5]
	}

	if len(s) != 4 && len(s) != 5 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	sepIdx := len(s) - 3
	if s[sepIdx] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hour, ok := parseDigits(s[:sepIdx])
	if !ok || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	minute, ok := parseDigits(s[sepIdx+1:])
	if !ok || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	return hour, minute, nil
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
