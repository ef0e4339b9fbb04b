// Package timefmt содержит утилиты отображения времени для клиентских ответов.
// Бизнес-логики здесь нет: только форматирование.
package timefmt

import (
	"fmt"

	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// Format12Hour конвертирует время "HH:MM" (24ч) в 12-часовой формат "H:MM AM/PM".
// Для некорректного времени возвращает исходную строку без изменений.
func Format12Hour(t types.TimeString) string {
	total, err := t.Minutes()
	if err != nil {
		return t.String()
	}

	hour := total / 60
	minute := total % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}

	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// FormatDuration конвертирует длительность в минутах в человекочитаемую строку:
// 45 -> "45 min", 90 -> "1:30h", 120 -> "2h"
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0 min"
	}

	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%d:%02dh", hours, rest)
}
