package get_available_slots

import (
	"sort"
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// blockedInterval занятый интервал в минутах от полуночи, полуоткрытый [start, end)
type blockedInterval struct {
	start int
	end   int
}

// computeAvailableSlots вычисляет доступные времена начала записи в минутах от полуночи.
// Кандидаты генерируются в каждом рабочем окне с фиксированным шагом от начала окна,
// затем отбрасываются те, что не помещаются до конца окна или пересекаются с занятыми
// интервалами. Результат - объединение по всем окнам, отсортированное по возрастанию.
// Окна и записи с некорректным временем пропускаются с диагностикой, не прерывая расчет.
func computeAvailableSlots(
	windows []domain.WorkWindow,
	durationMinutes int,
	appointments []*domain.Appointment,
	stepMinutes int,
	log Logger,
) []int {
	// Нулевая или отрицательная длительность - пустой результат, не ошибка
	if durationMinutes <= 0 {
		return []int{}
	}

	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}

	blocked := blockingIntervals(appointments, durationMinutes, log)

	result := make([]int, 0)

	for _, w := range windows {
		startMin, err := w.StartTime.Minutes()
		if err != nil {
			log.Warn("computeAvailableSlots: skipping window with invalid start time %q: %v", w.StartTime, err)
			continue
		}

		endMin, err := w.EndTime.Minutes()
		if err != nil {
			log.Warn("computeAvailableSlots: skipping window with invalid end time %q: %v", w.EndTime, err)
			continue
		}

		// Окна нулевой или отрицательной длины пропускаем молча
		if startMin >= endMin {
			continue
		}

		// Кандидат допустим, если услуга целиком помещается до конца окна
		for candidate := startMin; candidate+durationMinutes <= endMin; candidate += stepMinutes {
			if !overlapsAny(candidate, candidate+durationMinutes, blocked) {
				result = append(result, candidate)
			}
		}
	}

	// Окна могут пересекаться, поэтому объединение сортируем; дубликаты сохраняем
	sort.SliceStable(result, func(i, j int) bool {
		return result[i] < result[j]
	})

	return result
}

// blockingIntervals строит занятые интервалы из блокирующих записей.
// Записи в статусах cancelled и finalized время не занимают.
// Если длительность записи не сохранена, используется длительность запрашиваемой услуги.
func blockingIntervals(appointments []*domain.Appointment, fallbackDuration int, log Logger) []blockedInterval {
	intervals := make([]blockedInterval, 0, len(appointments))

	for _, appt := range appointments {
		if !appt.IsBlocking() {
			continue
		}

		startMin, err := appt.StartTime.Minutes()
		if err != nil {
			log.Warn("blockingIntervals: skipping appointment id=%d with invalid start time %q: %v",
				appt.ID, appt.StartTime, err)
			continue
		}

		duration := appt.DurationMinutes
		if duration <= 0 {
			duration = fallbackDuration
		}

		intervals = append(intervals, blockedInterval{
			start: startMin,
			end:   startMin + duration,
		})
	}

	return intervals
}

// overlapsAny проверяет пересечение кандидата [candStart, candEnd) с занятыми интервалами.
// Пересечение есть, только если интервалы действительно накладываются:
// граничащие интервалы (конец одного равен началу другого) пересечением НЕ считаются.
//
// Примеры:
// - Кандидат 11:30-12:00, запись 11:20-11:40 → ЕСТЬ пересечение (11:30-11:40)
// - Кандидат 11:30-12:00, запись 11:00-11:30 → НЕТ пересечения (граничат)
// - Кандидат 11:30-12:00, запись 12:00-12:30 → НЕТ пересечения (граничат)
func overlapsAny(candStart, candEnd int, blocked []blockedInterval) bool {
	for _, b := range blocked {
		if candStart < b.end && candEnd > b.start {
			return true
		}
	}
	return false
}

// filterPastStarts отбрасывает времена начала раньше минимально допустимого.
// Применяется только при запросе слотов на сегодня.
func filterPastStarts(starts []int, now time.Time, minNoticeMinutes int) []int {
	minAllowed := now.Hour()*60 + now.Minute() + minNoticeMinutes

	filtered := make([]int, 0, len(starts))
	for _, s := range starts {
		if s >= minAllowed {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// toSlots конвертирует минуты от полуночи в слоты ответа
func toSlots(starts []int, durationMinutes int) []domain.AvailableSlot {
	slots := make([]domain.AvailableSlot, 0, len(starts))
	for _, s := range starts {
		slots = append(slots, domain.AvailableSlot{
			StartTime:       types.FromMinutes(s),
			DurationMinutes: durationMinutes,
		})
	}
	return slots
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
