package create_appointment

import (
	"fmt"
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salonID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем, что время начала указано
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	// Валидируем формат времени
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата подходит для записи
func validateDate(appointmentDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(appointmentDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	// Проверяем, что дата не превышает ограничение advanceBookingDays
	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	appointmentDateOnly := time.Date(appointmentDate.Year(), appointmentDate.Month(), appointmentDate.Day(), 0, 0, 0, 0, appointmentDate.Location())

	if appointmentDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateNotice проверяет, что запись не нарушает minBookingNoticeMinutes
func validateNotice(
	appointmentDate time.Time,
	startTime types.TimeString,
	now time.Time,
	minBookingNoticeMinutes int,
) error {
	// Если дата записи не сегодня, проверка не нужна
	if !isSameDay(appointmentDate, now) {
		return nil
	}

	// Вычисляем минимальное допустимое время
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return fmt.Errorf("%w: failed to calculate min allowed time: %v", ErrInternal, err)
	}

	// Проверяем, что время начала не раньше минимального
	if startTime.IsBefore(minAllowedTime) {
		return fmt.Errorf("%w: must book at least %d minutes in advance", ErrTooLateToBook, minBookingNoticeMinutes)
	}

	return nil
}

// validateSlotStart проверяет, что время начала лежит на сетке слотов одного из
// рабочих окон и услуга целиком помещается до конца этого окна
func validateSlotStart(
	windows []domain.WorkWindow,
	startTime types.TimeString,
	durationMinutes int,
	stepMinutes int,
) error {
	startMin, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: invalid start time %q: %v", ErrInvalidInput, startTime, err)
	}

	if stepMinutes <= 0 {
		stepMinutes = domain.DefaultSlotStepMinutes
	}

	for _, w := range windows {
		windowStart, err := w.StartTime.Minutes()
		if err != nil {
			continue
		}

		windowEnd, err := w.EndTime.Minutes()
		if err != nil {
			continue
		}

		if windowStart >= windowEnd {
			continue
		}

		// Начало должно лежать на сетке от начала окна,
		// а услуга - помещаться до конца окна
		if startMin < windowStart || startMin+durationMinutes > windowEnd {
			continue
		}

		if (startMin-windowStart)%stepMinutes == 0 {
			return nil
		}
	}

	return ErrInvalidTimeSlot
}

// hasOverlap проверяет пересечение записи [startMin, startMin+duration) с блокирующими записями.
// Граничащие интервалы пересечением не считаются.
func hasOverlap(
	startTime types.TimeString,
	durationMinutes int,
	fallbackDuration int,
	appointments []*domain.Appointment,
) (bool, error) {
	startMin, err := startTime.Minutes()
	if err != nil {
		return false, err
	}
	endMin := startMin + durationMinutes

	for _, appt := range appointments {
		if !appt.IsBlocking() {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			// Запись с некорректным временем не участвует в проверке
			continue
		}

		apptDuration := appt.DurationMinutes
		if apptDuration <= 0 {
			apptDuration = fallbackDuration
		}

		if startMin < apptStart+apptDuration && endMin > apptStart {
			return true, nil
		}
	}

	return false, nil
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
