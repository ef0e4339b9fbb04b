package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// nopLogger логгер-заглушка для тестов
type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func mins(t *testing.T, s string) int {
	t.Helper()
	m, err := types.TimeString(s).Minutes()
	require.NoError(t, err)
	return m
}

func window(start, end string) domain.WorkWindow {
	return domain.WorkWindow{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func appointment(id int64, status domain.AppointmentStatus, start string, durationMinutes int) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		Status:          status,
		StartTime:       types.TimeString(start),
		DurationMinutes: durationMinutes,
	}
}

func startsAsTimes(t *testing.T, starts []int) []string {
	t.Helper()
	result := make([]string, 0, len(starts))
	for _, s := range starts {
		result = append(result, types.FromMinutes(s).String())
	}
	return result
}

func TestComputeAvailableSlots_FullDayNoAppointments(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}

	starts := computeAvailableSlots(windows, 60, nil, 30, nopLogger{})

	// Последний допустимый кандидат - 16:00: услуга 60 минут заканчивается ровно в 17:00
	require.Len(t, starts, 15)
	assert.Equal(t, mins(t, "09:00"), starts[0])
	assert.Equal(t, mins(t, "16:00"), starts[14])

	expected := []string{
		"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
		"12:00", "12:30", "13:00", "13:30", "14:00", "14:30",
		"15:00", "15:30", "16:00",
	}
	assert.Equal(t, expected, startsAsTimes(t, starts))
}

func TestComputeAvailableSlots_ConfirmedAppointmentBlocks(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusConfirmed, "10:00", 60),
	}

	starts := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})
	times := startsAsTimes(t, starts)

	// 09:30, 10:00 и 10:30 пересекаются с записью 10:00-11:00
	assert.NotContains(t, times, "09:30")
	assert.NotContains(t, times, "10:00")
	assert.NotContains(t, times, "10:30")

	// 09:00-10:00 и 11:00-12:00 граничат с записью, но не пересекаются
	assert.Contains(t, times, "09:00")
	assert.Contains(t, times, "11:00")

	assert.Len(t, starts, 12)
}

func TestComputeAvailableSlots_PendingBlocksToo(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusPending, "10:00", 60),
	}

	starts := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})

	assert.NotContains(t, startsAsTimes(t, starts), "10:00")
	assert.Len(t, starts, 12)
}

func TestComputeAvailableSlots_CancelledAndFinalizedDoNotBlock(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusCancelled, "10:00", 60),
		appointment(2, domain.StatusFinalized, "14:00", 60),
	}

	starts := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})

	// Отмененные и завершенные записи время не занимают
	assert.Len(t, starts, 15)
}

func TestComputeAvailableSlots_EmptyWindows(t *testing.T) {
	starts := computeAvailableSlots([]domain.WorkWindow{}, 60, nil, 30, nopLogger{})
	assert.Empty(t, starts)

	starts = computeAvailableSlots(nil, 60, nil, 30, nopLogger{})
	assert.Empty(t, starts)
}

func TestComputeAvailableSlots_NonPositiveDuration(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}

	assert.Empty(t, computeAvailableSlots(windows, 0, nil, 30, nopLogger{}))
	assert.Empty(t, computeAvailableSlots(windows, -15, nil, 30, nopLogger{}))
}

func TestComputeAvailableSlots_MultipleWindowsUnionSorted(t *testing.T) {
	// Утреннее и вечернее окна с перерывом
	windows := []domain.WorkWindow{
		window("14:00", "16:00"),
		window("09:00", "11:00"),
	}

	starts := computeAvailableSlots(windows, 60, nil, 30, nopLogger{})
	times := startsAsTimes(t, starts)

	expected := []string{"09:00", "09:30", "10:00", "14:00", "14:30", "15:00"}
	assert.Equal(t, expected, times)

	// В перерыве слотов нет
	assert.NotContains(t, times, "11:00")
	assert.NotContains(t, times, "12:00")
	assert.NotContains(t, times, "13:30")
}

func TestComputeAvailableSlots_OverlappingWindowsKeepDuplicates(t *testing.T) {
	windows := []domain.WorkWindow{
		window("09:00", "11:00"),
		window("10:00", "12:00"),
	}

	starts := computeAvailableSlots(windows, 60, nil, 30, nopLogger{})
	times := startsAsTimes(t, starts)

	// 10:00 попадает в оба окна и присутствует дважды
	expected := []string{"09:00", "09:30", "10:00", "10:00", "10:30", "11:00"}
	assert.Equal(t, expected, times)
}

func TestComputeAvailableSlots_InvalidWindowSkipped(t *testing.T) {
	windows := []domain.WorkWindow{
		window("banana", "17:00"),
		window("09:00", "10:30"),
	}

	starts := computeAvailableSlots(windows, 60, nil, 30, nopLogger{})

	// Некорректное окно пропущено, корректное обработано
	expected := []string{"09:00", "09:30"}
	assert.Equal(t, expected, startsAsTimes(t, starts))
}

func TestComputeAvailableSlots_ZeroLengthWindowSkipped(t *testing.T) {
	windows := []domain.WorkWindow{
		window("10:00", "10:00"),
		window("15:00", "12:00"),
	}

	starts := computeAvailableSlots(windows, 30, nil, 30, nopLogger{})
	assert.Empty(t, starts)
}

func TestComputeAvailableSlots_WindowTooShortForService(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "09:45")}

	starts := computeAvailableSlots(windows, 60, nil, 30, nopLogger{})
	assert.Empty(t, starts)
}

func TestComputeAvailableSlots_AppointmentDurationFallback(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "12:00")}

	// У записи не сохранена длительность - подставляется длительность запрашиваемой услуги (90 минут)
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusConfirmed, "09:00", 0),
	}

	starts := computeAvailableSlots(windows, 90, appointments, 30, nopLogger{})
	times := startsAsTimes(t, starts)

	// Запись считается занимающей 09:00-10:30
	assert.NotContains(t, times, "09:00")
	assert.NotContains(t, times, "10:00")
	assert.Equal(t, []string{"10:30"}, times)
}

func TestComputeAvailableSlots_MalformedAppointmentSkipped(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "12:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusConfirmed, "not-a-time", 60),
		appointment(2, domain.StatusConfirmed, "10:00", 60),
	}

	starts := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})
	times := startsAsTimes(t, starts)

	// Некорректная запись пропущена, корректная блокирует 09:30-10:30
	assert.Equal(t, []string{"09:00", "11:00"}, times)
}

func TestComputeAvailableSlots_SecondsInTimeTruncated(t *testing.T) {
	// Время из БД может приходить в формате HH:MM:SS
	windows := []domain.WorkWindow{window("09:00:00", "11:00:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusConfirmed, "09:00:00", 60),
	}

	starts := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})
	assert.Equal(t, []string{"10:00"}, startsAsTimes(t, starts))
}

func TestComputeAvailableSlots_CustomStep(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "10:00")}

	starts := computeAvailableSlots(windows, 15, nil, 15, nopLogger{})
	expected := []string{"09:00", "09:15", "09:30", "09:45"}
	assert.Equal(t, expected, startsAsTimes(t, starts))
}

func TestComputeAvailableSlots_PureFunction(t *testing.T) {
	windows := []domain.WorkWindow{window("09:00", "17:00")}
	appointments := []*domain.Appointment{
		appointment(1, domain.StatusConfirmed, "10:00", 60),
	}

	first := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})
	second := computeAvailableSlots(windows, 60, appointments, 30, nopLogger{})

	assert.Equal(t, first, second)
	assert.Equal(t, types.TimeString("10:00"), appointments[0].StartTime)
	assert.Equal(t, types.TimeString("09:00"), windows[0].StartTime)
}

func TestOverlapsAny_Boundaries(t *testing.T) {
	blocked := []blockedInterval{{start: 690, end: 720}} // 11:30-12:00

	tests := []struct {
		name      string
		candStart int
		candEnd   int
		want      bool
	}{
		{"пересечение в середине", 680, 700, true},
		{"кандидат внутри интервала", 695, 715, true},
		{"интервал внутри кандидата", 660, 750, true},
		{"граничат слева", 660, 690, false},
		{"граничат справа", 720, 750, false},
		{"полностью раньше", 600, 630, false},
		{"полностью позже", 780, 810, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overlapsAny(tt.candStart, tt.candEnd, blocked))
		})
	}
}

func TestFilterPastStarts(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 15, 0, 0, time.UTC)
	starts := []int{540, 600, 630, 660, 720} // 09:00, 10:00, 10:30, 11:00, 12:00

	// Минимальное время уведомления 30 минут: допустимы слоты с 10:45
	filtered := filterPastStarts(starts, now, 30)
	assert.Equal(t, []int{660, 720}, filtered)

	// Без уведомления: допустимы слоты с 10:15
	filtered = filterPastStarts(starts, now, 0)
	assert.Equal(t, []int{630, 660, 720}, filtered)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	t.Run("сегодня допустимо", func(t *testing.T) {
		assert.NoError(t, validateDate(now, now, 30))
	})

	t.Run("дата в прошлом", func(t *testing.T) {
		err := validateDate(now.AddDate(0, 0, -1), now, 30)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("дата слишком далеко", func(t *testing.T) {
		err := validateDate(now.AddDate(0, 0, 31), now, 30)
		assert.ErrorIs(t, err, ErrDateTooFarInFuture)
	})

	t.Run("без ограничения горизонта", func(t *testing.T) {
		assert.NoError(t, validateDate(now.AddDate(1, 0, 0), now, 0))
	})
}

func TestValidateRequest(t *testing.T) {
	valid := &Request{UserID: 1, SalonID: 1, ServiceID: 2, Date: time.Now()}
	assert.NoError(t, validateRequest(valid))

	assert.ErrorIs(t, validateRequest(&Request{SalonID: 0, ServiceID: 2, Date: time.Now()}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{SalonID: 1, ServiceID: 0, Date: time.Now()}), ErrInvalidInput)
	assert.ErrorIs(t, validateRequest(&Request{SalonID: 1, ServiceID: 2}), ErrInvalidInput)
}

func TestToSlots(t *testing.T) {
	starts := []int{mins(t, "09:00"), mins(t, "16:30")}

	slots := toSlots(starts, 90)

	require.Len(t, slots, 2)
	assert.Equal(t, domain.AvailableSlot{StartTime: "09:00", DurationMinutes: 90}, slots[0])
	assert.Equal(t, domain.AvailableSlot{StartTime: "16:30", DurationMinutes: 90}, slots[1])

	end, err := slots[1].EndTime()
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("18:00"), end)
}
