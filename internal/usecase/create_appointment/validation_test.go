package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/ptr"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

func window(start, end string) domain.WorkWindow {
	return domain.WorkWindow{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestValidateRequest(t *testing.T) {
	validRequest := func() *Request {
		return &Request{
			UserID:    1,
			SalonID:   2,
			ServiceID: 3,
			Date:      time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
			StartTime: types.TimeString("10:00"),
		}
	}

	t.Run("корректный запрос", func(t *testing.T) {
		assert.NoError(t, validateRequest(validRequest()))
	})

	t.Run("нулевой userID", func(t *testing.T) {
		req := validRequest()
		req.UserID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("нулевой salonID", func(t *testing.T) {
		req := validRequest()
		req.SalonID = 0
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("пустое время начала", func(t *testing.T) {
		req := validRequest()
		req.StartTime = ""
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("некорректный формат времени", func(t *testing.T) {
		req := validRequest()
		req.StartTime = types.TimeString("25:99")
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})

	t.Run("слишком длинные заметки", func(t *testing.T) {
		req := validRequest()
		long := make([]byte, domain.MaxNotesLength+1)
		for i := range long {
			long[i] = 'x'
		}
		req.Notes = ptr.Ptr(string(long))
		assert.ErrorIs(t, validateRequest(req), ErrInvalidInput)
	})
}

func TestValidateSlotStart(t *testing.T) {
	windows := []domain.WorkWindow{
		window("09:00", "13:00"),
		window("14:00", "18:00"),
	}

	tests := []struct {
		name     string
		start    string
		duration int
		step     int
		wantErr  error
	}{
		{"начало окна", "09:00", 60, 30, nil},
		{"на сетке внутри окна", "10:30", 60, 30, nil},
		{"второе окно", "14:00", 60, 30, nil},
		{"последний допустимый слот", "12:00", 60, 30, nil},
		{"услуга не помещается до конца окна", "12:30", 60, 30, ErrInvalidTimeSlot},
		{"вне сетки", "10:15", 60, 30, ErrInvalidTimeSlot},
		{"в перерыве", "13:00", 30, 30, ErrInvalidTimeSlot},
		{"раньше открытия", "08:30", 60, 30, ErrInvalidTimeSlot},
		{"после закрытия", "18:00", 60, 30, ErrInvalidTimeSlot},
		{"шаг 15 минут", "09:45", 30, 15, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSlotStart(windows, types.TimeString(tt.start), tt.duration, tt.step)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHasOverlap(t *testing.T) {
	appointments := []*domain.Appointment{
		{ID: 1, Status: domain.StatusConfirmed, StartTime: types.TimeString("10:00"), DurationMinutes: 60},
		{ID: 2, Status: domain.StatusCancelled, StartTime: types.TimeString("14:00"), DurationMinutes: 60},
	}

	t.Run("пересечение с подтвержденной записью", func(t *testing.T) {
		overlaps, err := hasOverlap(types.TimeString("10:30"), 60, 60, appointments)
		assert.NoError(t, err)
		assert.True(t, overlaps)
	})

	t.Run("граничащие интервалы не пересекаются", func(t *testing.T) {
		overlaps, err := hasOverlap(types.TimeString("11:00"), 60, 60, appointments)
		assert.NoError(t, err)
		assert.False(t, overlaps)

		overlaps, err = hasOverlap(types.TimeString("09:00"), 60, 60, appointments)
		assert.NoError(t, err)
		assert.False(t, overlaps)
	})

	t.Run("отмененная запись не блокирует", func(t *testing.T) {
		overlaps, err := hasOverlap(types.TimeString("14:00"), 60, 60, appointments)
		assert.NoError(t, err)
		assert.False(t, overlaps)
	})

	t.Run("fallback длительности записи", func(t *testing.T) {
		noDuration := []*domain.Appointment{
			{ID: 3, Status: domain.StatusPending, StartTime: types.TimeString("10:00"), DurationMinutes: 0},
		}

		// Запись без длительности считается занимающей 90 минут (10:00-11:30)
		overlaps, err := hasOverlap(types.TimeString("11:00"), 60, 90, noDuration)
		assert.NoError(t, err)
		assert.True(t, overlaps)

		overlaps, err = hasOverlap(types.TimeString("11:30"), 60, 90, noDuration)
		assert.NoError(t, err)
		assert.False(t, overlaps)
	})
}

func TestValidateNotice(t *testing.T) {
	now := time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("запись на другой день не проверяется", func(t *testing.T) {
		tomorrow := now.AddDate(0, 0, 1)
		assert.NoError(t, validateNotice(tomorrow, types.TimeString("08:00"), now, 60))
	})

	t.Run("запись на сегодня с достаточным запасом", func(t *testing.T) {
		assert.NoError(t, validateNotice(now, types.TimeString("11:00"), now, 60))
	})

	t.Run("слишком поздно для записи", func(t *testing.T) {
		err := validateNotice(now, types.TimeString("10:30"), now, 60)
		assert.ErrorIs(t, err, ErrTooLateToBook)
	})
}
