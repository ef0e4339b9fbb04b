package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	getAvailableSlots "github.com/ndmitko/SLN-SchedulingService/internal/usecase/get_available_slots"
)

func TestFromUseCaseResponse(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	resp := &getAvailableSlots.Response{
		Date:      date,
		SalonID:   7,
		ServiceID: 3,
		Slots: []domain.AvailableSlot{
			{StartTime: "09:00", DurationMinutes: 90},
			{StartTime: "16:00", DurationMinutes: 90},
		},
	}

	result := FromUseCaseResponse(resp)

	assert.Equal(t, "2026-09-01", result.Date)
	assert.Equal(t, int64(7), result.SalonID)
	assert.Equal(t, int64(3), result.ServiceID)

	require.Len(t, result.Slots, 2)
	assert.Equal(t, AvailableSlot{
		StartTime:       "09:00",
		DisplayTime:     "9:00 AM",
		DurationMinutes: 90,
		DisplayDuration: "1:30h",
	}, result.Slots[0])
	assert.Equal(t, AvailableSlot{
		StartTime:       "16:00",
		DisplayTime:     "4:00 PM",
		DurationMinutes: 90,
		DisplayDuration: "1:30h",
	}, result.Slots[1])
}

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest(42, 7, 3, "2026-09-01")
	require.NoError(t, err)

	assert.Equal(t, int64(42), req.UserID)
	assert.Equal(t, int64(7), req.SalonID)
	assert.Equal(t, int64(3), req.ServiceID)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), req.Date)

	_, err = ToUseCaseRequest(42, 7, 3, "01.09.2026")
	assert.Error(t, err)
}
