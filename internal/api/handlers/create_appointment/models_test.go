package create_appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createAppointment "github.com/ndmitko/SLN-SchedulingService/internal/usecase/create_appointment"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

func TestToUseCaseRequest(t *testing.T) {
	notes := "без окрашивания"
	req := &CreateAppointmentRequest{
		SalonID:   7,
		ServiceID: 3,
		Date:      "2026-09-01",
		StartTime: "9:30",
		Notes:     &notes,
	}

	result, err := req.ToUseCaseRequest(42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.UserID)
	assert.Equal(t, int64(7), result.SalonID)
	assert.Equal(t, int64(3), result.ServiceID)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), result.Date)
	// Время нормализуется к формату HH:MM
	assert.Equal(t, types.TimeString("09:30"), result.StartTime)
	assert.Equal(t, &notes, result.Notes)
}

func TestToUseCaseRequest_InvalidInput(t *testing.T) {
	_, err := (&CreateAppointmentRequest{Date: "01.09.2026", StartTime: "10:00"}).ToUseCaseRequest(42)
	assert.Error(t, err)

	_, err = (&CreateAppointmentRequest{Date: "2026-09-01", StartTime: "banana"}).ToUseCaseRequest(42)
	assert.Error(t, err)
}

func TestFromUseCaseResponse(t *testing.T) {
	clientName := "Анна"
	resp := &createAppointment.Response{
		ID:              11,
		UserID:          42,
		SalonID:         7,
		ServiceID:       3,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       "16:00",
		DurationMinutes: 90,
		Status:          "confirmed",
		ServiceName:     "Стрижка",
		ServicePrice:    1500,
		ClientName:      &clientName,
	}

	result := FromUseCaseResponse(resp)

	assert.Equal(t, int64(11), result.ID)
	assert.Equal(t, "2026-09-01", result.Date)
	assert.Equal(t, "16:00", result.StartTime)
	assert.Equal(t, "4:00 PM", result.DisplayTime)
	assert.Equal(t, 90, result.DurationMinutes)
	assert.Equal(t, "1:30h", result.DisplayDuration)
	assert.Equal(t, "confirmed", result.Status)
	assert.Equal(t, &clientName, result.ClientName)
}
