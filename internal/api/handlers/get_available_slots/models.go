package get_available_slots

import (
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	getAvailableSlots "github.com/ndmitko/SLN-SchedulingService/internal/usecase/get_available_slots"
	"github.com/ndmitko/SLN-SchedulingService/pkg/timefmt"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string          `json:"date"`
	SalonID   int64           `json:"salonId"`
	ServiceID int64           `json:"serviceId"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель доступного слота
type AvailableSlot struct {
	StartTime       string `json:"startTime"`       // "16:00"
	DisplayTime     string `json:"displayTime"`     // "4:00 PM"
	DurationMinutes int    `json:"durationMinutes"`
	DisplayDuration string `json:"displayDuration"` // "1:30h"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime:       slot.StartTime.String(),
			DisplayTime:     timefmt.Format12Hour(slot.StartTime),
			DurationMinutes: slot.DurationMinutes,
			DisplayDuration: timefmt.FormatDuration(slot.DurationMinutes),
		}
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		SalonID:   resp.SalonID,
		ServiceID: resp.ServiceID,
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(userID, salonID, serviceID int64, dateStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:    userID,
		SalonID:   salonID,
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
