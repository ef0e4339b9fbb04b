package update_schedule

import (
	"github.com/ndmitko/SLN-SchedulingService/internal/service/salon/models"
)

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	Windows []WorkWindow `json:"windows"` // Пустой список = салон закрыт в этот день
}

// WorkWindow рабочее окно в запросе
type WorkWindow struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID, salonID int64, weekday string) *models.UpdateScheduleDayRequest {
	windows := make([]models.WorkWindowRequest, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.WorkWindowRequest{
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}

	return &models.UpdateScheduleDayRequest{
		UserID:  userID,
		SalonID: salonID,
		Weekday: weekday,
		Windows: windows,
	}
}
