package models

import (
	"errors"
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
	"github.com/ndmitko/SLN-SchedulingService/pkg/timefmt"
	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при некорректном дне недели
	ErrInvalidWeekday = errors.New("invalid weekday")
)

// weekdayNames имена дней недели в API, индекс соответствует time.Weekday
var weekdayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Request модели

// WorkWindowRequest рабочее окно в запросе
type WorkWindowRequest struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// UpdateScheduleDayRequest запрос на замену расписания дня недели
type UpdateScheduleDayRequest struct {
	UserID  int64               `json:"userId"`
	SalonID int64               `json:"salonId"`
	Weekday string              `json:"weekday"` // "monday" ... "sunday"
	Windows []WorkWindowRequest `json:"windows"` // Пустой список = салон закрыт
}

// ToWeekday конвертирует имя дня недели в time.Weekday
func ToWeekday(name string) (time.Weekday, error) {
	for i, n := range weekdayNames {
		if n == name {
			return time.Weekday(i), nil
		}
	}
	return 0, ErrInvalidWeekday
}

// ToDomainWindows конвертирует окна запроса в domain модели
func (r *UpdateScheduleDayRequest) ToDomainWindows() []domain.WorkWindow {
	windows := make([]domain.WorkWindow, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, domain.WorkWindow{
			StartTime: types.TimeString(w.StartTime),
			EndTime:   types.TimeString(w.EndTime),
		})
	}
	return windows
}

// Response модели

// WorkWindowResponse рабочее окно в ответе
type WorkWindowResponse struct {
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// ScheduleResponse недельное расписание салона
type ScheduleResponse struct {
	SalonID int64                           `json:"salonId"`
	Days    map[string][]WorkWindowResponse `json:"days"` // Ключ - имя дня недели
}

// ServiceResponse услуга салона
type ServiceResponse struct {
	ID              int64   `json:"id"`
	SalonID         int64   `json:"salonId"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	DisplayDuration string  `json:"displayDuration"` // "1:30h"
	Price           float64 `json:"price"`
	IsActive        bool    `json:"isActive"`
}

// ServiceListResponse список услуг салона
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainSchedule конвертирует недельное расписание в DTO.
// Дни без окон присутствуют в ответе с пустым списком.
func FromDomainSchedule(salonID int64, weekly domain.WeeklySchedule) *ScheduleResponse {
	days := make(map[string][]WorkWindowResponse, 7)

	for i, name := range weekdayNames {
		windows := weekly[time.Weekday(i)]
		dayWindows := make([]WorkWindowResponse, 0, len(windows))
		for _, w := range windows {
			dayWindows = append(dayWindows, WorkWindowResponse{
				StartTime: w.StartTime.String(),
				EndTime:   w.EndTime.String(),
			})
		}
		days[name] = dayWindows
	}

	return &ScheduleResponse{
		SalonID: salonID,
		Days:    days,
	}
}

// FromDomainServiceList конвертирует список услуг в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, svc := range services {
		resp.Services = append(resp.Services, ServiceResponse{
			ID:              svc.ID,
			SalonID:         svc.SalonID,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			DisplayDuration: timefmt.FormatDuration(svc.DurationMinutes),
			Price:           svc.Price,
			IsActive:        svc.IsActive,
		})
	}

	return resp
}
