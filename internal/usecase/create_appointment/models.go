package create_appointment

import (
	"time"

	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID    int64            // ID пользователя
	SalonID   int64            // ID салона
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата записи (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	Notes     *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64            // ID созданной записи
	UserID          int64            // ID пользователя
	SalonID         int64            // ID салона
	ServiceID       int64            // ID услуги
	Date            time.Time        // Дата записи
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус записи

	// Денормализованные данные
	ServiceName  string   // Название услуги
	ServicePrice float64  // Цена услуги
	ClientName   *string  // Имя клиента (nil при недоступности UserService)
	Notes        *string  // Пожелания клиента

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

// Settings параметры записи, задаются конфигурацией сервиса
type Settings struct {
	SlotStepMinutes         int // Шаг сетки слотов
	AdvanceBookingDays      int // Максимальный горизонт записи в днях (0 = без ограничений)
	MinBookingNoticeMinutes int // Минимальное время до начала записи при записи на сегодня
}
