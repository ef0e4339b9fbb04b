package get_available_slots

import (
	"time"

	"github.com/ndmitko/SLN-SchedulingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID    int64     // ID пользователя (для логирования, не влияет на результат)
	SalonID   int64     // ID салона
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date      time.Time              // Дата, на которую запрашивались слоты
	SalonID   int64                  // ID салона
	ServiceID int64                  // ID услуги
	Slots     []domain.AvailableSlot // Список доступных слотов
}

// Settings параметры расчета слотов, задаются конфигурацией сервиса
type Settings struct {
	SlotStepMinutes         int // Шаг сетки слотов
	AdvanceBookingDays      int // Максимальный горизонт записи в днях (0 = без ограничений)
	MinBookingNoticeMinutes int // Минимальное время до начала записи при записи на сегодня
}
