package domain

// Default booking configuration values
const (
	// DefaultSlotStepMinutes шаг генерации кандидатов слотов.
	// Шаг не зависит от длительности услуги: и 15-минутная, и 3-часовая
	// услуга получают кандидатов только по сетке шага.
	DefaultSlotStepMinutes = 30
)

// Business validation constants
const (
	MinSlotStepMinutes = 5
	MaxSlotStepMinutes = 240

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 hours

	MaxAdvanceBookingDays = 365

	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы записей, занимающих время на календаре.
// Используются расчетом доступных слотов.
var BlockingStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses полный список допустимых статусов записи
var AllStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusFinalized,
}
