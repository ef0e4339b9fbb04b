package domain

import (
	"time"

	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusFinalized AppointmentStatus = "finalized"
)

// IsBlocking returns true if an appointment with this status occupies
// time on the calendar. Only pending and confirmed appointments block
// candidate slots; cancelled and finalized ones never do.
func (s AppointmentStatus) IsBlocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Appointment represents a client appointment in the salon
type Appointment struct {
	ID        int64
	UserID    int64
	SalonID   int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString

	// DurationMinutes длительность записи; <= 0 означает, что длительность
	// не сохранена (см. fallback в расчете слотов)
	DurationMinutes int

	Status AppointmentStatus

	// Denormalized data for history
	ServiceName  string
	ServicePrice float64
	ClientName   *string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the appointment occupies time on the calendar
func (a *Appointment) IsBlocking() bool {
	return a.Status.IsBlocking()
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsFinalized returns true if the appointment has been finalized
func (a *Appointment) IsFinalized() bool {
	return a.Status == StatusFinalized
}

// SalonAppointmentsFilter фильтр для получения записей салона
type SalonAppointmentsFilter struct {
	SalonID   int64              // Обязательный параметр
	StartDate *time.Time         // Начало периода (опционально)
	EndDate   *time.Time         // Конец периода (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально)

	// OnlyBlocking оставляет только записи, занимающие время на календаре
	// (pending и confirmed). Используется расчетом слотов.
	OnlyBlocking bool
}
