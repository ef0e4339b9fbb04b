package domain

import "github.com/ndmitko/SLN-SchedulingService/pkg/types"

// AvailableSlot represents a start time a client may book.
// Availability is binary: the interval [StartTime, StartTime+DurationMinutes)
// lies entirely inside a work window and does not overlap any blocking
// appointment.
type AvailableSlot struct {
	StartTime       types.TimeString
	DurationMinutes int
}

// EndTime returns the end of the slot interval
func (s AvailableSlot) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes)
}
