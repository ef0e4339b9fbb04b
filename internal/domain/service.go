package domain

import "time"

// Service represents a bookable salon service
type Service struct {
	ID              int64
	SalonID         int64
	Name            string
	DurationMinutes int
	Price           float64
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
