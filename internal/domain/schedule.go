package domain

import (
	"time"

	"github.com/ndmitko/SLN-SchedulingService/pkg/types"
)

// WorkWindow represents a single contiguous working period within a day.
// A day may have several non-adjacent windows (morning and afternoon shifts).
type WorkWindow struct {
	StartTime types.TimeString // inclusive lower bound of the bookable range
	EndTime   types.TimeString // a slot's end must not exceed this
}

// IsValid returns true if the window is well-formed: both bounds parse
// and start is strictly before end
func (w WorkWindow) IsValid() bool {
	start, err := w.StartTime.Minutes()
	if err != nil {
		return false
	}
	end, err := w.EndTime.Minutes()
	if err != nil {
		return false
	}
	return start < end
}

// WeeklySchedule working-hour windows per weekday.
// A missing weekday means the salon is closed that day.
type WeeklySchedule map[time.Weekday][]WorkWindow
