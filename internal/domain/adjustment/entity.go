package adjustment

import (
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
)

// Adjustment is a persisted manual time-clock correction for one employee on one day.
type Adjustment struct {
	ID           string
	EmployeeID   string
	ManagerName  string
	ManagerEmail string
	Date         time.Time
	EntryTime    clock.ClockTime
	BreakOutTime *clock.ClockTime
	BreakInTime  *clock.ClockTime
	ExitTime     clock.ClockTime
	Reason       Reason
	Note         *string
	CreatedAt    time.Time

	// DTO
	EmployeeName *string
}

// Draft returns the four clock events of a so they can be re-checked.
func (a Adjustment) Draft() AttendanceDraft {
	entry := a.EntryTime
	exit := a.ExitTime
	return AttendanceDraft{
		EntryTime:    &entry,
		BreakOutTime: a.BreakOutTime,
		BreakInTime:  a.BreakInTime,
		ExitTime:     &exit,
	}
}
