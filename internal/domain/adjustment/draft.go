package adjustment

import "github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"

// AttendanceDraft holds the clock events of an adjustment while a manager is
// still composing it. A nil field means the value has not been entered.
type AttendanceDraft struct {
	EntryTime    *clock.ClockTime
	BreakOutTime *clock.ClockTime
	BreakInTime  *clock.ClockTime
	ExitTime     *clock.ClockTime
}

// DraftField names one of the four editable clock events.
type DraftField string

const (
	FieldEntryTime    DraftField = "entry_time"
	FieldBreakOutTime DraftField = "break_out_time"
	FieldBreakInTime  DraftField = "break_in_time"
	FieldExitTime     DraftField = "exit_time"
)

// WarningCode identifies an advisory check.
type WarningCode string

const (
	WarningLateEntry               WarningCode = "LATE_ENTRY"
	WarningLateExit                WarningCode = "LATE_EXIT"
	WarningExitNotAfterEntry       WarningCode = "EXIT_NOT_AFTER_ENTRY"
	WarningBreakInNotAfterBreakOut WarningCode = "BREAK_IN_NOT_AFTER_BREAK_OUT"
)

// Warning is advisory only. It never blocks submission.
type Warning struct {
	Code    WarningCode
	Message string
}

// StandardShift is the reference working day the tolerance checks run against.
type StandardShift struct {
	Start        clock.ClockTime
	End          clock.ClockTime
	GraceMinutes int
}

// DefaultShift is 08:00-18:00 with a 10 minute grace period.
var DefaultShift = StandardShift{
	Start:        clock.MustParse("08:00"),
	End:          clock.MustParse("18:00"),
	GraceMinutes: 10,
}

// LatestEntry is the last entry time still inside the tolerance window.
func (s StandardShift) LatestEntry() clock.ClockTime {
	return s.Start.Add(s.GraceMinutes)
}

// LatestExit is the last exit time still inside the tolerance window.
func (s StandardShift) LatestExit() clock.ClockTime {
	return s.End.Add(s.GraceMinutes)
}
