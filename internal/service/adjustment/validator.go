package adjustment

import (
	"fmt"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
)

// Evaluate runs the advisory checks against the standard 08:00-18:00 shift.
func Evaluate(draft adjustment.AttendanceDraft) []adjustment.Warning {
	return EvaluateShift(adjustment.DefaultShift, draft)
}

// EvaluateShift returns the warnings that apply to draft, in check order:
// late entry, late exit, entry/exit ordering, break ordering. Checks whose
// inputs are absent are skipped. It has no side effects.
func EvaluateShift(shift adjustment.StandardShift, draft adjustment.AttendanceDraft) []adjustment.Warning {
	var warnings []adjustment.Warning

	if draft.EntryTime != nil && draft.EntryTime.After(shift.LatestEntry()) {
		warnings = append(warnings, adjustment.Warning{
			Code:    adjustment.WarningLateEntry,
			Message: fmt.Sprintf("Entry outside tolerance (after %s). The employee must provide a justification.", shift.LatestEntry()),
		})
	}

	if draft.ExitTime != nil && draft.ExitTime.After(shift.LatestExit()) {
		warnings = append(warnings, adjustment.Warning{
			Code:    adjustment.WarningLateExit,
			Message: fmt.Sprintf("Exit outside tolerance (after %s).", shift.LatestExit()),
		})
	}

	// Equal times count as out of order.
	if draft.EntryTime != nil && draft.ExitTime != nil && !draft.ExitTime.After(*draft.EntryTime) {
		warnings = append(warnings, adjustment.Warning{
			Code:    adjustment.WarningExitNotAfterEntry,
			Message: "Attention: the exit time must be later than the entry time.",
		})
	}

	if draft.BreakOutTime != nil && draft.BreakInTime != nil && !draft.BreakInTime.After(*draft.BreakOutTime) {
		warnings = append(warnings, adjustment.Warning{
			Code:    adjustment.WarningBreakInNotAfterBreakOut,
			Message: "Attention: the break return must be later than the break departure.",
		})
	}

	return warnings
}

// Messages flattens warnings to their display strings, keeping order.
func Messages(warnings []adjustment.Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Message)
	}
	return out
}

// Codes returns the warning codes, keeping order.
func Codes(warnings []adjustment.Warning) []adjustment.WarningCode {
	out := make([]adjustment.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Code)
	}
	return out
}
