package adjustment

import (
	"sync"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
)

// DraftSession tracks one adjustment form while it is being filled in.
// Every change re-runs the checks over the whole current draft, so the
// warnings always describe the latest state.
type DraftSession struct {
	mu       sync.Mutex
	shift    adjustment.StandardShift
	draft    adjustment.AttendanceDraft
	warnings []adjustment.Warning
}

func NewDraftSession() *DraftSession {
	return NewDraftSessionWithShift(adjustment.DefaultShift)
}

func NewDraftSessionWithShift(shift adjustment.StandardShift) *DraftSession {
	return &DraftSession{shift: shift}
}

// Set updates one field and returns the recomputed warnings. An empty value
// clears the field. A malformed value leaves the draft untouched.
func (s *DraftSession) Set(field adjustment.DraftField, value string) ([]adjustment.Warning, error) {
	var t *clock.ClockTime
	if value != "" {
		parsed, err := clock.Parse(value)
		if err != nil {
			return nil, err
		}
		t = &parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch field {
	case adjustment.FieldEntryTime:
		s.draft.EntryTime = t
	case adjustment.FieldBreakOutTime:
		s.draft.BreakOutTime = t
	case adjustment.FieldBreakInTime:
		s.draft.BreakInTime = t
	case adjustment.FieldExitTime:
		s.draft.ExitTime = t
	default:
		return nil, adjustment.ErrUnknownDraftField
	}

	s.recompute()
	return s.snapshot(), nil
}

// Replace swaps in a whole draft and returns the recomputed warnings.
func (s *DraftSession) Replace(draft adjustment.AttendanceDraft) []adjustment.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = draft
	s.recompute()
	return s.snapshot()
}

// Reset discards the draft, as on cancel.
func (s *DraftSession) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.draft = adjustment.AttendanceDraft{}
	s.warnings = nil
}

func (s *DraftSession) Draft() adjustment.AttendanceDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

func (s *DraftSession) Warnings() []adjustment.Warning {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *DraftSession) recompute() {
	s.warnings = EvaluateShift(s.shift, s.draft)
}

// snapshot copies so callers cannot alias the session's slice.
func (s *DraftSession) snapshot() []adjustment.Warning {
	out := make([]adjustment.Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}
