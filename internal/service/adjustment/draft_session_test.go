package adjustment

import (
	"fmt"
	"sync"
	"testing"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/adjustment"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftSession_RecomputesOnEveryChange(t *testing.T) {
	s := NewDraftSession()

	ws, err := s.Set(adjustment.FieldEntryTime, "12:00")
	require.NoError(t, err)
	assert.Equal(t, []adjustment.WarningCode{adjustment.WarningLateEntry}, Codes(ws))

	ws, err = s.Set(adjustment.FieldExitTime, "09:00")
	require.NoError(t, err)
	assert.Equal(t, []adjustment.WarningCode{adjustment.WarningLateEntry, adjustment.WarningExitNotAfterEntry}, Codes(ws))

	// Correcting the entry clears both warnings at once.
	ws, err = s.Set(adjustment.FieldEntryTime, "08:00")
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Empty(t, s.Warnings())
}

func TestDraftSession_ClearField(t *testing.T) {
	s := NewDraftSession()

	_, err := s.Set(adjustment.FieldBreakOutTime, "13:00")
	require.NoError(t, err)
	ws, err := s.Set(adjustment.FieldBreakInTime, "12:00")
	require.NoError(t, err)
	assert.Equal(t, []adjustment.WarningCode{adjustment.WarningBreakInNotAfterBreakOut}, Codes(ws))

	ws, err = s.Set(adjustment.FieldBreakInTime, "")
	require.NoError(t, err)
	assert.Empty(t, ws)
	assert.Nil(t, s.Draft().BreakInTime)
}

func TestDraftSession_InvalidValueKeepsDraft(t *testing.T) {
	s := NewDraftSession()

	_, err := s.Set(adjustment.FieldEntryTime, "08:30")
	require.NoError(t, err)

	_, err = s.Set(adjustment.FieldEntryTime, "8:30")
	assert.ErrorIs(t, err, clock.ErrInvalidClockTime)
	require.NotNil(t, s.Draft().EntryTime)
	assert.Equal(t, "08:30", s.Draft().EntryTime.String())
	assert.Equal(t, []adjustment.WarningCode{adjustment.WarningLateEntry}, Codes(s.Warnings()))
}

func TestDraftSession_UnknownField(t *testing.T) {
	s := NewDraftSession()
	_, err := s.Set(adjustment.DraftField("lunch"), "12:00")
	assert.ErrorIs(t, err, adjustment.ErrUnknownDraftField)
}

func TestDraftSession_ReplaceAndReset(t *testing.T) {
	s := NewDraftSession()

	ws := s.Replace(draftOf("08:30", "", "", "17:00"))
	assert.Equal(t, []adjustment.WarningCode{adjustment.WarningLateEntry}, Codes(ws))

	s.Reset()
	assert.Empty(t, s.Warnings())
	assert.Equal(t, adjustment.AttendanceDraft{}, s.Draft())
}

func TestDraftSession_WarningsAreCopies(t *testing.T) {
	s := NewDraftSession()
	ws := s.Replace(draftOf("12:00", "", "", ""))
	ws[0].Message = "changed"
	assert.NotEqual(t, "changed", s.Warnings()[0].Message)
}

func TestDraftSession_ConcurrentSetsLastWriteWins(t *testing.T) {
	s := NewDraftSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Set(adjustment.FieldExitTime, fmt.Sprintf("18:%02d", i))
		}(i)
	}
	wg.Wait()

	// Whatever value won, the warnings describe it.
	assert.Equal(t, Codes(Evaluate(s.Draft())), Codes(s.Warnings()))
}
