package adjustment

import (
	"strings"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/clock"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/validator"
)

// ========================================
// DRAFT PREVIEW DTOs
// ========================================

type PreviewRequest struct {
	EntryTime    *string `json:"entry_time,omitempty"`
	BreakOutTime *string `json:"break_out_time,omitempty"`
	BreakInTime  *string `json:"break_in_time,omitempty"`
	ExitTime     *string `json:"exit_time,omitempty"`
}

func (r *PreviewRequest) Validate() error {
	var errs validator.ValidationErrors

	errs = validator.OptionalClockTime(errs, "entry_time", r.EntryTime)
	errs = validator.OptionalClockTime(errs, "break_out_time", r.BreakOutTime)
	errs = validator.OptionalClockTime(errs, "break_in_time", r.BreakInTime)
	errs = validator.OptionalClockTime(errs, "exit_time", r.ExitTime)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToDraft converts a validated request. Absent or empty values stay nil.
func (r *PreviewRequest) ToDraft() (AttendanceDraft, error) {
	var (
		d   AttendanceDraft
		err error
	)
	if d.EntryTime, err = clock.ParsePtr(r.EntryTime); err != nil {
		return AttendanceDraft{}, err
	}
	if d.BreakOutTime, err = clock.ParsePtr(r.BreakOutTime); err != nil {
		return AttendanceDraft{}, err
	}
	if d.BreakInTime, err = clock.ParsePtr(r.BreakInTime); err != nil {
		return AttendanceDraft{}, err
	}
	if d.ExitTime, err = clock.ParsePtr(r.ExitTime); err != nil {
		return AttendanceDraft{}, err
	}
	return d, nil
}

type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PreviewResponse struct {
	Warnings []WarningResponse `json:"warnings"`
}

// NewWarningResponses always returns a non-nil slice so the JSON body carries [] rather than null.
func NewWarningResponses(ws []Warning) []WarningResponse {
	out := make([]WarningResponse, 0, len(ws))
	for _, w := range ws {
		out = append(out, WarningResponse{Code: string(w.Code), Message: w.Message})
	}
	return out
}

// ========================================
// ADJUSTMENT DTOs
// ========================================

type CreateAdjustmentRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"` // YYYY-MM-DD
	EntryTime    string  `json:"entry_time"`
	BreakOutTime *string `json:"break_out_time,omitempty"`
	BreakInTime  *string `json:"break_in_time,omitempty"`
	ExitTime     string  `json:"exit_time"`
	Reason       string  `json:"reason"`
	Note         *string `json:"note,omitempty"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	} else if !validator.IsValidUUID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	errs = validator.RequiredClockTime(errs, "entry_time", r.EntryTime)
	errs = validator.OptionalClockTime(errs, "break_out_time", r.BreakOutTime)
	errs = validator.OptionalClockTime(errs, "break_in_time", r.BreakInTime)
	errs = validator.RequiredClockTime(errs, "exit_time", r.ExitTime)

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	} else if !Reason(r.Reason).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must be one of: " + strings.Join(reasonCodes(), ", "),
		})
	}

	if r.Note != nil && len(*r.Note) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "note",
			Message: "note must not exceed 1000 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Draft returns the clock events of a validated request.
func (r *CreateAdjustmentRequest) Draft() (AttendanceDraft, error) {
	preview := PreviewRequest{
		EntryTime:    &r.EntryTime,
		BreakOutTime: r.BreakOutTime,
		BreakInTime:  r.BreakInTime,
		ExitTime:     &r.ExitTime,
	}
	return preview.ToDraft()
}

type AdjustmentResponse struct {
	ID           string            `json:"id"`
	EmployeeID   string            `json:"employee_id"`
	EmployeeName *string           `json:"employee_name,omitempty"`
	ManagerName  string            `json:"manager_name"`
	ManagerEmail string            `json:"manager_email"`
	Date         string            `json:"date"`
	EntryTime    string            `json:"entry_time"`
	BreakOutTime *string           `json:"break_out_time"`
	BreakInTime  *string           `json:"break_in_time"`
	ExitTime     string            `json:"exit_time"`
	Reason       string            `json:"reason"`
	ReasonLabel  string            `json:"reason_label"`
	Note         *string           `json:"note,omitempty"`
	CreatedAt    string            `json:"created_at"`
	Warnings     []WarningResponse `json:"warnings"`
}

type AdjustmentFilter struct {
	Search *string `json:"search,omitempty"` // case-insensitive employee name substring
	Days   int     `json:"days"`
}

func (f *AdjustmentFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Days < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must be a positive number",
		})
	}
	if f.Days == 0 {
		f.Days = 30 // Default window
	}
	if f.Days > 366 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "days must not exceed 366",
		})
	}

	if f.Search != nil {
		trimmed := strings.TrimSpace(*f.Search)
		if trimmed == "" {
			f.Search = nil
		} else {
			f.Search = &trimmed
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAdjustmentResponse struct {
	TotalCount  int                  `json:"total_count"`
	Days        int                  `json:"days"`
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

type ReasonResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// ListReasons returns every reason code with its display label.
func ListReasons() []ReasonResponse {
	out := make([]ReasonResponse, 0, len(Reasons))
	for _, r := range Reasons {
		out = append(out, ReasonResponse{Code: string(r), Label: r.Label()})
	}
	return out
}
