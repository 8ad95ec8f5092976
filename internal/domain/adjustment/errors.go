package adjustment

import "errors"

// Adjustment domain errors
var (
	ErrAdjustmentNotFound = errors.New("adjustment not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrSaveFailed         = errors.New("failed to save adjustment")
	ErrUnknownDraftField  = errors.New("unknown draft field")
)
