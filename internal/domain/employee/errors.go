package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrRosterEmpty      = errors.New("no employees found in the roster for this manager")
	ErrAlreadyImported  = errors.New("employees already imported for this manager")
)
