package auth

import "github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/validator"

type LoginRequest struct {
	ManagerName string `json:"manager_name"`
	PIN         string `json:"pin"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_name",
			Message: "manager_name is required",
		})
	}

	if validator.IsEmpty(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetPINRequest struct {
	ManagerName string
	PIN         string
}

func (r *SetPINRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ManagerName) {
		errs = append(errs, validator.ValidationError{
			Field:   "manager_name",
			Message: "manager_name is required",
		})
	}

	if !validator.IsValidPIN(r.PIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "pin",
			Message: "pin must be 4 to 12 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionTrackingRequest struct {
	UserAgent string
	IPAddress string
}

type TokenResponse struct {
	AccessToken           string `json:"access_token"`
	AccessTokenExpiresIn  int64  `json:"access_token_expires_in"`
	RefreshToken          string `json:"refresh_token"`
	RefreshTokenExpiresIn int64  `json:"refresh_token_expires_in"`
	ManagerName           string `json:"manager_name"`
}

type AccessTokenResponse struct {
	AccessToken          string `json:"access_token"`
	AccessTokenExpiresIn int64  `json:"access_token_expires_in"`
}

type ManagerListResponse struct {
	Managers []string `json:"managers"`
}

type SessionResponse struct {
	ManagerID    string `json:"manager_id"`
	ManagerName  string `json:"manager_name"`
	ManagerEmail string `json:"manager_email"`
}
