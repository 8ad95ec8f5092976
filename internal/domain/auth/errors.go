package auth

import "errors"

var (
	ErrInvalidCredentials         = errors.New("authentication failed, check the PIN")
	ErrInvalidToken               = errors.New("invalid or expired token")
	ErrRefreshTokenRevoked        = errors.New("refresh token has been revoked")
	ErrRefreshTokenCookieNotFound = errors.New("refresh token cookie not found")
	ErrRefreshTokenCookieEmpty    = errors.New("refresh token cookie is empty")
	ErrTooManyAttempts            = errors.New("too many sign-in attempts, try again shortly")
)
