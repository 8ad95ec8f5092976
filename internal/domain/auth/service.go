package auth

import (
	"context"
)

type AuthService interface {
	// Login resolves the manager name through the directory and checks the PIN.
	Login(ctx context.Context, req LoginRequest, sessionReq SessionTrackingRequest) (TokenResponse, error)
	// Logout revokes the refresh token. Revoking an already revoked token is not an error.
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)
	// ListManagers returns the directory's display names in file order.
	ListManagers(ctx context.Context) ManagerListResponse
	// SetPIN creates or updates the manager's bcrypt PIN hash.
	SetPIN(ctx context.Context, req SetPINRequest) error
}
