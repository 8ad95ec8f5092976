package auth

import (
	"context"
	"time"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, managerID string, token string, expiresAt int64, sessionReq SessionTrackingRequest) error
	// IsRevoked reports whether the token is revoked or expired. Unknown tokens count as revoked.
	IsRevoked(ctx context.Context, token string) (managerID string, revoked bool, err error)
	Revoke(ctx context.Context, token string) error
	// PurgeStale deletes tokens that expired or were revoked before the cutoff.
	PurgeStale(ctx context.Context, before time.Time) (int64, error)
}
