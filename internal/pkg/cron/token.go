package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/jwt"
)

// staleTokenGrace keeps revoked and expired refresh tokens around for a day
// so logout races and audit lookups still find them.
const staleTokenGrace = 24 * time.Hour

type TokenJobs struct {
	refreshTokenRepo auth.RefreshTokenRepository
	jwtService       jwt.Service
	now              func() time.Time
}

func NewTokenJobs(refreshTokenRepo auth.RefreshTokenRepository, jwtService jwt.Service) *TokenJobs {
	return &TokenJobs{
		refreshTokenRepo: refreshTokenRepo,
		jwtService:       jwtService,
		now:              time.Now,
	}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) {
	scheduler.AddJob("purge_stale_tokens", interval, j.PurgeStaleTokens)
}

// PurgeStaleTokens deletes dead refresh tokens and forgets revoked access
// tokens that have expired anyway.
func (j *TokenJobs) PurgeStaleTokens(ctx context.Context) error {
	now := j.now()

	deleted, err := j.refreshTokenRepo.PurgeStale(ctx, now.Add(-staleTokenGrace))
	if err != nil {
		return fmt.Errorf("failed to purge refresh tokens: %w", err)
	}

	forgotten := j.jwtService.PurgeRevoked(now.Add(-j.jwtService.AccessTokenTTL()))

	if deleted > 0 || forgotten > 0 {
		slog.Info("Cron: purged stale tokens", "refresh_tokens", deleted, "revoked_access_tokens", forgotten)
	}
	return nil
}
