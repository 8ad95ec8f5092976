package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/manager"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/metrics"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	tx        postgresql.Transactor
	directory *directory.Directory
	metrics   *metrics.Metrics
	manager.ManagerRepository
	jwt.Service
	auth.RefreshTokenRepository
}

func NewAuthService(
	tx postgresql.Transactor,
	dir *directory.Directory,
	managerRepository manager.ManagerRepository,
	jwtService jwt.Service,
	refreshTokenRepository auth.RefreshTokenRepository,
	m *metrics.Metrics,
) auth.AuthService {
	return &AuthServiceImpl{
		tx:                     tx,
		directory:              dir,
		metrics:                m,
		ManagerRepository:      managerRepository,
		Service:                jwtService,
		RefreshTokenRepository: refreshTokenRepository,
	}
}

func (a *AuthServiceImpl) hashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	tokenResponse, err := a.login(ctx, loginReq, sessionTrackReq)
	if err != nil {
		a.metrics.IncLogin("failure")
		return auth.TokenResponse{}, err
	}
	a.metrics.IncLogin("success")
	return tokenResponse, nil
}

func (a *AuthServiceImpl) login(ctx context.Context, loginReq auth.LoginRequest, sessionTrackReq auth.SessionTrackingRequest) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse

	email, err := a.directory.Lookup(loginReq.ManagerName)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	managerData, err := a.ManagerRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, manager.ErrManagerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get manager by email: %w", err)
	}

	if managerData.PINHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*managerData.PINHash), []byte(loginReq.PIN)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	// The session carries the directory's display name, not whatever the
	// manager row last stored.
	claims := jwt.ManagerClaims{
		ManagerID:   managerData.ID,
		ManagerName: loginReq.ManagerName,
		Email:       managerData.Email,
	}

	err = a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(claims)
		if err != nil {
			return fmt.Errorf("failed to create access token: %w", err)
		}
		tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(managerData.ID)
		if err != nil {
			return fmt.Errorf("failed to create refresh token: %w", err)
		}

		if err := a.RefreshTokenRepository.Create(txCtx, managerData.ID, tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, sessionTrackReq); err != nil {
			return fmt.Errorf("failed to save refresh token to database: %w", err)
		}
		return nil
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	tokenResponse.ManagerName = loginReq.ManagerName
	return tokenResponse, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	return a.tx.WithinTx(ctx, func(txCtx context.Context) error {
		_, isRevoked, err := a.RefreshTokenRepository.IsRevoked(txCtx, token)
		if err != nil {
			return fmt.Errorf("failed to check if refresh token is revoked: %w", err)
		}
		if !isRevoked {
			if err := a.RefreshTokenRepository.Revoke(txCtx, token); err != nil {
				return fmt.Errorf("failed to revoke refresh token: %w", err)
			}
		}
		return nil
	})
}

// RefreshToken implements auth.AuthService.
func (a *AuthServiceImpl) RefreshToken(ctx context.Context, req auth.RefreshTokenRequest) (auth.AccessTokenResponse, error) {
	var accessTokenResponse auth.AccessTokenResponse

	// 1. Verify signature, expiry and token type
	managerID, err := a.Service.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, auth.ErrInvalidToken
	}

	// 2. Check DB for revocation/expiry
	storedManagerID, isRevoked, err := a.RefreshTokenRepository.IsRevoked(ctx, req.RefreshToken)
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if isRevoked || storedManagerID != managerID {
		return auth.AccessTokenResponse{}, auth.ErrRefreshTokenRevoked
	}

	// 3. Get manager
	managerData, err := a.ManagerRepository.GetByID(ctx, managerID)
	if err != nil {
		if errors.Is(err, manager.ErrManagerNotFound) {
			return auth.AccessTokenResponse{}, auth.ErrInvalidToken
		}
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to get manager by id: %w", err)
	}

	// 4. Generate new access token
	accessTokenResponse.AccessToken, accessTokenResponse.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(jwt.ManagerClaims{
		ManagerID:   managerData.ID,
		ManagerName: managerData.Name,
		Email:       managerData.Email,
	})
	if err != nil {
		return auth.AccessTokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return accessTokenResponse, nil
}

// ListManagers implements auth.AuthService.
func (a *AuthServiceImpl) ListManagers(ctx context.Context) auth.ManagerListResponse {
	return auth.ManagerListResponse{Managers: a.directory.Names()}
}

// SetPIN implements auth.AuthService.
func (a *AuthServiceImpl) SetPIN(ctx context.Context, req auth.SetPINRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	email, err := a.directory.Lookup(req.ManagerName)
	if err != nil {
		return err
	}

	hash, err := a.hashPIN(req.PIN)
	if err != nil {
		return fmt.Errorf("failed to hash pin: %w", err)
	}

	if _, err := a.ManagerRepository.Upsert(ctx, manager.Manager{
		Name:    req.ManagerName,
		Email:   email,
		PINHash: &hash,
	}); err != nil {
		return fmt.Errorf("failed to save manager: %w", err)
	}
	return nil
}
