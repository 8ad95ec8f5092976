package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// ManagerClaims identifies the manager an access token was issued to.
type ManagerClaims struct {
	ManagerID   string
	ManagerName string
	Email       string
}

type Service interface {
	GenerateAccessToken(claims ManagerClaims) (token string, expiresAt int64, err error)
	GenerateRefreshToken(managerID string) (token string, expiresAt int64, err error)
	ParseRefreshToken(token string) (managerID string, err error)
	JWTAuth() *jwtauth.JWTAuth
	RefreshTokenCookie(token string, expiresAt int64) *http.Cookie
	ExpiredRefreshTokenCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
	PurgeRevoked(before time.Time) int
	AccessTokenTTL() time.Duration
}

type JWTService struct {
	secretKey                  string
	accessTokenExpirationTime  time.Duration
	refreshTokenExpirationTime time.Duration
	secureCookie               bool
	tokenAuth                  *jwtauth.JWTAuth
	revokedTokens              map[string]int64
	mu                         sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime, refreshTokenExpirationTime time.Duration, secureCookie bool) Service {
	return &JWTService{
		secretKey:                  secretKey,
		accessTokenExpirationTime:  accessTokenExpirationTime,
		refreshTokenExpirationTime: refreshTokenExpirationTime,
		secureCookie:               secureCookie,
		tokenAuth:                  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:              make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(claims ManagerClaims) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"manager_id":   claims.ManagerID,
		"manager_name": claims.ManagerName,
		"email":        claims.Email,
		"type":         TokenTypeAccess,
		"exp":          expiresAt,
	})
	return tokenString, expiresAt, err
}

func (j *JWTService) GenerateRefreshToken(managerID string) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.refreshTokenExpirationTime).Unix()
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"manager_id": managerID,
		// Two logins in the same second must not produce the same token hash.
		"jti":  uuid.NewString(),
		"exp":  expiresAt,
		"type": TokenTypeRefresh,
	})
	return tokenString, expiresAt, err
}

// ParseRefreshToken verifies signature, expiry and token type.
func (j *JWTService) ParseRefreshToken(tokenString string) (managerID string, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != TokenTypeRefresh {
		return "", jwt.ErrInvalidJWT()
	}

	idVal, ok := token.Get("manager_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}
	managerID, ok = idVal.(string)
	if !ok || managerID == "" {
		return "", jwt.ErrInvalidJWT()
	}
	return managerID, nil
}

func (j *JWTService) RefreshTokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredRefreshTokenCookie clears the refresh cookie on the client.
func (j *JWTService) ExpiredRefreshTokenCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "refresh_token",
		Value:    "",
		Path:     "/api/v1/auth",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// PurgeRevoked forgets tokens revoked before the given time. Callers pass a
// cutoff older than the access token lifetime so only dead tokens go.
func (j *JWTService) PurgeRevoked(before time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	cutoff := before.Unix()
	purged := 0
	for token, revokedAt := range j.revokedTokens {
		if revokedAt < cutoff {
			delete(j.revokedTokens, token)
			purged++
		}
	}
	return purged
}

// AccessTokenTTL is exposed for the purge job cutoff.
func (j *JWTService) AccessTokenTTL() time.Duration {
	return j.accessTokenExpirationTime
}
