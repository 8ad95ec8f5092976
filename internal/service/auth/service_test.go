package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/manager"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/metrics"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret = "test-secret-key-for-jwt"
	testEmail  = "alcina@ajusteponto.local"
)

type mockManagerRepo struct {
	mock.Mock
}

func (m *mockManagerRepo) GetByID(ctx context.Context, id string) (manager.Manager, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(manager.Manager), args.Error(1)
}

func (m *mockManagerRepo) GetByEmail(ctx context.Context, email string) (manager.Manager, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(manager.Manager), args.Error(1)
}

func (m *mockManagerRepo) Upsert(ctx context.Context, mgr manager.Manager) (manager.Manager, error) {
	args := m.Called(ctx, mgr)
	return args.Get(0).(manager.Manager), args.Error(1)
}

type mockTokenRepo struct {
	mock.Mock
}

func (m *mockTokenRepo) Create(ctx context.Context, managerID string, token string, expiresAt int64, s auth.SessionTrackingRequest) error {
	return m.Called(ctx, managerID, token, expiresAt, s).Error(0)
}

func (m *mockTokenRepo) IsRevoked(ctx context.Context, token string) (string, bool, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockTokenRepo) Revoke(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockTokenRepo) PurgeStale(ctx context.Context, before time.Time) (int64, error) {
	args := m.Called(ctx, before)
	return args.Get(0).(int64), args.Error(1)
}

type passthroughTx struct{}

func (passthroughTx) WithinTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fixture struct {
	svc      auth.AuthService
	managers *mockManagerRepo
	tokens   *mockTokenRepo
	jwt      jwt.Service
	metrics  *metrics.Metrics
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir, err := directory.New([]directory.Entry{
		{Name: "Alcina", Login: testEmail},
		{Name: "Fernando Ramos", Login: "fernando-ramos@ajusteponto.local"},
	})
	require.NoError(t, err)

	f := fixture{
		managers: &mockManagerRepo{},
		tokens:   &mockTokenRepo{},
		jwt:      jwt.NewJWTService(testSecret, time.Hour, 24*time.Hour, false),
		metrics:  metrics.New("test", prometheus.NewRegistry()),
	}
	f.svc = NewAuthService(passthroughTx{}, dir, f.managers, f.jwt, f.tokens, f.metrics)
	return f
}

func hashed(t *testing.T, pin string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("GetByEmail", ctx, testEmail).
		Return(manager.Manager{ID: "m-1", Name: "Alcina", Email: testEmail, PINHash: hashed(t, "1234")}, nil)
	f.tokens.On("Create", ctx, "m-1", mock.AnythingOfType("string"), mock.AnythingOfType("int64"), mock.Anything).Return(nil)

	resp, err := f.svc.Login(ctx, auth.LoginRequest{ManagerName: "Alcina", PIN: "1234"}, auth.SessionTrackingRequest{IPAddress: "127.0.0.1"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Alcina", resp.ManagerName)
	assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues("success")))
	f.tokens.AssertExpectations(t)
}

func TestAuthService_Login_WrongPIN(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("GetByEmail", ctx, testEmail).
		Return(manager.Manager{ID: "m-1", Email: testEmail, PINHash: hashed(t, "1234")}, nil)

	_, err := f.svc.Login(ctx, auth.LoginRequest{ManagerName: "Alcina", PIN: "9999"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Equal(t, 1.0, testutil.ToFloat64(f.metrics.LoginAttempts.WithLabelValues("failure")))
	f.tokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnlistedName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Login(context.Background(), auth.LoginRequest{ManagerName: "alcina", PIN: "1234"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	f.managers.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestAuthService_Login_NoPINSet(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("GetByEmail", ctx, testEmail).Return(manager.Manager{ID: "m-1", Email: testEmail}, nil)

	_, err := f.svc.Login(ctx, auth.LoginRequest{ManagerName: "Alcina", PIN: "1234"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownManager(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("GetByEmail", ctx, testEmail).Return(manager.Manager{}, manager.ErrManagerNotFound)

	_, err := f.svc.Login(ctx, auth.LoginRequest{ManagerName: "Alcina", PIN: "1234"}, auth.SessionTrackingRequest{})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("GetByEmail", ctx, testEmail).Return(manager.Manager{}, errors.New("connection refused"))

	_, err := f.svc.Login(ctx, auth.LoginRequest{ManagerName: "Alcina", PIN: "1234"}, auth.SessionTrackingRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tokens.On("IsRevoked", ctx, "tok").Return("m-1", false, nil)
	f.tokens.On("Revoke", ctx, "tok").Return(nil)

	require.NoError(t, f.svc.Logout(ctx, "tok"))
	f.tokens.AssertExpectations(t)
}

func TestAuthService_Logout_AlreadyRevoked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.tokens.On("IsRevoked", ctx, "tok").Return("m-1", true, nil)

	require.NoError(t, f.svc.Logout(ctx, "tok"))
	f.tokens.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	refresh, _, err := f.jwt.GenerateRefreshToken("m-1")
	require.NoError(t, err)

	f.tokens.On("IsRevoked", ctx, refresh).Return("m-1", false, nil)
	f.managers.On("GetByID", ctx, "m-1").Return(manager.Manager{ID: "m-1", Name: "Alcina", Email: testEmail}, nil)

	resp, err := f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestAuthService_RefreshToken_Revoked(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	refresh, _, err := f.jwt.GenerateRefreshToken("m-1")
	require.NoError(t, err)
	f.tokens.On("IsRevoked", ctx, refresh).Return("m-1", true, nil)

	_, err = f.svc.RefreshToken(ctx, auth.RefreshTokenRequest{RefreshToken: refresh})
	assert.ErrorIs(t, err, auth.ErrRefreshTokenRevoked)
}

func TestAuthService_RefreshToken_Invalid(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: "not-a-jwt"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ListManagers(t *testing.T) {
	f := newFixture(t)

	resp := f.svc.ListManagers(context.Background())
	assert.Equal(t, []string{"Alcina", "Fernando Ramos"}, resp.Managers)
}

func TestAuthService_SetPIN(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.managers.On("Upsert", ctx, mock.MatchedBy(func(m manager.Manager) bool {
		return m.Email == testEmail && m.Name == "Alcina" && m.PINHash != nil &&
			bcrypt.CompareHashAndPassword([]byte(*m.PINHash), []byte("4321")) == nil
	})).Return(manager.Manager{ID: "m-1"}, nil)

	require.NoError(t, f.svc.SetPIN(ctx, auth.SetPINRequest{ManagerName: "Alcina", PIN: "4321"}))
	f.managers.AssertExpectations(t)
}

func TestAuthService_SetPIN_UnlistedName(t *testing.T) {
	f := newFixture(t)

	err := f.svc.SetPIN(context.Background(), auth.SetPINRequest{ManagerName: "Nobody", PIN: "4321"})
	assert.ErrorIs(t, err, directory.ErrManagerNotListed)
}

func TestAuthService_SetPIN_RejectsWeakPIN(t *testing.T) {
	f := newFixture(t)

	err := f.svc.SetPIN(context.Background(), auth.SetPINRequest{ManagerName: "Alcina", PIN: "12a"})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "pin")
	f.managers.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}
