package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timeclock-adjustment/internal/config"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/auth"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/directory"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/timeclock-adjustment/internal/handler/http"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/cache"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/cron"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/database"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/jwt"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/metrics"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/pkg/spreadsheet"
	"github.com/cmlabs-hris/timeclock-adjustment/internal/repository/postgresql"
	adjustmentService "github.com/cmlabs-hris/timeclock-adjustment/internal/service/adjustment"
	serviceAuth "github.com/cmlabs-hris/timeclock-adjustment/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/timeclock-adjustment/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/timeclock-adjustment/internal/service/employee"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const version = "v1.0.0"

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := run(os.Args[1:]); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := "serve"
	if len(args) > 0 {
		cmd = args[0]
	}

	switch cmd {
	case "serve":
		return serve(ctx, cfg)
	case "set-pin":
		if len(args) != 3 {
			return errors.New("usage: api set-pin <manager name> <pin>")
		}
		return setPIN(ctx, cfg, args[1], args[2])
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// loadDirectory prefers the roster spreadsheet, which also yields the
// employee roster used by imports.
func loadDirectory(cfg config.DirectoryConfig) (*directory.Directory, *directory.Roster, error) {
	if cfg.RosterPath != "" {
		rows, err := spreadsheet.ReadFile(cfg.RosterPath)
		if err != nil {
			return nil, nil, fmt.Errorf("read roster: %w", err)
		}
		return directory.ParseRosterRows(rows, cfg.LoginDomain)
	}

	dir, err := directory.LoadYAML(cfg.ManagersPath)
	if err != nil {
		return nil, nil, err
	}
	return dir, nil, nil
}

type app struct {
	db         *database.DB
	directory  *directory.Directory
	jwtService jwt.Service
	authSvc    auth.AuthService
}

func newApp(ctx context.Context, cfg *config.Config, m *metrics.Metrics) (*app, *directory.Roster, error) {
	dir, roster, err := loadDirectory(cfg.Directory)
	if err != nil {
		return nil, nil, err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration, cfg.JWT.SecureCookie)
	authService := serviceAuth.NewAuthService(
		postgresql.NewTransactor(db),
		dir,
		postgresql.NewManagerRepository(db),
		jwtService,
		postgresql.NewRefreshTokenRepository(db),
		m,
	)

	return &app{db: db, directory: dir, jwtService: jwtService, authSvc: authService}, roster, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	registry := prometheus.NewRegistry()
	m := metrics.New("timeclock", registry)

	a, roster, err := newApp(ctx, cfg, m)
	if err != nil {
		return err
	}
	defer a.db.Close()
	slog.Info("manager directory loaded", "managers", a.directory.Len(), "roster", roster != nil)

	var employeeCache employee.EmployeeCache
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("redis unavailable, employee cache disabled", "error", err)
		} else {
			employeeCache = cache.NewRedisEmployeeCache(rdb, cfg.Redis.TTL)
		}
	}

	tx := postgresql.NewTransactor(a.db)
	employeeRepo := postgresql.NewEmployeeRepository(a.db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(a.db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(a.db)

	employeeSvc := employeeService.NewEmployeeService(tx, employeeRepo, roster, employeeCache)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, employeeRepo, m)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, adjustmentRepo)

	loginLimiter := middleware.NewIPRateLimiter(middleware.RateLimitConfig{
		Rate:  cfg.RateLimit.LoginPerSecond,
		Burst: cfg.RateLimit.LoginBurst,
	})

	scheduler := cron.NewScheduler()
	cron.NewTokenJobs(refreshTokenRepo, a.jwtService).RegisterJobs(scheduler, cfg.Cron.TokenPurgeInterval)
	scheduler.AddJob("cleanup_login_limiter", 10*time.Minute, func(ctx context.Context) error {
		if removed := loginLimiter.Cleanup(); removed > 0 {
			slog.Debug("login limiter cleaned", "removed", removed)
		}
		return nil
	})
	scheduler.Start(ctx)
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			Version:     version,
			Gatherer:    registry,
		},
		a.jwtService,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(a.jwtService, a.authSvc),
			Adjustment: appHTTP.NewAdjustmentHandler(adjustmentSvc),
			Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		},
		loginLimiter,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func setPIN(ctx context.Context, cfg *config.Config, managerName, pin string) error {
	a, _, err := newApp(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer a.db.Close()

	if err := a.authSvc.SetPIN(ctx, auth.SetPINRequest{ManagerName: managerName, PIN: pin}); err != nil {
		return fmt.Errorf("set pin: %w", err)
	}
	slog.Info("PIN updated", "manager", managerName)
	return nil
}
