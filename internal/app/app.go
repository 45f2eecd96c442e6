package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fxledger/internal/account"
	accounthandler "fxledger/internal/account/handler"
	"fxledger/internal/adapters/cache"
	"fxledger/internal/adapters/httpclient"
	"fxledger/internal/adapters/postgres"
	"fxledger/internal/api"
	"fxledger/internal/config"
	"fxledger/internal/platform/db"
	httpserver "fxledger/internal/platform/http"
	"fxledger/internal/rate"
	ratehandler "fxledger/internal/rate/handler"
	"fxledger/internal/user"
	userhandler "fxledger/internal/user/handler"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	cfgLevel := appCfg.Logging.Level
	if parsedLvl, parseErr := logrus.ParseLevel(cfgLevel); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// "today" for rate sets is defined by this location
	loc, err := appCfg.Clock.Location()
	if err != nil {
		return fmt.Errorf("invalid clock timezone %q: %w", appCfg.Clock.Timezone, err)
	}
	refreshHour, refreshMinute, err := appCfg.Scheduler.RefreshTime()
	if err != nil {
		return err
	}
	clock := clockwork.NewRealClock()

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations (DB connect, migrations)
	startupCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.Open(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	if err = db.Migrate(startupCtx, pool); err != nil {
		logrus.WithError(err).Error("Failed to apply migrations")
		return err
	}
	logrus.Info("✅ Migrations applied")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// External clients
	rateClient := httpclient.NewCurrencyAPIClient(baseHTTPClient, appCfg.RatesAPI.URLTemplate)

	// Repositories and caches
	rateRepo := postgres.NewRateRepository(pool)
	balanceRepo := postgres.NewBalanceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)

	rateCache, err := cache.NewRateCache(appCfg.Cache.MaxItems, time.Duration(appCfg.Cache.TTLHours)*time.Hour)
	if err != nil {
		return err
	}
	defer rateCache.Close()

	// Services
	rateService := rate.NewService(rateRepo, rateClient, rateCache, clock, loc)
	rateValidator := rate.NewValidator()
	userService := user.NewService(userRepo)
	ledger := account.NewService(userService, rateService, balanceRepo)

	refreshJob := rate.NewRefreshJob(rateService, rateRepo, clock, loc, appCfg.Scheduler.RetentionDays)
	scheduler := rate.NewScheduler(refreshJob, clock, loc, refreshHour, refreshMinute, appCfg.Scheduler.RunOnStart)
	// Ensure scheduler stops before DB pool closes
	defer func() {
		if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
		}
	}()
	// Start scheduler tied to root context
	if startErr := scheduler.Start(ctx); startErr != nil {
		logrus.WithError(startErr).Error("Failed to start scheduler")
		return startErr
	}
	logrus.Info("✅ Scheduler activation successful")

	// Handlers and router
	router := api.NewRouter(
		ratehandler.NewRateHandler(rateValidator, rateService),
		accounthandler.NewAccountHandler(rateValidator, ledger),
		userhandler.NewUserHandler(userService),
	)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		// Cancel the root context to stop scheduler and other in-flight work
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
