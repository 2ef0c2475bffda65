package app

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

	"github.com/aussiebroadwan/yup/internal/rsvp/cache"
	httpapi "github.com/aussiebroadwan/yup/internal/rsvp/http"
	"github.com/aussiebroadwan/yup/internal/rsvp/metrics"
	"github.com/aussiebroadwan/yup/internal/rsvp/notify"
	"github.com/aussiebroadwan/yup/internal/rsvp/service"
	"github.com/aussiebroadwan/yup/internal/rsvp/store/drivers/sqldb"
	"github.com/aussiebroadwan/yup/pkg/cryptox"
	"github.com/aussiebroadwan/yup/pkg/jwtx"
	"github.com/aussiebroadwan/yup/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the RSVP service together and owns every long-lived
// resource it opens.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db         *sqldb.Store
	keyManager *jwtx.KeyManager
	metrics    *metrics.Metrics
	flagCache  cache.FlagCache
	redis      *cache.Redis         // nil unless YUP_REDIS_ADDR is set
	amqp       *notify.AMQPNotifier // nil unless YUP_AMQP_URL is set
	notifier   notify.Notifier

	access              *service.AccessPolicy
	userService         *service.UserService
	sessionService      *service.SessionService
	eventService        *service.EventService
	responseService     *service.ResponseService
	invitationService   *service.InvitationService
	adminService        *service.AdminService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "yup-rsvp",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
		metrics: metrics.New(),
	}

	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	km, err := jwtx.NewKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		KeyFile: cfg.SigningKeyFile,
	})
	if err != nil {
		app.closeResources()
		return nil, fmt.Errorf("failed to initialize session keys: %w", err)
	}
	app.keyManager = km
	if cfg.SigningKeyFile == "" {
		app.logger.Warn("no YUP_SIGNING_KEY_FILE set, sessions will not survive a restart")
	}

	if err := app.initCache(); err != nil {
		app.closeResources()
		return nil, err
	}
	if err := app.initNotifier(); err != nil {
		app.closeResources()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	if err := app.housekeepingService.Start(); err != nil {
		return fmt.Errorf("failed to start housekeeping: %w", err)
	}

	app.logger.Info("yup service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			app.closeResources()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown drains the HTTP server, stops housekeeping and then closes the
// broker, cache and database in that order.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down yup service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.closeResources(); err != nil {
		return err
	}

	app.logger.Info("yup service stopped")
	return nil
}

// closeResources releases the broker, cache and database. Only the database
// error is returned; the others are logged.
func (app *Application) closeResources() error {
	if app.amqp != nil {
		if err := app.amqp.Close(); err != nil {
			app.logger.Error("error closing rabbitmq connection", "error", err)
		}
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
		}
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database", "error", err)
			return err
		}
	}
	return nil
}

func (app *Application) initDatabase() error {
	var (
		db  *sqldb.Store
		err error
	)
	switch sqldb.Dialect(app.cfg.DatabaseDriver) {
	case sqldb.DialectSQLite:
		db, err = sqldb.Open(sqldb.DialectSQLite, app.cfg.DatabaseFile)
	case sqldb.DialectPostgres:
		if app.cfg.DatabaseURL == "" {
			return errors.New("YUP_DATABASE_URL is required for the postgres driver")
		}
		db, err = sqldb.Open(sqldb.DialectPostgres, app.cfg.DatabaseURL)
	default:
		return fmt.Errorf("unknown database driver %q", app.cfg.DatabaseDriver)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		app.db = nil
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

func (app *Application) initCache() error {
	if app.cfg.RedisAddr == "" {
		app.flagCache = cache.NewMemory(app.cfg.FlagCacheTTL)
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	r, err := cache.DialRedis(ctx, app.cfg.RedisAddr, app.cfg.FlagCacheTTL)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	app.redis = r
	app.flagCache = r
	app.logger.Info("flag cache backed by redis", "addr", app.cfg.RedisAddr)
	return nil
}

// initNotifier always logs notifications and adds SMTP and RabbitMQ
// delivery when they are configured.
func (app *Application) initNotifier() error {
	ns := notify.Multi{notify.LogNotifier{Level: slog.LevelInfo}}

	if app.cfg.SMTP.Host != "" {
		ns = append(ns, notify.NewEmailNotifier(app.cfg.SMTP))
		app.logger.Info("email notifications enabled", "host", app.cfg.SMTP.Host)
	}

	if app.cfg.AMQPURL != "" {
		a, err := notify.DialAMQP(app.cfg.AMQPURL)
		if err != nil {
			return fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		app.amqp = a
		ns = append(ns, a)
		app.logger.Info("sms notifications published to rabbitmq", "exchange", notify.ExchangeName)
	}

	app.notifier = ns
	return nil
}

func (app *Application) initServices() {
	app.access = &service.AccessPolicy{
		Store:             app.db,
		Cache:             app.flagCache,
		OverrideUsernames: app.cfg.AdminOverrideUsernames,
	}

	app.userService = &service.UserService{
		Store:    app.db,
		Notifier: app.notifier,
		Issuer:   "Yup",
	}
	app.sessionService = &service.SessionService{
		Store:  app.db,
		Signer: app.keyManager.Signer,
		Issuer: app.cfg.Issuer,
		TTL:    app.cfg.SessionTTL,
	}
	app.eventService = &service.EventService{
		Store:  app.db,
		Access: app.access,
	}
	app.responseService = &service.ResponseService{
		Store:    app.db,
		Events:   app.eventService,
		Notifier: app.notifier,
		Metrics:  app.metrics,
	}
	app.invitationService = &service.InvitationService{
		Store:     app.db,
		Events:    app.eventService,
		Notifier:  app.notifier,
		Metrics:   app.metrics,
		PublicURL: app.cfg.PublicURL,
	}
	app.adminService = &service.AdminService{
		Store:  app.db,
		Access: app.access,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.metrics,
		app.cfg.HousekeepingSchedule,
	)
}

func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keyManager,
		BuildVersion,
		app.db,
		app.metrics,
		app.logger,
	)

	router.Access = app.access
	router.UserService = app.userService
	router.SessionService = app.sessionService
	router.EventService = app.eventService
	router.ResponseService = app.responseService
	router.InvitationService = app.invitationService
	router.AdminService = app.adminService
	router.LoginURL = app.cfg.LoginURL
	router.UpgradeURL = app.cfg.UpgradeURL
	router.SecureCookies = app.cfg.Env != "dev"
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
