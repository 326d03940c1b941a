package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"onlyflans/internal/config"
	"onlyflans/internal/db"
	analyticsdomain "onlyflans/internal/domain/analytics"
	creatorsdomain "onlyflans/internal/domain/creators"
	flansdomain "onlyflans/internal/domain/flans"
	"onlyflans/internal/domain/notify"
	subscribersdomain "onlyflans/internal/domain/subscribers"
	userdomain "onlyflans/internal/domain/user"
	"onlyflans/internal/mailer"
	"onlyflans/internal/metrics"
	"onlyflans/internal/repository/inmemory"
	analyticsrepo "onlyflans/internal/repository/postgres/analytics"
	creatorsrepo "onlyflans/internal/repository/postgres/creators"
	flansrepo "onlyflans/internal/repository/postgres/flans"
	subscribersrepo "onlyflans/internal/repository/postgres/subscribers"
	userrepo "onlyflans/internal/repository/postgres/user"
	"onlyflans/internal/transport/httpserver"
	"onlyflans/internal/transport/httpserver/handler"
	cataloghandler "onlyflans/internal/transport/httpserver/handler/catalog"
	commonhandler "onlyflans/internal/transport/httpserver/handler/common"
	webhandler "onlyflans/internal/transport/httpserver/handler/web"
	authmw "onlyflans/internal/transport/httpserver/middleware"
	"onlyflans/pkg/logger"
)

const limiterCleanupInterval = 5 * time.Minute

type Services struct {
	Users       *userdomain.Service
	Flans       *flansdomain.Service
	Creators    *creatorsdomain.Service
	Subscribers *subscribersdomain.Service
	Analytics   *analyticsdomain.Service
}

type App struct {
	cfg        config.Config
	log        logger.Logger
	db         *gorm.DB
	services   Services
	notifier   *notify.Notifier
	metrics    *metrics.Metrics
	limiter    *authmw.RateLimiter
	router     http.Handler
	httpServer *http.Server
	scheduler  *cron.Cron

	alerts sync.WaitGroup
}

// New opens and migrates the configured database and wires every component.
func New(cfg config.Config, log logger.Logger) (*App, error) {
	log.Info("app: initializing database", "driver", cfg.DB.Driver)
	conn, err := db.Open(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(conn, log); err != nil {
		closeDB(conn)
		return nil, err
	}

	application, err := NewWithDB(cfg, conn, log)
	if err != nil {
		closeDB(conn)
		return nil, err
	}
	return application, nil
}

// NewWithDB wires the application on an already migrated connection.
func NewWithDB(cfg config.Config, conn *gorm.DB, log logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log, db: conn}

	subscribers := subscribersdomain.NewService(subscribersrepo.NewPostgres(conn), log.Component("subscribers"))
	flans := flansdomain.NewService(flansrepo.NewPostgres(conn), log.Component("flans"))
	a.services = Services{
		Users:       userdomain.NewService(userrepo.NewPostgres(conn)),
		Flans:       flans,
		Creators:    creatorsdomain.NewService(creatorsrepo.NewPostgres(conn), log.Component("creators")),
		Subscribers: subscribers,
		Analytics: analyticsdomain.NewServiceWithCache(
			analyticsrepo.NewPostgres(conn),
			subscribers,
			analyticsdomain.MockTracker{},
			log.Component("analytics"),
			inmemory.NewInMemorySummaryCache(),
			cfg.Catalog.StatsCacheTTL,
		),
	}

	a.metrics = metrics.New()

	sender, err := mailer.New(cfg.Mail, log.Component("mailer"))
	if err != nil {
		return nil, err
	}
	emailRenderer, err := notify.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("email templates: %w", err)
	}
	a.notifier = notify.NewNotifier(subscribers, flans, sender, emailRenderer, log.Component("notify"), notify.Config{
		SiteURL:      cfg.SiteURL,
		LookbackDays: cfg.Digest.LookbackDays,
	})
	a.notifier.SetObserver(a.metrics)

	pageRenderer, err := webhandler.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("page templates: %w", err)
	}
	webOpts := webhandler.Options{PageSize: cfg.Catalog.PageSize}
	if cfg.Alerts.OnCreate {
		webOpts.Alerts = alertDispatcher{app: a}
	}
	web := webhandler.New(flans, a.services.Creators, subscribers, a.services.Analytics, pageRenderer, webOpts, log.Component("web"))

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	handlers := handler.New(
		commonhandler.New(sqlDB, log),
		cataloghandler.New(flans, a.services.Analytics, subscribers, cfg.Catalog.PageSize, log.Component("api")),
		web,
	)

	a.limiter = authmw.NewRateLimiter(
		cfg.RateLimit.SubscribePerMinute,
		cfg.RateLimit.SubscribeBurst,
		http.HandlerFunc(web.SubscribeThrottled),
		log,
	)

	a.router = httpserver.NewRouter(cfg, httpserver.RouterDeps{
		Handlers:         handlers,
		Auth:             authmw.NewJWTAuth(cfg.Auth, a.services.Users, log),
		SubscribeLimiter: a.limiter,
		Metrics:          a.metrics,
	})
	a.httpServer = httpserver.New(cfg, a.router)

	return a, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Router() http.Handler {
	return a.router
}

func (a *App) Services() Services {
	return a.services
}

func (a *App) Notifier() *notify.Notifier {
	return a.notifier
}

func (a *App) Metrics() *metrics.Metrics {
	return a.metrics
}

// Start launches background work tied to ctx: the digest schedule and limiter cleanup.
func (a *App) Start(ctx context.Context) error {
	a.limiter.StartCleanup(ctx, limiterCleanupInterval)

	if !a.cfg.Digest.Enabled {
		a.log.Info("digest: scheduler disabled")
		return nil
	}

	scheduler, err := newScheduler(a.cfg.Digest.Schedule, a.log.Component("scheduler"), func() {
		a.runDigest(ctx)
	})
	if err != nil {
		return err
	}
	a.scheduler = scheduler
	a.scheduler.Start()
	a.log.Info("digest: scheduler started", "schedule", a.cfg.Digest.Schedule)
	return nil
}

// SendWeeklyDigest runs one digest batch and records it in the batch metrics.
func (a *App) SendWeeklyDigest(ctx context.Context) (notify.BatchResult, error) {
	started := time.Now()
	result, err := a.notifier.SendWeeklyDigest(ctx)
	a.metrics.RecordBatch(notify.KindWeeklyDigest, time.Since(started), err)
	return result, err
}

// SendNewFlanAlert announces the flan with the given id to matching subscribers.
func (a *App) SendNewFlanAlert(ctx context.Context, flanID uint) (notify.BatchResult, error) {
	flan, err := a.services.Flans.GetByID(ctx, flanID)
	if err != nil {
		return notify.BatchResult{}, err
	}
	return a.sendAlert(ctx, flan)
}

func (a *App) sendAlert(ctx context.Context, flan flansdomain.Record) (notify.BatchResult, error) {
	started := time.Now()
	result, err := a.notifier.SendNewFlanAlert(ctx, flan)
	a.metrics.RecordBatch(notify.KindNewFlanAlert, time.Since(started), err)
	return result, err
}

func (a *App) runDigest(ctx context.Context) {
	result, err := a.SendWeeklyDigest(ctx)
	if err != nil {
		a.log.InternalError("digest: run failed", err)
		return
	}
	a.log.Info("digest: run finished", "attempted", result.Attempted, "sent", result.Sent, "failed", result.Failed)
}

// Close stops the scheduler, waits for in-flight alert batches and closes the database.
func (a *App) Close() error {
	if a.scheduler != nil {
		<-a.scheduler.Stop().Done()
	}
	a.alerts.Wait()

	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func closeDB(conn *gorm.DB) {
	if sqlDB, err := conn.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
