package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myevent-api/core/cache"
	"myevent-api/core/clock"
	"myevent-api/core/config"
	"myevent-api/core/constants"
	"myevent-api/core/database"
	"myevent-api/core/logger"
	"myevent-api/core/mailer"
	"myevent-api/core/middleware"
	"myevent-api/core/storage"
	"myevent-api/core/utils"
	"myevent-api/core/worker"
	"myevent-api/modules/category"
	"myevent-api/modules/comment"
	"myevent-api/modules/event"
	eventService "myevent-api/modules/event/service"
	eventTask "myevent-api/modules/event/task"
	eventValidator "myevent-api/modules/event/validator"
	"myevent-api/modules/invitation"
	"myevent-api/modules/notification"
	"myevent-api/modules/savedevent"
	"myevent-api/modules/user"
	"myevent-api/modules/verification"
	verificationTask "myevent-api/modules/verification/task"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

const shutdownTimeout = 10 * time.Second

// Run boots the API and its background worker and blocks until SIGINT or
// SIGTERM.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Configure(logger.Config{Level: cfg.Log.Level, Pretty: cfg.IsDevelopment()})

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return fmt.Errorf("load timezone %q: %w", cfg.App.Timezone, err)
	}

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.Name,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultTimeout)
		err := db.Migrate(ctx)
		cancel()
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	store, err := cache.NewRedisCache(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer store.Close()

	clk := clock.New()
	tokens := utils.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTTLHours)*time.Hour)
	mw := middleware.NewMiddleware(tokens, store)
	uploader := storage.NewS3Storage(storage.S3Config{
		Region:        cfg.Storage.Region,
		Bucket:        cfg.Storage.Bucket,
		Endpoint:      cfg.Storage.Endpoint,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	mail := mailer.New(mailer.SMTPConfig{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
	})

	redisOpt := worker.RedisConfig{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	queue := worker.NewClient(redisOpt)
	defer queue.Close()

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.Server.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	notifications := notification.Init(api, db, mw, clk)
	invitations := invitation.Init(api, db, mw, notifications, clk)
	events := event.Init(api, db, mw, event.Deps{
		Invitations: invitations,
		Notifier:    notifications,
		Uploader:    uploader,
		Clock:       clk,
		Options: eventService.Options{
			Location: loc,
			Policy:   eventValidator.Policy{RequireLongDescription: cfg.App.RequireLongDescription},
		},
	})
	user.Init(api, db, mw, user.Deps{
		Tokens:       tokens,
		Cache:        store,
		Uploader:     uploader,
		Clock:        clk,
		SecureCookie: !cfg.IsDevelopment(),
	})
	verification.Init(api, store, queue)
	category.Init(api, db, mw, store)
	savedevent.Init(api, db, mw, clk)
	comment.Init(api, db, mw, clk)

	var jobs *worker.Server
	if cfg.Worker.Enabled {
		jobs = worker.NewServer(redisOpt, cfg.Worker.Concurrency)
		jobs.HandleFunc(worker.TypeVerificationEmail, verificationTask.NewVerificationEmailHandler(mail))
		jobs.HandleFunc(worker.TypeExpireEvents, eventTask.NewExpireEventsHandler(events))
		if err := jobs.Schedule(constants.ExpireEventsCron, worker.NewExpireEventsTask()); err != nil {
			return fmt.Errorf("schedule expire events: %w", err)
		}
		if err := jobs.Start(); err != nil {
			return fmt.Errorf("start worker: %w", err)
		}
		defer jobs.Shutdown()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      e,
		ReadTimeout:  constants.DefaultTimeout,
		WriteTimeout: constants.UploadTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr, "env", cfg.Server.Env)
		serverErrors <- srv.ListenAndServe()
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case sig := <-signals:
		logger.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown:Error:", err)
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}
