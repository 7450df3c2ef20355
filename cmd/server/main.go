package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"learnhub/internal/auth"
	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/db"
	"learnhub/internal/handler"
	"learnhub/internal/logger"
	"learnhub/internal/model"
	"learnhub/internal/realtime"
	"learnhub/internal/router"
	"learnhub/internal/scheduler"
	"learnhub/internal/service"
	"learnhub/internal/upload"
	"learnhub/internal/validation"
)

const (
	shutdownTimeout = 15 * time.Second
	jobTimeout      = 5 * time.Minute
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.IsProduction())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, !cfg.IsProduction())
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := db.Migrate(gormDB, model.All()...); err != nil {
		log.Fatal().Err(err).Msg("database migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(ctx); err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
	}

	storage, err := newStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("storage init")
	}

	hub := realtime.NewHub()
	go hub.Run(ctx)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	tokenStore := auth.NewTokenStore(cacheClient)

	repos := router.NewRepositories(gormDB)
	handlers, services := router.NewHandlers(repos, router.Deps{
		Cache: cacheClient,
		Hub:   hub,
		Uploads: handler.Uploads{
			Storage: storage,
			Limits: upload.Limits{
				MaxFileSize:      cfg.Upload.MaxFileSize,
				MaxFiles:         cfg.Upload.MaxFiles,
				MaxParts:         cfg.Upload.MaxParts,
				MaxFields:        cfg.Upload.MaxFields,
				MaxFieldNameSize: cfg.Upload.MaxFieldNameSize,
				MaxFieldSize:     cfg.Upload.MaxFieldSize,
			},
		},
		AuthService: service.NewAuthService(repos.Users, jwtService, tokenStore),
		CORSOrigins: cfg.CORSOrigins,
	})
	authenticator := auth.NewAuthenticator(jwtService, tokenStore, services.Users.Get)

	validator := validation.New()
	handler.RegisterRules(validator)

	e := echo.New()
	router.Register(e, cfg, validator, authenticator, handlers)

	jobs := scheduler.New(jobTimeout)
	if err := jobs.Add(cfg.CronSpec, "maintenance", services.Maintenance.Run); err != nil {
		log.Fatal().Err(err).Str("spec", cfg.CronSpec).Msg("schedule maintenance")
	}
	jobs.Start()

	go func() {
		addr := ":" + cfg.ServerPort
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	jobs.Stop(shutdownCtx)
	if err := cacheClient.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := db.Close(gormDB); err != nil {
		log.Error().Err(err).Msg("database close")
	}
}

func newStorage(cfg *config.Config) (upload.Storage, error) {
	if cfg.Supabase.Enabled() {
		log.Info().Str("bucket", cfg.Supabase.Bucket).Msg("uploads go to supabase storage")
		return upload.NewSupabaseStorage(cfg.Supabase.URL, cfg.Supabase.Key, cfg.Supabase.Bucket), nil
	}
	log.Info().Str("dir", cfg.Upload.Dir).Msg("uploads go to local disk")
	return upload.NewLocalStorage(cfg.Upload.Dir, cfg.Upload.PublicPrefix)
}
