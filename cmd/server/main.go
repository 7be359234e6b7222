// Command server runs the anime character guessing game backend.
//
// Startup order: env + config, logging, tracing, database, AniList client
// and character pool, silhouette store and image resolver, HTTP router,
// then the server itself with graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/aniguessr/anime-guessr-backend/docs"
	"github.com/aniguessr/anime-guessr-backend/internal/anilist"
	"github.com/aniguessr/anime-guessr-backend/internal/config"
	"github.com/aniguessr/anime-guessr-backend/internal/game"
	httpapi "github.com/aniguessr/anime-guessr-backend/internal/http"
	"github.com/aniguessr/anime-guessr-backend/internal/observability"
	"github.com/aniguessr/anime-guessr-backend/internal/repo"
	"github.com/aniguessr/anime-guessr-backend/internal/silhouette"
	"github.com/aniguessr/anime-guessr-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags.
var version = "dev"

// @title        Anime Guessr API
// @version      1.0
// @description  Backend for the anime character guessing game: random
// @description  characters from AniList, silhouette and hint generation,
// @description  scores, streaks, and the leaderboard.
// @BasePath     /api
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("tracing setup failed")
	}

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("database open failed")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	client := anilist.NewClient(cfg.AniList)
	pool := game.NewPool(client, cfg.AniList.PoolSize, cfg.AniList.PoolTTL, log.Logger)
	cache := game.NewNameCache(cfg.AniList.NameCacheTTL)

	store, err := silhouette.NewStore(cfg.SilhouetteDir, "/silhouettes", log.Logger)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.SilhouetteDir).Msg("silhouette store setup failed")
	}
	resolver := game.NewResolver(cache, client, store, cfg.PlaceholderURL, log.Logger)

	// Warm the pool so the first round doesn't pay the pagination cost.
	// Failure is fine: the pool retries lazily and the resolver degrades.
	go func() {
		warmCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
		defer cancel()
		if _, err := pool.Random(warmCtx); err != nil {
			log.Warn().Err(err).Msg("pool warm-up failed")
		}
	}()

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, httpapi.Deps{DB: db, Pool: pool, Resolver: resolver}, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	<-stop.Done()

	log.Info().Msg("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing database")
		}
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("error flushing traces")
	}
	log.Info().Msg("server stopped")
}
