package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "review_analyzer/internal/adapters/http_server"
	"review_analyzer/internal/adapters/observability"
	redisad "review_analyzer/internal/adapters/redis"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
	"review_analyzer/internal/storage/memory"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	scorer, err := shared.NewScorer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("scorer init failed")
	}

	// dataset
	src, closeSrc, err := shared.NewDatasetSource(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("source", cfg.DatasetSource).Msg("dataset source init failed")
	}
	initial, err := app.LoadDataset(ctx, src, scorer, nil, cfg.Workers)
	closeSrc()
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}
	store := memory.New(initial)
	observability.SetStoreSize(store.Len())
	log.Info().Int("reviews", store.Len()).Str("source", cfg.DatasetSource).Msg("dataset loaded")

	// deps
	var cache domain.Cache
	if cfg.RedisAddr != "" {
		rc := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := rc.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable, query cache disabled")
		} else {
			cache = rc
			defer rc.Close()
		}
	}
	q := app.NewQueryService(store, nil, cache, cfg.CacheTTL)
	ing := app.NewIngestionService(store, scorer, nil, nil)

	// http
	srv := server.New(cfg.RequestTimeout)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{Q: q, I: ing})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("http shutdown failed")
		}
	}()

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
