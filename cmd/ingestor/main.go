package main

import (
	"context"
	"flag"
	"sync"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/shared"
	"review_analyzer/internal/storage/csvfile"
	mysqlrepo "review_analyzer/internal/storage/mysql"
)

// ingestor scores the CSV dataset and seeds the MySQL reviews table.
func main() {
	batch := flag.Int("batch", 500, "rows per INSERT")
	flag.Parse()
	if *batch <= 0 {
		*batch = 500
	}

	ctx := context.Background()
	cfg := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("dataset", cfg.DatasetPath).
		Int("workers", cfg.Workers).
		Int("batch", *batch).
		Msg("ingestor starting")

	db, err := shared.OpenMySQL(ctx, cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql init failed")
	}
	defer db.Close()
	log.Info().Msg("db ping ok")
	repo := mysqlrepo.New(db)

	scorer, err := shared.NewScorer(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("scorer init failed")
	}
	reviews, err := app.LoadDataset(ctx, csvfile.New(cfg.DatasetPath), scorer, nil, cfg.Workers)
	if err != nil {
		log.Fatal().Err(err).Msg("dataset load failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup
	var failed atomic.Int64

	for i, chunk := range chunks(reviews, *batch) {
		first := int64(i * *batch)
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(seq int64, rs []domain.Review) {
			defer wg.Done()
			defer sem.Release(1)

			if err := repo.InsertReviews(ctx, seq, rs); err != nil {
				failed.Add(int64(len(rs)))
				log.Warn().Str("first_id", rs[0].ReviewID).Int("rows", len(rs)).Err(err).Msg("insert failed")
				return
			}
			log.Info().Str("first_id", rs[0].ReviewID).Int("rows", len(rs)).Msg("insert ok")
		}(first, chunk)
	}

	wg.Wait()
	n, err := repo.Count(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("count failed")
	}
	log.Info().Int("scored", len(reviews)).Int64("failed", failed.Load()).Int("table_rows", n).Msg("ingestion completed")
}

func chunks(rs []domain.Review, size int) [][]domain.Review {
	var out [][]domain.Review
	for len(rs) > 0 {
		n := size
		if n > len(rs) {
			n = len(rs)
		}
		out = append(out, rs[:n])
		rs = rs[n:]
	}
	return out
}
