package shared

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"review_analyzer/internal/adapters/scorer"
	"review_analyzer/internal/adapters/sentiment"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/storage/csvfile"
	mysqlrepo "review_analyzer/internal/storage/mysql"
)

// NewScorer picks the remote scorer when SENTIMENT_URL is set, else the in-process lexicon.
func NewScorer(c Config) (domain.Scorer, error) {
	if c.SentimentURL == "" {
		return sentiment.New(), nil
	}
	cl, err := scorer.New(c.SentimentURL, c.SentimentRPS)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", c.SentimentURL).Msg("using remote sentiment scorer")
	return cl, nil
}

// OpenMySQL opens and pings the database.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}
	return db, nil
}

// NewDatasetSource returns the configured source and a close func.
func NewDatasetSource(ctx context.Context, c Config) (domain.DatasetSource, func(), error) {
	if c.DatasetSource == "mysql" {
		db, err := OpenMySQL(ctx, c.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return mysqlrepo.New(db), func() { _ = db.Close() }, nil
	}
	return csvfile.New(c.DatasetPath), func() {}, nil
}
