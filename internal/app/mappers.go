package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"review_analyzer/internal/domain"
)

/********** alias registries (single source of truth) **********/

var recordAliases = map[string][]string{
	"location":  {"Location", "location"},
	"body":      {"ReviewBody", "review_body", "body", "text"},
	"id":        {"ReviewId", "review_id", "id"},
	"timestamp": {"Timestamp", "timestamp", "created_at"},
	"sentiment": {"sentiment", "Sentiment"},
}

// firstNonEmptyAlias: first non-blank column for a named alias set.
func firstNonEmptyAlias(rec domain.RawRecord, key string) string {
	for _, col := range recordAliases[key] {
		if v := strings.TrimSpace(rec[col]); v != "" {
			return v
		}
	}
	return ""
}

// mapRecord converts one dataset row. sentiment stays nil when the row carries none.
func mapRecord(rec domain.RawRecord, p *domain.TimestampParser) (domain.Review, error) {
	r := domain.Review{
		Location:   firstNonEmptyAlias(rec, "location"),
		ReviewBody: firstNonEmptyAlias(rec, "body"),
		ReviewID:   firstNonEmptyAlias(rec, "id"),
		Timestamp:  firstNonEmptyAlias(rec, "timestamp"),
	}
	if r.Location == "" || r.ReviewBody == "" || r.Timestamp == "" {
		return domain.Review{}, domain.ErrMissingField
	}
	if _, err := p.Parse(r.Timestamp); err != nil {
		return domain.Review{}, err
	}
	if raw := firstNonEmptyAlias(rec, "sentiment"); raw != "" {
		var s domain.Sentiment
		if err := json.Unmarshal([]byte(raw), &s); err != nil {
			return domain.Review{}, fmt.Errorf("%w: sentiment: %v", domain.ErrCorruptRecord, err)
		}
		r.Sentiment = s
	}
	if r.ReviewID == "" {
		r.ReviewID = uuid.NewString()
	}
	return r, nil
}

// LoadDataset reads the initial reviews from src, drops rows that cannot be
// stored (logged), and scores rows with no sentiment using up to workers goroutines.
// Order of the surviving rows is preserved.
func LoadDataset(ctx context.Context, src domain.DatasetSource, sc domain.Scorer, p *domain.TimestampParser, workers int) ([]domain.Review, error) {
	if p == nil {
		p = domain.NewTimestampParser()
	}
	recs, err := src.LoadRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}

	out := make([]domain.Review, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	for i, rec := range recs {
		r, err := mapRecord(rec, p)
		if err != nil {
			log.Warn().Int("row", i).Err(err).Msg("dataset row skipped")
			continue
		}
		if _, dup := seen[r.ReviewID]; dup {
			log.Warn().Int("row", i).Str("review_id", r.ReviewID).Msg("dataset row skipped: duplicate id")
			continue
		}
		seen[r.ReviewID] = struct{}{}
		out = append(out, r)
	}

	if workers <= 0 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range out {
		if out[i].Sentiment != nil {
			continue
		}
		i := i
		g.Go(func() error {
			s, err := sc.Score(gctx, out[i].ReviewBody)
			if err != nil {
				return fmt.Errorf("score review %s: %w", out[i].ReviewID, err)
			}
			out[i].Sentiment = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
