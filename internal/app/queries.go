package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"review_analyzer/internal/domain"
)

// DefaultCacheTTL replaces a non-positive ttl; cached results always expire.
const DefaultCacheTTL = time.Minute

type QueryService struct {
	store    domain.ReviewStore
	parser   *domain.TimestampParser
	cache    domain.Cache
	cacheTTL time.Duration
	epoch    string
}

// NewQueryService wires the read side. c may be nil to disable result caching.
func NewQueryService(s domain.ReviewStore, p *domain.TimestampParser, c domain.Cache, ttl time.Duration) *QueryService {
	if p == nil {
		p = domain.NewTimestampParser()
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &QueryService{store: s, parser: p, cache: c, cacheTTL: ttl, epoch: uuid.NewString()}
}

// ListReviews runs the filter pipeline over the current store contents.
func (s *QueryService) ListReviews(ctx context.Context, f domain.ReviewFilter) ([]domain.Review, error) {
	snap := s.store.Snapshot()
	if f.IsZero() {
		return snap, nil
	}

	// The store only grows, so epoch plus length versions every cached result.
	// The epoch is per process: other replicas and restarts hold different stores.
	key := fmt.Sprintf("reviews:%s:v%d:%q:%q:%q", s.epoch, len(snap), f.Location, f.StartDate, f.EndDate)
	if s.cache != nil {
		var cached []domain.Review
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached, nil
		}
	}

	out, err := FilterReviews(s.parser, snap, f)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
