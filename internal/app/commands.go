package app

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"review_analyzer/internal/adapters/observability"
	"review_analyzer/internal/domain"
)

type IngestionService struct {
	store    domain.ReviewStore
	scorer   domain.Scorer
	clock    clockwork.Clock
	newID    domain.IDGenerator
	validate *validator.Validate
}

func NewIngestionService(s domain.ReviewStore, sc domain.Scorer, clock clockwork.Clock, newID domain.IDGenerator) *IngestionService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &IngestionService{
		store:    s,
		scorer:   sc,
		clock:    clock,
		newID:    newID,
		validate: validator.New(),
	}
}

// Submit validates in, enriches it with id, timestamp and sentiment, and appends it.
// The store is only touched once every step has succeeded.
func (s *IngestionService) Submit(ctx context.Context, in domain.NewReview) (domain.Review, error) {
	if err := s.validateNew(in); err != nil {
		observability.ObserveIngest("rejected")
		return domain.Review{}, err
	}

	sent, err := s.scorer.Score(ctx, in.ReviewBody)
	if err != nil {
		observability.ObserveIngest("error")
		return domain.Review{}, fmt.Errorf("score review: %w", err)
	}

	// A request that timed out or was cancelled while scoring must not land in the store.
	if err := ctx.Err(); err != nil {
		observability.ObserveIngest("error")
		return domain.Review{}, fmt.Errorf("submit review: %w", err)
	}

	r := domain.Review{
		Location:   in.Location,
		ReviewBody: in.ReviewBody,
		ReviewID:   s.newID(),
		Timestamp:  domain.FormatTimestamp(s.clock.Now()),
		Sentiment:  sent,
	}
	if err := s.store.Append(r); err != nil {
		observability.ObserveIngest("error")
		return domain.Review{}, fmt.Errorf("append review: %w", err)
	}
	observability.ObserveIngest("created")
	observability.SetStoreSize(s.store.Len())
	return r, nil
}

func (s *IngestionService) validateNew(in domain.NewReview) error {
	if err := s.validate.Struct(in); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return domain.ErrMissingField
		}
		return err
	}
	if !domain.IsAllowedLocation(in.Location) {
		return domain.ErrInvalidLocation
	}
	return nil
}
