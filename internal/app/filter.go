package app

import (
	"fmt"
	"time"

	"review_analyzer/internal/domain"
)

// predicate reports whether a review is kept. A non-nil error aborts the query.
type predicate func(r domain.Review) (bool, error)

// buildPredicates turns the present filter fields into predicates. Query bounds
// are parsed up front so a bad bound fails even when the store is empty.
func buildPredicates(p *domain.TimestampParser, f domain.ReviewFilter) ([]predicate, error) {
	var preds []predicate
	if f.Location != "" {
		loc := f.Location
		preds = append(preds, func(r domain.Review) (bool, error) { return r.Location == loc, nil })
	}
	if f.StartDate != "" {
		start, err := p.Parse(f.StartDate)
		if err != nil {
			return nil, err
		}
		preds = append(preds, timestampBound(p, func(ts time.Time) bool { return !ts.Before(start) }))
	}
	if f.EndDate != "" {
		end, err := p.Parse(f.EndDate)
		if err != nil {
			return nil, err
		}
		preds = append(preds, timestampBound(p, func(ts time.Time) bool { return !ts.After(end) }))
	}
	return preds, nil
}

func timestampBound(p *domain.TimestampParser, keep func(time.Time) bool) predicate {
	return func(r domain.Review) (bool, error) {
		ts, err := p.Parse(r.Timestamp)
		if err != nil {
			return false, fmt.Errorf("review %s: %w: %v", r.ReviewID, domain.ErrCorruptRecord, err)
		}
		return keep(ts), nil
	}
}

// FilterReviews keeps the reviews matching every present field of f, in their original order.
func FilterReviews(p *domain.TimestampParser, in []domain.Review, f domain.ReviewFilter) ([]domain.Review, error) {
	preds, err := buildPredicates(p, f)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Review, 0, len(in))
next:
	for _, r := range in {
		for _, keep := range preds {
			ok, err := keep(r)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue next
			}
		}
		out = append(out, r)
	}
	return out, nil
}
