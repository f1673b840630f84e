package domain

import "context"

// ReviewStore is the append-only review collection shared by all requests.
type ReviewStore interface {
	// Snapshot returns the reviews in insertion order. The slice is owned by the caller.
	Snapshot() []Review
	Append(r Review) error
	Len() int
}

// Scorer maps review text to sentiment scores.
type Scorer interface {
	Score(ctx context.Context, text string) (Sentiment, error)
}

// DatasetSource supplies the initial reviews at process start as raw column maps.
type DatasetSource interface {
	LoadRecords(ctx context.Context) ([]RawRecord, error)
}

// RawRecord is one dataset row keyed by column name.
type RawRecord map[string]string

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// IDGenerator returns a fresh globally unique id per call.
type IDGenerator func() string
