package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"review_analyzer/internal/shared"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATASET_SOURCE", "REDIS_ADDR", "SENTIMENT_URL", "CACHE_TTL_SECONDS"} {
		t.Setenv(k, "")
	}
	c := shared.Load()
	assert.Equal(t, ":8000", c.HTTPAddr)
	assert.Equal(t, "csv", c.DatasetSource)
	assert.Equal(t, "data/reviews.csv", c.DatasetPath)
	assert.Empty(t, c.RedisAddr)
	assert.Empty(t, c.SentimentURL)
	assert.Equal(t, time.Minute, c.CacheTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATASET_SOURCE", "mysql")
	t.Setenv("INGEST_WORKERS", "3")
	t.Setenv("CACHE_TTL_SECONDS", "oops")
	c := shared.Load()
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, "mysql", c.DatasetSource)
	assert.Equal(t, 3, c.Workers)
	assert.Equal(t, time.Minute, c.CacheTTL, "bad integer falls back to default")
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("DATASET_SOURCE", "parquet")
	assert.Equal(t, "csv", shared.Load().DatasetSource)
}
