package csvfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review_analyzer/internal/storage/csvfile"
)

const sample = "\ufeffLocation,ReviewBody,ReviewId,Timestamp\n" +
	"\"San Diego, California\",\"Nice, quiet room\",r1,2021-04-11T10:37:36.000000Z\n" +
	"\"Denver, Colorado\",Too cold,r2,2021-05-01 08:00:00\n"

func TestRead_ParsesQuotedFields(t *testing.T) {
	recs, err := csvfile.Read(context.Background(), strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "San Diego, California", recs[0]["Location"])
	assert.Equal(t, "Nice, quiet room", recs[0]["ReviewBody"])
	assert.Equal(t, "r2", recs[1]["ReviewId"])
	assert.Equal(t, "2021-05-01 08:00:00", recs[1]["Timestamp"])
}

func TestRead_Empty(t *testing.T) {
	recs, err := csvfile.Read(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestRead_ShortRow(t *testing.T) {
	recs, err := csvfile.Read(context.Background(), strings.NewReader("Location,ReviewBody\nDenver\n"))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Denver", recs[0]["Location"])
	_, ok := recs[0]["ReviewBody"]
	assert.False(t, ok)
}

func TestSource_LoadRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reviews.csv")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	recs, err := csvfile.New(path).LoadRecords(context.Background())
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	_, err = csvfile.New(filepath.Join(t.TempDir(), "missing.csv")).LoadRecords(context.Background())
	assert.Error(t, err)
}
