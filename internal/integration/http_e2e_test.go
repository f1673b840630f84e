//go:build integration

package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	server "review_analyzer/internal/adapters/http_server"
	"review_analyzer/internal/adapters/sentiment"
	"review_analyzer/internal/app"
	"review_analyzer/internal/domain"
	"review_analyzer/internal/storage/memory"
	mysqlrepo "review_analyzer/internal/storage/mysql"
)

// ---------- helpers ----------
func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = filepath.Join("..", "..", "migrations")
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

// ---------- the test ----------
func TestHTTP_EndToEnd_MySQLDataset(t *testing.T) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env:        []string{"MYSQL_ROOT_PASSWORD=root", "MYSQL_DATABASE=reviews"},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/reviews?parseTime=true&multiStatements=true&charset=utf8mb4", resource.GetPort("3306/tcp"))
	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	applyMigrations(t, db)

	repo := mysqlrepo.New(db)
	ctx := context.Background()
	if err := repo.InsertReviews(ctx, 0, []domain.Review{
		{Location: "Denver, Colorado", ReviewBody: "Terrible heating", ReviewID: "d-1", Timestamp: "2022-12-01 08:00:00"},
		{Location: "San Diego, California", ReviewBody: "Wonderful view", ReviewID: "s-1", Timestamp: "2023-06-01T12:00:00.000000Z"},
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// boot the service the way cmd/api does with DATASET_SOURCE=mysql
	scorer := sentiment.New()
	initial, err := app.LoadDataset(ctx, repo, scorer, nil, 2)
	if err != nil {
		t.Fatalf("LoadDataset: %v", err)
	}
	store := memory.New(initial)
	srv := server.New(5 * time.Second)
	srv.MountHandlers(&server.Handlers{
		Q: app.NewQueryService(store, nil, nil, 0),
		I: app.NewIngestionService(store, scorer, nil, nil),
	})
	ts := httptest.NewServer(srv.Mux())
	defer ts.Close()

	res, err := http.Get(ts.URL + "/?location=" + url.QueryEscape("Denver, Colorado"))
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	var got []domain.Review
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK || len(got) != 1 || got[0].ReviewID != "d-1" {
		t.Fatalf("unexpected GET result %d: %+v", res.StatusCode, got)
	}
	if got[0].Sentiment["compound"] >= 0 {
		t.Fatalf("expected negative sentiment scored at load, got %+v", got[0].Sentiment)
	}

	form := url.Values{"Location": {"San Diego, California"}, "ReviewBody": {"Great stay!"}}
	res, err = http.Post(ts.URL+"/", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("POST status %d", res.StatusCode)
	}
	if store.Len() != 3 {
		t.Fatalf("expected 3 reviews after POST, got %d", store.Len())
	}
}
