package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	DatasetSource  string // csv|mysql
	DatasetPath    string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	SentimentURL   string
	SentimentRPS   int
	Workers        int
	CacheTTL       time.Duration
	RequestTimeout time.Duration
}

func Load() Config {
	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       ":" + env("PORT", "8000"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		DatasetSource:  env("DATASET_SOURCE", "csv"),
		DatasetPath:    env("DATASET_PATH", "data/reviews.csv"),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/reviews?parseTime=true&charset=utf8mb4"),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		SentimentURL:   env("SENTIMENT_URL", ""),
		SentimentRPS:   atoi("SENTIMENT_RPS", 10),
		Workers:        atoi("INGEST_WORKERS", 8),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 60)) * time.Second,
		RequestTimeout: time.Duration(atoi("REQUEST_TIMEOUT_SECONDS", 15)) * time.Second,
	}
	if c.DatasetSource != "csv" && c.DatasetSource != "mysql" {
		log.Warn().Str("DATASET_SOURCE", c.DatasetSource).Msg("unknown dataset source, using csv")
		c.DatasetSource = "csv"
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
