package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort string

	DataDir    string
	ReportsDir string
	RedisAddr  string

	CronSpec    string
	SourcesFile string

	FetchTimeoutSec  int
	FetchConcurrency int
	MaxArticles      int

	// FreshnessRewrite enables the stale-year rewrite inherited from
	// the original pipeline. Turn off for correctness-sensitive
	// consumers that must never see repaired dates.
	FreshnessRewrite bool
}

func Load() *Config {
	// Optional .env file; env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "9000"),
		DataDir:          getEnv("DATA_DIR", "api"),
		ReportsDir:       getEnv("REPORTS_DIR", "reports"),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		CronSpec:         getEnv("CRON_SPEC", "*/30 * * * *"),
		SourcesFile:      getEnv("SOURCES_FILE", ""),
		FetchTimeoutSec:  getEnvInt("FETCH_TIMEOUT_SEC", 10),
		FetchConcurrency: getEnvInt("FETCH_CONCURRENCY", 3),
		MaxArticles:      getEnvInt("MAX_ARTICLES", 50),
		FreshnessRewrite: getEnvBool("FRESHNESS_REWRITE", true),
	}

	log.Printf("config loaded: port=%s data=%s cron=%s", cfg.AppPort, cfg.DataDir, cfg.CronSpec)
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warn: %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("warn: %s=%q is not a bool, using %v", key, v, def)
		return def
	}
	return b
}
