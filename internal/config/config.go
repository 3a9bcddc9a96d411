package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig
	Source    SourceConfig
	Database  DatabaseConfig
	SQLite    SQLiteConfig
	Badger    BadgerConfig
	Cache     CacheConfig
	Request   RequestConfig
	Catalog   CatalogConfig
	RateLimit RateLimitConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Host           string `env:"SERVER_HOST" envDefault:"localhost"`
	Port           int    `env:"SERVER_PORT" envDefault:"8080"`
	MaxConnections int    `env:"SERVER_MAX_CONNECTIONS" envDefault:"1024"`
	StaticDir      string `env:"STATIC_DIR"`
	Gzip           bool   `env:"SERVER_GZIP" envDefault:"true"`
}

// SourceConfig selects the backing store metrics are fetched from.
type SourceConfig struct {
	Driver         string `env:"SOURCE_DRIVER" envDefault:"random"`
	RandomSeed     uint64 `env:"SOURCE_RANDOM_SEED" envDefault:"0"`
	RandomMaxValue int64  `env:"SOURCE_RANDOM_MAX_VALUE" envDefault:"100"`
}

type DatabaseConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	DBName   string `env:"POSTGRES_DB" envDefault:"trafficapi"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
	MaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"16"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" envDefault:"trafficapi.db"`
}

type BadgerConfig struct {
	Dir string `env:"BADGER_DIR" envDefault:"data/badger"`
}

type CacheConfig struct {
	Enabled     bool          `env:"CACHE_ENABLED" envDefault:"false"`
	MaxSizePow2 int           `env:"CACHE_MAX_SIZE_POW2" envDefault:"24"`
	TTL         time.Duration `env:"CACHE_TTL" envDefault:"1m"`
}

type RequestConfig struct {
	Timeout          time.Duration `env:"REQUEST_TIMEOUT" envDefault:"5s"`
	FetchConcurrency int           `env:"REQUEST_FETCH_CONCURRENCY" envDefault:"4"`
	MaxRangeDays     int           `env:"REQUEST_MAX_RANGE_DAYS" envDefault:"3660"`
	DefaultSpanDays  int           `env:"REQUEST_DEFAULT_SPAN_DAYS" envDefault:"7"`
	MaxMetrics       int           `env:"REQUEST_MAX_METRICS" envDefault:"50"`
}

type CatalogConfig struct {
	Names map[string]string `env:"METRIC_NAMES" envDefault:"unique_visitors:Unique Visitors,page_views:Page Views,visits:Visitors"`
}

type RateLimitConfig struct {
	RPS           float64 `env:"RATE_LIMIT_RPS" envDefault:"50"`
	Burst         int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
	ExpireMinutes int     `env:"RATE_LIMIT_EXPIRE_MINUTES" envDefault:"3"`
	BypassSecret  string  `env:"RATE_LIMIT_BYPASS_SECRET"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`
}

type MetricsConfig struct {
	Enabled        bool `env:"METRICS_ENABLED" envDefault:"false"`
	BufferSize     int  `env:"METRICS_BUFFER_SIZE" envDefault:"4096"`
	FlushThreshold int  `env:"METRICS_FLUSH_THRESHOLD" envDefault:"512"`
	FlushInterval  int  `env:"METRICS_FLUSH_INTERVAL_MS" envDefault:"1000"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=%d",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode, c.MaxConns,
	)
}
