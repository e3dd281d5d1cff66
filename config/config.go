package config

import (
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Application struct {
	Name        string        `envconfig:"APP_NAME" default:"tm-catalog"`
	Environment string        `envconfig:"APP_ENVIRONMENT" default:"development"`
	Port        int           `envconfig:"APP_PORT" default:"9000"`
	Timeout     time.Duration `envconfig:"APP_TIMEOUT" default:"30s"`
	Debug       bool          `envconfig:"APP_DEBUG" default:"false"`
}

type Upstream struct {
	BaseURL  string        `envconfig:"UPSTREAM_BASE_URL" required:"true"`
	APIKey   string        `envconfig:"UPSTREAM_API_KEY"`
	PageSize int           `envconfig:"UPSTREAM_PAGE_SIZE" default:"100"`
	Timeout  time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"15s"`
}

type Cache struct {
	Backend string        `envconfig:"CACHE_BACKEND" default:"memory"`
	TTL     time.Duration `envconfig:"CACHE_TTL" default:"5m"`
}

type Catalog struct {
	// DefaultSports is the fixed popular-sports list used when no filter
	// dimension is set at all. Product policy, not derived from data.
	DefaultSports []string `envconfig:"CATALOG_DEFAULT_SPORTS" default:"football,formula-1,motogp,tennis,basketball,ice-hockey"`
}

type PostgreSQL struct {
	DSN string `envconfig:"POSTGRESQL_DSN" required:"true"`
}

type Redis struct {
	Address  string `envconfig:"REDIS_ADDRESS" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type Kafka struct {
	BootstrapServers string `envconfig:"KAFKA_BOOTSTRAP_SERVERS" default:"localhost:9092"`
	AnalyticsTopic   string `envconfig:"KAFKA_ANALYTICS_TOPIC" default:"tm-catalog.analytics"`
}

type CORS struct {
	AllowedOrigins   []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	AllowedMethods   []string `envconfig:"CORS_ALLOWED_METHODS" default:"GET,OPTIONS"`
	AllowedHeaders   []string `envconfig:"CORS_ALLOWED_HEADERS" default:"Content-Type,Authorization"`
	ExposedHeaders   []string `envconfig:"CORS_EXPOSED_HEADERS" default:"X-Request-Id"`
	MaxAge           int      `envconfig:"CORS_MAX_AGE" default:"3600"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
}

type Observability struct {
	OTLPEndpoint string `envconfig:"OTLP_ENDPOINT"`
	SentryDSN    string `envconfig:"SENTRY_DSN"`
}

type Config struct {
	Application   Application
	Upstream      Upstream
	Cache         Cache
	Catalog       Catalog
	PostgreSQL    PostgreSQL
	Redis         Redis
	Kafka         Kafka
	CORS          CORS
	Observability Observability
}

var (
	c    *Config
	once sync.Once
)

func Get() *Config {
	once.Do(func() {
		c = &Config{}
		envconfig.MustProcess("", c)
	})

	return c
}
