package prodex

import (
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	products    []Product
	catalogPath string

	cacheDriver   string // "valkey" or "redis"; empty disables the cache
	cacheAddrs    []string
	cachePassword string
	cacheTTL      time.Duration
	cachePrefix   string

	defaultRecommendCount int
	maxRecommendCount     int
	maxQueryLength        int

	logger     *slog.Logger
	metricsReg prometheus.Registerer
}

// WithProducts serves an in-memory catalog. Products are validated when
// the client is created; order is preserved.
func WithProducts(products []Product) Option {
	return optionFunc(func(c *clientConfig) {
		c.products = products
		c.catalogPath = ""
	})
}

// WithCatalogFile loads the catalog from a YAML or JSON file.
// Reload re-reads the file.
func WithCatalogFile(path string) Option {
	return optionFunc(func(c *clientConfig) {
		c.catalogPath = path
		c.products = nil
	})
}

// WithValkeyCache memoises rankings in a Valkey instance.
func WithValkeyCache(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheDriver = "valkey"
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
	})
}

// WithRedisCache memoises rankings in a Redis instance.
func WithRedisCache(addr, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheDriver = "redis"
		c.cacheAddrs = []string{addr}
		c.cachePassword = password
	})
}

// WithCacheTTL sets the lifetime of cached rankings and their key prefix.
// Defaults: 5 minutes, "prodex:".
func WithCacheTTL(ttl time.Duration, keyPrefix string) Option {
	return optionFunc(func(c *clientConfig) {
		c.cacheTTL = ttl
		if keyPrefix != "" {
			c.cachePrefix = keyPrefix
		}
	})
}

// WithRecommendCounts sets the default and maximum number of recommendations.
// Defaults: 4 and 50.
func WithRecommendCounts(defaultCount, maxCount int) Option {
	return optionFunc(func(c *clientConfig) {
		c.defaultRecommendCount = defaultCount
		c.maxRecommendCount = maxCount
	})
}

// WithMaxQueryLength limits search queries to n runes. Default: 1024.
func WithMaxQueryLength(n int) Option {
	return optionFunc(func(c *clientConfig) {
		c.maxQueryLength = n
	})
}

// WithLogger enables structured logging for SDK operations.
// Pass nil to disable (default). Uses standard library slog.
func WithLogger(l *slog.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithPrometheus registers SDK metrics (operation counts and durations)
// on the given registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *clientConfig) {
		c.metricsReg = reg
	})
}
