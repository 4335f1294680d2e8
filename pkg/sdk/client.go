package prodex

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/prodex/internal/db"
	dbRedis "github.com/kailas-cloud/prodex/internal/db/redis"
	"github.com/kailas-cloud/prodex/internal/domain"
	domcat "github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/metrics"
	"github.com/kailas-cloud/prodex/internal/relevance"
	catalogrepo "github.com/kailas-cloud/prodex/internal/repository/catalog"
	"github.com/kailas-cloud/prodex/internal/repository/rankcache"
	healthuc "github.com/kailas-cloud/prodex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/prodex/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultCacheTTL         = 5 * time.Minute
	defaultCachePrefix      = "prodex:"
)

// Internal interfaces, replaced in tests.
type searchUseCase interface {
	Search(ctx context.Context, req request.Request) ([]result.Result, error)
	Recommend(ctx context.Context, productID int64, count int) ([]product.Product, error)
	Product(ctx context.Context, id int64, count int) (searchuc.Detail, error)
	Products(ctx context.Context) ([]product.Product, error)
	Reload(ctx context.Context) error
}

// Client is the prodex SDK entry point. It is safe for concurrent use.
type Client struct {
	store          db.Store
	searchSvc      searchUseCase
	healthSvc      healthUseCase
	maxQueryLength int
	obs            *observer
}

// New creates a Client and loads the catalog. Exactly one of WithProducts
// or WithCatalogFile is required. The context bounds the cache readiness
// check and the initial load.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		cacheTTL:    defaultCacheTTL,
		cachePrefix: defaultCachePrefix,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	loader, err := newLoader(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	var store db.Store
	if cfg.cacheDriver != "" {
		s, err := createStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := s.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			s.Close()
			return nil, fmt.Errorf("prodex: cache not ready: %w", err)
		}
		store = s
	}

	c := wireClient(loader, store, cfg, obs)
	if err := c.Reload(ctx); err != nil {
		c.Close()
		return nil, err
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.cacheDriver {
	case "valkey", "redis":
		// Both speak RESP; one client serves either.
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.cacheAddrs,
			Password: cfg.cachePassword,
		})
		if err != nil {
			return nil, fmt.Errorf("prodex: create %s store: %w", cfg.cacheDriver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("prodex: unknown cache driver %q", cfg.cacheDriver)
	}
}

func newLoader(cfg *clientConfig) (searchuc.CatalogLoader, error) {
	switch {
	case cfg.catalogPath != "":
		return catalogrepo.New(cfg.catalogPath), nil
	case cfg.products != nil:
		return staticLoader(cfg.products), nil
	default:
		return nil, errors.New("prodex: catalog required (use WithProducts or WithCatalogFile)")
	}
}

func wireClient(loader searchuc.CatalogLoader, store db.Store, cfg *clientConfig, obs *observer) *Client {
	var ranker relevance.Ranker = relevance.Direct{}
	var cache healthuc.CachePinger
	if store != nil {
		ranker = rankcache.New(ranker, store, cfg.cachePrefix, cfg.cacheTTL, metrics.RankCacheTotal, nil)
		cache = store
	}

	searchSvc := searchuc.New(loader, ranker, nil).
		WithRecommendCounts(cfg.defaultRecommendCount, cfg.maxRecommendCount)

	return &Client{
		store:          store,
		searchSvc:      searchSvc,
		healthSvc:      healthuc.New(searchSvc, cache),
		maxQueryLength: cfg.maxQueryLength,
		obs:            obs,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Reload re-reads the catalog and swaps it in atomically. On error the
// previous catalog keeps serving.
func (c *Client) Reload(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("reload", start, -1, err) }()

	if err = c.searchSvc.Reload(ctx); err != nil {
		return fmt.Errorf("prodex: %w", err)
	}
	return nil
}

// Search ranks the catalog against query and applies f to the ranking.
// An empty query returns the filtered catalog in order, unscored.
func (c *Client) Search(ctx context.Context, query string, f Filter) (_ []SearchResult, err error) {
	start := time.Now()
	n := 0
	defer func() { c.obs.observe("search", start, n, err) }()

	req, err := request.NewLimited(query, f.toDomain(), c.maxQueryLength)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	rs, err := c.searchSvc.Search(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	n = len(rs)
	return resultsFromDomain(rs), nil
}

// Recommend returns up to count products similar to productID, most
// similar first. count <= 0 selects the default. An unknown id yields an
// empty slice, not an error.
func (c *Client) Recommend(ctx context.Context, productID int64, count int) (_ []Product, err error) {
	start := time.Now()
	n := 0
	defer func() { c.obs.observe("recommend", start, n, err) }()

	ps, err := c.searchSvc.Recommend(ctx, productID, count)
	if err != nil {
		return nil, fmt.Errorf("recommend %d: %w", productID, err)
	}
	n = len(ps)
	return productsFromDomain(ps), nil
}

// Product returns a product with its recommendations.
// Returns ErrNotFound for an unknown id.
func (c *Client) Product(ctx context.Context, id int64, count int) (_ ProductDetail, err error) {
	start := time.Now()
	n := 0
	defer func() { c.obs.observe("product", start, n, err) }()

	d, err := c.searchSvc.Product(ctx, id, count)
	if err != nil {
		return ProductDetail{}, fmt.Errorf("get product: %w", err)
	}
	n = 1
	return ProductDetail{
		Product:         productFromDomain(&d.Product),
		Recommendations: productsFromDomain(d.Recommendations),
	}, nil
}

// Products returns the whole catalog in order.
func (c *Client) Products(ctx context.Context) (_ []Product, err error) {
	start := time.Now()
	n := 0
	defer func() { c.obs.observe("products", start, n, err) }()

	ps, err := c.searchSvc.Products(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	n = len(ps)
	return productsFromDomain(ps), nil
}

// staticLoader validates an in-memory product list on every load.
type staticLoader []Product

func (l staticLoader) Load(_ context.Context) (*domcat.Catalog, error) {
	ps := make([]product.Product, len(l))
	for i := range l {
		p, err := l[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
		}
		ps[i] = p
	}
	return domcat.New(ps)
}
