package search

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/logger"
	"github.com/kailas-cloud/prodex/internal/metrics"
	"github.com/kailas-cloud/prodex/internal/relevance"
)

// Detail is a product together with its recommendations.
type Detail struct {
	Product         product.Product
	Recommendations []product.Product
}

// Status describes the active snapshot.
type Status struct {
	Loaded      bool
	Products    int
	Terms       int
	Fingerprint string
	LoadedAt    time.Time
}

type state struct {
	snap     *relevance.Snapshot
	loadedAt time.Time
}

// Service serves search and recommendations from an atomically swapped
// snapshot. Queries never block on a reload.
type Service struct {
	current      atomic.Pointer[state]
	loader       CatalogLoader
	ranker       Ranker
	defaultCount int
	maxCount     int
	logger       *zap.Logger
	now          func() time.Time
}

// New creates a search service. ranker may be nil, selecting relevance.Direct.
func New(loader CatalogLoader, ranker Ranker, log *zap.Logger) *Service {
	if ranker == nil {
		ranker = relevance.Direct{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		loader:       loader,
		ranker:       ranker,
		defaultCount: request.DefaultRecommendCount,
		maxCount:     request.MaxRecommendCount,
		logger:       log,
		now:          time.Now,
	}
}

// WithRecommendCounts overrides the default and maximum recommendation counts.
// Non-positive values keep the current setting.
func (s *Service) WithRecommendCounts(defaultCount, maxCount int) *Service {
	if maxCount > 0 {
		s.maxCount = maxCount
	}
	if defaultCount > 0 {
		s.defaultCount = min(defaultCount, s.maxCount)
	}
	return s
}

// Reload reads the catalog from the loader and installs it. On failure the
// previous snapshot stays active.
func (s *Service) Reload(ctx context.Context) error {
	if s.loader == nil {
		return fmt.Errorf("reload catalog: no loader configured")
	}

	start := time.Now()
	cat, err := s.loader.Load(ctx)
	if err != nil {
		metrics.CatalogReloadsTotal.WithLabelValues("error").Inc()
		s.logger.Error("Catalog reload failed", zap.Error(err))
		return fmt.Errorf("reload catalog: %w", err)
	}

	snap := s.Install(cat)
	metrics.CatalogReloadsTotal.WithLabelValues("ok").Inc()
	s.logger.Info("Catalog loaded",
		zap.Int("products", snap.Catalog().Len()),
		zap.Int("terms", terms(snap)),
		zap.String("fingerprint", snap.Catalog().Fingerprint()),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// Install builds a snapshot for cat and makes it the active one.
func (s *Service) Install(cat *catalog.Catalog) *relevance.Snapshot {
	snap := relevance.NewSnapshot(cat)
	s.current.Store(&state{snap: snap, loadedAt: s.now()})

	metrics.CatalogProducts.Set(float64(snap.Catalog().Len()))
	metrics.IndexTerms.Set(float64(terms(snap)))
	return snap
}

// Snapshot returns the active snapshot.
func (s *Service) Snapshot() (*relevance.Snapshot, error) {
	st := s.current.Load()
	if st == nil {
		return nil, domain.ErrCatalogNotLoaded
	}
	return st.snap, nil
}

// Status reports the active snapshot for health checks.
func (s *Service) Status() Status {
	st := s.current.Load()
	if st == nil {
		return Status{}
	}
	return Status{
		Loaded:      true,
		Products:    st.snap.Catalog().Len(),
		Terms:       terms(st.snap),
		Fingerprint: st.snap.Catalog().Fingerprint(),
		LoadedAt:    st.loadedAt,
	}
}

// Search ranks the catalog for req.
func (s *Service) Search(ctx context.Context, req request.Request) ([]result.Result, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rs := s.ranker.Search(ctx, snap, req)
	s.observe(ctx, metrics.OpSearch, string(req.Mode()), len(rs), start)
	return rs, nil
}

// Recommend returns up to count products similar to productID.
// count <= 0 selects the configured default. An unknown id is not an error.
func (s *Service) Recommend(ctx context.Context, productID int64, count int) ([]product.Product, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return s.recommend(ctx, snap, productID, count), nil
}

// Product returns the product with id and its recommendations, or
// domain.ErrNotFound.
func (s *Service) Product(ctx context.Context, id int64, count int) (Detail, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return Detail{}, err
	}

	start := time.Now()
	p, ok := snap.Catalog().ByID(id)
	s.observe(ctx, metrics.OpProduct, "lookup", boolToInt(ok), start)
	if !ok {
		return Detail{}, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	return Detail{Product: p, Recommendations: s.recommend(ctx, snap, id, count)}, nil
}

// Products returns the whole catalog in order.
func (s *Service) Products(_ context.Context) ([]product.Product, error) {
	snap, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	return snap.Catalog().Products(), nil
}

func (s *Service) recommend(ctx context.Context, snap *relevance.Snapshot, id int64, count int) []product.Product {
	if count <= 0 {
		count = s.defaultCount
	}
	req := request.NewRecommend(id, count, s.maxCount)

	start := time.Now()
	ps := s.ranker.Recommend(ctx, snap, req)
	s.observe(ctx, metrics.OpRecommend, "similar", len(ps), start)
	return ps
}

func (s *Service) observe(ctx context.Context, op, mode string, n int, start time.Time) {
	elapsed := time.Since(start)
	metrics.SearchRequestsTotal.WithLabelValues(op, mode).Inc()
	metrics.SearchDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	metrics.SearchResults.WithLabelValues(op).Observe(float64(n))

	logger.FromContextOr(ctx, s.logger).Debug("Ranking completed",
		zap.String("operation", op),
		zap.String("mode", mode),
		zap.Int("results", n),
		zap.Duration("duration", elapsed),
	)
}

func terms(snap *relevance.Snapshot) int {
	if snap.Index() == nil {
		return 0
	}
	return snap.Index().Dim()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
