package search

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/filter"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/relevance"
)

// --- Mocks ---

type mockLoader struct {
	cat   *catalog.Catalog
	err   error
	calls int
}

func (m *mockLoader) Load(_ context.Context) (*catalog.Catalog, error) {
	m.calls++
	return m.cat, m.err
}

type recordingRanker struct {
	relevance.Direct
	lastRecommend request.RecommendRequest
	searches      int
}

func (r *recordingRanker) Search(ctx context.Context, snap *relevance.Snapshot, req request.Request) []result.Result {
	r.searches++
	return r.Direct.Search(ctx, snap, req)
}

func (r *recordingRanker) Recommend(
	ctx context.Context, snap *relevance.Snapshot, req request.RecommendRequest,
) []product.Product {
	r.lastRecommend = req
	return r.Direct.Recommend(ctx, snap, req)
}

// --- Fixtures ---

func testCatalog(t *testing.T, extra ...product.Product) *catalog.Catalog {
	t.Helper()
	ps := []product.Product{
		product.Reconstruct(1, "Wireless Bluetooth Headphones", "Electronics", 79.99, 4.5,
			"High-quality wireless headphones with noise cancellation",
			[]string{"wireless", "bluetooth", "headphones", "audio", "music"}, ""),
		product.Reconstruct(2, "Smartphone XYZ", "Electronics", 699.99, 4.3,
			"Latest smartphone with advanced camera and fast processor",
			[]string{"smartphone", "mobile", "android", "camera", "tech"}, ""),
	}
	cat, err := catalog.New(append(ps, extra...))
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func mustRequest(t *testing.T, q string, f filter.Filter) request.Request {
	t.Helper()
	req, err := request.New(q, f)
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}

func ids(ps []product.Product) []int64 {
	out := make([]int64, len(ps))
	for i := range ps {
		out[i] = ps[i].ID()
	}
	return out
}

// --- Tests ---

func TestNotLoaded(t *testing.T) {
	svc := New(nil, nil, nil)
	ctx := context.Background()

	if _, err := svc.Search(ctx, mustRequest(t, "x", filter.Filter{})); !errors.Is(err, domain.ErrCatalogNotLoaded) {
		t.Errorf("Search: expected ErrCatalogNotLoaded, got %v", err)
	}
	if _, err := svc.Recommend(ctx, 1, 4); !errors.Is(err, domain.ErrCatalogNotLoaded) {
		t.Errorf("Recommend: expected ErrCatalogNotLoaded, got %v", err)
	}
	if _, err := svc.Product(ctx, 1, 4); !errors.Is(err, domain.ErrCatalogNotLoaded) {
		t.Errorf("Product: expected ErrCatalogNotLoaded, got %v", err)
	}
	if _, err := svc.Products(ctx); !errors.Is(err, domain.ErrCatalogNotLoaded) {
		t.Errorf("Products: expected ErrCatalogNotLoaded, got %v", err)
	}
	if svc.Status().Loaded {
		t.Error("status should report not loaded")
	}
	if err := svc.Reload(ctx); err == nil {
		t.Error("Reload without loader should fail")
	}
}

func TestReload_InstallsSnapshot(t *testing.T) {
	loader := &mockLoader{cat: testCatalog(t)}
	svc := New(loader, nil, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st := svc.Status()
	if !st.Loaded || st.Products != 2 || st.Terms == 0 {
		t.Errorf("unexpected status %+v", st)
	}
	if st.Fingerprint != loader.cat.Fingerprint() || !st.LoadedAt.Equal(fixed) {
		t.Errorf("unexpected status %+v", st)
	}
}

func TestReload_FailureKeepsPreviousSnapshot(t *testing.T) {
	loader := &mockLoader{cat: testCatalog(t)}
	svc := New(loader, nil, nil)
	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := svc.Snapshot()

	loader.err = errors.New("disk on fire")
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	after, err := svc.Snapshot()
	if err != nil || after != before {
		t.Error("failed reload must not replace the active snapshot")
	}
}

func TestReload_SwapsCatalog(t *testing.T) {
	loader := &mockLoader{cat: testCatalog(t)}
	svc := New(loader, nil, nil)
	ctx := context.Background()
	_ = svc.Reload(ctx)

	loader.cat = testCatalog(t, product.Reconstruct(5, "Coffee Maker", "Home", 89.99, 4.2,
		"Automatic coffee maker", []string{"coffee"}, ""))
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rs, err := svc.Search(ctx, mustRequest(t, "coffee", filter.Filter{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 3 || rs[0].ID() != 5 {
		t.Errorf("new catalog not served: first=%d len=%d", rs[0].ID(), len(rs))
	}
}

func TestSearch_Scenario(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.Install(testCatalog(t))
	ctx := context.Background()

	rs, err := svc.Search(ctx, mustRequest(t, "headphones", filter.Filter{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rs) != 2 || rs[0].ID() != 1 || !(rs[0].Score() > rs[1].Score()) {
		t.Errorf("unexpected ranking %+v", rs)
	}

	maxPrice := 100.0
	rs, _ = svc.Search(ctx, mustRequest(t, "", filter.New("Electronics", &maxPrice, nil)))
	if len(rs) != 1 || rs[0].ID() != 1 {
		t.Errorf("expected [1], got %d results", len(rs))
	}
}

func TestSearch_UsesRanker(t *testing.T) {
	ranker := &recordingRanker{}
	svc := New(nil, ranker, nil)
	svc.Install(testCatalog(t))

	_, _ = svc.Search(context.Background(), mustRequest(t, "phone", filter.Filter{}))
	if ranker.searches != 1 {
		t.Errorf("ranker searches = %d", ranker.searches)
	}
}

func TestRecommend_Counts(t *testing.T) {
	tests := []struct {
		name      string
		defCount  int
		maxCount  int
		count     int
		wantCount int
	}{
		{"zero uses default", 0, 0, 0, request.DefaultRecommendCount},
		{"negative uses default", 0, 0, -3, request.DefaultRecommendCount},
		{"explicit", 0, 0, 7, 7},
		{"clamped to max", 0, 10, 25, 10},
		{"configured default", 2, 0, 0, 2},
		{"default above max clamps", 20, 5, 0, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranker := &recordingRanker{}
			svc := New(nil, ranker, nil).WithRecommendCounts(tt.defCount, tt.maxCount)
			svc.Install(testCatalog(t))

			if _, err := svc.Recommend(context.Background(), 1, tt.count); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ranker.lastRecommend.Count(); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestRecommend_UnknownIDIsEmpty(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.Install(testCatalog(t))

	ps, err := svc.Recommend(context.Background(), 42, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ps == nil || len(ps) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", ps)
	}
}

func TestProduct(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.Install(testCatalog(t))

	d, err := svc.Product(context.Background(), 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Product.ID() != 1 || !reflect.DeepEqual(ids(d.Recommendations), []int64{2}) {
		t.Errorf("unexpected detail: product %d recs %v", d.Product.ID(), ids(d.Recommendations))
	}

	if _, err := svc.Product(context.Background(), 99, 1); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProducts_CatalogOrder(t *testing.T) {
	svc := New(nil, nil, nil)
	svc.Install(testCatalog(t))

	ps, err := svc.Products(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids(ps), []int64{1, 2}) {
		t.Errorf("got %v", ids(ps))
	}
}

func TestConcurrentReadsDuringReload(t *testing.T) {
	loader := &mockLoader{cat: testCatalog(t)}
	svc := New(loader, nil, nil)
	ctx := context.Background()
	if err := svc.Reload(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	req := mustRequest(t, "headphones", filter.Filter{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				rs, err := svc.Search(ctx, req)
				if err != nil || len(rs) != 2 || rs[0].ID() != 1 {
					t.Errorf("inconsistent read: err=%v len=%d", err, len(rs))
					return
				}
			}
		}()
	}
	for i := 0; i < 20; i++ {
		svc.Install(testCatalog(t))
	}
	wg.Wait()
}
