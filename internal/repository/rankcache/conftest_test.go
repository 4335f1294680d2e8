package rankcache

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/prodex/internal/db"
	"github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/relevance"
)

// countingRanker delegates to relevance.Direct and counts calls.
type countingRanker struct {
	searchCalls    int
	recommendCalls int
}

func (r *countingRanker) Search(ctx context.Context, snap *relevance.Snapshot, req request.Request) []result.Result {
	r.searchCalls++
	return relevance.Direct{}.Search(ctx, snap, req)
}

func (r *countingRanker) Recommend(
	ctx context.Context, snap *relevance.Snapshot, req request.RecommendRequest,
) []product.Product {
	r.recommendCalls++
	return relevance.Direct{}.Recommend(ctx, snap, req)
}

// memStore is an in-memory consumer store; getErr/setErr force failures.
type memStore struct {
	mu     sync.Mutex
	data   map[string][]byte
	ttls   map[string]time.Duration
	getErr error
	setErr error
	delErr error
	dels   []string
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return v, nil
}

func (m *memStore) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func (m *memStore) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dels = append(m.dels, key)
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	delete(m.ttls, key)
	return nil
}

func testSnapshot(t *testing.T, products ...product.Product) *relevance.Snapshot {
	t.Helper()
	if len(products) == 0 {
		products = []product.Product{
			product.Reconstruct(1, "Wireless Bluetooth Headphones", "Electronics", 79.99, 4.5,
				"High-quality wireless headphones with noise cancellation",
				[]string{"wireless", "bluetooth", "headphones", "audio", "music"}, ""),
			product.Reconstruct(2, "Smartphone XYZ", "Electronics", 699.99, 4.3,
				"Latest smartphone with advanced camera and fast processor",
				[]string{"smartphone", "mobile", "android", "camera", "tech"}, ""),
			product.Reconstruct(5, "Coffee Maker", "Home", 89.99, 4.2,
				"Automatic coffee maker for brewing perfect coffee every morning",
				[]string{"coffee", "kitchen", "home", "appliance", "brew"}, ""),
		}
	}
	cat, err := catalog.New(products)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return relevance.NewSnapshot(cat)
}

func newTestCache(t *testing.T) (*Cached, *countingRanker, *memStore) {
	t.Helper()
	inner := &countingRanker{}
	ms := newMemStore()
	return New(inner, ms, "prodex:", time.Minute, nil, zap.NewNop()), inner, ms
}

func mustRequest(t *testing.T, q string) request.Request {
	t.Helper()
	req, err := request.New(q, filterNone())
	if err != nil {
		t.Fatalf("request.New: %v", err)
	}
	return req
}
