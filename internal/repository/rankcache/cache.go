// Package rankcache memoizes ranking results in a key-value store.
//
// Entries hold product ids and scores only. Keys embed the catalog
// fingerprint, so a reload never serves rankings computed for a different
// catalog, and hits are rehydrated from the live snapshot.
package rankcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/prodex/internal/db"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/logger"
	"github.com/kailas-cloud/prodex/internal/relevance"
)

// store is the consumer interface for the rank cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Cached decorates a relevance.Ranker with a read-through cache.
// Store failures are logged and treated as misses.
type Cached struct {
	inner      relevance.Ranker
	store      store
	prefix     string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

var _ relevance.Ranker = (*Cached)(nil)

// New creates a caching decorator.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	inner relevance.Ranker,
	s store,
	prefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	log *zap.Logger,
) *Cached {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cached{
		inner:      inner,
		store:      s,
		prefix:     prefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     log,
	}
}

type entry struct {
	ID     int64   `json:"id"`
	Score  float64 `json:"s,omitempty"`
	Scored bool    `json:"sc,omitempty"`
}

// Search returns cached results for req or ranks and stores them.
func (c *Cached) Search(ctx context.Context, snap *relevance.Snapshot, req request.Request) []result.Result {
	key := c.key("search", snap, req.Key())

	if entries, ok := c.get(ctx, key); ok {
		if rs, ok := rehydrate(snap, entries); ok {
			c.incCache("hit")
			return rs
		}
	}
	c.incCache("miss")

	rs := c.inner.Search(ctx, snap, req)
	entries := make([]entry, len(rs))
	for i := range rs {
		entries[i] = entry{ID: rs[i].ID(), Score: rs[i].Score(), Scored: rs[i].Scored()}
	}
	c.put(ctx, key, entries)
	return rs
}

// Recommend returns cached recommendations for req or ranks and stores them.
func (c *Cached) Recommend(ctx context.Context, snap *relevance.Snapshot, req request.RecommendRequest) []product.Product {
	key := c.key("recommend", snap, req.Key())

	if entries, ok := c.get(ctx, key); ok {
		if rs, ok := rehydrate(snap, entries); ok {
			c.incCache("hit")
			return result.Products(rs)
		}
	}
	c.incCache("miss")

	ps := c.inner.Recommend(ctx, snap, req)
	entries := make([]entry, len(ps))
	for i := range ps {
		entries[i] = entry{ID: ps[i].ID()}
	}
	c.put(ctx, key, entries)
	return ps
}

func (c *Cached) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

// key is prefix + kind + catalog fingerprint + hash of the canonical request.
func (c *Cached) key(kind string, snap *relevance.Snapshot, canonical string) string {
	h := sha256.Sum256([]byte(canonical))
	return c.prefix + "rank:" + kind + ":" + snap.Catalog().Fingerprint() + ":" + hex.EncodeToString(h[:16])
}

func (c *Cached) get(ctx context.Context, key string) ([]entry, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.log(ctx).Warn("Failed to read rank cache", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var entries []entry
	if err := json.Unmarshal(data, &entries); err != nil {
		c.log(ctx).Warn("Failed to decode rank cache entry", zap.String("key", key), zap.Error(err))
		c.evict(ctx, key)
		return nil, false
	}
	return entries, true
}

func (c *Cached) put(ctx context.Context, key string, entries []entry) {
	data, err := json.Marshal(entries)
	if err != nil {
		c.log(ctx).Warn("Failed to encode rank cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.log(ctx).Warn("Failed to write rank cache", zap.String("key", key), zap.Error(err))
	}
}

// evict drops an unreadable entry so it does not outlive a failed rewrite.
func (c *Cached) evict(ctx context.Context, key string) {
	if err := c.store.Del(ctx, key); err != nil {
		c.log(ctx).Warn("Failed to evict rank cache entry", zap.String("key", key), zap.Error(err))
	}
}

// log prefers the request-scoped logger so cache warnings carry the request id.
func (c *Cached) log(ctx context.Context) *zap.Logger {
	return logger.FromContextOr(ctx, c.logger)
}

// rehydrate maps cached ids back to products of snap. Any unknown id
// invalidates the whole entry.
func rehydrate(snap *relevance.Snapshot, entries []entry) ([]result.Result, bool) {
	cat := snap.Catalog()
	out := make([]result.Result, 0, len(entries))
	for _, e := range entries {
		p, ok := cat.ByID(e.ID)
		if !ok {
			return nil, false
		}
		if e.Scored {
			out = append(out, result.New(p, e.Score))
		} else {
			out = append(out, result.Unscored(p))
		}
	}
	return out, true
}
