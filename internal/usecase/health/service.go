package health

import (
	"context"
	"time"

	"github.com/kailas-cloud/prodex/internal/usecase/search"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers queries but an optional component failed.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot answer queries.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Component names used as Report.Checks keys.
const (
	ComponentCatalog = "catalog"
	ComponentCache   = "cache"
)

// Report aggregates health check results.
type Report struct {
	Status  Status
	Checks  map[string]CheckResult
	Catalog search.Status
}

// Service coordinates health checks.
type Service struct {
	catalog      CatalogStatus
	cache        CachePinger
	cacheTimeout time.Duration
}

// New creates a Service. cache can be nil when the rank cache is disabled.
func New(catalog CatalogStatus, cache CachePinger) *Service {
	return &Service{catalog: catalog, cache: cache, cacheTimeout: 2 * time.Second}
}

// Check runs health checks against all components.
// A missing catalog makes the service unhealthy; a failing cache only degrades it.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)
	status := Healthy

	st := s.catalog.Status()
	if st.Loaded {
		checks[ComponentCatalog] = CheckOK
	} else {
		checks[ComponentCatalog] = CheckError
		status = Unhealthy
	}

	if s.cache != nil {
		pingCtx, cancel := context.WithTimeout(ctx, s.cacheTimeout)
		err := s.cache.Ping(pingCtx)
		cancel()
		if err != nil {
			checks[ComponentCache] = CheckError
			if status == Healthy {
				status = Degraded
			}
		} else {
			checks[ComponentCache] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks, Catalog: st}
}
