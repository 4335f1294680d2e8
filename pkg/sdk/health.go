package prodex

import (
	"context"

	healthuc "github.com/kailas-cloud/prodex/internal/usecase/health"
)

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status  string            // "ok", "degraded", "error"
	Checks  map[string]string // component → "ok"/"error"
	Catalog CatalogInfo
}

// Health checks the catalog and, when configured, the rank cache.
func (c *Client) Health(ctx context.Context) HealthStatus {
	report := c.healthSvc.Check(ctx)
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
		Catalog: CatalogInfo{
			Products:    report.Catalog.Products,
			Terms:       report.Catalog.Terms,
			Fingerprint: report.Catalog.Fingerprint,
			LoadedAt:    report.Catalog.LoadedAt,
		},
	}
}

// healthUseCase is the internal interface for health checks.
type healthUseCase interface {
	Check(ctx context.Context) healthuc.Report
}
