package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/product"
	"github.com/kailas-cloud/prodex/internal/domain/search/request"
	"github.com/kailas-cloud/prodex/internal/domain/search/result"
	"github.com/kailas-cloud/prodex/internal/logger"
	healthuc "github.com/kailas-cloud/prodex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/prodex/internal/usecase/search"
)

// errBadRequest marks malformed parameters other than numeric filters.
var errBadRequest = errors.New("bad request")

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// SearchService is the search use case consumed by the server.
type SearchService interface {
	Search(ctx context.Context, req request.Request) ([]result.Result, error)
	Recommend(ctx context.Context, productID int64, count int) ([]product.Product, error)
	Product(ctx context.Context, id int64, count int) (searchuc.Detail, error)
	Products(ctx context.Context) ([]product.Product, error)
}

// HealthService is the health use case consumed by the server.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server serves the product search HTTP API.
type Server struct {
	search         SearchService
	health         HealthService
	maxQueryLength int
	logger         *zap.Logger
	errorHandlers  []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(search SearchService, health HealthService, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		search:         search,
		health:         health,
		maxQueryLength: request.MaxQueryLength,
		logger:         logger,
	}
	s.errorHandlers = []errorHandler{
		invalidFilterHandler,
		sentinelHandler(errBadRequest, http.StatusBadRequest, ErrorCodeBadRequest),
		sentinelHandler(domain.ErrInvalidQuery, http.StatusBadRequest, ErrorCodeInvalidQuery),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, ErrorCodeProductNotFound),
		sentinelHandler(domain.ErrCatalogNotLoaded, http.StatusServiceUnavailable, ErrorCodeCatalogNotLoaded),
	}
	return s
}

// WithMaxQueryLength overrides the query length limit in runes.
func (s *Server) WithMaxQueryLength(n int) *Server {
	if n > 0 {
		s.maxQueryLength = n
	}
	return s
}

// Routes mounts the API on r. /metrics is mounted by the caller.
func (s *Server) Routes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})

	r.Get("/health", s.HealthCheck)
	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/recommend/{id}", s.Recommend)
		r.Get("/products", s.ListProducts)
		r.Get("/products/{id}", s.GetProduct)
	})
}

// Search handles GET /api/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	params, err := bindSearchParams(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	req, err := request.NewLimited(params.Query(), params.Filter(), s.maxQueryLength)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	rs, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]ProductResponse, len(rs))
	for i := range rs {
		items[i] = resultToResponse(&rs[i])
	}
	writeJSON(w, http.StatusOK, SearchResponse{Items: items, Total: len(items), Query: req.Query()})
}

// Recommend handles GET /api/recommend/{id}. An unknown id yields an empty list.
func (s *Server) Recommend(w http.ResponseWriter, r *http.Request) {
	id, err := bindProductID(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	params, err := bindRecommendParams(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	ps, err := s.search.Recommend(r.Context(), id, params.CountOrZero())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := productsToResponse(ps)
	writeJSON(w, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

// GetProduct handles GET /api/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := bindProductID(r)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	d, err := s.search.Product(r.Context(), id, 0)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProductDetailResponse{
		ProductResponse: productToResponse(&d.Product),
		Recommendations: productsToResponse(d.Recommendations),
	})
}

// ListProducts handles GET /api/products.
func (s *Server) ListProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := s.search.Products(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := productsToResponse(ps)
	writeJSON(w, http.StatusOK, ProductListResponse{Items: items, Total: len(items)})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	writeJSON(w, httpStatus, healthToResponse(&report))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// The client sees the full message: every sentinel here wraps only
// request-derived detail.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, err.Error())
		return true
	}
}

// invalidFilterHandler reports which filter parameter failed to parse.
func invalidFilterHandler(w http.ResponseWriter, err error) bool {
	var ife *domain.InvalidFilterError
	if !errors.As(err, &ife) {
		return false
	}
	writeError(w, http.StatusBadRequest, ErrorCodeInvalidFilter, ife.Error())
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContextOr(r.Context(), s.logger)
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("request rejected", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
