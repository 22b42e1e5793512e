package handler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"policyguard/internal/analysis"
	"policyguard/internal/analysis/models"
	dErrors "policyguard/pkg/domain-errors"
	"policyguard/pkg/platform/httputil"
	"policyguard/pkg/requestcontext"
)

// Service defines the interface for analysis operations.
type Service interface {
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.AnalysisResult, error)
	Diagnose(ctx context.Context) ([]string, error)
}

// Handler wires the analysis endpoints to the analysis service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an analysis handler.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts the analysis endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleIndex)
	r.Post("/analyze", h.HandleAnalyze)
	r.Get("/test", h.HandleDiagnostic)
}

// HandleIndex handles GET / as a liveness probe.
func (h *Handler) HandleIndex(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, IndexResponse{
		Status:    "API is running",
		Endpoints: []string{"/analyze"},
	})
}

// HandleAnalyze handles POST /analyze requests.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, err := httputil.DecodeJSON[AnalyzeRequest](r)
	if err != nil && !errors.Is(err, io.EOF) {
		h.logger.WarnContext(ctx, "invalid analyze request body",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, MissingDomainResponse{Error: "Domain is required"})
		return
	}

	result, err := h.service.Analyze(ctx, models.AnalysisRequest{Domain: req.Domain})
	if err != nil {
		h.writeAnalyzeError(w, req.Domain, err)
		return
	}

	h.logger.InfoContext(ctx, "analysis served",
		"request_id", requestID,
		"domain", result.Domain,
		"browser", requestcontext.Browser(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}

// HandleDiagnostic handles GET /test by running the security check against
// the configured diagnostic URL.
func (h *Handler) HandleDiagnostic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	report, err := h.service.Diagnose(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "security diagnostic failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

// writeAnalyzeError echoes the domain for the rejections the extension
// displays inline. Browser pages echo the raw input, everything else the
// normalised domain.
func (h *Handler) writeAnalyzeError(w http.ResponseWriter, rawDomain string, err error) {
	var de *dErrors.Error
	if !errors.As(err, &de) {
		httputil.WriteError(w, err)
		return
	}

	domain := strings.TrimSpace(rawDomain)
	switch {
	case errors.Is(err, analysis.ErrDomainRequired):
		httputil.WriteJSON(w, http.StatusBadRequest, MissingDomainResponse{Error: de.Message})
		return
	case errors.Is(err, analysis.ErrBrowserPage):
	case de.Code == dErrors.CodeNotFound, de.Code == dErrors.CodeTimeout:
		domain = analysis.NormalizeDomain(domain)
	default:
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, dErrors.HTTPStatus(de.Code), ErrorResponse{
		Status:  "error",
		Message: de.Message,
		Domain:  domain,
	})
}
