package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/pencylab/catalog-scraper/internal/catalog"
)

// Runner triggers one extraction run.
type Runner interface {
	Run(ctx context.Context) (*catalog.CatalogRun, error)
}

type Handlers struct {
	runner        Runner
	verboseErrors bool
	logger        *slog.Logger
}

func NewHandlers(runner Runner, verboseErrors bool, logger *slog.Logger) *Handlers {
	return &Handlers{
		runner:        runner,
		verboseErrors: verboseErrors,
		logger:        logger,
	}
}

// ErrorResponse is the payload for failed requests. Details is populated only
// when verbose errors are enabled.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse carries an explanatory message for non-error conditions.
type MessageResponse struct {
	Message string `json:"message"`
}

// GetCatalog runs one extraction and maps the outcome onto HTTP status codes:
// 200 with the category sequence, 404 for a structurally empty result, 500
// only for session-level failures that prevented any discovery.
func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("extraction requested", "path", r.URL.Path)

	run, err := h.runner.Run(r.Context())
	if err != nil {
		h.logger.Error("extraction run failed", "error", err)
		resp := ErrorResponse{Error: "scraping failed"}
		if h.verboseErrors {
			resp.Details = err.Error()
		}
		h.respondJSON(w, http.StatusInternalServerError, resp)
		return
	}

	if len(run.Categories) == 0 {
		h.logger.Warn("extraction produced no categories", "run_id", run.ID)
		h.respondJSON(w, http.StatusNotFound, MessageResponse{
			Message: "no data found or the scraping run produced no results",
		})
		return
	}

	h.respondJSON(w, http.StatusOK, run.Categories)
}

// Root serves a static informational string.
func (h *Handlers) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Scraping server running. Request /api/scrapping to fetch the catalog."))
}

func (h *Handlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}
