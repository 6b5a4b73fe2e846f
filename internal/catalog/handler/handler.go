package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"realestate/internal/catalog/models"
	"realestate/internal/catalog/service"
	"realestate/internal/platform/middleware"
	id "realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/platform/httputil"
	"realestate/pkg/platform/middleware/version"
	"realestate/pkg/requestcontext"
)

// Service defines the read operations exposed over HTTP.
type Service interface {
	GetProperties(ctx context.Context, query service.GetPropertiesQuery) (*service.PropertyPage, error)
	GetPropertyByID(ctx context.Context, propertyID id.PropertyID) (*models.PropertyWithImages, error)
}

// Handler serves the property catalog endpoints.
type Handler struct {
	logger  *slog.Logger
	queries Service
}

// New creates a catalog Handler.
func New(queries Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, queries: queries}
}

// Register mounts the versioned catalog routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Route("/api/v1", func(v1 chi.Router) {
		v1.Use(version.ExtractVersion(id.APIVersionV1))
		v1.Use(middleware.ContentTypeJSON)
		v1.Get("/properties", h.handleListProperties)
		v1.Get("/properties/{id}", h.handleGetProperty)
	})
}

// handleListProperties returns one filtered page of properties.
func (h *Handler) handleListProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query, err := parseListQuery(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid property query",
			"request_id", middleware.GetRequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	page, err := h.queries.GetProperties(ctx, query)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to list properties", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPageResponse(page))
}

func (h *Handler) handleGetProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	propertyID, err := id.ParsePropertyID(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	p, err := h.queries.GetPropertyByID(ctx, propertyID)
	if err != nil {
		h.writeServiceError(ctx, w, "failed to get property", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toPropertyResponse(*p))
}

// writeServiceError logs client errors at warn and everything else at error.
func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	logger := h.logger.With(
		"request_id", middleware.GetRequestID(ctx),
		"api_version", requestcontext.APIVersion(ctx).String(),
	)
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		logger.WarnContext(ctx, msg, "error", err.Error())
	case httputil.StatusFor(err) < http.StatusInternalServerError:
		logger.WarnContext(ctx, msg, "error", err.Error(), "field", dErrors.FieldOf(err))
	default:
		logger.ErrorContext(ctx, msg, "error", err.Error())
	}
	httputil.WriteError(w, err)
}
