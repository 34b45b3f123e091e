package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/windfall/pitch_service/internal/service"
	"github.com/windfall/pitch_service/pkg/response"
)

// CatalogHandler serves soundscapes, pitch templates and subscription tiers.
type CatalogHandler struct {
	catalog *service.CatalogService
}

// NewCatalogHandler creates a new Catalog handler.
func NewCatalogHandler(catalog *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// ListSoundscapes handles GET /api/v1/soundscapes
func (h *CatalogHandler) ListSoundscapes(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.Soundscapes()
	response.JSONWithMeta(w, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// GetSoundscape handles GET /api/v1/soundscapes/{id}
func (h *CatalogHandler) GetSoundscape(w http.ResponseWriter, r *http.Request) {
	sc, err := h.catalog.Soundscape(chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sc)
}

// ListTemplates handles GET /api/v1/templates
func (h *CatalogHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.PitchTemplates()
	response.JSONWithMeta(w, http.StatusOK, items, &response.Meta{Total: len(items)})
}

// ListTiers handles GET /api/v1/tiers
func (h *CatalogHandler) ListTiers(w http.ResponseWriter, r *http.Request) {
	items := h.catalog.SubscriptionTiers()
	response.JSONWithMeta(w, http.StatusOK, items, &response.Meta{Total: len(items)})
}
