package handlers

import (
	"net/http"

	"elenavasquez.com/internal/services"
)

// SiteHandler serves the site content as JSON
type SiteHandler struct {
	sites *services.SiteService
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(sites *services.SiteService) *SiteHandler {
	return &SiteHandler{sites: sites}
}

// GetSite handles GET /api/site
func (h *SiteHandler) GetSite(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.sites.Site())
}
