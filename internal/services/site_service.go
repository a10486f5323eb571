package services

import (
	"sync/atomic"

	"elenavasquez.com/internal/models"
)

// SiteService holds the current site content. Content is replaced whole on
// reload, so readers always see one consistent version.
type SiteService struct {
	site atomic.Pointer[models.Site]
}

// NewSiteService creates a SiteService serving site
func NewSiteService(site *models.Site) *SiteService {
	s := &SiteService{}
	s.site.Store(site)
	return s
}

// Site returns the current content
func (s *SiteService) Site() *models.Site {
	return s.site.Load()
}

// Replace swaps in new content
func (s *SiteService) Replace(site *models.Site) {
	s.site.Store(site)
}
