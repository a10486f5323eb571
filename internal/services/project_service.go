package services

import (
	"errors"
	"fmt"

	"elenavasquez.com/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested slug
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	sites *SiteService
}

// NewProjectService creates a new ProjectService
func NewProjectService(sites *SiteService) *ProjectService {
	return &ProjectService{sites: sites}
}

// GetAll returns all projects in authored order
func (s *ProjectService) GetAll() []models.Project {
	return s.sites.Site().Projects
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.GetAll())
}

// GetBySlug returns a specific project by slug
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	d, err := s.Detail(slug)
	if err != nil {
		return nil, err
	}
	return d.Project, nil
}

// Neighbors returns the projects before and after slug, wrapping around the
// ends of the list. Both are nil when slug is unknown or is the only project.
func (s *ProjectService) Neighbors(slug string) (prev, next *models.Project) {
	d, err := s.Detail(slug)
	if err != nil {
		return nil, nil
	}
	return d.Prev, d.Next
}

// Detail is a project and its neighbors, all taken from one content snapshot
type Detail struct {
	Site    *models.Site
	Project *models.Project
	Prev    *models.Project
	Next    *models.Project
}

// Detail looks slug up in the current content. A reload that lands while a
// response is rendering cannot mix two content versions.
func (s *ProjectService) Detail(slug string) (Detail, error) {
	site := s.sites.Site()
	projects := site.Projects
	n := len(projects)
	for i := range projects {
		if projects[i].Slug != slug {
			continue
		}
		d := Detail{Site: site, Project: &projects[i]}
		if n > 1 {
			d.Prev = &projects[(i+n-1)%n]
			d.Next = &projects[(i+1)%n]
		}
		return d, nil
	}
	return Detail{Site: site}, fmt.Errorf("%w: %s", ErrProjectNotFound, slug)
}
