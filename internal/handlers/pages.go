package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"elenavasquez.com/internal/middleware"
	"elenavasquez.com/internal/services"
	"elenavasquez.com/internal/views"
)

// FragmentHeader marks a request for a partial page update
const FragmentHeader = "HX-Request"

// IsFragmentRequest reports whether the client asked for a fragment rather
// than a full document
func IsFragmentRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(FragmentHeader), "true")
}

// PageHandler renders the portfolio page and project detail views
type PageHandler struct {
	sites          *services.SiteService
	projectService *services.ProjectService
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sites *services.SiteService, ps *services.ProjectService) *PageHandler {
	return &PageHandler{sites: sites, projectService: ps}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, views.Page(h.sites.Site(), views.PageOptions{}))
}

// Project handles GET /work/{slug}, the shareable deep link of a project.
// Fragment requests receive only the detail overlay.
func (h *PageHandler) Project(w http.ResponseWriter, r *http.Request) {
	w.Header().Add("Vary", FragmentHeader)
	if IsFragmentRequest(r) {
		h.ProjectFragment(w, r)
		return
	}

	d, err := h.projectService.Detail(chi.URLParam(r, "slug"))
	if err != nil {
		h.notFoundOrFail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, views.Page(d.Site, views.ProjectPageOptions(d.Site, d.Project, neighbors(d))))
}

// ProjectFragment handles GET /fragments/work/{slug}
func (h *PageHandler) ProjectFragment(w http.ResponseWriter, r *http.Request) {
	d, err := h.projectService.Detail(chi.URLParam(r, "slug"))
	if errors.Is(err, services.ErrProjectNotFound) {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.notFoundOrFail(w, r, err)
		return
	}
	render(w, r, http.StatusOK, views.ProjectDetail(d.Site, d.Project, false, neighbors(d)))
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, views.NotFoundPage(h.sites.Site()))
}

func neighbors(d services.Detail) views.Neighbors {
	return views.Neighbors{Prev: d.Prev, Next: d.Next}
}

func (h *PageHandler) notFoundOrFail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrProjectNotFound) {
		h.NotFound(w, r)
		return
	}
	middleware.RequestLogger(r.Context()).Error("lookup project", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			middleware.RequestLogger(r.Context()).Error("render page", zap.Error(err))
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}
