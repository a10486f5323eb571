package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"elenavasquez.com/internal/config"
	"elenavasquez.com/internal/middleware"
	"elenavasquez.com/internal/services"
	"elenavasquez.com/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, sites *services.SiteService, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(chimiddleware.StripSlashes)

	// Initialize services
	projectService := services.NewProjectService(sites)

	// Initialize handlers
	pageHandler := NewPageHandler(sites, projectService)
	projectHandler := NewProjectHandler(projectService)
	siteHandler := NewSiteHandler(sites)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/work/{slug}", pageHandler.Project)
	r.Get("/fragments/work/{slug}", pageHandler.ProjectFragment)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{slug}", projectHandler.GetProject)
		r.Get("/site", siteHandler.GetSite)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	static, err := fs.Sub(views.StaticFS, "static")
	if err != nil {
		logger.Fatal("embedded static assets missing", zap.Error(err))
	}
	r.Handle("/static/*", http.StripPrefix("/static", cacheFor(http.FileServerFS(static), views.StaticCacheControl)))

	// Project imagery lives outside the binary
	if info, err := os.Stat(cfg.PublicDir); err == nil && info.IsDir() {
		r.Handle("/images/*", cacheFor(http.FileServer(http.Dir(cfg.PublicDir)), views.ImageCacheControl))
	} else {
		logger.Warn("public directory unavailable, images will 404", zap.String("dir", cfg.PublicDir))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}
		pageHandler.NotFound(w, r)
	})

	return r
}

func cacheFor(next http.Handler, value string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", value)
		next.ServeHTTP(w, r)
	})
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("encode json response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
