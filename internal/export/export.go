// Package export renders every route of the site into a directory that any
// static file host can serve.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"elenavasquez.com/internal/models"
	"elenavasquez.com/internal/services"
	"elenavasquez.com/internal/views"
)

// ErrOutputNotEmpty is returned when the output directory already holds files
// and Clean is not set
var ErrOutputNotEmpty = errors.New("output directory is not empty")

// ErrPathEscapes is returned when a route would be written outside the
// output directory
var ErrPathEscapes = errors.New("path escapes output directory")

// Exporter writes the static build of a site
type Exporter struct {
	sites    *services.SiteService
	projects *services.ProjectService
	logger   *zap.Logger

	// PublicDir is copied verbatim into the output when it exists
	PublicDir string
	// Clean removes an existing output directory first
	Clean bool
}

// Result summarizes an export
type Result struct {
	Dir   string
	Pages int
	Files int
	Bytes int64
}

// NewExporter creates an Exporter for site
func NewExporter(site *models.Site, logger *zap.Logger) *Exporter {
	sites := services.NewSiteService(site)
	return &Exporter{
		sites:    sites,
		projects: services.NewProjectService(sites),
		logger:   logger,
	}
}

// Export writes the site into outDir
func (e *Exporter) Export(ctx context.Context, outDir string) (Result, error) {
	res := Result{Dir: outDir}
	if err := e.prepare(outDir); err != nil {
		return res, err
	}

	site := e.sites.Site()
	w := &tree{root: outDir, res: &res}

	w.page(ctx, "index.html", views.Page(site, views.PageOptions{}))
	w.page(ctx, "404.html", views.NotFoundPage(site))
	for i := range site.Projects {
		p := &site.Projects[i]
		nb := views.Neighbors{}
		if d, err := e.projects.Detail(p.Slug); err == nil {
			nb = views.Neighbors{Prev: d.Prev, Next: d.Next}
		}

		w.page(ctx, filepath.Join("work", p.Slug, "index.html"), views.Page(site, views.ProjectPageOptions(site, p, nb)))
		w.page(ctx, filepath.Join("fragments", "work", p.Slug, "index.html"), views.ProjectDetail(site, p, false, nb))
	}

	w.json(filepath.Join("api", "projects.json"), models.ProjectList{Projects: e.projects.GetAll()})
	w.json(filepath.Join("api", "site.json"), site)

	static, err := fs.Sub(views.StaticFS, "static")
	if err != nil {
		return res, fmt.Errorf("static assets: %w", err)
	}
	w.copy(ctx, "static", static)

	if e.PublicDir != "" {
		if info, err := os.Stat(e.PublicDir); err == nil && info.IsDir() {
			w.copy(ctx, ".", os.DirFS(e.PublicDir))
		} else {
			e.logger.Warn("public directory not copied", zap.String("dir", e.PublicDir))
		}
	}

	if w.err != nil {
		return res, w.err
	}
	e.logger.Info("export complete",
		zap.String("dir", outDir),
		zap.Int("pages", res.Pages),
		zap.Int("files", res.Files),
		zap.Int64("bytes", res.Bytes),
	)
	return res, nil
}

func (e *Exporter) prepare(outDir string) error {
	entries, err := os.ReadDir(outDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("read output directory: %w", err)
	case len(entries) > 0 && !e.Clean:
		return fmt.Errorf("%w: %s", ErrOutputNotEmpty, outDir)
	case len(entries) > 0:
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("clean output directory: %w", err)
		}
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// tree writes files below root, keeping the first error
type tree struct {
	root string
	res  *Result
	err  error
}

func (t *tree) write(rel string, data []byte) {
	if t.err != nil {
		return
	}
	if !filepath.IsLocal(rel) {
		t.err = fmt.Errorf("%w: %s", ErrPathEscapes, rel)
		return
	}
	path := filepath.Join(t.root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.err = fmt.Errorf("create %s: %w", filepath.Dir(rel), err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.err = fmt.Errorf("write %s: %w", rel, err)
		return
	}
	t.res.Files++
	t.res.Bytes += int64(len(data))
}

func (t *tree) page(ctx context.Context, rel string, c templ.Component) {
	if t.err != nil {
		return
	}
	if err := ctx.Err(); err != nil {
		t.err = err
		return
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.err = fmt.Errorf("render %s: %w", rel, err)
		return
	}
	t.write(rel, buf.Bytes())
	if t.err == nil {
		t.res.Pages++
	}
}

func (t *tree) json(rel string, v any) {
	if t.err != nil {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.err = fmt.Errorf("marshal %s: %w", rel, err)
		return
	}
	t.write(rel, append(data, '\n'))
}

func (t *tree) copy(ctx context.Context, dir string, fsys fs.FS) {
	if t.err != nil {
		return
	}
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return err
		}
		t.write(filepath.Join(dir, filepath.FromSlash(path)), data)
		return t.err
	})
	if err != nil && t.err == nil {
		t.err = fmt.Errorf("copy into %s: %w", dir, err)
	}
}
