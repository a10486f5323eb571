package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"elenavasquez.com/internal/content"
	"elenavasquez.com/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func defaultSite(t *testing.T) *models.Site {
	t.Helper()
	site, err := content.Default()
	require.NoError(t, err)
	return site
}

func TestProjectServiceGetBySlug(t *testing.T) {
	ps := NewProjectService(NewSiteService(defaultSite(t)))

	p, err := ps.GetBySlug("casa-mura")
	require.NoError(t, err)
	assert.Equal(t, "Casa Mura", p.Title)
	assert.Equal(t, 6, ps.Count())

	_, err = ps.GetBySlug("missing")
	require.ErrorIs(t, err, ErrProjectNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestProjectServiceNeighbors(t *testing.T) {
	ps := NewProjectService(NewSiteService(defaultSite(t)))

	prev, next := ps.Neighbors("timeline-health")
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, "noire-botanics", prev.Slug)
	assert.Equal(t, "meridian-studio", next.Slug)

	prev, next = ps.Neighbors("noire-botanics")
	assert.Equal(t, "casa-mura", prev.Slug)
	assert.Equal(t, "timeline-health", next.Slug)

	prev, next = ps.Neighbors("unknown")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestProjectServiceNeighborsSingleProject(t *testing.T) {
	site := &models.Site{Projects: []models.Project{{Slug: "only"}}}
	prev, next := NewProjectService(NewSiteService(site)).Neighbors("only")
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestProjectDetailUsesOneSnapshot(t *testing.T) {
	sites := NewSiteService(defaultSite(t))
	ps := NewProjectService(sites)

	d, err := ps.Detail("casa-mura")
	require.NoError(t, err)

	replacement := defaultSite(t)
	replacement.Projects = replacement.Projects[:2]
	sites.Replace(replacement)

	require.Len(t, d.Site.Projects, 6)
	assert.Same(t, &d.Site.Projects[4], d.Project)
	assert.Same(t, &d.Site.Projects[3], d.Prev)
	assert.Same(t, &d.Site.Projects[5], d.Next)

	_, err = ps.Detail("casa-mura")
	require.ErrorIs(t, err, ErrProjectNotFound)
}

func TestSiteServiceReplaceIsVisibleToProjects(t *testing.T) {
	sites := NewSiteService(defaultSite(t))
	ps := NewProjectService(sites)

	sites.Replace(&models.Site{Projects: []models.Project{{Slug: "new", Title: "New"}}})

	assert.Equal(t, 1, ps.Count())
	p, err := ps.GetBySlug("new")
	require.NoError(t, err)
	assert.Equal(t, "New", p.Title)
}

const watchedDoc = `
owner:
  name: Ada
projects:
  - title: %s
    description: d
    image: /images/a.jpg
    year: "2020"
`

func writeDoc(t *testing.T, path, title string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf(watchedDoc, title)), 0o644))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeDoc(t, path, "First")

	site, err := content.Load(path)
	require.NoError(t, err)
	sites := NewSiteService(site)

	w := NewWatcher(path, sites, zap.NewNop())
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher a moment to register before writing.
	time.Sleep(100 * time.Millisecond)
	writeDoc(t, path, "Second")

	assert.Eventually(t, func() bool {
		return sites.Site().Projects[0].Title == "Second"
	}, 3*time.Second, 20*time.Millisecond)
}

func TestWatcherKeepsContentOnInvalidWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	writeDoc(t, path, "Stable")

	site, err := content.Load(path)
	require.NoError(t, err)
	sites := NewSiteService(site)

	reloads := make(chan error, 4)
	w := NewWatcher(path, sites, zap.NewNop())
	w.SetDebounce(20 * time.Millisecond)
	w.load = func(p string) (*models.Site, error) {
		s, err := content.Load(p)
		select {
		case reloads <- err:
		default:
		}
		return s, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("owner: [broken"), 0o644))

	select {
	case err := <-reloads:
		require.Error(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not attempt a reload")
	}
	assert.Equal(t, "Stable", sites.Site().Projects[0].Title)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "gone", "site.yaml"), NewSiteService(&models.Site{}), zap.NewNop())
	err := w.Run(context.Background())
	require.Error(t, err)
}
