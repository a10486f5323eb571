package content

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elenavasquez.com/internal/models"
)

func TestDefaultContent(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Elena Vasquez", site.Owner.Name)
	require.Len(t, site.Projects, 6)
	assert.Len(t, site.About.Experience, 3)
	assert.Len(t, site.Contact.Links, 4)
	assert.Equal(t, "mailto:hello@elenavasquez.com", site.Contact.MailTo())

	var slugs []string
	for _, p := range site.Projects {
		slugs = append(slugs, p.Slug)
	}
	want := []string{
		"timeline-health",
		"meridian-studio",
		"forma-editorial",
		"aura-finance",
		"casa-mura",
		"noire-botanics",
	}
	if diff := cmp.Diff(want, slugs); diff != "" {
		t.Fatalf("slugs mismatch (-want +got):\n%s", diff)
	}

	first := site.Projects[0]
	assert.Equal(t, "2025", first.Year)
	assert.Equal(t, []string{"Brand Identity", "Web Design", "Figma"}, first.Tags)
	assert.Equal(t, "4 months", first.Timeline)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	fromLoad, err := Load("")
	require.NoError(t, err)
	fromDefault, err := Default()
	require.NoError(t, err)

	if diff := cmp.Diff(fromDefault, fromLoad); diff != "" {
		t.Fatalf("Load(\"\") differs from Default() (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	doc := `
owner:
  name: Ada
projects:
  - title: Small Thing
    slug: custom
    description: d
    image: /images/a.jpg
    year: "2020"
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	require.Len(t, site.Projects, 1)
	assert.Equal(t, "custom", site.Projects[0].Slug)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("owner:\n  name: Ada\n  nickname: A\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestValidateReportsEveryProblem(t *testing.T) {
	site := &models.Site{
		Contact: models.Contact{Email: "nobody"},
		Projects: []models.Project{
			{Title: "One", Description: "d", Image: "i", Year: "2024"},
			{Title: "one", Description: "d", Image: "i", Year: "2024"},
			{Title: "   "},
			{Title: "Two"},
		},
	}

	err := Validate(site)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContent)

	msg := err.Error()
	for _, want := range []string{
		"owner name is required",
		`contact email "nobody"`,
		`title "one" duplicates project 0`,
		`slug "one" duplicates project 0`,
		"project 2: title is required",
		`project "Two": description is required`,
		`project "Two": image is required`,
		`project "Two": year is required`,
	} {
		assert.Contains(t, msg, want)
	}
}

func TestValidateFillsSlugs(t *testing.T) {
	site := &models.Site{
		Owner: models.Owner{Name: "Ada"},
		Projects: []models.Project{
			{Title: "  Casa Mura ", Description: "d", Image: "i", Year: "2024"},
		},
	}
	require.NoError(t, Validate(site))
	assert.Equal(t, "Casa Mura", site.Projects[0].Title)
	assert.Equal(t, "casa-mura", site.Projects[0].Slug)
}

func TestValidateAuthoredSlugs(t *testing.T) {
	tests := []struct {
		slug    string
		wantErr bool
	}{
		{slug: "casa-mura"},
		{slug: "r2d2"},
		{slug: "../../../escaped", wantErr: true},
		{slug: "work/casa-mura", wantErr: true},
		{slug: "Casa-Mura", wantErr: true},
		{slug: "casa--mura", wantErr: true},
		{slug: "-casa", wantErr: true},
		{slug: "casa mura", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			site := &models.Site{
				Owner: models.Owner{Name: "Ada"},
				Projects: []models.Project{
					{Slug: tt.slug, Title: "Casa Mura", Description: "d", Image: "i", Year: "2024"},
				},
			}
			err := Validate(site)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.slug, site.Projects[0].Slug)
				return
			}
			require.ErrorIs(t, err, ErrInvalidContent)
			assert.Contains(t, err.Error(), fmt.Sprintf("slug %q must be", tt.slug))
		})
	}
}

func TestParseRejectsTraversalSlug(t *testing.T) {
	doc := "owner:\n  name: Ada\nprojects:\n  - slug: ../../../escaped\n    title: Escape\n    description: d\n    image: i\n    year: \"2024\"\n"
	_, err := Parse([]byte(doc))
	require.ErrorIs(t, err, ErrInvalidContent)
}

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Timeline Health":         "timeline-health",
		"UI/UX & Motion":          "ui-ux-motion",
		"  Leading and trailing ": "leading-and-trailing",
		"Año 2024!":               "a-o-2024",
		"---":                     "",
		"R2D2":                    "r2d2",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}
