// Package content loads and validates the hand-authored site content.
//
// The default content ships embedded in the binary; a YAML file on disk can
// replace it wholesale. Loaded content is validated once and never mutated.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"elenavasquez.com/internal/models"
)

// ErrInvalidContent is wrapped by every validation failure
var ErrInvalidContent = errors.New("invalid content")

//go:embed site.yaml
var defaultSite []byte

// Default returns the embedded site content
func Default() (*models.Site, error) {
	return Parse(defaultSite)
}

// Load reads site content from path, or the embedded default when path is empty
func Load(path string) (*models.Site, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}

	site, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML content and validates it
func Parse(data []byte) (*models.Site, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var site models.Site
	if err := dec.Decode(&site); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidContent, err)
	}

	if err := Validate(&site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate fills derived fields and checks the content for authoring mistakes.
// All problems are reported at once.
func Validate(site *models.Site) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidContent}, args...)...))
	}

	if strings.TrimSpace(site.Owner.Name) == "" {
		fail("owner name is required")
	}
	if site.Contact.Email != "" && !strings.Contains(site.Contact.Email, "@") {
		fail("contact email %q is not an address", site.Contact.Email)
	}

	slugs := make(map[string]int, len(site.Projects))
	titles := make(map[string]int, len(site.Projects))
	for i := range site.Projects {
		p := &site.Projects[i]
		p.Title = strings.TrimSpace(p.Title)

		if p.Title == "" {
			fail("project %d: title is required", i)
			continue
		}
		switch {
		case p.Slug == "":
			p.Slug = Slugify(p.Title)
			if p.Slug == "" {
				fail("project %q: cannot derive a slug from the title", p.Title)
			}
		case Slugify(p.Slug) != p.Slug:
			fail("project %q: slug %q must be lowercase letters, digits and single dashes", p.Title, p.Slug)
		}
		if p.Description == "" {
			fail("project %q: description is required", p.Title)
		}
		if p.Image == "" {
			fail("project %q: image is required", p.Title)
		}
		if p.Year == "" {
			fail("project %q: year is required", p.Title)
		}

		key := strings.ToLower(p.Title)
		if j, dup := titles[key]; dup {
			fail("project %d: title %q duplicates project %d", i, p.Title, j)
		} else {
			titles[key] = i
		}
		if j, dup := slugs[p.Slug]; dup && p.Slug != "" {
			fail("project %d: slug %q duplicates project %d", i, p.Slug, j)
		} else {
			slugs[p.Slug] = i
		}
	}

	return errors.Join(errs...)
}

// Slugify turns a title into a URL path segment: lowercase ASCII letters and
// digits, with every other run of characters collapsed to a single dash.
func Slugify(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
