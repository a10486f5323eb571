package views

import (
	"context"
	"net/url"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/models"
)

// ProjectPath is the shareable URL of a project's detail view
func ProjectPath(slug string) string {
	return "/work/" + url.PathEscape(slug) + "/"
}

// FragmentPath is the URL the page script fetches a detail overlay from
func FragmentPath(slug string) string {
	return "/fragments/work/" + url.PathEscape(slug) + "/"
}

// PageOptions controls the document around the page sections
type PageOptions struct {
	Title       string
	Description string

	// Detail renders the project overlay already open, for deep links
	Detail    *models.Project
	Neighbors Neighbors
}

// ProjectPageOptions opens p over the page, titled and described for sharing
func ProjectPageOptions(site *models.Site, p *models.Project, nb Neighbors) PageOptions {
	return PageOptions{
		Title:       p.Title + " — " + site.Owner.Name,
		Description: p.Description,
		Detail:      p,
		Neighbors:   nb,
	}
}

// NotFoundPage renders the complete 404 document
func NotFoundPage(site *models.Site) templ.Component {
	return Document(site, PageOptions{Title: "Not found — " + site.Owner.Name}, NotFound(site))
}

// Page renders the complete single-page document
func Page(site *models.Site, opts PageOptions) templ.Component {
	return Document(site, opts, component(func(ctx context.Context, h *writer) {
		h.render(ctx, Navigation(site))
		h.raw(`<main>`)
		h.render(ctx, Hero(site))
		h.render(ctx, Portfolio(site))
		h.render(ctx, About(site))
		h.render(ctx, Contact(site))
		h.raw(`</main>`)
		h.render(ctx, Footer(site))
	}))
}

// Document wraps body in the html shell, stylesheet, script and detail mount
func Document(site *models.Site, opts PageOptions, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		title := opts.Title
		if title == "" {
			title = site.Owner.Name
			if site.Owner.Headline != "" {
				title += " — " + site.Owner.Headline
			}
		}
		description := opts.Description
		if description == "" {
			description = site.Hero.Intro
		}

		h.raw(`<!doctype html><html lang="en" class="no-js"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title><meta name="description"`)
		h.attr("content", description)
		h.raw(`><meta property="og:title"`)
		h.attr("content", title)
		h.raw(`>`)
		if opts.Detail != nil {
			h.raw(`<meta property="og:image"`)
			h.attr("content", opts.Detail.Image)
			h.raw(`>`)
		}
		h.raw(`<link rel="stylesheet" href="/static/site.css">`)
		h.raw(`<script>document.documentElement.classList.remove("no-js")</script>`)
		h.raw(`<script src="/static/site.js" defer></script></head>`)

		h.raw(`<body`)
		if opts.Detail != nil {
			h.class("is-locked")
		}
		h.raw(`>`)
		h.render(ctx, body)

		h.raw(`<div id="project-detail"`)
		h.attr("data-close-delay", milliseconds(CloseDelay))
		h.raw(`>`)
		if opts.Detail != nil {
			h.render(ctx, ProjectDetail(site, opts.Detail, true, opts.Neighbors))
		}
		h.raw(`</div></body></html>`)
	})
}
