package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/models"
)

// Navigation renders the fixed header with desktop links and the mobile menu
func Navigation(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<header class="nav" data-nav`)
		h.attr("data-scrolled-offset", strconv.Itoa(ScrolledOffset))
		h.raw(`><nav class="nav-bar"><a class="nav-brand" href="/#">`)
		h.text(site.Owner.Name)
		h.raw(`</a><ul class="nav-links">`)
		for _, link := range site.Nav {
			h.raw(`<li><a class="nav-link"`)
			h.href(homeAnchor(link.Href))
			h.raw(`>`)
			h.text(link.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul>`)

		h.raw(`<button type="button" class="nav-toggle" data-menu-toggle aria-controls="mobile-menu" aria-expanded="false" aria-label="Toggle menu">`)
		h.raw(iconMenu, iconClose)
		h.raw(`</button>`)

		h.raw(`<div class="nav-menu" id="mobile-menu" data-menu><ul>`)
		for i, link := range site.Nav {
			h.raw(`<li><a class="nav-menu-link" data-menu-link`)
			h.href(homeAnchor(link.Href))
			h.attr("style", "--open-delay: "+milliseconds(MenuLinkDelay(i)))
			h.raw(`>`)
			h.text(link.Label)
			h.raw(`</a></li>`)
		}
		h.raw(`</ul></div></nav></header>`)
	})
}

// homeAnchor makes in-page anchors work from the detail deep link pages too
func homeAnchor(href string) string {
	if len(href) > 0 && href[0] == '#' {
		return "/" + href
	}
	return href
}
