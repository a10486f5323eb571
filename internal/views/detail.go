package views

import (
	"context"
	"time"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/markup"
	"elenavasquez.com/internal/models"
)

// Neighbors are the projects linked from the foot of a detail view
type Neighbors struct {
	Prev *models.Project
	Next *models.Project
}

// ProjectDetail renders the modal overlay for one project. The page script
// mounts it closed and adds is-open on the next frame so the entrance
// transitions run; deep links render it open.
func ProjectDetail(site *models.Site, p *models.Project, open bool, nb Neighbors) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<div role="dialog" aria-modal="true" data-detail`)
		h.class("detail", templ.KV("is-open", open))
		h.attr("data-slug", p.Slug)
		h.attr("aria-label", "Project details: "+p.Title)
		h.raw(`>`)

		h.raw(`<a class="detail-backdrop" href="/#work" data-close tabindex="-1" aria-hidden="true"></a>`)
		h.raw(`<div class="detail-panel" data-detail-panel>`)
		h.raw(`<a class="detail-close" href="/#work" data-close aria-label="Close project details">`, iconClose, `</a>`)
		h.render(ctx, detailHero(p))

		h.raw(`<div class="detail-body"><div class="detail-inner">`)
		h.render(ctx, detailHeader(p))
		h.render(ctx, detailColumns(p))
		h.render(ctx, detailGallery(p))
		h.render(ctx, detailOutcome(p))
		h.render(ctx, detailCTA(site.Contact))
		h.render(ctx, detailPager(nb))
		h.raw(`</div></div></div></div>`)
	})
}

func detailHero(p *models.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<div class="detail-hero"><img class="detail-hero-image"`)
		h.attr("src", p.Image)
		h.attr("alt", p.Title)
		h.delay(DetailDelays.Image)
		h.raw(`><div class="detail-hero-fade"></div></div>`)
	})
}

// detailHeader is the year, title, tag row and the divider under them
func detailHeader(p *models.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		stagger(h, "detail-titleblock", DetailDelays.Title)
		h.raw(`<span class="eyebrow">`)
		h.text(p.Year)
		h.raw(`</span><h2 class="detail-title">`)
		h.text(p.Title)
		h.raw(`</h2></div>`)

		stagger(h, "detail-tags", DetailDelays.Tags)
		tags(h, p.Tags, "tag tag-lg")
		h.raw(`</div>`)

		h.raw(`<div class="detail-divider"`)
		h.delay(DetailDelays.Divider)
		h.raw(`></div>`)
	})
}

func detailColumns(p *models.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		h.raw(`<div class="detail-columns">`)
		stagger(h, "detail-column", DetailDelays.Overview)
		label(h, "Overview")
		h.raw(`<p class="detail-text">`)
		h.text(p.Description)
		h.raw(`</p></div>`)

		stagger(h, "detail-column", DetailDelays.Approach)
		label(h, "Approach")
		h.raw(`<div class="detail-text muted">`, markup.Block(p.Approach), `</div></div>`)

		stagger(h, "detail-column detail-facts", DetailDelays.Role)
		fact(h, "Role", p.Role)
		fact(h, "Timeline", p.Timeline)
		h.raw(`</div></div>`)
	})
}

func detailGallery(p *models.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		stagger(h, "detail-gallery", DetailDelays.Gallery)
		h.raw(`<div class="detail-gallery-media"><img loading="lazy"`)
		h.attr("src", p.Image)
		h.attr("alt", p.Title+" showcase")
		h.raw(`></div></div>`)
	})
}

func detailOutcome(p *models.Project) templ.Component {
	return component(func(_ context.Context, h *writer) {
		stagger(h, "detail-outcome", DetailDelays.Outcome)
		label(h, "Outcome")
		h.raw(`<div class="detail-outcome-text">`, markup.Block(p.Outcome), `</div></div>`)
	})
}

func detailCTA(c models.Contact) templ.Component {
	return component(func(_ context.Context, h *writer) {
		stagger(h, "detail-cta", DetailDelays.CTA)
		h.raw(`<span class="muted">Interested in working together?</span><a class="button"`)
		h.href(c.MailTo())
		h.raw(`>Get in Touch`, iconArrowUpRight, `</a></div>`)
	})
}

// detailPager renders nothing when the project has no neighbors
func detailPager(nb Neighbors) templ.Component {
	return component(func(_ context.Context, h *writer) {
		if nb.Prev == nil && nb.Next == nil {
			return
		}
		h.raw(`<nav class="detail-pager" aria-label="More projects">`)
		if nb.Prev != nil {
			pagerLink(h, nb.Prev, "detail-prev", iconArrowLeft, true)
		}
		if nb.Next != nil {
			pagerLink(h, nb.Next, "detail-next", iconArrowRight, false)
		}
		h.raw(`</nav>`)
	})
}

func label(h *writer, text string) {
	h.raw(`<h3 class="detail-label">`)
	h.text(text)
	h.raw(`</h3>`)
}

func fact(h *writer, name, value string) {
	h.raw(`<div>`)
	label(h, name)
	h.raw(`<p class="detail-text">`)
	h.text(value)
	h.raw(`</p></div>`)
}

func stagger(h *writer, class string, d time.Duration) {
	h.raw(`<div`)
	h.class(class, "stagger")
	h.delay(d)
	h.raw(`>`)
}

func pagerLink(h *writer, p *models.Project, class, icon string, iconFirst bool) {
	h.raw(`<a`)
	h.class("detail-pager-link", class)
	h.href(ProjectPath(p.Slug))
	h.attr("data-project", p.Slug)
	h.raw(`>`)
	if iconFirst {
		h.raw(icon)
	}
	h.raw(`<span>`)
	h.text(p.Title)
	h.raw(`</span>`)
	if !iconFirst {
		h.raw(icon)
	}
	h.raw(`</a>`)
}
