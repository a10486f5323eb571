package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/models"
)

// ProjectCountLabel is the counter shown beside the work heading
func ProjectCountLabel(n int) string {
	return strconv.Itoa(n) + " Projects"
}

// Portfolio renders the work section: heading row and project grid
func Portfolio(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section id="work" class="section"><div class="section-heading reveal"`)
		h.revealTarget(SectionThreshold)
		h.raw(`><h2 class="section-title">Selected Work</h2><div class="rule"></div><span class="section-meta">`)
		h.text(ProjectCountLabel(len(site.Projects)))
		h.raw(`</span></div><div class="grid">`)
		for i := range site.Projects {
			h.render(ctx, ProjectCard(&site.Projects[i], i))
		}
		h.raw(`</div></section>`)
	})
}

// ProjectCard renders one grid entry. It is a real link so the detail page
// works without scripting; the page script opens the overlay instead.
func ProjectCard(p *models.Project, index int) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<a class="card reveal" role="button" tabindex="0"`)
		h.href(ProjectPath(p.Slug))
		h.attr("data-project", p.Slug)
		h.attr("aria-label", "View project: "+p.Title)
		h.revealTarget(CardThreshold)
		h.delay(CardRevealDelay(index))
		h.raw(`><div class="card-media"><img loading="lazy"`)
		h.attr("src", p.Image)
		h.attr("alt", p.Title)
		h.raw(`></div><div class="card-body"><div class="card-text"><div class="card-title-row"><h3 class="card-title">`)
		h.text(p.Title)
		h.raw(`</h3>`, iconArrowUpRight, `</div><p class="card-description">`)
		h.text(p.Description)
		h.raw(`</p></div><span class="card-year">`)
		h.text(p.Year)
		h.raw(`</span></div>`)
		tags(h, p.Tags, "tag")
		h.raw(`</a>`)
	})
}

func tags(h *writer, tags []string, class string) {
	if len(tags) == 0 {
		return
	}
	h.raw(`<div class="tags">`)
	for _, tag := range tags {
		h.raw(`<span`)
		h.attr("class", class)
		h.raw(`>`)
		h.text(tag)
		h.raw(`</span>`)
	}
	h.raw(`</div>`)
}
