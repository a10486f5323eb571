package views

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/markup"
	"elenavasquez.com/internal/models"
)

// About renders the biography: portrait, lead, body and experience list.
// The whole section reveals together with staggered blocks.
func About(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		about := site.About

		h.raw(`<section id="about" class="section"`)
		h.revealTarget(SectionThreshold)
		h.raw(`>`)
		sectionHeading(h, "About")

		h.raw(`<div class="about-grid"><div class="about-portrait reveal reveal-far"`)
		h.delay(SectionDelays[1])
		h.raw(`><img loading="lazy"`)
		h.attr("src", about.Portrait)
		h.attr("alt", about.PortraitAlt)
		h.raw(`></div><div class="about-copy">`)

		h.raw(`<div class="about-text reveal reveal-far"`)
		h.delay(SectionDelays[2])
		h.raw(`><div class="lead">`)
		h.raw(markup.Block(about.Lead))
		h.raw(`</div><div class="muted">`)
		h.raw(markup.Block(about.Body))
		h.raw(`</div></div>`)

		if len(about.Experience) > 0 {
			h.raw(`<div class="experience reveal reveal-far"`)
			h.delay(SectionDelays[3])
			h.raw(`><h3 class="section-title">Experience</h3>`)
			for _, item := range about.Experience {
				h.raw(`<div class="experience-item"><span class="experience-period">`)
				h.text(item.Period)
				h.raw(`</span><div><h4 class="experience-role">`)
				h.text(item.Role)
				h.raw(`</h4><p class="muted">`)
				h.raw(markup.Inline(item.Description))
				h.raw(`</p></div></div>`)
			}
			h.raw(`</div>`)
		}
		h.raw(`</div></div></section>`)
	})
}

// Contact renders the call to action and the social links
func Contact(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		contact := site.Contact

		h.raw(`<section id="contact" class="section"`)
		h.revealTarget(SectionThreshold)
		h.raw(`>`)
		sectionHeading(h, "Contact")

		h.raw(`<div class="contact-grid"><div class="contact-cta reveal reveal-far"`)
		h.delay(SectionDelays[1])
		h.raw(`><h3 class="contact-heading">`)
		h.text(contact.Heading)
		h.raw(`</h3>`)
		if contact.Email != "" {
			h.raw(`<a class="button"`)
			h.href(contact.MailTo())
			h.raw(`>Get in Touch`, iconArrowUpRight, `</a>`)
		}
		h.raw(`</div><div class="contact-links reveal reveal-far"`)
		h.delay(SectionDelays[2])
		h.raw(`>`)
		for _, link := range contact.Links {
			h.raw(`<a class="contact-link"`)
			h.href(link.Href)
			h.raw(`><span class="contact-label">`)
			h.text(link.Label)
			h.raw(`</span><span class="contact-value">`)
			h.text(link.Value)
			h.raw(iconArrowUpRight, `</span></a>`)
		}
		h.raw(`</div></div></section>`)
	})
}

// Footer renders the copyright line and legal links
func Footer(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<footer class="footer"><p class="footer-copy">`)
		h.text(CopyrightLine(site))
		h.raw(`</p><div class="footer-links">`)
		for _, link := range site.Footer.Links {
			h.raw(`<a`)
			h.href(link.Href)
			h.raw(`>`)
			h.text(link.Label)
			h.raw(`</a>`)
		}
		h.raw(`</div></footer>`)
	})
}

// CopyrightLine is the footer notice, e.g. "© 2026 Elena Vasquez. All rights reserved."
func CopyrightLine(site *models.Site) string {
	line := "©"
	if site.Footer.Year > 0 {
		line += " " + strconv.Itoa(site.Footer.Year)
	}
	return line + " " + site.Owner.Name + ". All rights reserved."
}

// NotFound renders the body of the 404 page
func NotFound(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.render(ctx, Navigation(site))
		h.raw(`<main class="not-found"><p class="eyebrow">404</p><h1 class="hero-headline">This page does not exist.</h1>`)
		h.raw(`<a class="button" href="/#work">Back to the work`, iconArrowUpRight, `</a></main>`)
		h.render(ctx, Footer(site))
	})
}

func sectionHeading(h *writer, title string) {
	h.raw(`<div class="section-heading reveal"><h2 class="section-title">`)
	h.text(title)
	h.raw(`</h2><div class="rule"></div></div>`)
}
