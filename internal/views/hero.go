package views

import (
	"context"

	"github.com/a-h/templ"

	"elenavasquez.com/internal/models"
)

// Hero renders the banner. Each element reveals on its own.
func Hero(site *models.Site) templ.Component {
	return component(func(ctx context.Context, h *writer) {
		h.raw(`<section class="hero"><div class="hero-copy">`)

		h.raw(`<p class="eyebrow reveal"`)
		h.revealTarget(SectionThreshold)
		h.delay(HeroDelays[0])
		h.raw(`>`)
		h.text(site.Hero.Eyebrow)
		h.raw(`</p>`)

		h.raw(`<h1 class="hero-headline reveal"`)
		h.revealTarget(SectionThreshold)
		h.delay(HeroDelays[1])
		h.raw(`>`)
		h.text(site.Hero.Headline)
		h.raw(`</h1>`)

		h.raw(`<p class="hero-intro reveal"`)
		h.revealTarget(SectionThreshold)
		h.delay(HeroDelays[2])
		h.raw(`>`)
		h.text(site.Hero.Intro)
		h.raw(`</p></div>`)

		h.raw(`<a class="hero-cue reveal" href="/#work" aria-label="Scroll to work"`)
		h.revealTarget(SectionThreshold)
		h.delay(HeroDelays[3])
		h.raw(`>`, iconArrowDown, `</a></section>`)
	})
}
