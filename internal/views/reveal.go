package views

import (
	"strconv"
	"time"
)

// Intersection ratios at which elements reveal
const (
	SectionThreshold = 0.1
	CardThreshold    = 0.15
)

// ScrolledOffset is how far the page scrolls, in pixels, before the
// navigation bar switches to its opaque style
const ScrolledOffset = 20

// CloseDelay is how long a closed project detail stays mounted so its exit
// transition can finish
const CloseDelay = 500 * time.Millisecond

// HeroDelays staggers the eyebrow, headline, intro and scroll cue
var HeroDelays = [4]time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 400 * time.Millisecond}

// SectionDelays staggers the blocks of the about and contact sections
var SectionDelays = [4]time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}

// DetailStagger holds the entrance delay of each block of the project detail
type DetailStagger struct {
	Image    time.Duration
	Title    time.Duration
	Tags     time.Duration
	Divider  time.Duration
	Overview time.Duration
	Approach time.Duration
	Role     time.Duration
	Gallery  time.Duration
	Outcome  time.Duration
	CTA      time.Duration
}

// DetailDelays is the stagger used by ProjectDetail
var DetailDelays = DetailStagger{
	Image:    100 * time.Millisecond,
	Title:    200 * time.Millisecond,
	Tags:     300 * time.Millisecond,
	Divider:  350 * time.Millisecond,
	Overview: 400 * time.Millisecond,
	Approach: 450 * time.Millisecond,
	Role:     500 * time.Millisecond,
	Gallery:  550 * time.Millisecond,
	Outcome:  600 * time.Millisecond,
	CTA:      650 * time.Millisecond,
}

// CardRevealDelay offsets the right-hand column of the two-column grid
func CardRevealDelay(index int) time.Duration {
	return time.Duration(index%2) * 100 * time.Millisecond
}

// MenuLinkDelay is the entrance delay of the i-th mobile menu link while the
// menu is open. Closing uses no delay.
func MenuLinkDelay(i int) time.Duration {
	return time.Duration(i*80+100) * time.Millisecond
}

// revealTarget marks an element observed by the reveal script; it and its
// .reveal descendants become visible once when it first intersects
func (h *writer) revealTarget(threshold float64) {
	h.raw(" data-reveal")
	h.attr("data-reveal-threshold", strconv.FormatFloat(threshold, 'f', -1, 64))
}

func (h *writer) delay(d time.Duration) {
	if d <= 0 {
		return
	}
	h.attr("style", "transition-delay: "+milliseconds(d))
}

func milliseconds(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
}
