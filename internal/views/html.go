// Package views renders the portfolio page as templ components.
//
// Components are written directly against templ.ComponentFunc. All text and
// attribute values pass through templ.EscapeString and every href through
// templ.URL, so authored content can never inject markup; the only raw HTML
// written is the sanitized output of the markup package and the icon set.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// writer accumulates the first write error so components can emit markup
// without checking every call
type writer struct {
	w   io.Writer
	err error
}

func (h *writer) raw(parts ...string) {
	for _, p := range parts {
		if h.err != nil {
			return
		}
		_, h.err = io.WriteString(h.w, p)
	}
}

func (h *writer) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *writer) attr(name, value string) {
	h.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (h *writer) href(url string) {
	h.attr("href", string(templ.URL(url)))
}

func (h *writer) class(classes ...any) {
	h.attr("class", templ.Classes(classes...).String())
}

func (h *writer) render(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

func component(fn func(ctx context.Context, h *writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &writer{w: w}
		fn(ctx, h)
		return h.err
	})
}
