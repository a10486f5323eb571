// Package markup renders the light Markdown used in authored copy into
// sanitized HTML.
package markup

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.Typographer, extension.Strikethrough),
	)

	policy = newPolicy()
)

func newPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.RequireNoReferrerOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// Block renders src as one or more paragraphs
func Block(src string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		// goldmark only fails on writer errors; a bytes.Buffer never fails
		return policy.Sanitize(src)
	}
	return strings.TrimSpace(string(policy.SanitizeBytes(buf.Bytes())))
}

// Inline renders src without wrapping paragraphs, for use inside an element
// that is already a paragraph or heading. Paragraph breaks become line breaks.
func Inline(src string) string {
	html := strings.ReplaceAll(Block(src), "</p>\n<p>", "<br><br>")
	if strings.HasPrefix(html, "<p>") && strings.HasSuffix(html, "</p>") &&
		strings.Count(html, "<p>") == 1 {
		return html[len("<p>") : len(html)-len("</p>")]
	}
	return html
}
