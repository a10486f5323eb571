package views

import "embed"

// StaticFS holds the stylesheet and page script served under /static/
//
//go:embed static/*.css static/*.js
var StaticFS embed.FS

// Cache-Control values for the embedded assets and for project imagery
const (
	StaticCacheControl = "public, max-age=3600"
	ImageCacheControl  = "public, max-age=86400"
)
