// Package web bundles the dashboard templates and static assets into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates/**/*.html
var Templates embed.FS

//go:embed static/**/*
var Static embed.FS

// TemplatePatterns lists the template globs in parse order: layouts first so
// pages can fill their blocks.
var TemplatePatterns = []string{
	"templates/layouts/*.html",
	"templates/partials/*.html",
	"templates/pages/*.html",
}

// StaticFS returns the static assets rooted at static/ for http.FileServer.
func StaticFS() (fs.FS, error) {
	return fs.Sub(Static, "static")
}
