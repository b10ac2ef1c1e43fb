// Copyright (c) 2026 Fondren Library. All rights reserved.

// Package markup renders the markdown biography text stored on name
// records into HTML.
//
// Biographies are stored as raw markdown and rendered on demand; the
// HTML form is never persisted.
package markup

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(
		// Biographies are operator-entered, not end-user input, but raw
		// HTML passthrough is still disabled.
		html.WithHardWraps(),
	),
)

// Render converts markdown source to HTML. A render failure yields the
// empty string rather than an error; the biography is decorative and
// must never break a record view.
func Render(source string) string {
	if source == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := renderer.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return buf.String()
}
