// Copyright (c) 2026 Fondren Library. All rights reserved.

package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fondrenlibrary/name-authority/pkg/markup"
)

func TestRender(t *testing.T) {
	assert.Equal(t, "", markup.Render(""))

	out := markup.Render("**Historian** at the university.")
	assert.Contains(t, out, "<strong>Historian</strong>")

	out = markup.Render("# Heading\n\nParagraph text.")
	assert.Contains(t, out, "<h1>Heading</h1>")
	assert.Contains(t, out, "<p>Paragraph text.</p>")
}
