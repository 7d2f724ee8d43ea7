package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportHTML(t *testing.T) {
	doc := Project(sampleResume())
	html, err := ExportHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Jane Doe</title>")
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Engineer at Acme")
	assert.Contains(t, html, "2020-01 - Present")
	assert.Contains(t, html, `href="https://linkedin.com/in/janedoe"`)
	assert.Contains(t, html, "white-space: pre-line")
	// contact fragments joined with a bullet
	assert.Contains(t, html, "&bull;")
}

func TestExportHTMLEscapesContent(t *testing.T) {
	r := sampleResume()
	r.Summary = `<script>alert("x")</script>`
	html, err := ExportHTML(Project(r))
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>alert")
}

func TestExportHTMLOmitsEmptyParts(t *testing.T) {
	doc := Project(sampleResume())
	doc.Summary = ""
	doc.Skills = nil

	html, err := ExportHTML(doc)
	require.NoError(t, err)
	assert.NotContains(t, html, "Summary")
	assert.NotContains(t, html, "Skills")
}

func TestPrintHTML(t *testing.T) {
	doc := Project(sampleResume())
	html, err := PrintHTML(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "<title>Print Resume - Jane Doe</title>")
	assert.Contains(t, html, "window.print()")
	assert.Contains(t, html, "Jane Doe")
}

func TestPlainText(t *testing.T) {
	text := PlainText(Project(sampleResume()))

	for _, want := range []string{"Jane Doe", "Backend engineer.", "Engineer at Acme", "MIT", "sidecar", "Go", "Postgres"} {
		assert.Contains(t, text, want)
	}
	assert.False(t, strings.Contains(text, "<"), "plain text must carry no markup")
}
