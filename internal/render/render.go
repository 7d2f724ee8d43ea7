// Package render projects the resume document into a visual tree and
// serializes it to HTML. It is strictly read-only with respect to the model:
// artifacts have no write path back into the store.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"
)

//go:embed templates
var templatesFS embed.FS

var (
	exportTpl = template.Must(template.ParseFS(templatesFS, "templates/document.html", "templates/export.html"))
	printTpl  = template.Must(template.ParseFS(templatesFS, "templates/document.html", "templates/print.html"))

	exportCSS = mustReadCSS("templates/export.css")
	printCSS  = mustReadCSS("templates/print.css")
)

func mustReadCSS(name string) template.CSS {
	b, err := templatesFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return template.CSS(b)
}

type page struct {
	Title string
	Style template.CSS
	Doc   *Document
}

// ExportHTML renders the standalone document used for PDF generation.
func ExportHTML(doc *Document) (string, error) {
	return execute(exportTpl, "export.html", page{Title: doc.Name, Style: exportCSS, Doc: doc})
}

// PrintHTML renders the print rendition: same projection, independent
// stylesheet, single continuous flow.
func PrintHTML(doc *Document) (string, error) {
	return execute(printTpl, "print.html", page{Title: "Print Resume - " + doc.Name, Style: printCSS, Doc: doc})
}

func execute(tpl *template.Template, name string, data page) (string, error) {
	var buf bytes.Buffer
	if err := tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PlainText flattens the projection into searchable text, one fragment per
// line. Used by the ATS scorer.
func PlainText(doc *Document) string {
	var b strings.Builder
	line := func(s string) {
		if s != "" {
			b.WriteString(s)
			b.WriteByte('\n')
		}
	}
	line(doc.Name)
	for _, c := range doc.Contact {
		line(c)
	}
	line(doc.Summary)
	for _, sec := range doc.Sections {
		line(sec.Title)
		for _, item := range sec.Items {
			line(item.Heading)
			line(item.Subtitle)
			line(item.Description)
			for _, t := range item.Tags {
				line(t)
			}
		}
	}
	for _, s := range doc.Skills {
		line(s)
	}
	return b.String()
}
