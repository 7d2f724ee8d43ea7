package render

import (
	"fmt"
	"strings"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
)

// Document is the visual projection of a resume: what gets rendered, in what
// order, with all presence/fallback rules already applied. Serializers
// (export HTML, print HTML) only walk this tree; they never consult the
// model again.
type Document struct {
	Name    string
	Contact []string
	Links   []Link
	Summary string
	// Sections holds Experience, Education and Projects in that order;
	// sections with no entries are not present at all.
	Sections []Section
	Skills   []string
}

type Link struct {
	Label string
	Href  string
	Text  string
}

type Section struct {
	Title string
	Items []Item
}

type Item struct {
	Heading  string
	Subtitle string
	Dates    string
	Link     *Link
	// Description keeps embedded newlines; stylesheets turn them into
	// line breaks.
	Description string
	Tags        []string
}

const nameFallback = "Your Name"

// Project builds the projection for a resume document. Entries appear in
// store order; nothing is re-sorted.
func Project(r model.Resume) *Document {
	doc := &Document{Name: r.BasicInfo.Name}
	if doc.Name == "" {
		doc.Name = nameFallback
	}

	for _, v := range []string{r.BasicInfo.Email, r.BasicInfo.Phone, r.BasicInfo.Location} {
		if v != "" {
			doc.Contact = append(doc.Contact, v)
		}
	}
	if v := r.BasicInfo.LinkedIn; v != "" {
		doc.Links = append(doc.Links, Link{Label: "LinkedIn", Href: NormalizeURL(v), Text: "LinkedIn"})
	}
	if v := r.BasicInfo.GitHub; v != "" {
		doc.Links = append(doc.Links, Link{Label: "GitHub", Href: NormalizeURL(v), Text: "GitHub"})
	}

	doc.Summary = r.Summary

	if sec := experienceSection(r.Experience); sec != nil {
		doc.Sections = append(doc.Sections, *sec)
	}
	if sec := educationSection(r.Education); sec != nil {
		doc.Sections = append(doc.Sections, *sec)
	}
	if sec := projectSection(r.Projects); sec != nil {
		doc.Sections = append(doc.Sections, *sec)
	}

	doc.Skills = append(doc.Skills, r.Skills...)

	return doc
}

func experienceSection(entries []model.Experience) *Section {
	if len(entries) == 0 {
		return nil
	}
	sec := &Section{Title: "Experience"}
	for _, e := range entries {
		heading := e.Position
		if heading == "" {
			heading = "Position"
		}
		if e.Company != "" {
			heading += " at " + e.Company
		}
		sec.Items = append(sec.Items, Item{
			Heading:     heading,
			Dates:       dateRange(e.StartDate, e.EndMarker()),
			Description: e.Description,
		})
	}
	return sec
}

func educationSection(entries []model.Education) *Section {
	if len(entries) == 0 {
		return nil
	}
	sec := &Section{Title: "Education"}
	for _, e := range entries {
		heading := e.Degree
		if e.Major != "" {
			heading += " in " + e.Major
		}
		sec.Items = append(sec.Items, Item{
			Heading:     heading,
			Subtitle:    e.Institution,
			Dates:       dateRange(e.StartDate, e.CompletionDate()),
			Description: e.Description,
		})
	}
	return sec
}

func projectSection(entries []model.Project) *Section {
	if len(entries) == 0 {
		return nil
	}
	sec := &Section{Title: "Projects"}
	for _, p := range entries {
		item := Item{
			Heading:     p.Name,
			Description: p.Description,
			Tags:        p.Technologies,
		}
		if p.Link != "" {
			item.Link = &Link{Href: NormalizeURL(p.Link), Text: p.Link}
		}
		sec.Items = append(sec.Items, item)
	}
	return sec
}

func dateRange(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}

// NormalizeURL prepends https:// when the stored value carries no scheme, so
// links always resolve as external hyperlinks. Already-prefixed values pass
// through unchanged.
func NormalizeURL(v string) string {
	if v == "" {
		return ""
	}
	if strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://") {
		return v
	}
	return "https://" + v
}
