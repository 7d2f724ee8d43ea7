package editor

import (
	"strings"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// Skills edits the skills list. Skills have no identity: insertion order is
// display order, duplicates are allowed, and removal is by exact string
// match.
type Skills struct {
	store *store.Store
}

func NewSkills(s *store.Store) *Skills { return &Skills{store: s} }

// Add appends the trimmed skill. Empty or whitespace-only input is a no-op
// and reports false.
func (e *Skills) Add(skill string) bool {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return false
	}
	doc := e.store.Document()
	e.store.Update(model.Partial{Skills: append(doc.Skills, skill)})
	return true
}

// Remove drops every occurrence of the exact value and reports how many
// were removed. Colliding duplicates cannot be targeted individually.
func (e *Skills) Remove(skill string) int {
	doc := e.store.Document()
	out := make([]string, 0, len(doc.Skills))
	removed := 0
	for _, s := range doc.Skills {
		if s == skill {
			removed++
			continue
		}
		out = append(out, s)
	}
	if removed == 0 {
		return 0
	}
	e.store.Update(model.Partial{Skills: out})
	return removed
}
