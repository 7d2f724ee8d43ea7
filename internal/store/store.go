// Package store owns the session-lifetime resume document and its merge
// contract. There is exactly one writer path: Update with a model.Partial.
package store

import (
	"sync"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
)

// Store holds one resume document. All consumers (section editors, the AI
// importer, the render pipeline) receive the same injected instance; there
// is no package-level singleton.
type Store struct {
	mu  sync.RWMutex
	doc model.Resume
}

// New returns a store holding a fully-present empty document.
func New() *Store {
	return &Store{doc: model.NewResume()}
}

// Document returns a deep-copy snapshot of the current document.
func (s *Store) Document() model.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// Update applies a shallow merge: every top-level key present in p replaces
// the corresponding key of the current document wholesale; absent keys are
// left untouched. Sending a collection replaces that whole collection, so
// callers rebuild the full slice before calling Update. No deep merge, no
// reconciliation by entry id.
func (s *Store) Update(p model.Partial) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.BasicInfo != nil {
		s.doc.BasicInfo = *p.BasicInfo
	}
	if p.Summary != nil {
		s.doc.Summary = *p.Summary
	}
	if p.Experience != nil {
		s.doc.Experience = append([]model.Experience{}, p.Experience...)
	}
	if p.Education != nil {
		s.doc.Education = append([]model.Education{}, p.Education...)
	}
	if p.Projects != nil {
		s.doc.Projects = append([]model.Project{}, p.Projects...)
	}
	if p.Skills != nil {
		s.doc.Skills = append([]string{}, p.Skills...)
	}
}
