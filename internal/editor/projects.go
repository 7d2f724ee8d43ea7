package editor

import (
	"github.com/google/uuid"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// ProjectPatch names the entry fields to change; nil fields are kept. A
// non-nil Technologies replaces the whole list.
type ProjectPatch struct {
	Name         *string   `json:"name,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Link         *string   `json:"link,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
}

type Projects struct {
	store *store.Store
}

func NewProjects(s *store.Store) *Projects { return &Projects{store: s} }

func (e *Projects) Add() model.Project {
	doc := e.store.Document()
	entry := model.Project{ID: uuid.New().String()}
	e.store.Update(model.Partial{Projects: append(doc.Projects, entry)})
	return entry
}

func (e *Projects) Update(id string, p ProjectPatch) (model.Project, error) {
	doc := e.store.Document()
	out := make([]model.Project, len(doc.Projects))
	var updated model.Project
	found := false
	for i, entry := range doc.Projects {
		if entry.ID == id {
			if p.Name != nil {
				entry.Name = *p.Name
			}
			if p.Description != nil {
				entry.Description = *p.Description
			}
			if p.Link != nil {
				entry.Link = *p.Link
			}
			if p.Technologies != nil {
				entry.Technologies = append([]string{}, (*p.Technologies)...)
			}
			updated = entry
			found = true
		}
		out[i] = entry
	}
	if !found {
		return model.Project{}, domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Projects: out})
	return updated, nil
}

func (e *Projects) Remove(id string) error {
	doc := e.store.Document()
	out := make([]model.Project, 0, len(doc.Projects))
	found := false
	for _, entry := range doc.Projects {
		if entry.ID == id {
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		return domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Projects: out})
	return nil
}
