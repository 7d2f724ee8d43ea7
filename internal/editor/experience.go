package editor

import (
	"github.com/google/uuid"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// ExperiencePatch names the entry fields to change; nil fields are kept.
type ExperiencePatch struct {
	Company     *string `json:"company,omitempty"`
	Position    *string `json:"position,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Current     *bool   `json:"current,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Experience owns CRUD over the experience collection. Mutation is by entry
// id only, never by position.
type Experience struct {
	store *store.Store
}

func NewExperience(s *store.Store) *Experience { return &Experience{store: s} }

// Add appends a fresh entry with empty fields and a generated id.
func (e *Experience) Add() model.Experience {
	doc := e.store.Document()
	entry := model.Experience{ID: uuid.New().String()}
	e.store.Update(model.Partial{Experience: append(doc.Experience, entry)})
	return entry
}

// Update replaces the named fields of the entry with the given id, keeping
// its position and every other entry untouched.
func (e *Experience) Update(id string, p ExperiencePatch) (model.Experience, error) {
	doc := e.store.Document()
	out := make([]model.Experience, len(doc.Experience))
	var updated model.Experience
	found := false
	for i, entry := range doc.Experience {
		if entry.ID == id {
			if p.Company != nil {
				entry.Company = *p.Company
			}
			if p.Position != nil {
				entry.Position = *p.Position
			}
			if p.StartDate != nil {
				entry.StartDate = *p.StartDate
			}
			if p.EndDate != nil {
				entry.EndDate = *p.EndDate
			}
			if p.Current != nil {
				entry.Current = *p.Current
			}
			if p.Description != nil {
				entry.Description = *p.Description
			}
			updated = entry
			found = true
		}
		out[i] = entry
	}
	if !found {
		return model.Experience{}, domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Experience: out})
	return updated, nil
}

// Remove filters the entry out of the collection; the sequence compacts.
func (e *Experience) Remove(id string) error {
	doc := e.store.Document()
	out := make([]model.Experience, 0, len(doc.Experience))
	found := false
	for _, entry := range doc.Experience {
		if entry.ID == id {
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		return domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Experience: out})
	return nil
}
