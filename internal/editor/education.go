package editor

import (
	"github.com/google/uuid"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/domain"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// EducationPatch names the entry fields to change; nil fields are kept.
// EndDate is the canonical completion field; there is no graduationDate
// here, the alias only exists on the wire.
type EducationPatch struct {
	Institution *string `json:"institution,omitempty"`
	Degree      *string `json:"degree,omitempty"`
	Major       *string `json:"major,omitempty"`
	StartDate   *string `json:"startDate,omitempty"`
	EndDate     *string `json:"endDate,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Education struct {
	store *store.Store
}

func NewEducation(s *store.Store) *Education { return &Education{store: s} }

func (e *Education) Add() model.Education {
	doc := e.store.Document()
	entry := model.Education{ID: uuid.New().String()}
	e.store.Update(model.Partial{Education: append(doc.Education, entry)})
	return entry
}

func (e *Education) Update(id string, p EducationPatch) (model.Education, error) {
	doc := e.store.Document()
	out := make([]model.Education, len(doc.Education))
	var updated model.Education
	found := false
	for i, entry := range doc.Education {
		if entry.ID == id {
			if p.Institution != nil {
				entry.Institution = *p.Institution
			}
			if p.Degree != nil {
				entry.Degree = *p.Degree
			}
			if p.Major != nil {
				entry.Major = *p.Major
			}
			if p.StartDate != nil {
				entry.StartDate = *p.StartDate
			}
			if p.EndDate != nil {
				entry.EndDate = *p.EndDate
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
		return model.Education{}, domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Education: out})
	return updated, nil
}

func (e *Education) Remove(id string) error {
	doc := e.store.Document()
	out := make([]model.Education, 0, len(doc.Education))
	found := false
	for _, entry := range doc.Education {
		if entry.ID == id {
			found = true
			continue
		}
		out = append(out, entry)
	}
	if !found {
		return domain.ErrEntryNotFound
	}
	e.store.Update(model.Partial{Education: out})
	return nil
}
