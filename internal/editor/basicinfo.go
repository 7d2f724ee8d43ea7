package editor

import (
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/model"
	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

// BasicInfoPatch names the basicInfo fields to change; nil fields are kept.
type BasicInfoPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	LinkedIn *string `json:"linkedin,omitempty"`
	GitHub   *string `json:"github,omitempty"`
	Website  *string `json:"website,omitempty"`
	Location *string `json:"location,omitempty"`
}

// BasicInfo edits the flat basicInfo record and the summary text. Unlike the
// collection editors it has no entry ids: each change rebuilds the whole
// record with the patched fields and merges it back as one top-level key.
type BasicInfo struct {
	store *store.Store
}

func NewBasicInfo(s *store.Store) *BasicInfo { return &BasicInfo{store: s} }

func (e *BasicInfo) Apply(p BasicInfoPatch) model.BasicInfo {
	info := e.store.Document().BasicInfo
	if p.Name != nil {
		info.Name = *p.Name
	}
	if p.Email != nil {
		info.Email = *p.Email
	}
	if p.Phone != nil {
		info.Phone = *p.Phone
	}
	if p.LinkedIn != nil {
		info.LinkedIn = *p.LinkedIn
	}
	if p.GitHub != nil {
		info.GitHub = *p.GitHub
	}
	if p.Website != nil {
		info.Website = *p.Website
	}
	if p.Location != nil {
		info.Location = *p.Location
	}
	e.store.Update(model.Partial{BasicInfo: &info})
	return info
}

func (e *BasicInfo) SetSummary(summary string) {
	e.store.Update(model.Partial{Summary: &summary})
}
