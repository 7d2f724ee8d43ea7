package model

// Partial is a top-level-key patch against a Resume. A nil field means "leave
// the current value alone"; a non-nil field replaces the corresponding
// top-level key wholesale, including present-but-empty collections. This is
// the only mutation shape the store accepts, so callers editing a single
// entry must send the whole rebuilt collection.
type Partial struct {
	BasicInfo  *BasicInfo   `json:"basicInfo,omitempty"`
	Summary    *string      `json:"summary,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Projects   []Project    `json:"projects,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
}

// IsZero reports whether the partial carries no keys at all.
func (p Partial) IsZero() bool {
	return p.BasicInfo == nil && p.Summary == nil &&
		p.Experience == nil && p.Education == nil &&
		p.Projects == nil && p.Skills == nil
}

// String pointer helper for Partial.Summary.
func StringPtr(s string) *string { return &s }
