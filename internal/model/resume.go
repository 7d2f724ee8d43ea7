package model

// Go models for the resume document. JSON field names match the wire format
// accepted from the AI generation endpoint and served over the HTTP API.

type BasicInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
	Location string `json:"location,omitempty"`
}

type Experience struct {
	ID       string `json:"id"`
	Company  string `json:"company"`
	Position string `json:"position"`
	// Title is a wire-format alias for Position. DecodePartial folds it
	// into Position; Position is canonical.
	Title     string `json:"title,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate,omitempty"`
	Current   bool   `json:"current,omitempty"`
	// Description is newline-significant; renderers keep embedded newlines
	// as line breaks.
	Description string `json:"description"`
}

// EndMarker resolves the endDate/current pair into the label shown for the
// end of the range. Current wins when the two disagree.
func (e Experience) EndMarker() string {
	if e.Current || e.EndDate == "" {
		return "Present"
	}
	return e.EndDate
}

type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution"`
	// University is a wire-format alias for Institution, folded in by
	// DecodePartial.
	University string `json:"university,omitempty"`
	Degree     string `json:"degree"`
	Major      string `json:"major,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	// GraduationDate is a legacy alias for EndDate still present on the
	// wire. DecodePartial folds it into EndDate; EndDate is canonical.
	GraduationDate string `json:"graduationDate,omitempty"`
	Description    string `json:"description"`
}

// CompletionDate returns the canonical end of the education period.
func (e Education) CompletionDate() string {
	if e.EndDate != "" {
		return e.EndDate
	}
	if e.GraduationDate != "" {
		return e.GraduationDate
	}
	return "Present"
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Link         string   `json:"link,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
}

// Resume is the root aggregate: all resume content for one session.
type Resume struct {
	BasicInfo  BasicInfo    `json:"basicInfo"`
	Summary    string       `json:"summary,omitempty"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Projects   []Project    `json:"projects"`
	Skills     []string     `json:"skills"`
}

// NewResume returns a fully-present empty document: all collections are
// non-nil empty slices and basicInfo is a record of empty strings.
func NewResume() Resume {
	return Resume{
		Experience: []Experience{},
		Education:  []Education{},
		Projects:   []Project{},
		Skills:     []string{},
	}
}

// Clone returns a deep copy so callers can hand out read snapshots without
// aliasing the store's collections.
func (r Resume) Clone() Resume {
	out := r
	out.Experience = append([]Experience(nil), r.Experience...)
	out.Education = append([]Education(nil), r.Education...)
	out.Projects = make([]Project, len(r.Projects))
	for i, p := range r.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	out.Skills = append([]string(nil), r.Skills...)
	return out
}
