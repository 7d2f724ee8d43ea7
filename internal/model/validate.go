package model

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume.schema.json
var schemaJSON string

// Validate checks raw JSON against resume.schema.json without decoding it
// into the typed model.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	docLoader := gojsonschema.NewBytesLoader(data)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}

// DecodePartial turns raw JSON into a typed Partial. The document is schema
// validated before decoding, so a malformed payload is rejected as a whole
// and can never half-apply. Entries arriving without ids are assigned fresh
// ones, and wire aliases (title/position, university/institution,
// graduationDate/endDate) are folded into their canonical fields.
//
// The returned warnings name the ambiguities the wire format allows but the
// model does not reconcile silently: current=true alongside a set endDate,
// and endDate alongside graduationDate.
func DecodePartial(data []byte) (Partial, []string, error) {
	if err := Validate(data); err != nil {
		return Partial{}, nil, err
	}

	var p Partial
	if err := json.Unmarshal(data, &p); err != nil {
		return Partial{}, nil, err
	}

	var warnings []string

	for i := range p.Experience {
		e := &p.Experience[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Position == "" && e.Title != "" {
			e.Position = e.Title
		}
		e.Title = ""
		if e.Current && e.EndDate != "" {
			warnings = append(warnings, fmt.Sprintf("experience %s: current=true but endDate=%q set; treating as ongoing", e.ID, e.EndDate))
		}
	}

	for i := range p.Education {
		e := &p.Education[i]
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		if e.Institution == "" && e.University != "" {
			e.Institution = e.University
		}
		e.University = ""
		if e.EndDate != "" && e.GraduationDate != "" {
			warnings = append(warnings, fmt.Sprintf("education %s: both endDate=%q and graduationDate=%q set; endDate wins", e.ID, e.EndDate, e.GraduationDate))
		}
		if e.EndDate == "" && e.GraduationDate != "" {
			e.EndDate = e.GraduationDate
		}
		e.GraduationDate = ""
	}

	for i := range p.Projects {
		if p.Projects[i].ID == "" {
			p.Projects[i].ID = uuid.New().String()
		}
	}

	return p, warnings, nil
}
