package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodePartialValidDocument(t *testing.T) {
	data := []byte(`{
		"basicInfo": {"name": "Jane Doe", "email": "jane@example.com", "phone": ""},
		"summary": "Engineer.",
		"experience": [{"id": "e1", "company": "Acme", "position": "Dev", "startDate": "2020", "description": "built things"}],
		"skills": ["Go", "Python"]
	}`)

	p, warnings, err := DecodePartial(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.NotNil(t, p.BasicInfo)
	assert.Equal(t, "Jane Doe", p.BasicInfo.Name)
	require.NotNil(t, p.Summary)
	assert.Equal(t, "Engineer.", *p.Summary)
	require.Len(t, p.Experience, 1)
	assert.Equal(t, "e1", p.Experience[0].ID)
	assert.Equal(t, []string{"Go", "Python"}, p.Skills)

	// keys absent from the payload stay absent from the partial
	assert.Nil(t, p.Education)
	assert.Nil(t, p.Projects)
}

func TestDecodePartialNotJSON(t *testing.T) {
	_, _, err := DecodePartial([]byte("not json"))
	assert.Error(t, err)
}

func TestDecodePartialWrongShape(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"experience not an array", `{"experience": "lots of it"}`},
		{"skills not strings", `{"skills": [1, 2, 3]}`},
		{"unknown top-level key", `{"hobbies": ["chess"]}`},
		{"basicInfo wrong type", `{"basicInfo": "Jane"}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := DecodePartial([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodePartialAssignsMissingIDs(t *testing.T) {
	data := []byte(`{
		"experience": [{"company": "Acme", "position": "Dev", "startDate": "2020", "description": ""}],
		"education": [{"institution": "MIT", "degree": "BSc", "startDate": "2016", "description": ""}],
		"projects": [{"name": "thing", "description": ""}]
	}`)

	p, _, err := DecodePartial(data)
	require.NoError(t, err)
	assert.NotEmpty(t, p.Experience[0].ID)
	assert.NotEmpty(t, p.Education[0].ID)
	assert.NotEmpty(t, p.Projects[0].ID)
}

func TestDecodePartialFoldsAliases(t *testing.T) {
	data := []byte(`{
		"experience": [{"id": "e1", "company": "Acme", "title": "Staff Dev", "startDate": "2020", "description": ""}],
		"education": [{"id": "d1", "university": "MIT", "degree": "BSc", "startDate": "2016", "graduationDate": "2020", "description": ""}]
	}`)

	p, warnings, err := DecodePartial(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "Staff Dev", p.Experience[0].Position)
	assert.Empty(t, p.Experience[0].Title)
	assert.Equal(t, "MIT", p.Education[0].Institution)
	assert.Empty(t, p.Education[0].University)
	assert.Equal(t, "2020", p.Education[0].EndDate)
	assert.Empty(t, p.Education[0].GraduationDate)
}

func TestDecodePartialFlagsAmbiguities(t *testing.T) {
	data := []byte(`{
		"experience": [{"id": "e1", "company": "Acme", "position": "Dev", "startDate": "2020", "endDate": "2022", "current": true, "description": ""}],
		"education": [{"id": "d1", "institution": "MIT", "degree": "BSc", "startDate": "2016", "endDate": "2020", "graduationDate": "2021", "description": ""}]
	}`)

	p, warnings, err := DecodePartial(data)
	require.NoError(t, err)
	assert.Len(t, warnings, 2)

	// canonical resolutions: current wins, endDate wins
	assert.Equal(t, "Present", p.Experience[0].EndMarker())
	assert.Equal(t, "2020", p.Education[0].EndDate)
}
