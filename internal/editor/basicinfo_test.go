package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ratheesh-24/ai-resume-builder-lab/internal/store"
)

func TestBasicInfoApplyPatchesSingleField(t *testing.T) {
	s := store.New()
	e := NewBasicInfo(s)

	e.Apply(BasicInfoPatch{Name: strPtr("Jane Doe"), Email: strPtr("jane@example.com")})
	e.Apply(BasicInfoPatch{Phone: strPtr("555-0100")})

	info := s.Document().BasicInfo
	assert.Equal(t, "Jane Doe", info.Name)
	assert.Equal(t, "jane@example.com", info.Email)
	assert.Equal(t, "555-0100", info.Phone)
}

func TestBasicInfoApplyCanBlankField(t *testing.T) {
	s := store.New()
	e := NewBasicInfo(s)

	e.Apply(BasicInfoPatch{Email: strPtr("jane@example.com")})
	e.Apply(BasicInfoPatch{Email: strPtr("")})

	assert.Empty(t, s.Document().BasicInfo.Email)
}

func TestBasicInfoSetSummary(t *testing.T) {
	s := store.New()
	e := NewBasicInfo(s)

	e.SetSummary("Engineer with ten years of Go.")
	assert.Equal(t, "Engineer with ten years of Go.", s.Document().Summary)

	e.SetSummary("")
	assert.Empty(t, s.Document().Summary)
}
