// Package ats scores a resume against a job description the way an
// applicant tracking system would: keyword overlap, nothing smarter.
package ats

import (
	"math"
	"strings"
)

// Result is the score card: the percentage of job-description keywords the
// resume covers, plus which keywords matched and which are missing.
type Result struct {
	Score            int      `json:"score"`
	PositiveKeywords []string `json:"positiveKeywords"`
	NegativeKeywords []string `json:"negativeKeywords"`
}

// stopwords that carry no signal in a job description
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "have": {}, "in": {},
	"is": {}, "it": {}, "of": {}, "on": {}, "or": {}, "our": {}, "the": {},
	"to": {}, "we": {}, "with": {}, "you": {}, "your": {}, "will": {},
	"who": {}, "that": {}, "this": {}, "they": {}, "their": {},
}

// Score tokenizes the job description, drops stopwords and single-character
// tokens, and checks every remaining keyword against the resume text. The
// score is matched keywords over total keywords, rounded to a percentage.
func Score(resumeText, jobDescription string) Result {
	keywords := keywords(jobDescription)
	res := Result{
		PositiveKeywords: []string{},
		NegativeKeywords: []string{},
	}
	if len(keywords) == 0 {
		return res
	}

	have := make(map[string]struct{})
	for _, t := range tokenize(resumeText) {
		have[t] = struct{}{}
	}

	for _, kw := range keywords {
		if _, ok := have[kw]; ok {
			res.PositiveKeywords = append(res.PositiveKeywords, kw)
		} else {
			res.NegativeKeywords = append(res.NegativeKeywords, kw)
		}
	}

	res.Score = int(math.Round(100 * float64(len(res.PositiveKeywords)) / float64(len(keywords))))
	return res
}

// keywords returns the deduplicated tokens of the job description in first
// occurrence order.
func keywords(text string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, t := range tokenize(text) {
		if _, ok := stopwords[t]; ok {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// tokenize lowercases and splits on anything that is not a letter, digit,
// '+' or '#', so "C++" and "C#" survive as tokens.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		case r == '+' || r == '#':
			return false
		}
		return true
	})
	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		out = append(out, f)
	}
	return out
}
