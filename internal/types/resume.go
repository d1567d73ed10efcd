// Package types defines the shared data model for the resume tailoring core.
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Contact holds the candidate's contact block.
type Contact struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Skills groups technical and soft skills. Order is display order and must
// be preserved across edits.
type Skills struct {
	Technical []string `json:"technical,omitempty"`
	Soft      []string `json:"soft,omitempty"`
}

// Experience is a single work history entry.
type Experience struct {
	Title        string   `json:"title,omitempty"`
	Company      string   `json:"company,omitempty"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate,omitempty"`
	EndDate      string   `json:"endDate,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// ResumeDocument is the structured resume. The computed fields (MatchScore,
// KeyImprovements, MissingKeywords) are written by the scoring engine and
// carried alongside the authored content.
type ResumeDocument struct {
	Contact         Contact      `json:"contact,omitempty"`
	Summary         string       `json:"summary,omitempty"`
	Skills          Skills       `json:"skills,omitempty"`
	Experience      []Experience `json:"experience,omitempty"`
	Education       []Education  `json:"education,omitempty"`
	MatchScore      *float64     `json:"matchScore,omitempty"`
	KeyImprovements []string     `json:"keyImprovements,omitempty"`
	MissingKeywords []string     `json:"missingKeywords,omitempty"`
}

// DecodeResume converts a generic document tree (decoded resume JSON) into a
// typed ResumeDocument. Unknown keys are ignored; known keys are never renamed.
func DecodeResume(doc map[string]any) (*ResumeDocument, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var resume ResumeDocument
	if err := json.Unmarshal(raw, &resume); err != nil {
		return nil, fmt.Errorf("failed to decode resume document: %w", err)
	}
	return &resume, nil
}

// ToMap converts a typed ResumeDocument back into a generic document tree
// suitable for pointer addressing.
func (r *ResumeDocument) ToMap() (map[string]any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to rebuild document tree: %w", err)
	}
	return doc, nil
}

// PlainText flattens the authored resume content into one text blob for
// language detection, mining, and scoring. Computed fields are excluded so
// a previous score never feeds back into the next one.
func (r *ResumeDocument) PlainText() string {
	var parts []string
	appendNonEmpty := func(s string) {
		if s != "" {
			parts = append(parts, s)
		}
	}
	appendNonEmpty(r.Contact.Name)
	appendNonEmpty(r.Contact.Location)
	appendNonEmpty(r.Summary)
	parts = append(parts, r.Skills.Technical...)
	parts = append(parts, r.Skills.Soft...)
	for _, exp := range r.Experience {
		appendNonEmpty(exp.Title)
		appendNonEmpty(exp.Company)
		parts = append(parts, exp.Achievements...)
	}
	for _, edu := range r.Education {
		appendNonEmpty(edu.Degree)
		appendNonEmpty(edu.Institution)
	}
	return strings.Join(parts, "\n")
}
