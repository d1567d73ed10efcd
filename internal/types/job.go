package types

import "strings"

// JobPosting holds the structured fields returned by the page-scrape step.
// When structured extraction fails, RawText carries the best-effort blob and
// the structured fields stay empty.
type JobPosting struct {
	JobTitle         string   `json:"job_title,omitempty"`
	CompanyName      string   `json:"company_name,omitempty"`
	Location         string   `json:"location,omitempty"`
	AboutThisJob     string   `json:"about_this_job,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Qualifications   []string `json:"qualifications,omitempty"`
	RawText          string   `json:"raw_text,omitempty"`
}

// Text flattens the posting into one blob for scoring and mining. Structured
// fields win when present; RawText is the fallback.
func (j *JobPosting) Text() string {
	var parts []string
	for _, s := range []string{j.JobTitle, j.CompanyName, j.AboutThisJob} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	parts = append(parts, j.Requirements...)
	parts = append(parts, j.Responsibilities...)
	parts = append(parts, j.Qualifications...)
	if len(parts) == 0 {
		return j.RawText
	}
	return strings.Join(parts, "\n")
}
