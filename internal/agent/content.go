package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/docpath"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/mining"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/writer"
)

// addSkills appends skills to the technical skills section, mining the job
// text when the action carries no explicit list. Already-present skills are
// skipped case-insensitively.
func addSkills(doc map[string]any, args types.AddSkillsArgs, jobText string) (map[string]any, []types.ChangeRecord, error) {
	resume, err := types.DecodeResume(doc)
	if err != nil {
		return doc, nil, err
	}

	skills := args.Skills
	if len(skills) == 0 {
		skills = mining.MineSkills(resume, jobText)
	}
	if len(skills) == 0 {
		return doc, nil, nil
	}

	existing := make(map[string]bool)
	for _, skill := range resume.Skills.Technical {
		existing[strings.ToLower(skill)] = true
	}

	var records []types.ChangeRecord
	next := len(resume.Skills.Technical)
	for _, skill := range skills {
		if existing[strings.ToLower(skill)] {
			continue
		}
		existing[strings.ToLower(skill)] = true
		records = append(records, types.ChangeRecord{
			ID:         uuid.NewString(),
			Summary:    fmt.Sprintf("Add %q to technical skills", skill),
			Scope:      types.ScopeBullet,
			Category:   "skills",
			Confidence: types.ConfidenceHigh,
			After:      skill,
			Metadata:   types.ChangeMetadata{Pointer: docpath.Join("skills", "technical", strconv.Itoa(next))},
		})
		next++
	}
	if len(records) == 0 {
		return doc, nil, nil
	}

	updated, skippedErrs := writer.ApplyProposedChanges(doc, records)
	if len(skippedErrs) > 0 {
		return updated, records, fmt.Errorf("failed to apply %d skill additions", len(skippedErrs))
	}
	return updated, records, nil
}

// rewriteSummary composes a new summary from the current one, the job title,
// and the requested emphasis. The new text always retains content, so the
// record can never read as a deletion.
func rewriteSummary(doc map[string]any, args types.RewriteSummaryArgs, posting *types.JobPosting) (map[string]any, []types.ChangeRecord, error) {
	resume, err := types.DecodeResume(doc)
	if err != nil {
		return doc, nil, err
	}

	after := composeSummary(resume, posting, args.Emphasis)
	if after == resume.Summary {
		return doc, nil, nil
	}

	record := types.ChangeRecord{
		ID:         uuid.NewString(),
		Summary:    "Rewrite professional summary",
		Scope:      types.ScopeParagraph,
		Category:   "summary",
		Confidence: types.ConfidenceMedium,
		Before:     resume.Summary,
		After:      after,
		Metadata:   types.ChangeMetadata{Pointer: "/summary"},
	}

	updated, skippedErrs := writer.ApplyProposedChanges(doc, []types.ChangeRecord{record})
	if len(skippedErrs) > 0 {
		return updated, nil, skippedErrs[0]
	}
	return updated, []types.ChangeRecord{record}, nil
}

func composeSummary(resume *types.ResumeDocument, posting *types.JobPosting, emphasis string) string {
	base := strings.TrimSpace(resume.Summary)
	if base == "" {
		base = "Experienced professional."
	}
	base = strings.TrimSuffix(base, ".")

	var focus string
	switch {
	case emphasis != "":
		focus = emphasis
	case posting != nil && posting.JobTitle != "":
		focus = posting.JobTitle
	}
	if focus == "" {
		return base + "."
	}
	return fmt.Sprintf("%s, with a focus on %s.", base, focus)
}

// weakLeads maps weak bullet openers to stronger verbs. Longer openers come
// first so "helped with" wins over "helped".
var weakLeads = []struct {
	weak   string
	strong string
}{
	{"responsible for", "Owned"},
	{"was involved in", "Contributed to"},
	{"participated in", "Contributed to"},
	{"assisted with", "Supported"},
	{"helped with", "Drove"},
	{"worked on", "Led"},
	{"helped", "Drove"},
}

// strengthenSection rewrites weak bullet openers in the named section with
// stronger verbs. Only experience bullets are addressable today.
func strengthenSection(doc map[string]any, args types.StrengthenSectionArgs) (map[string]any, []types.ChangeRecord, error) {
	if args.Section != "experience" {
		return doc, nil, fmt.Errorf("section %q has no bullets to strengthen", args.Section)
	}

	resume, err := types.DecodeResume(doc)
	if err != nil {
		return doc, nil, err
	}

	var records []types.ChangeRecord
	for i, exp := range resume.Experience {
		for j, bullet := range exp.Achievements {
			after, changed := strengthenBullet(bullet)
			if !changed {
				continue
			}
			records = append(records, types.ChangeRecord{
				ID:         uuid.NewString(),
				Summary:    "Strengthen experience bullet",
				Scope:      types.ScopeBullet,
				Category:   "experience",
				Confidence: types.ConfidenceMedium,
				Before:     bullet,
				After:      after,
				Metadata: types.ChangeMetadata{
					Pointer: docpath.Join("experience", strconv.Itoa(i), "achievements", strconv.Itoa(j)),
				},
			})
		}
	}
	if len(records) == 0 {
		return doc, nil, nil
	}

	return writer.ApplyDiff(doc, records), records, nil
}

func strengthenBullet(bullet string) (string, bool) {
	lower := strings.ToLower(bullet)
	for _, lead := range weakLeads {
		if strings.HasPrefix(lower, lead.weak+" ") {
			rest := bullet[len(lead.weak):]
			return lead.strong + rest, true
		}
	}
	return bullet, false
}
