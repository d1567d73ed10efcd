// Package mining extracts candidate skill phrases from free text.
package mining

import (
	"strings"
	"unicode"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

const (
	// acronymMinLen and acronymMaxLen bound what counts as an acronym token.
	acronymMinLen = 2
	acronymMaxLen = 4
	// contextWindow is how many adjacent words on each side may qualify an
	// acronym into a phrase.
	contextWindow = 2
)

// genericWords are neighbors that never qualify an acronym into a skill
// phrase. "Add API to your skills" must not mine anything.
var genericWords = map[string]bool{
	"a": true, "an": true, "the": true, "to": true, "of": true, "in": true,
	"on": true, "for": true, "and": true, "or": true, "with": true,
	"your": true, "our": true, "my": true, "their": true, "this": true,
	"that": true, "add": true, "use": true, "using": true, "section": true,
	"skills": true, "skill": true, "please": true, "new": true,
}

// MineSkills extracts candidate skill phrases from the resume and the job
// text. The result is ordered, deduplicated case-insensitively, and keeps
// the first-seen casing of each phrase.
func MineSkills(resume *types.ResumeDocument, jobText string) []string {
	var candidates []string
	if resume != nil {
		candidates = append(candidates, minePhrasesFromText(resume.PlainText())...)
	}
	candidates = append(candidates, minePhrasesFromText(jobText)...)

	seen := make(map[string]bool, len(candidates))
	ordered := make([]string, 0, len(candidates))
	for _, phrase := range candidates {
		key := strings.ToLower(phrase)
		if seen[key] {
			continue
		}
		seen[key] = true
		ordered = append(ordered, phrase)
	}
	return ordered
}

// minePhrasesFromText finds acronym-anchored technical phrases. A bare
// acronym with no qualifying neighbors is dropped as too ambiguous.
func minePhrasesFromText(text string) []string {
	words := splitWords(text)
	var phrases []string

	for i, word := range words {
		if !isAcronym(word) {
			continue
		}

		start := i
		for start > 0 && i-start < contextWindow && qualifies(words[start-1]) {
			start--
		}
		end := i
		for end < len(words)-1 && end-i < contextWindow && qualifies(words[end+1]) {
			end++
		}

		if start == i && end == i {
			// No qualifying context on either side.
			continue
		}
		phrases = append(phrases, strings.Join(words[start:end+1], " "))
	}
	return phrases
}

// splitWords tokenizes on whitespace and strips surrounding punctuation, so
// sentence boundaries break phrase windows naturally.
func splitWords(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed != "" {
			words = append(words, trimmed)
		}
		if trimmed != field && strings.ContainsAny(field, ".!?") {
			// Sentence punctuation ends the current window.
			words = append(words, sentenceBreak)
		}
	}
	return words
}

// sentenceBreak is an internal marker that never qualifies as context.
const sentenceBreak = "\x00"

// isAcronym reports whether word is a fully capitalized 2-4 letter token.
// Detection is case-sensitive: "api" is a plain word, "API" is an acronym.
func isAcronym(word string) bool {
	if len(word) < acronymMinLen || len(word) > acronymMaxLen {
		return false
	}
	for _, r := range word {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// qualifies reports whether a neighboring word can extend an acronym into a
// multi-word technical phrase.
func qualifies(word string) bool {
	if word == sentenceBreak {
		return false
	}
	if genericWords[strings.ToLower(word)] {
		return false
	}
	// Neighboring acronyms and capitalized or technical lowercase words all
	// qualify; single letters do not.
	return len(word) > 1 && unicode.IsLetter([]rune(word)[0])
}
