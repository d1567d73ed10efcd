// Package scoring computes the compatibility score between a resume and a
// job description, with per-language sub-scores and actionable gaps.
package scoring

import (
	"strings"
	"unicode"
)

// stopWords are function words excluded from keyword matching. Small fixed
// lists per supported language; anything unlisted simply scores as a token.
var stopWords = map[string]bool{
	// English
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "for": true, "from": true, "has": true,
	"have": true, "in": true, "is": true, "it": true, "of": true, "on": true,
	"or": true, "our": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "we": true, "will": true, "with": true,
	"you": true, "your": true,
	// Spanish
	"el": true, "la": true, "los": true, "las": true, "con": true,
	"para": true, "una": true, "del": true, "por": true,
	// French
	"le": true, "les": true, "des": true, "avec": true, "pour": true,
	"dans": true, "une": true,
	// Hebrew
	"של": true, "עם": true, "על": true, "את": true, "או": true, "גם": true,
}

// synonyms normalizes common spelling variants so "k8s" in a posting matches
// "Kubernetes" on a resume.
var synonyms = map[string]string{
	"k8s":        "kubernetes",
	"js":         "javascript",
	"ts":         "typescript",
	"golang":     "go",
	"postgres":   "postgresql",
	"gcp":        "google cloud",
	"ci/cd":      "cicd",
	"ci":         "cicd",
	"node":       "nodejs",
	"node.js":    "nodejs",
	"react.js":   "react",
	"reactjs":    "react",
	"tf":         "terraform",
	"ml":         "machine learning",
	"ai":         "artificial intelligence",
	"devops":     "devops",
	"sre":        "site reliability",
	"frontend":   "front end",
	"backend":    "back end",
	"full-stack": "full stack",
	"fullstack":  "full stack",
}

// Tokenize lowercases, strips punctuation, drops stop words, and applies
// light suffix stemming plus synonym normalization. The same pipeline runs
// on both resume and job text so presence sets are directly comparable.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '/' && r != '.' && r != '-' && r != '+' && r != '#'
	})

	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := strings.Trim(field, "./-")
		if token == "" || stopWords[token] {
			continue
		}
		if canonical, ok := synonyms[token]; ok {
			token = canonical
		} else {
			token = stem(token)
		}
		if token != "" && !stopWords[token] {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// stem applies conservative suffix stripping: plural s/es, -ing, -ed.
// Deliberately light; anything fancier risks conflating unrelated skills.
func stem(token string) string {
	if len(token) <= 3 {
		return token
	}
	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 4:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "ing") && len(token) > 5:
		return token[:len(token)-3]
	case strings.HasSuffix(token, "ed") && len(token) > 4:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss"):
		return token[:len(token)-1]
	default:
		return token
	}
}

// presenceSet builds a lookup set from tokenized text.
func presenceSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		set[token] = true
	}
	return set
}
