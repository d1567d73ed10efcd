package scoring

import (
	"math"
	"sort"
	"unicode"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/language"
	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// minPresenceTokens is the minimal token count a language needs in either
// input before it earns its own sub-report.
const minPresenceTokens = 5

// Scoring weights: exact coverage of required tokens dominates; repeated
// mention in the posting raises a token's impact.
const (
	baseTokenWeight   = 1.0
	repeatTokenWeight = 0.5
)

// Options controls optional scoring behavior.
type Options struct {
	GenerateQuickWins bool
}

// Engine scores resumes against job text. It is safe for concurrent use;
// the quick-win cache is the only shared state.
type Engine struct {
	cache *quickWinCache
}

// NewEngine creates a scoring engine with a bounded quick-win cache.
func NewEngine() *Engine {
	return &Engine{cache: newQuickWinCache(quickWinTTL, quickWinCapacity)}
}

// languageBucket accumulates tokens for one language, preserving first-seen
// order so reports are deterministic.
type languageBucket struct {
	order  []string
	counts map[string]int
}

func newBucket() *languageBucket {
	return &languageBucket{counts: make(map[string]int)}
}

func (b *languageBucket) add(token string) {
	if _, seen := b.counts[token]; !seen {
		b.order = append(b.order, token)
	}
	b.counts[token]++
}

func (b *languageBucket) total() int {
	n := 0
	for _, c := range b.counts {
		n += c
	}
	return n
}

// bucketByLanguage assigns each token to a language by its script. Latin
// tokens go to the span's detected Latin language; Hebrew and Arabic tokens
// carry their script's language regardless of the surrounding span.
func bucketByLanguage(text string, buckets map[string]*languageBucket) {
	span := types.LanguageResult{Lang: "en"}
	if text != "" {
		span = language.Detect(text)
	}
	latinLang := "en"
	if span.Lang != "mixed" && span.Lang != "he" && span.Lang != "ar" && span.Lang != "" {
		latinLang = span.Lang
	}

	for _, token := range Tokenize(text) {
		lang := latinLang
		switch scriptOf(token) {
		case "hebrew":
			lang = "he"
		case "arabic":
			lang = "ar"
		}
		bucket, ok := buckets[lang]
		if !ok {
			bucket = newBucket()
			buckets[lang] = bucket
		}
		bucket.add(token)
	}
}

func scriptOf(token string) string {
	for _, r := range token {
		if unicode.Is(unicode.Hebrew, r) {
			return "hebrew"
		}
		if unicode.Is(unicode.Arabic, r) {
			return "arabic"
		}
	}
	return "latin"
}

// Score computes the compatibility report for a resume against job text.
// Identical inputs yield identical reports; quick-win ordering is stable
// within the cache TTL.
func (e *Engine) Score(resume *types.ResumeDocument, jobText string, opts Options) *types.ScoreReport {
	resumeText := ""
	if resume != nil {
		resumeText = resume.PlainText()
	}

	jobBuckets := make(map[string]*languageBucket)
	resumeBuckets := make(map[string]*languageBucket)
	bucketByLanguage(jobText, jobBuckets)
	bucketByLanguage(resumeText, resumeBuckets)

	report := &types.ScoreReport{
		MissingKeywords: []string{},
		Languages:       make(map[string]types.LanguageReport),
	}

	type weightedGap struct {
		token  string
		weight float64
	}
	var allGaps []weightedGap

	totalWeight := 0.0
	matchedWeight := 0.0

	for _, lang := range sortedLanguages(jobBuckets, resumeBuckets) {
		jobBucket := jobBuckets[lang]
		resumeBucket := resumeBuckets[lang]
		if !crossesThreshold(lang, jobBucket, resumeBucket) {
			continue
		}

		langJobWeight := 0.0
		langMatchedWeight := 0.0
		var gaps []string

		resumeSet := map[string]bool{}
		if resumeBucket != nil {
			resumeSet = presenceSet(resumeBucket.order)
		}

		if jobBucket != nil {
			for _, token := range jobBucket.order {
				weight := baseTokenWeight + repeatTokenWeight*float64(jobBucket.counts[token]-1)
				langJobWeight += weight
				if resumeSet[token] {
					langMatchedWeight += weight
				} else {
					gaps = append(gaps, token)
					allGaps = append(allGaps, weightedGap{token: token, weight: weight})
				}
			}
		}

		langScore := 100.0
		if langJobWeight > 0 {
			langScore = 100.0 * langMatchedWeight / langJobWeight
		}
		if gaps == nil {
			gaps = []string{}
		}
		sortGapsByImpact(gaps, jobBucket)

		report.Languages[lang] = types.LanguageReport{
			Score: round2(langScore),
			Gaps:  gaps,
			RTL:   lang == "he" || lang == "ar",
		}

		totalWeight += langJobWeight
		matchedWeight += langMatchedWeight
	}

	if totalWeight > 0 {
		report.Score = round2(100.0 * matchedWeight / totalWeight)
	} else {
		report.Score = 0
	}

	// Order missing keywords by estimated impact, descending; ties keep
	// first-seen order for determinism.
	sort.SliceStable(allGaps, func(i, j int) bool {
		return allGaps[i].weight > allGaps[j].weight
	})
	for _, gap := range allGaps {
		report.MissingKeywords = append(report.MissingKeywords, gap.token)
	}

	if opts.GenerateQuickWins {
		report.QuickWins = e.quickWins(resumeText, jobText, report)
	}

	return report
}

// crossesThreshold applies the minimal-presence rule. English is always
// evaluated when any Latin content exists in either input.
func crossesThreshold(lang string, job, resume *languageBucket) bool {
	if lang == "en" && (job != nil && job.total() > 0 || resume != nil && resume.total() > 0) {
		return true
	}
	if job != nil && job.total() >= minPresenceTokens {
		return true
	}
	if resume != nil && resume.total() >= minPresenceTokens {
		return true
	}
	return false
}

// sortedLanguages yields the union of languages across both inputs in a
// deterministic order.
func sortedLanguages(a, b map[string]*languageBucket) []string {
	seen := make(map[string]bool)
	var langs []string
	for lang := range a {
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	for lang := range b {
		if !seen[lang] {
			seen[lang] = true
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	return langs
}

// sortGapsByImpact orders gap tokens by job-text frequency descending,
// preserving first-seen order for equal counts.
func sortGapsByImpact(gaps []string, jobBucket *languageBucket) {
	if jobBucket == nil {
		return
	}
	sort.SliceStable(gaps, func(i, j int) bool {
		return jobBucket.counts[gaps[i]] > jobBucket.counts[gaps[j]]
	})
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
