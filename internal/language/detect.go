// Package language classifies text spans by script, language, and
// directionality using character-level heuristics, with an optional external
// classifier override.
package language

import (
	"strings"
	"unicode"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Script-ratio thresholds for the heuristic path.
const (
	// hebrewDominantRatio is the Hebrew share of classifiable runes above
	// which a span is confidently Hebrew.
	hebrewDominantRatio = 0.75
	// minorScriptRatio is the share above which a secondary script counts
	// as a real presence rather than noise.
	minorScriptRatio = 0.15
	// confidentThreshold is the floor for a single confident language.
	confidentThreshold = 0.6
	// mixedConfidenceFloor and mixedConfidenceCeil bound mixed-content
	// confidence to its published band.
	mixedConfidenceFloor = 0.4
	mixedConfidenceCeil  = 0.65
)

// Detect classifies a text span by script blocks. Fully Hebrew content maps
// to he/rtl; spans with meaningful Hebrew and Latin presence map to
// mixed/rtl; otherwise the span is treated as Latin and a lexical heuristic
// picks the language.
func Detect(text string) types.LanguageResult {
	var hebrew, latin, arabic, cyrillic, classifiable int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hebrew, r):
			hebrew++
			classifiable++
		case unicode.Is(unicode.Arabic, r):
			arabic++
			classifiable++
		case unicode.Is(unicode.Cyrillic, r):
			cyrillic++
			classifiable++
		case unicode.IsLetter(r):
			latin++
			classifiable++
		}
	}

	if classifiable == 0 {
		return types.LanguageResult{Lang: "en", RTL: false, Confidence: mixedConfidenceFloor}
	}

	hebrewRatio := float64(hebrew) / float64(classifiable)
	latinRatio := float64(latin) / float64(classifiable)

	if hebrewRatio >= hebrewDominantRatio {
		return types.LanguageResult{Lang: "he", RTL: true, Confidence: clamp(hebrewRatio, confidentThreshold, 1.0)}
	}

	if hebrewRatio > minorScriptRatio && latinRatio > minorScriptRatio {
		// Script switch inside one span.
		dominant := hebrewRatio
		if latinRatio > dominant {
			dominant = latinRatio
		}
		return types.LanguageResult{
			Lang:       "mixed",
			RTL:        true,
			Confidence: clampOpen(dominant, mixedConfidenceFloor, mixedConfidenceCeil),
		}
	}

	if float64(arabic)/float64(classifiable) >= hebrewDominantRatio {
		return types.LanguageResult{Lang: "ar", RTL: true, Confidence: clamp(float64(arabic)/float64(classifiable), confidentThreshold, 1.0)}
	}
	if float64(cyrillic)/float64(classifiable) >= hebrewDominantRatio {
		return types.LanguageResult{Lang: "ru", RTL: false, Confidence: clamp(float64(cyrillic)/float64(classifiable), confidentThreshold, 1.0)}
	}

	return types.LanguageResult{
		Lang:       sniffLatinLanguage(text),
		RTL:        false,
		Confidence: clamp(latinRatio, confidentThreshold, 1.0),
	}
}

// latinMarkers maps a language code to function words common enough to sniff
// the language of short Latin-script spans. English is the default.
var latinMarkers = map[string][]string{
	"es": {" el ", " la ", " los ", " las ", " con ", " para ", " años ", " experiencia "},
	"fr": {" le ", " la ", " les ", " des ", " avec ", " pour ", " années ", " expérience "},
}

func sniffLatinLanguage(text string) string {
	padded := " " + strings.ToLower(text) + " "
	best := "en"
	bestHits := 1 // require at least two marker hits to leave the default
	for lang, markers := range latinMarkers {
		hits := 0
		for _, marker := range markers {
			hits += strings.Count(padded, marker)
		}
		if hits > bestHits {
			best = lang
			bestHits = hits
		}
	}
	return best
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampOpen limits v to (lo, hi], nudging values at or below lo just inside
// the band.
func clampOpen(v, lo, hi float64) float64 {
	if v > hi {
		return hi
	}
	if v <= lo {
		return lo + 0.01
	}
	return v
}
