package scoring

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// maxQuickWins caps how many suggestions one report carries.
const maxQuickWins = 5

// quickWins generates short actionable suggestions from the report's gaps,
// served through the TTL cache so repeated scoring of the same pair stays
// stable and cheap.
func (e *Engine) quickWins(resumeText, jobText string, report *types.ScoreReport) []types.QuickWin {
	key := quickWinCacheKey(resumeText, jobText)
	if cached, ok := e.cache.get(key); ok {
		return cached
	}

	wins := buildQuickWins(resumeText, report)
	e.cache.put(key, wins)
	return wins
}

// quickWinCacheKey hashes the normalized resume text together with the job
// title line and required-skill list.
func quickWinCacheKey(resumeText, jobText string) string {
	title := ""
	var required []string
	for i, line := range strings.Split(jobText, "\n") {
		if i == 0 {
			title = strings.TrimSpace(line)
			continue
		}
		required = append(required, Tokenize(line)...)
	}

	h := sha256.New()
	h.Write([]byte(normalizeForKey(resumeText)))
	h.Write([]byte{0})
	h.Write([]byte(strings.ToLower(title)))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(required, " ")))
	return hex.EncodeToString(h.Sum(nil))
}

func normalizeForKey(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// buildQuickWins turns the highest-impact gaps into concrete edit
// suggestions. Impact decays down the missing-keyword ordering, which is
// already sorted by estimated impact.
func buildQuickWins(resumeText string, report *types.ScoreReport) []types.QuickWin {
	wins := make([]types.QuickWin, 0, maxQuickWins)

	for i, keyword := range report.MissingKeywords {
		if len(wins) >= maxQuickWins-1 {
			break
		}
		wins = append(wins, types.QuickWin{
			Text:     fmt.Sprintf("Add %q to your skills or weave it into an achievement bullet", keyword),
			Impact:   round2(10.0 / float64(i+1)),
			Category: "keywords",
			QuickWin: true,
		})
	}

	if len(strings.Fields(resumeText)) > 0 && len(strings.Fields(firstLine(resumeText))) < 8 {
		wins = append(wins, types.QuickWin{
			Text:     "Expand your summary to two or three sentences that mirror the posting's language",
			Impact:   3.0,
			Category: "summary",
			QuickWin: true,
		})
	}

	return wins
}

func firstLine(text string) string {
	if idx := strings.IndexByte(text, '\n'); idx >= 0 {
		return text[:idx]
	}
	return text
}
