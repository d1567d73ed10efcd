package types

// LanguageResult is the outcome of language detection for a text span.
type LanguageResult struct {
	Lang       string  `json:"lang"`
	RTL        bool    `json:"rtl"`
	Confidence float64 `json:"confidence"`
}

// LanguageReport is the per-language portion of a score report.
type LanguageReport struct {
	Score float64  `json:"score"`
	Gaps  []string `json:"gaps"`
	RTL   bool     `json:"rtl"`
}

// QuickWin is a low-effort, high-impact suggested edit.
type QuickWin struct {
	Text     string  `json:"text"`
	Impact   float64 `json:"impact"`
	Category string  `json:"category"`
	QuickWin bool    `json:"quick_win"`
}

// ScoreReport is the compatibility score between a resume and a job
// description. Languages maps language code to its sub-report; every
// language crossing the presence threshold in either input gets an entry.
type ScoreReport struct {
	Score           float64                   `json:"score"`
	MissingKeywords []string                  `json:"missing_keywords"`
	Languages       map[string]LanguageReport `json:"languages"`
	QuickWins       []QuickWin                `json:"quick_wins,omitempty"`
}
