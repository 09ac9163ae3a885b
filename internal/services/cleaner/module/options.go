package module

import "scrubjay/internal/platform/config"

// Options holds configuration settings for the cleaner module
type Options struct {
	Workers       int
	PageSize      int
	MaxRangeHours int
	DryRun        bool

	MinWordLength int
	KeepMarkers   bool
	MentionToken  string
	URLToken      string
	Lemmatize     bool
	FoldUnicode   bool
	StopTerms     []string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	cf := cfg.Prefix("CORE_CLEAN_")
	return Options{
		Workers:       cf.MayInt("WORKERS", 2),
		PageSize:      cf.MayInt("PAGE_SIZE", 5000),
		MaxRangeHours: cf.MayInt("MAX_RANGE_HOURS", 0),
		DryRun:        cf.MayBool("DRY_RUN", false),

		MinWordLength: cf.MayInt("MIN_WORD_LENGTH", 0),
		KeepMarkers:   cf.MayBool("KEEP_MARKERS", true),
		MentionToken:  cf.MayString("MENTION_TOKEN", ""),
		URLToken:      cf.MayString("URL_TOKEN", ""),
		Lemmatize:     cf.MayBool("LEMMATIZE", false),
		FoldUnicode:   cf.MayBool("FOLD_UNICODE", true),
		StopTerms:     cf.MayCSV("STOP_TERMS", nil),
	}
}
