// Package lemma provides a small rule-based English noun lemmatizer
// It approximates WordNet-style morphy: an exception table for irregular
// plurals plus suffix detachment, without the vocabulary check. Unknown
// words pass through unchanged
package lemma

import (
	"strings"
	"sync"
)

// irregular plurals the detachment rules cannot reach
var exceptions = map[string]string{
	"children": "child",
	"feet":     "foot",
	"geese":    "goose",
	"lives":    "life",
	"mice":     "mouse",
	"oxen":     "ox",
	"people":   "person",
	"teeth":    "tooth",
	"wives":    "wife",
}

// noun suffix detachment, first match wins
var detach = []struct{ suffix, repl string }{
	{"ches", "ch"},
	{"shes", "sh"},
	{"sses", "ss"},
	{"xes", "x"},
	{"zes", "z"},
	{"ies", "y"},
	{"men", "man"},
	{"s", ""},
}

// Dict lemmatizes words with an internal cache
// Safe for concurrent use
type Dict struct {
	mu    sync.RWMutex
	cache map[string]string
}

// New constructs a Dict with an empty cache
func New() *Dict { return &Dict{cache: make(map[string]string)} }

// Lemmatize returns the base form of word
func (d *Dict) Lemmatize(word string) string {
	d.mu.RLock()
	base, ok := d.cache[word]
	d.mu.RUnlock()
	if ok {
		return base
	}
	base = lemmatize(word)
	d.mu.Lock()
	d.cache[word] = base
	d.mu.Unlock()
	return base
}

func lemmatize(w string) string {
	if len(w) < 3 {
		return w
	}
	if base, ok := exceptions[w]; ok {
		return base
	}
	for _, r := range detach {
		if !strings.HasSuffix(w, r.suffix) {
			continue
		}
		// a bare trailing s is only a plural after a vowelish stem:
		// glass, bus, basis and friends keep theirs
		if r.suffix == "s" &&
			(strings.HasSuffix(w, "ss") || strings.HasSuffix(w, "us") || strings.HasSuffix(w, "is")) {
			continue
		}
		stem := w[:len(w)-len(r.suffix)] + r.repl
		if len(stem) < 2 {
			return w
		}
		return stem
	}
	return w
}
