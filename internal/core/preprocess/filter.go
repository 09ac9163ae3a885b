package preprocess

import (
	"strings"
	"unicode/utf8"
)

// MinLength drops words whose trimmed form is shorter than n runes and
// trims the survivors. n <= 0 filters nothing
func MinLength(n int) Transform { return minLength{n: n} }

type minLength struct{ n int }

func (t minLength) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if utf8.RuneCountInString(w) >= t.n {
			out = append(out, w)
		}
	}
	return out
}

// DropContaining drops words that contain term as a substring
// With ignoreCase both sides are compared lowercased; survivors keep their
// original casing
func DropContaining(term string, ignoreCase bool) Transform {
	if ignoreCase {
		term = strings.ToLower(term)
	}
	return dropContaining{term: term, fold: ignoreCase}
}

type dropContaining struct {
	term string
	fold bool
}

func (t dropContaining) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		probe := w
		if t.fold {
			probe = strings.ToLower(w)
		}
		if !strings.Contains(probe, t.term) {
			out = append(out, w)
		}
	}
	return out
}

// DropExact drops words that exactly equal any of terms
// With ignoreCase the term set is lowercased once at construction and the
// surviving words come out lowercased too. That word-lowering side effect
// matches the behavior this replaces and is kept on purpose; note the
// asymmetry that without ignoreCase the term set is used as given
func DropExact(terms []string, ignoreCase bool) Transform {
	set := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if ignoreCase {
			term = strings.ToLower(term)
		}
		set[term] = struct{}{}
	}
	return dropExact{set: set, fold: ignoreCase}
}

type dropExact struct {
	set  map[string]struct{}
	fold bool
}

func (t dropExact) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if t.fold {
			w = strings.ToLower(w)
		}
		if _, drop := t.set[w]; !drop {
			out = append(out, w)
		}
	}
	return out
}

// DropEmpty drops words that trim to nothing; survivors are kept as-is
func DropEmpty() Transform { return dropEmpty{} }

type dropEmpty struct{}

func (dropEmpty) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if strings.TrimSpace(w) != "" {
			out = append(out, w)
		}
	}
	return out
}
