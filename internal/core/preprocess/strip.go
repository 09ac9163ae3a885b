package preprocess

import (
	"regexp"
	"strings"
)

// ASCII punctuation, same set the masks and markers come from
const punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	digitRE    = regexp.MustCompile(`[0-9]+`)
	nonAlphaRE = regexp.MustCompile(`[^a-zA-Z]+`)
)

// StripPunctuation blanks punctuation out of every word and re-splits, so
// one word can expand into several or vanish entirely
// When all is false the marker characters # @ < > survive, keeping
// hashtags, handles and mask tokens in one piece
func StripPunctuation(all bool) Transform {
	var t punctStrip
	for _, r := range punctuation {
		t.strip[r] = true
	}
	if !all {
		for _, r := range "#@<>" {
			t.strip[r] = false
		}
	}
	return t
}

type punctStrip struct{ strip [128]bool }

func (t punctStrip) Apply(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		blanked := strings.Map(func(r rune) rune {
			if r < 128 && t.strip[r] {
				return ' '
			}
			return r
		}, w)
		out = append(out, strings.Fields(blanked)...)
	}
	return out
}

// StripDigits removes digit characters from every word
// Words may come out empty; pair with DropEmpty when that matters
func StripDigits() Transform { return regexSub{re: digitRE, repl: ""} }

// StripNonAlphabet removes everything outside a-z and A-Z from every word
func StripNonAlphabet() Transform { return regexSub{re: nonAlphaRE, repl: ""} }

// CollapseRepeats shrinks runs of three or more identical lowercase letters
// down to a single letter; runs of two are left alone, as is anything
// outside a-z
func CollapseRepeats() Transform { return collapseRepeats{} }

type collapseRepeats struct{}

func (collapseRepeats) Apply(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = collapseWord(w)
	}
	return out
}

func collapseWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	rs := []rune(w)
	for i := 0; i < len(rs); {
		r := rs[i]
		n := i + 1
		for n < len(rs) && rs[n] == r {
			n++
		}
		run := n - i
		if run >= 3 && r >= 'a' && r <= 'z' {
			run = 1
		}
		for k := 0; k < run; k++ {
			b.WriteRune(r)
		}
		i = n
	}
	return b.String()
}
