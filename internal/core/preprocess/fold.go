package preprocess

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Lowercase maps every word to its lowercase form
func Lowercase() Transform { return lowercase{} }

type lowercase struct{}

func (lowercase) Apply(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

// pool of fresh transformer chains; order matters
// 1 NFKC compatibility normalization
// 2 strip combining marks
// 3 strip format chars ZWJ ZWNJ FEFF etc
// 4 map fullwidth forms to ASCII
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Mn)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// FoldUnicode folds each word to a plain representation: NFKC, no combining
// marks or zero-widths, fullwidth mapped to ASCII. Invalid UTF-8 bytes are
// dropped. Case is untouched; chain with Lowercase for folding
func FoldUnicode() Transform { return unicodeFold{} }

type unicodeFold struct{}

func (unicodeFold) Apply(words []string) []string {
	tr := chainPool.Get().(transform.Transformer)
	defer chainPool.Put(tr)

	out := make([]string, len(words))
	for i, w := range words {
		tr.Reset()
		ns, _, err := transform.String(tr, strings.ToValidUTF8(w, ""))
		if err != nil {
			ns = w
		}
		out[i] = ns
	}
	return out
}
