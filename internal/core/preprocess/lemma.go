package preprocess

// Lemmatizer maps a word to its dictionary base form
// Out-of-vocabulary words come back unchanged
type Lemmatizer interface {
	Lemmatize(word string) string
}

// Lemmatize replaces every word with its base form from l
// The lemmatizer owns whatever state it keeps (caches included); this step
// only calls through
func Lemmatize(l Lemmatizer) Transform { return lemmatize{l: l} }

type lemmatize struct{ l Lemmatizer }

func (t lemmatize) Apply(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = t.l.Lemmatize(w)
	}
	return out
}
