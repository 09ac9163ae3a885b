package preprocess

import "strings"

// Strings applies pipe to every input and keeps the results that still carry
// text after trimming. One input yields zero or one outputs, order is
// preserved, so the result is never longer than the input
func Strings(batch []string, pipe Pipeline) []string {
	out := make([]string, 0, len(batch))
	for _, s := range batch {
		s = strings.TrimSpace(pipe.Run(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Record is an item owning a rewritable text field plus metadata the
// pipeline leaves alone
type Record[T any] interface {
	Clone() T
	TextValue() string
	SetText(text string)
}

// Records runs pipe over a fresh copy of every record and returns the
// copies, 1:1 with the input. Records whose text ends up empty are kept.
// The input batch is never mutated; callers keep their originals
func Records[T Record[T]](batch []T, pipe Pipeline) []T {
	out := make([]T, len(batch))
	for i, r := range batch {
		c := r.Clone()
		c.SetText(pipe.Run(c.TextValue()))
		out[i] = c
	}
	return out
}
