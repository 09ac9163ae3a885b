// Package preprocess normalizes raw tweet text into a canonical form for
// downstream analysis
// A pipeline has three kinds of parts
// 1 a Splitter that turns whole text into a word list
// 2 an ordered list of Transforms over the word list
// 3 a Joiner that turns the word list back into whole text
// Word-shaped steps can only ever see word lists, so a mis-ordered pipeline
// fails to compile instead of failing at run time
package preprocess

import "strings"

// Transform rewrites one word list into another
// Implementations hold only immutable configuration set at construction and
// may be reused across many inputs
type Transform interface {
	Apply(words []string) []string
}

// Splitter turns whole text into an ordered word list
type Splitter interface {
	Split(text string) []string
}

// Joiner turns a word list back into whole text
type Joiner interface {
	Join(words []string) string
}

// Whitespace splits whole text on runs of whitespace
type Whitespace struct{}

// Split implements Splitter
func (Whitespace) Split(text string) []string { return strings.Fields(text) }

// SpaceJoin joins words with a single space
type SpaceJoin struct{}

// Join implements Joiner
func (SpaceJoin) Join(words []string) string { return strings.Join(words, " ") }

// Pipeline is a caller-assembled normalization sequence
// Zero-value ends default to Whitespace and SpaceJoin
// No validation happens at assembly time; a step configured oddly (say a
// non-positive minimum length) just does whatever its own logic yields
type Pipeline struct {
	Split Splitter
	Steps []Transform
	Join  Joiner
}

// Run threads a single text through the full pipeline
func (p Pipeline) Run(text string) string {
	sp := p.Split
	if sp == nil {
		sp = Whitespace{}
	}
	jn := p.Join
	if jn == nil {
		jn = SpaceJoin{}
	}
	words := sp.Split(text)
	for _, t := range p.Steps {
		words = t.Apply(words)
	}
	return jn.Join(words)
}
