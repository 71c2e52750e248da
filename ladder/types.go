package ladder

import (
	"context"
	"iter"

	"github.com/katalvlaran/wordladder/core"
)

// Ladder is an ordered chain of words, each differing from the previous one
// in exactly one position. A single word is a ladder of length 0.
type Ladder []string

// Len returns the number of substitutions (edges) in the ladder.
func (l Ladder) Len() int {
	if len(l) == 0 {
		return 0
	}
	return len(l) - 1
}

// Source returns the first word, or "" for an empty ladder.
func (l Ladder) Source() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Target returns the last word, or "" for an empty ladder.
func (l Ladder) Target() string {
	if len(l) == 0 {
		return ""
	}
	return l[len(l)-1]
}

// Option configures an enumeration.
type Option func(*options)

type options struct {
	ctx       context.Context
	maxLength int
	onVisit   func(word string, distance int)
}

// WithContext lets ctx cut the enumeration short. The sequence then simply
// ends and Sequence.Err reports ctx.Err().
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxLength limits the search to ladders of at most n substitutions.
// When the shortest ladder is longer, the sequence is empty. n <= 0 means
// no limit.
func WithMaxLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxLength = n
		}
	}
}

// WithOnVisit calls fn for every word the breadth-first layering visits,
// with its distance from the source.
func WithOnVisit(fn func(word string, distance int)) Option {
	return func(o *options) {
		o.onVisit = fn
	}
}

// Sequence is a lazy, single-use stream of shortest ladders.
//
// No work is done until All is ranged over. Only the first range produces
// ladders; any later range yields nothing.
type Sequence struct {
	g      *core.WordGraph
	source string
	target string
	opts   options

	used bool
	err  error
}

// All returns the ladders as an iterator. Stopping the range early stops the
// search at once.
func (s *Sequence) All() iter.Seq[Ladder] {
	return func(yield func(Ladder) bool) {
		if s.used {
			return
		}
		s.used = true
		s.run(yield)
	}
}

// Err reports the context error that ended the sequence early, if any.
func (s *Sequence) Err() error { return s.err }
