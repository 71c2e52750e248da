// Package dictionary streams word lists into a core.WordGraph.
//
// Loading is fail-fast: the first read error aborts the load and is returned
// wrapped in ErrRead. A graph whose load failed is incomplete and must not be
// queried, since a missing word could hide a shorter ladder.
package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/wordladder/core"
)

// ErrRead wraps every failure to read a word list.
var ErrRead = errors.New("dictionary: read failed")

// Graph is the part of core.WordGraph a load needs.
type Graph interface {
	Accepts(word string) bool
	Include(word string) *core.WordGraph
}

// Stats counts what a load did.
type Stats struct {
	// Lines is the number of lines read.
	Lines int
	// Accepted lines had the graph's word length.
	Accepted int
	// Rejected lines were empty or of another length.
	Rejected int
}

// Add returns the sum of two Stats.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Lines:    s.Lines + o.Lines,
		Accepted: s.Accepted + o.Accepted,
		Rejected: s.Rejected + o.Rejected,
	}
}

// Load includes every line of r into g, one word per line. Surrounding
// whitespace (including a trailing '\r') is trimmed. Lines the graph does
// not accept are counted and skipped.
//
// Errors:
//   - ErrRead wrapping the reader's error, or bufio.ErrTooLong for a line
//     longer than bufio.MaxScanTokenSize.
//   - ctx.Err() if ctx ends between lines.
func Load(ctx context.Context, r io.Reader, g Graph) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		st.Lines++
		word := strings.TrimSpace(sc.Text())
		if !g.Accepts(word) {
			st.Rejected++
			continue
		}
		g.Include(word)
		st.Accepted++
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return st, nil
}

// LoadFiles loads each file in order, stopping at the first failure.
// Read and close failures of the same file are combined.
func LoadFiles(ctx context.Context, paths []string, g Graph) (Stats, error) {
	var total Stats
	for _, path := range paths {
		st, err := loadFile(ctx, path, g)
		total = total.Add(st)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func loadFile(ctx context.Context, path string, g Graph) (st Stats, err error) {
	f, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: close %s: %w", ErrRead, path, cerr))
		}
	}()

	return Load(ctx, f, g)
}
