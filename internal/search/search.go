// Package search finds regular-expression matches in a buffer, one
// line at a time. Matching never wraps around the buffer edges and
// never crosses a line boundary.
package search

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/quelltext/ted/internal/buffer"
	"github.com/quelltext/ted/internal/logger"
	"github.com/quelltext/ted/internal/textutil"
	"github.com/quelltext/ted/internal/types"
)

// Match is a found span on a single row, in rune columns. End is
// exclusive; an empty-width match has Start == End.
type Match struct {
	Row   int
	Start int
	End   int
}

// Range returns the match as a (start, end) position pair.
func (m Match) Range() (types.Position, types.Position) {
	return types.Position{Row: m.Row, Col: m.Start}, types.Position{Row: m.Row, Col: m.End}
}

// Engine holds the current search pattern and its compiled form. The
// pattern is compiled lazily on first use and the compiled form is
// reused until the pattern text changes. A pattern that fails to
// compile does not replace the compiled form: searching continues
// with the previously active pattern, and Err reports the failure.
type Engine struct {
	pattern  string
	re       *regexp.Regexp
	err      error
	compiled bool
}

// New returns an Engine with no pattern.
func New() *Engine {
	return &Engine{}
}

// SetPattern replaces the search pattern. Compilation is deferred to
// the next search, so typing an intermediate invalid pattern costs
// nothing until it is actually used.
func (e *Engine) SetPattern(pattern string) {
	if pattern == e.pattern {
		return
	}
	e.pattern = pattern
	e.err = nil
	e.compiled = false
}

// Pattern returns the current pattern text.
func (e *Engine) Pattern() string {
	return e.pattern
}

// Err returns the compile error of the current pattern, if any. It
// only reports an error after a search has forced compilation.
func (e *Engine) Err() error {
	return e.err
}

func (e *Engine) compile() bool {
	if !e.compiled {
		e.compiled = true
		if e.pattern == "" {
			e.re, e.err = nil, nil
		} else if re, err := regexp.Compile(e.pattern); err != nil {
			// The previously active pattern stays in effect.
			e.err = fmt.Errorf("invalid search pattern %q: %w", e.pattern, err)
			logger.Debugf("Search: %v", e.err)
		} else {
			e.re, e.err = re, nil
		}
	}
	return e.re != nil
}

// Forward finds the first match strictly after cursor: on the cursor
// row it considers only matches starting at column cursor.Col+1 or
// later, then scans following rows from column 0. It does not wrap to
// the top of the buffer.
func (e *Engine) Forward(buf *buffer.Buffer, cursor types.Position) (Match, bool) {
	if !e.compile() {
		return Match{}, false
	}

	line := buf.Line(cursor.Row)
	from := textutil.ByteIndex(line, cursor.Col+1)
	if loc := e.re.FindStringIndex(line[from:]); loc != nil {
		return matchAt(cursor.Row, line, from+loc[0], from+loc[1]), true
	}

	for row := cursor.Row + 1; row < buf.LineCount(); row++ {
		line := buf.Line(row)
		if loc := e.re.FindStringIndex(line); loc != nil {
			return matchAt(row, line, loc[0], loc[1]), true
		}
	}
	return Match{}, false
}

// Backward finds the last match strictly before cursor: on the cursor
// row only matches starting before column cursor.Col count, then it
// scans preceding rows taking the last match on each. It does not
// wrap to the bottom of the buffer.
func (e *Engine) Backward(buf *buffer.Buffer, cursor types.Position) (Match, bool) {
	if !e.compile() {
		return Match{}, false
	}

	line := buf.Line(cursor.Row)
	limit := textutil.ByteIndex(line, cursor.Col)
	if m, ok := lastMatch(e.re, cursor.Row, line, limit); ok {
		return m, true
	}

	for row := cursor.Row - 1; row >= 0; row-- {
		line := buf.Line(row)
		if m, ok := lastMatch(e.re, row, line, len(line)); ok {
			return m, true
		}
	}
	return Match{}, false
}

// MatchesOnLine returns every match on one line, for highlighting.
func (e *Engine) MatchesOnLine(row int, line string) []Match {
	if !e.compile() {
		return nil
	}
	var out []Match
	for _, loc := range e.re.FindAllStringIndex(line, -1) {
		out = append(out, matchAt(row, line, loc[0], loc[1]))
	}
	return out
}

// lastMatch returns the final match whose start byte is below limit.
// FindAllStringIndex on the truncated prefix cannot be used directly
// because a match may start before limit and extend past it, so the
// scan walks forward match by match over the full line.
func lastMatch(re *regexp.Regexp, row int, line string, limit int) (Match, bool) {
	var best Match
	found := false
	from := 0
	for from <= len(line) {
		loc := re.FindStringIndex(line[from:])
		if loc == nil || from+loc[0] >= limit {
			break
		}
		best = matchAt(row, line, from+loc[0], from+loc[1])
		found = true
		if loc[1] == loc[0] {
			_, size := utf8.DecodeRuneInString(line[from+loc[0]:])
			if size == 0 {
				size = 1
			}
			from += loc[0] + size
		} else {
			from += loc[1]
		}
	}
	return best, found
}

func matchAt(row int, line string, start, end int) Match {
	return Match{
		Row:   row,
		Start: textutil.RuneIndex(line, start),
		End:   textutil.RuneIndex(line, end),
	}
}
