// Package search implements line-oriented substring search over a file that is
// loaded fully into memory.
package search

import (
	"iter"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Aman-CERP/minigrep/internal/output"
)

// Lines yields the lines of contents split on "\n".
// A trailing "\r" stays on its line, and a final terminator does not yield an
// extra empty line. Yielded lines share memory with contents.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			if !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
		}
	}
}

// Search returns, in order, every line of contents that contains query exactly.
// An empty query matches every line.
func Search(query, contents string) []string {
	var results []string
	for line := range Lines(contents) {
		if strings.Contains(line, query) {
			results = append(results, line)
		}
	}
	return results
}

// SearchCaseInsensitive returns, in order, every line of contents whose
// lowercase form contains the lowercase form of query. Lines are returned as
// they appear in contents.
func SearchCaseInsensitive(query, contents string) []string {
	lower := newLowerer()
	query = lower.String(query)

	var results []string
	for line := range Lines(contents) {
		if strings.Contains(lower.String(line), query) {
			results = append(results, line)
		}
	}
	return results
}

// Spans returns the non-overlapping byte ranges of line that match query.
// In case-insensitive mode each range is the shortest run of whole runes whose
// per-rune lowercase form starts with the lowercase query, so ranges stay valid
// when lowering changes byte length.
func Spans(line, query string, caseSensitive bool) []output.Span {
	if query == "" {
		return nil
	}
	if caseSensitive {
		return exactSpans(line, query)
	}
	return foldedSpans(line, query)
}

func exactSpans(line, query string) []output.Span {
	var spans []output.Span
	for off := 0; off < len(line); {
		i := strings.Index(line[off:], query)
		if i < 0 {
			break
		}
		start := off + i
		spans = append(spans, output.Span{Start: start, End: start + len(query)})
		off = start + len(query)
	}
	return spans
}

func foldedSpans(line, query string) []output.Span {
	lower := newLowerer()
	q := lower.String(query)
	if q == "" {
		return nil
	}

	var spans []output.Span
	for start := 0; start < len(line); {
		if end, ok := matchAt(lower, line, start, q); ok {
			spans = append(spans, output.Span{Start: start, End: end})
			start = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[start:])
		start += size
	}
	return spans
}

// matchAt lowers line rune by rune from start, consuming q as it goes, and
// returns the end of the shortest run whose lowercase form covers q.
func matchAt(lower cases.Caser, line string, start int, q string) (int, bool) {
	rest := q
	for end := start; end < len(line); {
		_, size := utf8.DecodeRuneInString(line[end:])
		l := lower.String(line[end : end+size])
		end += size

		if strings.HasPrefix(l, rest) {
			return end, true
		}
		if !strings.HasPrefix(rest, l) {
			return 0, false
		}
		rest = rest[len(l):]
	}
	return 0, false
}

// newLowerer returns the lowercase mapping used on both sides of a
// case-insensitive comparison. A Caser is stateful, so each search gets its own.
func newLowerer() cases.Caser {
	return cases.Lower(language.Und)
}
