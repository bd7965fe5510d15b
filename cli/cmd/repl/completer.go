package repl

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/rustcfg/cfg"
)

// helperNames are the lookup functions bound into every evaluation
// environment, offered as completion candidates alongside predicate keys.
var helperNames = []string{"has", "value", "values", "target"}

// candidates returns the completion candidate list for a Set: every
// reported predicate key plus the helper names, in a stable order.
func candidates(set *cfg.Set) []string {
	keys := set.Keys()

	out := make([]string, 0, len(keys)+len(helperNames))
	out = append(out, keys...)
	out = append(out, helperNames...)

	return out
}

// isWordBoundary returns true if the rune is a word delimiter for
// completion purposes. This includes whitespace, the member-access dot,
// and expr-lang operator/punctuation characters.
func isWordBoundary(r rune) bool {
	switch r {
	case '.', ' ', '\t',
		'(', ')', '[', ']', '"', '\'',
		'+', '-', '*', '/', '%',
		'<', '>', '=', '!',
		'&', '|', ',', '?', ':', ';':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input. Words are delimited by whitespace, dots, and
// expr-lang operator/punctuation characters. Returns an empty word when
// the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// match returns fuzzy matches for the word at the cursor against the
// candidate list, best match first. An empty word yields no matches.
func match(input string, cursor int, candidates []string) (
	matches fuzzy.Matches, start, end int,
) {
	word, start, end := wordBounds(input, cursor)
	if word == "" {
		return nil, start, end
	}

	return fuzzy.Find(word, candidates), start, end
}

// renderCandidateBar renders the horizontal completion bar, highlighting
// the selected candidate while tab-cycling. The bar is truncated to fit
// width.
func renderCandidateBar(
	matches fuzzy.Matches, selected int, cycling bool, width int,
) string {
	var (
		sb   strings.Builder
		used int
	)

	for i, m := range matches {
		if used+len(m.Str)+2 > width {
			break
		}

		if i > 0 {
			sb.WriteString("  ")

			used += 2
		}

		if cycling && i == selected {
			sb.WriteString(selectedStyle.Render(m.Str))
		} else {
			sb.WriteString(suggestionStyle.Render(m.Str))
		}

		used += len(m.Str)
	}

	return sb.String()
}
