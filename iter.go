// Package legacyfmt parses Minecraft's legacy inline formatting codes
// (a start character followed by a single color or style character,
// vanilla `§`, community tooling often `&`) into a sequence of styled
// text spans, replicating the vanilla client's quirks: color codes clear
// the active styles, the reset code clears everything, anything that is
// not a valid code passes through as literal text, and whitespace styled
// with strikethrough collapses into a solid line.
package legacyfmt

import "unicode/utf8"

// parse states, flattened from the two-level machine:
// gathering-styles (expectingStartChar, expectingFmtCode) runs while only
// format codes have been seen since the last span; gathering-text
// (waitingForStartChar, expectingEndChar) runs once literal text commits
// the pending span.
type iterState uint8

const (
	expectingStartChar iterState = iota
	expectingFmtCode
	waitingForStartChar
	expectingEndChar
)

// SpanIter parses an input string into Spans, pulled one at a time with
// Next. It walks the input once, left to right, carrying the current
// color and style set across codes; spans alias the input rather than
// copying it.
//
// A SpanIter is forward-only and not restartable. Parsing the same input
// again requires a new iterator. A single iterator must not be shared
// across goroutines, but independent iterators are fully independent.
type SpanIter struct {
	buf string
	pos int

	// The character that introduces a format code. The vanilla client
	// uses '§'; community tooling often uses '&'. Must not change once
	// iteration has begun.
	startChar rune

	color  Color
	styles Styles
	done   bool
}

// NewSpanIter returns an iterator over the spans of s, using the vanilla
// '§' start character.
func NewSpanIter(s string) *SpanIter {
	return &SpanIter{
		buf:       s,
		startChar: '§',
		color:     White,
	}
}

// WithStartChar sets the start character and returns the iterator, for
// chaining off NewSpanIter. Call it before the first Next.
func (it *SpanIter) WithStartChar(c rune) *SpanIter {
	it.startChar = c
	return it
}

// SetStartChar sets the start character. Call it before the first Next.
func (it *SpanIter) SetStartChar(c rune) {
	it.startChar = c
}

// setColor applies a color code. Per the vanilla client, selecting a
// color also clears the active styles.
func (it *SpanIter) setColor(color Color) {
	it.color = color
	it.styles = 0
}

// addStyle applies a style code. Styles accumulate.
func (it *SpanIter) addStyle(style Styles) {
	it.styles.Insert(style)
}

// reset applies the reset code, restoring the default state.
func (it *SpanIter) reset() {
	it.color = White
	it.styles = 0
}

func isReset(c rune) bool {
	return c == 'r' || c == 'R'
}

// The vanilla client's whitespace set: space, tab, newline, form feed,
// carriage return. Vertical tab is not in it.
func isAllASCIIWhitespace(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\n', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

// makeSpan classifies buf[start:end] under the current state.
func (it *SpanIter) makeSpan(start, end int) Span {
	text := it.buf[start:end]
	if it.color == White && it.styles.IsEmpty() {
		return Plain(text)
	}
	if it.styles.Contains(StyleStrikethrough) && isAllASCIIWhitespace(text) {
		return StrikethroughWhitespace(text, it.color, it.styles)
	}
	return Styled(text, it.color, it.styles)
}

// Next returns the next span and true, or a zero Span and false once the
// input is exhausted. Exhaustion is final; further calls keep returning
// false.
//
// When a valid format code ends a pending text run, the run is finalized
// under the state that preceded the code, and the code is then applied so
// the following span picks it up.
func (it *SpanIter) Next() (Span, bool) {
	if it.done {
		return Span{}, false
	}

	state := expectingStartChar
	spanStart, spanEnd := -1, -1

	for it.pos < len(it.buf) {
		idx := it.pos
		c, size := utf8.DecodeRuneInString(it.buf[it.pos:])
		it.pos += size

		switch state {
		case expectingStartChar:
			spanStart = idx
			if c == it.startChar {
				state = expectingFmtCode
			} else {
				state = waitingForStartChar
			}

		case expectingFmtCode:
			if color, ok := ColorFromChar(c); ok {
				it.setColor(color)
			} else if style, ok := StyleFromChar(c); ok {
				it.addStyle(style)
			} else if isReset(c) {
				it.reset()
			} else {
				// Not a valid code; the start char was literal text.
				state = waitingForStartChar
				continue
			}
			spanStart = -1
			state = expectingStartChar

		case waitingForStartChar:
			if c == it.startChar {
				spanEnd = idx
				state = expectingEndChar
			}

		case expectingEndChar:
			// Only a valid code ends the pending span. The code is
			// applied after finalizing so the next span starts from it.
			if color, ok := ColorFromChar(c); ok {
				span := it.makeSpan(spanStart, spanEnd)
				it.setColor(color)
				return span, true
			}
			if style, ok := StyleFromChar(c); ok {
				span := it.makeSpan(spanStart, spanEnd)
				it.addStyle(style)
				return span, true
			}
			if isReset(c) {
				span := it.makeSpan(spanStart, spanEnd)
				it.reset()
				return span, true
			}
			// False alarm; the start char is absorbed into the run.
			spanEnd = -1
			state = waitingForStartChar
		}
	}

	it.done = true
	if spanStart >= 0 {
		return it.makeSpan(spanStart, len(it.buf)), true
	}
	return Span{}, false
}

// Parse eagerly collects every span of s. It is a convenience for tests
// and tooling; prefer pulling from a SpanIter when rendering.
func Parse(s string) []Span {
	return NewSpanIter(s).Collect()
}

// Collect drains the iterator into a slice.
func (it *SpanIter) Collect() []Span {
	var spans []Span
	for {
		span, ok := it.Next()
		if !ok {
			return spans
		}
		spans = append(spans, span)
	}
}
