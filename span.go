package legacyfmt

import (
	"strings"
	"unicode/utf8"
)

// SpanKind discriminates the three span shapes.
type SpanKind uint8

const (
	// KindPlain is text with no styling at all; render it with the
	// defaults (White, no styles).
	KindPlain SpanKind = iota
	// KindStyled is text with a resolved color and style set.
	KindStyled
	// KindStrikethroughWhitespace is a run of whitespace that had the
	// strikethrough style active. The vanilla client draws a solid line
	// over such a run rather than striking individual spaces, so
	// renderers should substitute a line (or dashes) of the same length.
	KindStrikethroughWhitespace
)

// Span is a contiguous slice of the parsed input along with the color and
// style state that applied to it.
//
// Text always aliases the string the span was parsed from; it is never a
// copy. Do not hold spans past the lifetime of that string's owner.
type Span struct {
	Kind   SpanKind
	Text   string
	Color  Color
	Styles Styles
}

// Plain returns a KindPlain span over text.
func Plain(text string) Span {
	return Span{Kind: KindPlain, Text: text, Color: White}
}

// Styled returns a KindStyled span over text.
func Styled(text string, color Color, styles Styles) Span {
	return Span{Kind: KindStyled, Text: text, Color: color, Styles: styles}
}

// StrikethroughWhitespace returns a KindStrikethroughWhitespace span over
// text, which should consist entirely of whitespace.
func StrikethroughWhitespace(text string, color Color, styles Styles) Span {
	return Span{Kind: KindStrikethroughWhitespace, Text: text, Color: color, Styles: styles}
}

// Len returns the number of characters the span covers in the input.
func (s Span) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// String returns the span's visible text without color: the covered input
// for plain and styled spans, and a dash per character for collapsed
// strikethrough whitespace.
func (s Span) String() string {
	if s.Kind == KindStrikethroughWhitespace {
		return strings.Repeat("-", s.Len())
	}
	return s.Text
}
