package legacyfmt

import "strings"

// Styles is a bitset of the styles applied to a span of text.
//
// Styles accumulate as style codes are encountered; a color code clears
// them again. There is no reset bit here: the reset code (`r`/`R`) is
// consumed inside SpanIter and never surfaces in an emitted span.
type Styles uint8

const (
	// StyleRandom asks the renderer to replace the text with randomized
	// characters at a constant interval. Animating it is the renderer's
	// job; the parser only records that it was requested.
	StyleRandom Styles = 1 << iota
	StyleBold
	StyleStrikethrough
	StyleUnderlined
	StyleItalic
)

// StyleFromChar maps a format-code character to its style bit.
// Letter codes are accepted in either case, matching the vanilla client.
// The second return value is false if c does not select a style.
func StyleFromChar(c rune) (Styles, bool) {
	switch c {
	case 'k', 'K':
		return StyleRandom, true
	case 'l', 'L':
		return StyleBold, true
	case 'm', 'M':
		return StyleStrikethrough, true
	case 'n', 'N':
		return StyleUnderlined, true
	case 'o', 'O':
		return StyleItalic, true
	}
	return 0, false
}

// Contains reports whether every bit in other is set in s.
func (s Styles) Contains(other Styles) bool {
	return s&other == other
}

// Insert sets every bit of other in s.
func (s *Styles) Insert(other Styles) {
	*s |= other
}

// IsEmpty reports whether no style bits are set.
func (s Styles) IsEmpty() bool {
	return s == 0
}

var styleNames = []struct {
	bit  Styles
	name string
}{
	{StyleRandom, "Random"},
	{StyleBold, "Bold"},
	{StyleStrikethrough, "Strikethrough"},
	{StyleUnderlined, "Underlined"},
	{StyleItalic, "Italic"},
}

func (s Styles) String() string {
	if s.IsEmpty() {
		return "None"
	}
	var parts []string
	for _, sn := range styleNames {
		if s.Contains(sn.bit) {
			parts = append(parts, sn.name)
		}
	}
	return strings.Join(parts, "|")
}
