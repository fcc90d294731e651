// Package fixture formats parsed spans as Go constructor calls, ready to
// paste into a table test.
package fixture

import (
	"fmt"
	"strings"

	legacyfmt "github.com/Cldfire/mc-legacy-formatting"
)

// Format parses s with the given start character and returns the spans as
// a Go composite literal.
func Format(s string, startChar rune) string {
	var b strings.Builder
	b.WriteString("[]legacyfmt.Span{\n")

	it := legacyfmt.NewSpanIter(s).WithStartChar(startChar)
	for {
		sp, ok := it.Next()
		if !ok {
			break
		}
		switch sp.Kind {
		case legacyfmt.KindPlain:
			fmt.Fprintf(&b, "\tlegacyfmt.Plain(%q),\n", sp.Text)
		case legacyfmt.KindStrikethroughWhitespace:
			fmt.Fprintf(&b, "\tlegacyfmt.StrikethroughWhitespace(%q, legacyfmt.%v, %s),\n",
				sp.Text, sp.Color, styleExpr(sp.Styles))
		default:
			fmt.Fprintf(&b, "\tlegacyfmt.Styled(%q, legacyfmt.%v, %s),\n",
				sp.Text, sp.Color, styleExpr(sp.Styles))
		}
	}

	b.WriteString("}\n")
	return b.String()
}

var styleBits = []struct {
	bit  legacyfmt.Styles
	name string
}{
	{legacyfmt.StyleRandom, "legacyfmt.StyleRandom"},
	{legacyfmt.StyleBold, "legacyfmt.StyleBold"},
	{legacyfmt.StyleStrikethrough, "legacyfmt.StyleStrikethrough"},
	{legacyfmt.StyleUnderlined, "legacyfmt.StyleUnderlined"},
	{legacyfmt.StyleItalic, "legacyfmt.StyleItalic"},
}

func styleExpr(styles legacyfmt.Styles) string {
	if styles.IsEmpty() {
		return "0"
	}
	var parts []string
	for _, sb := range styleBits {
		if styles.Contains(sb.bit) {
			parts = append(parts, sb.name)
		}
	}
	return strings.Join(parts, "|")
}
