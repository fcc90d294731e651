// Package pretty renders parsed spans as ANSI-colored terminal text,
// approximating what the vanilla client would show (minus the font).
package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	legacyfmt "github.com/Cldfire/mc-legacy-formatting"
)

type styleKey struct {
	color  legacyfmt.Color
	styles legacyfmt.Styles
}

// Renderer turns spans into styled terminal strings. It caches the
// lipgloss style built for each (color, styles) pair, since MOTDs tend
// to reuse a handful of combinations across many spans.
//
// The zero value is not usable; call NewRenderer.
type Renderer struct {
	styleCache *lru.Cache[styleKey, lipgloss.Style]
}

// NewRenderer returns a Renderer with an empty style cache.
func NewRenderer() *Renderer {
	cache, _ := lru.New[styleKey, lipgloss.Style](64)
	return &Renderer{styleCache: cache}
}

func (r *Renderer) styleFor(color legacyfmt.Color, styles legacyfmt.Styles) lipgloss.Style {
	key := styleKey{color, styles}
	if st, ok := r.styleCache.Get(key); ok {
		return st
	}

	st := lipgloss.NewStyle().Foreground(lipgloss.Color(color.ForegroundHex()))
	if styles.Contains(legacyfmt.StyleBold) {
		st = st.Bold(true)
	}
	if styles.Contains(legacyfmt.StyleStrikethrough) {
		st = st.Strikethrough(true)
	}
	if styles.Contains(legacyfmt.StyleUnderlined) {
		st = st.Underline(true)
	}
	if styles.Contains(legacyfmt.StyleItalic) {
		st = st.Italic(true)
	}
	// StyleRandom is an animation effect; a static renderer leaves the
	// text alone.

	r.styleCache.Add(key, st)
	return st
}

// Span renders a single span. Plain spans pass through unstyled;
// collapsed strikethrough whitespace becomes a struck run of dashes of
// the same length.
func (r *Renderer) Span(sp legacyfmt.Span) string {
	switch sp.Kind {
	case legacyfmt.KindPlain:
		return sp.Text
	case legacyfmt.KindStrikethroughWhitespace:
		return r.styleFor(sp.Color, sp.Styles).Render(strings.Repeat("-", sp.Len()))
	default:
		return r.styleFor(sp.Color, sp.Styles).Render(sp.Text)
	}
}

// Text parses s with the vanilla '§' start character and renders every
// span.
func (r *Renderer) Text(s string) string {
	return r.drain(legacyfmt.NewSpanIter(s))
}

// TextWithStartChar is Text with a custom start character.
func (r *Renderer) TextWithStartChar(s string, startChar rune) string {
	return r.drain(legacyfmt.NewSpanIter(s).WithStartChar(startChar))
}

func (r *Renderer) drain(it *legacyfmt.SpanIter) string {
	var b strings.Builder
	for {
		sp, ok := it.Next()
		if !ok {
			return b.String()
		}
		b.WriteString(r.Span(sp))
	}
}
