package pretty

import (
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	legacyfmt "github.com/Cldfire/mc-legacy-formatting"
)

// Pin the color profile so output doesn't depend on the terminal the
// tests run in.
func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	os.Exit(m.Run())
}

func TestPlainSpanPassesThrough(t *testing.T) {
	r := NewRenderer()
	got := r.Span(legacyfmt.Plain("hello"))
	if got != "hello" {
		t.Errorf("plain span rendered as %q, want bare text", got)
	}
}

func TestStyledSpanKeepsVisibleText(t *testing.T) {
	r := NewRenderer()
	got := r.Span(legacyfmt.Styled("dark red", legacyfmt.DarkRed, legacyfmt.StyleBold))
	if stripped := ansi.Strip(got); stripped != "dark red" {
		t.Errorf("visible text = %q, want %q", stripped, "dark red")
	}
	if got == "dark red" {
		t.Error("styled span rendered without any escape sequences")
	}
}

func TestStrikethroughWhitespaceRendersDashes(t *testing.T) {
	r := NewRenderer()
	sp := legacyfmt.StrikethroughWhitespace("     ", legacyfmt.DarkPurple, legacyfmt.StyleStrikethrough)
	got := ansi.Strip(r.Span(sp))
	if got != "-----" {
		t.Errorf("visible text = %q, want %q", got, "-----")
	}
}

func TestTextRoundTripsVisibleContent(t *testing.T) {
	r := NewRenderer()
	s := "§4This will be dark red §oand italic"
	if got := ansi.Strip(r.Text(s)); got != "This will be dark red and italic" {
		t.Errorf("visible text = %q", got)
	}
}

func TestTextWithStartChar(t *testing.T) {
	r := NewRenderer()
	s := "&6gold &bthen aqua"
	if got := ansi.Strip(r.TextWithStartChar(s, '&')); got != "gold then aqua" {
		t.Errorf("visible text = %q", got)
	}
}

func TestStyleCacheReuse(t *testing.T) {
	r := NewRenderer()
	sp := legacyfmt.Styled("x", legacyfmt.Gold, legacyfmt.StyleBold)
	first := r.Span(sp)
	if r.styleCache.Len() == 0 {
		t.Fatal("style cache should be populated after a render")
	}
	second := r.Span(sp)
	if first != second {
		t.Errorf("cached render differs: %q vs %q", first, second)
	}
}

func TestRandomStyleLeavesTextAlone(t *testing.T) {
	r := NewRenderer()
	got := ansi.Strip(r.Text("§kobfuscated"))
	if !strings.Contains(got, "obfuscated") {
		t.Errorf("random-styled text should render as-is, got %q", got)
	}
}
