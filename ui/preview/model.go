// Package preview is an interactive terminal previewer for legacy
// formatting codes: type a string, see the rendered result and the span
// breakdown update live.
package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	legacyfmt "github.com/Cldfire/mc-legacy-formatting"
	"github.com/Cldfire/mc-legacy-formatting/fixture"
	"github.com/Cldfire/mc-legacy-formatting/pretty"
)

// Options configure the previewer.
type Options struct {
	// StartChar introduces a format code. '§' if zero.
	StartChar rune
	// Sample pre-fills the input field.
	Sample string
	// AltScreen runs on the terminal's alternate screen.
	AltScreen bool
}

// Model is the Bubble Tea model for the previewer.
type Model struct {
	input    textinput.Model
	renderer *pretty.Renderer
	styles   Styles

	startChar   rune
	width       int
	showFixture bool
	showGuide   bool
	quitting    bool
}

// New creates a previewer model.
func New(opts Options) Model {
	if opts.StartChar == 0 {
		opts.StartChar = '§'
	}

	ti := textinput.New()
	ti.Placeholder = "type a string with format codes"
	ti.Prompt = "> "
	ti.SetValue(opts.Sample)
	ti.Focus()

	return Model{
		input:     ti,
		renderer:  pretty.NewRenderer(),
		styles:    DefaultStyles(),
		startChar: opts.StartChar,
		width:     80,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+t":
			// Flip between the vanilla marker and the community one.
			if m.startChar == '§' {
				m.startChar = '&'
			} else {
				m.startChar = '§'
			}
			return m, nil
		case "ctrl+d":
			m.showFixture = !m.showFixture
			return m, nil
		case "ctrl+g":
			m.showGuide = !m.showGuide
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// StartChar returns the marker currently in use.
func (m Model) StartChar() rune {
	return m.startChar
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render("mc-legacy-formatting"))
	b.WriteString("  ")
	b.WriteString(m.styles.Marker.Render(fmt.Sprintf("marker: %c", m.startChar)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	value := m.input.Value()

	b.WriteString(m.styles.Section.Render("Preview"))
	b.WriteString("\n")
	b.WriteString(m.styles.Preview.Width(m.width - 4).Render(
		m.renderer.TextWithStartChar(value, m.startChar)))
	b.WriteString("\n\n")

	b.WriteString(m.styles.Section.Render("Spans"))
	b.WriteString("\n")
	it := legacyfmt.NewSpanIter(value).WithStartChar(m.startChar)
	count := 0
	for {
		sp, ok := it.Next()
		if !ok {
			break
		}
		count++
		b.WriteString("  ")
		b.WriteString(runewidth.Truncate(m.spanLine(sp), m.width-4, "…"))
		b.WriteString("\n")
	}
	if count == 0 {
		b.WriteString(m.styles.Help.Render("  (no spans)"))
		b.WriteString("\n")
	}

	if m.showFixture {
		b.WriteString("\n")
		b.WriteString(m.styles.Section.Render("Fixture"))
		b.WriteString("\n")
		b.WriteString(fixture.Format(value, m.startChar))
	}

	if m.showGuide {
		b.WriteString("\n")
		b.WriteString(m.styles.Section.Render("Codes"))
		b.WriteString("\n")
		b.WriteString(m.guideView())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(
		"ctrl+t: toggle marker • ctrl+d: fixture • ctrl+g: code guide • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) spanLine(sp legacyfmt.Span) string {
	switch sp.Kind {
	case legacyfmt.KindPlain:
		return fmt.Sprintf("%s %s",
			m.styles.SpanKind.Render("Plain"),
			m.styles.SpanDetail.Render(fmt.Sprintf("%q", sp.Text)))
	case legacyfmt.KindStrikethroughWhitespace:
		return fmt.Sprintf("%s %s",
			m.styles.SpanKind.Render("StrikethroughWhitespace"),
			m.styles.SpanDetail.Render(fmt.Sprintf("%d chars, %v, %v", sp.Len(), sp.Color, sp.Styles)))
	default:
		return fmt.Sprintf("%s %s",
			m.styles.SpanKind.Render("Styled"),
			m.styles.SpanDetail.Render(fmt.Sprintf("%q %v %v", sp.Text, sp.Color, sp.Styles)))
	}
}

var guideStyles = []struct {
	code rune
	name string
	bit  legacyfmt.Styles
}{
	{'k', "Random", legacyfmt.StyleRandom},
	{'l', "Bold", legacyfmt.StyleBold},
	{'m', "Strikethrough", legacyfmt.StyleStrikethrough},
	{'n', "Underlined", legacyfmt.StyleUnderlined},
	{'o', "Italic", legacyfmt.StyleItalic},
}

// guideView lists every color and style code, each rendered in its own
// color or style.
func (m Model) guideView() string {
	var b strings.Builder
	for i := 0; i < 16; i++ {
		c := legacyfmt.Color(i)
		entry := fmt.Sprintf("%c%c %-13s", m.startChar, c.Code(), c.String())
		b.WriteString("  ")
		b.WriteString(m.renderer.Span(legacyfmt.Styled(entry, c, 0)))
		if i%4 == 3 {
			b.WriteString("\n")
		}
	}
	for i, gs := range guideStyles {
		entry := fmt.Sprintf("%c%c %-13s", m.startChar, gs.code, gs.name)
		b.WriteString("  ")
		b.WriteString(m.renderer.Span(legacyfmt.Styled(entry, legacyfmt.Gray, gs.bit)))
		if i%4 == 3 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// Run starts the previewer and blocks until exit.
func Run(opts Options) error {
	var teaOpts []tea.ProgramOption
	if opts.AltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(New(opts), teaOpts...).Run()
	return err
}
