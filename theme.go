package mdr

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pkt.systems/mdr/internal/palette"
)

// Styles groups the semantic styles used by the terminal sink.
type Styles struct {
	Text           lipgloss.Style
	Heading        [6]lipgloss.Style
	Strong         lipgloss.Style
	Emphasis       lipgloss.Style
	EmphasisStrong lipgloss.Style
	Strike         lipgloss.Style
	Highlight      lipgloss.Style
	CodeInline     lipgloss.Style
	LineNumber     lipgloss.Style
	Link           lipgloss.Style
	URL            lipgloss.Style
	Image          lipgloss.Style
	FootnoteRef    lipgloss.Style
	Math           lipgloss.Style
	QuoteBorder    lipgloss.Style
	Callout        lipgloss.Style
	TableBorder    lipgloss.Style
	TableHeader    lipgloss.Style
	ListMarker     lipgloss.Style
	Checked        lipgloss.Style
	Unchecked      lipgloss.Style
	Rule           lipgloss.Style
	Term           lipgloss.Style
}

// Theme provides named styles for Markdown rendering. Chroma names the
// syntax style for fenced code; an empty name falls back to a default.
type Theme interface {
	Name() string
	Styles() Styles
	Chroma() string
}

type theme struct {
	name   string
	styles Styles
	chroma string
}

func (t theme) Name() string   { return t.name }
func (t theme) Styles() Styles { return t.styles }
func (t theme) Chroma() string { return t.chroma }

// NewTheme returns a Theme from a Styles definition.
func NewTheme(name string, styles Styles) Theme {
	return theme{name: name, styles: styles}
}

func stylesFromPalette(p palette.Palette) Styles {
	return Styles{
		Text: lipgloss.NewStyle(),
		Heading: [6]lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H1)).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H2)).Bold(true),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H3)),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H4)),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H5)),
			lipgloss.NewStyle().Foreground(lipgloss.Color(p.H6)),
		},
		Strong:         lipgloss.NewStyle().Bold(true),
		Emphasis:       lipgloss.NewStyle().Italic(true),
		EmphasisStrong: lipgloss.NewStyle().Bold(true).Italic(true),
		Strike:         lipgloss.NewStyle().Strikethrough(true).Faint(true),
		Highlight:      lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color(p.Highlight)),
		CodeInline:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.InlineCode)),
		LineNumber:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Link:           lipgloss.NewStyle().Foreground(lipgloss.Color(p.Link)).Underline(true),
		URL:            lipgloss.NewStyle().Foreground(lipgloss.Color(p.Link)).Faint(true),
		Image:          lipgloss.NewStyle().Foreground(lipgloss.Color(p.Link)).Italic(true),
		FootnoteRef:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.Link)),
		Math:           lipgloss.NewStyle(),
		QuoteBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.QuoteBorder)),
		Callout:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.Note)),
		TableBorder:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.TableBorder)),
		TableHeader:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.TableHeader)).Bold(true),
		ListMarker:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.ListMarker)),
		Checked:        lipgloss.NewStyle().Foreground(lipgloss.Color(p.CheckedBox)),
		Unchecked:      lipgloss.NewStyle().Foreground(lipgloss.Color(p.UncheckedBox)),
		Rule:           lipgloss.NewStyle().Foreground(lipgloss.Color(p.Rule)),
		Term:           lipgloss.NewStyle().Bold(true),
	}
}

func paletteTheme(name string, p palette.Palette) Theme {
	return theme{name: name, styles: stylesFromPalette(p), chroma: p.ChromaStyle}
}

var builtinThemes = map[string]Theme{
	"github-dark":     paletteTheme("github-dark", palette.GithubDark),
	"monokai":         paletteTheme("monokai", palette.Monokai),
	"dracula":         paletteTheme("dracula", palette.Dracula),
	"nord":            paletteTheme("nord", palette.Nord),
	"one-dark":        paletteTheme("one-dark", palette.OneDark),
	"solarized-dark":  paletteTheme("solarized-dark", palette.SolarizedDark),
	"solarized-light": paletteTheme("solarized-light", palette.SolarizedLight),
}

// RegisterTheme adds a theme to the registry, replacing any theme of
// the same name. Call it during program init, before rendering starts.
func RegisterTheme(t Theme) {
	builtinThemes[strings.ToLower(strings.TrimSpace(t.Name()))] = t
}

// AvailableThemes returns the sorted names of registered themes.
func AvailableThemes() []string {
	names := make([]string, 0, len(builtinThemes))
	for name := range builtinThemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeByName returns a registered theme by name.
func ThemeByName(name string) (Theme, bool) {
	if name == "" {
		return DefaultTheme(), true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	theme, ok := builtinThemes[normalized]
	return theme, ok
}

// DefaultTheme returns the default built-in theme.
func DefaultTheme() Theme {
	return builtinThemes["github-dark"]
}
