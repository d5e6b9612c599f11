package mdr

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightLines colors code with chroma, returning one styled string
// per input line. Unknown languages fall back to the plain text lexer;
// tokenization failures return the input untouched.
func highlightLines(lines []string, language, styleName string) []string {
	code := strings.Join(lines, "\n")
	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return lines
	}
	var b strings.Builder
	for tok := iterator(); tok != chroma.EOF; tok = iterator() {
		b.WriteString(styledToken(style.Get(tok.Type), tok.Value))
	}
	out := strings.Split(b.String(), "\n")
	// Lexers with ensure_nl set append a newline to the source; drop
	// the empty line it produces.
	if len(out) == len(lines)+1 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	return out
}

// styledToken wraps a token value in direct-color escapes. Values
// spanning lines are styled per line so later per-line decoration
// cannot cut a sequence in half.
func styledToken(entry chroma.StyleEntry, value string) string {
	if value == "" {
		return ""
	}
	var prefix strings.Builder
	if entry.Colour.IsSet() {
		fmt.Fprintf(&prefix, "\x1b[38;2;%d;%d;%dm", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Bold == chroma.Yes {
		prefix.WriteString("\x1b[1m")
	}
	if entry.Italic == chroma.Yes {
		prefix.WriteString("\x1b[3m")
	}
	if entry.Underline == chroma.Yes {
		prefix.WriteString("\x1b[4m")
	}
	if prefix.Len() == 0 {
		return value
	}
	open := prefix.String()
	if !strings.Contains(value, "\n") {
		return open + value + ansiReset
	}
	segments := strings.Split(value, "\n")
	for i, seg := range segments {
		if seg != "" {
			segments[i] = open + seg + ansiReset
		}
	}
	return strings.Join(segments, "\n")
}

const ansiReset = "\x1b[0m"
