package mdr

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	codeSpanPattern    = regexp.MustCompile("`([^`]+)`")
	breakPattern       = regexp.MustCompile(`(?i)<br\s*/?>`)
	displayMathPattern = regexp.MustCompile(`\\\[(.+?)\\\]`)
	inlineMathPattern  = regexp.MustCompile(`\\\((.+?)\\\)`)
	angleLinkPattern   = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9+.-]*://[^>]+)>`)
	imagePattern       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkPattern        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	footnoteRefPattern = regexp.MustCompile(`\[\^([^\]]+)\]`)
	boldItalicPattern  = regexp.MustCompile(`\*\*\*([^*]+)\*\*\*`)
	boldPattern        = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldLowPattern     = regexp.MustCompile(`__(.+?)__`)
	italicPattern      = regexp.MustCompile(`\*([^*]+)\*`)
	italicLowPattern   = regexp.MustCompile(`_([^_]+)_`)
	strikePattern      = regexp.MustCompile(`~~(.+?)~~`)
	highlightPattern   = regexp.MustCompile(`==(.+?)==`)
	emojiPattern       = regexp.MustCompile(`:([a-z0-9_+-]+):`)
)

type spanClaim struct {
	start, end int
	spans      []Span
}

// extractSpans splits inline text into styled spans. Extraction runs as
// ordered passes over the immutable text; each pass claims the byte
// ranges it matched, and later passes skip anything already claimed.
// Unclaimed gaps become plain text spans. Footnote references receive
// their display number from notes at match time.
func extractSpans(text string, notes *footnoteTable) []Span {
	if text == "" {
		return nil
	}
	claimed := make([]bool, len(text))
	var claims []spanClaim

	free := func(start, end int) bool {
		for i := start; i < end; i++ {
			if claimed[i] {
				return false
			}
		}
		return true
	}
	claim := func(start, end int, spans ...Span) {
		if !free(start, end) {
			return
		}
		for i := start; i < end; i++ {
			claimed[i] = true
		}
		claims = append(claims, spanClaim{start: start, end: end, spans: spans})
	}
	simple := func(re *regexp.Regexp, role spanRole) {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			claim(m[0], m[1], Span{Text: text[m[2]:m[3]], Role: role})
		}
	}

	simple(codeSpanPattern, roleCode)
	for _, m := range breakPattern.FindAllStringIndex(text, -1) {
		claim(m[0], m[1], Span{Role: roleBreak})
	}
	for _, m := range displayMathPattern.FindAllStringSubmatchIndex(text, -1) {
		claim(m[0], m[1],
			Span{Role: roleBreak},
			Span{Text: text[m[2]:m[3]], Role: roleMath},
			Span{Role: roleBreak})
	}
	simple(inlineMathPattern, roleMath)
	for _, m := range angleLinkPattern.FindAllStringSubmatchIndex(text, -1) {
		url := text[m[2]:m[3]]
		claim(m[0], m[1], Span{Text: url, Role: roleLink, URL: url})
	}
	for _, m := range imagePattern.FindAllStringSubmatchIndex(text, -1) {
		claim(m[0], m[1], Span{Text: text[m[2]:m[3]], Role: roleImage, URL: text[m[4]:m[5]]})
	}
	for _, m := range linkPattern.FindAllStringSubmatchIndex(text, -1) {
		claim(m[0], m[1], Span{Text: text[m[2]:m[3]], Role: roleLink, URL: text[m[4]:m[5]]})
	}
	if notes != nil {
		for _, m := range footnoteRefPattern.FindAllStringSubmatchIndex(text, -1) {
			if !free(m[0], m[1]) {
				continue
			}
			label := text[m[2]:m[3]]
			n := notes.reference(label)
			claim(m[0], m[1], Span{Text: strconv.Itoa(n), Role: roleFootnoteRef, URL: label})
		}
	}
	simple(boldItalicPattern, roleBoldItalic)
	simple(boldPattern, roleBold)
	simple(boldLowPattern, roleBold)
	simple(italicPattern, roleItalic)
	simple(italicLowPattern, roleItalic)
	simple(strikePattern, roleStrike)
	simple(highlightPattern, roleHighlight)
	for _, m := range emojiPattern.FindAllStringSubmatchIndex(text, -1) {
		if !free(m[0], m[1]) {
			continue
		}
		if glyph, ok := emojiRune(text[m[2]:m[3]]); ok {
			claim(m[0], m[1], Span{Text: glyph, Role: roleText})
		}
	}

	sort.Slice(claims, func(i, j int) bool { return claims[i].start < claims[j].start })

	out := make([]Span, 0, len(claims)+4)
	cursor := 0
	for _, c := range claims {
		if c.start > cursor {
			out = append(out, Span{Text: text[cursor:c.start], Role: roleText})
		}
		out = append(out, c.spans...)
		cursor = c.end
	}
	if cursor < len(text) {
		out = append(out, Span{Text: text[cursor:], Role: roleText})
	}
	return out
}

var bulletStarPrefix = regexp.MustCompile(`^\s*\* `)

// inlineIncomplete reports whether accumulated paragraph text ends in
// the middle of an inline construct. Blank-line flushes are deferred
// while this holds; the finalize flush ignores it and renders any
// unmatched markers literally.
func inlineIncomplete(text string) bool {
	if strings.Count(text, "`")%2 != 0 {
		return true
	}
	if strings.Count(text, "**")%2 != 0 {
		return true
	}
	if strings.Count(text, "*")%2 != 0 && !bulletStarPrefix.MatchString(text) {
		return true
	}
	if strings.Count(text, "__")%2 != 0 {
		return true
	}
	if strings.Count(text, "_")%2 != 0 {
		return true
	}
	if strings.Count(text, "~~")%2 != 0 {
		return true
	}
	if strings.Count(text, "==")%2 != 0 {
		return true
	}
	if strings.Count(text, "[") > strings.Count(text, "]") {
		return true
	}
	if strings.Count(text, "(") > strings.Count(text, ")") && strings.Contains(text, "]") {
		return true
	}
	if strings.Count(text, `\(`) != strings.Count(text, `\)`) {
		return true
	}
	if strings.Count(text, `\[`) != strings.Count(text, `\]`) {
		return true
	}
	if strings.Count(text, "<") > strings.Count(text, ">") {
		if openAngle(text) {
			return true
		}
	}
	return false
}

// openAngle reports a '<' that starts what could be an angle link or
// tag with no '>' after the last '<'.
func openAngle(text string) bool {
	hasTagStart := false
	for i := 0; i+1 < len(text); i++ {
		if text[i] == '<' && isLetterByte(text[i+1]) {
			hasTagStart = true
			break
		}
	}
	if !hasTagStart {
		return false
	}
	last := strings.LastIndexByte(text, '<')
	return !strings.Contains(text[last:], ">")
}

func isLetterByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}
