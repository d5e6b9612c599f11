package mdr

import (
	"regexp"
	"strconv"
	"strings"
)

// Line shape recognizers. Each returns the captured fields and whether
// the line matches. The renderer consults them in a fixed priority
// order, so individual checks stay context-free.

func blankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// fenceLine reports a code fence: optional indentation, exactly three
// backticks and an optional language word.
func fenceLine(line string) (lang string, ok bool) {
	s := strings.TrimLeft(line, " \t")
	if !strings.HasPrefix(s, "```") {
		return "", false
	}
	rest := s[3:]
	i := 0
	for i < len(rest) && isWordByte(rest[i]) {
		i++
	}
	if strings.TrimSpace(rest[i:]) != "" {
		return "", false
	}
	return rest[:i], true
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// headingLine reports an ATX heading of level 1..6. Seven or more
// hashes, a missing separator or empty text all disqualify the line.
func headingLine(line string) (level int, text string, ok bool) {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n == len(line) {
		return 0, "", false
	}
	if line[n] != ' ' && line[n] != '\t' {
		return 0, "", false
	}
	text = strings.TrimSpace(line[n:])
	if text == "" {
		return 0, "", false
	}
	return n, text, true
}

// ruleLine reports a horizontal rule: three or more of the same marker
// character with nothing but whitespace after.
func ruleLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	c := line[0]
	if c != '*' && c != '-' && c != '_' {
		return false
	}
	n := 0
	for n < len(line) && line[n] == c {
		n++
	}
	if n < 3 {
		return false
	}
	return strings.TrimSpace(line[n:]) == ""
}

// tableRowLine reports a pipe table row: the trimmed line starts and
// ends with a pipe.
func tableRowLine(line string) bool {
	s := strings.TrimSpace(line)
	return len(s) >= 2 && s[0] == '|' && s[len(s)-1] == '|'
}

// separatorRow reports whether cells form a table separator, every
// cell being dashes with optional alignment colons.
func separatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		s := strings.TrimSpace(cell)
		s = strings.TrimPrefix(s, ":")
		s = strings.TrimSuffix(s, ":")
		if s == "" || strings.Trim(s, "-") != "" {
			return false
		}
	}
	return true
}

// splitTableRow splits a row line into raw cell strings, dropping the
// empty leading and trailing fields produced by the outer pipes.
func splitTableRow(line string) []string {
	cells := strings.Split(strings.TrimSpace(line), "|")
	if len(cells) > 0 && strings.TrimSpace(cells[0]) == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && strings.TrimSpace(cells[len(cells)-1]) == "" {
		cells = cells[:len(cells)-1]
	}
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

// quotePrefix reports a quote marker prefix at column zero. Depth is
// the number of markers; each may consume one following space or tab.
func quotePrefix(line string) (depth int, rest string, ok bool) {
	i := 0
	for i < len(line) && line[i] == '>' {
		depth++
		i++
		if i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
	}
	if depth == 0 {
		return 0, "", false
	}
	return depth, line[i:], true
}

// boxQuotePrefix reports a box-drawing quote prefix: one or more │ or
// | markers, each preceded by optional whitespace. Table rows are
// recognized earlier, so a line both starting and ending with a pipe
// never reaches this check.
func boxQuotePrefix(line string) (depth int, rest string, ok bool) {
	s := line
	for {
		trimmed := strings.TrimLeft(s, " \t")
		switch {
		case strings.HasPrefix(trimmed, "│"):
			depth++
			s = trimmed[len("│"):]
			continue
		case strings.HasPrefix(trimmed, "|"):
			depth++
			s = trimmed[1:]
			continue
		}
		if depth == 0 {
			return 0, "", false
		}
		return depth, trimmed, true
	}
}

// checkboxLine reports a task item: "- [ ]" or "- [x]" with text.
func checkboxLine(line string) (indent int, checked bool, text string, ok bool) {
	width, i := leadingIndent(line)
	rest := line[i:]
	if !strings.HasPrefix(rest, "-") {
		return 0, false, "", false
	}
	rest, n := skipSpaces(rest[1:])
	if n == 0 || len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return 0, false, "", false
	}
	switch rest[1] {
	case ' ':
		checked = false
	case 'x', 'X':
		checked = true
	default:
		return 0, false, "", false
	}
	rest, n = skipSpaces(rest[3:])
	if n == 0 || rest == "" {
		return 0, false, "", false
	}
	return width / 2, checked, rest, true
}

// progressLine reports a progress task item: "- [NN%]" with optional
// text. Values are clamped to 0..100.
func progressLine(line string) (indent int, percent int, text string, ok bool) {
	width, i := leadingIndent(line)
	rest := line[i:]
	if !strings.HasPrefix(rest, "-") {
		return 0, 0, "", false
	}
	rest, n := skipSpaces(rest[1:])
	if n == 0 || len(rest) < 4 || rest[0] != '[' {
		return 0, 0, "", false
	}
	j := 1
	for j < len(rest) && j <= 3 && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	if j == 1 || j+1 >= len(rest) || rest[j] != '%' || rest[j+1] != ']' {
		return 0, 0, "", false
	}
	percent, _ = strconv.Atoi(rest[1:j])
	if percent > 100 {
		percent = 100
	}
	rest, _ = skipSpaces(rest[j+2:])
	return width / 2, percent, rest, true
}

// footnoteDefLine reports a footnote definition: "[^label]: text".
func footnoteDefLine(line string) (label, text string, ok bool) {
	if !strings.HasPrefix(line, "[^") {
		return "", "", false
	}
	end := strings.IndexByte(line, ']')
	if end < 3 || end+1 >= len(line) || line[end+1] != ':' {
		return "", "", false
	}
	label = line[2:end]
	text = strings.TrimLeft(line[end+2:], " \t")
	if text == "" {
		return "", "", false
	}
	return label, text, true
}

var definitionPattern = regexp.MustCompile(`^([A-Za-z][^\s:].*?)\s{2,}:\s{2,}(.+)$`)

// definitionLine reports a definition entry: a term, two or more
// spaces, a colon, two or more spaces, then the definition.
func definitionLine(line string) (term, def string, ok bool) {
	m := definitionPattern.FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// listItemLine reports a bullet or ordered list item. Width is the
// leading indentation in columns (tab counts four).
func listItemLine(line string) (width int, ordered bool, number int, text string, ok bool) {
	width, i := leadingIndent(line)
	rest := line[i:]
	if rest == "" {
		return 0, false, 0, "", false
	}
	switch {
	case rest[0] == '-' || rest[0] == '*' || rest[0] == '+':
		rest = rest[1:]
	case strings.HasPrefix(rest, "•"):
		rest = rest[len("•"):]
	case rest[0] >= '0' && rest[0] <= '9':
		j := 0
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		if j > 6 || j >= len(rest) || (rest[j] != '.' && rest[j] != ')') {
			return 0, false, 0, "", false
		}
		number, _ = strconv.Atoi(rest[:j])
		ordered = true
		rest = rest[j+1:]
	default:
		return 0, false, 0, "", false
	}
	rest, n := skipSpaces(rest)
	if n == 0 || rest == "" {
		return 0, false, 0, "", false
	}
	return width, ordered, number, rest, true
}

const calloutKeywords = `NOTE|TIP|IMPORTANT|WARNING|CAUTION|ATTENTION|INFO|SUCCESS|QUESTION|FAILURE|BUG|EXAMPLE|QUOTE`

var (
	calloutBracketPattern = regexp.MustCompile(`^(?i)\[!(` + calloutKeywords + `)\]\s*(.*)$`)
	calloutColonPattern   = regexp.MustCompile(`^(?i)(` + calloutKeywords + `):\s*(.*)$`)
)

// calloutMarker reports a callout keyword on a quote's first line,
// either bracketed ("[!NOTE] title") or bare with a colon
// ("NOTE: title"). The keyword is returned uppercased.
func calloutMarker(text string) (keyword, rest string, ok bool) {
	m := calloutBracketPattern.FindStringSubmatch(text)
	if m == nil {
		m = calloutColonPattern.FindStringSubmatch(text)
	}
	if m == nil {
		return "", "", false
	}
	return strings.ToUpper(m[1]), m[2], true
}

// leadingIndent returns the indentation width in columns and the byte
// index of the first non-indent character. Tabs count as four columns.
func leadingIndent(line string) (width, i int) {
	for i < len(line) {
		switch line[i] {
		case ' ':
			width++
		case '\t':
			width += 4
		default:
			return width, i
		}
		i++
	}
	return width, i
}

func skipSpaces(s string) (string, int) {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[i:], i
}
