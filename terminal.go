package mdr

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/muesli/termenv"
)

// listGlyphs are the bullet markers cycled through by nesting depth.
var listGlyphs = [...]string{"•", "◦", "▪", "‣"}

const ruleCap = 80

// TerminalSink renders blocks as styled terminal text.
type TerminalSink struct {
	w      io.Writer
	width  int
	styles Styles
	chroma string
	cfg    renderConfig
}

// NewTerminalSink returns a sink writing styled output to w. A nil
// theme selects the default theme; width zero or below falls back to
// 80 columns.
func NewTerminalSink(w io.Writer, width int, theme Theme, opts ...RenderOption) *TerminalSink {
	cfg := defaultRenderConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if width <= 0 {
		width = 80
	}
	if cfg.forceColor {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
	return &TerminalSink{
		w:      w,
		width:  width,
		styles: theme.Styles(),
		chroma: theme.Chroma(),
		cfg:    cfg,
	}
}

func (s *TerminalSink) Width() int { return s.width }

func (s *TerminalSink) SetWidth(width int) {
	if width > 0 {
		s.width = width
	}
}

// Flush implements Sink. Output is unbuffered, so there is nothing to
// flush.
func (s *TerminalSink) Flush() error { return nil }

// WriteBlock renders one block.
func (s *TerminalSink) WriteBlock(b Block) error {
	switch b.Kind {
	case blockParagraph:
		return s.writeParagraph(b)
	case blockHeading:
		return s.writeHeading(b)
	case blockRule:
		return s.writeRule()
	case blockCode:
		return s.writeCode(b)
	case blockDiagram:
		return s.writeDiagram(b)
	case blockTable:
		return s.writeTable(b)
	case blockQuote:
		return s.writeQuote(b)
	case blockList:
		return s.writeList(b)
	case blockCheckbox:
		return s.writeCheckbox(b)
	case blockProgress:
		return s.writeProgress(b)
	case blockDefinition:
		return s.writeDefinition(b)
	case blockFootnotes:
		return s.writeFootnotes(b)
	}
	return nil
}

func (s *TerminalSink) print(text string) error {
	_, err := io.WriteString(s.w, text)
	return err
}

// renderSpans styles inline spans on top of a base style. Emphasis
// roles derive from the base so heading and callout colors carry
// through bold and italic runs.
func (s *TerminalSink) renderSpans(base lipgloss.Style, spans []Span) string {
	var b strings.Builder
	for _, span := range spans {
		switch span.Role {
		case roleText:
			b.WriteString(base.Render(span.Text))
		case roleBold:
			b.WriteString(base.Bold(true).Render(span.Text))
		case roleItalic:
			b.WriteString(base.Italic(true).Render(span.Text))
		case roleBoldItalic:
			b.WriteString(base.Bold(true).Italic(true).Render(span.Text))
		case roleStrike:
			b.WriteString(s.styles.Strike.Render(span.Text))
		case roleHighlight:
			b.WriteString(s.styles.Highlight.Render(span.Text))
		case roleCode:
			b.WriteString(s.styles.CodeInline.Render(span.Text))
		case roleLink:
			b.WriteString(s.renderLink(span.Text, span.URL))
		case roleImage:
			b.WriteString(s.renderImage(span.Text, span.URL))
		case roleFootnoteRef:
			b.WriteString(s.styles.FootnoteRef.Render("[" + span.Text + "]"))
		case roleMath:
			b.WriteString(s.styles.Math.Render(renderMath(span.Text)))
		case roleBreak:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (s *TerminalSink) renderLink(text, url string) string {
	styled := s.styles.Link.Render(text)
	if s.cfg.osc8 {
		return osc8Link(url, styled)
	}
	if text == url {
		return styled
	}
	return styled + s.styles.URL.Render(" ("+fitURL(url, s.width/2)+")")
}

func (s *TerminalSink) renderImage(alt, url string) string {
	if alt == "" {
		alt = url
	}
	styled := s.styles.Image.Render("🖼 " + alt)
	if s.cfg.osc8 {
		return osc8Link(url, styled)
	}
	if alt == url {
		return styled
	}
	return styled + s.styles.URL.Render(" ("+fitURL(url, s.width/2)+")")
}

// wrapText word-wraps styled text to the sink width. With soft wrap
// enabled, words longer than a line are broken as well. Text carrying
// OSC 8 sequences passes through unwrapped since their payload has no
// printable width.
func (s *TerminalSink) wrapText(text string) string {
	if strings.Contains(text, osc8Start) {
		return text
	}
	wrapped := wordwrap.String(text, s.width)
	if s.cfg.softWrap {
		wrapped = wrap.String(wrapped, s.width)
	}
	return wrapped
}

func (s *TerminalSink) writeParagraph(b Block) error {
	text := s.renderSpans(s.styles.Text, b.Spans)
	return s.print(s.wrapText(text) + "\n")
}

func (s *TerminalSink) writeHeading(b Block) error {
	level := b.Level
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	text := s.renderSpans(s.styles.Heading[level-1], b.Spans)
	return s.print("\n" + text + "\n")
}

func (s *TerminalSink) writeRule() error {
	width := s.width
	if width > ruleCap {
		width = ruleCap
	}
	return s.print("\n" + s.styles.Rule.Render(strings.Repeat("─", width)) + "\n")
}

func (s *TerminalSink) writeCode(b Block) error {
	lines := highlightLines(b.Code.Lines, b.Code.Language, s.chroma)
	var out strings.Builder
	out.WriteByte('\n')
	if s.cfg.lineNumbers {
		numWidth := len(strconv.Itoa(len(lines)))
		for i, line := range lines {
			num := fmt.Sprintf("%*d", numWidth, i+1)
			if s.cfg.codeBackground {
				out.WriteString(s.styles.LineNumber.Background(lipgloss.Color("8")).Render(" " + num + " "))
				out.WriteByte(' ')
			} else {
				out.WriteByte(' ')
				out.WriteString(s.styles.LineNumber.Render(num))
				out.WriteString("  ")
			}
			out.WriteString(line)
			out.WriteByte('\n')
		}
	} else {
		for _, line := range lines {
			out.WriteString(line)
			out.WriteByte('\n')
		}
	}
	return s.print(out.String())
}

func (s *TerminalSink) writeDiagram(b Block) error {
	nodes, edges := parseDiagram(b.Code.Lines)
	linked := make(map[string]bool)
	var body []string
	for _, e := range edges {
		linked[e.from] = true
		linked[e.to] = true
		if e.label != "" {
			body = append(body, e.from+" ──("+e.label+")──▶ "+e.to)
		} else {
			body = append(body, e.from+" ──▶ "+e.to)
		}
	}
	for _, n := range nodes {
		if !linked[n] {
			body = append(body, n)
		}
	}
	return s.print("\n" + s.box("Mermaid Diagram", body, s.styles.TableBorder) + "\n")
}

// box draws a titled single-line box around body lines. Widths are
// measured ANSI-aware since title and body may carry styling.
func (s *TerminalSink) box(title string, body []string, border lipgloss.Style) string {
	titleWidth := ansi.PrintableRuneWidth(title)
	inner := titleWidth + 2
	for _, line := range body {
		if w := ansi.PrintableRuneWidth(line); w > inner {
			inner = w
		}
	}
	var out strings.Builder
	out.WriteString(border.Render("┌─ "))
	out.WriteString(title)
	out.WriteString(border.Render(" " + strings.Repeat("─", inner-titleWidth-1) + "┐"))
	out.WriteByte('\n')
	for _, line := range body {
		pad := strings.Repeat(" ", inner-ansi.PrintableRuneWidth(line))
		out.WriteString(border.Render("│") + " " + line + pad + " " + border.Render("│"))
		out.WriteByte('\n')
	}
	out.WriteString(border.Render("└" + strings.Repeat("─", inner+2) + "┘"))
	out.WriteByte('\n')
	return out.String()
}

func (s *TerminalSink) writeTable(b Block) error {
	widths := make([]int, len(b.Table.Header))
	header := make([]string, len(b.Table.Header))
	for i, cell := range b.Table.Header {
		header[i] = s.renderHeaderCell(cell)
		widths[i] = ansi.PrintableRuneWidth(header[i])
	}
	rows := make([][]string, len(b.Table.Rows))
	for ri, row := range b.Table.Rows {
		rows[ri] = make([]string, len(widths))
		for ci := range widths {
			var text string
			if ci < len(row) {
				text = s.renderSpans(s.styles.Text, row[ci].Spans)
			}
			rows[ri][ci] = text
			if w := ansi.PrintableRuneWidth(text); w > widths[ci] {
				widths[ci] = w
			}
		}
	}
	s.fitColumns(widths)

	var out strings.Builder
	out.WriteByte('\n')
	sep := s.styles.TableBorder.Render(" │ ")
	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				out.WriteString(sep)
			}
			if ansi.PrintableRuneWidth(cell) > widths[i] {
				cell = truncate.StringWithTail(cell, uint(widths[i]), "…")
			}
			out.WriteString(cell)
			if pad := widths[i] - ansi.PrintableRuneWidth(cell); pad > 0 {
				out.WriteString(strings.Repeat(" ", pad))
			}
		}
		out.WriteByte('\n')
	}
	writeRow(header)
	for i, w := range widths {
		if i > 0 {
			out.WriteString(s.styles.TableBorder.Render("─┼─"))
		}
		out.WriteString(s.styles.TableBorder.Render(strings.Repeat("─", w)))
	}
	out.WriteByte('\n')
	for _, row := range rows {
		writeRow(row)
	}
	return s.print(out.String())
}

// fitColumns shrinks the widest columns until the table fits the sink
// width. Columns never drop below a small floor; oversized cells are
// truncated with an ellipsis at render time.
func (s *TerminalSink) fitColumns(widths []int) {
	if len(widths) == 0 {
		return
	}
	const minColumn = 3
	total := 3 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	for total > s.width {
		wi := 0
		for i, w := range widths {
			if w > widths[wi] {
				wi = i
			}
		}
		if widths[wi] <= minColumn {
			return
		}
		widths[wi]--
		total--
	}
}

// renderHeaderCell applies the header style to plain header text, or
// falls back to span rendering when the cell carries inline markup.
func (s *TerminalSink) renderHeaderCell(cell Cell) string {
	plain := true
	for _, span := range cell.Spans {
		if span.Role != roleText {
			plain = false
			break
		}
	}
	if !plain {
		return s.renderSpans(s.styles.TableHeader, cell.Spans)
	}
	var b strings.Builder
	for _, span := range cell.Spans {
		b.WriteString(span.Text)
	}
	return s.styles.TableHeader.Render(b.String())
}

func (s *TerminalSink) writeQuote(b Block) error {
	if b.Quote.Callout != "" {
		return s.writeCallout(b.Quote)
	}
	var out strings.Builder
	border := s.styles.QuoteBorder.Render("│")
	for _, line := range b.Quote.Lines {
		level := line.Level
		if level < 1 {
			level = 1
		}
		out.WriteString(strings.Repeat("  ", level))
		out.WriteString(border)
		out.WriteByte(' ')
		out.WriteString(s.renderSpans(s.styles.Text, line.Spans))
		out.WriteByte('\n')
	}
	return s.print(out.String())
}

func (s *TerminalSink) writeCallout(q *Quote) error {
	title := q.Callout
	if q.Title != "" {
		title += ": " + q.Title
	}
	body := make([]string, 0, len(q.Lines))
	for _, line := range q.Lines {
		body = append(body, s.renderSpans(s.styles.Text, line.Spans))
	}
	return s.print("\n" + s.box(s.styles.Callout.Bold(true).Render(title), body, s.styles.Callout) + "\n")
}

func (s *TerminalSink) writeList(b Block) error {
	var out strings.Builder
	for _, item := range b.List.Items {
		out.WriteString(strings.Repeat("  ", item.Depth))
		if item.Ordered {
			out.WriteString(s.styles.ListMarker.Render(strconv.Itoa(item.Number) + "."))
		} else {
			out.WriteString(s.styles.ListMarker.Render(listGlyphs[item.Depth%len(listGlyphs)]))
		}
		out.WriteByte(' ')
		out.WriteString(s.renderSpans(s.styles.Text, item.Spans))
		out.WriteByte('\n')
	}
	return s.print(out.String())
}

func (s *TerminalSink) writeCheckbox(b Block) error {
	box := "⬜"
	style := s.styles.Unchecked
	if b.Checked {
		box = "✅"
		style = s.styles.Checked
	}
	var out strings.Builder
	out.WriteString(strings.Repeat("  ", b.Indent))
	out.WriteString(style.Render(box))
	out.WriteString("  ")
	out.WriteString(s.renderSpans(s.styles.Text, b.Spans))
	out.WriteByte('\n')
	return s.print(out.String())
}

const progressBarWidth = 20

// progressFill picks the bar color by completion: muted below half,
// the callout accent up to done, checkmark green at 100%.
func (s *TerminalSink) progressFill(percent int) lipgloss.Style {
	switch {
	case percent >= 100:
		return s.styles.Checked
	case percent >= 50:
		return s.styles.Callout
	default:
		return s.styles.ListMarker
	}
}

func (s *TerminalSink) writeProgress(b Block) error {
	filled := b.Percent * progressBarWidth / 100
	var out strings.Builder
	out.WriteString(strings.Repeat("  ", b.Indent))
	out.WriteString(s.progressFill(b.Percent).Render(strings.Repeat("█", filled)))
	out.WriteString(s.styles.Unchecked.Render(strings.Repeat("░", progressBarWidth-filled)))
	fmt.Fprintf(&out, " %3d%%", b.Percent)
	if b.Percent >= 100 {
		out.WriteString(" ✅")
	}
	if len(b.Spans) > 0 {
		out.WriteByte(' ')
		out.WriteString(s.renderSpans(s.styles.Text, b.Spans))
	}
	out.WriteByte('\n')
	return s.print(out.String())
}

func (s *TerminalSink) writeDefinition(b Block) error {
	var out strings.Builder
	out.WriteString(s.styles.Term.Render(b.Term))
	out.WriteByte('\n')
	out.WriteString("    ")
	out.WriteString(s.renderSpans(s.styles.Text, b.Spans))
	out.WriteByte('\n')
	return s.print(out.String())
}

func (s *TerminalSink) writeFootnotes(b Block) error {
	var out strings.Builder
	out.WriteByte('\n')
	out.WriteString(s.styles.Strong.Render("Footnotes:"))
	out.WriteByte('\n')
	for _, note := range b.Notes {
		out.WriteString(s.styles.FootnoteRef.Render("[" + strconv.Itoa(note.Index) + "]"))
		out.WriteByte(' ')
		out.WriteString(s.renderSpans(s.styles.Text, note.Spans))
		out.WriteByte('\n')
	}
	return s.print(out.String())
}
