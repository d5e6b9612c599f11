package mdr

// quoteAccumulator buffers a blockquote run as (text, level) pairs.
type quoteAccumulator struct {
	lines []quoteRaw
}

type quoteRaw struct {
	text  string
	level int
}

func (a *quoteAccumulator) open() {
	a.lines = a.lines[:0]
}

func (a *quoteAccumulator) add(text string, level int) {
	a.lines = append(a.lines, quoteRaw{text: text, level: level})
}

// block materializes the quote. A callout marker on the first line
// turns the whole run into a titled callout; the marker itself never
// reaches the output.
func (a *quoteAccumulator) block(notes *footnoteTable) Block {
	q := &Quote{}
	lines := a.lines
	if len(lines) > 0 {
		if keyword, rest, ok := calloutMarker(lines[0].text); ok {
			q.Callout = keyword
			q.Title = rest
			lines = lines[1:]
		}
	}
	for _, l := range lines {
		q.Lines = append(q.Lines, QuoteLine{Spans: extractSpans(l.text, notes), Level: l.level})
	}
	return Block{Kind: blockQuote, Quote: q}
}
