package mdr

// tableAccumulator buffers pipe rows until the table closes. Raw lines
// are kept alongside the split cells so an aborted table (no valid
// separator row) can be demoted back to paragraph text.
type tableAccumulator struct {
	raw   []string
	cells [][]string
}

func (a *tableAccumulator) open() {
	a.raw = a.raw[:0]
	a.cells = a.cells[:0]
}

func (a *tableAccumulator) add(line string) {
	a.raw = append(a.raw, line)
	a.cells = append(a.cells, splitTableRow(line))
}

// block materializes the table. It reports false when no header plus
// valid separator pair is present; the caller then falls back to the
// raw lines.
func (a *tableAccumulator) block(notes *footnoteTable) (Block, bool) {
	if len(a.cells) < 2 || !separatorRow(a.cells[1]) {
		return Block{}, false
	}
	header := a.cells[0]
	t := &Table{Header: make([]Cell, len(header))}
	for i, cell := range header {
		t.Header[i] = Cell{Spans: extractSpans(cell, notes)}
	}
	for _, row := range a.cells[2:] {
		cells := make([]Cell, len(header))
		for i := range cells {
			if i < len(row) {
				cells[i] = Cell{Spans: extractSpans(row[i], notes)}
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return Block{Kind: blockTable, Table: t}, true
}

// rawLines returns the buffered source lines for demotion.
func (a *tableAccumulator) rawLines() []string {
	return a.raw
}
