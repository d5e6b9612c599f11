package mdr

// footnoteTable collects footnote definitions and assigns display
// numbers in the order labels are first referenced, not defined.
type footnoteTable struct {
	defs     map[string]string
	defOrder []string
	refOrder []string
	index    map[string]int
}

type noteEntry struct {
	label string
	text  string
}

func (t *footnoteTable) reset() {
	t.defs = nil
	t.defOrder = t.defOrder[:0]
	t.refOrder = t.refOrder[:0]
	t.index = nil
}

// define records a footnote definition. A repeated label overwrites
// the earlier text.
func (t *footnoteTable) define(label, text string) {
	if t.defs == nil {
		t.defs = make(map[string]string)
	}
	if _, seen := t.defs[label]; !seen {
		t.defOrder = append(t.defOrder, label)
	}
	t.defs[label] = text
}

// reference returns the display number for a label, assigning the next
// number on first use.
func (t *footnoteTable) reference(label string) int {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if n, ok := t.index[label]; ok {
		return n
	}
	n := len(t.refOrder) + 1
	t.index[label] = n
	t.refOrder = append(t.refOrder, label)
	return n
}

func (t *footnoteTable) empty() bool {
	return len(t.refOrder) == 0 && len(t.defOrder) == 0
}

// collect materializes the footnote section: referenced labels first
// in reference order, then unreferenced definitions in definition
// order. A referenced label without a definition keeps an empty text.
func (t *footnoteTable) collect() []noteEntry {
	out := make([]noteEntry, 0, len(t.refOrder)+len(t.defOrder))
	for _, label := range t.refOrder {
		out = append(out, noteEntry{label, t.defs[label]})
	}
	for _, label := range t.defOrder {
		if t.index != nil {
			if _, referenced := t.index[label]; referenced {
				continue
			}
		}
		out = append(out, noteEntry{label, t.defs[label]})
	}
	return out
}
