package mdr

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type rendererState uint8

const (
	stateIdle rendererState = iota
	stateCode
	stateTable
	stateQuote
	stateList
)

// Renderer is the streaming orchestrator. It reassembles fragments
// into lines, classifies each line and drives the block assemblers,
// holding open at most one multi-line block at a time. Finished blocks
// go to the sink as soon as they close.
type Renderer struct {
	sink  Sink
	lines lineReassembler
	state rendererState

	para  []string
	code  codeAccumulator
	table tableAccumulator
	quote quoteAccumulator
	list  listAccumulator
	notes footnoteTable

	finalized bool
	paraArr   [16]string
}

// NewRenderer returns a Renderer feeding the given sink.
func NewRenderer(sink Sink) *Renderer {
	r := &Renderer{sink: sink}
	r.lines.reset()
	r.para = r.paraArr[:0]
	return r
}

// Reset restores the renderer to its initial state, reusing buffers,
// and points it at sink.
func (r *Renderer) Reset(sink Sink) {
	r.sink = sink
	r.lines.reset()
	r.state = stateIdle
	r.para = r.paraArr[:0]
	r.code.lines = r.code.lines[:0]
	r.table.open()
	r.quote.open()
	r.list.open()
	r.notes.reset()
	r.finalized = false
}

// Feed consumes the next stream fragment. Fragment boundaries carry no
// meaning: feeding byte-by-byte or all at once produces identical
// output. Returned errors originate from the sink.
func (r *Renderer) Feed(fragment string) error {
	for _, line := range r.lines.feed(fragment) {
		if err := r.processLine(line); err != nil {
			return err
		}
	}
	return nil
}

// Write implements io.Writer over Feed. The data is copied, so callers
// may reuse p.
func (r *Renderer) Write(p []byte) (int, error) {
	if err := r.Feed(string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Finalize flushes everything still buffered: a pending partial line,
// the open block, the paragraph accumulator (its completeness check
// bypassed) and the footnote section. Further calls are no-ops.
func (r *Renderer) Finalize() error {
	if r.finalized {
		return nil
	}
	r.finalized = true
	if line, ok := r.lines.finalize(); ok {
		if err := r.processLine(line); err != nil {
			return err
		}
	}
	if err := r.flushOpen(); err != nil {
		return err
	}
	if !r.notes.empty() {
		entries := r.notes.collect()
		fns := make([]Footnote, len(entries))
		for i, e := range entries {
			fns[i] = Footnote{Label: e.label, Index: i + 1, Spans: extractSpans(e.text, nil)}
		}
		if err := r.sink.WriteBlock(Block{Kind: blockFootnotes, Notes: fns}); err != nil {
			return err
		}
	}
	return r.sink.Flush()
}

// processLine runs the priority-ordered transition table. Exits from
// the table, quote and list states loop back so the closing line is
// re-evaluated from the top.
func (r *Renderer) processLine(line string) error {
	stripped := strings.TrimRight(line, " \t")
	for {
		// Fences. Any fence-shaped line closes an open code block,
		// its language tag ignored.
		if lang, ok := fenceLine(stripped); ok {
			if r.state == stateCode {
				return r.emitCode()
			}
			if err := r.flushOpen(); err != nil {
				return err
			}
			r.code.open(lang)
			r.state = stateCode
			return nil
		}
		if r.state == stateCode {
			r.code.add(line)
			return nil
		}

		// Table rows.
		if tableRowLine(stripped) {
			if r.state != stateTable {
				if err := r.flushOpen(); err != nil {
					return err
				}
				r.table.open()
				r.state = stateTable
			}
			r.table.add(stripped)
			return nil
		}
		if r.state == stateTable {
			if err := r.emitTable(); err != nil {
				return err
			}
			continue
		}

		// Quote markers, then box-drawing markers.
		if depth, rest, ok := quotePrefix(stripped); ok {
			if err := r.enterQuote(); err != nil {
				return err
			}
			r.quote.add(strings.TrimSpace(rest), depth)
			return nil
		}
		if depth, rest, ok := boxQuotePrefix(stripped); ok {
			if err := r.enterQuote(); err != nil {
				return err
			}
			r.quote.add(strings.TrimSpace(rest), depth)
			return nil
		}
		if r.state == stateQuote {
			if quoteContinuation(stripped) {
				r.quote.add(strings.TrimSpace(stripped), 1)
				return nil
			}
			if err := r.emitQuote(); err != nil {
				return err
			}
			continue
		}

		// Single-line constructs.
		if ruleLine(stripped) {
			if err := r.flushOpen(); err != nil {
				return err
			}
			return r.sink.WriteBlock(Block{Kind: blockRule})
		}
		if level, text, ok := headingLine(stripped); ok {
			if err := r.flushOpen(); err != nil {
				return err
			}
			return r.sink.WriteBlock(Block{
				Kind:  blockHeading,
				Level: level,
				Spans: extractSpans(text, &r.notes),
			})
		}
		if indent, checked, text, ok := checkboxLine(stripped); ok {
			if err := r.flushOpen(); err != nil {
				return err
			}
			return r.sink.WriteBlock(Block{
				Kind:    blockCheckbox,
				Indent:  indent,
				Checked: checked,
				Spans:   extractSpans(text, &r.notes),
			})
		}
		if indent, percent, text, ok := progressLine(stripped); ok {
			if err := r.flushOpen(); err != nil {
				return err
			}
			return r.sink.WriteBlock(Block{
				Kind:    blockProgress,
				Indent:  indent,
				Percent: percent,
				Spans:   extractSpans(text, &r.notes),
			})
		}
		if label, text, ok := footnoteDefLine(stripped); ok {
			if err := r.flushOpen(); err != nil {
				return err
			}
			r.notes.define(label, text)
			return nil
		}
		if term, def, ok := definitionLine(stripped); ok {
			if err := r.flushOpen(); err != nil {
				return err
			}
			return r.sink.WriteBlock(Block{
				Kind:  blockDefinition,
				Term:  term,
				Spans: extractSpans(def, &r.notes),
			})
		}

		// List items.
		if width, ordered, number, text, ok := listItemLine(stripped); ok {
			if r.state != stateList {
				if err := r.flushOpen(); err != nil {
					return err
				}
				r.list.open()
				r.state = stateList
			}
			r.list.add(width, ordered, number, text)
			return nil
		}
		if r.state == stateList {
			if err := r.emitList(); err != nil {
				return err
			}
			continue
		}

		// Plain text. A blank line flushes the paragraph unless its
		// inline markers are still unbalanced.
		if blankLine(stripped) {
			return r.flushParagraph(false)
		}
		r.para = append(r.para, stripped)
		return nil
	}
}

func (r *Renderer) enterQuote() error {
	if r.state == stateQuote {
		return nil
	}
	if err := r.flushOpen(); err != nil {
		return err
	}
	r.quote.open()
	r.state = stateQuote
	return nil
}

// quoteContinuation reports whether an unmarked line extends an open
// quote: indented lines and lines starting with a lowercase letter
// read as lazy continuations, everything else closes the quote.
func quoteContinuation(line string) bool {
	if line == "" {
		return false
	}
	if line[0] == ' ' || line[0] == '\t' {
		return true
	}
	first, _ := utf8.DecodeRuneInString(line)
	return unicode.IsLower(first) && !ruleLine(line)
}

// flushOpen closes whichever multi-line block is open, then force
// flushes the paragraph accumulator.
func (r *Renderer) flushOpen() error {
	var err error
	switch r.state {
	case stateCode:
		err = r.emitCode()
	case stateTable:
		err = r.emitTable()
	case stateQuote:
		err = r.emitQuote()
	case stateList:
		err = r.emitList()
	}
	if err != nil {
		return err
	}
	return r.flushParagraph(true)
}

// flushParagraph joins the accumulated segments with single spaces and
// emits them. Unless forced, a paragraph whose inline markers are
// unbalanced stays buffered and keeps accumulating.
func (r *Renderer) flushParagraph(force bool) error {
	if len(r.para) == 0 {
		return nil
	}
	text := strings.Join(r.para, " ")
	if !force && inlineIncomplete(text) {
		return nil
	}
	r.para = r.para[:0]
	return r.sink.WriteBlock(Block{Kind: blockParagraph, Spans: extractSpans(text, &r.notes)})
}

func (r *Renderer) emitCode() error {
	block := r.code.block()
	r.state = stateIdle
	return r.sink.WriteBlock(block)
}

// emitTable closes the table state. A run without a valid separator
// row is demoted: its raw lines rejoin the paragraph accumulator.
func (r *Renderer) emitTable() error {
	block, ok := r.table.block(&r.notes)
	r.state = stateIdle
	if !ok {
		r.para = append(r.para, r.table.rawLines()...)
		return nil
	}
	return r.sink.WriteBlock(block)
}

func (r *Renderer) emitQuote() error {
	block := r.quote.block(&r.notes)
	r.state = stateIdle
	return r.sink.WriteBlock(block)
}

func (r *Renderer) emitList() error {
	block := r.list.block(&r.notes)
	r.state = stateIdle
	return r.sink.WriteBlock(block)
}
