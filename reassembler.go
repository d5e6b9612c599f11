package mdr

import "strings"

// lineReassembler turns arbitrary stream fragments into complete lines.
// It holds at most the trailing unterminated line between feeds, so a
// rune split across fragments is never exposed downstream.
type lineReassembler struct {
	tail    []byte
	lines   []string
	tailArr [1024]byte
	lineArr [64]string
}

func (r *lineReassembler) reset() {
	r.tail = r.tailArr[:0]
	r.lines = r.lineArr[:0]
}

// feed appends a fragment and returns the complete lines it released.
// The returned slice is reused by the next call. Lines that span
// fragments are copied out of the tail buffer; lines contained in a
// single fragment alias the fragment's string data.
func (r *lineReassembler) feed(fragment string) []string {
	if r.lines == nil {
		r.reset()
	}
	r.lines = r.lines[:0]
	for {
		i := strings.IndexByte(fragment, '\n')
		if i < 0 {
			break
		}
		line := fragment[:i]
		if len(r.tail) > 0 {
			r.tail = append(r.tail, line...)
			line = string(r.tail)
			r.tail = r.tail[:0]
		}
		r.lines = append(r.lines, stripCR(line))
		fragment = fragment[i+1:]
	}
	if len(fragment) > 0 {
		r.tail = append(r.tail, fragment...)
	}
	return r.lines
}

// finalize releases the held partial line, if any.
func (r *lineReassembler) finalize() (string, bool) {
	if len(r.tail) == 0 {
		return "", false
	}
	line := stripCR(string(r.tail))
	r.tail = r.tail[:0]
	return line, true
}

func stripCR(line string) string {
	if strings.HasSuffix(line, "\r") {
		return line[:len(line)-1]
	}
	return line
}
