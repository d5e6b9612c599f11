package mdr

import "strings"

// codeAccumulator buffers a fenced code block between its fences.
type codeAccumulator struct {
	language string
	lines    []string
}

func (a *codeAccumulator) open(lang string) {
	a.language = lang
	a.lines = a.lines[:0]
}

// add appends one raw content line, indentation and trailing spaces
// preserved.
func (a *codeAccumulator) add(line string) {
	a.lines = append(a.lines, line)
}

// block materializes the accumulated code. A mermaid language tag
// yields a diagram block instead of a highlighted code block.
func (a *codeAccumulator) block() Block {
	lines := make([]string, len(a.lines))
	copy(lines, a.lines)
	kind := blockCode
	if strings.EqualFold(a.language, "mermaid") {
		kind = blockDiagram
	}
	return Block{Kind: kind, Code: &CodeBlock{Language: a.language, Lines: lines}}
}
