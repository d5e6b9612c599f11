package mdr

import (
	"regexp"
	"strings"
)

// Mermaid blocks render as a plain box listing nodes and edges rather
// than passing raw diagram source through. Parsing covers flowchart
// syntax: node declarations, --> edges with optional |labels| and
// chained edge lines.

type diagramEdge struct {
	from  string
	to    string
	label string
}

var (
	diagramNodePattern = regexp.MustCompile(`^\s*([A-Za-z0-9_]+)\s*(?:\[([^\]]*)\]|\(([^)]*)\)|\{([^}]*)\})?\s*$`)
	diagramEdgePattern = regexp.MustCompile(`(-->|->>|---|->)\s*(?:\|([^|]*)\|)?`)
)

var diagramHeaders = map[string]bool{
	"graph":           true,
	"flowchart":       true,
	"sequencediagram": true,
	"classdiagram":    true,
	"statediagram":    true,
	"erdiagram":       true,
	"journey":         true,
	"gantt":           true,
	"pie":             true,
	"mindmap":         true,
	"timeline":        true,
	"subgraph":        true,
	"end":             true,
}

func diagramHeaderLine(s string) bool {
	first := s
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		first = s[:i]
	}
	return diagramHeaders[strings.ToLower(first)]
}

// parseDiagram extracts node labels (first-seen order) and edges from
// mermaid source lines.
func parseDiagram(lines []string) ([]string, []diagramEdge) {
	var nodes []string
	var edges []diagramEdge
	seen := make(map[string]bool)

	node := func(raw string) (string, bool) {
		raw = strings.TrimSpace(raw)
		m := diagramNodePattern.FindStringSubmatch(raw)
		if m == nil {
			if i := strings.IndexByte(raw, ':'); i > 0 {
				m = diagramNodePattern.FindStringSubmatch(strings.TrimSpace(raw[:i]))
			}
			if m == nil {
				return "", false
			}
		}
		label := m[1]
		for _, g := range m[2:] {
			if g != "" {
				label = g
				break
			}
		}
		if !seen[label] {
			seen[label] = true
			nodes = append(nodes, label)
		}
		return label, true
	}

	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" || diagramHeaderLine(s) {
			continue
		}
		locs := diagramEdgePattern.FindAllStringSubmatchIndex(s, -1)
		if len(locs) == 0 {
			node(s)
			continue
		}
		prevEnd := 0
		var prev string
		var prevOK bool
		for i, loc := range locs {
			segment := s[prevEnd:loc[0]]
			cur, ok := node(segment)
			if i > 0 && prevOK && ok {
				label := edgeLabel(s, locs[i-1])
				edges = append(edges, diagramEdge{from: prev, to: cur, label: label})
			}
			prev, prevOK = cur, ok
			prevEnd = loc[1]
		}
		last, ok := node(s[prevEnd:])
		if prevOK && ok {
			label := edgeLabel(s, locs[len(locs)-1])
			edges = append(edges, diagramEdge{from: prev, to: last, label: label})
		}
	}
	return nodes, edges
}

func edgeLabel(s string, loc []int) string {
	if len(loc) >= 6 && loc[4] >= 0 {
		return strings.TrimSpace(s[loc[4]:loc[5]])
	}
	return ""
}
